package transpose

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/transpose/pkg/core/dtypes"
)

// tileShape describes one call to a macro kernel: a tile of extA x extB elements, where A is the input
// leading axis and B the output leading axis.
//
// For tensors whose input and output leading axes are the same, the kernel transposes a line: extA is 1
// and B is the common leading axis.
type tileShape struct {
	extA, extB int
	inA, inB   int // Input strides along A and B.
	outA, outB int // Output strides along A and B.
}

// kernel computes out = alpha*in + beta*out for one tile positioned at inPos and outPos.
type kernel[T any] func(in, out []T, inPos, outPos int, s *tileShape)

// kernelFactories maps a dtype to the function returning the kernel variant for a coefficient usage:
// func(usage CoefUsage, alpha, beta float64) kernel[T]. The coefficients are given as float64 and
// converted to the element type once.
var kernelFactories = newDTypeMap("TransposeKernel")

// getKernel returns the kernel for T registered in kernelFactories.
func getKernel[T dtypes.Element](usage CoefUsage, alpha, beta float64) kernel[T] {
	dtype := dtypes.FromGenericsType[T]()
	factory, ok := kernelFactories.Get(dtype).(func(CoefUsage, float64, float64) kernel[T])
	if !ok {
		exceptions.Panicf("kernel registered for dtype %s has the wrong type", dtype)
	}
	return factory(usage, alpha, beta)
}

// copyKernel is the UseNone variant, valid for any element type.
func copyKernel[T any](in, out []T, inPos, outPos int, s *tileShape) {
	for ia := 0; ia < s.extA; ia++ {
		ip, op := inPos+ia*s.inA, outPos+ia*s.outA
		for ib := 0; ib < s.extB; ib++ {
			out[op] = in[ip]
			ip += s.inB
			op += s.outB
		}
	}
}

// numberFromFloat64 converts a real coefficient to a Number type.
func numberFromFloat64[T dtypes.Number](v float64) T {
	var t T
	switch any(t).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case complex64:
		return any(complex(float32(v), 0)).(T)
	case complex128:
		return any(complex(v, 0)).(T)
	}
	exceptions.Panicf("numberFromFloat64: unsupported type %T", t)
	panic(nil)
}

// numberKernelFactory creates the kernels for the types with native Go arithmetic.
func numberKernelFactory[T dtypes.Number](usage CoefUsage, alpha, beta float64) kernel[T] {
	a, b := numberFromFloat64[T](alpha), numberFromFloat64[T](beta)
	switch usage {
	case UseNone:
		return copyKernel[T]
	case UseAlpha:
		return func(in, out []T, inPos, outPos int, s *tileShape) {
			for ia := 0; ia < s.extA; ia++ {
				ip, op := inPos+ia*s.inA, outPos+ia*s.outA
				for ib := 0; ib < s.extB; ib++ {
					out[op] = a * in[ip]
					ip += s.inB
					op += s.outB
				}
			}
		}
	case UseBeta:
		return func(in, out []T, inPos, outPos int, s *tileShape) {
			for ia := 0; ia < s.extA; ia++ {
				ip, op := inPos+ia*s.inA, outPos+ia*s.outA
				for ib := 0; ib < s.extB; ib++ {
					out[op] = in[ip] + b*out[op]
					ip += s.inB
					op += s.outB
				}
			}
		}
	case UseBoth:
		return func(in, out []T, inPos, outPos int, s *tileShape) {
			for ia := 0; ia < s.extA; ia++ {
				ip, op := inPos+ia*s.inA, outPos+ia*s.outA
				for ib := 0; ib < s.extB; ib++ {
					out[op] = a*in[ip] + b*out[op]
					ip += s.inB
					op += s.outB
				}
			}
		}
	}
	exceptions.Panicf("unknown coefficient usage %s", usage)
	panic(nil)
}

// kernelName describes the kernel variant used by a plan: "tile<B>x<B>/<usage>" or "line/<usage>".
func kernelName(tiled bool, tileWidth int, usage CoefUsage) string {
	if tiled {
		return fmt.Sprintf("tile%dx%d/%s", tileWidth, tileWidth, usage)
	}
	return "line/" + usage.String()
}
