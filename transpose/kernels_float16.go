package transpose

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/transpose/pkg/core/dtypes"
	"github.com/gomlx/transpose/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// The 16 bits floats have no native arithmetic: values are converted to float32, scaled and rounded back.
// Their copy kernel moves the bits without conversion.

func float16ToFloat32(v float16.Float16) float32   { return v.Float32() }
func bfloat16ToFloat32(v bfloat16.BFloat16) float32 { return v.Float32() }

// halfKernel creates the kernels for the 16 bits float types, given their conversion functions.
func halfKernel[T dtypes.Half](usage CoefUsage, alpha, beta float64,
	toF32 func(T) float32, fromF32 func(float32) T) kernel[T] {
	a, b := float32(alpha), float32(beta)
	switch usage {
	case UseNone:
		return copyKernel[T]
	case UseAlpha:
		return func(in, out []T, inPos, outPos int, s *tileShape) {
			for ia := 0; ia < s.extA; ia++ {
				ip, op := inPos+ia*s.inA, outPos+ia*s.outA
				for ib := 0; ib < s.extB; ib++ {
					out[op] = fromF32(a * toF32(in[ip]))
					ip += s.inB
					op += s.outB
				}
			}
		}
	case UseBeta, UseBoth:
		return func(in, out []T, inPos, outPos int, s *tileShape) {
			for ia := 0; ia < s.extA; ia++ {
				ip, op := inPos+ia*s.inA, outPos+ia*s.outA
				for ib := 0; ib < s.extB; ib++ {
					out[op] = fromF32(a*toF32(in[ip]) + b*toF32(out[op]))
					ip += s.inB
					op += s.outB
				}
			}
		}
	}
	exceptions.Panicf("unknown coefficient usage %s", usage)
	panic(nil)
}

func float16KernelFactory(usage CoefUsage, alpha, beta float64) kernel[float16.Float16] {
	return halfKernel(usage, alpha, beta, float16ToFloat32, float16.Fromfloat32)
}

func bfloat16KernelFactory(usage CoefUsage, alpha, beta float64) kernel[bfloat16.BFloat16] {
	return halfKernel(usage, alpha, beta, bfloat16ToFloat32, bfloat16.FromFloat32)
}
