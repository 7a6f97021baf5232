package main

import (
	"github.com/gomlx/transpose/internal/benchspec"
	"github.com/gomlx/transpose/pkg/core/dtypes"
	"github.com/gomlx/transpose/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// fromFloat64 converts a value to the element type.
func fromFloat64[T dtypes.Element](v float64) T {
	var t T
	switch any(t).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case complex64:
		return any(complex(float32(v), float32(-v))).(T)
	case complex128:
		return any(complex(v, -v)).(T)
	case float16.Float16:
		return any(float16.Fromfloat32(float32(v))).(T)
	case bfloat16.BFloat16:
		return any(bfloat16.FromFloat32(float32(v))).(T)
	}
	return t
}

// Small integers keep the results exact for every element type, including bfloat16.
func inputValue(ii int) float64  { return float64(ii % 61) }
func outputValue(ii int) float64 { return float64(ii % 7) }

// fillOperands sets the input and the initial output of a benchmark.
func fillOperands[T dtypes.Element](in, out []T) {
	for ii := range in {
		in[ii] = fromFloat64[T](inputValue(ii))
	}
	for ii := range out {
		out[ii] = fromFloat64[T](outputValue(ii))
	}
}

// reference computes the expected output of the column-major benchmark, in float64, for operands
// initialized with fillOperands.
func reference(spec *benchspec.Spec) []float64 {
	order := len(spec.Sizes)
	outSizes := make([]int, order)
	for j, axis := range spec.Perm {
		outSizes[j] = spec.Sizes[axis]
	}
	// Column-major output strides, indexed by the input axis they correspond to.
	outStrides := make([]int, order)
	stride := 1
	for j, axis := range spec.Perm {
		outStrides[axis] = stride
		stride *= outSizes[j]
	}
	var beta float64
	if spec.Beta {
		beta = benchspec.Beta
	}

	want := make([]float64, spec.NumElements())
	for ii := range want {
		want[ii] = beta * outputValue(ii)
	}
	idx := make([]int, order)
	for inPos := range want {
		outPos := 0
		for axis, i := range idx {
			outPos += i * outStrides[axis]
		}
		want[outPos] += benchspec.Alpha * inputValue(inPos)
		// Next column-major index.
		for axis := range idx {
			idx[axis]++
			if idx[axis] < spec.Sizes[axis] {
				break
			}
			idx[axis] = 0
		}
	}
	return want
}

// firstMismatch returns the position of the first element of out different from want, or -1.
func firstMismatch[T dtypes.Element](out []T, want []float64) int {
	for ii, v := range out {
		if v != fromFloat64[T](want[ii]) {
			return ii
		}
	}
	return -1
}
