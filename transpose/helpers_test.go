package transpose

import (
	"math/rand/v2"
	"testing"

	"github.com/gomlx/transpose/pkg/core/dtypes"
	"github.com/gomlx/transpose/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/transpose/pkg/support/xslices"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

// denseStrides returns the strides of a dense tensor, written independently of stridesFor.
func denseStrides(sizes []int, layout Layout) []int {
	strides := make([]int, len(sizes))
	for axis := range sizes {
		strides[axis] = 1
		if layout == ColMajor {
			for prev := 0; prev < axis; prev++ {
				strides[axis] *= sizes[prev]
			}
		} else {
			for next := axis + 1; next < len(sizes); next++ {
				strides[axis] *= sizes[next]
			}
		}
	}
	return strides
}

// referenceTranspose computes alpha*in + beta*out for the request, element by element.
func referenceTranspose[T dtypes.Number](req Request, layout Layout, in, out []T) []T {
	expected := append([]T(nil), out...)
	inOuter := req.InOuterSize
	if len(inOuter) == 0 {
		inOuter = req.InSize
	}
	outSize := req.OutSize()
	outOuter := req.OutOuterSize
	if len(outOuter) == 0 {
		outOuter = outSize
	}
	inStrides := denseStrides(inOuter, layout)
	outStrides := denseStrides(outOuter, layout)
	alpha, beta := numberFromFloat64[T](req.Alpha), numberFromFloat64[T](req.Beta)
	idx := make([]int, req.Order)
	for range xslices.Product(req.InSize) {
		inPos, outPos := 0, 0
		for axis, i := range idx {
			if len(req.InOffset) > 0 {
				i += req.InOffset[axis]
			}
			inPos += i * inStrides[axis]
		}
		for outAxis, inAxis := range req.Perm {
			i := idx[inAxis]
			if len(req.OutOffset) > 0 {
				i += req.OutOffset[outAxis]
			}
			outPos += i * outStrides[outAxis]
		}
		expected[outPos] = alpha*in[inPos] + beta*out[outPos]
		// Increment the multi-dimensional index, last axis fastest.
		for axis := req.Order - 1; axis >= 0; axis-- {
			idx[axis]++
			if idx[axis] < req.InSize[axis] {
				break
			}
			idx[axis] = 0
		}
	}
	return expected
}

// iotaOf returns a buffer with values 1, 2, 3, ...
func iotaOf[T dtypes.Number](n int) []T {
	buf := make([]T, n)
	for ii := range buf {
		buf[ii] = numberFromFloat64[T](float64(ii + 1))
	}
	return buf
}

// randomPerm returns a permutation of order axes.
func randomPerm(rng *rand.Rand, order int) []int {
	perm := xslices.Iota(0, order)
	rng.Shuffle(order, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	return perm
}

// runTranspose creates a Transposer, executes it once, checks the result against referenceTranspose and
// finalizes it.
func runTranspose[T dtypes.Number](t *testing.T, req Request, in, out []T) {
	t.Helper()
	layout := req.Layout
	if layout == LayoutDefault {
		layout = DefaultConfig().Layout
	}
	want := referenceTranspose(req, layout, in, out)
	tr, err := New(in, out, req)
	require.NoError(t, err)
	defer tr.Finalize()
	require.NoError(t, tr.Execute())
	require.Equal(t, want, out, "sizes=%v, perm=%v, plan=%+v", req.InSize, req.Perm, tr.DescribePlan())
}

func float16Slice(values []float32) []float16.Float16 {
	out := make([]float16.Float16, len(values))
	for ii, v := range values {
		out[ii] = float16.Fromfloat32(v)
	}
	return out
}

func bfloat16Slice(values []float32) []bfloat16.BFloat16 {
	out := make([]bfloat16.BFloat16, len(values))
	for ii, v := range values {
		out[ii] = bfloat16.FromFloat32(v)
	}
	return out
}
