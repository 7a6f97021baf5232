package transpose

import (
	"testing"

	"github.com/gomlx/transpose/pkg/core/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestCoefUsage(t *testing.T) {
	assert.Equal(t, UseNone, CoefUsageFor(1, 0))
	assert.Equal(t, UseAlpha, CoefUsageFor(2, 0))
	assert.Equal(t, UseBeta, CoefUsageFor(1, 1))
	assert.Equal(t, UseBoth, CoefUsageFor(-1, 0.5))
	assert.Equal(t, ModeOverwrite, UseAlpha.Mode())
	assert.Equal(t, ModeAccumulate, UseBeta.Mode())
	assert.Equal(t, ModeAccumulate, UseBoth.Mode())
	assert.Equal(t, "both", UseBoth.String())
	assert.Equal(t, ModeAccumulate, modeOf[Accumulate]())
	assert.Equal(t, ModeOverwrite, modeOf[Overwrite]())
	assert.Equal(t, "order=3/Accumulate", Slot{Order: 3, Mode: ModeAccumulate}.String())
}

// A 2x3 tile: A is the input leading axis (contiguous in the input), B the output leading axis.
var testTile = tileShape{extA: 2, extB: 3, inA: 1, inB: 2, outA: 3, outB: 1}

func TestNumberKernels(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6}
	testCases := []struct {
		usage       CoefUsage
		alpha, beta float64
		want        []float64
	}{
		{UseNone, 1, 0, []float64{1, 3, 5, 2, 4, 6}},
		{UseAlpha, 2, 0, []float64{2, 6, 10, 4, 8, 12}},
		{UseBeta, 1, 1, []float64{11, 13, 15, 12, 14, 16}},
		{UseBoth, 2, -1, []float64{-8, -4, 0, -6, -2, 2}},
	}
	for _, tc := range testCases {
		out := []float64{10, 10, 10, 10, 10, 10}
		k := getKernel[float64](tc.usage, tc.alpha, tc.beta)
		k(in, out, 0, 0, &testTile)
		assert.Equal(t, tc.want, out, "usage %s", tc.usage)
	}

	// Positions and complex coefficients.
	inC := []complex64{0, 1 + 1i, 2 + 2i}
	outC := []complex64{7, 7, 7}
	k := getKernel[complex64](UseBoth, 2, 0.5)
	k(inC, outC, 1, 1, &tileShape{extA: 1, extB: 2, inB: 1, outB: 1})
	assert.Equal(t, []complex64{7, 5.5 + 2i, 7.5 + 4i}, outC)
}

func TestHalfKernels(t *testing.T) {
	in := []float16.Float16{float16.Fromfloat32(1), float16.Fromfloat32(2), float16.Fromfloat32(3),
		float16.Fromfloat32(4), float16.Fromfloat32(5), float16.Fromfloat32(6)}
	out := make([]float16.Float16, 6)
	for ii := range out {
		out[ii] = float16.Fromfloat32(10)
	}
	getKernel[float16.Float16](UseBoth, 2, 0.5)(in, out, 0, 0, &testTile)
	got := make([]float32, len(out))
	for ii, v := range out {
		got[ii] = v.Float32()
	}
	assert.Equal(t, []float32{7, 11, 15, 9, 13, 17}, got)

	inB := []bfloat16.BFloat16{bfloat16.FromFloat32(1.5), bfloat16.FromFloat32(-3)}
	outB := make([]bfloat16.BFloat16, 2)
	getKernel[bfloat16.BFloat16](UseAlpha, 4, 0)(inB, outB, 0, 0, &tileShape{extA: 1, extB: 2, inB: 1, outB: 1})
	assert.Equal(t, float32(6), outB[0].Float32())
	assert.Equal(t, float32(-12), outB[1].Float32())

	// Copies keep the bits.
	nan := []float16.Float16{float16.NaN()}
	outNaN := make([]float16.Float16, 1)
	getKernel[float16.Float16](UseNone, 1, 0)(nan, outNaN, 0, 0, &tileShape{extA: 1, extB: 1})
	assert.Equal(t, nan[0].Bits(), outNaN[0].Bits())
}

func TestKernelName(t *testing.T) {
	assert.Equal(t, "tile16x16/alpha", kernelName(true, 16, UseAlpha))
	assert.Equal(t, "line/beta", kernelName(false, 0, UseBeta))
}

func TestRegistry(t *testing.T) {
	m := newDTypeMap("test")
	assert.False(t, m.Has(3))
	m.Register(3, priorityTyped, "typed")
	m.Register(3, priorityGeneric, "generic")
	assert.Equal(t, "typed", m.Get(3))
	m.Register(3, priorityTyped, "typed2")
	assert.Equal(t, "typed2", m.Get(3))
	require.Panics(t, func() { m.Get(4) })
	require.Panics(t, func() { m.Register(-1, priorityGeneric, nil) })

	require.Panics(t, func() { registerEngine(0, MaxOrder+1, ModeOverwrite, priorityGeneric, nil) })
	require.Panics(t, func() { registerEngine(0, 1, numModes, priorityGeneric, nil) })
	assert.Nil(t, lookupEngine(0, 1, ModeOverwrite))
	assert.Nil(t, lookupEngine(11, 0, ModeOverwrite))
	assert.NotNil(t, lookupEngine(11, MaxOrder, ModeAccumulate))
}
