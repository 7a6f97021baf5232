package bfloat16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 2, 0.5, 256, -3.5} {
		assert.Equal(t, v, FromFloat32(v).Float32(), "value %g should be exact in bfloat16", v)
	}
	assert.Equal(t, "1.5", FromFloat32(1.5).String())
	assert.Equal(t, BFloat16(0x3f80), FromFloat32(1))
}

func TestRounding(t *testing.T) {
	// 1 + 2^-8 is exactly half-way between 1 and the next bfloat16 (1 + 2^-7): ties go to even (1).
	assert.Equal(t, float32(1), FromFloat32(1+1.0/256).Float32())
	// Slightly above half-way rounds up.
	assert.Equal(t, float32(1+1.0/128), FromFloat32(1+1.0/256+1.0/4096).Float32())
}

func TestSpecialValues(t *testing.T) {
	assert.True(t, math.IsInf(float64(FromFloat32(float32(math.Inf(1))).Float32()), 1))
	assert.True(t, math.IsInf(float64(FromFloat32(float32(math.Inf(-1))).Float32()), -1))
	// Rounding never turns a NaN into an infinity.
	nan := FromFloat32(math.Float32frombits(0x7f800001))
	assert.True(t, math.IsNaN(float64(nan.Float32())))
	// Values above the largest bfloat16 round to infinity.
	assert.True(t, math.IsInf(float64(FromFloat32(math.MaxFloat32).Float32()), 1))
}
