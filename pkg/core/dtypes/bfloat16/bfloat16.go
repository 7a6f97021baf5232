// Package bfloat16 is a small implementation of the bfloat16 type, based on
// https://github.com/x448/float16 and the pending issue in
// https://github.com/x448/float16/issues/22
//
// Different from a plain truncation, conversions from float32 round to the nearest
// even value, so that scaling by alpha/beta in the transpose kernels doesn't drift
// systematically towards zero.
package bfloat16

import (
	"math"
	"strconv"
)

// BFloat16 (brain floating point) is a 16 bits float format: a float32 with the lower 16 bits of the
// mantissa dropped. It keeps the dynamic range of float32 with reduced precision.
type BFloat16 uint16

// Float32 converts the BFloat16 to a float32. The conversion is exact.
func (f BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// FromFloat32 converts a float32 to a BFloat16, rounding to the nearest even value.
// NaNs are kept as (quiet) NaNs.
func FromFloat32(x float32) BFloat16 {
	bits := math.Float32bits(x)
	if bits&0x7f800000 == 0x7f800000 && bits&0x007fffff != 0 {
		// NaN: keep the sign and force a quiet NaN, since rounding could turn it into an infinity.
		return BFloat16(bits>>16 | 0x0040)
	}
	lsb := (bits >> 16) & 1
	bits += 0x7fff + lsb
	return BFloat16(bits >> 16)
}

// String implements fmt.Stringer, and prints a float representation of the BFloat16.
func (f BFloat16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'f', -1, 32)
}
