// Package dtypes includes the DType enum for the element types the transposer can be instantiated with.
//
// It is a trimmed fork of github.com/gomlx/gomlx/pkg/core/dtypes: only the floating point and complex types
// are kept, since those are the only ones the transpose engines are generated for. Each DType also carries
// the one-letter BLAS-like abbreviation ("s", "d", "c", "z", plus "h" and "b" for the 16 bits floats) used
// in benchmark names and generated file names.
//
// It includes the conversion from Go generic types, the reflect.Type of each DType, and constraint interfaces
// to be used with generics (Element, Number, Half).
package dtypes

import (
	"reflect"

	"github.com/gomlx/transpose/pkg/core/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code" -- when parameters are invalid.
// In principle, it should never happen -- the same way nil-pointer panics should never happen.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

// Element lists the Go types the transpose engines are generated for.
// Used as traits for generics.
type Element interface {
	float32 | float64 | complex64 | complex128 | float16.Float16 | bfloat16.BFloat16
}

// Number are the Element types with native Go arithmetic.
type Number interface {
	float32 | float64 | complex64 | complex128
}

// Half are the 16 bits float types, whose arithmetic is done in float32.
type Half interface {
	float16.Float16 | bfloat16.BFloat16
}

// Catalog returns the element types supported, in the order they are enumerated by the code generator.
func Catalog() []DType {
	return []DType{Float32, Float64, Complex64, Complex128, Float16, BFloat16}
}

// FromGenericsType returns the DType enum for the given type that this package knows about.
func FromGenericsType[T Element]() DType {
	var t T
	switch (any(t)).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case float16.Float16:
		return Float16
	case bfloat16.BFloat16:
		return BFloat16
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}
	return InvalidDType
}

// Pre-generate constant reflect.TypeOf for convenience.
var (
	float32Type    = reflect.TypeOf(float32(0))
	float64Type    = reflect.TypeOf(float64(0))
	complex64Type  = reflect.TypeOf(complex64(0))
	complex128Type = reflect.TypeOf(complex128(0))
	float16Type    = reflect.TypeOf(float16.Float16(0))
	bfloat16Type   = reflect.TypeOf(bfloat16.BFloat16(0))
)

// GoType returns the Go `reflect.Type` corresponding to the DType.
func (dtype DType) GoType() reflect.Type {
	switch dtype {
	case Float16:
		return float16Type
	case BFloat16:
		return bfloat16Type
	case Float32:
		return float32Type
	case Float64:
		return float64Type
	case Complex64:
		return complex64Type
	case Complex128:
		return complex128Type
	default:
		panicf("unknown dtype %q (%d) in DType.GoType", dtype, dtype)
		panic(nil)
	}
}

// Size returns the number of bytes for the given DType.
func (dtype DType) Size() int {
	return int(dtype.GoType().Size())
}

var abbreviations = map[DType]string{
	Float32:    "s",
	Float64:    "d",
	Complex64:  "c",
	Complex128: "z",
	Float16:    "h",
	BFloat16:   "b",
}

// Abbrev returns the one-letter abbreviation of the dtype: "s" (Float32), "d" (Float64), "c" (Complex64),
// "z" (Complex128), "h" (Float16) and "b" (BFloat16). It returns "" for unsupported dtypes.
func (dtype DType) Abbrev() string {
	return abbreviations[dtype]
}

// FromAbbrev is the inverse of DType.Abbrev. It returns InvalidDType for unknown abbreviations.
func FromAbbrev(abbrev string) DType {
	for dtype, a := range abbreviations {
		if a == abbrev {
			return dtype
		}
	}
	return InvalidDType
}
