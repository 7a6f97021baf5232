package dtypes

import "strconv"

// The numeric values follow github.com/gomlx/gomlx/pkg/core/dtypes (and PJRT's PJRT_Buffer_Type),
// so buffers tagged by either package can be converted with a plain cast.

// DType is an enum that represents the element type of the buffers being transposed.
type DType int32

const (
	// InvalidDType is the zero value, used to flag unknown or unset types.
	InvalidDType DType = 0

	// Float16 is the IEEE 754 half-precision type, represented by github.com/x448/float16.Float16.
	Float16 DType = 10

	// Float32 is the Go float32.
	Float32 DType = 11

	// Float64 is the Go float64.
	Float64 DType = 12

	// BFloat16 is the truncated 16 bits float, represented by bfloat16.BFloat16.
	BFloat16 DType = 13

	// Complex64 is the Go complex64: two float32 components.
	Complex64 DType = 14

	// Complex128 is the Go complex128: two float64 components.
	Complex128 DType = 15
)

// MaxDTypes is an upper bound (exclusive) of the DType values, used to size tables indexed by DType.
const MaxDTypes = 16

var dtypeNames = map[DType]string{
	InvalidDType: "InvalidDType",
	Float16:      "Float16",
	Float32:      "Float32",
	Float64:      "Float64",
	BFloat16:     "BFloat16",
	Complex64:    "Complex64",
	Complex128:   "Complex128",
}

// String implements fmt.Stringer.
func (dtype DType) String() string {
	if name, found := dtypeNames[dtype]; found {
		return name
	}
	return "DType(" + strconv.Itoa(int(dtype)) + ")"
}
