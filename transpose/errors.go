package transpose

import "github.com/pkg/errors"

// Errors returned by the transposer, possibly wrapped with more context. Use errors.Is to check for them.
var (
	// ErrUnsupportedOrder is returned when the requested order has no engine, see IsSupportedOrder.
	ErrUnsupportedOrder = errors.New("unsupported tensor order")

	// ErrShapeMismatch is returned when the sizes, permutation, outer sizes or offsets don't have
	// one value per axis, or when a buffer is too small for the requested shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidPermutation is returned when the permutation is not a bijection on the axes.
	ErrInvalidPermutation = errors.New("invalid permutation")

	// ErrInvalidSize is returned for zero (or negative) sizes, negative offsets, or outer sizes
	// that don't hold the sub-tensor.
	ErrInvalidSize = errors.New("invalid size")

	// ErrUnsupportedDType is returned for element types without engines, or buffers whose
	// Go type doesn't match the element type.
	ErrUnsupportedDType = errors.New("unsupported dtype")

	// ErrThreadIDs is returned for invalid thread ids, or when executing on a thread id not bound.
	ErrThreadIDs = errors.New("invalid thread ids")

	// ErrFinalized is returned when using a Transposer after Finalize.
	ErrFinalized = errors.New("transposer already finalized")
)
