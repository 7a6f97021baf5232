package transpose

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gomlx/transpose/pkg/support/xslices"
	"github.com/pkg/errors"
)

// Layout of the tensors in memory.
type Layout int

const (
	// LayoutDefault takes the layout from DefaultConfig.
	LayoutDefault Layout = iota

	// RowMajor layout: the last axis is contiguous in memory (C/Go convention).
	RowMajor

	// ColMajor layout: the first axis is contiguous in memory (Fortran/BLAS convention).
	ColMajor
)

// ParseLayout parses "row" (or "row_major") and "col" (or "col_major").
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(s) {
	case "row", "row_major", "rowmajor":
		return RowMajor, nil
	case "col", "col_major", "colmajor":
		return ColMajor, nil
	case "", "default":
		return LayoutDefault, nil
	}
	return LayoutDefault, errors.Errorf("unknown layout %q, valid values are \"row\" and \"col\"", s)
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case LayoutDefault:
		return "Default"
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Tuning parameters of the planner. Zero values take the defaults from DefaultConfig.
type Tuning struct {
	// NumThreads used to parallelize Execute.
	NumThreads int

	// TuneLoopNum, TuneParaNum: number of loop orders and parallelization strategies measured.
	// Negative values measure all kept candidates.
	TuneLoopNum, TuneParaNum int

	// HeurLoopNum, HeurParaNum: number of candidates kept by the heuristics. Negative keeps all.
	HeurLoopNum, HeurParaNum int

	// Timeout for the measurements. Negative means no limit.
	Timeout time.Duration

	// SkipTuning disables the measurements, even if DefaultConfig enables them.
	SkipTuning bool
}

// withDefaults returns the tuning with the zero values replaced by the values in cfg.
func (t Tuning) withDefaults(cfg Config) Tuning {
	setIfZero := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	setIfZero(&t.NumThreads, cfg.NumThreads)
	setIfZero(&t.TuneLoopNum, cfg.TuneLoopNum)
	setIfZero(&t.TuneParaNum, cfg.TuneParaNum)
	setIfZero(&t.HeurLoopNum, cfg.HeurLoopNum)
	setIfZero(&t.HeurParaNum, cfg.HeurParaNum)
	if t.Timeout == 0 {
		t.Timeout = cfg.Timeout
	}
	if t.NumThreads < 1 {
		t.NumThreads = 1
	}
	if t.SkipTuning {
		t.TuneLoopNum = 0
		t.TuneParaNum = 0
	}
	return t
}

// Request describes one transpose job: B[perm(i)] = Alpha * A[i] + Beta * B[perm(i)].
//
// Output axis j of B is input axis Perm[j] of A, so the output sizes are InSize[Perm[j]].
type Request struct {
	// Order is the number of axes.
	Order int

	// InSize is the size of each input axis, and Perm the input axis for each output axis.
	InSize, Perm []int

	// Alpha scales the input and Beta the prior contents of the output. For complex elements
	// they scale both the real and imaginary parts.
	Alpha, Beta float64

	// InOuterSize and OutOuterSize are the padded sizes of the tensors in memory, the logical
	// tensors being sub-tensors of those. Either empty (same as logical sizes) or one per axis.
	// OutOuterSize is indexed by the output axes.
	InOuterSize, OutOuterSize []int

	// InOffset and OutOffset are the position of the logical sub-tensor inside the outer tensor.
	// Either empty (zeros) or one per axis.
	InOffset, OutOffset []int

	// Layout of the buffers. LayoutDefault takes it from DefaultConfig.
	Layout Layout

	// Tuning parameters of the planning.
	Tuning Tuning
}

// NewRequest returns a Request for a plain transposition (Alpha=1, Beta=0) of a tensor with the given sizes.
func NewRequest(inSize, perm []int) Request {
	return Request{
		Order:  len(inSize),
		InSize: inSize,
		Perm:   perm,
		Alpha:  1,
	}
}

// OutSize returns the sizes of the output axes: OutSize()[j] = InSize[Perm[j]].
// It assumes the request is valid.
func (r Request) OutSize() []int {
	return xslices.Permute(r.InSize, r.Perm)
}

// validate checks the shape of the request: the first failure found, in the order the
// errors are checked, is returned.
func (r *Request) validate() error {
	if !IsSupportedOrder(r.Order) {
		return errors.Wrapf(ErrUnsupportedOrder, "order %d not in the supported range [%d, %d]",
			r.Order, MinOrder, MaxOrder)
	}
	if len(r.InSize) != r.Order {
		return errors.Wrapf(ErrShapeMismatch, "len(InSize)=%d for order %d", len(r.InSize), r.Order)
	}
	if len(r.Perm) != r.Order {
		return errors.Wrapf(ErrShapeMismatch, "len(Perm)=%d for order %d", len(r.Perm), r.Order)
	}
	for _, opt := range []struct {
		name   string
		values []int
	}{
		{"InOuterSize", r.InOuterSize}, {"OutOuterSize", r.OutOuterSize},
		{"InOffset", r.InOffset}, {"OutOffset", r.OutOffset},
	} {
		if len(opt.values) != 0 && len(opt.values) != r.Order {
			return errors.Wrapf(ErrShapeMismatch, "len(%s)=%d must be 0 or the order %d",
				opt.name, len(opt.values), r.Order)
		}
	}
	if !xslices.IsPermutation(r.Perm) {
		return errors.Wrapf(ErrInvalidPermutation, "Perm=%v is not a permutation of the %d axes", r.Perm, r.Order)
	}
	for axis, size := range r.InSize {
		if size <= 0 {
			return errors.Wrapf(ErrInvalidSize, "InSize[%d]=%d must be positive", axis, size)
		}
	}
	outSize := r.OutSize()
	check := func(prefix string, sizes, outer, offset []int) error {
		for axis, size := range sizes {
			off := 0
			if len(offset) > 0 {
				off = offset[axis]
			}
			if off < 0 {
				return errors.Wrapf(ErrInvalidSize, "%sOffset[%d]=%d cannot be negative", prefix, axis, off)
			}
			if off > math.MaxInt-size {
				return errors.Wrapf(ErrInvalidSize, "%sOffset[%d]=%d + size %d overflows", prefix, axis, off, size)
			}
			if len(outer) > 0 && outer[axis] < off+size {
				return errors.Wrapf(ErrInvalidSize, "%sOuterSize[%d]=%d is smaller than offset %d + size %d",
					prefix, axis, outer[axis], off, size)
			}
			if len(outer) == 0 && off != 0 {
				return errors.Wrapf(ErrInvalidSize, "%sOffset[%d]=%d requires %sOuterSize to be set",
					prefix, axis, off, prefix)
			}
		}
		// The product of the extents is the buffer span, it must fit an int.
		extents := outer
		if len(extents) == 0 {
			extents = sizes
		}
		span := 1
		for axis, extent := range extents {
			if extent > math.MaxInt/span {
				return errors.Wrapf(ErrInvalidSize, "%s tensor extents %v overflow at axis %d", prefix, extents, axis)
			}
			span *= extent
		}
		return nil
	}
	if err := check("In", r.InSize, r.InOuterSize, r.InOffset); err != nil {
		return err
	}
	return check("Out", outSize, r.OutOuterSize, r.OutOffset)
}
