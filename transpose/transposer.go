// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transpose

import (
	"io"
	"reflect"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/transpose/pkg/core/dtypes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Transposer executes one transpose job, planned once at construction.
//
// It holds exactly one specialized engine, selected by the order of the tensors and the output mode
// (see Slot), and forwards all operations to it.
//
// A Transposer is not safe for concurrent use: calls to Execute must be serialized by the caller.
// Distinct Transposers are independent. The buffers are borrowed: they must stay alive (and not be
// resized) while the Transposer uses them.
type Transposer struct {
	engine  engine
	slot    Slot
	dtype   dtypes.DType
	outSize []int
}

// New creates a Transposer for the buffers in and out, with element type T.
//
// The request is validated, and the corresponding errors returned: ErrUnsupportedOrder, ErrShapeMismatch,
// ErrInvalidPermutation, ErrInvalidSize or ErrUnsupportedDType (use errors.Is to check). No engine is
// created if it fails.
func New[T dtypes.Element](in, out []T, req Request) (*Transposer, error) {
	return NewWithDType(dtypes.FromGenericsType[T](), in, out, req)
}

// NewWithDType creates a Transposer for the buffers in and out, which must be slices of the Go type of dtype
// (e.g.: []float32 for dtypes.Float32).
//
// See New for the errors returned.
func NewWithDType(dtype dtypes.DType, in, out any, req Request) (*Transposer, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	layout := req.Layout
	if layout == LayoutDefault {
		layout = cfg.Layout
	}
	g := newGeometry(&req, layout)
	for _, buf := range []struct {
		name string
		data any
		span int
	}{{"input", in, g.inSpan}, {"output", out, g.outSpan}} {
		length, isSlice := bufferLen(buf.data)
		if isSlice && length < buf.span {
			return nil, errors.Wrapf(ErrShapeMismatch, "%s buffer has %d elements, the shape requires %d",
				buf.name, length, buf.span)
		}
	}
	mode := ModeFromBeta(req.Beta)
	factory := lookupEngine(dtype, req.Order, mode)
	if factory == nil {
		return nil, errors.Wrapf(ErrUnsupportedDType, "no transpose engine for dtype %s", dtype)
	}
	tuning := req.Tuning.withDefaults(cfg)

	var e engine
	err := exceptions.TryCatch[error](func() {
		var err error
		e, err = factory(in, out, g, tuning)
		if err != nil {
			panic(err)
		}
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create transposer for dtype %s, sizes %v, perm %v",
			dtype, req.InSize, req.Perm)
	}
	t := &Transposer{
		engine:  e,
		slot:    e.slot(),
		dtype:   dtype,
		outSize: slices.Clone(g.outSize),
	}
	klog.V(1).Infof("transpose: new %s transposer %s, out sizes %v", dtype, t.slot, t.outSize)
	return t, nil
}

// bufferLen returns the length of a slice, and whether data is a slice (or untyped nil, of length 0).
func bufferLen(data any) (int, bool) {
	if data == nil {
		return 0, true
	}
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return 0, false
	}
	return v.Len(), true
}

// call runs fn on the engine, converting panics to errors.
func (t *Transposer) call(fn func(e engine) error) error {
	if t == nil || t.engine == nil {
		return ErrFinalized
	}
	var fnErr error
	err := exceptions.TryCatch[error](func() { fnErr = fn(t.engine) })
	if err != nil {
		return err
	}
	return fnErr
}

// Execute runs the transposition, blocking until it is complete.
//
// In Accumulate mode each call accumulates again into the output.
// If thread ids are set (see SetThreadIDs), one task per thread id is run.
func (t *Transposer) Execute() error {
	return t.call(func(e engine) error {
		e.execute()
		return nil
	})
}

// ExecuteThread runs the partitions of the plan bound to threadID by SetThreadIDs, in the calling goroutine.
//
// It is meant for embedding in an external worker pool: each worker calls ExecuteThread with its own id,
// and the transposition is complete once all of them returned. It returns ErrThreadIDs if no thread
// ids are set, or if threadID is not one of them.
func (t *Transposer) ExecuteThread(threadID int) error {
	return t.call(func(e engine) error {
		return e.executeThread(threadID)
	})
}

// ResetOperands rebinds the Transposer to new input and output buffers, keeping the plan.
//
// The buffers must have the Go type of the Transposer's DType (ErrUnsupportedDType otherwise), and be
// large enough for the shapes given at construction (ErrShapeMismatch otherwise).
func (t *Transposer) ResetOperands(in, out any) error {
	return t.call(func(e engine) error {
		return e.resetOperands(in, out)
	})
}

// SetThreadIDs binds the partitions of the plan to the given worker ids: partition p is executed by
// ids[p % len(ids)]. The ids must be unique and non-negative (ErrThreadIDs otherwise).
func (t *Transposer) SetThreadIDs(ids []int) error {
	return t.call(func(e engine) error {
		return e.setThreadIDs(ids)
	})
}

// UnsetThreadIDs restores the default execution, where Execute distributes the partitions
// to an internal pool of goroutines.
//
// It is a no-op after Finalize. Other failures are logged.
func (t *Transposer) UnsetThreadIDs() {
	err := t.call(func(e engine) error {
		e.unsetThreadIDs()
		return nil
	})
	if err != nil && !errors.Is(err, ErrFinalized) {
		klog.Warningf("transpose: UnsetThreadIDs failed for %s transposer %s: %+v", t.dtype, t.slot, err)
	}
}

// DescribePlan returns the description of the plan. It returns an empty description after Finalize.
func (t *Transposer) DescribePlan() PlanDescription {
	if t == nil || t.engine == nil {
		return PlanDescription{}
	}
	return t.engine.plan().Describe()
}

// PrintPlan writes the loop order and the parallelization strategy of the plan to w.
func (t *Transposer) PrintPlan(w io.Writer) error {
	return t.call(func(e engine) error {
		return e.plan().Print(w)
	})
}

// Slot returns the order and output mode of the engine used.
func (t *Transposer) Slot() Slot {
	return t.slot
}

// DType returns the element type of the Transposer.
func (t *Transposer) DType() dtypes.DType {
	return t.dtype
}

// OutSize returns the sizes of each output axis.
func (t *Transposer) OutSize() []int {
	return slices.Clone(t.outSize)
}

// Finalize releases the engine. It is safe to call it more than once, and the Transposer returns
// ErrFinalized on any further use.
func (t *Transposer) Finalize() {
	if t == nil || t.engine == nil {
		return
	}
	t.engine.release()
	t.engine = nil
}
