package transpose

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/transpose/internal/workerspool"
	"github.com/gomlx/transpose/pkg/core/dtypes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// engine is the capability shared by all specialized engines: engineN[T, M] for each order N, element
// type T and output mode M. A Transposer holds exactly one.
type engine interface {
	slot() Slot
	dtype() dtypes.DType
	plan() *Plan
	execute()
	executeThread(threadID int) error
	resetOperands(in, out any) error
	setThreadIDs(ids []int) error
	unsetThreadIDs()
	release()
}

// liveEngines counts the engines created and not yet released.
var liveEngines atomic.Int64

// engineBase holds the state common to the engines of element type T. The engines embed it and provide
// runPartition, the loop nest of their order.
type engineBase[T dtypes.Element] struct {
	engineSlot Slot
	in, out    []T
	geo        *geometry
	execPlan   *Plan
	kernel     kernel[T]
	pool       *workerspool.Pool

	// run executes one partition of the nest, writing to out.
	run func(out []T, nest *loopNest, part *partition)

	// threadIDs bound with setThreadIDs, and the thread id owning each partition. Both nil when unset.
	threadIDs []int
	owners    []int

	released bool
}

// setup binds the operands and plans the execution. run is the loop nest of the embedding engine.
func (e *engineBase[T]) setup(slot Slot, in, out any, g *geometry, tuning Tuning,
	run func(out []T, nest *loopNest, part *partition)) error {
	if slot.Order != g.order {
		exceptions.Panicf("engine for %s created for a tensor of order %d", slot, g.order)
	}
	if slot.Mode != g.usage.Mode() {
		exceptions.Panicf("engine for %s created for coefficients alpha=%g, beta=%g", slot, g.alpha, g.beta)
	}
	e.engineSlot = slot
	e.geo = g
	e.run = run
	e.pool = workerspool.Default()
	if err := e.bind(in, out); err != nil {
		return err
	}
	e.kernel = getKernel[T](g.usage, g.alpha, g.beta)
	var measure planMeasurer
	if tuning.TuneLoopNum != 0 || tuning.TuneParaNum != 0 {
		scratch := slices.Clone(e.out)
		measure = func(p *Plan) time.Duration {
			start := time.Now()
			e.runPartitions(scratch, p, nil)
			return time.Since(start)
		}
	}
	e.execPlan = makePlan(g, dtypes.FromGenericsType[T]().Size(), tuning, measure)
	liveEngines.Add(1)
	return nil
}

// bind checks and sets the operands.
func (e *engineBase[T]) bind(in, out any) error {
	inT, ok := in.([]T)
	if !ok {
		return errors.Wrapf(ErrUnsupportedDType, "input buffer of type %T, expected %T", in, e.in)
	}
	outT, ok := out.([]T)
	if !ok {
		return errors.Wrapf(ErrUnsupportedDType, "output buffer of type %T, expected %T", out, e.out)
	}
	if len(inT) < e.geo.inSpan {
		return errors.Wrapf(ErrShapeMismatch, "input buffer has %d elements, %d required", len(inT), e.geo.inSpan)
	}
	if len(outT) < e.geo.outSpan {
		return errors.Wrapf(ErrShapeMismatch, "output buffer has %d elements, %d required", len(outT), e.geo.outSpan)
	}
	e.in, e.out = inT, outT
	return nil
}

func (e *engineBase[T]) slot() Slot          { return e.engineSlot }
func (e *engineBase[T]) dtype() dtypes.DType { return dtypes.FromGenericsType[T]() }
func (e *engineBase[T]) plan() *Plan         { return e.execPlan }

// runPartitions executes the partitions of p writing to out. If selected is not nil, only the
// partitions for which it returns true are run, sequentially in the calling goroutine.
func (e *engineBase[T]) runPartitions(out []T, p *Plan, selected func(partIdx int) bool) {
	parts := p.partitions
	if selected != nil {
		for partIdx := range parts {
			if selected(partIdx) {
				e.run(out, &p.nest, &parts[partIdx])
			}
		}
		return
	}
	if len(parts) == 1 {
		e.run(out, &p.nest, &parts[0])
		return
	}
	e.pool.Run(len(parts), func(partIdx int) {
		e.run(out, &p.nest, &parts[partIdx])
	})
}

func (e *engineBase[T]) execute() {
	if e.threadIDs == nil {
		e.runPartitions(e.out, e.execPlan, nil)
		return
	}
	ids := e.threadIDs
	e.pool.Run(len(ids), func(idx int) {
		e.runThread(ids[idx])
	})
}

func (e *engineBase[T]) runThread(threadID int) {
	e.runPartitions(e.out, e.execPlan, func(partIdx int) bool {
		return e.owners[partIdx] == threadID
	})
}

func (e *engineBase[T]) executeThread(threadID int) error {
	if e.threadIDs == nil {
		return errors.Wrapf(ErrThreadIDs, "ExecuteThread(%d) called without thread ids set", threadID)
	}
	if !slices.Contains(e.threadIDs, threadID) {
		return errors.Wrapf(ErrThreadIDs, "thread id %d not in the thread ids set %v", threadID, e.threadIDs)
	}
	e.runThread(threadID)
	return nil
}

func (e *engineBase[T]) resetOperands(in, out any) error {
	return e.bind(in, out)
}

// setThreadIDs binds partition p to ids[p % len(ids)].
func (e *engineBase[T]) setThreadIDs(ids []int) error {
	if len(ids) == 0 {
		return errors.Wrap(ErrThreadIDs, "empty list of thread ids")
	}
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id < 0 {
			return errors.Wrapf(ErrThreadIDs, "negative thread id %d in %v", id, ids)
		}
		if seen[id] {
			return errors.Wrapf(ErrThreadIDs, "duplicate thread id %d in %v", id, ids)
		}
		seen[id] = true
	}
	e.threadIDs = slices.Clone(ids)
	e.owners = make([]int, len(e.execPlan.partitions))
	for partIdx := range e.owners {
		e.owners[partIdx] = e.threadIDs[partIdx%len(ids)]
	}
	klog.V(2).Infof("transpose %s: %d partitions bound to thread ids %v", e.engineSlot, len(e.owners), ids)
	return nil
}

func (e *engineBase[T]) unsetThreadIDs() {
	e.threadIDs = nil
	e.owners = nil
}

func (e *engineBase[T]) release() {
	if e.released {
		return
	}
	e.released = true
	e.in, e.out = nil, nil
	e.kernel = nil
	e.run = nil
	e.unsetThreadIDs()
	liveEngines.Add(-1)
}
