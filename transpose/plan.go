// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transpose

import (
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"github.com/gomlx/transpose/internal/arch"
	"github.com/gomlx/transpose/pkg/support/xslices"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// loopNest is the compiled form of a plan used by the engines: one level per input axis, outermost first.
// Only the first order entries of the arrays are used.
type loopNest struct {
	order int
	axes  [MaxOrder]int // Input axis of each level.

	size, step          [MaxOrder]int
	inStride, outStride [MaxOrder]int

	// levelA and levelB are the levels of the input and output leading axes, traversed by the kernel.
	// If tiled is false they are the same, and the kernel transposes a line.
	levelA, levelB int
	tiled          bool

	// shape has the kernel strides set, the extents are set at each kernel call.
	shape tileShape
}

// partition is the sub-range of each level of the loop nest executed by one task.
type partition struct {
	begin, end [MaxOrder]int
}

// Plan is one execution plan of a transposition: the order of the loops over the axes, and the number
// of threads splitting each axis. It is created once per Transposer and kept across ResetOperands.
type Plan struct {
	id          uuid.UUID
	loopOrder   []int
	threads     []int
	tileWidth   int
	kernel      string
	mergedOrder int

	nest       loopNest
	partitions []partition
}

// PlanDescription describes the plan selected by a Transposer.
type PlanDescription struct {
	// ID identifies the plan, it changes only if a new Transposer is created.
	ID uuid.UUID

	// LoopOrder lists the input axes from the outermost loop to the innermost one.
	LoopOrder []int

	// ParallelStrategy is the number of threads splitting each input axis.
	ParallelStrategy []int

	// MergedOrder is the number of axes after merging axes contiguous in both tensors.
	MergedOrder int

	// Kernel is the name of the macro kernel variant, e.g. "tile16x16/both" or "line/none".
	Kernel string

	// NumPartitions executed in parallel.
	NumPartitions int
}

// Describe returns the PlanDescription of the plan.
func (p *Plan) Describe() PlanDescription {
	return PlanDescription{
		ID:               p.id,
		LoopOrder:        slices.Clone(p.loopOrder),
		ParallelStrategy: slices.Clone(p.threads),
		MergedOrder:      p.mergedOrder,
		Kernel:           p.kernel,
		NumPartitions:    len(p.partitions),
	}
}

// Print writes the loop order and parallelization of the plan to w, one per line.
func (p *Plan) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Loop order: %s\nParallelization: %s\n",
		xslices.Join(p.loopOrder, " "), xslices.Join(p.threads, " "))
	return errors.Wrap(err, "failed to print plan")
}

// String implements fmt.Stringer.
func (p *Plan) String() string {
	parallelization := "sequential"
	if !xslices.AllEqual(p.threads, 1) {
		parallelization = fmt.Sprint(p.threads)
	}
	return fmt.Sprintf("Plan{loop order=%v, parallelization=%s, kernel=%s}", p.loopOrder, parallelization, p.kernel)
}

// axisSteps returns the step of each input axis: the kernel axes advance a tile (or a full line)
// per iteration, the others one element.
func axisSteps(g *geometry, tileWidth int) (steps []int, a, b int, tiled bool) {
	a, b = g.leadingAxes()
	tiled = a != b
	steps = make([]int, g.order)
	for axis := range steps {
		steps[axis] = 1
	}
	if tiled {
		steps[a] = tileWidth
		steps[b] = tileWidth
	} else {
		steps[a] = g.size[a]
	}
	return
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// newPlan compiles the plan for the given loop order (all input axes, outermost first) and threads per axis.
func newPlan(g *geometry, loopOrder, threads []int, tileWidth int) *Plan {
	steps, a, b, tiled := axisSteps(g, tileWidth)
	if !tiled {
		tileWidth = 0
	}
	p := &Plan{
		id:          uuid.New(),
		loopOrder:   slices.Clone(loopOrder),
		threads:     slices.Clone(threads),
		tileWidth:   tileWidth,
		kernel:      kernelName(tiled, tileWidth, g.usage),
		mergedOrder: g.mergedOrder(),
	}
	nest := &p.nest
	nest.order = g.order
	nest.tiled = tiled
	for level, axis := range loopOrder {
		nest.axes[level] = axis
		nest.size[level] = g.size[axis]
		nest.step[level] = steps[axis]
		nest.inStride[level] = g.inStride[axis]
		nest.outStride[level] = g.outStride[axis]
		if axis == a {
			nest.levelA = level
		}
		if axis == b {
			nest.levelB = level
		}
	}
	if tiled {
		nest.shape = tileShape{inA: g.inStride[a], inB: g.inStride[b], outA: g.outStride[a], outB: g.outStride[b]}
	} else {
		nest.shape = tileShape{extA: 1, inB: g.inStride[a], outB: g.outStride[a]}
	}
	p.partitions = buildPartitions(nest, threads)
	return p
}

// buildPartitions splits each level of the nest in the number of chunks given by threads (indexed by
// input axis), and returns the non-empty cartesian product of the chunks.
func buildPartitions(nest *loopNest, threads []int) []partition {
	var full partition
	for level := range nest.order {
		full.end[level] = nest.size[level]
	}
	partitions := []partition{full}
	for level := range nest.order {
		numChunks := threads[nest.axes[level]]
		if numChunks <= 1 {
			continue
		}
		iters := ceilDiv(nest.size[level], nest.step[level])
		chunkLen := ceilDiv(iters, numChunks) * nest.step[level]
		split := make([]partition, 0, len(partitions)*numChunks)
		for _, part := range partitions {
			for chunk := range numChunks {
				begin := chunk * chunkLen
				end := min(begin+chunkLen, nest.size[level])
				if begin >= end {
					continue
				}
				part.begin[level], part.end[level] = begin, end
				split = append(split, part)
			}
		}
		partitions = split
	}
	return partitions
}

// orderCandidate is a loop order (input axes, outermost first) with its heuristic cost.
type orderCandidate struct {
	order []int
	cost  float64
}

// loopOrderCandidates returns the loop orders ranked by a stride penalty heuristic: the cost of each loop is
// the log of the memory distance it jumps per iteration in both tensors, weighted by how deep it is in the nest.
// At most keep candidates are returned, all of them if keep is negative.
//
// Trivial axes (after merging) go outermost, and axes with a single iteration (a line kernel axis)
// innermost: their position doesn't change the traversal, so they are not permuted.
func loopOrderCandidates(g *geometry, tileWidth, keep int) []orderCandidate {
	steps, _, _, _ := axisSteps(g, tileWidth)
	var prefix, free, suffix []int
	for axis := range g.order {
		switch {
		case g.size[axis] == 1:
			prefix = append(prefix, axis)
		case ceilDiv(g.size[axis], steps[axis]) == 1:
			suffix = append(suffix, axis)
		default:
			free = append(free, axis)
		}
	}
	jump := make([]float64, g.order)
	for _, axis := range free {
		jump[axis] = math.Log2(float64(g.inStride[axis]*steps[axis])) + math.Log2(float64(g.outStride[axis]*steps[axis]))
	}

	var candidates []orderCandidate
	forEachPermutation(free, func(perm []int) {
		cost := 0.0
		weight := 1.0
		for pos := len(perm) - 1; pos >= 0; pos-- {
			cost += weight * jump[perm[pos]]
			weight /= 2
		}
		order := make([]int, 0, g.order)
		order = append(order, prefix...)
		order = append(order, perm...)
		order = append(order, suffix...)
		candidates = append(candidates, orderCandidate{order: order, cost: cost})
	})
	slices.SortStableFunc(candidates, func(x, y orderCandidate) int {
		if x.cost != y.cost {
			if x.cost < y.cost {
				return -1
			}
			return 1
		}
		return slices.Compare(x.order, y.order)
	})
	if keep >= 0 && len(candidates) > max(keep, 1) {
		candidates = candidates[:max(keep, 1)]
	}
	return candidates
}

// forEachPermutation calls fn with every permutation of values (Heap's algorithm). The slice passed to
// fn is reused between calls.
func forEachPermutation(values []int, fn func(perm []int)) {
	perm := slices.Clone(values)
	counters := make([]int, len(perm))
	fn(perm)
	for i := 1; i < len(perm); {
		if counters[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[counters[i]], perm[i] = perm[i], perm[counters[i]]
			}
			fn(perm)
			counters[i]++
			i = 1
		} else {
			counters[i] = 0
			i++
		}
	}
}

// paraCandidate is a parallelization strategy (threads per input axis) with its heuristic score.
type paraCandidate struct {
	threads []int
	score   float64
}

// maxParaEnumeration bounds the number of strategies enumerated.
const maxParaEnumeration = 1 << 15

// parallelCandidates returns the parallelization strategies for the loop order, ranked by a score
// combining the threads left idle, the load imbalance of uneven chunks, and a penalty for splitting inner
// loops or the kernel axes. At most keep candidates are returned, all of them if keep is negative.
func parallelCandidates(g *geometry, loopOrder []int, tileWidth, numThreads, keep int) []paraCandidate {
	steps, a, b, _ := axisSteps(g, tileWidth)
	iters := make([]int, g.order)
	var axes []int
	for _, axis := range loopOrder {
		iters[axis] = ceilDiv(g.size[axis], steps[axis])
		if iters[axis] > 1 {
			axes = append(axes, axis)
		}
	}
	maxProduct := 1
	for _, axis := range axes {
		maxProduct = min(numThreads, maxProduct*iters[axis])
	}

	var candidates []paraCandidate
	threads := make([]int, g.order)
	for axis := range threads {
		threads[axis] = 1
	}
	enumerated := 0
	var recurse func(pos, product int)
	recurse = func(pos, product int) {
		if enumerated >= maxParaEnumeration {
			return
		}
		if pos == len(axes) {
			enumerated++
			if 2*product < maxProduct && product != maxProduct {
				return
			}
			balance, penalty := 1.0, 0.0
			for depth, axis := range axes {
				c := threads[axis]
				if c <= 1 {
					continue
				}
				balance *= float64(ceilDiv(iters[axis], c)*c) / float64(iters[axis])
				penalty += 0.02 * float64(depth)
				if axis == a || axis == b {
					penalty += 0.05
				}
			}
			score := float64(numThreads) / float64(product) * balance * (1 + penalty)
			candidates = append(candidates, paraCandidate{threads: slices.Clone(threads), score: score})
			return
		}
		axis := axes[pos]
		for c := 1; c <= iters[axis] && product*c <= numThreads; c++ {
			threads[axis] = c
			recurse(pos+1, product*c)
		}
		threads[axis] = 1
	}
	recurse(0, 1)
	if len(candidates) == 0 {
		candidates = append(candidates, paraCandidate{threads: threads, score: float64(numThreads)})
	}
	slices.SortStableFunc(candidates, func(x, y paraCandidate) int {
		if x.score != y.score {
			if x.score < y.score {
				return -1
			}
			return 1
		}
		return slices.Compare(x.threads, y.threads)
	})
	if keep >= 0 && len(candidates) > max(keep, 1) {
		candidates = candidates[:max(keep, 1)]
	}
	return candidates
}

// planMeasurer executes a candidate plan once and returns how long it took.
type planMeasurer func(p *Plan) time.Duration

// makePlan selects the plan for the geometry: the best heuristic candidate, or, if tuning is enabled
// and measure is not nil, the fastest measured candidate.
func makePlan(g *geometry, elemSize int, tuning Tuning, measure planMeasurer) *Plan {
	tileWidth := arch.Current().TileWidth(elemSize)
	orders := loopOrderCandidates(g, tileWidth, tuning.HeurLoopNum)
	tuned := measure != nil && (tuning.TuneLoopNum != 0 || tuning.TuneParaNum != 0)
	if !tuned {
		paras := parallelCandidates(g, orders[0].order, tileWidth, tuning.NumThreads, 1)
		p := newPlan(g, orders[0].order, paras[0].threads, tileWidth)
		klog.V(1).Infof("transpose: heuristic %s for sizes %v, perm %v", p, g.inSize, g.perm)
		return p
	}

	numOrders := len(orders)
	if tuning.TuneLoopNum > 0 {
		numOrders = min(numOrders, tuning.TuneLoopNum)
	} else if tuning.TuneLoopNum == 0 {
		numOrders = 1
	}
	var deadline time.Time
	if tuning.Timeout > 0 {
		deadline = time.Now().Add(tuning.Timeout)
	}
	var (
		best     *Plan
		bestTime time.Duration
		measured int
	)
candidatesLoop:
	for _, order := range orders[:numOrders] {
		paras := parallelCandidates(g, order.order, tileWidth, tuning.NumThreads, tuning.HeurParaNum)
		numParas := len(paras)
		if tuning.TuneParaNum > 0 {
			numParas = min(numParas, tuning.TuneParaNum)
		} else if tuning.TuneParaNum == 0 {
			numParas = 1
		}
		for _, para := range paras[:numParas] {
			if measured > 0 && !deadline.IsZero() && time.Now().After(deadline) {
				klog.V(1).Infof("transpose: tuning timeout %s after %d measurements", tuning.Timeout, measured)
				break candidatesLoop
			}
			candidate := newPlan(g, order.order, para.threads, tileWidth)
			if measured == 0 {
				// Warm-up caches.
				measure(candidate)
			}
			elapsed := measure(candidate)
			measured++
			klog.V(2).Infof("transpose: candidate %s (cost %.2f, score %.2f): %s",
				candidate, order.cost, para.score, elapsed)
			if best == nil || elapsed < bestTime {
				best, bestTime = candidate, elapsed
			}
		}
	}
	klog.V(1).Infof("transpose: tuned %s (%s) among %d candidates for sizes %v, perm %v",
		best, bestTime, measured, g.inSize, g.perm)
	return best
}
