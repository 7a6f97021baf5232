package transpose

import (
	"slices"
	"testing"

	"github.com/gomlx/transpose/pkg/support/xslices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geometryFor(t *testing.T, sizes, perm []int) *geometry {
	t.Helper()
	req := NewRequest(sizes, perm)
	require.NoError(t, req.validate())
	return newGeometry(&req, RowMajor)
}

func TestGeometryStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, stridesFor([]int{2, 3, 4}, RowMajor))
	assert.Equal(t, []int{1, 2, 6}, stridesFor([]int{2, 3, 4}, ColMajor))

	req := Request{Order: 2, InSize: []int{2, 3}, Perm: []int{1, 0}, Alpha: 1,
		InOuterSize: []int{4, 5}, InOffset: []int{1, 2}, OutOuterSize: []int{3, 3}, OutOffset: []int{0, 1}}
	require.NoError(t, req.validate())
	g := newGeometry(&req, RowMajor)
	assert.Equal(t, []int{5, 1}, g.inStride)
	// Output axis 0 is input axis 1, with stride 3.
	assert.Equal(t, []int{1, 3}, g.outStride)
	assert.Equal(t, 1*5+2, g.inBase)
	assert.Equal(t, 1, g.outBase)
	assert.Equal(t, 20, g.inSpan)
	assert.Equal(t, 9, g.outSpan)
	assert.Equal(t, []int{3, 2}, g.outSize)
}

func TestMergeAxes(t *testing.T) {
	// Identity: everything merges into the last axis.
	g := geometryFor(t, []int{2, 3, 4}, []int{0, 1, 2})
	assert.Equal(t, []int{1, 1, 24}, g.size)
	assert.Equal(t, [][]int{{0, 1, 2}}, g.groups)
	assert.Equal(t, 1, g.mergedOrder())

	// Two pairs of axes moving together.
	g = geometryFor(t, []int{2, 3, 4, 5}, []int{2, 3, 0, 1})
	assert.Equal(t, []int{1, 6, 1, 20}, g.size)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, g.groups)
	assert.Equal(t, 2, g.mergedOrder())
	a, b := g.leadingAxes()
	assert.Equal(t, 3, a)
	assert.Equal(t, 1, b)

	// A full reversal can't be merged.
	g = geometryFor(t, []int{2, 3, 4}, []int{2, 1, 0})
	assert.Equal(t, []int{2, 3, 4}, g.size)
	assert.Equal(t, 3, g.mergedOrder())

	// Outer sizes break contiguity.
	req := NewRequest([]int{2, 3}, []int{0, 1})
	req.InOuterSize = []int{2, 4}
	require.NoError(t, req.validate())
	g = newGeometry(&req, RowMajor)
	assert.Equal(t, []int{2, 3}, g.size)

	// All trivial axes.
	g = geometryFor(t, []int{1, 1}, []int{1, 0})
	assert.Equal(t, 1, g.mergedOrder())
	a, b = g.leadingAxes()
	assert.Equal(t, 0, a)
	assert.Equal(t, 0, b)
}

func TestForEachPermutation(t *testing.T) {
	seen := map[string]bool{}
	forEachPermutation([]int{3, 5, 7, 9}, func(perm []int) {
		require.ElementsMatch(t, []int{3, 5, 7, 9}, perm)
		seen[xslices.Join(perm, ",")] = true
	})
	assert.Len(t, seen, 24)

	count := 0
	forEachPermutation(nil, func(perm []int) { count++ })
	assert.Equal(t, 1, count)
}

func TestLoopOrderCandidates(t *testing.T) {
	g := geometryFor(t, []int{40, 1, 30, 50}, []int{3, 1, 2, 0})
	all := loopOrderCandidates(g, 8, -1)
	require.Len(t, all, 6)
	for ii, c := range all {
		assert.Equal(t, 1, c.order[0], "trivial axis should be outermost")
		assert.True(t, xslices.IsPermutation(c.order))
		if ii > 0 {
			assert.LessOrEqual(t, all[ii-1].cost, c.cost)
		}
	}
	assert.Len(t, loopOrderCandidates(g, 8, 2), 2)
	assert.Len(t, loopOrderCandidates(g, 8, 0), 1)
	assert.Equal(t, all[0].order, loopOrderCandidates(g, 8, 1)[0].order)

	// The axis with unit strides in both tensors should be the innermost loop.
	g = geometryFor(t, []int{40, 30, 7}, []int{1, 0, 2})
	best := loopOrderCandidates(g, 8, 1)[0]
	assert.Equal(t, 2, best.order[2])
}

func TestParallelCandidates(t *testing.T) {
	g := geometryFor(t, []int{64, 48, 3}, []int{1, 0, 2})
	order := loopOrderCandidates(g, 8, 1)[0].order
	all := parallelCandidates(g, order, 8, 6, -1)
	require.NotEmpty(t, all)
	for ii, c := range all {
		product := xslices.Product(c.threads)
		assert.LessOrEqual(t, product, 6)
		assert.GreaterOrEqual(t, 2*product, 6)
		// The line axis has a single iteration and is never split.
		assert.Equal(t, 1, c.threads[2])
		if ii > 0 {
			assert.LessOrEqual(t, all[ii-1].score, c.score)
		}
	}
	// A perfectly balanced split using all threads is the best.
	assert.Equal(t, 6, xslices.Product(all[0].threads))
	assert.Len(t, parallelCandidates(g, order, 8, 6, 3), 3)

	single := parallelCandidates(g, order, 8, 1, -1)
	require.Len(t, single, 1)
	assert.Equal(t, []int{1, 1, 1}, single[0].threads)
}

func TestBuildPartitions(t *testing.T) {
	for _, tc := range []struct {
		sizes, perm, threads []int
	}{
		{[]int{37, 12, 19}, []int{2, 1, 0}, []int{3, 1, 2}},
		{[]int{5, 9}, []int{1, 0}, []int{4, 2}},
		{[]int{64, 48, 3}, []int{1, 0, 2}, []int{2, 2, 1}},
	} {
		g := geometryFor(t, tc.sizes, tc.perm)
		order := loopOrderCandidates(g, 4, 1)[0].order
		p := newPlan(g, order, tc.threads, 4)
		// Partitions must cover each position of the loop nest exactly once.
		covered := make(map[[MaxOrder]int]int)
		for _, part := range p.partitions {
			idx := part.begin
			var visit func(level int)
			visit = func(level int) {
				if level == p.nest.order {
					covered[idx]++
					return
				}
				for idx[level] = part.begin[level]; idx[level] < part.end[level]; idx[level]++ {
					visit(level + 1)
				}
			}
			visit(0)
		}
		assert.Len(t, covered, xslices.Product(g.size), "sizes=%v", tc.sizes)
		for idx, count := range covered {
			require.Equal(t, 1, count, "index %v covered %d times", idx, count)
		}
		assert.LessOrEqual(t, len(p.partitions), xslices.Product(tc.threads))
		assert.Equal(t, slices.Clone(tc.threads), p.Describe().ParallelStrategy)
	}
}

func TestNewPlanKernel(t *testing.T) {
	g := geometryFor(t, []int{40, 30}, []int{1, 0})
	p := newPlan(g, []int{0, 1}, []int{1, 1}, 8)
	assert.True(t, p.nest.tiled)
	assert.Equal(t, "tile8x8/none", p.Describe().Kernel)
	assert.Equal(t, 8, p.nest.step[0])
	assert.Equal(t, 8, p.nest.step[1])

	g = geometryFor(t, []int{40, 30, 6}, []int{1, 0, 2})
	p = newPlan(g, []int{0, 1, 2}, []int{1, 1, 1}, 8)
	assert.False(t, p.nest.tiled)
	assert.Equal(t, "line/none", p.Describe().Kernel)
	assert.Equal(t, 6, p.nest.step[2])
	assert.Equal(t, 1, p.nest.shape.extA)

	// Different plans have different ids.
	assert.NotEqual(t, p.id, newPlan(g, []int{0, 1, 2}, []int{1, 1, 1}, 8).id)
}
