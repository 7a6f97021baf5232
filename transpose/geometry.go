package transpose

import (
	"slices"

	"github.com/gomlx/transpose/pkg/support/xslices"
)

// geometry is the memory layout of a validated Request, expressed per input axis.
type geometry struct {
	order  int
	layout Layout
	perm   []int

	inSize, outSize   []int
	inOuter, outOuter []int // outOuter indexed by output axes.

	// inStride[a] is the stride of input axis a in the input buffer, and outStride[a] the stride
	// of the same axis in the output buffer (of output axis j with perm[j] == a).
	inStride, outStride []int

	// inBase, outBase are the positions of the first element of the sub-tensors.
	inBase, outBase int

	// inSpan, outSpan are the minimum length of the buffers: the number of elements of the outer tensors.
	inSpan, outSpan int

	alpha, beta float64
	usage       CoefUsage

	// size is the loop extent of each input axis after merging: axes merged into another axis have size 1.
	size []int

	// groups lists the input axes merged together: each group is traversed as one axis, stored in its
	// first axis.
	groups [][]int
}

// stridesFor returns the strides of a dense tensor with the given (outer) sizes.
func stridesFor(sizes []int, layout Layout) []int {
	strides := make([]int, len(sizes))
	stride := 1
	if layout == ColMajor {
		for axis := range sizes {
			strides[axis] = stride
			stride *= sizes[axis]
		}
	} else {
		for axis := len(sizes) - 1; axis >= 0; axis-- {
			strides[axis] = stride
			stride *= sizes[axis]
		}
	}
	return strides
}

func offsetOf(offsets, strides []int) (pos int) {
	for axis, off := range offsets {
		pos += off * strides[axis]
	}
	return
}

// newGeometry resolves the memory layout of a request already validated.
func newGeometry(r *Request, layout Layout) *geometry {
	g := &geometry{
		order:   r.Order,
		layout:  layout,
		perm:    slices.Clone(r.Perm),
		inSize:  slices.Clone(r.InSize),
		outSize: r.OutSize(),
		alpha:   r.Alpha,
		beta:    r.Beta,
		usage:   CoefUsageFor(r.Alpha, r.Beta),
	}
	g.inOuter = slices.Clone(r.InOuterSize)
	if len(g.inOuter) == 0 {
		g.inOuter = slices.Clone(g.inSize)
	}
	g.outOuter = slices.Clone(r.OutOuterSize)
	if len(g.outOuter) == 0 {
		g.outOuter = slices.Clone(g.outSize)
	}
	g.inSpan = xslices.Product(g.inOuter)
	g.outSpan = xslices.Product(g.outOuter)

	g.inStride = stridesFor(g.inOuter, layout)
	outAxisStride := stridesFor(g.outOuter, layout)
	g.outStride = make([]int, g.order)
	for outAxis, inAxis := range g.perm {
		g.outStride[inAxis] = outAxisStride[outAxis]
	}
	g.inBase = offsetOf(r.InOffset, g.inStride)
	g.outBase = offsetOf(r.OutOffset, outAxisStride)
	g.mergeAxes()
	return g
}

// mergeAxes merges pairs of input axes that are traversed contiguously in both tensors: axis x merges
// into axis y if stride[x] == stride[y]*size[y] in the input and in the output.
func (g *geometry) mergeAxes() {
	g.size = slices.Clone(g.inSize)
	g.groups = make([][]int, g.order)
	for axis := range g.order {
		g.groups[axis] = []int{axis}
	}
	for merged := true; merged; {
		merged = false
		for x := range g.order {
			if g.size[x] == 1 {
				continue
			}
			for y := range g.order {
				if x == y || g.size[y] == 1 {
					continue
				}
				if g.inStride[x] == g.inStride[y]*g.size[y] && g.outStride[x] == g.outStride[y]*g.size[y] {
					g.size[y] *= g.size[x]
					g.size[x] = 1
					g.groups[y] = append(g.groups[y], g.groups[x]...)
					g.groups[x] = nil
					merged = true
					break
				}
			}
		}
	}
	kept := g.groups[:0]
	for _, group := range g.groups {
		if len(group) > 0 {
			slices.Sort(group)
			kept = append(kept, group)
		}
	}
	g.groups = kept
}

// loopAxes returns the input axes with a loop extent larger than 1, in increasing order.
func (g *geometry) loopAxes() []int {
	axes := make([]int, 0, g.order)
	for axis, size := range g.size {
		if size > 1 {
			axes = append(axes, axis)
		}
	}
	return axes
}

// mergedOrder is the number of axes actually traversed after merging: at least 1.
func (g *geometry) mergedOrder() int {
	return max(1, len(g.loopAxes()))
}

// leadingAxes returns the input axis with the smallest input stride (a) and the one with the smallest
// output stride (b), among the axes traversed. If all axes are trivial, both are the axis 0.
func (g *geometry) leadingAxes() (a, b int) {
	axes := g.loopAxes()
	if len(axes) == 0 {
		return 0, 0
	}
	a, b = axes[0], axes[0]
	for _, axis := range axes[1:] {
		if g.inStride[axis] < g.inStride[a] {
			a = axis
		}
		if g.outStride[axis] < g.outStride[b] {
			b = axis
		}
	}
	return
}
