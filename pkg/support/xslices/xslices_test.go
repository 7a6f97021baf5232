package xslices

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIota(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, Iota(2, 3))
	assert.Equal(t, []float32{0.5, 1.5}, Iota(float32(0.5), 2))
	assert.Empty(t, Iota(0, 0))
}

func TestProduct(t *testing.T) {
	assert.Equal(t, 24, Product([]int{2, 3, 4}))
	assert.Equal(t, 1, Product([]int(nil)))
}

func TestPermutations(t *testing.T) {
	assert.True(t, IsPermutation([]int{2, 0, 1}))
	assert.True(t, IsPermutation(nil))
	assert.False(t, IsPermutation([]int{0, 0, 1}))
	assert.False(t, IsPermutation([]int{0, 3, 1}))
	assert.False(t, IsPermutation([]int{-1, 0}))

	perm := []int{2, 0, 3, 1}
	inv := InvertPermutation(perm)
	assert.Equal(t, []int{1, 3, 0, 2}, inv)
	assert.Equal(t, []int{0, 1, 2, 3}, Permute(perm, inv))
	assert.Equal(t, []string{"c", "a", "d", "b"}, Permute([]string{"a", "b", "c", "d"}, perm))
}

func TestAllEqualAndJoin(t *testing.T) {
	assert.True(t, AllEqual([]int{1, 1}, 1))
	assert.False(t, AllEqual([]int{1, 2}, 1))
	assert.Equal(t, "1x2x3", Join([]int{1, 2, 3}, "x"))
}

func TestFlagValue(t *testing.T) {
	f := NewFlagValue([]int{1}, strconv.Atoi)
	assert.Equal(t, "1", f.String())
	require.NoError(t, f.Set("3, 4,5"))
	assert.Equal(t, []int{3, 4, 5}, f.Get())
	assert.Equal(t, "[]int", f.Type())
	require.Error(t, f.Set("3,x"))
	require.NoError(t, f.Set(""))
	assert.Empty(t, f.Get())
}
