package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileWidth(t *testing.T) {
	avx2 := Info{Name: "avx2", VectorBytes: 32}
	assert.Equal(t, 16, avx2.TileWidth(4))
	assert.Equal(t, 8, avx2.TileWidth(8))
	assert.Equal(t, 4, avx2.TileWidth(16))
	assert.Equal(t, 32, avx2.TileWidth(2))
	assert.Equal(t, MinTileWidth, avx2.TileWidth(0))

	avx512 := Info{Name: "avx512", VectorBytes: 64}
	assert.Equal(t, MaxTileWidth, avx512.TileWidth(2))
	assert.Equal(t, "avx512/512bits", avx512.String())
}

func TestCurrent(t *testing.T) {
	info := Current()
	assert.NotEmpty(t, info.Name)
	assert.GreaterOrEqual(t, info.VectorBytes, 16)
	for _, elemSize := range []int{2, 4, 8, 16} {
		w := info.TileWidth(elemSize)
		assert.GreaterOrEqual(t, w, MinTileWidth)
		assert.LessOrEqual(t, w, MaxTileWidth)
	}
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv(NoSimdEnvVar, "")
	assert.False(t, noSimdEnv())
	t.Setenv(NoSimdEnvVar, "false")
	assert.False(t, noSimdEnv())
	t.Setenv(NoSimdEnvVar, "1")
	assert.True(t, noSimdEnv())
	t.Setenv(NoSimdEnvVar, "yes")
	assert.True(t, noSimdEnv())
}
