// Package arch detects the vector width of the CPU, which sizes the tiles of the transpose macro kernels.
//
// The kernels are plain Go, but they're written so the compiler can keep one tile row in vector
// registers: tiles are sized to (a multiple of) what fits in one vector register.
//
// Set TRANSPOSE_NO_SIMD=1 to force the scalar configuration (16 bytes vectors).
package arch

import (
	"os"
	"strconv"
)

// NoSimdEnvVar is the environment variable that forces the scalar configuration.
const NoSimdEnvVar = "TRANSPOSE_NO_SIMD"

// Info describes the detected vector unit.
type Info struct {
	// Name of the instruction set: "avx512", "avx2", "sse2", "neon" or "scalar".
	Name string

	// VectorBytes is the width of one vector register in bytes.
	VectorBytes int
}

var current = Info{Name: "scalar", VectorBytes: 16}

func init() {
	if noSimdEnv() {
		return
	}
	current = detect()
}

func noSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Current returns the vector unit detected at startup.
func Current() Info {
	return current
}

// Tile width limits, in number of elements.
const (
	MinTileWidth = 4
	MaxTileWidth = 32
)

// TileWidth returns the side of the square tiles used by the macro kernels for elements of elemSize
// bytes: two vector registers wide, clamped to [MinTileWidth, MaxTileWidth].
func (info Info) TileWidth(elemSize int) int {
	if elemSize <= 0 {
		return MinTileWidth
	}
	return min(MaxTileWidth, max(MinTileWidth, 2*info.VectorBytes/elemSize))
}

// String implements fmt.Stringer.
func (info Info) String() string {
	return info.Name + "/" + strconv.Itoa(8*info.VectorBytes) + "bits"
}
