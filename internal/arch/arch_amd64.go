//go:build amd64

package arch

import "golang.org/x/sys/cpu"

func detect() Info {
	switch {
	case cpu.X86.HasAVX512F:
		return Info{Name: "avx512", VectorBytes: 64}
	case cpu.X86.HasAVX2:
		return Info{Name: "avx2", VectorBytes: 32}
	default:
		// SSE2 is part of the amd64 baseline.
		return Info{Name: "sse2", VectorBytes: 16}
	}
}
