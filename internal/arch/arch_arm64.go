//go:build arm64

package arch

import "golang.org/x/sys/cpu"

func detect() Info {
	// ASIMD (NEON) is part of ARMv8-A, checked for consistency.
	if cpu.ARM64.HasASIMD {
		return Info{Name: "neon", VectorBytes: 16}
	}
	return Info{Name: "scalar", VectorBytes: 16}
}
