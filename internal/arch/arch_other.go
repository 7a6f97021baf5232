//go:build !amd64 && !arm64

package arch

func detect() Info {
	return Info{Name: "scalar", VectorBytes: 16}
}
