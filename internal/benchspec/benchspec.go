// Package benchspec parses the names of the transpose benchmarks, like "s_2130_608x12x96x7_nopar_beta":
//
//   - The dtype abbreviation: "s" (float32), "d" (float64), "c" (complex64), "z" (complex128),
//     "h" (float16) or "b" (bfloat16).
//   - The permutation, one digit per axis.
//   - The sizes of the input axes, separated by "x".
//   - "par" to use all threads, or "nopar" for a single thread.
//   - An optional "beta" suffix, to accumulate into the output.
//
// The sizes in the names are given for column-major tensors.
package benchspec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/transpose/pkg/core/dtypes"
	"github.com/gomlx/transpose/pkg/support/xslices"
	"github.com/gomlx/transpose/transpose"
	"github.com/pkg/errors"
)

// Coefficients used by the benchmarks.
const (
	Alpha = 2.0
	Beta  = 0.5
)

// Spec is a parsed benchmark name.
type Spec struct {
	Name     string
	DType    dtypes.DType
	Perm     []int
	Sizes    []int
	Parallel bool
	Beta     bool
}

// Parse a benchmark name.
func Parse(name string) (*Spec, error) {
	parts := strings.Split(name, "_")
	if len(parts) != 4 && len(parts) != 5 {
		return nil, errors.Errorf("benchmark name %q should be <dtype>_<perm>_<sizes>_<par|nopar>[_beta]", name)
	}
	s := &Spec{Name: name}
	s.DType = dtypes.FromAbbrev(parts[0])
	if s.DType == dtypes.InvalidDType {
		return nil, errors.Errorf("benchmark %q: unknown dtype abbreviation %q", name, parts[0])
	}
	for _, digit := range parts[1] {
		if digit < '0' || digit > '9' {
			return nil, errors.Errorf("benchmark %q: invalid permutation %q", name, parts[1])
		}
		s.Perm = append(s.Perm, int(digit-'0'))
	}
	if !xslices.IsPermutation(s.Perm) {
		return nil, errors.Errorf("benchmark %q: %q is not a permutation", name, parts[1])
	}
	for _, sizeStr := range strings.Split(parts[2], "x") {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			return nil, errors.Errorf("benchmark %q: invalid size %q", name, sizeStr)
		}
		s.Sizes = append(s.Sizes, size)
	}
	if len(s.Sizes) != len(s.Perm) {
		return nil, errors.Errorf("benchmark %q: %d sizes given for a permutation of %d axes",
			name, len(s.Sizes), len(s.Perm))
	}
	switch parts[3] {
	case "par":
		s.Parallel = true
	case "nopar":
	default:
		return nil, errors.Errorf("benchmark %q: expected \"par\" or \"nopar\", got %q", name, parts[3])
	}
	if len(parts) == 5 {
		if parts[4] != "beta" {
			return nil, errors.Errorf("benchmark %q: unknown suffix %q", name, parts[4])
		}
		s.Beta = true
	}
	return s, nil
}

// String returns the canonical name of the benchmark.
func (s *Spec) String() string {
	var sb strings.Builder
	sb.WriteString(s.DType.Abbrev())
	sb.WriteByte('_')
	for _, axis := range s.Perm {
		sb.WriteString(strconv.Itoa(axis))
	}
	sb.WriteByte('_')
	sb.WriteString(xslices.Join(s.Sizes, "x"))
	if s.Parallel {
		sb.WriteString("_par")
	} else {
		sb.WriteString("_nopar")
	}
	if s.Beta {
		sb.WriteString("_beta")
	}
	return sb.String()
}

// NumElements of the tensors.
func (s *Spec) NumElements() int {
	return xslices.Product(s.Sizes)
}

// Bytes moved by one execution: the input is read, the output written and, with beta, also read.
func (s *Spec) Bytes() int {
	n := 2
	if s.Beta {
		n = 3
	}
	return n * s.NumElements() * s.DType.Size()
}

// Request returns the transpose request of the benchmark, for the given number of threads
// (only used if the benchmark is parallel).
func (s *Spec) Request(numThreads int) transpose.Request {
	req := transpose.NewRequest(s.Sizes, s.Perm)
	req.Layout = transpose.ColMajor
	req.Alpha = Alpha
	if s.Beta {
		req.Beta = Beta
	}
	req.Tuning.NumThreads = 1
	if s.Parallel {
		req.Tuning.NumThreads = numThreads
	}
	return req
}

// Description is a human-readable summary of the benchmark.
func (s *Spec) Description() string {
	return fmt.Sprintf("%s[%s] perm=%v alpha=%g beta=%g", s.DType, xslices.Join(s.Sizes, "x"), s.Perm,
		Alpha, s.Request(1).Beta)
}
