package transpose

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// Mode of writing the output: overwritten or accumulated. It is derived from beta.
type Mode int

const (
	// ModeOverwrite is used when beta == 0: the output prior contents are never read.
	ModeOverwrite Mode = iota

	// ModeAccumulate is used when beta != 0: the output is blended with its prior contents.
	ModeAccumulate

	numModes
)

// ModeFromBeta returns the Mode for the given beta coefficient.
func ModeFromBeta(beta float64) Mode {
	if beta != 0 {
		return ModeAccumulate
	}
	return ModeOverwrite
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeOverwrite:
		return "Overwrite"
	case ModeAccumulate:
		return "Accumulate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Overwrite and Accumulate are the type-level output modes the engines are parameterized with:
// engine3[float32, Overwrite] and engine3[float32, Accumulate] are distinct types.
type (
	Overwrite  struct{}
	Accumulate struct{}
)

// outputMode is the constraint of the mode type parameter of the engines.
type outputMode interface {
	Overwrite | Accumulate
}

// modeOf returns the Mode value of the type-level output mode M.
func modeOf[M outputMode]() Mode {
	var m M
	switch any(m).(type) {
	case Overwrite:
		return ModeOverwrite
	case Accumulate:
		return ModeAccumulate
	}
	exceptions.Panicf("unknown output mode type %T", m)
	panic(nil)
}

// Slot identifies which specialized engine a Transposer holds.
type Slot struct {
	Order int
	Mode  Mode
}

// String implements fmt.Stringer.
func (s Slot) String() string {
	return fmt.Sprintf("order=%d/%s", s.Order, s.Mode)
}

// CoefUsage tells which of the coefficients alpha and beta affect the computation, and selects the
// kernel variant: a plain copy, a rescale, an update, or both.
type CoefUsage int

const (
	// UseNone: alpha == 1 and beta == 0, a plain copy of the permuted input.
	UseNone CoefUsage = iota
	// UseAlpha: alpha != 1 and beta == 0.
	UseAlpha
	// UseBeta: alpha == 1 and beta != 0.
	UseBeta
	// UseBoth: alpha != 1 and beta != 0.
	UseBoth
)

// CoefUsageFor returns the CoefUsage of the coefficients.
func CoefUsageFor(alpha, beta float64) CoefUsage {
	usage := UseNone
	if alpha != 1 {
		usage = UseAlpha
	}
	if beta != 0 {
		usage += UseBeta
	}
	return usage
}

// Mode returns the output mode implied by the usage.
func (u CoefUsage) Mode() Mode {
	if u == UseBeta || u == UseBoth {
		return ModeAccumulate
	}
	return ModeOverwrite
}

// String implements fmt.Stringer.
func (u CoefUsage) String() string {
	switch u {
	case UseNone:
		return "none"
	case UseAlpha:
		return "alpha"
	case UseBeta:
		return "beta"
	case UseBoth:
		return "both"
	default:
		return fmt.Sprintf("CoefUsage(%d)", int(u))
	}
}
