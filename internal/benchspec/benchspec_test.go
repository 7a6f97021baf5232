package benchspec

import (
	"testing"

	"github.com/gomlx/transpose/pkg/core/dtypes"
	"github.com/gomlx/transpose/transpose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse("s_2130_608x12x96x7_nopar_beta")
	require.NoError(t, err)
	assert.Equal(t, &Spec{
		Name:  "s_2130_608x12x96x7_nopar_beta",
		DType: dtypes.Float32,
		Perm:  []int{2, 1, 3, 0},
		Sizes: []int{608, 12, 96, 7},
		Beta:  true,
	}, s)
	assert.Equal(t, s.Name, s.String())
	assert.Equal(t, 608*12*96*7, s.NumElements())
	assert.Equal(t, 3*608*12*96*7*4, s.Bytes())

	s, err = Parse("z_021_2144x64x384_par")
	require.NoError(t, err)
	assert.Equal(t, dtypes.Complex128, s.DType)
	assert.True(t, s.Parallel)
	assert.False(t, s.Beta)
	assert.Equal(t, "z_021_2144x64x384_par", s.String())
}

func TestParseErrors(t *testing.T) {
	for _, name := range []string{
		"",
		"s_021_2x3x4",
		"q_021_2x3x4_par",
		"s_0a1_2x3x4_par",
		"s_011_2x3x4_par",
		"s_021_2x3_par",
		"s_021_2x0x4_par",
		"s_021_2x3x4_parallel",
		"s_021_2x3x4_par_alpha",
	} {
		_, err := Parse(name)
		assert.Error(t, err, "name %q should fail", name)
	}
}

func TestRequest(t *testing.T) {
	s, err := Parse("d_10_5x7_par_beta")
	require.NoError(t, err)
	req := s.Request(4)
	assert.Equal(t, 2, req.Order)
	assert.Equal(t, []int{5, 7}, req.InSize)
	assert.Equal(t, []int{1, 0}, req.Perm)
	assert.Equal(t, Alpha, req.Alpha)
	assert.Equal(t, Beta, req.Beta)
	assert.Equal(t, transpose.ColMajor, req.Layout)
	assert.Equal(t, 4, req.Tuning.NumThreads)

	s.Parallel, s.Beta = false, false
	req = s.Request(4)
	assert.Equal(t, 1, req.Tuning.NumThreads)
	assert.Zero(t, req.Beta)
	assert.Contains(t, s.Description(), "Float64[5x7]")
}
