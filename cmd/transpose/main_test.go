package main

import (
	"bytes"
	"testing"

	"github.com/gomlx/transpose/internal/benchspec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestReference(t *testing.T) {
	spec, err := benchspec.Parse("d_10_2x3_nopar")
	require.NoError(t, err)
	// Column-major input 2x3: in[i0 + 2*i1] = i0 + 2*i1; the output is 3x2 with out[i1 + 3*i0].
	assert.Equal(t, []float64{0, 4, 8, 2, 6, 10}, reference(spec))

	spec.Beta = true
	want := reference(spec)
	assert.Equal(t, 0.5*outputValue(1)+2*inputValue(2), want[1])
}

func TestBenchmarkAllDTypes(t *testing.T) {
	for _, name := range []string{
		"s_2130_18x5x9x7_nopar_beta",
		"d_021_33x17x20_par",
		"c_102_9x31x4_nopar",
		"z_10_40x23_par_beta",
		"h_3210_5x6x7x8_nopar",
		"b_0213_6x5x8x9_par_beta",
	} {
		spec, err := benchspec.Parse(name)
		require.NoError(t, err)
		for _, external := range []bool{false, true} {
			result, err := runBench(spec, benchOptions{repeats: 2, numThreads: 3, external: external})
			require.NoError(t, err, "benchmark %s, external=%v", name, external)
			assert.Equal(t, len(spec.Perm), result.slot.Order)
			assert.Positive(t, result.best)
		}
	}
}

func TestBenchCmd(t *testing.T) {
	output, err := runCmd(t, "bench", "--no_progress", "--repeats=1", "s_021_16x8x4_nopar", "d_10_7x9_par_beta")
	require.NoError(t, err)
	assert.Contains(t, output, "s_021_16x8x4_nopar")
	assert.Contains(t, output, "d_10_7x9_par_beta")
	assert.Contains(t, output, "order=2/Accumulate")

	output, err = runCmd(t, "bench", "--no_progress", "--repeats=1", "--external", "--thread_ids=3,7",
		"c_2103_6x5x4x3_par")
	require.NoError(t, err)
	assert.Contains(t, output, "order=4/Overwrite")

	_, err = runCmd(t, "bench", "--no_progress", "--external", "--thread_ids=1,1", "s_10_4x4_par")
	assert.Error(t, err)

	_, err = runCmd(t, "bench", "--no_progress", "x_021_16x8x4_nopar")
	assert.Error(t, err)
}

func TestPlanCmd(t *testing.T) {
	output, err := runCmd(t, "plan", "--threads=2", "s_2130_60x12x9x7_par")
	require.NoError(t, err)
	assert.Contains(t, output, "Engine: Float32 order=4/Overwrite")
	assert.Contains(t, output, "Loop order:")
	assert.Contains(t, output, "Parallelization:")
}
