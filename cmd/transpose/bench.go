package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/transpose/internal/benchspec"
	"github.com/gomlx/transpose/pkg/core/dtypes"
	"github.com/gomlx/transpose/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/transpose/pkg/support/xslices"
	"github.com/gomlx/transpose/transpose"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/x448/float16"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

type benchOptions struct {
	repeats    int
	numThreads int
	external   bool
	threadIDs  []int
	noVerify   bool
	progress   func()
}

// benchResult of one benchmark.
type benchResult struct {
	spec      *benchspec.Spec
	slot      transpose.Slot
	kernel    string
	setup     time.Duration
	best, avg time.Duration
}

// Throughput in bytes/s of the best execution.
func (r *benchResult) Throughput() float64 {
	return float64(r.spec.Bytes()) / r.best.Seconds()
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{}
	var noProgress bool
	threadIDsFlag := xslices.NewFlagValue[int](nil, strconv.Atoi)
	cmd := &cobra.Command{
		Use:   "bench NAME...",
		Short: "Run the named transpose benchmarks, e.g. s_2130_608x12x96x7_nopar_beta",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.threadIDs = threadIDsFlag.Get()
			specs := make([]*benchspec.Spec, 0, len(args))
			for _, name := range args {
				spec, err := benchspec.Parse(name)
				if err != nil {
					return err
				}
				specs = append(specs, spec)
			}
			if !noProgress {
				bar := progressbar.NewOptions(len(specs)*opts.repeats,
					progressbar.OptionSetDescription("benchmarking"),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionShowCount(),
					progressbar.OptionSetTheme(progressbar.ThemeASCII),
					progressbar.OptionClearOnFinish(),
				)
				opts.progress = func() { must.M(bar.Add(1)) }
			}
			results := make([]*benchResult, 0, len(specs))
			for _, spec := range specs {
				result, err := runBench(spec, opts)
				if err != nil {
					return err
				}
				results = append(results, result)
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.repeats, "repeats", 10, "Number of timed executions of each benchmark.")
	cmd.Flags().IntVar(&opts.numThreads, "threads", runtime.NumCPU(), "Number of threads of the parallel (\"par\") benchmarks.")
	cmd.Flags().BoolVar(&opts.external, "external", false,
		"Execute with caller-driven threads (SetThreadIDs + ExecuteThread) instead of Execute.")
	cmd.Flags().Var(threadIDsFlag, "thread_ids",
		"Comma-separated thread ids used with --external. Defaults to 0 to the number of threads minus one.")
	cmd.Flags().BoolVar(&opts.noVerify, "no_verify", false, "Skip the comparison with the naive reference.")
	cmd.Flags().BoolVar(&noProgress, "no_progress", false, "Don't display the progress bar.")
	return cmd
}

// runBench dispatches to benchmark[T] for the dtype of the spec.
func runBench(spec *benchspec.Spec, opts benchOptions) (*benchResult, error) {
	switch spec.DType {
	case dtypes.Float32:
		return benchmark[float32](spec, opts)
	case dtypes.Float64:
		return benchmark[float64](spec, opts)
	case dtypes.Complex64:
		return benchmark[complex64](spec, opts)
	case dtypes.Complex128:
		return benchmark[complex128](spec, opts)
	case dtypes.Float16:
		return benchmark[float16.Float16](spec, opts)
	case dtypes.BFloat16:
		return benchmark[bfloat16.BFloat16](spec, opts)
	}
	return nil, errors.Errorf("benchmark %q: dtype %s not supported", spec.Name, spec.DType)
}

func benchmark[T dtypes.Element](spec *benchspec.Spec, opts benchOptions) (*benchResult, error) {
	n := spec.NumElements()
	in, out := make([]T, n), make([]T, n)
	initialOut := make([]T, n)
	fillOperands(in, initialOut)
	copy(out, initialOut)

	start := time.Now()
	t, err := transpose.New(in, out, spec.Request(opts.numThreads))
	if err != nil {
		return nil, errors.WithMessagef(err, "benchmark %q", spec.Name)
	}
	defer t.Finalize()
	result := &benchResult{
		spec:   spec,
		slot:   t.Slot(),
		kernel: t.DescribePlan().Kernel,
		setup:  time.Since(start),
	}
	klog.V(1).Infof("benchmark %s: plan %+v", spec.Name, t.DescribePlan())

	execute := t.Execute
	if opts.external {
		threadIDs := opts.threadIDs
		if len(threadIDs) == 0 {
			threadIDs = xslices.Iota(0, spec.Request(opts.numThreads).Tuning.NumThreads)
		}
		if err := t.SetThreadIDs(threadIDs); err != nil {
			return nil, err
		}
		defer t.UnsetThreadIDs()
		execute = func() error {
			var g errgroup.Group
			for _, id := range threadIDs {
				g.Go(func() error { return t.ExecuteThread(id) })
			}
			return g.Wait()
		}
	}

	// The first execution, from the initial output, is the one verified.
	if err := execute(); err != nil {
		return nil, err
	}
	if !opts.noVerify {
		if pos := firstMismatch(out, reference(spec)); pos >= 0 {
			return nil, errors.Errorf("benchmark %q: output differs from the reference at position %d", spec.Name, pos)
		}
	}

	var total time.Duration
	for range opts.repeats {
		copy(out, initialOut)
		start := time.Now()
		if err := execute(); err != nil {
			return nil, err
		}
		elapsed := time.Since(start)
		total += elapsed
		if result.best == 0 || elapsed < result.best {
			result.best = elapsed
		}
		if opts.progress != nil {
			opts.progress()
		}
	}
	if opts.repeats > 0 {
		result.avg = total / time.Duration(opts.repeats)
	}
	return result, nil
}

func printResults(w io.Writer, results []*benchResult) {
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	headerStyle := lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	table := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	table.Headers("Benchmark", "Engine", "Kernel", "Setup", "Best", "Average", "Throughput")
	for _, r := range results {
		throughput := "-"
		if r.best > 0 {
			throughput = humanize.Bytes(uint64(r.Throughput())) + "/s"
		}
		table.Row(r.spec.Name, r.slot.String(), r.kernel, r.setup.String(), r.best.String(), r.avg.String(), throughput)
	}
	fmt.Fprintln(w, table.Render())
}
