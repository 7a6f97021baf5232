package main

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/gomlx/transpose/internal/benchspec"
	"github.com/gomlx/transpose/pkg/core/dtypes"
	"github.com/gomlx/transpose/transpose"
	"github.com/spf13/cobra"
)

func newPlanCmd() *cobra.Command {
	var numThreads int
	cmd := &cobra.Command{
		Use:   "plan NAME",
		Short: "Print the plan selected for the named benchmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := benchspec.Parse(args[0])
			if err != nil {
				return err
			}
			n := spec.NumElements()
			in, out := makeSlice(spec.DType, n), makeSlice(spec.DType, n)
			t, err := transpose.NewWithDType(spec.DType, in, out, spec.Request(numThreads))
			if err != nil {
				return err
			}
			defer t.Finalize()
			w := cmd.OutOrStdout()
			desc := t.DescribePlan()
			fmt.Fprintf(w, "Benchmark: %s\n", spec.Description())
			fmt.Fprintf(w, "Engine: %s %s\n", t.DType(), t.Slot())
			fmt.Fprintf(w, "Plan: %s\n", desc.ID)
			fmt.Fprintf(w, "Merged order: %d\n", desc.MergedOrder)
			fmt.Fprintf(w, "Kernel: %s\n", desc.Kernel)
			fmt.Fprintf(w, "Partitions: %d\n", desc.NumPartitions)
			return t.PrintPlan(w)
		},
	}
	cmd.Flags().IntVar(&numThreads, "threads", runtime.NumCPU(), "Number of threads of the parallel (\"par\") benchmarks.")
	return cmd
}

// makeSlice returns a zeroed slice of n elements of the Go type of dtype, e.g. []float32.
func makeSlice(dtype dtypes.DType, n int) any {
	return reflect.MakeSlice(reflect.SliceOf(dtype.GoType()), n, n).Interface()
}
