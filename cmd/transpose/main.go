// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// transpose is a command-line tool to benchmark the transposers and inspect their plans.
//
// Benchmarks are given by name, e.g.: "s_2130_608x12x96x7_nopar_beta", see package internal/benchspec.
//
//	transpose bench s_021_368x384x384_nopar d_102_384x2320x59_par
//	transpose plan -v=2 s_2130_608x12x96x75_par
//
// The default tuning can be changed with $TRANSPOSE_CONFIG (see transpose.ParseConfig).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "transpose",
		Short:         "Benchmarks and plans of the order-dispatched tensor transposers",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)
	rootCmd.AddCommand(newBenchCmd(), newPlanCmd())
	return rootCmd
}

func main() {
	defer klog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
