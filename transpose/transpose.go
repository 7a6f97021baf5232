// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package transpose implements out-of-place tensor transposition with scaling and accumulation:
//
//	B[perm(i1..iN)] = alpha * A[i1..iN] + beta * B[perm(i1..iN)]
//
// The loop nest of each tensor order N in [MinOrder, MaxOrder] is a separate, statically specialized
// engine type (engine1 ... engine8), generated by internal/cmd/transpose_generator, and further
// specialized by the output mode: Overwrite (beta == 0) or Accumulate (beta != 0).
//
// A Transposer is created for one transpose job (element type, order, sizes, permutation and coefficients).
// It picks the one engine matching the runtime order and output mode, which plans the execution
// (loop order and parallelization) once. Afterward, Execute can be called any number of times,
// and ResetOperands rebinds the input/output buffers without re-planning.
//
// Example:
//
//	in := make([]float32, 3*4)
//	out := make([]float32, 4*3)
//	t, err := transpose.New(in, out, transpose.NewRequest([]int{3, 4}, []int{1, 0}))
//	if err != nil { ... }
//	defer t.Finalize()
//	err = t.Execute()
//
// Default tuning parameters can be configured with the environment variable TRANSPOSE_CONFIG, see ParseConfig.
package transpose

//go:generate go run ../internal/cmd/transpose_generator -min_order=1 -max_order=8

// OrderRange returns the closed interval of tensor orders with an engine: [MinOrder, MaxOrder].
func OrderRange() (minOrder, maxOrder int) {
	return MinOrder, MaxOrder
}

// IsSupportedOrder returns whether there is an engine for tensors with the given order (number of axes).
func IsSupportedOrder(order int) bool {
	return order >= MinOrder && order <= MaxOrder
}
