/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package xslices provide small slice helpers used to describe tensor shapes and axes permutations.
package xslices

import (
	"flag"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Iota returns a slice of incremental values, starting with start and of length len.
// Eg: Iota(3.0, 2) -> []float64{3.0, 4.0}
func Iota[T constraints.Integer | constraints.Float](start T, len int) (slice []T) {
	slice = make([]T, len)
	for ii := range slice {
		slice[ii] = start + T(ii)
	}
	return
}

// Product returns the product of all the values of the slice. The product of an empty slice is 1.
func Product[T constraints.Integer | constraints.Float](slice []T) T {
	p := T(1)
	for _, v := range slice {
		p *= v
	}
	return p
}

// IsPermutation returns whether perm holds each of the values 0 to len(perm)-1 exactly once.
func IsPermutation(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, axis := range perm {
		if axis < 0 || axis >= len(perm) || seen[axis] {
			return false
		}
		seen[axis] = true
	}
	return true
}

// InvertPermutation returns the permutation inv such that inv[perm[i]] = i.
// It assumes perm is a valid permutation (see IsPermutation).
func InvertPermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for ii, axis := range perm {
		inv[axis] = ii
	}
	return inv
}

// Permute returns out[i] = values[perm[i]].
func Permute[T any](values []T, perm []int) []T {
	out := make([]T, len(perm))
	for ii, axis := range perm {
		out[ii] = values[axis]
	}
	return out
}

// AllEqual returns whether all values of the slice are equal to v. It returns true for empty slices.
func AllEqual[T comparable](slice []T, v T) bool {
	for _, e := range slice {
		if e != v {
			return false
		}
	}
	return true
}

// Join formats each element with %v and joins them with sep.
func Join[T any](slice []T, sep string) string {
	parts := make([]string, len(slice))
	for ii, e := range slice {
		parts[ii] = fmt.Sprint(e)
	}
	return strings.Join(parts, sep)
}

// Flag creates a flag for []T with the given name, description and default value.
// It takes as input a parser for an individual T value.
func Flag[T any](name string, defaultValue []T, usage string,
	parserFn func(valueStr string) (T, error)) *[]T {
	f := NewFlagValue(defaultValue, parserFn)
	flag.Var(f, name, usage)
	return &f.parsedSlice
}

// FlagValue implements flag.Value (and pflag.Value, since it has a Type method) for a
// comma-separated list of T.
type FlagValue[T any] struct {
	parsedSlice []T
	parserFn    func(valueStr string) (T, error)
}

// NewFlagValue returns a FlagValue initialized with defaultValue.
func NewFlagValue[T any](defaultValue []T, parserFn func(valueStr string) (T, error)) *FlagValue[T] {
	return &FlagValue[T]{parsedSlice: defaultValue, parserFn: parserFn}
}

// Get returns the parsed slice.
func (f *FlagValue[T]) Get() []T { return f.parsedSlice }

// String implements flag.Value.
func (f *FlagValue[T]) String() string {
	return Join(f.parsedSlice, ",")
}

// Type implements pflag.Value.
func (f *FlagValue[T]) Type() string {
	return fmt.Sprintf("[]%T", *new(T))
}

// Set implements flag.Value.
func (f *FlagValue[T]) Set(listStr string) error {
	if listStr == "" {
		f.parsedSlice = make([]T, 0)
		return nil
	}
	parts := strings.Split(listStr, ",")
	f.parsedSlice = make([]T, len(parts))
	var err error
	for ii, part := range parts {
		f.parsedSlice[ii], err = f.parserFn(strings.TrimSpace(part))
		if err != nil {
			return err
		}
	}
	return nil
}
