// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import (
	"reflect"
	"testing"

	"github.com/gomlx/transpose/pkg/core/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFromGenericsType(t *testing.T) {
	assert.Equal(t, Float32, FromGenericsType[float32]())
	assert.Equal(t, Float64, FromGenericsType[float64]())
	assert.Equal(t, Complex64, FromGenericsType[complex64]())
	assert.Equal(t, Complex128, FromGenericsType[complex128]())
	assert.Equal(t, Float16, FromGenericsType[float16.Float16]())
	assert.Equal(t, BFloat16, FromGenericsType[bfloat16.BFloat16]())
}

func TestGoType(t *testing.T) {
	assert.Equal(t, reflect.TypeOf(float16.Float16(0)), Float16.GoType())
	assert.Equal(t, reflect.TypeOf(complex64(0)), Complex64.GoType())
	require.Panics(t, func() { _ = InvalidDType.GoType() })
}

func TestSize(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 2, BFloat16.Size())
	assert.Equal(t, 2, Float16.Size())
	assert.Equal(t, 16, Complex128.Size())
}

func TestAbbrev(t *testing.T) {
	for _, dtype := range Catalog() {
		abbrev := dtype.Abbrev()
		require.Len(t, abbrev, 1, "dtype %s", dtype)
		assert.Equal(t, dtype, FromAbbrev(abbrev))
		assert.Less(t, int(dtype), MaxDTypes)
	}
	assert.Equal(t, InvalidDType, FromAbbrev("x"))
	assert.Equal(t, "", InvalidDType.Abbrev())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Complex64", Complex64.String())
	assert.Equal(t, "DType(99)", DType(99).String())
}
