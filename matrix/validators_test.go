// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formation/matrix"
)

// hiddenDense masks *Dense so validators take the generic Matrix path.
type hiddenDense struct{ matrix.Matrix }

// zeros returns an r×c zero matrix.
func zeros(t *testing.T, r, c int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

func requireErrIs(t *testing.T, err, want error) {
	t.Helper()
	if want == nil {
		require.NoError(t, err)

		return
	}
	require.Error(t, err)
	require.Truef(t, errors.Is(err, want), "expected errors.Is(%v, %v)", err, want)
}

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(t, 2, 3), zeros(t, 2, 3), nil},
		{"row mismatch", zeros(t, 2, 3), zeros(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(t, 2, 3), zeros(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			requireErrIs(t, matrix.ValidateSameShape(tc.a, tc.b), tc.wantErr)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"0x0", zeros(t, 0, 0), nil},
		{"1x1", zeros(t, 1, 1), nil},
		{"3x3", zeros(t, 3, 3), nil},
		{"2x3", zeros(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			requireErrIs(t, err, tc.want)
			if tc.want != nil {
				requireErrIs(t, err, matrix.ErrInvalidInput)
			}
		})
	}
}

// TestValidateFinite checks both the *Dense fast path and the generic path
// report the first offending cell in row-major order.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	loose, err := matrix.FromRows([][]float64{
		{0, 1, 2},
		{3, math.Inf(1), math.NaN()},
	}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	for name, m := range map[string]matrix.Matrix{"dense": loose, "generic": hiddenDense{loose}} {
		t.Run(name, func(t *testing.T) {
			err := matrix.ValidateFinite(m)
			requireErrIs(t, err, matrix.ErrNaNInf)
			requireErrIs(t, err, matrix.ErrNumeric)
			require.Contains(t, err.Error(), "(1,1)")
		})
	}

	requireErrIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
	requireErrIs(t, matrix.ValidateFinite(zeros(t, 2, 2)), nil)
}
