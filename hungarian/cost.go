// Package hungarian - cost utilities for resolved assignments.
//
// These helpers evaluate a mapping against any matrix, typically a parallel
// "true distance" matrix that differs from the one used for optimization.
// Unassigned rows are skipped.
package hungarian

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/formation/matrix"
)

// Sum returns Σ m[i, a[i]] over assigned rows.
// Complexity: O(len(a)).
func (a Assignment) Sum(m matrix.Matrix) (float64, error) {
	vals, err := a.values(m)
	if err != nil {
		return 0, err
	}

	return floats.Sum(vals), nil
}

// Max returns max m[i, a[i]] over assigned rows, or 0 when none is assigned.
// Complexity: O(len(a)).
func (a Assignment) Max(m matrix.Matrix) (float64, error) {
	vals, err := a.values(m)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, nil
	}

	return floats.Max(vals), nil
}

// IsPermutation reports whether a is a bijection on 0..len(a)-1.
func (a Assignment) IsPermutation() bool {
	seen := make([]bool, len(a))
	for _, j := range a {
		if j < 0 || j >= len(a) || seen[j] {
			return false
		}
		seen[j] = true
	}

	return true
}

// values gathers the matched entries of m, validating shape and indices.
func (a Assignment) values(m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}
	if len(a) != m.Rows() {
		return nil, fmt.Errorf("hungarian: assignment has %d rows, matrix %d: %w",
			len(a), m.Rows(), matrix.ErrDimensionMismatch)
	}

	vals := make([]float64, 0, len(a))
	for i, j := range a {
		if j == Unassigned {
			continue
		}
		v, err := m.At(i, j)
		if err != nil {
			return nil, fmt.Errorf("hungarian: row %d: %w", i, err)
		}
		vals = append(vals, v)
	}

	return vals, nil
}
