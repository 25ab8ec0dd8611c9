// SPDX-License-Identifier: MIT

// Package matrix - constructors from raw rows and from point sets.
//
// Contract highlights:
//   - FromRows detects ragged input before any allocation.
//   - BuildCost is pure: it calls fn exactly n*m times in row-major order and
//     never retains the inputs.
//   - Empty inputs produce zero-sized matrices, never errors.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/formation/geom"
)

// FromRows copies a rectangular [][]float64 into a new Dense.
//
// Implementation:
//   - Stage 1: verify every row has len(rows[0]) entries (ErrRagged otherwise).
//   - Stage 2: allocate and copy through Set, so the numeric policy applies.
//
// A nil or empty slice yields a 0×0 matrix.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrRagged)
		}
	}

	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("FromRows: %w", err)
			}
		}
	}

	return m, nil
}

// ToDense returns m as a fresh *Dense owned by the caller. The result never
// aliases m, so solvers may mutate it freely.
// Complexity: O(r*c).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("ToDense: %w", err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// BuildCost returns the len(source)×len(target) matrix C with
// C[i][j] = fn(source[i], target[j]).
//
// Errors:
//   - ErrNilCostFunc when fn is nil.
//   - ErrNaNInf (an ErrNumeric) when fn yields NaN or ±Inf; the message names
//     the offending (i,j) pair.
//
// Complexity: O(n*m) calls to fn.
func BuildCost(source, target []geom.Point, fn geom.CostFunc) (*Dense, error) {
	if fn == nil {
		return nil, fmt.Errorf("BuildCost: %w", ErrNilCostFunc)
	}

	m, err := NewDense(len(source), len(target))
	if err != nil {
		return nil, err
	}
	for i, s := range source {
		for j, t := range target {
			if err = m.Set(i, j, fn(s, t)); err != nil {
				return nil, fmt.Errorf("BuildCost: source %d → target %d: %w", i, j, err)
			}
		}
	}

	return m, nil
}
