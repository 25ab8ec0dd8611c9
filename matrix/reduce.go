// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Max returns the largest entry of m, or 0 for a matrix with no entries.
// NaN entries propagate (run ValidateFinite first when that matters).
// Complexity: O(r*c).
func Max(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return 0, nil
	}
	if d, ok := m.(*Dense); ok {
		return floats.Max(d.data), nil
	}

	d, err := ToDense(m)
	if err != nil {
		return 0, fmt.Errorf("Max: %w", err)
	}

	return floats.Max(d.data), nil
}

// RowMins returns the minimum of every row. Empty rows yield no entries.
// Complexity: O(r*c).
func RowMins(m *Dense) []float64 {
	if m.c == 0 {
		return nil
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = floats.Min(m.data[i*m.c : (i+1)*m.c])
	}

	return out
}

// ColMins returns the minimum of every column. Empty columns yield no entries.
// Complexity: O(r*c).
func ColMins(m *Dense) []float64 {
	if m.r == 0 {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[:m.c])
	for i := 1; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			if v < out[j] {
				out[j] = v
			}
		}
	}

	return out
}
