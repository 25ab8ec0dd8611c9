package hungarian

import (
	"fmt"

	"github.com/katalvlaran/formation/matrix"
)

// Solve returns the min-sum assignment for cost.
//
// Contract:
//   - cost must be non-nil, rectangular and finite. It is never modified;
//     the algorithm reduces a private copy.
//   - The result has len == cost.Rows(). If rows ≤ cols every row is matched
//     to a distinct column; otherwise exactly cols rows are matched and the
//     rest are Unassigned.
//   - A matrix with zero rows or zero columns yields an all-Unassigned
//     assignment of length rows, without error.
//
// Errors: ErrInvalidInput (nil, NaN/Inf, the latter also ErrNumeric), ErrStepLimit.
//
// Complexity: O(r²·c) per augmentation, r = min(rows, cols).
func Solve(cost matrix.Matrix, opts Options) (Assignment, error) {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}
	rows, cols := cost.Rows(), cost.Cols()
	out := make(Assignment, rows)
	for i := range out {
		out[i] = Unassigned
	}
	if rows == 0 || cols == 0 {
		return out, nil
	}
	if err := matrix.ValidateFinite(cost); err != nil {
		return nil, fmt.Errorf("hungarian: %w: %w", ErrInvalidInput, err)
	}

	work, err := matrix.ToDense(cost)
	if err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}
	transposed := rows > cols
	if transposed {
		work = work.Transpose()
	}

	s := newState(work)
	limit := opts.MaxSteps
	if limit <= 0 {
		limit = defaultStepLimit(s.rows)
	}
	if err = s.run(limit); err != nil {
		return nil, fmt.Errorf("hungarian: %dx%d after %d steps: %w", rows, cols, limit, err)
	}

	matched := s.starredColumns()
	if !transposed {
		copy(out, matched)

		return out, nil
	}
	for tr, tc := range matched {
		out[tc] = tr
	}

	return out, nil
}

// SolveRows is Solve for a raw [][]float64 with default options.
// Rows of different lengths fail with ErrInvalidInput (matrix.ErrRagged).
func SolveRows(cost [][]float64) (Assignment, error) {
	m, err := matrix.FromRows(cost, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}

	return Solve(m, DefaultOptions())
}
