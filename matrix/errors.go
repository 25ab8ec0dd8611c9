// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Two roots partition every failure the engine can report:
//   - ErrInvalidInput: shape or argument contract violations.
//   - ErrNumeric: NaN/±Inf where finite values are required.
//
// Specific sentinels wrap one of the roots, so callers may match either the
// precise condition or the category with errors.Is. Detection sites add
// context with fmt.Errorf("ctx: %w", ErrX); never compare errors with ==.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the root of all shape/argument errors.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrNumeric is the root of all non-finite value errors.
	ErrNumeric = errors.New("matrix: numeric error")
)

var (
	// ErrRagged indicates rows of different lengths in a [][]float64 input.
	ErrRagged = fmt.Errorf("%w: rows have inconsistent lengths", ErrInvalidInput)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidInput)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a report matrix shaped differently from its cost matrix, or point
	// sets of different lengths where a bijection is required.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidInput)

	// ErrInvalidDimensions indicates negative requested dimensions.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be ≥ 0", ErrInvalidInput)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidInput)

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidInput)

	// ErrNilCostFunc indicates that BuildCost was called without a cost function.
	ErrNilCostFunc = fmt.Errorf("%w: nil cost function", ErrInvalidInput)

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrNumeric)
)
