// SPDX-License-Identifier: MIT

// Package matrix provides the dense cost-matrix primitives used by the
// assignment solvers.
//
// What is inside?
//
//	• Matrix     — minimal mutable 2D float64 surface (Rows/Cols/At/Set/Clone).
//	• Dense      — row-major implementation backed by one flat slice.
//	• FromRows   — ingest [][]float64 with ragged-row detection.
//	• BuildCost  — n×m pairwise cost matrix between two point sets.
//	• Max, Validate* helpers shared by the solver packages.
//
// Numeric policy:
//
//	Dense rejects NaN and ±Inf on Set by default (ErrNaNInf). Pass
//	WithNoValidateNaNInf() when ingesting data you validate yourself.
//
// Shapes:
//
//	Zero-sized shapes (0×0, n×0) are legal: an empty swarm is a valid input
//	and yields an empty assignment downstream, not an error.
//
// Errors:
//
//	All failures are sentinels rooted at ErrInvalidInput or ErrNumeric and
//	are matched with errors.Is. No function panics on user input.
//
// Complexity quicksheet:
//   - NewDense/FromRows/Clone/Transpose: O(r*c); At/Set: O(1).
//   - BuildCost: O(n*m) cost-function calls.
package matrix
