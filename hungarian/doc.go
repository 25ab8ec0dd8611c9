// Package hungarian solves the min-sum assignment problem with the
// Kuhn–Munkres (Hungarian) algorithm.
//
// 🚀 What is it?
//
//	Given an r×c cost matrix C, find the matching σ that pairs every row of
//	the smaller dimension with a distinct partner and minimizes Σ C[i, σ(i)].
//
// ✨ Key properties:
//   - Works on square and rectangular matrices. When rows > cols the matrix
//     is transposed internally, solved, and the result mapped back; rows
//     left without a column are reported as Unassigned.
//   - Deterministic: among eligible zeros the first one in row-major order
//     wins. The optimal total is unique even when the permutation is not,
//     so compare costs, not permutations, on inputs with ties.
//   - Reentrant: every call owns its working state; run independent solves
//     on as many goroutines as you like.
//
// ⚙️ Usage:
//
//	a, err := hungarian.SolveRows([][]float64{
//	  {4, 1, 3},
//	  {2, 0, 5},
//	  {3, 2, 2},
//	})
//	// a == [1 0 2], total 5
//
// Algorithm outline (one loop over an explicit step enum):
//  1. Reduce: subtract each row minimum (and, for square input, each column minimum).
//  2. Star: star a zero when its row and column hold no star yet.
//  3. Cover: cover starred columns; done when every row has a star.
//  4. Prime: prime an uncovered zero; if its row holds a star, cover the row
//     and uncover the star's column, else augment from it. No uncovered zero
//     means adjust.
//  5. Augment: flip the alternating prime/star chain, clear primes and covers, back to 3.
//  6. Adjust: add the smallest uncovered value to doubly covered cells and
//     subtract it from doubly uncovered cells, back to 4.
//
// Complexity: at most r augmentations, each bounded by O(r²·c) zero scans;
// O(r·c) memory.
//
// Errors:
//   - ErrInvalidInput: nil or ragged input, NaN/Inf entries (the latter also match ErrNumeric).
//   - ErrStepLimit:    the step cap fired.
package hungarian
