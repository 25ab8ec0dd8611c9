// Package bottleneck solves the min-max (bottleneck) assignment problem:
// among all perfect matchings of a square cost matrix, find one whose
// largest matched cost is as small as possible.
//
// 🚀 Why min-max?
//
//	All drones of a formation move at the same time, so a transition lasts
//	as long as its slowest drone. Minimizing the worst edge, not the sum,
//	minimizes the wall-clock duration.
//
// ✨ How it works:
//  1. List all n² edges sorted by cost (SortedEdges).
//  2. Binary-search the shortest prefix whose edges admit a perfect
//     matching. Feasibility of a threshold t is probed by running the
//     min-sum solver on a copy where every cost > t is replaced by a
//     sentinel; the probe fails iff the optimum still uses a sentinel.
//  3. Return the matching found at the smallest feasible threshold. Among
//     bottleneck-optimal matchings it is also the one with the least sum.
//
// The sentinel is derived from the matrix, never a fixed constant: it
// exceeds the total of any matching built from legitimate edges, so a
// single sentinel edge always loses to a feasible matching.
//
// Complexity: O(log n²) min-sum solves, i.e. O(n³ log n) for typical inputs.
//
// Errors:
//   - ErrInvalidInput: nil or non-square matrix, report matrix of another shape,
//     NaN/Inf entries (which also match ErrNumeric).
//   - ErrNumeric:      the sentinel overflows float64.
package bottleneck
