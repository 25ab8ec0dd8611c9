// Package mapper pairs drones with formation slots.
//
// Map builds a cost matrix from two point sets with the chosen cost
// function, solves it with the min-sum (hungarian) or min-max (bottleneck)
// solver, and reports the Euclidean cost of the chosen pairing. Whatever
// cost function drove the solve, Result.Cost is always measured in plain
// distance units: the sum of matched distances for MinSum and the largest
// matched distance for MinMax.
//
// MapBatch solves independent transitions concurrently on a bounded worker
// pool and returns results in input order.
//
// Defaults:
//   - Objective: MinSum
//   - Cost:      geom.Euclidean
//   - Truncate:  off (unequal lengths are an error)
//   - Logger:    NoopLogger()
//   - Workers:   runtime.GOMAXPROCS(0)
//   - MaxSteps:  0 (solver-derived bound)
//
// Errors match matrix.ErrInvalidInput for shape and argument problems and
// matrix.ErrNumeric for NaN or ±Inf points and costs.
package mapper
