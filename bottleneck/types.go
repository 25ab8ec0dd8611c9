package bottleneck

import (
	"errors"

	"github.com/katalvlaran/formation/hungarian"
	"github.com/katalvlaran/formation/matrix"
)

var (
	// ErrInvalidInput aliases the shared shape/argument root.
	ErrInvalidInput = matrix.ErrInvalidInput

	// ErrNumeric aliases the shared non-finite root.
	ErrNumeric = matrix.ErrNumeric

	// errNoFeasible means the full-threshold probe still picked a sentinel,
	// which only a broken min-sum solve can produce.
	errNoFeasible = errors.New("bottleneck: no feasible threshold")
)

// Edge is one (row, col) pair of the cost matrix and its cost.
// Values are built fresh per edge and never mutated.
type Edge struct {
	Row  int
	Col  int
	Cost float64
}

// Options configures Solve.
//
// Fields:
//   - Report:    optional matrix of the same shape whose entries are used
//     for Result.MaxCost (e.g. plain Euclidean distances when the solve ran
//     on exponential costs). nil reports on the cost matrix itself.
//   - Hungarian: options forwarded to every min-sum probe.
type Options struct {
	Report    matrix.Matrix
	Hungarian hungarian.Options
}

// DefaultOptions returns Options reporting on the cost matrix itself.
func DefaultOptions() Options {
	return Options{Hungarian: hungarian.DefaultOptions()}
}

// Result is the outcome of a bottleneck solve.
type Result struct {
	// Assignment maps row i to column Assignment[i]; a permutation.
	Assignment hungarian.Assignment

	// Threshold is the bottleneck value on the optimized cost matrix.
	Threshold float64

	// MaxCost is the largest Report entry along Assignment.
	MaxCost float64
}
