package hungarian

import (
	"errors"

	"github.com/katalvlaran/formation/matrix"
)

// Unassigned marks a row that received no column (only when rows > cols).
const Unassigned = -1

// Assignment maps row i to column a[i], or to Unassigned.
// For a solved n×n problem it is a permutation of 0..n-1.
type Assignment []int

var (
	// ErrInvalidInput aliases the shared shape/argument root.
	ErrInvalidInput = matrix.ErrInvalidInput

	// ErrNumeric aliases the shared non-finite root.
	ErrNumeric = matrix.ErrNumeric

	// ErrStepLimit is returned when the solver exceeds Options.MaxSteps.
	// A well-formed finite matrix never triggers it with the default bound.
	ErrStepLimit = errors.New("hungarian: step limit exceeded")
)

// Options configures Solve.
//
// Fields:
//   - MaxSteps: upper bound on state-machine transitions. 0 (or negative)
//     derives a bound from the matrix size that a finite input cannot reach.
type Options struct {
	MaxSteps int
}

// DefaultOptions returns the zero-configuration Options (derived step bound).
func DefaultOptions() Options {
	return Options{}
}

// defaultStepLimit bounds transitions for a working matrix with r rows:
// at most r+1 cover phases, each with ≤ r+1 prime/adjust rounds plus one
// augment, and two setup steps. 4·(r+2)² dominates that count.
func defaultStepLimit(r int) int {
	return 4 * (r + 2) * (r + 2)
}

// mark is the per-cell annotation of the Munkres state machine.
type mark uint8

const (
	unmarked mark = iota
	starred
	primed
)

// step enumerates the states of the solver loop.
type step uint8

const (
	stepReduce step = iota
	stepStar
	stepCover
	stepPrime
	stepAugment
	stepAdjust
	stepDone
)

var stepNames = [...]string{
	stepReduce:  "reduce",
	stepStar:    "star",
	stepCover:   "cover",
	stepPrime:   "prime",
	stepAugment: "augment",
	stepAdjust:  "adjust",
	stepDone:    "done",
}

func (s step) String() string {
	if int(s) < len(stepNames) {
		return stepNames[s]
	}

	return "unknown"
}

// cell addresses one entry of the working matrix.
type cell struct {
	row, col int
}
