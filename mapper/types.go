package mapper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/formation/geom"
	"github.com/katalvlaran/formation/hungarian"
	"github.com/katalvlaran/formation/matrix"
)

// Objective selects the optimization criterion.
type Objective int

const (
	// MinSum minimizes the total cost over all pairs.
	MinSum Objective = iota

	// MinMax minimizes the largest single pair cost.
	MinMax
)

var objectiveNames = [...]string{
	MinSum: "min-sum",
	MinMax: "min-max",
}

// String returns the canonical lower-case name.
func (o Objective) String() string {
	if o < 0 || int(o) >= len(objectiveNames) {
		return fmt.Sprintf("Objective(%d)", int(o))
	}

	return objectiveNames[o]
}

// valid reports whether o is a known objective.
func (o Objective) valid() bool {
	return o >= 0 && int(o) < len(objectiveNames)
}

// ParseObjective accepts "min-sum"/"minsum"/"sum" and "min-max"/"minmax"/"max",
// case-insensitively.
func ParseObjective(name string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "min-sum", "minsum", "sum":
		return MinSum, nil
	case "min-max", "minmax", "max", "bottleneck":
		return MinMax, nil
	default:
		return 0, fmt.Errorf("mapper: %q: %w", name, ErrUnknownObjective)
	}
}

var (
	// ErrInvalidInput aliases the shared shape/argument root.
	ErrInvalidInput = matrix.ErrInvalidInput

	// ErrNumeric aliases the shared non-finite root.
	ErrNumeric = matrix.ErrNumeric

	// ErrUnknownObjective is returned for an Objective outside MinSum/MinMax.
	ErrUnknownObjective = fmt.Errorf("%w: unknown objective", matrix.ErrInvalidInput)

	// ErrBadWorkers is the panic message of WithWorkers(n < 1).
	ErrBadWorkers = errors.New("mapper: workers must be ≥ 1")

	// ErrBadMaxSteps is the panic message of WithMaxSteps(n < 0).
	ErrBadMaxSteps = errors.New("mapper: max steps must be ≥ 0")
)

// Result is the outcome of one Map call.
type Result struct {
	// Mapping sends source i to target Mapping[i]; a permutation of 0..n-1
	// where n is the (possibly truncated) common length.
	Mapping hungarian.Assignment

	// Cost is the Euclidean sum (MinSum) or maximum (MinMax) along Mapping.
	Cost float64

	// Objective echoes the criterion that produced Mapping.
	Objective Objective
}

// Transition is one independent source→target problem for MapBatch.
type Transition struct {
	Source []geom.Point
	Target []geom.Point
}
