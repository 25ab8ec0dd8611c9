package geom

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// CostFunc scores moving a drone from a to b. Implementations must be pure
// and return finite, non-negative values for the solvers' guarantees to hold.
type CostFunc func(a, b Point) float64

// SquaredEuclidean returns |a-b|². It penalizes long edges harder than
// Euclidean, which pushes min-sum solutions toward balanced moves.
func SquaredEuclidean(a, b Point) float64 {
	return r3.Norm2(r3.Sub(a, b))
}

// Euclidean returns |a-b|.
func Euclidean(a, b Point) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// Exponential returns exp(|a-b|). Distances above ~709 overflow to +Inf,
// which the matrix builder reports as a numeric error; use
// ExponentialScaled for large scenes.
func Exponential(a, b Point) float64 {
	return math.Exp(Distance(a, b))
}

const panicScaleInvalid = "geom: ExponentialScaled: scale must be finite and > 0"

// ExponentialScaled returns a CostFunc computing exp(|a-b| / scale).
// Panics if scale is non-finite or ≤ 0 (programmer error).
func ExponentialScaled(scale float64) CostFunc {
	if isNonFinite(scale) || scale <= 0 {
		panic(panicScaleInvalid)
	}

	return func(a, b Point) float64 {
		return math.Exp(Distance(a, b) / scale)
	}
}

// Metric selects one of the built-in cost functions by name.
type Metric int

const (
	// MetricEuclidean selects Euclidean.
	MetricEuclidean Metric = iota
	// MetricSquaredEuclidean selects SquaredEuclidean.
	MetricSquaredEuclidean
	// MetricExponential selects Exponential.
	MetricExponential
)

// ErrUnknownMetric is returned by ParseMetric for unrecognized names.
var ErrUnknownMetric = errors.New("geom: unknown metric")

var metricNames = [...]string{
	MetricEuclidean:        "euclidean",
	MetricSquaredEuclidean: "squared",
	MetricExponential:      "exponential",
}

// String returns the canonical lowercase name of m.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}

	return metricNames[m]
}

// Func returns the CostFunc for m, or nil for an unknown metric.
func (m Metric) Func() CostFunc {
	switch m {
	case MetricEuclidean:
		return Euclidean
	case MetricSquaredEuclidean:
		return SquaredEuclidean
	case MetricExponential:
		return Exponential
	default:
		return nil
	}
}

// ParseMetric maps a case-insensitive name ("euclidean", "squared",
// "exponential") to its Metric.
func ParseMetric(name string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range metricNames {
		if n == key {
			return Metric(i), nil
		}
	}

	return 0, fmt.Errorf("ParseMetric(%q): %w", name, ErrUnknownMetric)
}
