package motion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/formation/geom"
	"github.com/katalvlaran/formation/matrix"
)

// unassigned mirrors hungarian.Unassigned; such rows are skipped.
const unassigned = -1

var (
	// ErrInvalidLimits is returned for non-positive or non-finite Limits.
	ErrInvalidLimits = fmt.Errorf("%w: motion limits must be finite and > 0", matrix.ErrInvalidInput)

	// ErrBadDistance is returned for a negative or non-finite distance.
	ErrBadDistance = fmt.Errorf("%w: distance must be finite and ≥ 0", matrix.ErrInvalidInput)
)

// Limits are the per-drone kinematic bounds.
type Limits struct {
	MaxAccel float64 // a > 0
	MaxSpeed float64 // v > 0
}

// Validate reports ErrInvalidLimits unless both fields are finite and > 0.
func (l Limits) Validate() error {
	if !(l.MaxAccel > 0) || math.IsInf(l.MaxAccel, 0) {
		return fmt.Errorf("motion: MaxAccel %g: %w", l.MaxAccel, ErrInvalidLimits)
	}
	if !(l.MaxSpeed > 0) || math.IsInf(l.MaxSpeed, 0) {
		return fmt.Errorf("motion: MaxSpeed %g: %w", l.MaxSpeed, ErrInvalidLimits)
	}

	return nil
}

// CruiseDistance is v²/a: the shortest hop that reaches MaxSpeed.
func (l Limits) CruiseDistance() float64 {
	return l.MaxSpeed * l.MaxSpeed / l.MaxAccel
}

// Profile is the phase breakdown of one straight-line move.
type Profile struct {
	Distance  float64
	Accel     float64 // seconds spent accelerating
	Cruise    float64 // seconds at PeakSpeed; 0 for a triangular profile
	Decel     float64 // seconds spent decelerating
	Total     float64
	PeakSpeed float64
	accel     float64
}

// Triangular reports whether the move has no cruise phase.
func (p Profile) Triangular() bool { return p.Cruise == 0 }

// PlanProfile returns the motion profile covering distance d.
func PlanProfile(d float64, lim Limits) (Profile, error) {
	if err := lim.Validate(); err != nil {
		return Profile{}, err
	}
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return Profile{}, fmt.Errorf("motion: %g: %w", d, ErrBadDistance)
	}

	return plan(d, lim), nil
}

func plan(d float64, lim Limits) Profile {
	a, v := lim.MaxAccel, lim.MaxSpeed
	p := Profile{Distance: d, accel: a}

	tReach := v / a
	if tHalf := math.Sqrt(d / a); tHalf < tReach {
		p.Accel, p.Decel = tHalf, tHalf
		p.PeakSpeed = a * tHalf
		p.Total = 2 * tHalf

		return p
	}
	p.Accel, p.Decel = tReach, tReach
	p.Cruise = (d - a*tReach*tReach) / v
	p.PeakSpeed = v
	p.Total = 2*tReach + p.Cruise

	return p
}

// DistanceAt returns how far along the move the drone is at time t,
// clamped to [0, Distance].
func (p Profile) DistanceAt(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= p.Total:
		return p.Distance
	case t < p.Accel:
		return 0.5 * p.accel * t * t
	}

	accelDist := 0.5 * p.accel * p.Accel * p.Accel
	if t < p.Accel+p.Cruise {
		return accelDist + p.PeakSpeed*(t-p.Accel)
	}
	left := p.Total - t

	return p.Distance - 0.5*p.accel*left*left
}

// TravelTime returns the duration of a straight move of length d.
func TravelTime(d float64, lim Limits) (float64, error) {
	p, err := PlanProfile(d, lim)
	if err != nil {
		return 0, err
	}

	return p.Total, nil
}

// PositionAt interpolates the drone position at time t on the segment
// from → to under lim.
func PositionAt(from, to geom.Point, lim Limits, t float64) (geom.Point, error) {
	d := geom.Distance(from, to)
	p, err := PlanProfile(d, lim)
	if err != nil {
		return geom.Point{}, err
	}
	if d == 0 {
		return from, nil
	}

	return r3.Add(from, r3.Scale(p.DistanceAt(t)/d, r3.Sub(to, from))), nil
}

// Durations returns the travel time of every drone i from source[i] to
// target[mapping[i]]. Unassigned rows get 0.
//
// Errors: len(mapping) != len(source) → matrix.ErrDimensionMismatch;
// a target index outside range → matrix.ErrOutOfRange; non-finite
// coordinates → matrix.ErrNaNInf; bad limits → ErrInvalidLimits.
func Durations(source, target []geom.Point, mapping []int, lim Limits) ([]float64, error) {
	dists, err := distances(source, target, mapping)
	if err != nil {
		return nil, err
	}
	if err = lim.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(dists))
	for i, d := range dists {
		out[i] = plan(d, lim).Total
	}

	return out, nil
}

// MaxTransitionDuration returns the travel time of the longest edge in
// mapping. An empty mapping takes 0. Errors as Durations.
//
// Complexity: O(n).
func MaxTransitionDuration(source, target []geom.Point, mapping []int, lim Limits) (float64, error) {
	dists, err := distances(source, target, mapping)
	if err != nil {
		return 0, err
	}
	if err = lim.Validate(); err != nil {
		return 0, err
	}
	if len(dists) == 0 {
		return 0, nil
	}

	return plan(floats.Max(dists), lim).Total, nil
}

// distances returns |source[i] − target[mapping[i]]| per row.
func distances(source, target []geom.Point, mapping []int) ([]float64, error) {
	if len(mapping) != len(source) {
		return nil, fmt.Errorf("motion: mapping has %d rows for %d sources: %w",
			len(mapping), len(source), matrix.ErrDimensionMismatch)
	}

	out := make([]float64, len(mapping))
	for i, j := range mapping {
		if j == unassigned {
			continue
		}
		if j < 0 || j >= len(target) {
			return nil, fmt.Errorf("motion: row %d → target %d of %d: %w", i, j, len(target), matrix.ErrOutOfRange)
		}
		d := geom.Distance(source[i], target[j])
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("motion: row %d → target %d: %w", i, j, matrix.ErrNaNInf)
		}
		out[i] = d
	}

	return out, nil
}
