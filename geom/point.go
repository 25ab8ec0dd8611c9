package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a position in 3D space. It is a plain value; copying is free.
type Point = r3.Vec

// ErrBadGrid is returned by Grid for non-positive sizes or spacing.
var ErrBadGrid = errors.New("geom: invalid grid parameters")

// Distance returns the Euclidean distance between a and b.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// IsFinite reports whether every coordinate of p is neither NaN nor ±Inf.
func IsFinite(p Point) bool {
	return !isNonFinite(p.X) && !isNonFinite(p.Y) && !isNonFinite(p.Z)
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Grid returns nx*ny points laid out in row-major order (x fastest) on the
// plane at height z, spaced by spacing along X and Y, starting at the origin.
//
// Contract:
//   - nx ≥ 1, ny ≥ 1 (else ErrBadGrid).
//   - spacing must be finite and > 0 (else ErrBadGrid).
//
// Complexity: O(nx*ny).
func Grid(nx, ny int, spacing, z float64) ([]Point, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("Grid: nx=%d, ny=%d (each must be ≥ 1): %w", nx, ny, ErrBadGrid)
	}
	if isNonFinite(spacing) || spacing <= 0 || isNonFinite(z) {
		return nil, fmt.Errorf("Grid: spacing=%g, z=%g: %w", spacing, z, ErrBadGrid)
	}

	pts := make([]Point, 0, nx*ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			pts = append(pts, Point{X: float64(x) * spacing, Y: float64(y) * spacing, Z: z})
		}
	}

	return pts, nil
}
