// Package geom defines the point type and the pluggable pairwise cost
// functions used to build assignment cost matrices.
//
// 🚀 What lives here?
//
//	• Point      — a 3D position (alias of gonum's r3.Vec), immutable value.
//	• CostFunc   — func(a, b Point) float64; must return finite, non-negative values.
//	• Metric     — named selector for the built-in cost functions.
//	• Grid       — planar row-major point grids, handy for formation fixtures.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/formation/geom"
//
//	src, _ := geom.Grid(4, 4, 1.0, 0)
//	dst, _ := geom.Grid(4, 4, 1.0, 5)
//	c := geom.Euclidean(src[0], dst[0]) // 5
//
// The solvers do not enforce non-negativity; their optimality guarantees
// assume it. Non-finite costs are rejected when the cost matrix is built.
package geom
