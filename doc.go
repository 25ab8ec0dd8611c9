// Package formation assigns drones to the slots of a target formation.
//
// Given the current drone positions and the slots of the next formation,
// both as ordered 3D point sets, it computes a one-to-one pairing that is
// optimal under one of two criteria:
//
//   - min-sum: the total flight distance (or any pluggable cost) is
//     minimal. Solved with Kuhn–Munkres in O(n³).
//   - min-max: the longest single flight is minimal. Since all drones move
//     at once this is the criterion that bounds the transition time.
//     Solved by binary search over the sorted edge costs with a min-sum
//     feasibility probe.
//
// Layout:
//
//	geom/       — Point (gonum r3.Vec), cost functions, Metric, grid fixtures
//	matrix/     — Matrix interface, row-major Dense, validators, BuildCost
//	hungarian/  — min-sum solver and Assignment helpers
//	bottleneck/ — min-max solver
//	mapper/     — Map / MapBatch façade with options and structured logging
//	motion/     — trapezoidal travel time and transition duration
//	examples/   — runnable drone show demo
//
// Quick start:
//
//	res, err := mapper.Map(current, next, mapper.WithObjective(mapper.MinMax))
//	if err != nil { ... }
//	d, err := motion.MaxTransitionDuration(current, next, res.Mapping,
//		motion.Limits{MaxAccel: 3, MaxSpeed: 5})
//
// All computations are pure and allocate their own working state, so
// independent calls may run concurrently.
package formation
