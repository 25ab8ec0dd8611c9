package mapper

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/formation/bottleneck"
	"github.com/katalvlaran/formation/geom"
	"github.com/katalvlaran/formation/hungarian"
	"github.com/katalvlaran/formation/matrix"
)

// Map pairs every source point with a distinct target point.
//
// Contract:
//   - len(source) == len(target) unless WithTruncate is set, in which case
//     only the first min(len) points of each set take part.
//   - every coordinate must be finite; the cost function must return finite
//     values.
//   - source and target are never modified.
//
// Empty inputs yield an empty Mapping with Cost 0.
//
// Complexity: O(n²) to build both matrices, then O(n³) for MinSum or
// O(n³·log n) for MinMax.
func Map(source, target []geom.Point, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	log := o.Logger.WithObjective(o.Objective)

	start := time.Now()
	res, err := solve(source, target, o)
	log.LogMap(context.Background(), len(source), res.Cost, time.Since(start), err)

	return res, err
}

// solve runs one transition under already-gathered options.
func solve(source, target []geom.Point, o Options) (Result, error) {
	if !o.Objective.valid() {
		return Result{}, fmt.Errorf("mapper: %s: %w", o.Objective, ErrUnknownObjective)
	}

	src, dst, err := align(source, target, o.Truncate)
	if err != nil {
		return Result{}, err
	}
	if err = checkFinite("source", src); err != nil {
		return Result{}, err
	}
	if err = checkFinite("target", dst); err != nil {
		return Result{}, err
	}

	cost, err := matrix.BuildCost(src, dst, o.Cost)
	if err != nil {
		return Result{}, fmt.Errorf("mapper: cost: %w", err)
	}
	dist, err := matrix.BuildCost(src, dst, geom.Euclidean)
	if err != nil {
		return Result{}, fmt.Errorf("mapper: distance: %w", err)
	}

	res := Result{Objective: o.Objective}
	switch o.Objective {
	case MinSum:
		res.Mapping, err = hungarian.Solve(cost, hungarian.Options{MaxSteps: o.MaxSteps})
		if err != nil {
			return Result{}, fmt.Errorf("mapper: %w", err)
		}
		res.Cost, err = res.Mapping.Sum(dist)

	case MinMax:
		bopts := bottleneck.DefaultOptions()
		bopts.Report = dist
		bopts.Hungarian.MaxSteps = o.MaxSteps

		var br bottleneck.Result
		br, err = bottleneck.Solve(cost, bopts)
		if err != nil {
			return Result{}, fmt.Errorf("mapper: %w", err)
		}
		res.Mapping, res.Cost = br.Assignment, br.MaxCost
	}
	if err != nil {
		return Result{}, fmt.Errorf("mapper: %w", err)
	}

	return res, nil
}

// align returns equal-length views of source and target.
func align(source, target []geom.Point, truncate bool) ([]geom.Point, []geom.Point, error) {
	if len(source) == len(target) {
		return source, target, nil
	}
	if !truncate {
		return nil, nil, fmt.Errorf("mapper: %d source vs %d target points: %w",
			len(source), len(target), matrix.ErrDimensionMismatch)
	}
	n := min(len(source), len(target))

	return source[:n:n], target[:n:n], nil
}

// checkFinite rejects the first point with a NaN or ±Inf coordinate.
func checkFinite(side string, pts []geom.Point) error {
	for i, p := range pts {
		if !geom.IsFinite(p) {
			return fmt.Errorf("mapper: %s point %d %v: %w", side, i, p, matrix.ErrNaNInf)
		}
	}

	return nil
}
