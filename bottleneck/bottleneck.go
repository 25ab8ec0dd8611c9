package bottleneck

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/formation/hungarian"
	"github.com/katalvlaran/formation/matrix"
)

// Solve returns the assignment minimizing the largest matched cost.
//
// Contract:
//   - cost must be square and finite; it is never modified.
//   - n = 0 yields an empty assignment with MaxCost 0; n = 1 the trivial pairing.
//   - opts.Report, when set, must have the same shape and be finite.
//
// Complexity: O(n² log n) for sorting plus O(log n²) min-sum solves.
func Solve(cost matrix.Matrix, opts Options) (Result, error) {
	if err := matrix.ValidateSquare(cost); err != nil {
		return Result{}, fmt.Errorf("bottleneck: %w", err)
	}
	report := opts.Report
	if report == nil {
		report = cost
	} else if err := matrix.ValidateSameShape(cost, report); err != nil {
		return Result{}, fmt.Errorf("bottleneck: report: %w", err)
	}

	n := cost.Rows()
	if n == 0 {
		return Result{Assignment: hungarian.Assignment{}}, nil
	}
	for _, m := range []matrix.Matrix{cost, report} {
		if err := matrix.ValidateFinite(m); err != nil {
			return Result{}, fmt.Errorf("bottleneck: %w: %w", ErrInvalidInput, err)
		}
	}

	work, err := matrix.ToDense(cost)
	if err != nil {
		return Result{}, fmt.Errorf("bottleneck: %w", err)
	}

	var res Result
	if n == 1 {
		res.Assignment = hungarian.Assignment{0}
		res.Threshold, _ = work.At(0, 0)
	} else {
		res.Assignment, res.Threshold, err = search(work, opts.Hungarian)
		if err != nil {
			return Result{}, err
		}
	}

	res.MaxCost, err = res.Assignment.Max(report)
	if err != nil {
		return Result{}, fmt.Errorf("bottleneck: %w", err)
	}

	return res, nil
}

// SolveRows is Solve for a raw [][]float64 with default options.
func SolveRows(cost [][]float64) (Result, error) {
	m, err := matrix.FromRows(cost, matrix.WithNoValidateNaNInf())
	if err != nil {
		return Result{}, fmt.Errorf("bottleneck: %w", err)
	}

	return Solve(m, DefaultOptions())
}

// SortedEdges lists every entry of cost ascending by Cost, ties broken by
// Row then Col.
// Complexity: O(r*c·log(r*c)).
func SortedEdges(cost matrix.Matrix) ([]Edge, error) {
	work, err := matrix.ToDense(cost)
	if err != nil {
		return nil, fmt.Errorf("bottleneck: %w", err)
	}

	return sortedEdges(work), nil
}

func sortedEdges(work *matrix.Dense) []Edge {
	r, c := work.Shape()
	edges := make([]Edge, 0, r*c)
	work.Do(func(i, j int, v float64) bool {
		edges = append(edges, Edge{Row: i, Col: j, Cost: v})

		return true
	})
	// Do emits row-major, so a stable sort keeps (Row, Col) order among ties.
	slices.SortStableFunc(edges, func(a, b Edge) int { return cmp.Compare(a.Cost, b.Cost) })

	return edges
}

// search runs the threshold binary search on a finite n×n matrix, n ≥ 2.
func search(work *matrix.Dense, hopts hungarian.Options) (hungarian.Assignment, float64, error) {
	sentinel, err := sentinelFor(work)
	if err != nil {
		return nil, 0, err
	}
	edges := sortedEdges(work)

	// Every row and every column needs one edge, so no threshold below the
	// largest row or column minimum can be feasible.
	floor := math.Max(floats.Max(matrix.RowMins(work)), floats.Max(matrix.ColMins(work)))
	lo := sort.Search(len(edges), func(k int) bool { return edges[k].Cost >= floor }) + 1
	hi := len(edges)

	var (
		best   hungarian.Assignment
		bestAt = -1
	)
	for lo < hi {
		mid := lo + (hi-lo)/2
		a, ok, err := probe(work, edges[mid-1].Cost, sentinel, hopts)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			hi, best, bestAt = mid, a, mid
		} else {
			lo = mid + 1
		}
	}

	threshold := edges[lo-1].Cost
	if bestAt != lo {
		a, ok, err := probe(work, threshold, sentinel, hopts)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, fmt.Errorf("%w at threshold %g", errNoFeasible, threshold)
		}
		best = a
	}

	return best, threshold, nil
}

// sentinelFor returns a cost strictly above the sum of any perfect matching
// that uses only entries of work, and above every entry.
//
// A matching containing one sentinel edge costs at least
// sentinel + (n-1)·min, while any legitimate one costs at most n·max, so
// sentinel > max + (n-1)·(max-min) suffices; the factor 2 leaves headroom
// for rounding inside the min-sum reductions. Note that max+1 alone is not
// enough: on [[10 0] [11 10]] with threshold 10 the sentinel matching
// 0+12 beats the feasible diagonal 10+10.
func sentinelFor(work *matrix.Dense) (float64, error) {
	vals := work.Values()
	hiV, loV := floats.Max(vals), floats.Min(vals)
	n := float64(work.Rows())

	s := hiV + 2*n*(hiV-loV) + 1
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return 0, fmt.Errorf("bottleneck: sentinel for span [%g, %g]: %w", loV, hiV, matrix.ErrNaNInf)
	}

	return s, nil
}

// probe reports whether threshold t admits a perfect matching made of
// entries ≤ t, returning that matching when it does.
func probe(work *matrix.Dense, t, sentinel float64, hopts hungarian.Options) (hungarian.Assignment, bool, error) {
	pen := work.Clone().(*matrix.Dense)
	if err := pen.Apply(func(_, _ int, v float64) float64 {
		if v > t {
			return sentinel
		}

		return v
	}); err != nil {
		return nil, false, fmt.Errorf("bottleneck: %w", err)
	}

	a, err := hungarian.Solve(pen, hopts)
	if err != nil {
		return nil, false, fmt.Errorf("bottleneck: probe %g: %w", t, err)
	}
	for i, j := range a {
		if v, _ := pen.At(i, j); v == sentinel {
			return nil, false, nil
		}
	}

	return a, true, nil
}
