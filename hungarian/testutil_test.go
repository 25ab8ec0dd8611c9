// Package hungarian_test provides brute-force oracles shared by the solver
// tests. They enumerate every injective row→column map with gonum's combin
// package, so keep them to n ≤ 7.
package hungarian_test

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/combin"
)

// bruteMinSum returns the optimal min-sum total over all maximal matchings
// (every row of the smaller dimension matched).
func bruteMinSum(a [][]float64) float64 {
	r, c := dims(a)
	if r == 0 || c == 0 {
		return 0
	}
	best := math.Inf(1)
	if r <= c {
		for _, p := range combin.Permutations(c, r) {
			var s float64
			for i, j := range p {
				s += a[i][j]
			}
			best = math.Min(best, s)
		}

		return best
	}
	for _, p := range combin.Permutations(r, c) {
		var s float64
		for j, i := range p {
			s += a[i][j]
		}
		best = math.Min(best, s)
	}

	return best
}

// randomMatrix fills an r×c matrix with integers in [0, span) when integral,
// or uniform floats otherwise. Small integral spans force many ties.
func randomMatrix(rng *rand.Rand, r, c int, span float64, integral bool) [][]float64 {
	a := make([][]float64, r)
	for i := range a {
		a[i] = make([]float64, c)
		for j := range a[i] {
			v := rng.Float64() * span
			if integral {
				v = math.Floor(v)
			}
			a[i][j] = v
		}
	}

	return a
}

func dims(a [][]float64) (int, int) {
	if len(a) == 0 {
		return 0, 0
	}

	return len(a), len(a[0])
}

// totalOf sums a[i][p[i]] over assigned rows.
func totalOf(a [][]float64, p []int) float64 {
	var s float64
	for i, j := range p {
		if j >= 0 {
			s += a[i][j]
		}
	}

	return s
}
