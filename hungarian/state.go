package hungarian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/formation/matrix"
)

// state is the working set of one Solve call. It is created from a private
// copy of the cost matrix (rows ≤ cols) and discarded when Solve returns.
type state struct {
	c          []float64 // reduced costs, row-major, destroyed by the run
	rows, cols int
	rowCovered []bool
	colCovered []bool
	marks      []mark // rows*cols, row-major
	path       []cell // alternating prime/star chain built by augment
	z0         cell   // uncovered primed zero whose row holds no star
	minFree    float64
}

// newState takes ownership of work; callers must pass a copy.
func newState(work *matrix.Dense) *state {
	r, c := work.Rows(), work.Cols()

	return &state{
		c:          work.Values(),
		rows:       r,
		cols:       c,
		rowCovered: make([]bool, r),
		colCovered: make([]bool, c),
		marks:      make([]mark, r*c),
		path:       make([]cell, 0, 2*r+1),
	}
}

// run drives the step machine until stepDone or the step limit.
func (s *state) run(limit int) error {
	st := stepReduce
	for n := 0; st != stepDone; n++ {
		if n >= limit {
			return fmt.Errorf("stopped before %s: %w", st, ErrStepLimit)
		}
		switch st {
		case stepReduce:
			st = s.reduce()
		case stepStar:
			st = s.starZeros()
		case stepCover:
			st = s.coverStarredColumns()
		case stepPrime:
			st = s.primeZeros()
		case stepAugment:
			st = s.augment()
		case stepAdjust:
			st = s.adjust()
		}
	}

	return nil
}

// reduce subtracts row minima, then column minima when the matrix is square.
// A column shift on a rectangular problem would also charge columns that end
// up unmatched, so it is skipped there.
func (s *state) reduce() step {
	for i := 0; i < s.rows; i++ {
		row := s.c[i*s.cols : (i+1)*s.cols]
		floats.AddConst(-floats.Min(row), row)
	}
	if s.rows != s.cols {
		return stepStar
	}

	for j := 0; j < s.cols; j++ {
		lo := math.Inf(1)
		for i := 0; i < s.rows; i++ {
			lo = math.Min(lo, s.c[i*s.cols+j])
		}
		if lo == 0 {
			continue
		}
		for i := 0; i < s.rows; i++ {
			s.c[i*s.cols+j] -= lo
		}
	}

	return stepStar
}

// starZeros stars the first zero of every row whose column is still free.
// Covers are used as scratch and cleared before leaving.
func (s *state) starZeros() step {
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			if s.c[i*s.cols+j] == 0 && !s.rowCovered[i] && !s.colCovered[j] {
				s.marks[i*s.cols+j] = starred
				s.rowCovered[i] = true
				s.colCovered[j] = true
			}
		}
	}
	s.clearCovers()

	return stepCover
}

// coverStarredColumns covers every column holding a star and finishes once
// all rows are matched.
func (s *state) coverStarredColumns() step {
	covered := 0
	for j := 0; j < s.cols; j++ {
		if s.starInCol(j) >= 0 {
			s.colCovered[j] = true
			covered++
		}
	}
	if covered >= s.rows {
		return stepDone
	}

	return stepPrime
}

// primeZeros primes uncovered zeros until one sits in a star-free row
// (augment from it) or none is left (adjust).
func (s *state) primeZeros() step {
	for {
		z, ok := s.findUncoveredZero()
		if !ok {
			return stepAdjust
		}
		s.marks[z.row*s.cols+z.col] = primed

		sc := s.starInRow(z.row)
		if sc < 0 {
			s.z0 = z

			return stepAugment
		}
		s.rowCovered[z.row] = true
		s.colCovered[sc] = false
	}
}

// augment flips the chain z0 → star in its column → prime in that row → …
// and grows the matching by one.
func (s *state) augment() step {
	s.path = append(s.path[:0], s.z0)
	for {
		last := s.path[len(s.path)-1]
		r := s.starInCol(last.col)
		if r < 0 {
			break
		}
		s.path = append(s.path, cell{row: r, col: last.col})
		// A starred row reached from a prime was covered in primeZeros, so it holds a prime.
		s.path = append(s.path, cell{row: r, col: s.primeInRow(r)})
	}

	for _, p := range s.path {
		idx := p.row*s.cols + p.col
		if s.marks[idx] == starred {
			s.marks[idx] = unmarked
		} else {
			s.marks[idx] = starred
		}
	}
	s.clearCovers()
	for idx, m := range s.marks {
		if m == primed {
			s.marks[idx] = unmarked
		}
	}

	return stepCover
}

// adjust shifts costs by the smallest uncovered value. Only doubly covered
// cells gain it and only doubly uncovered cells lose it; every other cell
// keeps its exact value, so existing zeros stay exactly zero.
func (s *state) adjust() step {
	m := s.minFree
	for i := 0; i < s.rows; i++ {
		rc := s.rowCovered[i]
		for j := 0; j < s.cols; j++ {
			switch cc := s.colCovered[j]; {
			case rc && cc:
				s.c[i*s.cols+j] += m
			case !rc && !cc:
				s.c[i*s.cols+j] -= m
			}
		}
	}

	return stepPrime
}

// findUncoveredZero scans row-major for the first uncovered zero. When none
// exists it leaves the smallest uncovered value in s.minFree.
func (s *state) findUncoveredZero() (cell, bool) {
	lo := math.Inf(1)
	for i := 0; i < s.rows; i++ {
		if s.rowCovered[i] {
			continue
		}
		for j := 0; j < s.cols; j++ {
			if s.colCovered[j] {
				continue
			}
			v := s.c[i*s.cols+j]
			if v == 0 {
				return cell{row: i, col: j}, true
			}
			if v < lo {
				lo = v
			}
		}
	}
	s.minFree = lo

	return cell{}, false
}

func (s *state) starInRow(r int) int {
	for j := 0; j < s.cols; j++ {
		if s.marks[r*s.cols+j] == starred {
			return j
		}
	}

	return -1
}

func (s *state) starInCol(c int) int {
	for i := 0; i < s.rows; i++ {
		if s.marks[i*s.cols+c] == starred {
			return i
		}
	}

	return -1
}

func (s *state) primeInRow(r int) int {
	for j := 0; j < s.cols; j++ {
		if s.marks[r*s.cols+j] == primed {
			return j
		}
	}

	return -1
}

func (s *state) clearCovers() {
	clear(s.rowCovered)
	clear(s.colCovered)
}

// starredColumns returns, per working row, the column of its star.
func (s *state) starredColumns() []int {
	out := make([]int, s.rows)
	for i := range out {
		out[i] = s.starInRow(i)
	}

	return out
}
