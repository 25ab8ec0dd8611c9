package hungarian_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/formation/hungarian"
	"github.com/katalvlaran/formation/matrix"
)

const costTol = 1e-9

// SolveSuite exercises the min-sum solver on fixed and random instances.
type SolveSuite struct {
	suite.Suite
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// TestKnown3x3 checks the textbook instance with a unique optimum.
func (s *SolveSuite) TestKnown3x3() {
	cost := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	got, err := hungarian.SolveRows(cost)
	s.Require().NoError(err)
	s.Equal(5.0, totalOf(cost, got))
	if diff := cmp.Diff(hungarian.Assignment{1, 0, 2}, got); diff != "" {
		s.Failf("assignment mismatch", "(-want +got):\n%s", diff)
	}
}

// TestAgainstBruteForceSquare cross-checks every n ≤ 6 on random matrices,
// both tie-heavy integers and generic floats.
func (s *SolveSuite) TestAgainstBruteForceSquare() {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 40; trial++ {
			integral := trial%2 == 0
			a := randomMatrix(rng, n, n, 10, integral)

			got, err := hungarian.SolveRows(a)
			s.Require().NoError(err, "n=%d trial=%d", n, trial)
			s.Require().True(got.IsPermutation(), "n=%d: %v is not a permutation", n, got)
			s.InDelta(bruteMinSum(a), totalOf(a, got), costTol, "n=%d trial=%d matrix=%v", n, trial, a)
		}
	}
}

// TestAgainstBruteForceRectangular covers both rows<cols and rows>cols.
func (s *SolveSuite) TestAgainstBruteForceRectangular() {
	rng := rand.New(rand.NewSource(11))
	shapes := [][2]int{{1, 4}, {2, 5}, {3, 6}, {4, 6}, {5, 2}, {6, 3}, {4, 1}}
	for _, sh := range shapes {
		for trial := 0; trial < 25; trial++ {
			a := randomMatrix(rng, sh[0], sh[1], 8, trial%3 != 0)

			got, err := hungarian.SolveRows(a)
			s.Require().NoError(err)
			s.Require().Len(got, sh[0])

			matched, used := 0, map[int]bool{}
			for _, j := range got {
				if j == hungarian.Unassigned {
					continue
				}
				s.False(used[j], "column %d used twice in %v", j, got)
				used[j] = true
				matched++
			}
			s.Equal(min(sh[0], sh[1]), matched, "shape %v must match the smaller side fully", sh)
			s.InDelta(bruteMinSum(a), totalOf(a, got), costTol, "shape %v matrix=%v", sh, a)
		}
	}
}

// TestRectangularRowOnlyReduction pins the case a column shift would break:
// picking column 1 looks free after reducing columns, but costs 2 > 1.
func (s *SolveSuite) TestRectangularRowOnlyReduction() {
	got, err := hungarian.SolveRows([][]float64{{1, 2}})
	s.Require().NoError(err)
	s.Equal(hungarian.Assignment{0}, got)

	got, err = hungarian.SolveRows([][]float64{{5, 1, 9}, {6, 2, 3}})
	s.Require().NoError(err)
	s.Equal(4.0, totalOf([][]float64{{5, 1, 9}, {6, 2, 3}}, got))
}

func (s *SolveSuite) TestAllTies() {
	a := [][]float64{{3, 3, 3}, {3, 3, 3}, {3, 3, 3}}
	got, err := hungarian.SolveRows(a)
	s.Require().NoError(err)
	s.True(got.IsPermutation())
	s.Equal(9.0, totalOf(a, got))
}

func (s *SolveSuite) TestNegativeAndLargeCosts() {
	neg := [][]float64{{-5, 2}, {3, -1}}
	got, err := hungarian.SolveRows(neg)
	s.Require().NoError(err)
	s.Equal(-6.0, totalOf(neg, got))

	big := [][]float64{{1e12, 1}, {1, 1e12}, {5e11, 5e11}}
	got, err = hungarian.SolveRows(big)
	s.Require().NoError(err)
	s.InDelta(bruteMinSum(big), totalOf(big, got), 1e-3)
}

// TestDeterminism repeats a tie-heavy solve and expects identical output.
func (s *SolveSuite) TestDeterminism() {
	rng := rand.New(rand.NewSource(3))
	a := randomMatrix(rng, 6, 6, 3, true)
	first, err := hungarian.SolveRows(a)
	s.Require().NoError(err)
	for rep := 0; rep < 10; rep++ {
		again, err := hungarian.SolveRows(a)
		s.Require().NoError(err)
		s.Equal(first, again)
	}
}

// TestInputUntouched verifies the caller's matrix survives the reduction.
func (s *SolveSuite) TestInputUntouched() {
	m, err := matrix.FromRows([][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
	s.Require().NoError(err)
	before := m.Values()

	_, err = hungarian.Solve(m, hungarian.DefaultOptions())
	s.Require().NoError(err)
	s.Equal(before, m.Values())
}

func TestSolve_Degenerate(t *testing.T) {
	got, err := hungarian.SolveRows(nil)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = hungarian.SolveRows([][]float64{{}, {}})
	require.NoError(t, err)
	require.Equal(t, hungarian.Assignment{hungarian.Unassigned, hungarian.Unassigned}, got)

	got, err = hungarian.SolveRows([][]float64{{7}})
	require.NoError(t, err)
	require.Equal(t, hungarian.Assignment{0}, got)
}

func TestSolve_Errors(t *testing.T) {
	_, err := hungarian.SolveRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, hungarian.ErrInvalidInput)
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = hungarian.SolveRows([][]float64{{1, math.NaN()}, {3, 4}})
	require.ErrorIs(t, err, hungarian.ErrInvalidInput)
	require.ErrorIs(t, err, hungarian.ErrNumeric)

	_, err = hungarian.SolveRows([][]float64{{1, math.Inf(1)}, {3, 4}})
	require.ErrorIs(t, err, hungarian.ErrNumeric)

	_, err = hungarian.Solve(nil, hungarian.DefaultOptions())
	require.ErrorIs(t, err, hungarian.ErrInvalidInput)
}

func TestSolve_StepLimit(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
	require.NoError(t, err)

	_, err = hungarian.Solve(m, hungarian.Options{MaxSteps: 1})
	require.ErrorIs(t, err, hungarian.ErrStepLimit)
}

// hidden masks *Dense so Solve goes through the generic Matrix path.
type hidden struct{ matrix.Matrix }

func TestSolve_GenericMatrix(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
	require.NoError(t, err)

	got, err := hungarian.Solve(hidden{m}, hungarian.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, hungarian.Assignment{1, 0, 2}, got)
}
