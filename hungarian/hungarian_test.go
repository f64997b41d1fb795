package hungarian_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/MikeHopcroft/PrixFixe-sub000/hungarian"
	"github.com/MikeHopcroft/PrixFixe-sub000/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dense builds a *matrix.Dense from row literals.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, x := range row {
			require.NoError(t, m.Set(i, j, x))
		}
	}
	return m
}

// bruteForce enumerates every permutation and returns the minimal cost.
func bruteForce(c [][]float64) float64 {
	n := len(c)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			s := 0.0
			for i, j := range perm {
				s += c[i][j]
			}
			if s < best {
				best = s
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)
	return best
}

// isPermutation reports whether a contains each of 0..n-1 exactly once.
func isPermutation(a []int) bool {
	seen := make([]bool, len(a))
	for _, x := range a {
		if x < 0 || x >= len(a) || seen[x] {
			return false
		}
		seen[x] = true
	}
	return true
}

// TestSolve_Classic3x3 checks a small instance with a unique optimum.
func TestSolve_Classic3x3(t *testing.T) {
	m := dense(t, [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})

	res, err := hungarian.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Assignment)
	assert.Equal(t, 5.0, res.Cost)
}

// TestSolve_SingleCell is the smallest legal problem.
func TestSolve_SingleCell(t *testing.T) {
	res, err := hungarian.Solve(dense(t, [][]float64{{7.5}}))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Assignment)
	assert.Equal(t, 7.5, res.Cost)
}

// TestSolve_NegativeAndFractional verifies potentials handle signed, non-integer costs.
func TestSolve_NegativeAndFractional(t *testing.T) {
	m := dense(t, [][]float64{
		{1.999, 1, 1},
		{1, 2, 2},
		{-0.5, 1, 0.25},
	})

	res, err := hungarian.Solve(m)
	require.NoError(t, err)
	assert.True(t, isPermutation(res.Assignment))
	assert.InDelta(t, bruteForce([][]float64{
		{1.999, 1, 1},
		{1, 2, 2},
		{-0.5, 1, 0.25},
	}), res.Cost, 1e-12)
}

// TestSolve_PrefersEpsilonDiscount shows a 0.001 discount is enough to flip the optimum.
func TestSolve_PrefersEpsilonDiscount(t *testing.T) {
	m := dense(t, [][]float64{
		{2, 1.999},
		{1.999, 2},
	})

	res, err := hungarian.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Assignment)
	assert.InDelta(t, 3.998, res.Cost, 1e-12)
}

// TestSolve_RandomAgainstBruteForce compares with exhaustive search on small instances.
func TestSolve_RandomAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(6)
		c := make([][]float64, n)
		for i := range c {
			c[i] = make([]float64, n)
			for j := range c[i] {
				// Small integer range forces many ties.
				c[i][j] = float64(rng.Intn(5)) - 0.001*float64(rng.Intn(2))
			}
		}

		res, err := hungarian.Solve(dense(t, c))
		require.NoError(t, err)
		require.True(t, isPermutation(res.Assignment), "trial %d: %v", trial, res.Assignment)
		require.InDelta(t, bruteForce(c), res.Cost, 1e-9, "trial %d", trial)
	}
}

// TestSolve_Deterministic repeats a tie-heavy instance and expects identical output.
func TestSolve_Deterministic(t *testing.T) {
	rows := [][]float64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}
	first, err := hungarian.Solve(dense(t, rows))
	require.NoError(t, err)
	for k := 0; k < 10; k++ {
		again, err := hungarian.Solve(dense(t, rows))
		require.NoError(t, err)
		require.Equal(t, first.Assignment, again.Assignment)
	}
	assert.Equal(t, 4.0, first.Cost)
}

// TestSolve_DoesNotMutateInput ensures the caller's matrix is read-only to Solve.
func TestSolve_DoesNotMutateInput(t *testing.T) {
	m := dense(t, [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})
	before := m.Clone()
	_, err := hungarian.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, before, matrix.Matrix(m))
}

// emptyMatrix is a 0×0 Matrix, which Dense cannot represent.
type emptyMatrix struct{}

func (emptyMatrix) Rows() int                    { return 0 }
func (emptyMatrix) Cols() int                    { return 0 }
func (emptyMatrix) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (emptyMatrix) Set(int, int, float64) error  { return matrix.ErrOutOfRange }
func (e emptyMatrix) Clone() matrix.Matrix       { return e }

// TestSolve_Errors covers every rejected input.
func TestSolve_Errors(t *testing.T) {
	_, err := hungarian.Solve(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = hungarian.Solve(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = hungarian.Solve(emptyMatrix{})
	assert.ErrorIs(t, err, hungarian.ErrEmptyMatrix)

	relaxed, err := matrix.NewSquare(2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(1, 0, math.Inf(1)))
	_, err = hungarian.Solve(relaxed)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Contains(t, err.Error(), "(1,0)")

	_, err = hungarian.Solve(nanMatrix{n: 2, row: 0, col: 1})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// nanMatrix is an n×n zero Matrix with one NaN cell that bypasses Dense's
// finite-value policy.
type nanMatrix struct{ n, row, col int }

func (m nanMatrix) Rows() int { return m.n }
func (m nanMatrix) Cols() int { return m.n }
func (m nanMatrix) At(i, j int) (float64, error) {
	if i == m.row && j == m.col {
		return math.NaN(), nil
	}
	return 0, nil
}
func (nanMatrix) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (m nanMatrix) Clone() matrix.Matrix      { return m }
