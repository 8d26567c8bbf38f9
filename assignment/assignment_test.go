package assignment_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/orsolve/assignment"
	"github.com/katalvlaran/orsolve/lp"
)

// bruteForce returns the best total over all permutations.
func bruteForce(m [][]float64, dir lp.Direction) float64 {
	n := len(m)
	best := math.Inf(1)
	if dir == lp.Maximize {
		best = math.Inf(-1)
	}
	for _, perm := range combin.Permutations(n, n) {
		var total float64
		for i, j := range perm {
			total += m[i][j]
		}
		if dir.Better(total, best) {
			best = total
		}
	}

	return best
}

func assertPermutation(t *testing.T, res assignment.Result, n int) {
	t.Helper()
	require.Len(t, res.Pairs, n)
	seen := make(map[int]bool, n)
	for i, p := range res.Pairs {
		assert.Equal(t, i, p.Row)
		assert.False(t, seen[p.Col], "column %d assigned twice", p.Col)
		seen[p.Col] = true
	}
}

// TestSolve_TwoByTwo picks the diagonal, not the anti-diagonal.
func TestSolve_TwoByTwo(t *testing.T) {
	for _, method := range []assignment.Method{assignment.MethodHungarian, assignment.MethodGreedyZeros} {
		res, err := assignment.Solve(assignment.Problem{
			Matrix:    [][]float64{{1, 4}, {3, 2}},
			Direction: lp.Minimize,
		}, assignment.WithMethod(method))
		require.NoError(t, err)
		require.True(t, res.Optimal)
		assert.Equal(t, []assignment.Pair{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 2}}, res.Pairs, method.String())
		assert.Equal(t, 3.0, res.Total)
	}
}

// TestSolve_Maximize converts benefits into costs.
func TestSolve_Maximize(t *testing.T) {
	res, err := assignment.Solve(assignment.Problem{
		Matrix:    [][]float64{{1, 4}, {3, 2}},
		Direction: lp.Maximize,
	})
	require.NoError(t, err)
	assert.Equal(t, []assignment.Pair{{Row: 0, Col: 1, Value: 4}, {Row: 1, Col: 0, Value: 3}}, res.Pairs)
	assert.Equal(t, 7.0, res.Total)
	assert.Contains(t, res.Message, "maximize")
}

// TestSolve_ReducedMatrix exposes the reduction artifacts.
func TestSolve_ReducedMatrix(t *testing.T) {
	m := [][]float64{
		{9, 2, 7, 8},
		{6, 4, 3, 7},
		{5, 8, 1, 8},
		{7, 6, 9, 4},
	}
	res, err := assignment.Solve(assignment.Problem{Matrix: m, Direction: lp.Minimize})
	require.NoError(t, err)
	assert.Equal(t, 13.0, res.Total)
	assertPermutation(t, res, 4)
	require.Len(t, res.Reduced, 4)
	for i, row := range res.Reduced {
		for j, v := range row {
			assert.GreaterOrEqual(t, v, 0.0, "reduced (%d,%d)", i, j)
		}
	}
	for _, p := range res.Pairs {
		assert.Equal(t, m[p.Row][p.Col], p.Value)
	}
	assert.Equal(t, 9.0, m[0][0], "input must not be modified")
}

// TestSolve_MatchesBruteForce checks exactness of the default method.
func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 80; trial++ {
		n := 1 + rng.Intn(6)
		m := make([][]float64, n)
		for i := range m {
			m[i] = make([]float64, n)
			for j := range m[i] {
				m[i][j] = float64(rng.Intn(25))
			}
		}
		dir := lp.Minimize
		if trial%3 == 0 {
			dir = lp.Maximize
		}

		res, err := assignment.Solve(assignment.Problem{Matrix: m, Direction: dir})
		require.NoError(t, err)
		require.True(t, res.Optimal)
		assertPermutation(t, res, n)
		assert.InDelta(t, bruteForce(m, dir), res.Total, 1e-9, "trial %d: %v", trial, m)

		greedy, err := assignment.Solve(assignment.Problem{Matrix: m, Direction: dir},
			assignment.WithMethod(assignment.MethodGreedyZeros))
		require.NoError(t, err)
		assertPermutation(t, greedy, n)
		assert.Contains(t, greedy.Message, "approximate")
		assert.False(t, dir.Better(greedy.Total, res.Total), "greedy cannot beat the exact method")
	}
}

// TestSolve_Malformed covers shape and option errors.
func TestSolve_Malformed(t *testing.T) {
	for _, m := range [][][]float64{
		nil,
		{{1, 2}},
		{{1, 2}, {3}},
	} {
		res, err := assignment.Solve(assignment.Problem{Matrix: m})
		require.ErrorIs(t, err, assignment.ErrNonSquare)
		require.ErrorIs(t, err, lp.ErrMalformedInput)
		assert.False(t, res.Optimal)
		assert.NotEmpty(t, res.Message)
	}

	_, err := assignment.Solve(assignment.Problem{Matrix: [][]float64{{math.NaN()}}})
	require.ErrorIs(t, err, lp.ErrMalformedInput)

	_, err = assignment.Solve(assignment.Problem{Matrix: [][]float64{{1}}},
		assignment.WithMethod(assignment.Method(5)))
	require.ErrorIs(t, err, assignment.ErrUnknownMethod)

	_, err = assignment.Solve(assignment.Problem{Matrix: [][]float64{{1}}}, assignment.WithEpsilon(0))
	require.ErrorIs(t, err, assignment.ErrBadEpsilon)
}

// TestSolve_ZeroDirectionMaximizes pins the zero-value Direction.
func TestSolve_ZeroDirectionMaximizes(t *testing.T) {
	m := [][]float64{{1, 4}, {3, 2}}
	res, err := assignment.Solve(assignment.Problem{Matrix: m})
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Total)
	assert.Contains(t, res.Message, "maximize")

	res, err = assignment.Solve(assignment.Problem{Matrix: m, Direction: lp.Minimize})
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Total)
}

// TestSolve_Idempotent runs the same input twice.
func TestSolve_Idempotent(t *testing.T) {
	p := assignment.Problem{Matrix: [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}, Direction: lp.Minimize}
	a, err := assignment.Solve(p)
	require.NoError(t, err)
	b, err := assignment.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 5.0, a.Total)
}
