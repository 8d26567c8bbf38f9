package orsolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orsolve"
	"github.com/katalvlaran/orsolve/cpm"
	"github.com/katalvlaran/orsolve/lp"
	"github.com/katalvlaran/orsolve/transport"
)

func TestSolveGraphical(t *testing.T) {
	res := orsolve.SolveGraphical([]float64{3, 5}, []lp.Constraint{
		{Coeffs: []float64{1, 0}, Op: lp.LE, RHS: 4},
		{Coeffs: []float64{0, 2}, Op: lp.LE, RHS: 12},
		{Coeffs: []float64{3, 2}, Op: lp.LE, RHS: 18},
	}, lp.Maximize)
	require.True(t, res.Optimal)
	assert.InDelta(t, 36, res.Value, 1e-9)
	assert.Len(t, res.Hull, 5)

	bad := orsolve.SolveGraphical([]float64{1, 2, 3}, nil, lp.Maximize)
	assert.False(t, bad.Optimal)
	assert.Equal(t, lp.StatusMalformed, bad.Status)
	assert.NotEmpty(t, bad.Message)
}

func TestSolveSimplex(t *testing.T) {
	res := orsolve.SolveSimplex([]float64{5, 4, 3}, []lp.Constraint{
		{Coeffs: []float64{2, 3, 1}, Op: lp.LE, RHS: 5},
		{Coeffs: []float64{4, 1, 2}, Op: lp.LE, RHS: 11},
		{Coeffs: []float64{3, 4, 2}, Op: lp.LE, RHS: 8},
	}, lp.Maximize)
	require.True(t, res.Optimal)
	assert.InDelta(t, 13, res.Value, 1e-9)

	bad := orsolve.SolveSimplex(nil, nil, lp.Minimize)
	assert.False(t, bad.Optimal)
	assert.Contains(t, bad.Message, "malformed")
}

func TestSolveTransport(t *testing.T) {
	res := orsolve.SolveTransport("esquina", [][]float64{{1, 2}, {3, 4}}, []float64{10, 10}, []float64{10, 10})
	assert.Equal(t, [][]float64{{10, 0}, {0, 10}}, res.Allocation)
	assert.Equal(t, 50.0, res.TotalCost)
	assert.True(t, res.Success)
	assert.Equal(t, transport.MethodNorthwestCorner, res.Method)

	bad := orsolve.SolveTransport("modi", [][]float64{{1}}, []float64{1}, []float64{1})
	assert.False(t, bad.Success)
	assert.Equal(t, transport.MethodUnknown, bad.Method)
	assert.Nil(t, bad.Allocation)
	assert.Contains(t, bad.Message, "unknown method")

	short := orsolve.SolveTransport("vogel", [][]float64{{1, 2}}, []float64{1}, []float64{1})
	assert.False(t, short.Success)
	assert.Equal(t, transport.MethodVogel, short.Method)
	assert.Contains(t, short.Message, "malformed")
}

func TestSolveAssignment(t *testing.T) {
	res := orsolve.SolveAssignment([][]float64{{1, 4}, {3, 2}}, lp.Minimize)
	require.True(t, res.Optimal)
	assert.Equal(t, 3.0, res.Total)
	assert.Equal(t, 0, res.Pairs[0].Col)
	assert.Equal(t, 1, res.Pairs[1].Col)

	bad := orsolve.SolveAssignment([][]float64{{1, 2, 3}, {4, 5, 6}}, lp.Minimize)
	assert.False(t, bad.Optimal)
	assert.Contains(t, bad.Message, "square")
}

func TestSolveCPM(t *testing.T) {
	res := orsolve.SolveCPM([]cpm.Activity{
		{Name: "A", Duration: 3},
		{Name: "B", Duration: 4, Predecessors: []string{"A"}},
		{Name: "C", Duration: 5, Predecessors: []string{"A"}},
		{Name: "D", Duration: 2, Predecessors: []string{"B"}},
		{Name: "E", Duration: 6, Predecessors: []string{"C", "D"}},
	})
	require.True(t, res.Success)
	assert.Equal(t, 15.0, res.Duration)
	assert.Equal(t, []string{"A", "B", "D", "E"}, res.CriticalPath)

	bad := orsolve.SolveCPM([]cpm.Activity{{Name: "A", Duration: 1, Predecessors: []string{"Z"}}})
	assert.False(t, bad.Success)
	assert.Contains(t, bad.Message, "unknown predecessor")
}
