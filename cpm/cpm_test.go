package cpm_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orsolve/cpm"
	"github.com/katalvlaran/orsolve/dfs"
	"github.com/katalvlaran/orsolve/lp"
)

func project() []cpm.Activity {
	return []cpm.Activity{
		{Name: "A", Duration: 3},
		{Name: "B", Duration: 4, Predecessors: []string{"A"}},
		{Name: "C", Duration: 5, Predecessors: []string{"A"}},
		{Name: "D", Duration: 2, Predecessors: []string{"B"}},
		{Name: "E", Duration: 6, Predecessors: []string{"C", "D"}},
	}
}

// TestSolve_FiveActivities checks both passes on the reference network.
func TestSolve_FiveActivities(t *testing.T) {
	res, err := cpm.Solve(project())
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 15.0, res.Duration)
	assert.Equal(t, []string{"A", "B", "D", "E"}, res.CriticalPath)
	assert.Equal(t, "project completed in 15 time units", res.Message)

	want := []cpm.Schedule{
		{ID: 1, Name: "A", Duration: 3, Predecessors: []string{}, ES: 0, EF: 3, LS: 0, LF: 3, Critical: true},
		{ID: 2, Name: "B", Duration: 4, Predecessors: []string{"A"}, ES: 3, EF: 7, LS: 3, LF: 7, Critical: true},
		{ID: 3, Name: "C", Duration: 5, Predecessors: []string{"A"}, ES: 3, EF: 8, LS: 4, LF: 9, Slack: 1},
		{ID: 4, Name: "D", Duration: 2, Predecessors: []string{"B"}, ES: 7, EF: 9, LS: 7, LF: 9, Critical: true},
		{ID: 5, Name: "E", Duration: 6, Predecessors: []string{"C", "D"}, ES: 9, EF: 15, LS: 9, LF: 15, Critical: true},
	}
	if diff := cmp.Diff(want, res.Activities, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("schedule mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, res.Events, 12)
	assert.Equal(t, cpm.Event{Name: "Start-1", Earliest: 0, Latest: 0}, res.Events[0])
	assert.Equal(t, cpm.Event{Name: "End-3", Earliest: 8, Latest: 9}, res.Events[5])
	assert.Equal(t, cpm.Event{Name: cpm.StartEvent, Earliest: 0, Latest: 0}, res.Events[10])
	assert.Equal(t, cpm.Event{Name: cpm.EndEvent, Earliest: 15, Latest: 15}, res.Events[11])
}

// TestSolve_AnyDeclarationOrder relies on the topological sort, not input order.
func TestSolve_AnyDeclarationOrder(t *testing.T) {
	acts := project()
	reversed := make([]cpm.Activity, len(acts))
	for i, a := range acts {
		reversed[len(acts)-1-i] = a
	}
	res, err := cpm.Solve(reversed)
	require.NoError(t, err)
	assert.Equal(t, 15.0, res.Duration)
	assert.Equal(t, []string{"A", "B", "D", "E"}, res.CriticalPath)
	assert.Equal(t, "E", res.Activities[0].Name)
	assert.Equal(t, 5, res.Activities[4].ID)
}

// TestSolve_ParallelCritical keeps declaration order among equal ES.
func TestSolve_ParallelCritical(t *testing.T) {
	res, err := cpm.Solve([]cpm.Activity{
		{Name: "X", Duration: 2},
		{Name: "Y", Duration: 2},
		{Name: "Z", Duration: 1, Predecessors: []string{"X", "Y", "X"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Duration)
	assert.Equal(t, []string{"X", "Y", "Z"}, res.CriticalPath)
}

// TestSolve_Cycle reports a dependency loop.
func TestSolve_Cycle(t *testing.T) {
	res, err := cpm.Solve([]cpm.Activity{
		{Name: "A", Duration: 1, Predecessors: []string{"B"}},
		{Name: "B", Duration: 1, Predecessors: []string{"A"}},
	})
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "cycle")
}

// TestSolve_Malformed covers every input rule.
func TestSolve_Malformed(t *testing.T) {
	cases := []struct {
		name string
		acts []cpm.Activity
		want error
	}{
		{"empty", nil, cpm.ErrNoActivities},
		{"no name", []cpm.Activity{{Duration: 1}}, cpm.ErrEmptyName},
		{"duplicate", []cpm.Activity{{Name: "A", Duration: 1}, {Name: "A", Duration: 2}}, cpm.ErrDuplicateName},
		{"zero duration", []cpm.Activity{{Name: "A"}}, cpm.ErrBadDuration},
		{"negative duration", []cpm.Activity{{Name: "A", Duration: -2}}, cpm.ErrBadDuration},
		{"unknown predecessor", []cpm.Activity{{Name: "A", Duration: 1, Predecessors: []string{"Q"}}}, cpm.ErrUnknownPredecessor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := cpm.Solve(tc.acts)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, lp.ErrMalformedInput)
			assert.False(t, res.Success)
			assert.Empty(t, res.CriticalPath)
		})
	}

	_, err := cpm.Solve(project(), cpm.WithTolerance(-1))
	require.ErrorIs(t, err, cpm.ErrBadTolerance)
}

// TestSolve_Cancelled propagates context cancellation from the sort.
func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cpm.Solve(project(), cpm.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestParsePredecessors trims and drops blanks.
func TestParsePredecessors(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, cpm.ParsePredecessors(" A, ,B "))
	assert.Empty(t, cpm.ParsePredecessors(""))
}

// TestSolve_Repeatable gives identical schedules on repeated calls.
func TestSolve_Repeatable(t *testing.T) {
	acts := project()
	first, err := cpm.Solve(acts)
	require.NoError(t, err)
	second, err := cpm.Solve(acts)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second solve differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, project(), acts)
}
