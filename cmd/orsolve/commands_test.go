package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const chvatal = `{
	"objective": [5, 4, 3],
	"direction": "max",
	"constraints": [
		{"coeffs": [2, 3, 1], "op": "<=", "rhs": 5},
		{"coeffs": [4, 1, 2], "op": "<=", "rhs": 11},
		{"coeffs": [3, 4, 2], "op": "<=", "rhs": 8}
	]
}`

const productMix = `{
	"objective": [3, 5],
	"constraints": [
		{"coeffs": [1, 0], "rhs": 4},
		{"coeffs": [0, 2], "rhs": 12},
		{"coeffs": [3, 2], "rhs": 18}
	]
}`

const classicTransport = `{
	"cost": [[19, 30, 50, 10], [70, 30, 40, 60], [40, 8, 70, 20]],
	"supply": [7, 9, 18],
	"demand": [5, 8, 7, 14]
}`

const fiveActivities = `{"activities": [
	{"name": "A", "duration": 3},
	{"name": "B", "duration": 4, "predecessors": ["A"]},
	{"name": "C", "duration": 5, "predecessors": ["A"]},
	{"name": "D", "duration": 2, "predecessors": "B"},
	{"name": "E", "duration": 6, "predecessors": "C, D"}
]}`

// run executes the root command with stdin and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestSimplexCommand_JSON(t *testing.T) {
	out, err := run(t, chvatal, "simplex", "--format", "json")
	require.NoError(t, err)
	require.True(t, gjson.Valid(out), out)
	assert.Equal(t, "optimal", gjson.Get(out, "status").String())
	assert.InDelta(t, 13.0, gjson.Get(out, "value").Float(), 1e-9)
	assert.Equal(t, int64(2), gjson.Get(out, "iterations").Int())
	assert.InDelta(t, 1.0, gjson.Get(out, "variables.2").Float(), 1e-9)
}

func TestSimplexCommand_IterationCap(t *testing.T) {
	out, err := run(t, chvatal, "simplex", "--format", "json", "--max-iterations", "1")
	require.NoError(t, err)
	assert.Equal(t, "iteration-limit", gjson.Get(out, "status").String())
	assert.False(t, gjson.Get(out, "optimal").Bool())
}

func TestSimplexCommand_BadPivotRule(t *testing.T) {
	_, err := run(t, chvatal, "simplex", "--pivot-rule", "random")
	assert.ErrorContains(t, err, "pivot rule")
}

func TestGraphicalCommand_Text(t *testing.T) {
	out, err := run(t, productMix, "graphical", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "graphical: optimal")
	assert.Contains(t, out, "z = 36")
	assert.Contains(t, out, "x1 = 2")
	assert.Contains(t, out, "x2 = 6")
	assert.Equal(t, 5, strings.Count(out, "corner ("))
}

func TestTransportCommand_MethodFlagWins(t *testing.T) {
	in := strings.Replace(classicTransport, "{", `{"method": "northwest",`, 1)
	out, err := run(t, in, "transport", "--method", "vogel", "--format", "protojson")
	require.NoError(t, err)
	assert.Equal(t, "vogel", gjson.Get(out, "method").String())
	assert.InDelta(t, 779.0, gjson.Get(out, "totalCost").Float(), 1e-9)
	assert.True(t, gjson.Get(out, "balanced").Bool())
}

func TestTransportCommand_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.json")
	require.NoError(t, os.WriteFile(path, []byte(classicTransport), 0o600))
	out, err := run(t, "", "transport", "-f", path, "--no-color", "--method", "mincost")
	require.NoError(t, err)
	assert.Contains(t, out, "transport: minimum-cost")
	assert.Contains(t, out, "total cost = 814")
}

func TestTransportCommand_UnknownMethod(t *testing.T) {
	out, err := run(t, classicTransport, "transport", "--method", "simplex", "--format", "json")
	require.NoError(t, err)
	assert.False(t, gjson.Get(out, "success").Bool())
	assert.Contains(t, gjson.Get(out, "message").String(), "simplex")
}

func TestAssignmentCommand(t *testing.T) {
	out, err := run(t, `{"matrix": [[1, 4], [3, 2]]}`, "assignment", "--format", "json")
	require.NoError(t, err)
	assert.True(t, gjson.Get(out, "optimal").Bool())
	assert.InDelta(t, 3.0, gjson.Get(out, "total").Float(), 1e-9)
	assert.Equal(t, int64(1), gjson.Get(out, "pairs.1.col").Int())

	_, err = run(t, `{"matrix": [[1]]}`, "assignment", "--method", "auction")
	assert.ErrorContains(t, err, "auction")
}

func TestCPMCommand(t *testing.T) {
	out, err := run(t, fiveActivities, "cpm", "--format", "json")
	require.NoError(t, err)
	assert.InDelta(t, 15.0, gjson.Get(out, "duration").Float(), 1e-9)
	assert.Equal(t, `["A","B","D","E"]`, gjson.Get(out, "criticalPath").Raw)
	assert.InDelta(t, 1.0, gjson.Get(out, "activities.2.slack").Float(), 1e-9)

	text, err := run(t, fiveActivities, "cpm", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, text, "critical path: A -> B -> D -> E")
}

func TestCommand_EnvironmentAndConfig(t *testing.T) {
	t.Setenv("ORSOLVE_FORMAT", "json")
	out, err := run(t, `{"matrix": [[1, 4], [3, 2]]}`, "assignment")
	require.NoError(t, err)
	assert.True(t, gjson.Valid(out), out)

	cfg := filepath.Join(t.TempDir(), "orsolve.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: xml\n"), 0o600))
	t.Setenv("ORSOLVE_FORMAT", "")
	_, err = run(t, `{"matrix": [[1]]}`, "assignment", "--config", cfg)
	assert.ErrorContains(t, err, "unknown format")
}

func TestCommand_BadInput(t *testing.T) {
	_, err := run(t, `{"objective":`, "simplex")
	assert.ErrorIs(t, err, errInvalidJSON)

	_, err = run(t, productMix, "simplex", "--format", "yaml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "", "cpm", "-f", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
