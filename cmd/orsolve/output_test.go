package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/orsolve/assignment"
	"github.com/katalvlaran/orsolve/cpm"
	"github.com/katalvlaran/orsolve/lp"
	"github.com/katalvlaran/orsolve/transport"
)

func TestRender_FormatsAgree(t *testing.T) {
	rep := assignmentReport(assignment.Result{
		Optimal: true,
		Pairs:   []assignment.Pair{{Row: 0, Col: 1, Value: 4}, {Row: 1, Col: 0, Value: 3}},
		Total:   7,
		Method:  assignment.MethodHungarian,
		Message: "ok",
	})

	var js, pj bytes.Buffer
	require.NoError(t, render(&js, settings{Format: formatJSON}, rep))
	require.NoError(t, render(&pj, settings{Format: formatProtoJSON}, rep))
	for _, out := range []string{js.String(), pj.String()} {
		require.True(t, gjson.Valid(out), out)
		assert.Equal(t, 7.0, gjson.Get(out, "total").Float())
		assert.Equal(t, int64(1), gjson.Get(out, "pairs.0.col").Int())
		assert.Equal(t, "hungarian", gjson.Get(out, "method").String())
	}
}

func TestRender_TextFailure(t *testing.T) {
	var buf bytes.Buffer
	rep := lpReport("simplex", lp.Failure(lp.StatusInfeasible, 2, "the problem is infeasible"))
	require.NoError(t, render(&buf, settings{Format: formatText, NoColor: true}, rep))
	assert.Contains(t, buf.String(), "simplex: infeasible")
	assert.NotContains(t, buf.String(), "z =")

	buf.Reset()
	require.NoError(t, render(&buf, settings{Format: formatText, NoColor: true},
		transportReport(transport.Result{Message: "bad shape"})))
	assert.Contains(t, buf.String(), "transport: failed")
	assert.Contains(t, buf.String(), "bad shape")

	buf.Reset()
	require.NoError(t, render(&buf, settings{Format: formatText, NoColor: true},
		cpmReport(cpm.Result{Message: "dfs: cycle detected"})))
	assert.Contains(t, buf.String(), "cpm: failed")
	assert.NotContains(t, buf.String(), "critical path")
}

func TestRender_TransportGrid(t *testing.T) {
	var buf bytes.Buffer
	rep := transportReport(transport.Result{
		Success:    true,
		Method:     transport.MethodNorthwestCorner,
		Cost:       [][]float64{{1, 2}, {3, 4}},
		Allocation: [][]float64{{10, 0}, {0, 10}},
		TotalCost:  50,
		Balanced:   false,
		Message:    "plan built",
	})
	require.NoError(t, render(&buf, settings{Format: formatText, NoColor: true}, rep))
	out := buf.String()
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "total cost = 50")
	assert.Contains(t, out, "dummy line")

	buf.Reset()
	require.NoError(t, render(&buf, settings{Format: formatJSON}, rep))
	assert.Equal(t, "[[1,2],[3,4]]", gjson.Get(buf.String(), "cost|@ugly").Raw)
	assert.True(t, gjson.Get(buf.String(), "success").Bool())
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestScheduleTable_ColorKeepsAlignment(t *testing.T) {
	acts := []cpm.Schedule{
		{Name: "A", Duration: 3, EF: 3, LF: 3, Critical: true},
		{Name: "Long name", Duration: 5, ES: 3, EF: 8, LS: 4, LF: 9, Slack: 1},
		{Name: "B", Duration: 6, ES: 8, EF: 14, LS: 8, LF: 14, Critical: true},
	}

	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	color.NoColor = true
	plain := scheduleTable(acts)
	color.NoColor = false
	colored := scheduleTable(acts)

	assert.NotEqual(t, plain, colored)
	assert.Equal(t, plain, ansi.ReplaceAllString(colored, ""))

	lines := strings.Split(strings.TrimSuffix(plain, "\n"), "\n")
	require.Len(t, lines, 4)
	col := strings.Index(lines[0], "dur")
	for _, line := range lines[1:] {
		assert.NotEqual(t, byte(' '), line[col], "line %q", line)
		assert.Equal(t, byte(' '), line[col-1], "line %q", line)
	}
}
