package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"gonum.org/v1/gonum/mat"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/katalvlaran/orsolve/assignment"
	"github.com/katalvlaran/orsolve/cpm"
	"github.com/katalvlaran/orsolve/lp"
	"github.com/katalvlaran/orsolve/transport"
)

// Output formats.
const (
	formatText      = "text"
	formatJSON      = "json"
	formatProtoJSON = "protojson"
)

// report is an engine result prepared for every output format. Data holds
// only JSON-compatible values (map[string]any, []any, float64, string, bool)
// so it converts to a structpb.Struct without loss.
type report struct {
	Data map[string]any
	Text func(w io.Writer)
}

func render(w io.Writer, s settings, rep report) error {
	switch s.Format {
	case formatJSON:
		out, err := json.MarshalIndent(rep.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	case formatProtoJSON:
		st, err := structpb.NewStruct(rep.Data)
		if err != nil {
			return fmt.Errorf("build struct: %w", err)
		}
		out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
		if err != nil {
			return fmt.Errorf("encode protojson: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	default:
		if s.NoColor {
			color.NoColor = true
		}
		rep.Text(w)
		return nil
	}
}

func vec(xs []float64) []any {
	out := make([]any, len(xs))
	for i, v := range xs {
		out[i] = v
	}

	return out
}

func grid(rows [][]float64) []any {
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = vec(r)
	}

	return out
}

func strs(xs []string) []any {
	out := make([]any, len(xs))
	for i, v := range xs {
		out[i] = v
	}

	return out
}

// writeGrid prints a rectangular matrix through gonum's formatter.
func writeGrid(w io.Writer, rows [][]float64) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	fmt.Fprintf(w, "  %v\n", mat.Formatted(mat.NewDense(r, c, flat), mat.Prefix("  "), mat.Squeeze()))
}

func lpReport(engine string, res lp.Result) report {
	data := map[string]any{
		"engine":    engine,
		"status":    res.Status.String(),
		"optimal":   res.Optimal,
		"value":     res.Value,
		"variables": vec(res.Variables),
		"message":   res.Message,
		"method":    res.Method,
	}
	if res.Method == "simplex" {
		data["iterations"] = float64(res.Iterations)
		data["tableau"] = grid(res.Tableau)
	}
	if len(res.Evaluations) > 0 {
		evals := make([]any, len(res.Evaluations))
		for i, e := range res.Evaluations {
			evals[i] = map[string]any{"x": e.Point.X, "y": e.Point.Y, "value": e.Value}
		}
		data["evaluations"] = evals
		hull := make([]any, len(res.Hull))
		for i, p := range res.Hull {
			hull[i] = vec(p.Vec())
		}
		data["hull"] = hull
	}

	return report{Data: data, Text: func(w io.Writer) {
		fmt.Fprintf(w, "%s %s\n", bold(engine+":"), statusText(res.Optimal, res.Status.String()))
		if res.Status == lp.StatusOptimal || res.Status == lp.StatusIterationLimit {
			fmt.Fprintf(w, "  z = %s\n", cyan(fmt.Sprintf("%g", res.Value)))
			for i, x := range res.Variables {
				fmt.Fprintf(w, "  x%d = %g\n", i+1, x)
			}
		}
		for _, e := range res.Evaluations {
			fmt.Fprintf(w, "  %s (%g, %g) -> %g\n", dim("corner"), e.Point.X, e.Point.Y, e.Value)
		}
		if res.Method == "simplex" {
			fmt.Fprintf(w, "  %s %d\n", dim("pivots"), res.Iterations)
		}
		fmt.Fprintf(w, "  %s\n", res.Message)
	}}
}

func transportReport(res transport.Result) report {
	ok := res.Success
	data := map[string]any{
		"engine":     "transport",
		"success":    ok,
		"cost":       grid(res.Cost),
		"method":     res.Method.String(),
		"allocation": grid(res.Allocation),
		"totalCost":  res.TotalCost,
		"supply":     vec(res.Supply),
		"demand":     vec(res.Demand),
		"balanced":   res.Balanced,
		"message":    res.Message,
	}

	return report{Data: data, Text: func(w io.Writer) {
		if !ok {
			fmt.Fprintf(w, "%s %s\n  %s\n", bold("transport:"), statusText(false, "failed"), res.Message)
			return
		}
		fmt.Fprintf(w, "%s %s\n", bold("transport:"), statusText(true, res.Method.String()))
		writeGrid(w, res.Allocation)
		fmt.Fprintf(w, "  total cost = %s\n", cyan(fmt.Sprintf("%g", res.TotalCost)))
		if !res.Balanced {
			fmt.Fprintf(w, "  %s\n", yellow("unbalanced input; a dummy line was added"))
		}
		fmt.Fprintf(w, "  %s\n", res.Message)
	}}
}

func assignmentReport(res assignment.Result) report {
	pairs := make([]any, len(res.Pairs))
	for i, p := range res.Pairs {
		pairs[i] = map[string]any{"row": float64(p.Row), "col": float64(p.Col), "value": p.Value}
	}
	data := map[string]any{
		"engine":  "assignment",
		"optimal": res.Optimal,
		"method":  res.Method.String(),
		"pairs":   pairs,
		"total":   res.Total,
		"reduced": grid(res.Reduced),
		"message": res.Message,
	}

	return report{Data: data, Text: func(w io.Writer) {
		word := "optimal"
		if !res.Optimal {
			word = "not optimal"
		}
		fmt.Fprintf(w, "%s %s\n", bold("assignment:"), statusText(res.Optimal, word))
		for _, p := range res.Pairs {
			fmt.Fprintf(w, "  row %d -> col %d (%g)\n", p.Row+1, p.Col+1, p.Value)
		}
		if len(res.Pairs) > 0 {
			fmt.Fprintf(w, "  total = %s\n", cyan(fmt.Sprintf("%g", res.Total)))
		}
		fmt.Fprintf(w, "  %s\n", res.Message)
	}}
}

func cpmReport(res cpm.Result) report {
	acts := make([]any, len(res.Activities))
	for i, a := range res.Activities {
		acts[i] = map[string]any{
			"id":           float64(a.ID),
			"name":         a.Name,
			"duration":     a.Duration,
			"predecessors": strs(a.Predecessors),
			"es":           a.ES,
			"ef":           a.EF,
			"ls":           a.LS,
			"lf":           a.LF,
			"slack":        a.Slack,
			"critical":     a.Critical,
		}
	}
	events := make([]any, len(res.Events))
	for i, e := range res.Events {
		events[i] = map[string]any{"name": e.Name, "earliest": e.Earliest, "latest": e.Latest}
	}
	data := map[string]any{
		"engine":       "cpm",
		"success":      res.Success,
		"duration":     res.Duration,
		"activities":   acts,
		"criticalPath": strs(res.CriticalPath),
		"events":       events,
		"message":      res.Message,
	}

	return report{Data: data, Text: func(w io.Writer) {
		word := "scheduled"
		if !res.Success {
			word = "failed"
		}
		fmt.Fprintf(w, "%s %s\n", bold("cpm:"), statusText(res.Success, word))
		if res.Success {
			fmt.Fprint(w, scheduleTable(res.Activities))
			fmt.Fprintf(w, "  critical path: %s\n", strings.Join(res.CriticalPath, " -> "))
		}
		fmt.Fprintf(w, "  %s\n", res.Message)
	}}
}

// scheduleTable aligns the activity rows first and colors critical rows
// afterwards, so escape codes never reach the tabwriter.
func scheduleTable(acts []cpm.Schedule) string {
	var buf strings.Builder
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  activity\tdur\tES\tEF\tLS\tLF\tslack\t")
	for _, a := range acts {
		fmt.Fprintf(tw, "  %s\t%g\t%g\t%g\t%g\t%g\t%g\t\n", a.Name, a.Duration, a.ES, a.EF, a.LS, a.LF, a.Slack)
	}
	_ = tw.Flush()

	lines := strings.SplitAfter(buf.String(), "\n")
	for i, a := range acts {
		if a.Critical {
			line := strings.TrimSuffix(lines[i+1], "\n")
			lines[i+1] = boldRed(line) + "\n"
		}
	}

	return strings.Join(lines, "")
}
