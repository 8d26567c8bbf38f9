package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orsolve"
	"github.com/katalvlaran/orsolve/assignment"
	"github.com/katalvlaran/orsolve/graphical"
	"github.com/katalvlaran/orsolve/lp"
	"github.com/katalvlaran/orsolve/simplex"
	"github.com/katalvlaran/orsolve/transport"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "orsolve",
		Short: "Solve linear, transportation, assignment and CPM problems",
		Long: `orsolve reads a problem description as JSON (from --file or stdin),
runs the matching engine and prints the result as text, JSON or protojson.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			markGoFlagsParsed()
		},
	}

	pf := root.PersistentFlags()
	pf.StringP(keyFile, "f", "", "problem file (JSON); stdin when empty or \"-\"")
	pf.String(keyFormat, formatText, "output format: text, json or protojson")
	pf.Float64(keyEpsilon, lp.DefaultEpsilon, "numeric tolerance for LP and assignment engines")
	pf.Int(keyMaxIterations, simplex.DefaultMaxIterations, "simplex pivot cap (0 = unlimited, Bland's rule)")
	pf.String(keyPivotRule, "dantzig", "simplex pivot rule: dantzig or bland")
	pf.Bool(keyNoDelegate, false, "never route small 2-variable problems to the graphical method")
	pf.String(keyMethod, "", "transport method (northwest, mincost, vogel) or assignment method (hungarian, greedy)")
	pf.String(keyConfig, "", "config file (default ./orsolve.yaml or $HOME/.config/orsolve/orsolve.yaml)")
	pf.Bool(keyNoColor, false, "disable colored text output")
	pf.AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		engineCmd("graphical", "Solve a two-variable LP by corner enumeration", runGraphical),
		engineCmd("simplex", "Solve an LP with the tableau simplex method", runSimplex),
		engineCmd("transport", "Build an initial transportation plan", runTransport),
		engineCmd("assignment", "Solve a square assignment problem", runAssignment),
		engineCmd("cpm", "Schedule a project with the critical path method", runCPM),
	)

	return root
}

// runner solves one decoded input and returns a renderable report.
type runner func(s settings, data []byte) (report, error)

func engineCmd(use, short string, run runner) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			data, err := readInput(cmd.InOrStdin(), s.File)
			if err != nil {
				return err
			}
			glog.V(1).Infof("orsolve: %s read %d bytes", use, len(data))
			rep, err := run(s, data)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), s, rep)
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

func simplexOptions(s settings) ([]simplex.Option, error) {
	opts := []simplex.Option{
		simplex.WithEpsilon(s.Epsilon),
		simplex.WithMaxIterations(s.MaxIterations),
	}
	switch s.PivotRule {
	case "", "dantzig":
	case "bland":
		opts = append(opts, simplex.WithPivotRule(simplex.Bland))
	default:
		return nil, fmt.Errorf("unknown pivot rule %q (want dantzig or bland)", s.PivotRule)
	}
	if s.NoDelegate {
		opts = append(opts, simplex.WithoutGraphicalDelegation())
	}

	return opts, nil
}

func runGraphical(s settings, data []byte) (report, error) {
	p, err := parseLP(data)
	if err != nil {
		return report{}, err
	}
	res := orsolve.SolveGraphical(p.Objective, p.Constraints, p.Direction, graphical.WithEpsilon(s.Epsilon))

	return lpReport("graphical", res), nil
}

func runSimplex(s settings, data []byte) (report, error) {
	p, err := parseLP(data)
	if err != nil {
		return report{}, err
	}
	opts, err := simplexOptions(s)
	if err != nil {
		return report{}, err
	}
	res := orsolve.SolveSimplex(p.Objective, p.Constraints, p.Direction, opts...)

	return lpReport("simplex", res), nil
}

func runTransport(s settings, data []byte) (report, error) {
	in, err := parseTransport(data)
	if err != nil {
		return report{}, err
	}
	method := in.Method
	if s.Method != "" {
		method = s.Method
	}
	if method == "" {
		method = "northwest"
	}
	res := orsolve.SolveTransport(method, in.Cost, in.Supply, in.Demand)

	return transportReport(res), nil
}

func runAssignment(s settings, data []byte) (report, error) {
	p, err := parseAssignment(data)
	if err != nil {
		return report{}, err
	}
	opts := []assignment.Option{assignment.WithEpsilon(s.Epsilon)}
	switch s.Method {
	case "", "hungarian":
	case "greedy", "greedy-zeros":
		opts = append(opts, assignment.WithMethod(assignment.MethodGreedyZeros))
	default:
		return report{}, fmt.Errorf("unknown assignment method %q (want hungarian or greedy)", s.Method)
	}
	res := orsolve.SolveAssignment(p.Matrix, p.Direction, opts...)

	return assignmentReport(res), nil
}

func runCPM(_ settings, data []byte) (report, error) {
	acts, err := parseCPM(data)
	if err != nil {
		return report{}, err
	}

	return cpmReport(orsolve.SolveCPM(acts)), nil
}

// transportInput carries the optional method named inside the file.
type transportInput struct {
	transport.Problem
	Method string
}
