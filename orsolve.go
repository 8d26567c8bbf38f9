package orsolve

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/orsolve/assignment"
	"github.com/katalvlaran/orsolve/cpm"
	"github.com/katalvlaran/orsolve/graphical"
	"github.com/katalvlaran/orsolve/lp"
	"github.com/katalvlaran/orsolve/simplex"
	"github.com/katalvlaran/orsolve/transport"
)

// faultMessage formats a recovered panic.
func faultMessage(engine string, r any) string {
	glog.Errorf("orsolve: %s panicked: %v", engine, r)
	return fmt.Sprintf("internal error in %s: %v", engine, r)
}

// SolveGraphical solves a two-variable LP by enumerating feasible corners.
func SolveGraphical(objective []float64, constraints []lp.Constraint, direction lp.Direction,
	opts ...graphical.Option) (res lp.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = lp.Failure(lp.StatusMalformed, 2, faultMessage("graphical", r))
		}
	}()
	res, _ = graphical.Solve(lp.Problem{Objective: objective, Direction: direction, Constraints: constraints}, opts...)

	return res
}

// SolveSimplex solves an LP with the simplex method (small two-variable
// problems are routed to the graphical method).
func SolveSimplex(objective []float64, constraints []lp.Constraint, direction lp.Direction,
	opts ...simplex.Option) (res lp.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = lp.Failure(lp.StatusMalformed, len(objective), faultMessage("simplex", r))
		}
	}()
	res, _ = simplex.Solve(lp.Problem{Objective: objective, Direction: direction, Constraints: constraints}, opts...)

	return res
}

// SolveTransport builds an initial plan with the heuristic named by method
// (see transport.ParseMethod for accepted names).
func SolveTransport(method string, cost [][]float64, supply, demand []float64) (res transport.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = transport.Result{Message: faultMessage("transport", r)}
		}
	}()
	m, err := transport.ParseMethod(method)
	if err != nil {
		return transport.Result{Message: err.Error()}
	}
	res, _ = transport.Solve(m, transport.Problem{Cost: cost, Supply: supply, Demand: demand})

	return res
}

// SolveAssignment pairs rows with columns of a square matrix.
func SolveAssignment(matrix [][]float64, direction lp.Direction, opts ...assignment.Option) (res assignment.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = assignment.Result{Pairs: []assignment.Pair{}, Message: faultMessage("assignment", r)}
		}
	}()
	res, _ = assignment.Solve(assignment.Problem{Matrix: matrix, Direction: direction}, opts...)

	return res
}

// SolveCPM schedules activities with the critical path method.
func SolveCPM(activities []cpm.Activity, opts ...cpm.Option) (res cpm.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = cpm.Result{Message: faultMessage("cpm", r)}
		}
	}()
	res, _ = cpm.Solve(activities, opts...)

	return res
}
