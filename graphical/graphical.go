package graphical

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/orsolve/geometry"
	"github.com/katalvlaran/orsolve/lp"
)

// Solve optimizes a two-variable LP by evaluating every feasible corner.
//
// Malformed input yields a non-nil error. An empty candidate set is not an
// error: the Result carries lp.StatusInfeasible and the message
// "no feasible region found".
func Solve(p lp.Problem, opts ...Option) (lp.Result, error) {
	// Stage 1: options and input validation.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return lp.Failure(lp.StatusMalformed, 2, err.Error()), err
	}
	if p.NumVars() != 2 {
		return lp.Failure(lp.StatusMalformed, 2, ErrNotTwoVariables.Error()), ErrNotTwoVariables
	}
	if err := p.Validate(); err != nil {
		return lp.Failure(lp.StatusMalformed, 2, err.Error()), err
	}

	// Stage 2: enumerate candidate corners.
	pts := Candidates(p.Constraints, o.Epsilon)
	if len(pts) == 0 {
		glog.V(1).Infof("graphical: no feasible corner among %d constraints", len(p.Constraints))
		res := lp.Failure(lp.StatusInfeasible, 2, "no feasible region found")
		res.Method = Method
		res.FeasiblePoints = []lp.Point{}
		res.Hull = []lp.Point{}

		return res, nil
	}

	// Stage 3: evaluate and keep the first strict best.
	evals := make([]lp.Evaluation, len(pts))
	best := 0
	for i, pt := range pts {
		evals[i] = lp.Evaluation{Point: pt, Value: p.Value(pt.Vec())}
		if i > 0 && p.Direction.Better(evals[i].Value, evals[best].Value) {
			best = i
		}
		glog.V(2).Infof("graphical: candidate %d (%g, %g) -> %g", i, pt.X, pt.Y, evals[i].Value)
	}
	glog.V(1).Infof("graphical: %d candidates, best (%g, %g) = %g",
		len(pts), pts[best].X, pts[best].Y, evals[best].Value)

	return lp.Result{
		Status:         lp.StatusOptimal,
		Optimal:        true,
		Value:          evals[best].Value,
		Variables:      pts[best].Vec(),
		Message:        fmt.Sprintf("optimal solution found (graphical method, %d vertices)", len(pts)),
		Method:         Method,
		FeasiblePoints: pts,
		Evaluations:    evals,
		Hull:           geometry.ConvexOrder(pts),
	}, nil
}

// Candidates returns the feasible corner candidates of cs in enumeration
// order, deduplicated within eps. Only the first two coefficients of each
// constraint are used.
//
// Complexity: O(m³).
func Candidates(cs []lp.Constraint, eps float64) []lp.Point {
	pts := make([]lp.Point, 0, len(cs)*(len(cs)+1)/2+2*len(cs)+1)
	add := func(pt lp.Point) {
		if geometry.IsFeasible(pt, cs, eps) && !geometry.Contains(pts, pt, eps) {
			pts = append(pts, pt)
		}
	}

	add(lp.Point{})
	for i := 0; i < len(cs); i++ {
		for j := i + 1; j < len(cs); j++ {
			if pt, ok := geometry.Intersect(cs[i], cs[j], eps); ok {
				add(pt)
			}
		}
	}
	for _, c := range cs {
		onX, okX, onY, okY := geometry.AxisIntercepts(c, eps)
		if okX {
			add(onX)
		}
		if okY {
			add(onY)
		}
	}

	return pts
}
