package simplex

import (
	"fmt"
	"math"

	"github.com/golang/glog"

	"github.com/katalvlaran/orsolve/graphical"
	"github.com/katalvlaran/orsolve/lp"
)

// outcome is how a pivot loop ended.
type outcome int

const (
	reachedOptimum outcome = iota
	foundUnbounded
	hitLimit
)

// solver carries options and the shared pivot budget across phases.
type solver struct {
	opts  Options
	iters int
}

// Solve optimizes p with the tableau simplex method.
//
// Stage 1: validate options and problem (errors wrap lp.ErrMalformedInput or
// an option sentinel).
// Stage 2: delegate to package graphical for 2 variables and ≤ 4 constraints.
// Stage 3: run the single-phase or two-phase tableau method.
// Stage 4: extract variables from unit columns and evaluate c·x.
func Solve(p lp.Problem, opts ...Option) (lp.Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.normalize(); err != nil {
		return lp.Failure(lp.StatusMalformed, p.NumVars(), err.Error()), err
	}
	if err := p.Validate(); err != nil {
		return lp.Failure(lp.StatusMalformed, p.NumVars(), err.Error()), err
	}

	if o.DelegateGraphical && p.NumVars() == 2 && len(p.Constraints) <= 4 {
		glog.V(1).Infof("simplex: delegating 2-variable problem with %d constraints to the graphical method",
			len(p.Constraints))
		res, err := graphical.Solve(p, graphical.WithEpsilon(o.Epsilon))
		if err == nil {
			res.Message = "two-variable problem solved graphically: " + res.Message
		}

		return res, err
	}

	s := &solver{opts: o}
	p = p.Clone()
	if needsTwoPhase(p) {
		return s.twoPhase(p)
	}

	return s.singlePhase(p)
}

// needsTwoPhase reports whether p has a row without an obvious slack basis.
func needsTwoPhase(p lp.Problem) bool {
	for _, c := range p.Constraints {
		if c.Op != lp.LE || c.RHS < 0 {
			return true
		}
	}

	return false
}

// objectiveRow writes the phase-2 objective (−c for max, c for min) into row.
func objectiveRow(row []float64, p lp.Problem) {
	for j, c := range p.Objective {
		if p.Direction == lp.Maximize {
			row[j] = -c
		} else {
			row[j] = c
		}
	}
}

// singlePhase handles all-≤ problems with b ≥ 0 starting from the slack basis.
func (s *solver) singlePhase(p lp.Problem) (lp.Result, error) {
	n, m := p.NumVars(), len(p.Constraints)
	t, err := newTableau(m+1, n+m+1)
	if err != nil {
		return lp.Failure(lp.StatusMalformed, n, err.Error()), fmt.Errorf("%w: %v", lp.ErrMalformedInput, err)
	}
	objectiveRow(t.rows[0], p)
	for i, c := range p.Constraints {
		row := t.rows[i+1]
		copy(row, c.Coeffs)
		row[n+i] = 1
		row[t.rhs] = c.RHS
		t.basis[i] = n + i
	}

	out := s.run(t, t.rhs, "single")

	return s.finish(p, t, out, "solution found with the simplex method"), nil
}

// twoPhase handles ≥ and = rows and negative right-hand sides.
//
// Column layout: decision | slack or surplus (one per ≤/≥ row) | artificial
// (one per ≥/= row) | RHS.
func (s *solver) twoPhase(p lp.Problem) (lp.Result, error) {
	n, m := p.NumVars(), len(p.Constraints)
	eps := s.opts.Epsilon

	// Normalize to b ≥ 0.
	var ns, na int
	for i := range p.Constraints {
		c := &p.Constraints[i]
		if c.RHS < 0 {
			for j := range c.Coeffs {
				c.Coeffs[j] = -c.Coeffs[j]
			}
			c.RHS = -c.RHS
			switch c.Op {
			case lp.LE:
				c.Op = lp.GE
			case lp.GE:
				c.Op = lp.LE
			}
		}
		if c.Op != lp.EQ {
			ns++
		}
		if c.Op != lp.LE {
			na++
		}
	}

	// Phase 1 tableau.
	artStart := n + ns
	t, err := newTableau(m+1, artStart+na+1)
	if err != nil {
		return lp.Failure(lp.StatusMalformed, n, err.Error()), fmt.Errorf("%w: %v", lp.ErrMalformedInput, err)
	}
	si, ai := n, artStart
	var artRHS float64
	for i, c := range p.Constraints {
		row := t.rows[i+1]
		copy(row, c.Coeffs)
		row[t.rhs] = c.RHS
		switch c.Op {
		case lp.LE:
			row[si] = 1
			t.basis[i] = si
			si++
		case lp.GE:
			row[si] = -1
			si++
			fallthrough
		case lp.EQ:
			row[ai] = 1
			t.basis[i] = ai
			t.rows[0][ai] = 1
			artRHS += c.RHS
			ai++
		}
	}
	t.priceOut()

	glog.V(1).Infof("simplex: phase 1 with %d rows, %d slack/surplus and %d artificial columns", m, ns, na)
	switch s.run(t, t.rhs, "phase 1") {
	case hitLimit:
		// Artificials may still be basic; that point is not feasible.
		res := lp.Failure(lp.StatusIterationLimit, n, fmt.Sprintf(
			"iteration limit of %d pivots reached in phase 1 before a feasible basis was found",
			s.opts.MaxIterations))
		res.Method, res.Iterations, res.Tableau = Method, s.iters, t.d.ToRows()

		return res, nil
	case foundUnbounded:
		// Phase 1 is bounded below by zero; reaching here means numeric breakdown.
		res := lp.Failure(lp.StatusInfeasible, n, "phase 1 did not converge; the problem is treated as infeasible")
		res.Method, res.Iterations, res.Tableau = Method, s.iters, t.d.ToRows()

		return res, nil
	}
	if w := -t.rows[0][t.rhs]; w > eps*math.Max(1, artRHS) {
		glog.V(1).Infof("simplex: phase 1 optimum %g > 0, infeasible", w)
		res := lp.Failure(lp.StatusInfeasible, n, "the problem is infeasible")
		res.Method, res.Iterations, res.Tableau = Method, s.iters, t.d.ToRows()

		return res, nil
	}

	// Drive basic artificials out; rows where that is impossible are redundant.
	keep := make([]bool, m)
	for i := range keep {
		keep[i] = true
		if t.basis[i] < artStart {
			continue
		}
		keep[i] = false
		for j := 0; j < artStart; j++ {
			if math.Abs(t.rows[i+1][j]) > eps {
				t.pivot(i+1, j)
				s.iters++
				keep[i] = true
				break
			}
		}
	}

	// Phase 2 tableau without artificial columns.
	kept := 0
	for _, k := range keep {
		if k {
			kept++
		}
	}
	t2, err := newTableau(kept+1, artStart+1)
	if err != nil {
		return lp.Failure(lp.StatusMalformed, n, err.Error()), fmt.Errorf("%w: %v", lp.ErrMalformedInput, err)
	}
	r := 1
	for i, k := range keep {
		if !k {
			glog.V(2).Infof("simplex: dropping redundant row %d", i+1)
			continue
		}
		copy(t2.rows[r][:artStart], t.rows[i+1][:artStart])
		t2.rows[r][t2.rhs] = t.rows[i+1][t.rhs]
		t2.basis[r-1] = t.basis[i]
		r++
	}
	objectiveRow(t2.rows[0], p)
	t2.priceOut()

	out := s.run(t2, t2.rhs, "phase 2")

	return s.finish(p, t2, out, "solution found with the two-phase simplex method"), nil
}

// run pivots until optimality, unboundedness or the iteration cap.
// Columns ≥ limit never enter.
func (s *solver) run(t *tableau, limit int, phase string) outcome {
	o := s.opts
	for {
		col := t.entering(o.PivotRule, o.Epsilon, limit)
		if col < 0 {
			return reachedOptimum
		}
		if o.MaxIterations > 0 && s.iters >= o.MaxIterations {
			glog.V(1).Infof("simplex: %s stopped at the %d-pivot cap", phase, o.MaxIterations)
			return hitLimit
		}
		row := t.leaving(col, o.PivotRule, o.Epsilon)
		if row < 0 {
			glog.V(1).Infof("simplex: %s column %d has no positive entry, unbounded", phase, col)
			return foundUnbounded
		}
		t.pivot(row, col)
		s.iters++
		glog.V(2).Infof("simplex: %s pivot %d at (%d,%d), z-row rhs %g", phase, s.iters, row, col, t.rows[0][t.rhs])
	}
}

// finish maps a loop outcome onto an lp.Result.
func (s *solver) finish(p lp.Problem, t *tableau, out outcome, okMsg string) lp.Result {
	n := p.NumVars()
	switch out {
	case foundUnbounded:
		res := lp.Failure(lp.StatusUnbounded, n, "the problem is unbounded")
		res.Method, res.Iterations, res.Tableau = Method, s.iters, t.d.ToRows()

		return res
	case hitLimit:
		x := t.extract(n, s.opts.Epsilon)
		return lp.Result{
			Status:    lp.StatusIterationLimit,
			Value:     p.Value(x),
			Variables: x,
			Message: fmt.Sprintf("iteration limit of %d pivots reached before optimality; "+
				"the current basic solution is returned", s.opts.MaxIterations),
			Method:     Method,
			Tableau:    t.d.ToRows(),
			Iterations: s.iters,
		}
	}

	x := t.extract(n, s.opts.Epsilon)
	res := lp.Result{
		Status:     lp.StatusOptimal,
		Optimal:    true,
		Value:      p.Value(x),
		Variables:  x,
		Message:    okMsg,
		Method:     Method,
		Tableau:    t.d.ToRows(),
		Iterations: s.iters,
	}
	glog.V(1).Infof("simplex: optimal after %d pivots, z=%g", s.iters, res.Value)

	return res
}
