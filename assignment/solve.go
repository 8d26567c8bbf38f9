package assignment

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/orsolve/lp"
	"github.com/katalvlaran/orsolve/matrix"
)

// Solve computes a row-to-column assignment for p.
//
// Malformed input (empty, ragged, non-square, NaN/Inf) returns a non-nil
// error alongside a Result whose Message describes it. p is never modified.
func Solve(p Problem, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	fail := func(err error) (Result, error) {
		return Result{Method: o.Method, Pairs: []Pair{}, Message: err.Error()}, err
	}
	if err := o.validate(); err != nil {
		return fail(err)
	}
	if p.Direction != lp.Maximize && p.Direction != lp.Minimize {
		return fail(fmt.Errorf("%w: unknown direction %d", lp.ErrMalformedInput, int(p.Direction)))
	}
	n := len(p.Matrix)
	if n == 0 {
		return fail(ErrNonSquare)
	}
	for _, row := range p.Matrix {
		if len(row) != n {
			return fail(ErrNonSquare)
		}
	}
	d, err := matrix.NewFromRows(p.Matrix)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", lp.ErrMalformedInput, err))
	}
	if err = matrix.ValidateSquare(d); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrNonSquare, err))
	}

	// Stage 1: benefit → cost.
	if p.Direction == lp.Maximize {
		top := d.Max()
		d.Apply(func(_, _ int, v float64) float64 { return top - v })
	}

	// Stage 2: row/column reduction and one covering pass.
	if err = reduce(d); err != nil {
		return fail(err)
	}
	if _, err = cover(d, o.Epsilon); err != nil {
		return fail(err)
	}
	reduced := d.ToRows()

	// Stage 3: final pairing.
	var (
		cols    []int
		onZeros = n
	)
	switch o.Method {
	case MethodHungarian:
		cols = hungarian(reduced)
	case MethodGreedyZeros:
		cols, onZeros = greedyZeros(reduced, o.Epsilon)
	}

	res := Result{
		Optimal: true,
		Pairs:   make([]Pair, n),
		Reduced: reduced,
		Method:  o.Method,
	}
	for i, j := range cols {
		v := p.Matrix[i][j]
		res.Pairs[i] = Pair{Row: i, Col: j, Value: v}
		res.Total += v
	}
	switch {
	case o.Method == MethodHungarian:
		res.Message = fmt.Sprintf("optimal assignment found (%s), total %g", p.Direction, res.Total)
	case onZeros == n:
		res.Message = fmt.Sprintf("assignment found by greedy zero selection (%s), total %g; "+
			"approximate, not guaranteed optimal", p.Direction, res.Total)
	default:
		res.Optimal = false
		res.Message = fmt.Sprintf("greedy zero selection matched %d of %d rows on zeros (%s), total %g; "+
			"approximate, remaining rows took their cheapest free column", onZeros, n, p.Direction, res.Total)
	}
	glog.V(1).Infof("assignment: %s", res.Message)

	return res, nil
}
