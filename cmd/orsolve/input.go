package main

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/orsolve/assignment"
	"github.com/katalvlaran/orsolve/cpm"
	"github.com/katalvlaran/orsolve/lp"
)

// errInvalidJSON is returned when the input is not a JSON document.
var errInvalidJSON = errors.New("input is not valid JSON")

// document validates data and returns its root value.
func document(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, errInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: top level must be an object", errInvalidJSON)
	}

	return root, nil
}

// firstOf returns the first present key among names.
func firstOf(r gjson.Result, names ...string) gjson.Result {
	for _, n := range names {
		if v := r.Get(n); v.Exists() {
			return v
		}
	}

	return gjson.Result{}
}

func numbers(r gjson.Result, field string) ([]float64, error) {
	if !r.IsArray() {
		return nil, fmt.Errorf("%s: expected an array of numbers", field)
	}
	items := r.Array()
	out := make([]float64, len(items))
	for i, it := range items {
		if it.Type != gjson.Number {
			return nil, fmt.Errorf("%s[%d]: expected a number, got %s", field, i, it.Type)
		}
		out[i] = it.Float()
	}

	return out, nil
}

func numberRows(r gjson.Result, field string) ([][]float64, error) {
	if !r.IsArray() {
		return nil, fmt.Errorf("%s: expected an array of rows", field)
	}
	items := r.Array()
	out := make([][]float64, len(items))
	for i, it := range items {
		row, err := numbers(it, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		out[i] = row
	}

	return out, nil
}

func direction(r gjson.Result, fallback lp.Direction) (lp.Direction, error) {
	d := firstOf(r, "direction", "sense")
	if !d.Exists() {
		return fallback, nil
	}

	return lp.ParseDirection(d.String())
}

// parseLP reads {"objective": [...], "direction": "max", "constraints":
// [{"coeffs": [...], "op": "<=", "rhs": 4}, ...]}.
func parseLP(data []byte) (lp.Problem, error) {
	root, err := document(data)
	if err != nil {
		return lp.Problem{}, err
	}
	obj, err := numbers(root.Get("objective"), "objective")
	if err != nil {
		return lp.Problem{}, err
	}
	dir, err := direction(root, lp.Maximize)
	if err != nil {
		return lp.Problem{}, err
	}

	cs := root.Get("constraints")
	if !cs.IsArray() {
		return lp.Problem{}, errors.New("constraints: expected an array")
	}
	var constraints []lp.Constraint
	for i, c := range cs.Array() {
		field := fmt.Sprintf("constraints[%d]", i)
		coeffs, err := numbers(firstOf(c, "coeffs", "coefficients"), field+".coeffs")
		if err != nil {
			return lp.Problem{}, err
		}
		op := lp.LE
		if o := firstOf(c, "op", "operator"); o.Exists() {
			if op, err = lp.ParseOperator(o.String()); err != nil {
				return lp.Problem{}, fmt.Errorf("%s: %w", field, err)
			}
		}
		rhs := firstOf(c, "rhs", "value")
		if rhs.Type != gjson.Number {
			return lp.Problem{}, fmt.Errorf("%s.rhs: expected a number", field)
		}
		constraints = append(constraints, lp.Constraint{Coeffs: coeffs, Op: op, RHS: rhs.Float()})
	}

	return lp.Problem{Objective: obj, Direction: dir, Constraints: constraints}, nil
}

// parseTransport reads {"method": "vogel", "cost": [[...]], "supply": [...], "demand": [...]}.
func parseTransport(data []byte) (transportInput, error) {
	root, err := document(data)
	if err != nil {
		return transportInput{}, err
	}
	var in transportInput
	if in.Cost, err = numberRows(firstOf(root, "cost", "costs"), "cost"); err != nil {
		return transportInput{}, err
	}
	if in.Supply, err = numbers(firstOf(root, "supply", "offer"), "supply"); err != nil {
		return transportInput{}, err
	}
	if in.Demand, err = numbers(root.Get("demand"), "demand"); err != nil {
		return transportInput{}, err
	}
	in.Method = root.Get("method").String()

	return in, nil
}

// parseAssignment reads {"matrix": [[...]], "direction": "min"}.
func parseAssignment(data []byte) (assignment.Problem, error) {
	root, err := document(data)
	if err != nil {
		return assignment.Problem{}, err
	}
	m, err := numberRows(firstOf(root, "matrix", "cost", "costs"), "matrix")
	if err != nil {
		return assignment.Problem{}, err
	}
	dir, err := direction(root, lp.Minimize)
	if err != nil {
		return assignment.Problem{}, err
	}

	return assignment.Problem{Matrix: m, Direction: dir}, nil
}

// parseCPM reads {"activities": [{"name": "A", "duration": 3, "predecessors": ["B"]}]}.
// Predecessors may also be a comma-separated string.
func parseCPM(data []byte) ([]cpm.Activity, error) {
	root, err := document(data)
	if err != nil {
		return nil, err
	}
	list := root.Get("activities")
	if !list.IsArray() {
		return nil, errors.New("activities: expected an array")
	}

	var (
		acts []cpm.Activity
		perr error
	)
	list.ForEach(func(_, a gjson.Result) bool {
		field := fmt.Sprintf("activities[%d]", len(acts))
		dur := a.Get("duration")
		if dur.Type != gjson.Number {
			perr = fmt.Errorf("%s.duration: expected a number", field)
			return false
		}
		act := cpm.Activity{Name: a.Get("name").String(), Duration: dur.Float()}
		switch p := firstOf(a, "predecessors", "after"); {
		case p.IsArray():
			for _, name := range p.Array() {
				act.Predecessors = append(act.Predecessors, name.String())
			}
		case p.Type == gjson.String:
			act.Predecessors = cpm.ParsePredecessors(p.String())
		case p.Exists() && p.Type != gjson.Null:
			perr = fmt.Errorf("%s.predecessors: expected an array or a string", field)
			return false
		}
		acts = append(acts, act)

		return true
	})
	if perr != nil {
		return nil, perr
	}

	return acts, nil
}
