package lp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Constraint is one row  Σ Coeffs[i]·x[i]  Op  RHS.
type Constraint struct {
	Coeffs []float64
	Op     Operator
	RHS    float64
}

// LHS evaluates the left-hand side at x. len(x) must equal len(c.Coeffs).
func (c Constraint) LHS(x []float64) float64 {
	return floats.Dot(c.Coeffs, x)
}

// Satisfied reports whether x meets the constraint within eps.
func (c Constraint) Satisfied(x []float64, eps float64) bool {
	lhs := c.LHS(x)
	switch c.Op {
	case LE:
		return lhs <= c.RHS+eps
	case GE:
		return lhs >= c.RHS-eps
	case EQ:
		return math.Abs(lhs-c.RHS) <= eps
	default:
		return false
	}
}

// Clone returns a deep copy of the constraint.
func (c Constraint) Clone() Constraint {
	return Constraint{Coeffs: append([]float64(nil), c.Coeffs...), Op: c.Op, RHS: c.RHS}
}

// Problem is a linear program over non-negative variables.
type Problem struct {
	Objective   []float64
	Direction   Direction
	Constraints []Constraint
}

// NumVars returns the variable count.
func (p Problem) NumVars() int { return len(p.Objective) }

// Value evaluates the objective at x.
func (p Problem) Value(x []float64) float64 {
	return floats.Dot(p.Objective, x)
}

// Clone returns a deep copy so that solvers never alias caller storage.
func (p Problem) Clone() Problem {
	out := Problem{
		Objective:   append([]float64(nil), p.Objective...),
		Direction:   p.Direction,
		Constraints: make([]Constraint, len(p.Constraints)),
	}
	for i, c := range p.Constraints {
		out.Constraints[i] = c.Clone()
	}

	return out
}

// Validate checks the well-formedness rules:
//   - at least one variable and one constraint;
//   - every constraint has len(Objective) coefficients, at least one non-zero;
//   - known Direction and Operators;
//   - all numbers finite.
//
// Violations wrap ErrMalformedInput.
func (p Problem) Validate() error {
	n := len(p.Objective)
	if n == 0 {
		return fmt.Errorf("%w: objective has no coefficients", ErrMalformedInput)
	}
	if p.Direction != Maximize && p.Direction != Minimize {
		return fmt.Errorf("%w: unknown direction %d", ErrMalformedInput, int(p.Direction))
	}
	if !finite(p.Objective...) {
		return fmt.Errorf("%w: objective holds NaN or Inf", ErrMalformedInput)
	}
	if len(p.Constraints) == 0 {
		return fmt.Errorf("%w: no constraints", ErrMalformedInput)
	}
	for i, c := range p.Constraints {
		if len(c.Coeffs) != n {
			return fmt.Errorf("%w: constraint %d has %d coefficients, want %d",
				ErrMalformedInput, i+1, len(c.Coeffs), n)
		}
		if c.Op != LE && c.Op != GE && c.Op != EQ {
			return fmt.Errorf("%w: constraint %d has unknown operator %d", ErrMalformedInput, i+1, int(c.Op))
		}
		if !finite(c.Coeffs...) || !finite(c.RHS) {
			return fmt.Errorf("%w: constraint %d holds NaN or Inf", ErrMalformedInput, i+1)
		}
		if allZero(c.Coeffs) {
			return fmt.Errorf("%w: constraint %d has only zero coefficients", ErrMalformedInput, i+1)
		}
	}

	return nil
}

// Feasible reports whether x is non-negative and satisfies every constraint within eps.
func (p Problem) Feasible(x []float64, eps float64) bool {
	for _, v := range x {
		if v < -eps {
			return false
		}
	}
	for _, c := range p.Constraints {
		if !c.Satisfied(x, eps) {
			return false
		}
	}

	return true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func allZero(vs []float64) bool {
	for _, v := range vs {
		if v != 0 {
			return false
		}
	}

	return true
}
