package lp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by all LP solvers.
var (
	// ErrMalformedInput indicates an input shape or content violation.
	ErrMalformedInput = errors.New("lp: malformed input")

	// ErrInfeasible indicates an empty feasible region.
	ErrInfeasible = errors.New("lp: problem is infeasible")

	// ErrUnbounded indicates an objective that improves without limit.
	ErrUnbounded = errors.New("lp: problem is unbounded")

	// ErrIterationLimit indicates that a solver hit its iteration cap.
	ErrIterationLimit = errors.New("lp: iteration limit reached")
)

// DefaultEpsilon is the feasibility and degeneracy tolerance used when a
// caller does not supply one.
const DefaultEpsilon = 1e-8

// Direction selects maximization or minimization of the objective.
type Direction int

const (
	// Maximize the objective.
	Maximize Direction = iota
	// Minimize the objective.
	Minimize
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Better reports whether a is a strict improvement over b under d.
func (d Direction) Better(a, b float64) bool {
	if d == Minimize {
		return a < b
	}

	return a > b
}

// ParseDirection accepts "max", "maximize", "min", "minimize" (and the
// Spanish "maximizar"/"minimizar" spellings).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise", "maximizar":
		return Maximize, nil
	case "min", "minimize", "minimise", "minimizar":
		return Minimize, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrMalformedInput, s)
	}
}

// Operator is the relation between a constraint's left and right sides.
type Operator int

const (
	// LE is "≤".
	LE Operator = iota
	// GE is "≥".
	GE
	// EQ is "=".
	EQ
)

// String implements fmt.Stringer.
func (o Operator) String() string {
	switch o {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// ParseOperator accepts "<=", "≤", ">=", "≥", "=", "==".
func ParseOperator(s string) (Operator, error) {
	switch strings.TrimSpace(s) {
	case "<=", "≤", "le", "LE":
		return LE, nil
	case ">=", "≥", "ge", "GE":
		return GE, nil
	case "=", "==", "eq", "EQ":
		return EQ, nil
	default:
		return 0, fmt.Errorf("%w: unknown operator %q", ErrMalformedInput, s)
	}
}

// Point is a location in the (x1, x2) plane.
type Point struct {
	X, Y float64
}

// Vec returns the point as a two-element slice.
func (p Point) Vec() []float64 { return []float64{p.X, p.Y} }

// Status classifies the outcome of a solve.
type Status int

const (
	// StatusOptimal means an optimum was found.
	StatusOptimal Status = iota
	// StatusInfeasible means the feasible region is empty.
	StatusInfeasible
	// StatusUnbounded means the objective improves without limit.
	StatusUnbounded
	// StatusIterationLimit means the solver stopped at its cap; the solution is the current basis.
	StatusIterationLimit
	// StatusMalformed means the input was rejected before solving.
	StatusMalformed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusIterationLimit:
		return "iteration-limit"
	case StatusMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Err maps a non-optimal status to its sentinel error; StatusOptimal yields nil.
func (s Status) Err() error {
	switch s {
	case StatusInfeasible:
		return ErrInfeasible
	case StatusUnbounded:
		return ErrUnbounded
	case StatusIterationLimit:
		return ErrIterationLimit
	case StatusMalformed:
		return ErrMalformedInput
	default:
		return nil
	}
}

// Evaluation pairs a candidate vertex with its objective value.
type Evaluation struct {
	Point Point
	Value float64
}

// Result is the outcome of an LP solve.
type Result struct {
	// Status classifies the outcome; Optimal is Status == StatusOptimal.
	Status  Status
	Optimal bool

	// Value is the objective value at Variables.
	Value float64

	// Variables holds one value per decision variable.
	Variables []float64

	// Message is a human-readable summary.
	Message string

	// Method names the engine that produced the result ("graphical", "simplex", ...).
	Method string

	// FeasiblePoints lists the enumerated feasible vertices (graphical only).
	FeasiblePoints []Point

	// Evaluations pairs every feasible vertex with its objective value (graphical only).
	Evaluations []Evaluation

	// Hull orders FeasiblePoints around their centroid for drawing (graphical only).
	Hull []Point

	// Tableau is the final simplex tableau, objective row first (simplex only).
	Tableau [][]float64

	// Iterations counts pivots performed (simplex only).
	Iterations int
}

// Failure builds a non-optimal Result with zeroed variables.
func Failure(status Status, nvars int, msg string) Result {
	if nvars < 0 {
		nvars = 0
	}

	return Result{
		Status:    status,
		Variables: make([]float64, nvars),
		Message:   msg,
	}
}
