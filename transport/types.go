package transport

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/orsolve/lp"
)

// Tolerance below which a remaining supply or demand counts as exhausted.
const Tolerance = 1e-9

// Sentinel errors.
var (
	// ErrUnknownMethod indicates an unrecognized heuristic.
	ErrUnknownMethod = fmt.Errorf("%w: transport: unknown method", lp.ErrMalformedInput)

	// ErrShape indicates empty, ragged or mismatched inputs.
	ErrShape = fmt.Errorf("%w: transport shape mismatch", lp.ErrMalformedInput)

	// ErrNegative indicates a negative or non-finite cost, supply or demand.
	ErrNegative = fmt.Errorf("%w: transport values must be finite and non-negative", lp.ErrMalformedInput)
)

// Method selects an initial-solution heuristic.
type Method int

const (
	// MethodUnknown is the zero value; results of a failed dispatch carry it.
	MethodUnknown Method = iota
	// MethodNorthwestCorner is the northwest-corner rule.
	MethodNorthwestCorner
	// MethodMinimumCost is the least-cost cell rule.
	MethodMinimumCost
	// MethodVogel is Vogel's approximation method.
	MethodVogel
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodUnknown:
		return "unknown"
	case MethodNorthwestCorner:
		return "northwest-corner"
	case MethodMinimumCost:
		return "minimum-cost"
	case MethodVogel:
		return "vogel"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a user-facing name onto a Method. Accepted spellings:
// northwest, northwest-corner, nw, esquina; mincost, minimum-cost, costo;
// vogel, vam.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "northwest", "northwest-corner", "nw", "esquina":
		return MethodNorthwestCorner, nil
	case "mincost", "minimum-cost", "min-cost", "costo":
		return MethodMinimumCost, nil
	case "vogel", "vam":
		return MethodVogel, nil
	default:
		return MethodUnknown, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Problem is a transportation instance. Cost is len(Supply)×len(Demand).
type Problem struct {
	Cost   [][]float64
	Supply []float64
	Demand []float64
}

// Result is an initial feasible shipping plan.
type Result struct {
	Success    bool // a plan was built; false on malformed input or unknown method
	Method     Method
	Allocation [][]float64 // shipped quantity per (source, destination), balanced shape
	TotalCost  float64
	Cost       [][]float64 // balanced cost matrix (dummy line included)
	Supply     []float64   // balanced supplies
	Demand     []float64   // balanced demands
	Balanced   bool        // true when no dummy line was needed
	Message    string
}
