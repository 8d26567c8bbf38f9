package assignment

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/orsolve/lp"
)

// Sentinel errors.
var (
	// ErrNonSquare indicates an empty or non-square matrix.
	ErrNonSquare = fmt.Errorf("%w: assignment matrix must be square and non-empty", lp.ErrMalformedInput)

	// ErrUnknownMethod indicates an unsupported final-pairing method.
	ErrUnknownMethod = errors.New("assignment: unknown method")

	// ErrBadEpsilon indicates a tolerance that is not a positive finite number.
	ErrBadEpsilon = errors.New("assignment: epsilon must be positive and finite")
)

// Method selects how the final pairing is read off the reduced matrix.
type Method int

const (
	// MethodHungarian is the exact O(n³) augmenting-path method.
	MethodHungarian Method = iota
	// MethodGreedyZeros repeatedly takes the zero with the fewest alternatives.
	MethodGreedyZeros
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodHungarian:
		return "hungarian"
	case MethodGreedyZeros:
		return "greedy-zeros"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Problem is an n×n cost (Minimize) or benefit (Maximize) matrix.
//
// The zero Direction is lp.Maximize, so a cost matrix must set
// Direction: lp.Minimize explicitly.
type Problem struct {
	Matrix    [][]float64
	Direction lp.Direction
}

// Pair assigns Row to Col; Value is the original matrix entry.
type Pair struct {
	Row, Col int
	Value    float64
}

// Result is the outcome of Solve.
type Result struct {
	// Optimal is false when MethodGreedyZeros had to complete rows off the
	// zeros. A greedy result with Optimal set may still be suboptimal (see Message).
	Optimal bool
	Pairs   []Pair // one per row, ordered by Row
	Total   float64
	Reduced [][]float64 // matrix after reduction and the covering pass
	Method  Method
	Message string
}

// Options configures Solve.
type Options struct {
	Method  Method
	Epsilon float64 // zero tolerance on the reduced matrix
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns MethodHungarian with lp.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Method: MethodHungarian, Epsilon: lp.DefaultEpsilon}
}

// WithMethod selects the final pairing method.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithEpsilon sets the zero tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

func (o Options) validate() error {
	if o.Method != MethodHungarian && o.Method != MethodGreedyZeros {
		return fmt.Errorf("%w: %v", ErrUnknownMethod, o.Method)
	}
	if !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 0) {
		return ErrBadEpsilon
	}

	return nil
}
