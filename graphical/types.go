package graphical

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/orsolve/lp"
)

// Method is the lp.Result.Method tag set by this package.
const Method = "graphical"

// Sentinel errors returned by Solve.
var (
	// ErrNotTwoVariables indicates a problem that is not two-dimensional.
	ErrNotTwoVariables = fmt.Errorf("%w: graphical method requires exactly 2 variables", lp.ErrMalformedInput)

	// ErrBadEpsilon indicates a tolerance that is not a positive finite number.
	ErrBadEpsilon = errors.New("graphical: epsilon must be positive and finite")
)

// Options configures Solve.
type Options struct {
	Epsilon float64 // feasibility, intersection and dedup tolerance
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options{Epsilon: lp.DefaultEpsilon}.
func DefaultOptions() Options {
	return Options{Epsilon: lp.DefaultEpsilon}
}

// WithEpsilon overrides the tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

func (o Options) validate() error {
	if !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 0) {
		return ErrBadEpsilon
	}

	return nil
}
