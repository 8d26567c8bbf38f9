package simplex

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/orsolve/lp"
)

// Method is the lp.Result.Method tag set by this package.
const Method = "simplex"

// DefaultMaxIterations is the pivot cap applied when none is configured.
const DefaultMaxIterations = 20

// Sentinel errors for option validation.
var (
	// ErrBadEpsilon indicates a tolerance that is not a positive finite number.
	ErrBadEpsilon = errors.New("simplex: epsilon must be positive and finite")

	// ErrBadMaxIterations indicates a negative pivot cap.
	ErrBadMaxIterations = errors.New("simplex: max iterations must be non-negative")

	// ErrBadPivotRule indicates an unknown PivotRule value.
	ErrBadPivotRule = errors.New("simplex: unknown pivot rule")
)

// PivotRule selects the entering column.
type PivotRule int

const (
	// Dantzig enters the column with the most negative reduced cost.
	Dantzig PivotRule = iota
	// Bland enters the lowest-index negative column and breaks ratio ties
	// by the lowest basic index; it never cycles.
	Bland
)

// String implements fmt.Stringer.
func (r PivotRule) String() string {
	switch r {
	case Dantzig:
		return "dantzig"
	case Bland:
		return "bland"
	default:
		return fmt.Sprintf("PivotRule(%d)", int(r))
	}
}

// Options configures Solve.
type Options struct {
	Epsilon           float64   // zero/unit tolerance for pivots and extraction
	MaxIterations     int       // pivot cap; 0 = unlimited (forces Bland)
	PivotRule         PivotRule // entering/leaving selection
	DelegateGraphical bool      // route 2-variable, ≤4-row problems to package graphical
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: epsilon 1e-8, 20 pivots, Dantzig,
// graphical delegation enabled.
func DefaultOptions() Options {
	return Options{
		Epsilon:           lp.DefaultEpsilon,
		MaxIterations:     DefaultMaxIterations,
		PivotRule:         Dantzig,
		DelegateGraphical: true,
	}
}

// WithEpsilon overrides the numeric tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations sets the pivot cap. Zero means no cap and implies Bland's rule.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithPivotRule selects the pivot rule.
func WithPivotRule(r PivotRule) Option {
	return func(o *Options) { o.PivotRule = r }
}

// WithoutGraphicalDelegation keeps small two-variable problems on the tableau path.
func WithoutGraphicalDelegation() Option {
	return func(o *Options) { o.DelegateGraphical = false }
}

func (o *Options) normalize() error {
	if !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 0) {
		return ErrBadEpsilon
	}
	if o.MaxIterations < 0 {
		return ErrBadMaxIterations
	}
	if o.PivotRule != Dantzig && o.PivotRule != Bland {
		return ErrBadPivotRule
	}
	if o.MaxIterations == 0 {
		o.PivotRule = Bland
	}

	return nil
}
