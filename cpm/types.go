package cpm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/orsolve/lp"
)

// Synthetic event names.
const (
	StartEvent = "Start"
	EndEvent   = "End"
)

// DefaultTolerance bounds |slack| for an activity to count as critical.
const DefaultTolerance = 1e-9

// Sentinel errors. All input errors wrap lp.ErrMalformedInput.
var (
	ErrNoActivities       = fmt.Errorf("%w: at least one activity is required", lp.ErrMalformedInput)
	ErrEmptyName          = fmt.Errorf("%w: activity name is empty", lp.ErrMalformedInput)
	ErrDuplicateName      = fmt.Errorf("%w: duplicate activity name", lp.ErrMalformedInput)
	ErrBadDuration        = fmt.Errorf("%w: activity duration must be positive and finite", lp.ErrMalformedInput)
	ErrUnknownPredecessor = fmt.Errorf("%w: unknown predecessor", lp.ErrMalformedInput)
	ErrBadTolerance       = errors.New("cpm: tolerance must be non-negative and finite")
)

// Activity is one unit of work.
type Activity struct {
	Name         string
	Duration     float64
	Predecessors []string
}

// Schedule is the computed timing of one activity.
type Schedule struct {
	ID           int // 1-based input position
	Name         string
	Duration     float64
	Predecessors []string
	ES, EF       float64 // earliest start / finish
	LS, LF       float64 // latest start / finish
	Slack        float64
	Critical     bool
}

// Event is a network node with its earliest and latest times.
type Event struct {
	Name     string
	Earliest float64
	Latest   float64
}

// Result is the outcome of Solve.
type Result struct {
	Success      bool
	Duration     float64
	Activities   []Schedule // input order
	CriticalPath []string   // critical activity names by ES
	Events       []Event    // per activity Start-k, End-k, then Start, End
	Message      string
}

// Options configures Solve.
type Options struct {
	Tolerance float64
	Ctx       context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns tolerance 1e-9 and a background context.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, Ctx: context.Background()}
}

// WithTolerance sets the criticality tolerance on slack.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithContext makes the topological ordering cancellable.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// ParsePredecessors splits a comma-separated predecessor list such as
// "A, B" and drops empty entries.
func ParsePredecessors(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func startOf(k int) string { return fmt.Sprintf("Start-%d", k) }
func endOf(k int) string   { return fmt.Sprintf("End-%d", k) }

func (o Options) validate() error {
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return ErrBadTolerance
	}

	return nil
}
