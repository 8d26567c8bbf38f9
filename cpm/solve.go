package cpm

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/glog"

	"github.com/katalvlaran/orsolve/dfs"
)

// Solve computes the CPM schedule of acts.
//
// Malformed input or a dependency cycle returns a non-nil error and a Result
// with Success=false whose Message describes the problem. acts is never
// modified.
func Solve(acts []Activity, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	fail := func(err error) (Result, error) {
		return Result{Activities: []Schedule{}, CriticalPath: []string{}, Events: []Event{}, Message: err.Error()}, err
	}
	if err := o.validate(); err != nil {
		return fail(err)
	}

	// Stage 1: validate and build the event network.
	ids, err := validate(acts)
	if err != nil {
		return fail(err)
	}
	g, err := buildNetwork(acts, ids)
	if err != nil {
		return fail(err)
	}

	// Stage 2: topological order of events.
	order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(o.Ctx))
	if err != nil {
		return fail(err)
	}

	// Stage 3: forward pass.
	earliest := make(map[string]float64, len(order))
	for _, u := range order {
		out, err := g.Neighbors(u)
		if err != nil {
			return fail(err)
		}
		for _, e := range out {
			if t := earliest[u] + e.Weight; t > earliest[e.To] {
				earliest[e.To] = t
			}
		}
	}
	duration := earliest[EndEvent]

	// Stage 4: backward pass.
	latest := make(map[string]float64, len(order))
	for _, v := range order {
		latest[v] = duration
	}
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		out, err := g.Neighbors(u)
		if err != nil {
			return fail(err)
		}
		for _, e := range out {
			if t := latest[e.To] - e.Weight; t < latest[u] {
				latest[u] = t
			}
		}
	}

	// Stage 5: per-activity schedule and critical path.
	res := Result{
		Success:    true,
		Duration:   duration,
		Activities: make([]Schedule, len(acts)),
		Message:    fmt.Sprintf("project completed in %g time units", duration),
	}
	critical := make([]Schedule, 0, len(acts))
	for k, a := range acts {
		s, e := startOf(k+1), endOf(k+1)
		sc := Schedule{
			ID:           k + 1,
			Name:         a.Name,
			Duration:     a.Duration,
			Predecessors: append([]string{}, a.Predecessors...),
			ES:           earliest[s],
			EF:           earliest[e],
			LS:           latest[s],
			LF:           latest[e],
			Slack:        latest[e] - earliest[s] - a.Duration,
		}
		sc.Critical = math.Abs(sc.Slack) <= o.Tolerance
		res.Activities[k] = sc
		if sc.Critical {
			critical = append(critical, sc)
		}
		glog.V(2).Infof("cpm: %s ES=%g EF=%g LS=%g LF=%g slack=%g", a.Name, sc.ES, sc.EF, sc.LS, sc.LF, sc.Slack)
	}
	sort.SliceStable(critical, func(i, j int) bool { return critical[i].ES < critical[j].ES })
	res.CriticalPath = make([]string, len(critical))
	for i, sc := range critical {
		res.CriticalPath[i] = sc.Name
	}

	for _, v := range g.Vertices() {
		res.Events = append(res.Events, Event{Name: v, Earliest: earliest[v], Latest: latest[v]})
	}
	glog.V(1).Infof("cpm: %d activities, duration %g, critical %v", len(acts), duration, res.CriticalPath)

	return res, nil
}
