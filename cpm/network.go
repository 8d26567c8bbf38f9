package cpm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/orsolve/core"
)

// validate checks names, durations and predecessor references, and returns
// the name → 1-based ID index.
func validate(acts []Activity) (map[string]int, error) {
	if len(acts) == 0 {
		return nil, ErrNoActivities
	}
	ids := make(map[string]int, len(acts))
	for k, a := range acts {
		if a.Name == "" {
			return nil, fmt.Errorf("%w: activity %d", ErrEmptyName, k+1)
		}
		if _, dup := ids[a.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, a.Name)
		}
		if !(a.Duration > 0) || math.IsInf(a.Duration, 0) {
			return nil, fmt.Errorf("%w: %q has duration %g", ErrBadDuration, a.Name, a.Duration)
		}
		ids[a.Name] = k + 1
	}
	for _, a := range acts {
		for _, p := range a.Predecessors {
			if _, ok := ids[p]; !ok {
				return nil, fmt.Errorf("%w: %q references %q", ErrUnknownPredecessor, a.Name, p)
			}
		}
	}

	return ids, nil
}

// buildNetwork creates the activity-on-arc event graph. Vertex insertion
// order is Start-1, End-1, ..., Start-n, End-n, Start, End.
//
// Complexity: O(n + Σ|Predecessors|).
func buildNetwork(acts []Activity, ids map[string]int) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for k := range acts {
		if err := g.AddLabeledVertex(startOf(k+1), acts[k].Name); err != nil {
			return nil, err
		}
		if err := g.AddLabeledVertex(endOf(k+1), acts[k].Name); err != nil {
			return nil, err
		}
	}
	if err := g.AddVertex(StartEvent); err != nil {
		return nil, err
	}
	if err := g.AddVertex(EndEvent); err != nil {
		return nil, err
	}

	hasSuccessor := make([]bool, len(acts)+1)
	for k, a := range acts {
		id := k + 1
		if _, err := g.AddEdge(startOf(id), endOf(id), a.Duration, core.WithEdgeLabel(a.Name)); err != nil {
			return nil, err
		}
		if len(a.Predecessors) == 0 {
			if _, err := g.AddEdge(StartEvent, startOf(id), 0); err != nil {
				return nil, err
			}
			continue
		}
		for _, p := range a.Predecessors {
			pid := ids[p]
			hasSuccessor[pid] = true
			if g.HasEdge(endOf(pid), startOf(id)) {
				continue // repeated predecessor
			}
			if _, err := g.AddEdge(endOf(pid), startOf(id), 0); err != nil {
				return nil, err
			}
		}
	}
	for k := range acts {
		if !hasSuccessor[k+1] {
			if _, err := g.AddEdge(endOf(k+1), EndEvent, 0); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
