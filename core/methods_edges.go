// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount/Neighbors.
// Determinism:
//   - Edges() and Neighbors() return edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight, creating both
// endpoints if needed, and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically, store, link adjacency (mirror when undirected).
//
// Complexity: O(1) amortized, O(deg(from)) for the multi-edge check.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store and link adjacency
	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, eid)
	g.out[from] = append(g.out[from], eid)
	if !e.Directed && from != to {
		g.out[to] = append(g.out[to], eid)
	}

	return eid, nil
}

// hasEdgeLocked reports whether an edge from→to exists. Caller holds muEdgeAdj.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, eid := range g.out[from] {
		e := g.edges[eid]
		if (e.From == from && e.To == to) || (!e.Directed && e.From == to && e.To == from) {
			return true
		}
	}

	return false
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// GetEdge returns a copy of the edge with the given ID.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, *g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edgeOrder)
}

// Neighbors returns copies of the edges incident to id that can be followed
// out of it, in insertion order. For undirected edges stored as to→from the
// copy is oriented so that From == id.
//
// Errors:
//   - ErrVertexNotFound if id is unknown.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := g.out[id]
	out := make([]Edge, 0, len(ids))
	for _, eid := range ids {
		e := *g.edges[eid]
		if e.From != id { // mirrored undirected edge
			e.From, e.To = e.To, e.From
		}
		out = append(out, e)
	}

	return out, nil
}

// nextEdgeID returns "e<N>" using an atomic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
