// Package core defines the Graph, Vertex, and Edge types used to model
// activity networks, and provides thread-safe primitives for building and
// querying them.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a Graph may be shared across
// goroutines even though the solvers build a fresh one per call.
//
// Determinism:
//
//	Vertices() and Neighbors() report insertion order, and edge IDs are
//	monotonic ("e1", "e2", ...), so every traversal over a Graph is
//	reproducible run to run.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph, or NaN/Inf weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight the graph cannot store.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph (an event in a CPM network).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Label is an optional human-readable tag (e.g. the activity an event belongs to).
	Label string
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a real Weight (an activity
// duration or 0 for a dummy arc), and an optional Label.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the length of the arc.
	Weight float64

	// Label names the activity carried by the arc; empty for dummy arcs.
	Label string

	// Directed reports whether the edge is one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeLabel attaches a label to the new edge.
func WithEdgeLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects the vertex catalog; muEdgeAdj protects edges and adjacency.
// Lock order is muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, vertexOrder
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder, out

	// Configuration flags
	directed   bool // edge directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID  uint64             // atomic edge ID generator
	vertices    map[string]*Vertex // vertex ID → Vertex
	vertexOrder []string           // insertion order of vertex IDs
	edges       map[string]*Edge   // edge ID → Edge
	edgeOrder   []string           // insertion order of edge IDs

	// out[from] lists edge IDs leaving from, in insertion order.
	// Undirected edges are listed under both endpoints.
	out map[string][]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]string),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether new edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph stores non-zero weights.
func (g *Graph) Weighted() bool { return g.weighted }
