// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/AddLabeledVertex/HasVertex/Vertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs in insertion order.
// Concurrency:
//   - Mutations under muVert write lock; queries under muVert read lock.

package core

// AddVertex inserts a vertex with the given ID. Idempotent if the vertex exists.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	return g.AddLabeledVertex(id, "")
}

// AddLabeledVertex inserts a vertex carrying a label. An existing vertex keeps
// its original label.
//
// Complexity: O(1) amortized.
func (g *Graph) AddLabeledVertex(id, label string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Label: label}
	g.vertexOrder = append(g.vertexOrder, id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertexOrder)
}
