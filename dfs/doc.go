// Package dfs provides depth-first ordering of directed event graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for every
// directed edge u→v, u appears before v. Roots are explored in vertex
// insertion order, so the result is deterministic for a given graph.
// If the graph contains a cycle, the error wraps ErrCycleDetected and names
// the vertices on the cycle.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs
