// Package cpm schedules a project with the Critical Path Method.
//
// Activities become an activity-on-arc network on a directed weighted
// core.Graph:
//
//	Start ──0──▶ Start-k ──duration──▶ End-k ──0──▶ End
//	                    End-p ──0──▶ Start-k   (p is a predecessor of k)
//
// where k is the 1-based position of the activity in the input. Only
// activities without predecessors hang off Start and only activities without
// successors feed End.
//
// Events are processed in dfs.TopologicalSort order, so activities may be
// declared in any order; a dependency cycle is reported as an error wrapping
// dfs.ErrCycleDetected.
//
// Forward pass:  earliest[v] = max over arcs u→v of earliest[u] + w.
// Backward pass: latest[u]   = min over arcs u→v of latest[v] − w, starting
// from the project duration everywhere.
//
// Slack of activity k is latest(End-k) − earliest(Start-k) − duration; the
// activity is critical when |slack| ≤ tolerance (1e-9 by default).
//
// Complexity:
//
//	– Time:  O(V + E) for V = 2n+2 events and E arcs.
//	– Space: O(V + E).
package cpm
