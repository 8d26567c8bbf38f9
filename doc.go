// Package orsolve bundles small operations-research engines behind five
// plain entry points:
//
//	SolveGraphical   two-variable LP by corner enumeration (package graphical)
//	SolveSimplex     tableau simplex with two-phase support (package simplex)
//	SolveTransport   northwest-corner, minimum-cost and Vogel plans (package transport)
//	SolveAssignment  reduced-matrix Hungarian assignment (package assignment)
//	SolveCPM         critical path scheduling on an event network (package cpm)
//
// The facades never return errors: malformed input, infeasibility and
// internal faults all come back as a result record with its success flag
// cleared and Message set. Callers that want typed errors use the engine
// packages directly.
//
// Supporting packages:
//
//	lp/         shared LP model: Direction, Operator, Constraint, Problem, Result
//	geometry/   planar intersection, feasibility and polygon ordering
//	matrix/     row-major Dense storage for tableaux and cost matrices
//	core/       thread-safe directed weighted graph used by cpm
//	dfs/        topological sort with cycle detection
//
// Quick example:
//
//	res := orsolve.SolveAssignment([][]float64{{1, 4}, {3, 2}}, lp.Minimize)
//	fmt.Println(res.Total) // 3
//
// The cmd/orsolve binary exposes the same engines over JSON files.
package orsolve
