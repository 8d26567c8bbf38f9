// Package lp defines the linear-program data model shared by the geometry,
// graphical and simplex packages.
//
// A Problem is an objective (coefficients + Direction) plus an ordered list of
// Constraints (coefficients, Operator, right-hand side), with implicit
// non-negativity of every variable. All coefficient slices share the same
// length, the variable count; Validate enforces this and the other
// well-formedness rules before any solver touches the data.
//
// Result is the record every LP solver returns: a Status with its boolean
// Optimal shortcut, the objective value, the variable vector, a human-readable
// Message and the diagnostic artifacts a caller may want to draw or inspect
// (enumerated feasible points, hull order, final tableau).
//
// Errors:
//
//	ErrMalformedInput  - shape or content violation, wrapped with detail.
//	ErrInfeasible      - no point satisfies every constraint and non-negativity.
//	ErrUnbounded       - the objective can improve without limit.
//	ErrIterationLimit  - the solver stopped at its iteration cap.
package lp
