// Package simplex implements a dense tableau simplex solver for linear
// programs over non-negative variables.
//
// Problems whose constraints are all "≤" with non-negative right-hand sides
// run a single phase: the tableau starts from the slack basis, the objective
// row holds −c for maximization (c for minimization), and Dantzig's rule
// pivots on the most negative reduced cost until none remains.
//
// Any "≥" or "=" row, or a negative right-hand side, switches to the
// two-phase method: rows are normalized to b ≥ 0, surplus and artificial
// columns are added, Phase 1 minimizes the artificial sum, and Phase 2
// re-optimizes the original objective on the artificial-free tableau.
//
// Small two-variable problems (at most four constraints) are delegated to
// package graphical unless WithoutGraphicalDelegation is given.
//
// The pivot budget is explicit. WithMaxIterations(n) caps the number of
// pivots (default 20); reaching the cap yields lp.StatusIterationLimit with
// the current basic solution. WithMaxIterations(0) removes the cap and forces
// Bland's rule, which cannot cycle.
//
// Complexity:
//
//	– Time:  O(k·m·(n+m)) for k pivots on an m×n problem.
//	– Space: O(m·(n+m)) for the dense tableau.
//
// Errors (sentinel):
//
//	– ErrBadEpsilon       if WithEpsilon receives a non-positive or non-finite value.
//	– ErrBadMaxIterations if WithMaxIterations receives a negative value.
//	– ErrBadPivotRule     if WithPivotRule receives an unknown rule.
//	– lp.ErrMalformedInput (wrapped) for shape violations.
//
// Infeasible, unbounded and capped outcomes are reported through
// lp.Result.Status with a nil error.
package simplex
