// Package graphical solves two-variable linear programs by vertex enumeration.
//
// The feasible region of a two-variable LP with non-negative variables is a
// convex polygon whose corners lie on constraint boundaries or the axes.
// Solve enumerates candidate corners in a fixed order:
//
//  1. the origin;
//  2. every pairwise intersection of constraint boundaries (i < j);
//  3. for each constraint, its x-axis intercept then its y-axis intercept.
//
// Candidates failing any constraint (within epsilon) or lying within epsilon
// of an already accepted point are discarded. The objective is evaluated at
// each survivor and only a strict improvement replaces the incumbent, so the
// earliest candidate wins ties.
//
// Complexity:
//
//	– Time:  O(m³) for m constraints (O(m²) candidates, each checked against m rows).
//	– Space: O(m²) for the candidate list.
//
// Limitations:
//
//	– Unboundedness is not detected: an open region reports the best enumerated
//	  corner as optimal.
//
// Errors (sentinel):
//
//	– ErrNotTwoVariables if the objective does not have exactly two coefficients.
//	– ErrBadEpsilon      if WithEpsilon receives a non-positive or non-finite value.
//	– lp.ErrMalformedInput (wrapped) for any other shape violation.
package graphical
