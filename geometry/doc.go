// Package geometry holds the planar helpers behind the graphical LP method:
// pairwise line intersection, point feasibility against a constraint set,
// and centroid/polar-angle ordering of a vertex set for drawing.
//
// All functions are pure; epsilon is passed explicitly so callers control
// the tolerance (lp.DefaultEpsilon is 1e-8).
//
// ConvexOrder does not validate convexity: for a non-convex point set it
// returns a star-shaped ordering around the centroid, which is only a drawing
// aid and never feeds back into the optimization.
package geometry
