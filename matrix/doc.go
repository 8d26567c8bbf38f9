// Package matrix provides the row-major Dense storage shared by the
// tableau, transportation and assignment solvers.
//
// What & Why:
//
//	Every engine in orsolve works on small, rectangular float64 tables:
//	a simplex tableau, a cost matrix with an optional dummy row/column,
//	a reduced assignment matrix. Dense keeps those tables in a single flat
//	slice (offset = i*cols + j) so that hot loops can operate on row views
//	without per-cell bounds checks, while the public surface (At/Set) stays
//	safe and returns sentinel errors instead of panicking.
//
// Value semantics:
//
//	Constructors copy their input (NewFromRows) and Clone/ToRows return
//	independent storage, so a solver never aliases a caller-owned slice.
//
// Complexity:
//
//	NewDense/NewFromRows: O(r*c); At/Set/RowView: O(1); Clone/ToRows: O(r*c);
//	Extend: O((r+dr)*(c+dc)); RowMin/ColMin/Max: O(c), O(r), O(r*c).
package matrix
