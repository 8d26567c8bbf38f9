// Package assignment solves the linear assignment problem: given an n×n
// cost (or benefit) matrix, pair every row with a distinct column so that
// the summed cost is minimal (or the summed benefit maximal).
//
// Solve follows the classic Hungarian workflow:
//
//  1. Benefit matrices are turned into costs by m[i][j] = max − m[i][j].
//  2. Each row minimum is subtracted from its row, then each column minimum
//     from its column.
//  3. One covering pass: greedily assign zeros, sweep a line cover to a fixed
//     point, subtract the smallest uncovered value from uncovered cells and
//     add it to doubly covered cells.
//  4. The final pairing is chosen on the reduced matrix by either
//     MethodHungarian (default, exact shortest augmenting path with
//     potentials) or MethodGreedyZeros (the fewest-alternatives zero
//     heuristic, approximate for n > 3).
//
// Steps 2 and 3 only shift rows and columns by constants, so every
// permutation's cost changes by the same amount and the exact method on the
// reduced matrix is optimal for the original one. Totals are always
// recomputed from the original matrix.
//
// Complexity:
//
//	– Time:  O(n³) for reduction, covering and the exact pairing.
//	– Space: O(n²) for the working matrix.
//
// Errors (sentinel):
//
//	– ErrNonSquare     for empty or non-square matrices (wraps lp.ErrMalformedInput).
//	– ErrUnknownMethod for an unknown Method value.
//	– ErrBadEpsilon    for a non-positive or non-finite tolerance.
package assignment
