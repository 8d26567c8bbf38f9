// Package transport builds initial feasible plans for the transportation
// problem: ship Supply[i] units from each source to meet Demand[j] at each
// destination at minimum Σ Cost[i][j]·x[i][j].
//
// Three classic constructive heuristics are provided:
//
//	– NorthwestCorner: fill cells from (0,0), moving right or down as a
//	  column's demand or a row's supply runs out.
//	– MinimumCost:     visit cells by ascending cost (stable, row-major ties).
//	– Vogel:           repeatedly pick the line with the largest penalty
//	  (second-cheapest minus cheapest active cost) and fill its cheapest cell.
//
// Unbalanced problems are balanced first (see Balance) by a zero-cost dummy
// destination or source. None of the heuristics runs an improvement pass
// (stepping-stone/MODI); the plan is feasible, not necessarily optimal.
//
// Complexity:
//
//	– NorthwestCorner: O(m+n) steps, O(m·n) memory for the plan.
//	– MinimumCost:     O(m·n·log(m·n)).
//	– Vogel:           O((m+n)²·max(m,n)) without penalty caching.
//
// Errors (sentinel):
//
//	– ErrUnknownMethod for an unrecognized method name or value.
//	– ErrShape         for empty or ragged cost matrices or length mismatches.
//	– ErrNegative      for negative costs, supplies or demands.
//	– All three wrap lp.ErrMalformedInput. A failed call returns a Result
//	  with Success false and a nil Allocation.
package transport
