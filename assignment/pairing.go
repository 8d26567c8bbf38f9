package assignment

import (
	"math"
)

// hungarian returns col[i] for every row of the square matrix a, minimizing
// Σ a[i][col[i]]. It is the shortest-augmenting-path formulation with row and
// column potentials u, v (1-based internally, index 0 is a sentinel).
//
// Complexity: O(n³) time, O(n) extra space.
func hungarian(a [][]float64) []int {
	n := len(a)
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = row matched to column j
	way := make([]int, n+1)
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j], used[j] = math.Inf(1), false
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], math.Inf(1), 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				if cur := a[i0-1][j-1] - u[i0] - v[j]; cur < minv[j] {
					minv[j], way[j] = cur, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		// Flip the augmenting path.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	col := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] > 0 {
			col[p[j]-1] = j - 1
		}
	}

	return col
}

// greedyZeros repeatedly picks, among unassigned zero cells, the one whose
// row and column offer the fewest other zero choices (row-major on ties).
// Rows left without a zero are then given the cheapest free column.
// It reports how many rows were matched on zeros.
//
// Complexity: O(n⁴) worst case.
func greedyZeros(a [][]float64, eps float64) (col []int, onZeros int) {
	n := len(a)
	isZero := func(v float64) bool { return math.Abs(v) <= eps }
	col = make([]int, n)
	rowDone := make([]bool, n)
	colDone := make([]bool, n)
	for i := range col {
		col[i] = -1
	}

	for iter := 0; iter < n; iter++ {
		bestI, bestJ, fewest := -1, -1, math.MaxInt
		for i := 0; i < n; i++ {
			if rowDone[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if colDone[j] || !isZero(a[i][j]) {
					continue
				}
				options := 0
				for k := 0; k < n; k++ {
					if isZero(a[i][k]) && !colDone[k] {
						options++
					}
					if k != i && isZero(a[k][j]) && !rowDone[k] {
						options++
					}
				}
				if options < fewest {
					bestI, bestJ, fewest = i, j, options
				}
			}
		}
		if bestI < 0 {
			break
		}
		col[bestI], rowDone[bestI], colDone[bestJ] = bestJ, true, true
		onZeros++
	}

	// Completion for rows without an available zero.
	for i := 0; i < n; i++ {
		if rowDone[i] {
			continue
		}
		best := -1
		for j := 0; j < n; j++ {
			if !colDone[j] && (best < 0 || a[i][j] < a[i][best]) {
				best = j
			}
		}
		col[i], rowDone[i], colDone[best] = best, true, true
	}

	return col, onZeros
}
