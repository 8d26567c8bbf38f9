package transport

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/glog"
)

// plan is the mutable state shared by the heuristics.
type plan struct {
	b      Balanced
	cost   [][]float64 // row views of b.Cost
	alloc  [][]float64
	supply []float64 // remaining
	demand []float64 // remaining
}

func newPlan(p Problem) (*plan, error) {
	b, err := Balance(p)
	if err != nil {
		return nil, err
	}
	m, n := b.Cost.Rows(), b.Cost.Cols()
	pl := &plan{
		b:      b,
		cost:   make([][]float64, m),
		alloc:  make([][]float64, m),
		supply: append([]float64(nil), b.Supply...),
		demand: append([]float64(nil), b.Demand...),
	}
	for i := 0; i < m; i++ {
		if pl.cost[i], err = b.Cost.RowView(i); err != nil {
			return nil, err
		}
		pl.alloc[i] = make([]float64, n)
	}

	return pl, nil
}

// ship moves min(remaining supply, remaining demand) through (i, j) and
// reports which sides ran out.
func (pl *plan) ship(i, j int) (rowDone, colDone bool) {
	q := math.Min(pl.supply[i], pl.demand[j])
	pl.alloc[i][j] += q
	pl.supply[i] -= q
	pl.demand[j] -= q
	if pl.supply[i] <= Tolerance {
		pl.supply[i], rowDone = 0, true
	}
	if pl.demand[j] <= Tolerance {
		pl.demand[j], colDone = 0, true
	}
	glog.V(2).Infof("transport: ship %g via (%d,%d) at cost %g", q, i, j, pl.cost[i][j])

	return rowDone, colDone
}

func (pl *plan) result(method Method) Result {
	var total float64
	for i, row := range pl.alloc {
		for j, q := range row {
			total += q * pl.cost[i][j]
		}
	}
	msg := fmt.Sprintf("%s: initial feasible plan with total cost %g", method, total)
	switch {
	case pl.b.DummyColumn:
		msg += " (a dummy destination absorbs the surplus supply)"
	case pl.b.DummyRow:
		msg += " (a dummy source covers the unmet demand)"
	}
	glog.V(1).Infof("transport: %s", msg)

	return Result{
		Success:    true,
		Method:     method,
		Allocation: pl.alloc,
		TotalCost:  total,
		Cost:       pl.b.Cost.ToRows(),
		Supply:     pl.b.Supply,
		Demand:     pl.b.Demand,
		Balanced:   pl.b.WasBalanced(),
		Message:    msg,
	}
}

// NorthwestCorner starts at (0,0) and advances the row when its supply runs
// out and the column when its demand runs out (both on a tie).
//
// Complexity: O(m+n) allocation steps.
func NorthwestCorner(p Problem) (Result, error) {
	pl, err := newPlan(p)
	if err != nil {
		return Result{Method: MethodNorthwestCorner, Message: err.Error()}, err
	}
	m, n := len(pl.supply), len(pl.demand)
	for i, j := 0, 0; i < m && j < n; {
		rowDone, colDone := pl.ship(i, j)
		if rowDone {
			i++
		}
		if colDone {
			j++
		}
	}

	return pl.result(MethodNorthwestCorner), nil
}

// MinimumCost visits every cell in ascending cost order (row-major on ties)
// and ships as much as both sides allow.
//
// Complexity: O(m·n·log(m·n)).
func MinimumCost(p Problem) (Result, error) {
	pl, err := newPlan(p)
	if err != nil {
		return Result{Method: MethodMinimumCost, Message: err.Error()}, err
	}
	type cell struct{ i, j int }
	cells := make([]cell, 0, len(pl.supply)*len(pl.demand))
	for i := range pl.supply {
		for j := range pl.demand {
			cells = append(cells, cell{i, j})
		}
	}
	sort.SliceStable(cells, func(a, b int) bool {
		return pl.cost[cells[a].i][cells[a].j] < pl.cost[cells[b].i][cells[b].j]
	})
	for _, c := range cells {
		if pl.supply[c.i] > 0 && pl.demand[c.j] > 0 {
			pl.ship(c.i, c.j)
		}
	}

	return pl.result(MethodMinimumCost), nil
}

// Vogel applies Vogel's approximation method. A line with a single active
// cell has an infinite penalty. Ties on penalty prefer rows over columns and
// then the lower index; within the chosen line the lowest-index cheapest
// active cell is filled.
//
// Complexity: O((m+n)²·max(m,n)).
func Vogel(p Problem) (Result, error) {
	pl, err := newPlan(p)
	if err != nil {
		return Result{Method: MethodVogel, Message: err.Error()}, err
	}
	m, n := len(pl.supply), len(pl.demand)
	rowOn := make([]bool, m)
	colOn := make([]bool, n)
	for i := range rowOn {
		rowOn[i] = true
	}
	for j := range colOn {
		colOn[j] = true
	}
	rowCost := func(i int) func(int) float64 { return func(j int) float64 { return pl.cost[i][j] } }
	colCost := func(j int) func(int) float64 { return func(i int) float64 { return pl.cost[i][j] } }

	for anyTrue(rowOn) && anyTrue(colOn) {
		// Largest penalty; strict > keeps rows first and lower indexes on ties.
		bestPen, bestRow, bestIdx := math.Inf(-1), true, -1
		for i := 0; i < m; i++ {
			if !rowOn[i] {
				continue
			}
			if pen := penalty(rowCost(i), colOn); pen > bestPen {
				bestPen, bestRow, bestIdx = pen, true, i
			}
		}
		for j := 0; j < n; j++ {
			if !colOn[j] {
				continue
			}
			if pen := penalty(colCost(j), rowOn); pen > bestPen {
				bestPen, bestRow, bestIdx = pen, false, j
			}
		}

		var i, j int
		if bestRow {
			i, j = bestIdx, cheapest(rowCost(bestIdx), colOn)
		} else {
			i, j = cheapest(colCost(bestIdx), rowOn), bestIdx
		}
		glog.V(2).Infof("transport: vogel penalty %g on %s %d", bestPen, lineName(bestRow), bestIdx)
		rowDone, colDone := pl.ship(i, j)
		if rowDone {
			rowOn[i] = false
		}
		if colDone {
			colOn[j] = false
		}
	}

	return pl.result(MethodVogel), nil
}

// penalty is second-smallest minus smallest active cost along a line; +Inf
// when only one cell is active.
func penalty(cost func(int) float64, active []bool) float64 {
	lo, hi := math.Inf(1), math.Inf(1)
	for k, on := range active {
		if !on {
			continue
		}
		switch c := cost(k); {
		case c < lo:
			lo, hi = c, lo
		case c < hi:
			hi = c
		}
	}

	return hi - lo
}

// cheapest returns the lowest-index active position with minimal cost.
func cheapest(cost func(int) float64, active []bool) int {
	best, bestC := -1, math.Inf(1)
	for k, on := range active {
		if on && (best < 0 || cost(k) < bestC) {
			best, bestC = k, cost(k)
		}
	}

	return best
}

func anyTrue(bs []bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}

	return false
}

func lineName(row bool) string {
	if row {
		return "row"
	}

	return "column"
}

// Solve dispatches to the heuristic named by method.
func Solve(method Method, p Problem) (Result, error) {
	switch method {
	case MethodNorthwestCorner:
		return NorthwestCorner(p)
	case MethodMinimumCost:
		return MinimumCost(p)
	case MethodVogel:
		return Vogel(p)
	default:
		err := fmt.Errorf("%w: %v", ErrUnknownMethod, method)
		return Result{Method: method, Message: err.Error()}, err
	}
}
