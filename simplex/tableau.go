package simplex

import (
	"math"

	"github.com/katalvlaran/orsolve/matrix"
)

// tableau is a dense simplex tableau.
//
// Row 0 is the objective row in "maximize −row" form: the tableau is optimal
// when no entry of row 0 (except the RHS) is negative. Rows 1..m are the
// constraints; the last column is the right-hand side.
type tableau struct {
	d     *matrix.Dense
	rows  [][]float64 // RowView aliases of d; rows[0] is the objective row
	basis []int       // basis[i-1] is the basic column of rows[i]
	rhs   int         // index of the RHS column
}

// newTableau allocates an r×c zero tableau and caches its row views.
// Complexity: O(r*c).
func newTableau(r, c int) (*tableau, error) {
	d, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	t := &tableau{d: d, rows: make([][]float64, r), basis: make([]int, r-1), rhs: c - 1}
	for i := range t.rows {
		if t.rows[i], err = d.RowView(i); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// entering returns the pivot column or −1 when row 0 has no entry below −eps.
// Only columns < limit are eligible.
func (t *tableau) entering(rule PivotRule, eps float64, limit int) int {
	obj := t.rows[0]
	col, minV := -1, -eps
	for j := 0; j < limit; j++ {
		if obj[j] >= minV {
			continue
		}
		if rule == Bland {
			return j
		}
		col, minV = j, obj[j]
	}

	return col
}

// leaving runs the minimum-ratio test on col and returns the pivot row, or −1
// when no row has a positive entry (the objective is unbounded along col).
func (t *tableau) leaving(col int, rule PivotRule, eps float64) int {
	row, best := -1, math.Inf(1)
	for i := 1; i < len(t.rows); i++ {
		a := t.rows[i][col]
		if a <= eps {
			continue
		}
		ratio := t.rows[i][t.rhs] / a
		switch {
		case row < 0 || ratio < best-eps:
			row, best = i, ratio
		case rule == Bland && ratio <= best+eps && t.basis[i-1] < t.basis[row-1]:
			row = i
		case rule == Dantzig && ratio < best:
			row, best = i, ratio
		}
	}

	return row
}

// pivot makes column c basic in row r by Gauss-Jordan elimination.
// Complexity: O(rows*cols).
func (t *tableau) pivot(r, c int) {
	pr := t.rows[r]
	pv := pr[c]
	for j := range pr {
		pr[j] /= pv
	}
	for i, row := range t.rows {
		if i == r {
			continue
		}
		f := row[c]
		if f == 0 {
			continue
		}
		for j := range row {
			row[j] -= f * pr[j]
		}
	}
	t.basis[r-1] = c
}

// priceOut zeroes row 0 on every basic column.
func (t *tableau) priceOut() {
	obj := t.rows[0]
	for i, b := range t.basis {
		f := obj[b]
		if f == 0 {
			continue
		}
		for j, v := range t.rows[i+1] {
			obj[j] -= f * v
		}
	}
}

// extract reads decision variables 0..n-1 from unit columns: a column with a
// single 1 (within eps) and zeros elsewhere among the constraint rows takes
// that row's RHS; any other column yields 0. A non-basic column that happens
// to duplicate a basic unit column is ambiguous and also yields 0.
func (t *tableau) extract(n int, eps float64) []float64 {
	x := make([]float64, n)
	for j := 0; j < n; j++ {
		unit, ones := -1, 0
		for i := 1; i < len(t.rows); i++ {
			v := t.rows[i][j]
			if math.Abs(v-1) < eps {
				unit, ones = i, ones+1
			} else if math.Abs(v) > eps {
				ones = 0
				break
			}
		}
		if ones == 1 && t.basis[unit-1] == j {
			x[j] = t.rows[unit][t.rhs]
		}
	}

	return x
}
