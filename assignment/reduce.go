package assignment

import (
	"math"

	"github.com/golang/glog"

	"github.com/katalvlaran/orsolve/matrix"
)

// reduce subtracts every row minimum from its row, then every column minimum
// from its column, in place.
// Complexity: O(n²).
func reduce(d *matrix.Dense) error {
	n := d.Rows()
	for i := 0; i < n; i++ {
		minV, err := d.RowMin(i)
		if err != nil {
			return err
		}
		if err = d.AddToRow(i, -minV); err != nil {
			return err
		}
	}
	for j := 0; j < n; j++ {
		minV, err := d.ColMin(j)
		if err != nil {
			return err
		}
		if err = d.AddToCol(j, -minV); err != nil {
			return err
		}
	}

	return nil
}

// cover runs one covering pass on a reduced square matrix, in place.
//
// Stage 1: assign zeros greedily in row-major order, one per row and column.
// Stage 2: start with assigned rows covered; repeatedly cover every column
// holding a zero in an uncovered row and cover the row assigned in any
// covered column, until nothing changes.
// Stage 3: subtract the smallest uncovered value from uncovered cells and add
// it to cells covered twice. Skipped when no cell is uncovered.
//
// It returns the shift that was applied (0 when skipped).
// Complexity: O(n³) worst case for the sweep.
func cover(d *matrix.Dense, eps float64) (float64, error) {
	n := d.Rows()
	rows := make([][]float64, n)
	for i := range rows {
		var err error
		if rows[i], err = d.RowView(i); err != nil {
			return 0, err
		}
	}
	isZero := func(v float64) bool { return math.Abs(v) <= eps }

	// Stage 1.
	assignedRow := make([]int, n) // column -> row, −1 if none
	for j := range assignedRow {
		assignedRow[j] = -1
	}
	rowUsed := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if isZero(rows[i][j]) && assignedRow[j] < 0 && !rowUsed[i] {
				assignedRow[j], rowUsed[i] = i, true
			}
		}
	}

	// Stage 2.
	rowCov := append([]bool(nil), rowUsed...)
	colCov := make([]bool, n)
	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			if rowCov[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if isZero(rows[i][j]) && !colCov[j] {
					colCov[j], changed = true, true
				}
			}
		}
		for j := 0; j < n; j++ {
			if colCov[j] && assignedRow[j] >= 0 && !rowCov[assignedRow[j]] {
				rowCov[assignedRow[j]], changed = true, true
			}
		}
	}

	// Stage 3.
	delta := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !rowCov[i] && !colCov[j] && rows[i][j] < delta {
				delta = rows[i][j]
			}
		}
	}
	if math.IsInf(delta, 1) {
		glog.V(2).Info("assignment: every cell covered, no adjustment")
		return 0, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case !rowCov[i] && !colCov[j]:
				rows[i][j] -= delta
			case rowCov[i] && colCov[j]:
				rows[i][j] += delta
			}
		}
	}
	glog.V(2).Infof("assignment: covering pass shifted by %g", delta)

	return delta, nil
}
