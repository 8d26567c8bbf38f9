// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row/column extrema and in-place broadcast updates used by the
//     assignment reduction (row minimum, column minimum, global maximum).
//
// Determinism:
//   - Fixed i→j traversal; ties never depend on map order.

package matrix

import "math"

// RowMin returns the smallest value in row i.
// Complexity: O(c).
func (m *Dense) RowMin(i int) (float64, error) {
	row, err := m.RowView(i)
	if err != nil {
		return 0, err
	}
	minV := math.Inf(1)
	for _, v := range row {
		if v < minV {
			minV = v
		}
	}

	return minV, nil
}

// ColMin returns the smallest value in column j.
// Complexity: O(r).
func (m *Dense) ColMin(j int) (float64, error) {
	if j < 0 || j >= m.c {
		return 0, denseErrorf("ColMin", 0, j, ErrOutOfRange)
	}
	minV := math.Inf(1)
	for i := 0; i < m.r; i++ {
		if v := m.data[i*m.c+j]; v < minV {
			minV = v
		}
	}

	return minV, nil
}

// Max returns the largest element of the matrix.
// Complexity: O(r*c).
func (m *Dense) Max() float64 {
	maxV := math.Inf(-1)
	for _, v := range m.data {
		if v > maxV {
			maxV = v
		}
	}

	return maxV
}

// AddToRow adds delta to every element of row i.
// Complexity: O(c).
func (m *Dense) AddToRow(i int, delta float64) error {
	row, err := m.RowView(i)
	if err != nil {
		return err
	}
	for j := range row {
		row[j] += delta
	}

	return nil
}

// AddToCol adds delta to every element of column j.
// Complexity: O(r).
func (m *Dense) AddToCol(j int, delta float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf("AddToCol", 0, j, ErrOutOfRange)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] += delta
	}

	return nil
}

// Apply replaces every element with fn(i, j, v).
// Complexity: O(r*c).
func (m *Dense) Apply(fn func(i, j int, v float64) float64) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			m.data[i*m.c+j] = fn(i, j, m.data[i*m.c+j])
		}
	}
}
