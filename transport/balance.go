package transport

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/orsolve/matrix"
)

// Balanced is a problem whose total supply equals total demand.
type Balanced struct {
	Cost        *matrix.Dense
	Supply      []float64
	Demand      []float64
	DummyRow    bool // a zero-cost source was appended
	DummyColumn bool // a zero-cost destination was appended
}

// WasBalanced reports whether the input needed no dummy line.
func (b Balanced) WasBalanced() bool { return !b.DummyRow && !b.DummyColumn }

// Validate checks shape and sign rules.
func (p Problem) Validate() error {
	m, n := len(p.Supply), len(p.Demand)
	if m == 0 || n == 0 {
		return fmt.Errorf("%w: empty supply or demand", ErrShape)
	}
	if len(p.Cost) != m {
		return fmt.Errorf("%w: %d cost rows for %d sources", ErrShape, len(p.Cost), m)
	}
	for i, row := range p.Cost {
		if err := matrix.ValidateVecLen(row, n); err != nil {
			return fmt.Errorf("%w: cost row %d has %d entries for %d destinations", ErrShape, i, len(row), n)
		}
		if !nonNegative(row) {
			return fmt.Errorf("%w: cost row %d", ErrNegative, i)
		}
	}
	if !nonNegative(p.Supply) {
		return fmt.Errorf("%w: supply", ErrNegative)
	}
	if !nonNegative(p.Demand) {
		return fmt.Errorf("%w: demand", ErrNegative)
	}

	return nil
}

// Balance returns a balanced copy of p. When total supply exceeds total
// demand a zero-cost dummy destination absorbs the surplus; when demand
// exceeds supply a zero-cost dummy source covers the shortage. p is never
// modified.
//
// Complexity: O(m·n).
func Balance(p Problem) (Balanced, error) {
	if err := p.Validate(); err != nil {
		return Balanced{}, err
	}
	cost, err := matrix.NewFromRows(p.Cost)
	if err != nil {
		return Balanced{}, fmt.Errorf("%w: %v", ErrShape, err)
	}
	b := Balanced{
		Cost:   cost,
		Supply: append([]float64(nil), p.Supply...),
		Demand: append([]float64(nil), p.Demand...),
	}

	supply, demand := floats.Sum(p.Supply), floats.Sum(p.Demand)
	switch {
	case supply-demand > Tolerance:
		if b.Cost, err = cost.Extend(0, 1); err != nil {
			return Balanced{}, err
		}
		b.Demand = append(b.Demand, supply-demand)
		b.DummyColumn = true
	case demand-supply > Tolerance:
		if b.Cost, err = cost.Extend(1, 0); err != nil {
			return Balanced{}, err
		}
		b.Supply = append(b.Supply, demand-supply)
		b.DummyRow = true
	}

	return b, nil
}

func nonNegative(vs []float64) bool {
	if matrix.ValidateFinite(vs) != nil {
		return false
	}
	for _, v := range vs {
		if v < 0 {
			return false
		}
	}

	return true
}
