package simplex_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/orsolve/lp"
	"github.com/katalvlaran/orsolve/simplex"
)

func benchProblem(n, m int) lp.Problem {
	rng := rand.New(rand.NewSource(1))
	p := lp.Problem{Objective: make([]float64, n), Direction: lp.Maximize}
	for j := range p.Objective {
		p.Objective[j] = 1 + rng.Float64()*9
	}
	for i := 0; i < m; i++ {
		c := lp.Constraint{Coeffs: make([]float64, n), Op: lp.LE, RHS: 10 + rng.Float64()*90}
		for j := range c.Coeffs {
			c.Coeffs[j] = 1 + rng.Float64()*5
		}
		p.Constraints = append(p.Constraints, c)
	}

	return p
}

func BenchmarkSolve_20x20(b *testing.B) {
	p := benchProblem(20, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = simplex.Solve(p, simplex.WithMaxIterations(0))
	}
}

func BenchmarkSolve_TwoPhase_10x10(b *testing.B) {
	p := benchProblem(10, 10)
	p.Direction = lp.Minimize
	for i := range p.Constraints {
		p.Constraints[i].Op = lp.GE
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = simplex.Solve(p, simplex.WithMaxIterations(0))
	}
}
