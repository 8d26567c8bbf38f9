package assignment_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/orsolve/assignment"
	"github.com/katalvlaran/orsolve/lp"
)

func benchMatrix(n int) [][]float64 {
	rng := rand.New(rand.NewSource(5))
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = float64(rng.Intn(1000))
		}
	}

	return m
}

func BenchmarkSolve_Hungarian_64(b *testing.B) {
	p := assignment.Problem{Matrix: benchMatrix(64), Direction: lp.Minimize}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = assignment.Solve(p)
	}
}

func BenchmarkSolve_Greedy_32(b *testing.B) {
	p := assignment.Problem{Matrix: benchMatrix(32), Direction: lp.Minimize}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = assignment.Solve(p, assignment.WithMethod(assignment.MethodGreedyZeros))
	}
}
