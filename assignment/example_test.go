package assignment_test

import (
	"fmt"

	"github.com/katalvlaran/orsolve/assignment"
	"github.com/katalvlaran/orsolve/lp"
)

// ExampleSolve assigns four workers to four jobs at minimum cost.
func ExampleSolve() {
	res, err := assignment.Solve(assignment.Problem{
		Matrix: [][]float64{
			{9, 2, 7, 8},
			{6, 4, 3, 7},
			{5, 8, 1, 8},
			{7, 6, 9, 4},
		},
		Direction: lp.Minimize,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Pairs {
		fmt.Printf("worker %d -> job %d (%g)\n", p.Row, p.Col, p.Value)
	}
	fmt.Println("total:", res.Total)
	// Output:
	// worker 0 -> job 1 (2)
	// worker 1 -> job 0 (6)
	// worker 2 -> job 2 (1)
	// worker 3 -> job 3 (4)
	// total: 13
}
