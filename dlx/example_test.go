package dlx_test

import (
	"fmt"

	"github.com/mleemansnl/sudoku-solver/dlx"
	"github.com/mleemansnl/sudoku-solver/dlxnode"
)

// ExampleSolver_Solve builds spec's textbook exact-cover matrix (Wikipedia:
// columns {1,2,3,4}; rows O={1,3}, P={1,2,3}, E={2,4}) and solves it.
// Under deterministic leftmost-minimum-count column selection, the only
// exact cover is {O, E}, returned in order [E, O].
func ExampleSolver_Solve() {
	m := dlx.NewMatrix()
	columns := make(map[int]*dlxnode.Header, 4)
	for i := 1; i <= 4; i++ {
		columns[i] = m.NewHeader(fmt.Sprintf("%d", i))
	}

	newRow := func(name string, cols ...int) {
		nodes := make([]*dlxnode.Node, len(cols))
		for i, c := range cols {
			n := columns[c].NewNode()
			n.Payload = name
			nodes[i] = n
		}
		dlxnode.MakeRow(nodes...)
	}
	newRow("O", 1, 3)
	newRow("P", 1, 2, 3)
	newRow("E", 2, 4)

	solution, ok := dlx.NewSolver(m).Solve()
	if !ok {
		fmt.Println("no exact cover found")
		return
	}

	for _, anchor := range solution {
		fmt.Print(anchor.Payload.(string), " ")
	}
	fmt.Println()
	// Output:
	// E O
}

// ExampleSolver_CoverRow pins row "E" before solving, which forces the
// remaining search to find the same {O, E} cover directly.
func ExampleSolver_CoverRow() {
	m := dlx.NewMatrix()
	columns := make(map[int]*dlxnode.Header, 4)
	for i := 1; i <= 4; i++ {
		columns[i] = m.NewHeader(fmt.Sprintf("%d", i))
	}

	var rowE *dlxnode.Node
	newRow := func(name string, cols ...int) *dlxnode.Node {
		nodes := make([]*dlxnode.Node, len(cols))
		for i, c := range cols {
			n := columns[c].NewNode()
			n.Payload = name
			nodes[i] = n
		}
		dlxnode.MakeRow(nodes...)
		return nodes[0]
	}
	newRow("O", 1, 3)
	newRow("P", 1, 2, 3)
	rowE = newRow("E", 2, 4)

	s := dlx.NewSolver(m)
	s.CoverRow(rowE)

	solution, ok := s.Solve()
	if !ok {
		fmt.Println("no exact cover found")
		return
	}
	for _, anchor := range solution {
		fmt.Print(anchor.Payload.(string), " ")
	}
	fmt.Println()
	// Output:
	// E O
}
