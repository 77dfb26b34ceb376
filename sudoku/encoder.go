package sudoku

import (
	"fmt"

	"github.com/mleemansnl/sudoku-solver/dlx"
	"github.com/mleemansnl/sudoku-solver/dlxnode"
)

// Encoder builds and owns the DLX matrix encoding every constraint of a
// Sudoku puzzle of a given Size, and wraps a dlx.Solver over it.
//
// Columns (4·D² total), in construction order: Cell, Row, Column, Box —
// see columns.go for the index formulas. Rows (D³ total): one per
// candidate (r,c,n) triple, each with exactly four nodes (one per column
// group), spliced into a horizontal cycle and tagged with a Placement
// payload.
type Encoder struct {
	size   Size
	matrix *dlx.Matrix
	solver *dlx.Solver

	// rowAnchor[rowIndex(d,r,c,n)] is the anchor node for candidate
	// (r,c,n), used to look up the row to pin via Pin.
	rowAnchor []*dlxnode.Node

	// conflict is set when a Pin shares a column with an earlier pin; such
	// a puzzle has no solution.
	conflict bool
}

// NewEncoder constructs the full DLX matrix for a puzzle of the given
// size: 4·D² column headers followed by D³ four-node rows.
func NewEncoder(size Size) (*Encoder, error) {
	if _, err := ParseSize(int(size)); err != nil {
		return nil, err
	}

	d := int(size)
	b := size.Box()
	m := dlx.NewMatrix()

	numColumns := 4 * d * d
	columnByIndex := make([]*dlxnode.Header, numColumns)
	for i := 0; i < numColumns; i++ {
		columnByIndex[i] = m.NewHeader(fmt.Sprintf("c%d", i))
	}

	e := &Encoder{
		size:      size,
		matrix:    m,
		rowAnchor: make([]*dlxnode.Node, d*d*d),
	}

	for r := 1; r <= d; r++ {
		for c := 1; c <= d; c++ {
			for n := 1; n <= d; n++ {
				cellNode := columnByIndex[cellColumn(d, r, c)].NewNode()
				rowNode := columnByIndex[rowColumn(d, r, n)].NewNode()
				colNode := columnByIndex[colColumn(d, c, n)].NewNode()
				boxNode := columnByIndex[boxColumn(d, b, r, c, n)].NewNode()

				dlxnode.MakeRow(cellNode, rowNode, colNode, boxNode)

				placement := Placement{Row: r, Column: c, Number: n}
				cellNode.Payload = placement
				rowNode.Payload = placement
				colNode.Payload = placement
				boxNode.Payload = placement

				e.rowAnchor[rowIndex(d, r, c, n)] = cellNode
			}
		}
	}

	e.solver = dlx.NewSolver(m)
	return e, nil
}

// Size returns the puzzle size this encoder was built for.
func (e *Encoder) Size() Size { return e.size }

// Pin commits (row, column, number) as a pre-filled input cell, looking up
// its row anchor and calling the underlying solver's CoverRow. Pin must be
// called before Solve. Returns ErrOutOfRange if any argument is outside
// 1..D. A pin that conflicts with an earlier one (same cell, or the same
// number twice in a row, column or box) is not an error: it is not
// covered, and Solve then reports no solution.
func (e *Encoder) Pin(row, column, number int) error {
	d := int(e.size)
	if row < 1 || row > d || column < 1 || column > d || number < 1 || number > d {
		return fmt.Errorf("%w: row=%d column=%d number=%d (size %d)", ErrOutOfRange, row, column, number, d)
	}
	anchor := e.rowAnchor[rowIndex(d, row, column, number)]
	for n := anchor; ; {
		// A covered column header is no longer linked into the header row.
		if h := n.Header(); h.Left().Right() != &h.Node {
			e.conflict = true
			return nil
		}
		if n = n.Right(); n == anchor {
			break
		}
	}
	e.solver.CoverRow(anchor)
	return nil
}

// Solve runs the underlying dlx.Solver and decodes the result into a
// filled Grid. If the puzzle (as constrained by any prior Pin calls) has
// no solution, Solve returns (nil, false) — a normal outcome, not an
// error.
func (e *Encoder) Solve() (*Grid, bool) {
	if e.conflict {
		return nil, false
	}
	rawSolution, ok := e.solver.Solve()
	if !ok {
		return nil, false
	}

	placements := make([]Placement, 0, len(rawSolution))
	for _, node := range rawSolution {
		placements = append(placements, node.Payload.(Placement))
	}

	return newGridFromPlacements(e.size, placements), true
}
