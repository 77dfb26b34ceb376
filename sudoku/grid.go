package sudoku

// Grid is a fully or partially filled D×D Sudoku grid. Cells hold a number
// in 1..D, or 0 to mean empty.
//
// Grid is always explicitly sized D² and zero-initialized at construction
// — this resolves spec's open question about the original's cell storage
// being only reserve()d, never resized or zero-filled, which left reads of
// unwritten cells as undefined behavior.
type Grid struct {
	size Size
	// cells is a D×D grid stored row-major: cells[(r-1)*D + (c-1)].
	cells []int
}

// NewGrid returns an empty (all-zero) grid of the given size.
func NewGrid(size Size) *Grid {
	return &Grid{size: size, cells: make([]int, size.Cells())}
}

// Size returns the grid's dimension.
func (g *Grid) Size() Size { return g.size }

// At returns the value at (row, column), both 1-indexed, or 0 if empty.
func (g *Grid) At(row, column int) int {
	return g.cells[(row-1)*int(g.size)+(column-1)]
}

// Set writes number (1..D, or 0 to clear) at (row, column), both
// 1-indexed.
func (g *Grid) Set(row, column, number int) {
	g.cells[(row-1)*int(g.size)+(column-1)] = number
}

// newGridFromPlacements writes every placement in a decoded solution into a fresh grid.
func newGridFromPlacements(size Size, placements []Placement) *Grid {
	g := NewGrid(size)
	for _, p := range placements {
		g.Set(p.Row, p.Column, p.Number)
	}
	return g
}
