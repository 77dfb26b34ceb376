package dlx

import "github.com/mleemansnl/sudoku-solver/dlxnode"

// Matrix owns the root sentinel header and every column header appended to
// it. The matrix is empty iff Root().Right() == Root().
type Matrix struct {
	root    *dlxnode.Header
	headers []*dlxnode.Header
}

// NewMatrix returns an empty matrix consisting of only its root header.
func NewMatrix() *Matrix {
	return &Matrix{root: dlxnode.NewHeader("root")}
}

// NewHeader appends a new column header to the end of the header row
// (i.e. immediately to the left of Root(), per dlxnode.Node.InsertLeftOf)
// and returns it for population by the caller. Headers are stored in
// append order: Root().Right() is the first header created, Root().Left()
// is the most recent.
func (m *Matrix) NewHeader(name string) *dlxnode.Header {
	h := dlxnode.NewHeader(name)
	h.InsertLeftOf(&m.root.Node)
	m.headers = append(m.headers, h)
	return h
}

// Root returns the anchor header of the header row.
func (m *Matrix) Root() *dlxnode.Header { return m.root }

// Headers returns every column header in append order. The returned slice
// must not be mutated by the caller.
func (m *Matrix) Headers() []*dlxnode.Header { return m.headers }

// IsEmpty reports whether the header row is empty, i.e. every column has
// been covered (permanently or otherwise).
func (m *Matrix) IsEmpty() bool { return m.root.Right() == &m.root.Node }
