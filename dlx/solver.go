package dlx

import "github.com/mleemansnl/sudoku-solver/dlxnode"

// Solver implements Algorithm X over a Matrix using the Dancing Links
// cover/uncover technique. A Solver is single-use: call Solve at most once.
type Solver struct {
	matrix   *Matrix
	solution []*dlxnode.Node
}

// NewSolver returns a Solver over m. The Solver does not copy m; it
// mutates m's links during Solve and CoverRow.
func NewSolver(m *Matrix) *Solver {
	return &Solver{matrix: m}
}

// CoverRow pre-commits the row anchored at rowAnchor into the solution.
// This is used to pin input constraints (e.g. a pre-filled Sudoku cell)
// before calling Solve. Unlike the cover performed during search, this
// cover is never paired with an uncover: pinned rows are permanent for the
// lifetime of this Solver.
//
// rowAnchor must be a node belonging to a row whose columns have not yet
// been covered; the rest of the row is discovered by walking Right() from
// it. This precondition is not validated at runtime (see spec's "source
// does not validate this" note) — violating it is a programming error.
func (s *Solver) CoverRow(rowAnchor *dlxnode.Node) {
	s.solution = append(s.solution, rowAnchor)

	cover(rowAnchor.Header())
	for n := rowAnchor.Right(); n != rowAnchor; n = n.Right() {
		cover(n.Header())
	}
}

// Solve runs Algorithm X to completion and returns the first exact cover
// found. If the matrix (as reduced by any prior CoverRow calls) admits no
// exact cover, it returns (nil, false) — a normal outcome, not an error.
//
// Solve is synchronous and performs no I/O; it must not be called more
// than once on the same Solver, nor concurrently with any other mutation
// of the underlying Matrix.
func (s *Solver) Solve() ([]*dlxnode.Node, bool) {
	if s.search() {
		return s.solution, true
	}
	return nil, false
}

// search is the recursive depth-first step of Algorithm X.
func (s *Solver) search() bool {
	root := s.matrix.Root()

	if root.Right() == &root.Node {
		// No columns left to cover: the current solution is a valid exact
		// cover. The rows that make it up are already in s.solution, pushed
		// by the loop below (and by any prior CoverRow).
		return true
	}

	h := s.selectColumn()
	if h == nil {
		return false
	}

	cover(h)
	for r := h.Down(); r != &h.Node; r = r.Down() {
		s.solution = append(s.solution, r)

		for n := r.Right(); n != r; n = n.Right() {
			cover(n.Header())
		}

		if s.search() {
			// Keep r in the solution but restore the matrix, so that a
			// successful Solve leaves it in its pre-search state too.
			for n := r.Left(); n != r; n = n.Left() {
				uncover(n.Header())
			}
			uncover(h)
			return true
		}

		s.solution = s.solution[:len(s.solution)-1]

		for n := r.Left(); n != r; n = n.Left() {
			uncover(n.Header())
		}
	}
	uncover(h)

	return false
}

// selectColumn implements Knuth's S-heuristic: the header row is walked
// once, returning the header with the smallest Count, leftmost on ties.
// It returns nil only if the header row is empty — a case the caller
// (search) already handles before reaching here, so in practice this
// always returns a header when called.
func (s *Solver) selectColumn() *dlxnode.Header {
	root := s.matrix.Root()
	var best *dlxnode.Header
	for n := root.Right(); n != &root.Node; n = n.Right() {
		h := n.Header()
		if best == nil || h.Count() < best.Count() {
			best = h
		}
	}
	return best
}

// cover removes header h from the header row and, for every row under h,
// removes every other node in that row from its own column's vertical
// list — decrementing that column's count. h's own count is left
// untouched: h is not counted against itself.
func cover(h *dlxnode.Header) {
	h.RemoveHorizontal()
	for r := h.Down(); r != &h.Node; r = r.Down() {
		for n := r.Right(); n != r; n = n.Right() {
			n.RemoveVertical()
			n.Header().DecCount()
		}
	}
}

// uncover is the exact inverse of cover: it must traverse the mirror order
// of cover so the Dancing Links restoration is bit-identical to the
// pre-cover state.
func uncover(h *dlxnode.Header) {
	for r := h.Up(); r != &h.Node; r = r.Up() {
		for n := r.Left(); n != r; n = n.Left() {
			n.ReinsertVertical()
			n.Header().IncCount()
		}
	}
	h.ReinsertHorizontal()
}
