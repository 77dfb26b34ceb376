package dlxnode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mleemansnl/sudoku-solver/dlxnode"
)

// TestHeader_SelfReferential verifies an isolated header links to
// itself in all four directions, per spec's "freshly constructed isolated
// node links to itself in all four directions."
func TestHeader_SelfReferential(t *testing.T) {
	h := dlxnode.NewHeader("c1")
	require.Same(t, &h.Node, h.Left())
	require.Same(t, &h.Node, h.Right())
	require.Same(t, &h.Node, h.Up())
	require.Same(t, &h.Node, h.Down())
	require.Same(t, h, h.Header())
}

// TestMakeRow_ProducesInsertionOrderCycle verifies that MakeRow(n1..nk)
// produces the cycle n1 -> n2 -> ... -> nk -> n1, matching spec §4.1.
func TestMakeRow_ProducesInsertionOrderCycle(t *testing.T) {
	h := dlxnode.NewHeader("cell")
	n1 := h.NewNode()
	n2 := h.NewNode()
	n3 := h.NewNode()

	dlxnode.MakeRow(n1, n2, n3)

	var order []*dlxnode.Node
	for n := n1; ; {
		order = append(order, n)
		n = n.Right()
		if n == n1 {
			break
		}
	}
	require.Equal(t, []*dlxnode.Node{n1, n2, n3}, order)
}

// TestRemoveReinsertHorizontal_RestoresExactState covers invariant 1
// (round-trip) for the horizontal list.
func TestRemoveReinsertHorizontal_RestoresExactState(t *testing.T) {
	root := dlxnode.NewHeader("root")
	a := root.NewNode()
	b := root.NewNode()
	c := root.NewNode()
	dlxnode.MakeRow(a, b, c)

	// Snapshot pointers before removal.
	type snap struct{ left, right *dlxnode.Node }
	before := map[*dlxnode.Node]snap{
		a: {a.Left(), a.Right()},
		b: {b.Left(), b.Right()},
		c: {c.Left(), c.Right()},
	}

	b.RemoveHorizontal()
	require.Equal(t, a, c.Left()) // neighbors skip over b
	require.Equal(t, c, a.Right())
	// b's own links are preserved (Dancing Links property).
	require.Equal(t, before[b].left, b.Left())
	require.Equal(t, before[b].right, b.Right())

	b.ReinsertHorizontal()
	for _, n := range []*dlxnode.Node{a, b, c} {
		require.Equal(t, before[n].left, n.Left())
		require.Equal(t, before[n].right, n.Right())
	}
}

// TestRemoveReinsertVertical_DoesNotTouchCount verifies the deliberate
// asymmetry from spec §4.1: raw vertical remove/reinsert never changes
// Header.Count — only explicit IncCount/DecCount calls do.
func TestRemoveReinsertVertical_DoesNotTouchCount(t *testing.T) {
	h := dlxnode.NewHeader("col")
	n := h.NewNode()
	require.Equal(t, 1, h.Count())

	n.RemoveVertical()
	require.Equal(t, 1, h.Count(), "RemoveVertical must not change Count")

	n.ReinsertVertical()
	require.Equal(t, 1, h.Count(), "ReinsertVertical must not change Count")
}

// TestToroidalWalk_AlwaysReturnsToStart covers invariant 3 (toroidal
// invariant) for two of the four directions: walking right, and walking
// up, from a node eventually returns to it.
func TestToroidalWalk_AlwaysReturnsToStart(t *testing.T) {
	h := dlxnode.NewHeader("col")
	a := h.NewNode()
	b := h.NewNode()
	dlxnode.MakeRow(a, b)

	steps := 0
	for n := a.Right(); n != a; n = n.Right() {
		steps++
		if steps > 10 {
			t.Fatal("Right() walk did not return to start")
		}
	}

	steps = 0
	for n := a.Up(); n != a; n = n.Up() {
		steps++
		if steps > 10 {
			t.Fatal("Up() walk did not return to start")
		}
	}
}
