package dlxnode_test

import (
	"testing"

	"github.com/mleemansnl/sudoku-solver/dlxnode"
)

// TestNewNode_IncrementsCountAndOwnsVerticalSlot verifies Header.NewNode
// splices the new node just above the header and increments Count.
func TestNewNode_IncrementsCountAndOwnsVerticalSlot(t *testing.T) {
	h := dlxnode.NewHeader("col")
	if h.Count() != 0 {
		t.Fatalf("fresh header count = %d, want 0", h.Count())
	}

	n1 := h.NewNode()
	if h.Count() != 1 {
		t.Errorf("count after 1st NewNode = %d, want 1", h.Count())
	}
	if h.Up() != n1 {
		t.Errorf("h.Up() = %v, want the just-inserted node", h.Up())
	}

	n2 := h.NewNode()
	if h.Count() != 2 {
		t.Errorf("count after 2nd NewNode = %d, want 2", h.Count())
	}
	if h.Up() != n2 {
		t.Errorf("h.Up() = %v, want the most recently inserted node", h.Up())
	}
	if n1.Header() != h || n2.Header() != h {
		t.Errorf("NewNode must set the returned node's Header() to h")
	}
}

// TestIncDecCount covers direct counter management independent of any
// vertical list mutation, since spec requires Count to be updated
// explicitly rather than implicitly.
func TestIncDecCount(t *testing.T) {
	h := dlxnode.NewHeader("col")
	h.IncCount()
	h.IncCount()
	if h.Count() != 2 {
		t.Fatalf("count = %d, want 2", h.Count())
	}
	h.DecCount()
	if h.Count() != 1 {
		t.Fatalf("count = %d, want 1", h.Count())
	}
}

// TestCountConsistency_AfterManualVerticalBookkeeping is a small version of
// invariant 2 (count consistency): after a balanced manual
// remove/decrement + reinsert/increment sequence, Count matches an
// independent traversal count.
func TestCountConsistency_AfterManualVerticalBookkeeping(t *testing.T) {
	h := dlxnode.NewHeader("col")
	a := h.NewNode()
	b := h.NewNode()
	c := h.NewNode()

	b.RemoveVertical()
	h.DecCount()

	countByTraversal := func() int {
		n := 0
		for cur := h.Down(); cur != &h.Node; cur = cur.Down() {
			n++
		}
		return n
	}

	if got := countByTraversal(); got != h.Count() {
		t.Fatalf("traversal count = %d, Header.Count() = %d", got, h.Count())
	}
	if h.Count() != 2 {
		t.Fatalf("count = %d, want 2", h.Count())
	}

	b.ReinsertVertical()
	h.IncCount()
	if got := countByTraversal(); got != h.Count() || h.Count() != 3 {
		t.Fatalf("after reinsert: traversal=%d count=%d, want both 3", got, h.Count())
	}
	_ = a
	_ = c
}
