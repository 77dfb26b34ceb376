package dlxnode

// Header is a specialized Node that anchors a vertical list of nodes and
// owns the allocation of every node in that list. It additionally tracks
// Count, the number of non-header nodes currently linked into its vertical
// cycle.
//
// Count is deliberately not maintained by Node's RemoveVertical/
// ReinsertVertical: those primitives stay domain-agnostic, and Count is
// instead updated explicitly by callers (the dlx package's cover/uncover)
// that know when a removal is semantically meaningful. A header also
// removes itself from the header row during cover without decrementing its
// own count — it is never counted against itself.
//
// Name is an optional human-readable label, used only for debugging and
// printing; it has no effect on solving semantics.
type Header struct {
	Node
	Name  string
	count int
}

// NewHeader returns a new, isolated column header. Headers are normally
// created through a Matrix (see package dlx), which owns their lifetime and
// appends them to the header row.
func NewHeader(name string) *Header {
	h := &Header{Name: name}
	h.left, h.right, h.up, h.down = &h.Node, &h.Node, &h.Node, &h.Node
	h.header = h // a header's own Header() points at itself
	return h
}

// NewNode allocates a node owned by h, splices it into the end of h's
// vertical list (immediately above h, i.e. h.Up() == new node), and
// increments Count. Returns a non-owning reference for further setup
// (attaching Payload, splicing into a row via MakeRow).
func (h *Header) NewNode() *Node {
	n := newIsolatedNode(h)
	n.InsertUpOf(&h.Node)
	h.IncCount()
	return n
}

// Count returns the number of non-header nodes currently linked into this
// header's vertical cycle.
func (h *Header) Count() int { return h.count }

// IncCount increments the vertical-list counter. Callers — not Node's
// vertical remove/reinsert primitives — are responsible for calling this
// when a reinsertion is logically meaningful.
func (h *Header) IncCount() { h.count++ }

// DecCount decrements the vertical-list counter. Callers — not Node's
// vertical remove/reinsert primitives — are responsible for calling this
// when a removal is logically meaningful.
func (h *Header) DecCount() {
	h.count--
	assertNonNegativeCount(h)
}
