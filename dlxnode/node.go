package dlxnode

// Node is the atomic element of the toroidal doubly-linked list used by
// Dancing Links. Every node belongs to exactly one horizontal circular list
// and exactly one vertical circular list.
//
// Header is a non-owning back-link to the column this node belongs to.
// Payload carries arbitrary domain metadata (for Sudoku: the placement a
// matrix row represents); the node itself never inspects it.
type Node struct {
	left, right, up, down *Node
	header                *Header
	Payload               any
}

// newIsolatedNode returns a node linked to itself in all four directions,
// as spec'd: "a freshly constructed isolated node links to itself in all
// four directions."
func newIsolatedNode(header *Header) *Node {
	n := &Node{header: header}
	n.left, n.right, n.up, n.down = n, n, n, n
	return n
}

// Header returns the column header this node belongs to.
func (n *Node) Header() *Header { return n.header }

// Left returns the left neighbor in the horizontal circular list.
func (n *Node) Left() *Node { return n.left }

// Right returns the right neighbor in the horizontal circular list.
func (n *Node) Right() *Node { return n.right }

// Up returns the up neighbor in the vertical circular list.
func (n *Node) Up() *Node { return n.up }

// Down returns the down neighbor in the vertical circular list.
func (n *Node) Down() *Node { return n.down }

// InsertLeftOf splices n into the horizontal list immediately before other.
// Post: other.Left() == n && n.Right() == other.
func (n *Node) InsertLeftOf(other *Node) {
	n.left = other.left
	n.right = other
	other.left.right = n
	other.left = n
}

// InsertUpOf splices n into the vertical list immediately before other.
// Post: other.Up() == n && n.Down() == other.
func (n *Node) InsertUpOf(other *Node) {
	n.up = other.up
	n.down = other
	other.up.down = n
	other.up = n
}

// RemoveHorizontal unlinks n from its left/right neighbors. n's own
// left/right pointers are preserved, so a later ReinsertHorizontal restores
// the exact pre-removal configuration.
func (n *Node) RemoveHorizontal() {
	n.left.right = n.right
	n.right.left = n.left
}

// RemoveVertical unlinks n from its up/down neighbors. n's own up/down
// pointers are preserved, so a later ReinsertVertical restores the exact
// pre-removal configuration.
func (n *Node) RemoveVertical() {
	n.up.down = n.down
	n.down.up = n.up
}

// ReinsertHorizontal restores n into the horizontal list using the
// left/right pointers remembered from the matching RemoveHorizontal.
func (n *Node) ReinsertHorizontal() {
	n.left.right = n
	n.right.left = n
}

// ReinsertVertical restores n into the vertical list using the up/down
// pointers remembered from the matching RemoveVertical.
func (n *Node) ReinsertVertical() {
	n.up.down = n
	n.down.up = n
}

// MakeRow splices nodes[1:] into the horizontal list anchored at nodes[0],
// producing the cycle nodes[0] -> nodes[1] -> ... -> nodes[len-1] -> nodes[0].
// MakeRow is a no-op for fewer than two nodes.
func MakeRow(nodes ...*Node) {
	if len(nodes) == 0 {
		return
	}
	root := nodes[0]
	for _, n := range nodes[1:] {
		n.InsertLeftOf(root)
	}
}
