// Package dlxnode implements the toroidal doubly-linked node that underlies
// Knuth's Dancing Links technique: a four-way linked node (left, right, up,
// down) with O(1) remove and reinsert, plus the column-header node that
// additionally tracks how many non-header nodes are currently linked into
// its vertical list.
//
// What:
//
//   - Node: member of exactly one horizontal circular list and exactly one
//     vertical circular list at all times. RemoveHorizontal/RemoveVertical
//     unlink a node while preserving its own left/right/up/down pointers —
//     this is the Dancing Links property that makes ReinsertHorizontal/
//     ReinsertVertical an O(1), LIFO-paired operation.
//   - Header: a node that owns every node allocated through it (NewNode)
//     and maintains an explicit Count, updated only by IncCount/DecCount —
//     never implicitly by RemoveVertical/ReinsertVertical. Higher layers
//     (the solver's cover/uncover) decide when a count change is
//     semantically meaningful.
//
// Why:
//
//   - This package is deliberately domain-agnostic: it knows nothing about
//     exact cover, Algorithm X, or Sudoku. It is the leaf dependency of
//     package dlx, which builds Algorithm X on top of these primitives.
//
// Invariants:
//
//   - A freshly constructed isolated node links to itself in all four
//     directions.
//   - Remove leaves the removed node's own links untouched; only its
//     neighbors are updated to skip over it.
//   - Reinsert restores exactly the configuration that existed immediately
//     before the paired Remove.
//
// Errors:
//
//   - None. Every operation here has a total contract given valid inputs;
//     see debug.go for the invariant assertion, on in every build, that
//     panics when a header's Count goes negative.
package dlxnode
