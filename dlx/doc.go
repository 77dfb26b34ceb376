// Package dlx implements Knuth's Algorithm X over the toroidal sparse
// matrix built from package dlxnode, solving the exact cover problem: given
// a 0/1 matrix, select a subset of rows such that each column contains
// exactly one selected 1.
//
// What:
//
//   - Matrix: a toroidal sparse matrix rooted at a sentinel header. Columns
//     are appended via NewHeader; rows are built by attaching nodes to
//     those headers and splicing them into a horizontal cycle with
//     dlxnode.MakeRow.
//   - Solver: recursive, depth-first Algorithm X over a Matrix. Solve
//     returns the first exact cover found ([]*dlxnode.Node, true) or
//     (nil, false) if none exists — this is a Go idiom for spec's
//     option<solution>, not an error: "no solution" is a normal outcome.
//   - CoverRow pins a row into the solution permanently (used to encode
//     pre-filled input, e.g. a given Sudoku cell) without a paired uncover.
//
// Why:
//
//   - This is the reusable core: any exact-cover problem (Sudoku, but also
//     polyomino tiling, N-Queens, etc.) maps onto this engine by building a
//     Matrix and decoding the returned node payloads.
//
// Determinism:
//
//	Column selection always picks the header with the smallest Count,
//	leftmost on ties (Knuth's S-heuristic); row iteration follows vertical
//	insertion order. Given an identically constructed matrix, Solve always
//	returns the same solution.
//
// Concurrency:
//
//	Solve is synchronous and single-threaded: it performs no I/O, offers no
//	cancellation, and must not be called concurrently with itself or with
//	any other mutation of the same Matrix. A Solver is single-use by
//	contract, though the Matrix is left in a well-defined, pre-search state
//	on return and could in principle be reused.
//
// Errors:
//
//   - None. Every public operation has a total contract given valid input;
//     "no solution" is reported via Solve's boolean return, not an error.
package dlx
