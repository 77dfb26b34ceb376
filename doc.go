// Package sudokusolver is a Dancing Links exact-cover engine applied to
// Sudoku.
//
// What is sudoku-solver?
//
//	A small, dependency-light toolkit built around Knuth's Algorithm X over
//	a toroidal doubly-linked sparse matrix ("Dancing Links"):
//		• dlxnode — the Node/Header primitives: O(1) remove/reinsert, count
//		  bookkeeping decoupled from linkage.
//		• dlx     — Matrix construction and the Solver's backtracking search,
//		  S-heuristic column selection, and row pinning.
//		• sudoku  — the exact-cover encoding of 4×4, 9×9 and 16×16 Sudoku,
//		  plus text I/O.
//
// Why Dancing Links?
//
//   - Backtracking without copying: covering and uncovering a column is
//     O(1) per node touched, so the search explores the same matrix in
//     place instead of cloning state at every branch.
//   - General: the sudoku package is one encoding on top of dlx; any other
//     puzzle that reduces to exact cover (pentominoes, N-queens as a column
//     set, etc.) can reuse dlx and dlxnode unchanged.
//   - Deterministic: same matrix, same pins, same solution, every time —
//     no randomness, no goroutines racing over shared state.
//
// Under the hood:
//
//	dlxnode/ — toroidal node and column-header primitives
//	dlx/     — exact-cover matrix and Algorithm X solver
//	sudoku/  — Sudoku-to-exact-cover encoding, grid type, text I/O
//	cmd/dlxsudoku/ — command-line solver
//
// Runnable demonstrations are the Example functions in the dlx and sudoku
// packages' example_test.go files; there is no separate examples directory.
package sudokusolver
