// Package sudoku maps Sudoku puzzles of size 4×4, 9×9, and 16×16 onto the
// exact cover engine in package dlx, demonstrating how a problem domain is
// encoded as a DLX matrix, how pre-filled cells are pinned, and how a raw
// solution (a set of selected matrix rows) decodes back into a filled
// grid.
//
// What:
//
//   - Size: a validated puzzle dimension (4, 9, or 16 — each a perfect
//     square, with box side Box() = √D).
//   - Encoder: builds the 4·D² column / D³ row DLX matrix encoding every
//     Sudoku constraint (cell, row, column, box), exposes Pin to commit a
//     given cell before solving, and Solve to decode a raw exact cover
//     into a Grid.
//   - Grid: a D×D grid of ints in 1..D (0 means empty), the shape both
//     input puzzles and solutions take.
//   - ReadPuzzle/WritePuzzle: the text I/O this repo ships around the
//     encoder — a deliberately thin external collaborator whose only
//     contract with Encoder is producing Pin calls and consuming a Grid.
//
// Why:
//
//   - Demonstrates the dlx engine is domain-agnostic: everything
//     Sudoku-specific lives here, not in package dlx or dlxnode.
//
// Errors:
//
//   - ErrInvalidSize, ErrOutOfRange — programmer/input misuse at the
//     encoder boundary.
//   - ErrEmptyInput, ErrInconsistentLineLength, ErrUnexpectedEOF,
//     ErrInvalidToken — malformed puzzle text, surfaced with a
//     human-readable message and no partial output.
//   - A puzzle with no solution is not an error: ReadPuzzle+Encoder.Solve
//     simply reports ok=false, mirroring package dlx's contract.
package sudoku
