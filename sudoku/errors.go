package sudoku

import "errors"

// Sentinel errors for the sudoku package. Callers should branch on these
// with errors.Is; none are wrapped with formatted strings at the
// definition site — context is attached with %w at the call site instead.
var (
	// ErrInvalidSize indicates a requested puzzle size is not one of 4, 9,
	// or 16.
	ErrInvalidSize = errors.New("sudoku: invalid size, want one of 4, 9, 16")

	// ErrOutOfRange indicates a row, column, or number argument fell
	// outside 1..D for the puzzle's size D.
	ErrOutOfRange = errors.New("sudoku: row/column/number out of range")

	// ErrEmptyInput indicates the input stream contained no lines at all.
	ErrEmptyInput = errors.New("sudoku: input stream is empty")

	// ErrInconsistentLineLength indicates a puzzle line did not have the
	// same number of tokens as the first line (which determines size).
	ErrInconsistentLineLength = errors.New("sudoku: inconsistent line length")

	// ErrUnexpectedEOF indicates the input stream ended before the
	// expected number of lines (one per row) was read.
	ErrUnexpectedEOF = errors.New("sudoku: unexpected end of input")

	// ErrInvalidToken indicates a token was neither '_' nor a hex digit
	// valid for the puzzle's size.
	ErrInvalidToken = errors.New("sudoku: invalid token")
)
