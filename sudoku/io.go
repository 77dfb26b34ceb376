package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// tokenEmptyCell is the input token for an unfilled cell.
const tokenEmptyCell = '_'

// glyphs is the output glyph table, indexed by n mod 16 after any
// Size16 decrement. This module adopts the 0..F convention for Size16
// (parsed values are incremented by 1 on read, decremented by 1 on write)
// — the convention spec explicitly settles between the original's two
// divergent copies of this table.
const glyphs = "0123456789ABCDEF"

// ReadPuzzle parses a partial Sudoku from r: D lines of D whitespace-
// separated tokens. Size D is inferred from the number of non-whitespace
// tokens on the first line; valid D ∈ {4, 9, 16}. Token '_' means empty;
// otherwise a single hex digit 0-F, parsed base-16. For Size16 only, the
// parsed value is incremented by 1 (source uses 0..F as 1..16); for
// Size4/Size9, the parsed value is used directly as 1..D.
func ReadPuzzle(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, ErrEmptyInput
	}
	// Whitespace between tokens is optional, so tokens are identified by
	// stripping whitespace and taking one rune per token — not by
	// splitting on whitespace (which would misparse a line with no
	// separators at all, e.g. "4__1").
	line := stripWhitespace(scanner.Text())
	d := len([]rune(line))

	size, err := ParseSize(d)
	if err != nil {
		return nil, fmt.Errorf("%w (read %d tokens on first line)", err, d)
	}

	grid := NewGrid(size)

	for row := 1; row <= d; row++ {
		tokens := []rune(line)
		if len(tokens) != d {
			return nil, fmt.Errorf("%w: row %d has %d tokens, want %d", ErrInconsistentLineLength, row, len(tokens), d)
		}

		for column, tok := range tokens {
			if tok == tokenEmptyCell {
				continue
			}
			n, err := parseToken(tok, size)
			if err != nil {
				return nil, err
			}
			grid.Set(row, column+1, n)
		}

		if row < d {
			if !scanner.Scan() {
				return nil, fmt.Errorf("%w: read %d lines, expected %d", ErrUnexpectedEOF, row, d)
			}
			line = stripWhitespace(scanner.Text())
		}
	}

	return grid, nil
}

// stripWhitespace removes every whitespace rune from s, so that tokens
// separated by optional whitespace (or none at all) can be read one rune
// at a time.
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// parseToken interprets a single token rune as a base-16 digit, applying
// the Size16 0..F → 1..16 shift.
func parseToken(tok rune, size Size) (int, error) {
	v, err := strconv.ParseInt(string(tok), 16, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, tok)
	}
	n := int(v)
	if size == Size16 {
		n++
	}
	if n < 1 || n > int(size) {
		return 0, fmt.Errorf("%w: %q out of range for size %d", ErrInvalidToken, tok, int(size))
	}
	return n, nil
}

// WritePuzzle writes g to w as D rows of D glyphs, each separated by a
// single space (trailing space retained), one newline per row.
func WritePuzzle(w io.Writer, g *Grid) error {
	d := int(g.Size())
	bw := bufio.NewWriter(w)
	for row := 1; row <= d; row++ {
		for column := 1; column <= d; column++ {
			n := g.At(row, column)
			if _, err := bw.WriteRune(glyphFor(n, g.Size())); err != nil {
				return err
			}
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// glyphFor returns the printable glyph for n (1..D, or 0 for empty, which
// is written as the '_' input token), reversing the Size16 parse-time
// shift before indexing into glyphs.
func glyphFor(n int, size Size) rune {
	if n == 0 {
		return tokenEmptyCell
	}
	if size == Size16 {
		n--
	}
	return rune(glyphs[n%16])
}

// Solve reads a puzzle from r, solves it, and writes the solution to w.
// It returns true if a solution was found and written; false if the input
// was malformed (an error line is written instead) or the puzzle has no
// solution (a "No valid Sudoku solution found" line is written). This
// mirrors the boolean-return contract spec ships for the CLI layer.
func Solve(r io.Reader, w io.Writer) bool {
	grid, err := ReadPuzzle(r)
	if err != nil {
		fmt.Fprintln(w, err.Error())
		return false
	}

	enc, err := NewEncoder(grid.Size())
	if err != nil {
		fmt.Fprintln(w, err.Error())
		return false
	}

	d := int(grid.Size())
	for row := 1; row <= d; row++ {
		for column := 1; column <= d; column++ {
			if v := grid.At(row, column); v != 0 {
				if err := enc.Pin(row, column, v); err != nil {
					fmt.Fprintln(w, err.Error())
					return false
				}
			}
		}
	}

	solution, ok := enc.Solve()
	if !ok {
		fmt.Fprintln(w, "No valid Sudoku solution found")
		return false
	}

	if err := WritePuzzle(w, solution); err != nil {
		fmt.Fprintln(w, err.Error())
		return false
	}
	return true
}
