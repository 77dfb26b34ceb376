package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dlxsudoku",
	Short: "Solve Sudoku puzzles with a Dancing Links exact-cover engine",
	Long: `dlxsudoku reads a partially filled Sudoku puzzle and solves it using
Knuth's Algorithm X over a toroidal doubly-linked sparse matrix.

Supported sizes: 4×4, 9×9, 16×16, inferred from the number of tokens on
the first input line.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
