package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mleemansnl/sudoku-solver/sudoku"
)

var (
	inputFile  string
	outputFile string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a Sudoku puzzle",
		Long: `Read a partial Sudoku puzzle and write its solution.

Examples:
  dlxsudoku solve --input puzzle.txt --output solution.txt
  dlxsudoku solve < puzzle.txt`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	solveCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	r, err := openInput(inputFile)
	if err != nil {
		return err
	}
	defer r.Close()

	w, closeOut, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	if !sudoku.Solve(r, w) {
		return fmt.Errorf("dlxsudoku: no solution written")
	}
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dlxsudoku: opening input: %w", err)
	}
	return f, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dlxsudoku: creating output: %w", err)
	}
	return f, func() { f.Close() }, nil
}
