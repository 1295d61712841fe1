package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kgrieve/sudoku/internal/board"
	"github.com/kgrieve/sudoku/internal/solver"
)

var (
	solveFile         string
	solveSeed         int64
	solveStyle        string
	showSolution      bool
	showInstructions  bool
	showSolveHistory  bool
	showStats         bool
	countAllSolutions bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a puzzle given as an 81-character string ('.' or '0' for blanks),
read from a file, or read from stdin.

Examples:
  sudoku solve 2.....19.3...9..2....2.53.7.......3...8..6........18...65.1..8...7..3..6..96....5
  sudoku solve --file puzzle.txt --solution --stats
  cat puzzle.txt | sudoku solve --instructions`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Read the puzzle from a file")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for branch ordering (0 = time-based)")
	solveCmd.Flags().StringVar(&solveStyle, "style", "readable", "Print style: one-line, compact, readable, or csv")
	solveCmd.Flags().BoolVarP(&showSolution, "solution", "s", true, "Print the solution grid")
	solveCmd.Flags().BoolVar(&showInstructions, "instructions", false, "Print the steps that led to the solution")
	solveCmd.Flags().BoolVar(&showSolveHistory, "history", false, "Print every step taken, including rolled-back branches")
	solveCmd.Flags().BoolVar(&showStats, "stats", false, "Print solve statistics and difficulty")
	solveCmd.Flags().BoolVarP(&countAllSolutions, "count", "c", false, "Count all solutions to the puzzle")

	rootCmd.AddCommand(solveCmd)
}

// puzzleInput resolves the puzzle text from argument, file, or stdin.
func puzzleInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if solveFile != "" {
		data, err := os.ReadFile(solveFile)
		if err != nil {
			return "", fmt.Errorf("failed to read puzzle file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read puzzle from stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New("no puzzle given: pass an 81-character string, --file, or pipe to stdin")
	}
	return string(data), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	text, err := puzzleInput(args)
	if err != nil {
		return err
	}
	values, err := parsePuzzle(text)
	if err != nil {
		return err
	}
	style, err := parsePrintStyle(solveStyle)
	if err != nil {
		return err
	}

	s := solver.New(board.New(), &solver.Options{
		Seed:          solveSeed,
		RecordHistory: true,
		LogHistory:    verbose,
		Logger:        log,
	})
	if !s.SetPuzzle(values) {
		return errors.New("puzzle givens are contradictory")
	}

	fmt.Print(gridString(values, style))

	if countAllSolutions {
		fmt.Printf("Number of solutions: %d\n", s.CountSolutions())
	}

	if !s.Solve() {
		return errors.New("puzzle has no solution")
	}

	if showSolution {
		fmt.Print(gridString(s.Board.Solution(), style))
	}
	if showInstructions {
		fmt.Println("Solve instructions:")
		fmt.Print(historyString(s.SolveInstructions(), style, s.RecordingHistory()))
	}
	if showSolveHistory {
		fmt.Println("Solve history:")
		fmt.Print(historyString(s.SolveHistory(), style, s.RecordingHistory()))
	}
	if showStats {
		fmt.Print(statsString(s.Stats(), style))
	}
	return nil
}
