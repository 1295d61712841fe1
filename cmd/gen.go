package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kgrieve/sudoku/internal/board"
	"github.com/kgrieve/sudoku/internal/generator"
	"github.com/kgrieve/sudoku/internal/solver"
)

var (
	numPuzzles  int
	symmetry    string
	genSeed     int64
	genStyle    string
	genSolution bool
	genStats    bool
	outputFile  string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles with a single provable solution,
optionally preserving a geometric symmetry among the clues.

Examples:
  sudoku gen
  sudoku gen -n 5 --symmetry rotate180
  sudoku gen --stats --solution
  sudoku gen -n 20 --output puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVar(&symmetry, "symmetry", "none", "Clue symmetry: none, rotate90, rotate180, mirror, flip, or random")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed for reproducible puzzles (0 = time-based)")
	genCmd.Flags().StringVar(&genStyle, "style", "readable", "Print style: one-line, compact, readable, or csv")
	genCmd.Flags().BoolVarP(&genSolution, "solution", "s", false, "Print each puzzle's solution")
	genCmd.Flags().BoolVar(&genStats, "stats", false, "Print solve statistics and difficulty for each puzzle")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzles.html)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	sym, err := generator.ParseSymmetry(symmetry)
	if err != nil {
		return err
	}
	style, err := parsePrintStyle(genStyle)
	if err != nil {
		return err
	}

	// Prepare for HTML output if an output file is specified
	var puzzles, solutions [][board.CellCount]int
	outputHTML := outputFile != ""

	for i := 0; i < numPuzzles; i++ {
		// Derive per-puzzle seeds so a fixed --seed still varies the batch.
		seed := genSeed
		if seed != 0 {
			seed += int64(i)
		}

		s := solver.New(board.New(), &solver.Options{Seed: seed, Logger: log})
		gen := generator.New(s, &generator.Options{Symmetry: sym, Seed: seed})
		if !gen.Generate() {
			return fmt.Errorf("generation failed for puzzle %d", i+1)
		}
		puzzle := s.Board.Puzzle()

		// Re-solve with recording on to obtain the solution grid and the
		// deduction trail behind difficulty and stats.
		s.SetRecordHistory(true)
		if !s.Solve() {
			return fmt.Errorf("generated puzzle %d failed to solve", i+1)
		}
		solution := s.Board.Solution()

		if outputHTML {
			puzzles = append(puzzles, puzzle)
			solutions = append(solutions, solution)
			continue
		}

		fmt.Printf("Puzzle #%d (Givens: %d, Difficulty: %s):\n", i+1, s.Board.GivenCount(), s.Difficulty())
		fmt.Print(gridString(puzzle, style))
		if genSolution {
			fmt.Println("Solution:")
			fmt.Print(gridString(solution, style))
		}
		if genStats {
			fmt.Print(statsString(s.Stats(), style))
			fmt.Println()
		}
	}

	if outputHTML {
		filename := outputFile
		if filepath.Ext(filename) != ".html" {
			filename = filename + ".html"
		}
		if err := generateHTML(filename, puzzles, solutions); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", numPuzzles, filename)
	}

	return nil
}

// generateHTML creates an HTML file with puzzles, one per page
func generateHTML(filename string, puzzles, solutions [][board.CellCount]int) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	// Write HTML header
	_, err = fmt.Fprintf(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Sudoku Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .sudoku-grid {
            display: inline-block;
            border: 3px solid #000;
            margin: 20px auto;
            font-family: 'Courier New', monospace;
            font-size: 24px;
            line-height: 1.5;
        }
        .sudoku-grid table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .sudoku-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            border: 1px solid #333;
            padding: 0;
        }
        .sudoku-grid td.empty {
            color: #ccc;
        }
        .sudoku-grid tr:nth-child(3n) td {
            border-bottom: 2px solid #000;
        }
        .sudoku-grid td:nth-child(3n) {
            border-right: 2px solid #000;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	// Write each puzzle on its own page
	for i := 0; i < len(puzzles); i++ {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>Sudoku Puzzle #%d</h1>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, gridToHTML(puzzles[i]), gridToHTML(solutions[i]))
		if err != nil {
			return err
		}
	}

	// Write HTML footer
	_, err = fmt.Fprintf(file, `</body>
</html>
`)
	return err
}

// gridToHTML converts 81 values to an HTML table representation
func gridToHTML(values [board.CellCount]int) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"sudoku-grid\"><table>")

	for row := 0; row < 9; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < 9; col++ {
			val := values[board.MakePos(row, col)]
			cellClass := ""
			cellContent := ""

			if val == board.EmptyCell {
				cellClass = "empty"
				cellContent = "·"
			} else {
				cellContent = fmt.Sprintf("%d", val)
			}

			sb.WriteString(fmt.Sprintf("<td class=\"%s\">%s</td>", cellClass, cellContent))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}
