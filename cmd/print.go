package cmd

import (
	"fmt"
	"strings"

	"github.com/kgrieve/sudoku/internal/board"
	"github.com/kgrieve/sudoku/internal/solver"
)

// printStyle selects how grids, histories, and stats are rendered.
type printStyle int

const (
	styleOneLine printStyle = iota
	styleCompact
	styleReadable
	styleCSV
)

// parsePrintStyle converts a name like "readable" into a printStyle.
func parsePrintStyle(s string) (printStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one-line", "oneline":
		return styleOneLine, nil
	case "compact":
		return styleCompact, nil
	case "readable":
		return styleReadable, nil
	case "csv":
		return styleCSV, nil
	default:
		return styleReadable, fmt.Errorf("unknown print style %q (use one-line, compact, readable, or csv)", s)
	}
}

// gridString renders 81 values in the requested style. Readable adds cell
// spacing and section rules, compact breaks rows, one-line and csv stay on
// a single line.
func gridString(values [board.CellCount]int, style printStyle) string {
	var sb strings.Builder
	for i := range board.CellCount {
		if style == styleReadable {
			sb.WriteByte(' ')
		}
		if values[i] == board.EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(values[i]))
		}
		switch {
		case i == board.CellCount-1:
			if style == styleCSV {
				sb.WriteByte(',')
			} else {
				sb.WriteByte('\n')
			}
			if style == styleReadable || style == styleCompact {
				sb.WriteByte('\n')
			}
		case i%board.UnitSize == board.UnitSize-1:
			if style == styleReadable || style == styleCompact {
				sb.WriteByte('\n')
			}
			if i%board.SectionGroupSize == board.SectionGroupSize-1 && style == styleReadable {
				sb.WriteString("-------|-------|-------\n")
			}
		case i%board.GridSize == board.GridSize-1:
			if style == styleReadable {
				sb.WriteString(" |")
			}
		}
	}
	return sb.String()
}

// historyString renders a deduction trail, one numbered step per line
// (or " -- " separated for csv).
func historyString(items []solver.LogItem, style printStyle, recorded bool) string {
	var sb strings.Builder
	if !recorded {
		sb.WriteString("History was not recorded.")
		if style == styleCSV {
			sb.WriteString(" -- ")
		} else {
			sb.WriteByte('\n')
		}
	}
	for i, item := range items {
		fmt.Fprintf(&sb, "%d. %s", i+1, item)
		if style == styleCSV {
			sb.WriteString(" -- ")
		} else {
			sb.WriteByte('\n')
		}
	}
	if style == styleCSV {
		sb.WriteByte(',')
	} else {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// statsString renders solve statistics.
func statsString(st solver.Stats, style printStyle) string {
	if style == styleCSV {
		return fmt.Sprintf("%s,%d,%d,%d,%d,%d,%d,%d,%d,%d,",
			st.Difficulty, st.Givens, st.Singles, st.HiddenSingles,
			st.NakedPairs, st.HiddenPairs, st.PointingPairTriples,
			st.BoxLineReductions, st.Guesses, st.Backtracks)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Difficulty: %s\n", st.Difficulty)
	fmt.Fprintf(&sb, "Number of Givens: %d\n", st.Givens)
	fmt.Fprintf(&sb, "Number of Singles: %d\n", st.Singles)
	fmt.Fprintf(&sb, "Number of Hidden Singles: %d\n", st.HiddenSingles)
	fmt.Fprintf(&sb, "Number of Naked Pairs: %d\n", st.NakedPairs)
	fmt.Fprintf(&sb, "Number of Hidden Pairs: %d\n", st.HiddenPairs)
	fmt.Fprintf(&sb, "Number of Pointing Pairs/Triples: %d\n", st.PointingPairTriples)
	fmt.Fprintf(&sb, "Number of Box/Line Intersections: %d\n", st.BoxLineReductions)
	fmt.Fprintf(&sb, "Number of Guesses: %d\n", st.Guesses)
	fmt.Fprintf(&sb, "Number of Backtracks: %d\n", st.Backtracks)
	return sb.String()
}

// parsePuzzle reads an 81-cell puzzle from text. '.' and '0' mean blank;
// whitespace and the grid rules produced by the readable style are ignored,
// so any of the print styles round-trips back through parsePuzzle.
func parsePuzzle(s string) ([board.CellCount]int, error) {
	var values [board.CellCount]int
	pos := 0
	for _, ch := range s {
		switch ch {
		case '.', '0':
			if pos >= board.CellCount {
				return values, fmt.Errorf("puzzle has more than %d cells", board.CellCount)
			}
			pos++
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if pos >= board.CellCount {
				return values, fmt.Errorf("puzzle has more than %d cells", board.CellCount)
			}
			values[pos] = int(ch - '0')
			pos++
		case ' ', '\t', '\n', '\r', '|', '-', ',':
			// layout characters from the readable/compact/csv styles
		default:
			return values, fmt.Errorf("invalid character %q at cell %d", ch, pos)
		}
	}
	if pos != board.CellCount {
		return values, fmt.Errorf("puzzle has %d cells, expected %d", pos, board.CellCount)
	}
	return values, nil
}
