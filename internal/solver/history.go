package solver

import (
	"fmt"
	"strings"

	"github.com/kgrieve/sudoku/internal/board"
)

// LogKind identifies the deduction or search step a LogItem records.
// The set is closed: difficulty classification and formatting switch over
// every kind.
type LogKind int

const (
	KindGiven LogKind = iota
	KindSingle
	KindHiddenSingleRow
	KindHiddenSingleColumn
	KindHiddenSingleSection
	KindGuess
	KindRollback
	KindNakedPairRow
	KindNakedPairColumn
	KindNakedPairSection
	KindPointingPairTripleRow
	KindPointingPairTripleColumn
	KindRowBoxReduction
	KindColumnBoxReduction
	KindHiddenPairRow
	KindHiddenPairColumn
	KindHiddenPairSection
)

// String returns the human-readable description of the step.
func (k LogKind) String() string {
	switch k {
	case KindGiven:
		return "Mark given"
	case KindSingle:
		return "Mark only possibility for cell"
	case KindHiddenSingleRow:
		return "Mark single possibility for value in row"
	case KindHiddenSingleColumn:
		return "Mark single possibility for value in column"
	case KindHiddenSingleSection:
		return "Mark single possibility for value in section"
	case KindGuess:
		return "Mark guess (start round)"
	case KindRollback:
		return "Roll back round"
	case KindNakedPairRow:
		return "Remove possibilities for naked pair in row"
	case KindNakedPairColumn:
		return "Remove possibilities for naked pair in column"
	case KindNakedPairSection:
		return "Remove possibilities for naked pair in section"
	case KindPointingPairTripleRow:
		return "Remove possibilities for row because all values are in one section"
	case KindPointingPairTripleColumn:
		return "Remove possibilities for column because all values are in one section"
	case KindRowBoxReduction:
		return "Remove possibilities for section because all values are in one row"
	case KindColumnBoxReduction:
		return "Remove possibilities for section because all values are in one column"
	case KindHiddenPairRow:
		return "Remove possibilities from hidden pair in row"
	case KindHiddenPairColumn:
		return "Remove possibilities from hidden pair in column"
	case KindHiddenPairSection:
		return "Remove possibilities from hidden pair in section"
	default:
		return fmt.Sprintf("LogKind(%d)", int(k))
	}
}

// NoPosition marks a LogItem that has no board position, such as a rollback.
const NoPosition = -1

// NoValue marks a LogItem that sets no cell value.
const NoValue = 0

// LogItem records one step taken while solving: which round it happened in,
// what kind of step it was, and the value and position involved (if any).
// The ordered sequence of items is the deduction trail consumed by the
// difficulty classifier and by history printing.
type LogItem struct {
	// Round is the recursion level at which this step was taken. Used to
	// back out items from solve branches that do not lead to a solution.
	Round int

	Kind LogKind

	// Value set by the step, or NoValue.
	Value int

	// Position on the board at which the value (if any) was set, or
	// NoPosition for steps that touch no single cell.
	Position int
}

// Row returns the 1-indexed row of the step's position.
// ok is false when the item carries no position.
func (li LogItem) Row() (row int, ok bool) {
	if li.Position == NoPosition {
		return 0, false
	}
	return board.RowOf(li.Position) + 1, true
}

// Column returns the 1-indexed column of the step's position.
// ok is false when the item carries no position.
func (li LogItem) Column() (col int, ok bool) {
	if li.Position == NoPosition {
		return 0, false
	}
	return board.ColumnOf(li.Position) + 1, true
}

// String formats the item as "Round: N - description (Row: r - Column: c - Value: v)".
func (li LogItem) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Round: %d - %s", li.Round, li.Kind)
	row, hasPos := li.Row()
	col, _ := li.Column()
	if li.Value > 0 || hasPos {
		sb.WriteString(" (")
		if hasPos {
			fmt.Fprintf(&sb, "Row: %d - Column: %d", row, col)
		}
		if li.Value > 0 {
			if hasPos {
				sb.WriteString(" - ")
			}
			fmt.Fprintf(&sb, "Value: %d", li.Value)
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// countKinds returns how many items in the trail are of any of the given kinds.
func countKinds(items []LogItem, kinds ...LogKind) int {
	count := 0
	for _, item := range items {
		for _, k := range kinds {
			if item.Kind == k {
				count++
			}
		}
	}
	return count
}
