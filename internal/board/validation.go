package board

import (
	"errors"
	"fmt"
)

// Invariant violations from Mark. These indicate a bug in the solver's
// bookkeeping and are never produced by a merely unsolvable puzzle.
var (
	ErrCellAssigned    = errors.New("cell already has a solution value")
	ErrRoundConflict   = errors.New("cell was assigned in a different round")
	ErrValueEliminated = errors.New("value is no longer possible at cell")
)

// Input validation errors.
var (
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value must be between 1-9")
)

// ValidGrid reports whether a grid of 81 values satisfies Sudoku
// constraints. Empty cells are ignored, so it applies both to puzzles with
// blanks and to completed solutions.
func ValidGrid(values [CellCount]int) bool {
	var rowCheck, colCheck, sectionCheck [UnitSize]uint

	for pos := range CellCount {
		val := values[pos]
		if val == EmptyCell {
			continue
		}
		if !isValidValue(val) {
			return false
		}

		row, col, section := RowOf(pos), ColumnOf(pos), SectionOf(pos)
		mask := uint(1 << (val - 1))

		// Check for duplicates in row, column, or section
		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			sectionCheck[section]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		sectionCheck[section] |= mask
	}

	return true
}

// IsComplete reports whether values is a fully solved grid: no blanks and
// each of 1-9 exactly once per row, column, and section.
func IsComplete(values [CellCount]int) bool {
	for pos := range CellCount {
		if values[pos] == EmptyCell {
			return false
		}
	}
	return ValidGrid(values)
}

// isValidPosition reports whether a given position is in bounds of the board.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

// ValidatePosition checks if a position is within board bounds.
func ValidatePosition(pos int) error {
	if !isValidPosition(pos) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, CellCount)
	}
	return nil
}

// isValidValue reports whether a given number is a legal cell value.
func isValidValue(num int) bool {
	return (num >= 1 && num <= UnitSize) || num == EmptyCell
}

// ValidateValue checks if a value is a digit 1-9 or the blank marker.
func ValidateValue(val int) error {
	if !isValidValue(val) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, val)
	}
	return nil
}
