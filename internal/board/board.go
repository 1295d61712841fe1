package board

import (
	"fmt"
	"strings"
)

// Board holds all mutable state for one solving or generation session: the
// puzzle givens, the solution being worked out, and the possibility table.
//
// Every mutation made while solving is stamped with the round (search depth)
// that produced it, which makes rollback of a failed guess exact: clearing
// round R restores the board to the state it had before round R ran. Stamps
// are write-once — an elimination recorded at an earlier round is never
// overwritten by a later one.
//
// Board contains only value arrays, so *b1 == *b2 compares full state.
type Board struct {
	// puzzle holds the 81 given values. Givens are 1-9, blanks are 0.
	// Once a solve starts the puzzle remains as is; the answer is worked
	// out in solution.
	puzzle [CellCount]int

	// solution holds the values assigned so far. After a successful solve
	// every entry is 1-9.
	solution [CellCount]int

	// solutionRound records the round at which each solution value was
	// assigned (0 = unassigned). Used to back out solve branches that do
	// not lead to a solution.
	solutionRound [CellCount]int

	// possibilities is the single source of truth for whether a (cell,
	// value) pair is still viable. An entry is 0 while the value remains
	// possible at that cell; otherwise it holds the round at which the
	// possibility was eliminated.
	possibilities [PossibilityCount]int
}

// New creates an empty Board.
func New() *Board {
	return &Board{}
}

// SetPuzzle replaces the puzzle givens. Zero means blank.
// Derived solving state is not touched; callers rebuild it from the givens.
func (b *Board) SetPuzzle(values [CellCount]int) {
	b.puzzle = values
}

// Puzzle returns a copy of the 81 given values.
func (b *Board) Puzzle() [CellCount]int {
	return b.puzzle
}

// PuzzleAt returns the given value at a position, or 0 when blank.
func (b *Board) PuzzleAt(pos int) int {
	return b.puzzle[pos]
}

// SetGiven places or clears a single given. Used by the generator while
// digging clues out of a completed grid.
func (b *Board) SetGiven(pos, val int) {
	b.puzzle[pos] = val
}

// GivenCount returns the number of nonzero givens in the puzzle.
func (b *Board) GivenCount() int {
	count := 0
	for pos := range CellCount {
		if b.puzzle[pos] != EmptyCell {
			count++
		}
	}
	return count
}

// Solution returns a copy of the 81 assigned solution values.
func (b *Board) Solution() [CellCount]int {
	return b.solution
}

// SolutionAt returns the solution value at a position, or 0 when unassigned.
func (b *Board) SolutionAt(pos int) int {
	return b.solution[pos]
}

// PromoteSolution copies the completed solution into the puzzle givens.
// The generator uses this after filling an empty grid so that clue removal
// can operate on a full puzzle.
func (b *Board) PromoteSolution() {
	b.puzzle = b.solution
}

// ClearState zeroes the solution, assignment rounds, and possibility table,
// leaving only the puzzle givens. Givens must be re-marked afterwards.
func (b *Board) ClearState() {
	b.solution = [CellCount]int{}
	b.solutionRound = [CellCount]int{}
	b.possibilities = [PossibilityCount]int{}
}

// Possible reports whether the value with the given index (0-8) is still
// viable at a position.
func (b *Board) Possible(valueIndex, pos int) bool {
	return b.possibilities[PossibilityIndex(valueIndex, pos)] == 0
}

// Eliminate stamps the possibility for a value index at a position with the
// given round. An entry stamped by an earlier round is left untouched.
// Reports whether the entry was newly eliminated.
func (b *Board) Eliminate(valueIndex, pos, round int) bool {
	i := PossibilityIndex(valueIndex, pos)
	if b.possibilities[i] != 0 {
		return false
	}
	b.possibilities[i] = round
	return true
}

// CountPossibilities returns how many values remain viable at a position.
func (b *Board) CountPossibilities(pos int) int {
	count := 0
	for valueIndex := range UnitSize {
		if b.Possible(valueIndex, pos) {
			count++
		}
	}
	return count
}

// PossibilitiesMatch reports whether two cells have identical sets of
// remaining possibilities.
func (b *Board) PossibilitiesMatch(pos1, pos2 int) bool {
	for valueIndex := range UnitSize {
		if b.Possible(valueIndex, pos1) != b.Possible(valueIndex, pos2) {
			return false
		}
	}
	return true
}

// Mark assigns value to pos at the given round, then eliminates the value
// from the rest of the position's row, column, and section and closes out
// the position's other value slots, all stamped with round.
//
// A non-nil error indicates broken solver bookkeeping, not a bad puzzle:
// a correct caller never marks an assigned cell, re-marks across rounds, or
// assigns a value already proven impossible.
func (b *Board) Mark(pos, round, value int) error {
	if b.solution[pos] != EmptyCell {
		return fmt.Errorf("%w: position %d already holds %d", ErrCellAssigned, pos, b.solution[pos])
	}
	if b.solutionRound[pos] != 0 {
		return fmt.Errorf("%w: position %d was assigned at round %d", ErrRoundConflict, pos, b.solutionRound[pos])
	}
	valueIndex := value - 1
	if !b.Possible(valueIndex, pos) {
		return fmt.Errorf("%w: value %d at position %d", ErrValueEliminated, value, pos)
	}

	b.solution[pos] = value
	b.solutionRound[pos] = round

	rowStart := RowOf(pos) * UnitSize
	for col := range UnitSize {
		b.Eliminate(valueIndex, rowStart+col, round)
	}

	colStart := ColumnOf(pos)
	for row := range UnitSize {
		b.Eliminate(valueIndex, colStart+UnitSize*row, round)
	}

	secStart := SectionStartOf(pos)
	for i := range GridSize {
		for j := range GridSize {
			b.Eliminate(valueIndex, secStart+i+UnitSize*j, round)
		}
	}

	// The cell itself is determined; close out its remaining slots.
	for vi := range UnitSize {
		b.Eliminate(vi, pos, round)
	}
	return nil
}

// RollbackRound erases every effect of the given round: solution values
// assigned at that round and possibility eliminations stamped with it.
// Effects of other rounds are untouched.
func (b *Board) RollbackRound(round int) {
	for pos := range CellCount {
		if b.solutionRound[pos] == round {
			b.solutionRound[pos] = 0
			b.solution[pos] = EmptyCell
		}
	}
	for i := range PossibilityCount {
		if b.possibilities[i] == round {
			b.possibilities[i] = 0
		}
	}
}

// IsSolved reports whether every cell has an assigned solution value.
func (b *Board) IsSolved() bool {
	for pos := range CellCount {
		if b.solution[pos] == EmptyCell {
			return false
		}
	}
	return true
}

// IsImpossible reports whether some unassigned cell has no remaining
// possibilities, i.e. the current branch cannot lead to a solution.
func (b *Board) IsImpossible() bool {
	for pos := range CellCount {
		if b.solution[pos] == EmptyCell && b.CountPossibilities(pos) == 0 {
			return true
		}
	}
	return false
}

// String returns the puzzle as an 81-character string.
// Empty cells are represented as '.', givens as '1'-'9'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, val := range b.puzzle {
		if val == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(val))
		}
	}

	return sb.String()
}
