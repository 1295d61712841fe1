package solver

import (
	"github.com/kgrieve/sudoku/internal/board"
)

// unset marks a row/column/section index not yet seen while scanning.
const unset = -1

// singleSolveMove tries each deduction technique in fixed priority order
// until one changes the board. Each technique performs exactly one atomic
// change set, stamps it with the round, logs one item, and returns — it
// never keeps scanning for more opportunities in the same call. That policy
// is what makes a round a meaningful unit of rollback.
func (s *Solver) singleSolveMove(round int) bool {
	if s.onlyPossibilityForCell(round) {
		return true
	}
	if s.onlyValueInSection(round) {
		return true
	}
	if s.onlyValueInRow(round) {
		return true
	}
	if s.onlyValueInColumn(round) {
		return true
	}
	if s.nakedPairs(round) {
		return true
	}
	if s.pointingRowReduction(round) {
		return true
	}
	if s.pointingColumnReduction(round) {
		return true
	}
	if s.rowBoxReduction(round) {
		return true
	}
	if s.columnBoxReduction(round) {
		return true
	}
	if s.hiddenPairInRow(round) {
		return true
	}
	if s.hiddenPairInColumn(round) {
		return true
	}
	if s.hiddenPairInSection(round) {
		return true
	}
	return false
}

// onlyPossibilityForCell marks a cell that has exactly one remaining
// possibility — a "naked single".
func (s *Solver) onlyPossibilityForCell(round int) bool {
	for pos := range board.CellCount {
		if s.Board.SolutionAt(pos) != board.EmptyCell {
			continue
		}
		count := 0
		lastValue := 0
		for valueIndex := range board.UnitSize {
			if s.Board.Possible(valueIndex, pos) {
				count++
				lastValue = valueIndex + 1
			}
		}
		if count == 1 {
			s.mark(pos, round, lastValue)
			s.addHistoryItem(LogItem{Round: round, Kind: KindSingle, Value: lastValue, Position: pos})
			return true
		}
	}
	return false
}

// onlyValueInRow marks a cell that is the only remaining candidate for some
// value within its row — a "hidden single".
func (s *Solver) onlyValueInRow(round int) bool {
	for row := range board.UnitSize {
		for valueIndex := range board.UnitSize {
			count := 0
			lastPos := 0
			for col := range board.UnitSize {
				pos := row*board.UnitSize + col
				if s.Board.Possible(valueIndex, pos) {
					count++
					lastPos = pos
				}
			}
			if count == 1 {
				value := valueIndex + 1
				s.addHistoryItem(LogItem{Round: round, Kind: KindHiddenSingleRow, Value: value, Position: lastPos})
				s.mark(lastPos, round, value)
				return true
			}
		}
	}
	return false
}

// onlyValueInColumn is the hidden single within a column.
func (s *Solver) onlyValueInColumn(round int) bool {
	for col := range board.UnitSize {
		for valueIndex := range board.UnitSize {
			count := 0
			lastPos := 0
			for row := range board.UnitSize {
				pos := board.MakePos(row, col)
				if s.Board.Possible(valueIndex, pos) {
					count++
					lastPos = pos
				}
			}
			if count == 1 {
				value := valueIndex + 1
				s.addHistoryItem(LogItem{Round: round, Kind: KindHiddenSingleColumn, Value: value, Position: lastPos})
				s.mark(lastPos, round, value)
				return true
			}
		}
	}
	return false
}

// onlyValueInSection is the hidden single within a 3×3 section.
func (s *Solver) onlyValueInSection(round int) bool {
	for section := range board.UnitSize {
		secStart := board.SectionFirstCell(section)
		for valueIndex := range board.UnitSize {
			count := 0
			lastPos := 0
			for i := range board.GridSize {
				for j := range board.GridSize {
					pos := secStart + i + board.UnitSize*j
					if s.Board.Possible(valueIndex, pos) {
						count++
						lastPos = pos
					}
				}
			}
			if count == 1 {
				value := valueIndex + 1
				s.addHistoryItem(LogItem{Round: round, Kind: KindHiddenSingleSection, Value: value, Position: lastPos})
				s.mark(lastPos, round, value)
				return true
			}
		}
	}
	return false
}

// removeSharedPossibilities eliminates from target every value still shared
// with source. Used by the naked pair reductions, where source is one of the
// pair cells and target is another cell of the same unit.
func (s *Solver) removeSharedPossibilities(source, target, round int) bool {
	doneSomething := false
	for valueIndex := range board.UnitSize {
		if s.Board.Possible(valueIndex, source) && s.Board.Possible(valueIndex, target) {
			s.Board.Eliminate(valueIndex, target, round)
			doneSomething = true
		}
	}
	return doneSomething
}

// nakedPairs finds two cells in a shared unit with identical two-value
// possibility sets and eliminates those values from the rest of the unit.
func (s *Solver) nakedPairs(round int) bool {
	for pos := range board.CellCount {
		if s.Board.CountPossibilities(pos) != 2 {
			continue
		}
		row := board.RowOf(pos)
		col := board.ColumnOf(pos)
		secStart := board.SectionStartOf(pos)
		for pos2 := pos + 1; pos2 < board.CellCount; pos2++ {
			if s.Board.CountPossibilities(pos2) != 2 || !s.Board.PossibilitiesMatch(pos, pos2) {
				continue
			}
			if row == board.RowOf(pos2) {
				doneSomething := false
				for col2 := range board.UnitSize {
					pos3 := board.MakePos(row, col2)
					if pos3 != pos && pos3 != pos2 && s.removeSharedPossibilities(pos, pos3, round) {
						doneSomething = true
					}
				}
				if doneSomething {
					s.addHistoryItem(LogItem{Round: round, Kind: KindNakedPairRow, Value: NoValue, Position: pos})
					return true
				}
			}
			if col == board.ColumnOf(pos2) {
				doneSomething := false
				for row2 := range board.UnitSize {
					pos3 := board.MakePos(row2, col)
					if pos3 != pos && pos3 != pos2 && s.removeSharedPossibilities(pos, pos3, round) {
						doneSomething = true
					}
				}
				if doneSomething {
					s.addHistoryItem(LogItem{Round: round, Kind: KindNakedPairColumn, Value: NoValue, Position: pos})
					return true
				}
			}
			if secStart == board.SectionStartOf(pos2) {
				doneSomething := false
				for i := range board.GridSize {
					for j := range board.GridSize {
						pos3 := secStart + i + board.UnitSize*j
						if pos3 != pos && pos3 != pos2 && s.removeSharedPossibilities(pos, pos3, round) {
							doneSomething = true
						}
					}
				}
				if doneSomething {
					s.addHistoryItem(LogItem{Round: round, Kind: KindNakedPairSection, Value: NoValue, Position: pos})
					return true
				}
			}
		}
	}
	return false
}

// pointingRowReduction: when all remaining candidates for a value within a
// section fall in a single row, the value is eliminated from that row
// outside the section.
func (s *Solver) pointingRowReduction(round int) bool {
	for valueIndex := range board.UnitSize {
		for section := range board.UnitSize {
			secStart := board.SectionFirstCell(section)
			inOneRow := true
			boxRow := unset
			for j := range board.GridSize {
				for i := range board.GridSize {
					pos := secStart + i + board.UnitSize*j
					if s.Board.Possible(valueIndex, pos) {
						if boxRow == unset || boxRow == j {
							boxRow = j
						} else {
							inOneRow = false
						}
					}
				}
			}
			if !inOneRow || boxRow == unset {
				continue
			}

			doneSomething := false
			row := board.RowOf(secStart) + boxRow
			rowStart := row * board.UnitSize
			for i := range board.UnitSize {
				pos := rowStart + i
				if board.SectionOf(pos) != section && s.Board.Possible(valueIndex, pos) {
					s.Board.Eliminate(valueIndex, pos, round)
					doneSomething = true
				}
			}
			if doneSomething {
				s.addHistoryItem(LogItem{Round: round, Kind: KindPointingPairTripleRow, Value: valueIndex + 1, Position: rowStart})
				return true
			}
		}
	}
	return false
}

// pointingColumnReduction is the column orientation of the pointing
// pair/triple.
func (s *Solver) pointingColumnReduction(round int) bool {
	for valueIndex := range board.UnitSize {
		for section := range board.UnitSize {
			secStart := board.SectionFirstCell(section)
			inOneCol := true
			boxCol := unset
			for i := range board.GridSize {
				for j := range board.GridSize {
					pos := secStart + i + board.UnitSize*j
					if s.Board.Possible(valueIndex, pos) {
						if boxCol == unset || boxCol == i {
							boxCol = i
						} else {
							inOneCol = false
						}
					}
				}
			}
			if !inOneCol || boxCol == unset {
				continue
			}

			doneSomething := false
			colStart := board.ColumnOf(secStart) + boxCol
			for i := range board.UnitSize {
				pos := colStart + board.UnitSize*i
				if board.SectionOf(pos) != section && s.Board.Possible(valueIndex, pos) {
					s.Board.Eliminate(valueIndex, pos, round)
					doneSomething = true
				}
			}
			if doneSomething {
				s.addHistoryItem(LogItem{Round: round, Kind: KindPointingPairTripleColumn, Value: valueIndex + 1, Position: colStart})
				return true
			}
		}
	}
	return false
}

// rowBoxReduction: when all remaining candidates for a value within a row
// fall in a single section, the value is eliminated from the rest of that
// section outside the row.
func (s *Solver) rowBoxReduction(round int) bool {
	for valueIndex := range board.UnitSize {
		for row := range board.UnitSize {
			rowStart := row * board.UnitSize
			inOneBox := true
			rowBox := unset
			for i := range board.GridSize {
				for j := range board.GridSize {
					column := i*board.GridSize + j
					pos := board.MakePos(row, column)
					if s.Board.Possible(valueIndex, pos) {
						if rowBox == unset || rowBox == i {
							rowBox = i
						} else {
							inOneBox = false
						}
					}
				}
			}
			if !inOneBox || rowBox == unset {
				continue
			}

			doneSomething := false
			column := board.GridSize * rowBox
			secStart := board.SectionStartOf(board.MakePos(row, column))
			secStartRow := board.RowOf(secStart)
			secStartCol := board.ColumnOf(secStart)
			for i := range board.GridSize {
				for j := range board.GridSize {
					row2 := secStartRow + i
					col2 := secStartCol + j
					pos := board.MakePos(row2, col2)
					if row != row2 && s.Board.Possible(valueIndex, pos) {
						s.Board.Eliminate(valueIndex, pos, round)
						doneSomething = true
					}
				}
			}
			if doneSomething {
				s.addHistoryItem(LogItem{Round: round, Kind: KindRowBoxReduction, Value: valueIndex + 1, Position: rowStart})
				return true
			}
		}
	}
	return false
}

// columnBoxReduction is the column orientation of the box/line reduction.
func (s *Solver) columnBoxReduction(round int) bool {
	for valueIndex := range board.UnitSize {
		for col := range board.UnitSize {
			inOneBox := true
			colBox := unset
			for i := range board.GridSize {
				for j := range board.GridSize {
					row := i*board.GridSize + j
					pos := board.MakePos(row, col)
					if s.Board.Possible(valueIndex, pos) {
						if colBox == unset || colBox == i {
							colBox = i
						} else {
							inOneBox = false
						}
					}
				}
			}
			if !inOneBox || colBox == unset {
				continue
			}

			doneSomething := false
			row := board.GridSize * colBox
			secStart := board.SectionStartOf(board.MakePos(row, col))
			secStartRow := board.RowOf(secStart)
			secStartCol := board.ColumnOf(secStart)
			for i := range board.GridSize {
				for j := range board.GridSize {
					row2 := secStartRow + i
					col2 := secStartCol + j
					pos := board.MakePos(row2, col2)
					if col != col2 && s.Board.Possible(valueIndex, pos) {
						s.Board.Eliminate(valueIndex, pos, round)
						doneSomething = true
					}
				}
			}
			if doneSomething {
				s.addHistoryItem(LogItem{Round: round, Kind: KindColumnBoxReduction, Value: valueIndex + 1, Position: col})
				return true
			}
		}
	}
	return false
}

// hiddenPairInRow: two values whose candidates within a row are confined to
// the same two cells; every other value is eliminated from those cells.
func (s *Solver) hiddenPairInRow(round int) bool {
	for row := range board.UnitSize {
		for valueIndex := range board.UnitSize {
			c1, c2 := unset, unset
			valCount := 0
			for column := range board.UnitSize {
				pos := board.MakePos(row, column)
				if s.Board.Possible(valueIndex, pos) {
					if c1 == unset || c1 == column {
						c1 = column
					} else if c2 == unset || c2 == column {
						c2 = column
					}
					valCount++
				}
			}
			if valCount != 2 {
				continue
			}
			for valueIndex2 := valueIndex + 1; valueIndex2 < board.UnitSize; valueIndex2++ {
				c3, c4 := unset, unset
				valCount2 := 0
				for column := range board.UnitSize {
					pos := board.MakePos(row, column)
					if s.Board.Possible(valueIndex2, pos) {
						if c3 == unset || c3 == column {
							c3 = column
						} else if c4 == unset || c4 == column {
							c4 = column
						}
						valCount2++
					}
				}
				if valCount2 != 2 || c1 != c3 || c2 != c4 {
					continue
				}
				doneSomething := false
				for valueIndex3 := range board.UnitSize {
					if valueIndex3 == valueIndex || valueIndex3 == valueIndex2 {
						continue
					}
					pos1 := board.MakePos(row, c1)
					pos2 := board.MakePos(row, c2)
					if s.Board.Eliminate(valueIndex3, pos1, round) {
						doneSomething = true
					}
					if s.Board.Eliminate(valueIndex3, pos2, round) {
						doneSomething = true
					}
				}
				if doneSomething {
					s.addHistoryItem(LogItem{Round: round, Kind: KindHiddenPairRow, Value: valueIndex + 1, Position: board.MakePos(row, c1)})
					return true
				}
			}
		}
	}
	return false
}

// hiddenPairInColumn is the column orientation of the hidden pair.
func (s *Solver) hiddenPairInColumn(round int) bool {
	for column := range board.UnitSize {
		for valueIndex := range board.UnitSize {
			r1, r2 := unset, unset
			valCount := 0
			for row := range board.UnitSize {
				pos := board.MakePos(row, column)
				if s.Board.Possible(valueIndex, pos) {
					if r1 == unset || r1 == row {
						r1 = row
					} else if r2 == unset || r2 == row {
						r2 = row
					}
					valCount++
				}
			}
			if valCount != 2 {
				continue
			}
			for valueIndex2 := valueIndex + 1; valueIndex2 < board.UnitSize; valueIndex2++ {
				r3, r4 := unset, unset
				valCount2 := 0
				for row := range board.UnitSize {
					pos := board.MakePos(row, column)
					if s.Board.Possible(valueIndex2, pos) {
						if r3 == unset || r3 == row {
							r3 = row
						} else if r4 == unset || r4 == row {
							r4 = row
						}
						valCount2++
					}
				}
				if valCount2 != 2 || r1 != r3 || r2 != r4 {
					continue
				}
				doneSomething := false
				for valueIndex3 := range board.UnitSize {
					if valueIndex3 == valueIndex || valueIndex3 == valueIndex2 {
						continue
					}
					pos1 := board.MakePos(r1, column)
					pos2 := board.MakePos(r2, column)
					if s.Board.Eliminate(valueIndex3, pos1, round) {
						doneSomething = true
					}
					if s.Board.Eliminate(valueIndex3, pos2, round) {
						doneSomething = true
					}
				}
				if doneSomething {
					s.addHistoryItem(LogItem{Round: round, Kind: KindHiddenPairColumn, Value: valueIndex + 1, Position: board.MakePos(r1, column)})
					return true
				}
			}
		}
	}
	return false
}

// hiddenPairInSection is the section orientation of the hidden pair.
func (s *Solver) hiddenPairInSection(round int) bool {
	for section := range board.UnitSize {
		for valueIndex := range board.UnitSize {
			o1, o2 := unset, unset
			valCount := 0
			for offset := range board.UnitSize {
				pos := board.SectionCell(section, offset)
				if s.Board.Possible(valueIndex, pos) {
					if o1 == unset || o1 == offset {
						o1 = offset
					} else if o2 == unset || o2 == offset {
						o2 = offset
					}
					valCount++
				}
			}
			if valCount != 2 {
				continue
			}
			for valueIndex2 := valueIndex + 1; valueIndex2 < board.UnitSize; valueIndex2++ {
				o3, o4 := unset, unset
				valCount2 := 0
				for offset := range board.UnitSize {
					pos := board.SectionCell(section, offset)
					if s.Board.Possible(valueIndex2, pos) {
						if o3 == unset || o3 == offset {
							o3 = offset
						} else if o4 == unset || o4 == offset {
							o4 = offset
						}
						valCount2++
					}
				}
				if valCount2 != 2 || o1 != o3 || o2 != o4 {
					continue
				}
				doneSomething := false
				for valueIndex3 := range board.UnitSize {
					if valueIndex3 == valueIndex || valueIndex3 == valueIndex2 {
						continue
					}
					pos1 := board.SectionCell(section, o1)
					pos2 := board.SectionCell(section, o2)
					if s.Board.Eliminate(valueIndex3, pos1, round) {
						doneSomething = true
					}
					if s.Board.Eliminate(valueIndex3, pos2, round) {
						doneSomething = true
					}
				}
				if doneSomething {
					s.addHistoryItem(LogItem{Round: round, Kind: KindHiddenPairSection, Value: valueIndex + 1, Position: board.SectionCell(section, o1)})
					return true
				}
			}
		}
	}
	return false
}
