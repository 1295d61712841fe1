package board

// Grid geometry constants. The board is fixed at 9×9 with 3×3 sections.
const (
	GridSize         = 3
	UnitSize         = GridSize * GridSize // cells per row, column, or section
	SectionGroupSize = UnitSize * GridSize // cells per band of three sections
	CellCount        = UnitSize * UnitSize
	PossibilityCount = CellCount * UnitSize
)

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
)

// The helpers below are the geometry contract of the grid: total, branchless
// index arithmetic shared by the solver and the generator. Rows, columns, and
// sections are 0-indexed; cells are linear positions 0-80.

// RowOf returns the row in which a cell resides.
func RowOf(cell int) int {
	return cell / UnitSize
}

// ColumnOf returns the column in which a cell resides.
func ColumnOf(cell int) int {
	return cell % UnitSize
}

// SectionOf returns the 3×3 section in which a cell resides.
func SectionOf(cell int) int {
	return cell/SectionGroupSize*GridSize + ColumnOf(cell)/GridSize
}

// SectionStartOf returns the upper-left cell of the section containing cell.
func SectionStartOf(cell int) int {
	return cell/SectionGroupSize*SectionGroupSize + ColumnOf(cell)/GridSize*GridSize
}

// SectionFirstCell returns the upper-left cell of the given section.
func SectionFirstCell(section int) int {
	return section%GridSize*GridSize + section/GridSize*SectionGroupSize
}

// SectionCell returns the cell at the given offset (0-8) into a section,
// scanning the section left to right, top to bottom.
func SectionCell(section, offset int) int {
	return SectionFirstCell(section) + offset/GridSize*UnitSize + offset%GridSize
}

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= UnitSize || col < 0 || col >= UnitSize {
		return InvalidCell
	}
	return row*UnitSize + col
}

// PossibilityIndex returns the offset into the possibility table for a value
// index (0-8, one less than the digit) at a cell.
func PossibilityIndex(valueIndex, cell int) int {
	return valueIndex + UnitSize*cell
}
