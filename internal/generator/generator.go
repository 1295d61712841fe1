package generator

import (
	"math/rand"

	"github.com/kgrieve/sudoku/internal/board"
	"github.com/kgrieve/sudoku/internal/solver"
)

// Generator creates Sudoku puzzles with a single provable solution.
//
// Generation fills an empty board through the solver's randomized search,
// promotes the completed solution to the puzzle givens, then removes clues
// one at a time — together with their symmetric partner cells when a
// symmetry is active — for as long as the bounded solution counter still
// proves uniqueness.
type Generator struct {
	solver  *solver.Solver
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator driving the given solver.
// A nil solver gets a fresh empty session; nil options mean DefaultOptions.
func New(s *solver.Solver, options *Options) *Generator {
	if s == nil {
		s = solver.New(nil, nil)
	}
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = timeSeed()
	}

	return &Generator{
		solver:  s,
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new puzzle using the symmetry from Options.
// Afterwards the solver's board exposes only the puzzle givens.
func (g *Generator) Generate() bool {
	return g.GenerateWithSymmetry(g.options.Symmetry)
}

// GenerateWithSymmetry creates a new puzzle preserving the given symmetry
// among its clues.
func (g *Generator) GenerateWithSymmetry(sym Symmetry) bool {
	if sym == SymmetryRandom {
		sym = g.randomSymmetry()
	}
	s := g.solver

	// History capture is pure overhead here; save the caller's settings
	// and restore them once the puzzle is built.
	recHistory, logHistory := s.RecordingHistory(), s.LoggingHistory()
	s.SetRecordHistory(false)
	s.SetLogHistory(false)

	s.ClearPuzzle()

	// Solving an empty grid with shuffled orders yields a randomly filled
	// complete board.
	s.Solve()

	if sym == SymmetryNone {
		// Cells filled by logic are implied by the guessed ones, so they
		// make no contribution to uniqueness; drop them up front to start
		// clue removal from a sparse grid. Symmetric generation keeps the
		// full grid so partner groups stay intact.
		s.RollbackNonGuesses()
	}

	// Record the marked cells as the puzzle so solution counting can run
	// without losing them.
	s.Board.PromoteSolution()

	// Reshuffle so removal tests cells in a different order than the one
	// that filled them.
	s.ShuffleOrders()

	for _, pos := range g.rng.Perm(board.CellCount) {
		if s.Board.PuzzleAt(pos) == board.EmptyCell {
			continue
		}
		partners := partnerPositions(pos, sym)

		// Tentatively back the clue group out and count solutions.
		savedValue := s.Board.PuzzleAt(pos)
		s.Board.SetGiven(pos, board.EmptyCell)
		savedPartners := make([]int, len(partners))
		for i, p := range partners {
			savedPartners[i] = s.Board.PuzzleAt(p)
			s.Board.SetGiven(p, board.EmptyCell)
		}

		if s.HasMultipleSolutions() {
			// The group carried necessary information; restore it whole
			// so the symmetry stays intact across attempts.
			s.Board.SetGiven(pos, savedValue)
			for i, p := range partners {
				if savedPartners[i] != board.EmptyCell {
					s.Board.SetGiven(p, savedPartners[i])
				}
			}
		}
	}

	// Clear solution state so the board exposes only the final puzzle.
	s.Reset()

	s.SetRecordHistory(recHistory)
	s.SetLogHistory(logHistory)
	return true
}

// partnerPositions returns the symmetric partner cells of pos under the
// active symmetry. Partners may coincide with pos (the grid center); the
// caller's sequential save/clear handles that without special cases.
func partnerPositions(pos int, sym Symmetry) []int {
	row, col := board.RowOf(pos), board.ColumnOf(pos)
	last := board.UnitSize - 1
	switch sym {
	case SymmetryRotate90:
		// The full orbit: quarter turns in both directions plus the half
		// turn, so removal keeps all four cells in step.
		return []int{
			board.MakePos(last-col, row),
			board.MakePos(col, last-row),
			board.MakePos(last-row, last-col),
		}
	case SymmetryRotate180:
		return []int{board.MakePos(last-row, last-col)}
	case SymmetryMirror:
		return []int{board.MakePos(row, last-col)}
	case SymmetryFlip:
		return []int{board.MakePos(last-row, col)}
	default:
		return nil
	}
}

// randomSymmetry picks one of the four geometric transforms.
func (g *Generator) randomSymmetry() Symmetry {
	choices := [...]Symmetry{SymmetryRotate90, SymmetryRotate180, SymmetryMirror, SymmetryFlip}
	return choices[g.rng.Intn(len(choices))]
}
