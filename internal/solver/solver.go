package solver

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kgrieve/sudoku/internal/board"
)

// log is the package default logger; override per solver via Options.Logger.
var log = logrus.New()

// Solver drives a Board through constraint propagation and randomized
// backtracking search. It owns the deduction trail and the random orders
// used to pick branch cells and guess values.
//
// A Solver is single-session, single-threaded state: it must not be shared
// across goroutines.
type Solver struct {
	// Board holds all mutable puzzle state. Exported so the generator can
	// drive clue removal and uniqueness counting directly against it.
	Board *board.Board

	// cellOrder and valueOrder are shuffled permutations consulted when
	// picking a branch cell and when trying guess values. Shuffling them
	// randomizes which of several solutions a search produces without
	// affecting correctness.
	cellOrder  [board.CellCount]int
	valueOrder [board.UnitSize]int

	rng    *rand.Rand
	logger *logrus.Logger

	// lastSolveRound is the deepest round the last solve descended to.
	lastSolveRound int

	recordHistory bool
	logHistory    bool

	// history keeps every move, including branches later rolled back.
	// instructions keeps only the moves that survive to the final solution.
	history      []LogItem
	instructions []LogItem
}

// New creates a solver for the given board.
// A nil board starts an empty session; nil options mean DefaultOptions.
func New(b *board.Board, options *Options) *Solver {
	if b == nil {
		b = board.New()
	}
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := options.Logger
	if logger == nil {
		logger = log
	}

	s := &Solver{
		Board:         b,
		rng:           rand.New(rand.NewSource(seed)),
		logger:        logger,
		recordHistory: options.RecordHistory,
		logHistory:    options.LogHistory,
	}
	for i := range s.cellOrder {
		s.cellOrder[i] = i
	}
	for i := range s.valueOrder {
		s.valueOrder[i] = i
	}
	return s
}

// SetPuzzle loads 81 given values (0 = blank) and rebuilds solving state.
// It reports false if the givens already contradict each other; in that case
// the results of a subsequent Solve are meaningless.
func (s *Solver) SetPuzzle(values [board.CellCount]int) bool {
	s.Board.SetPuzzle(values)
	return s.Reset()
}

// Reset clears any solution and history, then re-derives the solving state
// from the puzzle givens by marking each one at round 1. It reports false
// when the givens are self-contradictory (two of the same value sharing a
// row, column, or section).
func (s *Solver) Reset() bool {
	s.Board.ClearState()
	s.history = s.history[:0]
	s.instructions = s.instructions[:0]

	const round = 1
	for pos := range board.CellCount {
		value := s.Board.PuzzleAt(pos)
		if value == board.EmptyCell {
			continue
		}
		if !s.Board.Possible(value-1, pos) {
			return false
		}
		s.mark(pos, round, value)
		s.addHistoryItem(LogItem{Round: round, Kind: KindGiven, Value: value, Position: pos})
	}
	return true
}

// mark assigns a value the solver has proven (or guessed). The board's
// invariant errors signal solver bugs, not bad input, so they are fatal.
func (s *Solver) mark(pos, round, value int) {
	if err := s.Board.Mark(pos, round, value); err != nil {
		panic(err)
	}
}

// Solve attempts to solve the puzzle, populating the solution and, when
// recording is enabled, the deduction trail. It reports false when the
// puzzle has no solution.
func (s *Solver) Solve() bool {
	s.Reset()
	s.ShuffleOrders()
	return s.solveRound(2)
}

// solveRound exhausts logical deductions at the given round, then branches:
// a guess is marked at round+1 and the search continues at round+2, so odd
// rounds are guesses and even rounds are forced moves. A failed branch rolls
// back both rounds before the next candidate value is tried.
func (s *Solver) solveRound(round int) bool {
	s.lastSolveRound = round
	s.logger.Debugf("solve round %d", round)

	for s.singleSolveMove(round) {
		if s.Board.IsSolved() {
			return true
		}
		if s.Board.IsImpossible() {
			return false
		}
	}

	nextGuessRound := round + 1
	nextRound := round + 2
	for guessNumber := 0; s.guess(nextGuessRound, guessNumber); guessNumber++ {
		if s.Board.IsImpossible() || !s.solveRound(nextRound) {
			s.rollbackRound(nextRound)
			s.rollbackRound(nextGuessRound)
		} else {
			return true
		}
	}
	return false
}

// guess marks the guessNumber-th remaining candidate (in shuffled value
// order) at the cell with the fewest possibilities. It reports false when
// the cell has no further candidates to try.
func (s *Solver) guess(round, guessNumber int) bool {
	s.logger.Debugf("guess round %d, number %d", round, guessNumber)
	pos := s.positionWithFewestPossibilities()
	count := 0
	for _, valueIndex := range s.valueOrder {
		if !s.Board.Possible(valueIndex, pos) {
			continue
		}
		if count == guessNumber {
			value := valueIndex + 1
			s.addHistoryItem(LogItem{Round: round, Kind: KindGuess, Value: value, Position: pos})
			s.mark(pos, round, value)
			return true
		}
		count++
	}
	return false
}

// positionWithFewestPossibilities picks the branch cell: the unassigned cell
// with the fewest remaining candidates, scanning in shuffled order and
// keeping the first minimum found.
func (s *Solver) positionWithFewestPossibilities() int {
	minPossibilities := board.UnitSize + 1
	bestPos := 0
	for _, pos := range s.cellOrder {
		if s.Board.SolutionAt(pos) != board.EmptyCell {
			continue
		}
		if count := s.Board.CountPossibilities(pos); count < minPossibilities {
			minPossibilities = count
			bestPos = pos
		}
	}
	return bestPos
}

// HasNoSolution reports whether the puzzle has no solution at all.
func (s *Solver) HasNoSolution() bool {
	return s.countSolutionsLimited() == 0
}

// HasUniqueSolution reports whether the puzzle has exactly one solution.
func (s *Solver) HasUniqueSolution() bool {
	return s.countSolutionsLimited() == 1
}

// HasMultipleSolutions reports whether the puzzle has more than one solution.
func (s *Solver) HasMultipleSolutions() bool {
	return s.countSolutionsLimited() > 1
}

// CountSolutions counts every solution to the puzzle. The board is left as
// it was before the call.
func (s *Solver) CountSolutions() int {
	return s.countSolutions(false)
}

// countSolutionsLimited counts solutions but returns as soon as two are
// found. Much faster than CountSolutions when many solutions exist, and
// sufficient to distinguish zero, one, or multiple.
func (s *Solver) countSolutionsLimited() int {
	return s.countSolutions(true)
}

func (s *Solver) countSolutions(limitToTwo bool) int {
	// Counting explores rolled-back branches wholesale; keep that churn
	// out of the caller's deduction trail.
	recHistory, logHistory := s.recordHistory, s.logHistory
	s.SetRecordHistory(false)
	s.SetLogHistory(false)

	s.Reset()
	count := s.countSolutionsRound(2, limitToTwo)

	s.SetRecordHistory(recHistory)
	s.SetLogHistory(logHistory)
	return count
}

// countSolutionsRound is the counting variant of solveRound: every solved
// leaf adds one instead of stopping the search, rounds advance by one per
// guess level, and each level rolls its own round back on every exit so the
// board returns byte-identical to how the level found it.
func (s *Solver) countSolutionsRound(round int, limitToTwo bool) int {
	for s.singleSolveMove(round) {
		if s.Board.IsSolved() {
			s.rollbackRound(round)
			return 1
		}
		if s.Board.IsImpossible() {
			s.rollbackRound(round)
			return 0
		}
	}

	solutions := 0
	nextRound := round + 1
	for guessNumber := 0; s.guess(nextRound, guessNumber); guessNumber++ {
		solutions += s.countSolutionsRound(nextRound, limitToTwo)
		if limitToTwo && solutions >= 2 {
			s.rollbackRound(round)
			return solutions
		}
	}
	s.rollbackRound(round)
	return solutions
}

// rollbackRound undoes one round of work on the board and drops the round's
// entries from the instruction trail. The full history keeps them, preceded
// by a rollback marker.
func (s *Solver) rollbackRound(round int) {
	s.addHistoryItem(LogItem{Round: round, Kind: KindRollback, Value: NoValue, Position: NoPosition})
	s.Board.RollbackRound(round)

	// Rounds only increase during a descent and rollback always targets
	// the deepest outstanding round, so the round's items are contiguous
	// at the tail.
	for len(s.instructions) > 0 && s.instructions[len(s.instructions)-1].Round == round {
		s.instructions = s.instructions[:len(s.instructions)-1]
	}
}

// RollbackNonGuesses rolls back every even (logical) round at or after 2,
// leaving only guessed cells assigned. The generator uses this to start
// clue removal from a sparse grid, since guesses carry the information the
// deductions were derived from.
func (s *Solver) RollbackNonGuesses() {
	// Guesses are odd rounds, non-guesses are even rounds.
	for round := 2; round <= s.lastSolveRound; round += 2 {
		s.rollbackRound(round)
	}
}

// ClearPuzzle empties the puzzle givens and all derived solving state.
func (s *Solver) ClearPuzzle() {
	s.logger.Debug("clear any existing puzzle")
	s.Board.SetPuzzle([board.CellCount]int{})
	s.Reset()
}

// ShuffleOrders reshuffles the random cell and value orders so subsequent
// searches explore cells and candidate values differently.
func (s *Solver) ShuffleOrders() {
	s.rng.Shuffle(len(s.cellOrder), func(i, j int) {
		s.cellOrder[i], s.cellOrder[j] = s.cellOrder[j], s.cellOrder[i]
	})
	s.rng.Shuffle(len(s.valueOrder), func(i, j int) {
		s.valueOrder[i], s.valueOrder[j] = s.valueOrder[j], s.valueOrder[i]
	})
}

// Rng returns the solver's random source, shared with the generator so a
// single seed reproduces a whole generation session.
func (s *Solver) Rng() *rand.Rand {
	return s.rng
}

// SetRecordHistory toggles capture of the deduction trail.
func (s *Solver) SetRecordHistory(record bool) {
	s.recordHistory = record
}

// SetLogHistory toggles live logging of each deduction.
func (s *Solver) SetLogHistory(logHist bool) {
	s.logHistory = logHist
}

// RecordingHistory reports whether the deduction trail is being captured.
func (s *Solver) RecordingHistory() bool {
	return s.recordHistory
}

// LoggingHistory reports whether deductions are logged live.
func (s *Solver) LoggingHistory() bool {
	return s.logHistory
}

// SolveHistory returns all recorded moves, including those on branches that
// were later rolled back.
func (s *Solver) SolveHistory() []LogItem {
	return append([]LogItem(nil), s.history...)
}

// SolveInstructions returns only the moves that led to the final solution,
// or nil when the puzzle is not solved.
func (s *Solver) SolveInstructions() []LogItem {
	if !s.Board.IsSolved() {
		return nil
	}
	return append([]LogItem(nil), s.instructions...)
}

func (s *Solver) addHistoryItem(item LogItem) {
	if s.logHistory {
		s.logger.Info(item.String())
	}
	if s.recordHistory {
		s.history = append(s.history, item)
		s.instructions = append(s.instructions, item)
	}
}
