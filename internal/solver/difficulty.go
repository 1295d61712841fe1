package solver

// Difficulty is a derived rating of how hard a puzzle is, computed from the
// hardest technique that appears in the surviving deduction trail.
type Difficulty int

const (
	// DifficultyUnknown is reported when no trail is available, e.g. when
	// history recording was off or the puzzle has not been solved.
	DifficultyUnknown Difficulty = iota
	DifficultySimple
	DifficultyEasy
	DifficultyMedium
	DifficultyExpert
)

func (d Difficulty) String() string {
	switch d {
	case DifficultySimple:
		return "Simple"
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyExpert:
		return "Expert"
	default:
		return "Unknown"
	}
}

// Difficulty rates the puzzle from the instruction trail of the last solve.
// It reports DifficultyUnknown unless the puzzle was solved with history
// recording enabled. Technique precedence, hardest first: guess, then the
// pair/intersection reductions, then hidden singles, then singles.
func (s *Solver) Difficulty() Difficulty {
	switch {
	case s.guessCount() > 0:
		return DifficultyExpert
	case s.boxLineReductionCount() > 0:
		return DifficultyMedium
	case s.pointingPairTripleCount() > 0:
		return DifficultyMedium
	case s.hiddenPairCount() > 0:
		return DifficultyMedium
	case s.nakedPairCount() > 0:
		return DifficultyMedium
	case s.hiddenSingleCount() > 0:
		return DifficultyEasy
	case s.singleCount() > 0:
		return DifficultySimple
	default:
		return DifficultyUnknown
	}
}

// The counters below scan the surviving instructions, not the full history,
// so rolled-back branches never influence the rating.

func (s *Solver) singleCount() int {
	return countKinds(s.instructions, KindSingle)
}

func (s *Solver) hiddenSingleCount() int {
	return countKinds(s.instructions,
		KindHiddenSingleRow, KindHiddenSingleColumn, KindHiddenSingleSection)
}

func (s *Solver) nakedPairCount() int {
	return countKinds(s.instructions,
		KindNakedPairRow, KindNakedPairColumn, KindNakedPairSection)
}

func (s *Solver) hiddenPairCount() int {
	return countKinds(s.instructions,
		KindHiddenPairRow, KindHiddenPairColumn, KindHiddenPairSection)
}

func (s *Solver) pointingPairTripleCount() int {
	return countKinds(s.instructions,
		KindPointingPairTripleRow, KindPointingPairTripleColumn)
}

func (s *Solver) boxLineReductionCount() int {
	return countKinds(s.instructions, KindRowBoxReduction, KindColumnBoxReduction)
}

func (s *Solver) guessCount() int {
	return countKinds(s.instructions, KindGuess)
}

func (s *Solver) backtrackCount() int {
	return countKinds(s.history, KindRollback)
}
