package solver

// Stats summarizes one recorded solve: how many of each technique the
// surviving deduction trail used, plus the backtrack count from the full
// history. Valid only after Solve with history recording enabled.
type Stats struct {
	Difficulty          Difficulty
	Givens              int
	Singles             int
	HiddenSingles       int
	NakedPairs          int
	HiddenPairs         int
	PointingPairTriples int
	BoxLineReductions   int
	Guesses             int
	Backtracks          int
}

// Stats gathers statistics from the last solve.
func (s *Solver) Stats() Stats {
	return Stats{
		Difficulty:          s.Difficulty(),
		Givens:              s.Board.GivenCount(),
		Singles:             s.singleCount(),
		HiddenSingles:       s.hiddenSingleCount(),
		NakedPairs:          s.nakedPairCount(),
		HiddenPairs:         s.hiddenPairCount(),
		PointingPairTriples: s.pointingPairTripleCount(),
		BoxLineReductions:   s.boxLineReductionCount(),
		Guesses:             s.guessCount(),
		Backtracks:          s.backtrackCount(),
	}
}
