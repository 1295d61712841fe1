package generator

import "time"

// Options configures puzzle generation behavior.
type Options struct {
	// Symmetry to preserve among the remaining givens.
	Symmetry Symmetry

	// Seed for the clue-removal order (0 = random).
	Seed int64
}

// DefaultOptions returns standard generator options: no symmetry, time-based
// seed.
func DefaultOptions() *Options {
	return &Options{
		Symmetry: SymmetryNone,
		Seed:     0,
	}
}

// timeSeed is the fallback when Options.Seed is zero.
func timeSeed() int64 {
	return time.Now().UnixNano()
}
