package solver

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures a Solver.
type Options struct {
	// Seed for the random cell and value orders (0 = time-based).
	// Two solvers with the same seed and puzzle explore identical branches.
	Seed int64

	// RecordHistory keeps the deduction trail for difficulty rating,
	// statistics, and history printing.
	RecordHistory bool

	// LogHistory emits each deduction at Info level as it happens.
	LogHistory bool

	// Logger receives history and trace output. nil means the package
	// default logger.
	Logger *logrus.Logger
}

// DefaultOptions returns standard solver options: time-seeded randomness and
// no history capture.
func DefaultOptions() *Options {
	return &Options{
		Seed: time.Now().UnixNano(),
	}
}
