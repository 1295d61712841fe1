package generator

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/kgrieve/sudoku/internal/board"
	"github.com/kgrieve/sudoku/internal/solver"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestGenerator(seed int64, sym Symmetry) (*Generator, *solver.Solver) {
	s := solver.New(board.New(), &solver.Options{Seed: seed, Logger: quietLogger()})
	g := New(s, &Options{Symmetry: sym, Seed: seed})
	return g, s
}

func TestGenerateProducesUniquePuzzles(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, s := newTestGenerator(seed, SymmetryNone)
		if !g.Generate() {
			t.Fatalf("seed %d: Generate failed", seed)
		}

		puzzle := s.Board.Puzzle()
		if !board.ValidGrid(puzzle) {
			t.Errorf("seed %d: generated puzzle violates constraints", seed)
		}

		givens := s.Board.GivenCount()
		if givens == 0 || givens >= board.CellCount {
			t.Errorf("seed %d: %d givens, want a proper puzzle", seed, givens)
		}

		check := solver.New(board.New(), &solver.Options{Seed: seed, Logger: quietLogger()})
		if !check.SetPuzzle(puzzle) {
			t.Fatalf("seed %d: generated puzzle has contradictory givens", seed)
		}
		if !check.HasUniqueSolution() {
			t.Errorf("seed %d: generated puzzle does not have a unique solution", seed)
		}
	}
}

func TestGenerateIsSolvable(t *testing.T) {
	g, s := newTestGenerator(11, SymmetryNone)
	if !g.Generate() {
		t.Fatal("Generate failed")
	}
	if !s.Solve() {
		t.Fatal("generated puzzle did not solve")
	}
	if !board.IsComplete(s.Board.Solution()) {
		t.Error("solving the generated puzzle did not complete the grid")
	}
}

func TestGeneratePreservesSymmetry(t *testing.T) {
	symmetries := []Symmetry{SymmetryRotate90, SymmetryRotate180, SymmetryMirror, SymmetryFlip}
	for _, sym := range symmetries {
		t.Run(sym.String(), func(t *testing.T) {
			g, s := newTestGenerator(21, sym)
			if !g.Generate() {
				t.Fatal("Generate failed")
			}

			puzzle := s.Board.Puzzle()
			for pos := range board.CellCount {
				if puzzle[pos] == board.EmptyCell {
					continue
				}
				for _, p := range partnerPositions(pos, sym) {
					if puzzle[p] == board.EmptyCell {
						t.Fatalf("cell %d is a given but its partner %d is empty", pos, p)
					}
				}
			}
		})
	}
}

func TestGenerateWithRandomSymmetryIsUnique(t *testing.T) {
	g, s := newTestGenerator(31, SymmetryRandom)
	if !g.Generate() {
		t.Fatal("Generate failed")
	}

	check := solver.New(board.New(), &solver.Options{Seed: 31, Logger: quietLogger()})
	if !check.SetPuzzle(s.Board.Puzzle()) {
		t.Fatal("generated puzzle has contradictory givens")
	}
	if !check.HasUniqueSolution() {
		t.Error("random-symmetry puzzle does not have a unique solution")
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	gen := func() [board.CellCount]int {
		g, s := newTestGenerator(7, SymmetryRotate180)
		if !g.Generate() {
			t.Fatal("Generate failed")
		}
		return s.Board.Puzzle()
	}
	if gen() != gen() {
		t.Error("same seed produced different puzzles")
	}
}

func TestGenerateRestoresHistorySettings(t *testing.T) {
	s := solver.New(board.New(), &solver.Options{Seed: 9, RecordHistory: true, Logger: quietLogger()})
	g := New(s, &Options{Seed: 9})
	if !g.Generate() {
		t.Fatal("Generate failed")
	}
	if !s.RecordingHistory() {
		t.Error("Generate left history recording disabled")
	}
}

func TestPartnerPositions(t *testing.T) {
	corner := board.MakePos(0, 0)
	center := board.MakePos(4, 4)

	if got := partnerPositions(corner, SymmetryRotate180); len(got) != 1 || got[0] != board.MakePos(8, 8) {
		t.Errorf("rotate180 partner of corner = %v, want [80]", got)
	}
	if got := partnerPositions(board.MakePos(2, 1), SymmetryMirror); len(got) != 1 || got[0] != board.MakePos(2, 7) {
		t.Errorf("mirror partner of (2,1) = %v, want [(2,7)]", got)
	}
	if got := partnerPositions(board.MakePos(2, 1), SymmetryFlip); len(got) != 1 || got[0] != board.MakePos(6, 1) {
		t.Errorf("flip partner of (2,1) = %v, want [(6,1)]", got)
	}

	got := partnerPositions(board.MakePos(0, 2), SymmetryRotate90)
	want := []int{board.MakePos(6, 0), board.MakePos(2, 8), board.MakePos(8, 6)}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("rotate90 partners of (0,2) = %v, want %v", got, want)
	}

	// The grid center is its own partner under every transform.
	for _, sym := range []Symmetry{SymmetryRotate90, SymmetryRotate180, SymmetryMirror, SymmetryFlip} {
		for _, p := range partnerPositions(center, sym) {
			if p != center {
				t.Errorf("%s partner of the center = %d, want %d", sym, p, center)
			}
		}
	}

	if got := partnerPositions(corner, SymmetryNone); got != nil {
		t.Errorf("partners under no symmetry = %v, want nil", got)
	}
}

func TestParseSymmetry(t *testing.T) {
	for _, sym := range []Symmetry{
		SymmetryNone, SymmetryRotate90, SymmetryRotate180,
		SymmetryMirror, SymmetryFlip, SymmetryRandom,
	} {
		got, err := ParseSymmetry(sym.String())
		if err != nil {
			t.Errorf("ParseSymmetry(%q) failed: %v", sym, err)
		}
		if got != sym {
			t.Errorf("ParseSymmetry(%q) = %s", sym, got)
		}
	}
	if _, err := ParseSymmetry("diagonal"); err == nil {
		t.Error("ParseSymmetry accepted an unknown name")
	}
}
