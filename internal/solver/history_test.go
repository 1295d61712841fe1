package solver

import (
	"strings"
	"testing"
)

func TestLogItemString(t *testing.T) {
	tests := []struct {
		item LogItem
		want string
	}{
		{
			LogItem{Round: 1, Kind: KindGiven, Value: 5, Position: 0},
			"Round: 1 - Mark given (Row: 1 - Column: 1 - Value: 5)",
		},
		{
			LogItem{Round: 2, Kind: KindSingle, Value: 9, Position: 80},
			"Round: 2 - Mark only possibility for cell (Row: 9 - Column: 9 - Value: 9)",
		},
		{
			LogItem{Round: 3, Kind: KindGuess, Value: 4, Position: 40},
			"Round: 3 - Mark guess (start round) (Row: 5 - Column: 5 - Value: 4)",
		},
		{
			LogItem{Round: 4, Kind: KindRollback, Value: NoValue, Position: NoPosition},
			"Round: 4 - Roll back round",
		},
	}
	for _, tt := range tests {
		if got := tt.item.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLogItemRowColumn(t *testing.T) {
	item := LogItem{Round: 2, Kind: KindSingle, Value: 3, Position: 40}
	if row, ok := item.Row(); !ok || row != 5 {
		t.Errorf("Row() = %d, %v, want 5, true", row, ok)
	}
	if col, ok := item.Column(); !ok || col != 5 {
		t.Errorf("Column() = %d, %v, want 5, true", col, ok)
	}

	rollback := LogItem{Round: 2, Kind: KindRollback, Value: NoValue, Position: NoPosition}
	if _, ok := rollback.Row(); ok {
		t.Error("Row() reported a position for a rollback item")
	}
	if _, ok := rollback.Column(); ok {
		t.Error("Column() reported a position for a rollback item")
	}
}

func TestSolveHistoryRecording(t *testing.T) {
	s := newTestSolver(t, fixturePuzzle, &Options{Seed: 1, RecordHistory: true})
	if !s.Solve() {
		t.Fatal("Solve failed")
	}

	instructions := s.SolveInstructions()
	if len(instructions) == 0 {
		t.Fatal("no instructions recorded")
	}

	// Givens come first, marked at round 1.
	givens := s.Board.GivenCount()
	for i := 0; i < givens; i++ {
		if instructions[i].Kind != KindGiven || instructions[i].Round != 1 {
			t.Fatalf("instruction %d = %s, want a round-1 given", i, instructions[i])
		}
	}

	// The solution has 81 cells, so the trail must place the other
	// 81-givens values after the givens.
	placed := countKinds(instructions, KindGiven, KindSingle,
		KindHiddenSingleRow, KindHiddenSingleColumn, KindHiddenSingleSection, KindGuess)
	if placed != 81 {
		t.Errorf("instructions place %d values, want 81", placed)
	}

	// Surviving instructions never contain rollbacks.
	if n := countKinds(instructions, KindRollback); n != 0 {
		t.Errorf("instructions contain %d rollbacks, want 0", n)
	}

	// The full history holds at least as much as the instruction trail.
	if h := s.SolveHistory(); len(h) < len(instructions) {
		t.Errorf("history has %d items, fewer than %d instructions", len(h), len(instructions))
	}
}

func TestSolveInstructionsNilWhenUnsolved(t *testing.T) {
	s := newTestSolver(t, fixtureNoSolution, &Options{Seed: 1, RecordHistory: true})
	s.Solve()
	if got := s.SolveInstructions(); got != nil {
		t.Errorf("SolveInstructions() = %d items for an unsolved puzzle, want nil", len(got))
	}
}

func TestHistoryOffByDefault(t *testing.T) {
	s := newTestSolver(t, fixturePuzzle, &Options{Seed: 1})
	if !s.Solve() {
		t.Fatal("Solve failed")
	}
	if got := s.SolveInstructions(); len(got) != 0 {
		t.Errorf("SolveInstructions() recorded %d items with recording off", len(got))
	}
	if d := s.Difficulty(); d != DifficultyUnknown {
		t.Errorf("Difficulty = %s without a recorded trail, want Unknown", d)
	}
}

func TestLogKindStringsAreDistinct(t *testing.T) {
	kinds := []LogKind{
		KindGiven, KindSingle, KindHiddenSingleRow, KindHiddenSingleColumn,
		KindHiddenSingleSection, KindGuess, KindRollback, KindNakedPairRow,
		KindNakedPairColumn, KindNakedPairSection, KindPointingPairTripleRow,
		KindPointingPairTripleColumn, KindRowBoxReduction, KindColumnBoxReduction,
		KindHiddenPairRow, KindHiddenPairColumn, KindHiddenPairSection,
	}
	seen := map[string]LogKind{}
	for _, k := range kinds {
		s := k.String()
		if strings.HasPrefix(s, "LogKind(") {
			t.Errorf("%d has no description", int(k))
		}
		if prev, dup := seen[s]; dup {
			t.Errorf("kinds %d and %d share description %q", int(prev), int(k), s)
		}
		seen[s] = k
	}
}
