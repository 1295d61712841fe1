package cmd

import (
	"strings"
	"testing"

	"github.com/kgrieve/sudoku/internal/board"
)

const samplePuzzle = "2.....19.3...9..2....2.53.7.......3...8..6........18...65.1..8...7..3..6..96....5"

func sampleGrid(t *testing.T) [board.CellCount]int {
	t.Helper()
	values, err := parsePuzzle(samplePuzzle)
	if err != nil {
		t.Fatalf("parsePuzzle failed: %v", err)
	}
	return values
}

func TestParsePuzzle(t *testing.T) {
	values := sampleGrid(t)
	if values[0] != 2 || values[1] != 0 || values[80] != 5 {
		t.Errorf("parsed values wrong at the edges: %d %d %d", values[0], values[1], values[80])
	}

	// '0' is an accepted blank marker.
	zeros, err := parsePuzzle(strings.ReplaceAll(samplePuzzle, ".", "0"))
	if err != nil {
		t.Fatalf("parsePuzzle rejected '0' blanks: %v", err)
	}
	if zeros != values {
		t.Error("'0' and '.' blanks parsed differently")
	}
}

func TestParsePuzzleErrors(t *testing.T) {
	if _, err := parsePuzzle(samplePuzzle[:80]); err == nil {
		t.Error("parsePuzzle accepted 80 cells")
	}
	if _, err := parsePuzzle(samplePuzzle + "1"); err == nil {
		t.Error("parsePuzzle accepted 82 cells")
	}
	if _, err := parsePuzzle(strings.Replace(samplePuzzle, ".", "x", 1)); err == nil {
		t.Error("parsePuzzle accepted an invalid character")
	}
}

func TestGridStringRoundTrips(t *testing.T) {
	values := sampleGrid(t)
	for _, style := range []printStyle{styleOneLine, styleCompact, styleReadable, styleCSV} {
		rendered := gridString(values, style)
		parsed, err := parsePuzzle(rendered)
		if err != nil {
			t.Errorf("style %d: parsePuzzle rejected rendered grid: %v", style, err)
			continue
		}
		if parsed != values {
			t.Errorf("style %d: grid did not round-trip", style)
		}
	}
}

func TestGridStringOneLine(t *testing.T) {
	values := sampleGrid(t)
	if got, want := gridString(values, styleOneLine), samplePuzzle+"\n"; got != want {
		t.Errorf("gridString one-line = %q, want %q", got, want)
	}
}

func TestGridStringReadableLayout(t *testing.T) {
	values := sampleGrid(t)
	lines := strings.Split(strings.TrimRight(gridString(values, styleReadable), "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("readable grid has %d lines, want 11 (9 rows + 2 rules)", len(lines))
	}
	if lines[3] != "-------|-------|-------" {
		t.Errorf("line 4 = %q, want a section rule", lines[3])
	}
	if lines[0] != " 2 . . | . . . | 1 9 ." {
		t.Errorf("line 1 = %q", lines[0])
	}
}

func TestParsePrintStyle(t *testing.T) {
	tests := []struct {
		name string
		want printStyle
	}{
		{"one-line", styleOneLine},
		{"oneline", styleOneLine},
		{"compact", styleCompact},
		{"Readable", styleReadable},
		{"csv", styleCSV},
	}
	for _, tt := range tests {
		got, err := parsePrintStyle(tt.name)
		if err != nil {
			t.Errorf("parsePrintStyle(%q) failed: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("parsePrintStyle(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
	if _, err := parsePrintStyle("fancy"); err == nil {
		t.Error("parsePrintStyle accepted an unknown style")
	}
}
