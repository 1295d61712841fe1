package generator

import (
	"fmt"
	"strings"
)

// Symmetry is the geometric transform the generator tries to preserve among
// the remaining givens while removing clues.
type Symmetry int

const (
	SymmetryNone Symmetry = iota
	SymmetryRotate90
	SymmetryRotate180
	SymmetryMirror
	SymmetryFlip
	// SymmetryRandom picks one of the four geometric transforms per puzzle.
	SymmetryRandom
)

func (sym Symmetry) String() string {
	switch sym {
	case SymmetryNone:
		return "none"
	case SymmetryRotate90:
		return "rotate90"
	case SymmetryRotate180:
		return "rotate180"
	case SymmetryMirror:
		return "mirror"
	case SymmetryFlip:
		return "flip"
	case SymmetryRandom:
		return "random"
	default:
		return fmt.Sprintf("Symmetry(%d)", int(sym))
	}
}

// ParseSymmetry converts a name like "rotate180" into a Symmetry.
func ParseSymmetry(s string) (Symmetry, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return SymmetryNone, nil
	case "rotate90":
		return SymmetryRotate90, nil
	case "rotate180":
		return SymmetryRotate180, nil
	case "mirror":
		return SymmetryMirror, nil
	case "flip":
		return SymmetryFlip, nil
	case "random":
		return SymmetryRandom, nil
	default:
		return SymmetryNone, fmt.Errorf("unknown symmetry %q (use none, rotate90, rotate180, mirror, flip, or random)", s)
	}
}
