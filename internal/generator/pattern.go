package generator

import "fmt"

// PatternKind identifies the placement algorithm used for a row.
type PatternKind int

const (
	PatternGap         PatternKind = iota // One gap in an otherwise solid row
	PatternRandom                         // Scattered blocks with jumpable spacing
	PatternAlternating                    // One block hugging the left or right wall
	PatternZigZag                         // Blocks alternating sides per section
)

// AllPatterns lists every pattern in selector order.
var AllPatterns = []PatternKind{PatternGap, PatternRandom, PatternAlternating, PatternZigZag}

// String returns a human-readable name for the pattern.
func (k PatternKind) String() string {
	switch k {
	case PatternGap:
		return "gap"
	case PatternRandom:
		return "random"
	case PatternAlternating:
		return "alternating"
	case PatternZigZag:
		return "zigzag"
	default:
		return fmt.Sprintf("pattern(%d)", int(k))
	}
}

// ParsePattern is the inverse of String.
func ParsePattern(s string) (PatternKind, bool) {
	for _, k := range AllPatterns {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// MarshalYAML encodes the pattern by name.
func (k PatternKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// SelectPattern maps a row index and a roll in {0, 1} to a pattern.
// Selectors outside 0..3 fall back to Random.
func SelectPattern(rowIndex, roll int) PatternKind {
	switch rowIndex%3 + roll {
	case 0:
		return PatternGap
	case 1:
		return PatternRandom
	case 2:
		return PatternAlternating
	case 3:
		return PatternZigZag
	default:
		return PatternRandom
	}
}

// choosePattern draws the roll for SelectPattern from src.
func choosePattern(rowIndex int, src Source) PatternKind {
	return SelectPattern(rowIndex, randInt(src, 0, 2))
}
