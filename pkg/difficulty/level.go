package difficulty

import (
	"fmt"
	"math"
)

// Level is the discrete tier a difficulty value classifies into. It is
// always derived from the underlying value and never stored on its own.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Boundary maps a level to its exclusive upper bound: a value classifies
// into the first boundary whose UpTo it is strictly below. The final
// boundary uses +Inf so the table is total over the whole range.
type Boundary struct {
	Level Level   `yaml:"level" json:"level"`
	UpTo  float64 `yaml:"upTo" json:"upTo"`
}

// DefaultBoundaries returns the standard three-tier table:
// easy < 4 <= medium < 7 <= hard.
func DefaultBoundaries() []Boundary {
	return []Boundary{
		{Level: LevelEasy, UpTo: 4},
		{Level: LevelMedium, UpTo: 7},
		{Level: LevelHard, UpTo: math.Inf(1)},
	}
}

// validateBoundaries checks the table is non-empty, strictly increasing and
// total (ends at +Inf), so every value lands in exactly one tier.
func validateBoundaries(boundaries []Boundary) error {
	if len(boundaries) == 0 {
		return fmt.Errorf("boundary table must not be empty")
	}

	prev := math.Inf(-1)
	for i, b := range boundaries {
		if b.Level == "" {
			return fmt.Errorf("boundary %d has empty level", i)
		}
		if b.UpTo <= prev {
			return fmt.Errorf("boundary table must be strictly increasing: %v after %v", b.UpTo, prev)
		}
		prev = b.UpTo
	}

	if !math.IsInf(boundaries[len(boundaries)-1].UpTo, 1) {
		return fmt.Errorf("last boundary must be +Inf to cover the full range")
	}

	return nil
}
