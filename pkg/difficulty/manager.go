package difficulty

import (
	"fmt"
	"math"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/sirupsen/logrus"
)

// Bounds holds the global difficulty configuration.
type Bounds struct {
	Min                 float64 `yaml:"min" json:"min"`
	Max                 float64 `yaml:"max" json:"max"`
	Default             float64 `yaml:"default" json:"default"`
	MaxChangePerSession float64 `yaml:"maxChangePerSession" json:"maxChangePerSession"`
}

// Manager is the pure difficulty calculation core. It holds configuration
// only; the current difficulty value is owned by the caller, which keeps the
// manager safely shareable across sessions.
type Manager struct {
	bounds     Bounds
	boundaries []Boundary
}

// NewManager creates a manager, failing fast on malformed configuration.
// A nil boundary table falls back to DefaultBoundaries.
func NewManager(bounds Bounds, boundaries []Boundary) (*Manager, error) {
	if bounds.Min >= bounds.Max {
		return nil, fmt.Errorf("difficulty min (%v) must be below max (%v)", bounds.Min, bounds.Max)
	}
	if bounds.Default < bounds.Min || bounds.Default > bounds.Max {
		return nil, fmt.Errorf("default difficulty %v outside bounds [%v, %v]", bounds.Default, bounds.Min, bounds.Max)
	}
	if bounds.MaxChangePerSession <= 0 {
		return nil, fmt.Errorf("maxChangePerSession must be positive, got %v", bounds.MaxChangePerSession)
	}

	if boundaries == nil {
		boundaries = DefaultBoundaries()
	}
	if err := validateBoundaries(boundaries); err != nil {
		return nil, fmt.Errorf("invalid level boundaries: %w", err)
	}

	logrus.Infof("difficulty manager created: bounds=[%v, %v], default=%v, maxChange=%v",
		bounds.Min, bounds.Max, bounds.Default, bounds.MaxChangePerSession)

	return &Manager{
		bounds:     bounds,
		boundaries: boundaries,
	}, nil
}

// CalculateDifficulty combines the current value with the modifier
// contributions: the contributions are summed, the net change magnitude is
// capped to MaxChangePerSession preserving sign, and the result is clamped
// to the global bounds. An empty contribution list returns current
// unchanged.
func (m *Manager) CalculateDifficulty(current float64, contributions []modifier.Contribution) float64 {
	if len(contributions) == 0 {
		return current
	}

	var delta float64
	for _, c := range contributions {
		delta += c.Value
		logrus.Debugf("contribution %s: %v", c.Name, c.Value)
	}

	if math.Abs(delta) > m.bounds.MaxChangePerSession {
		capped := math.Copysign(m.bounds.MaxChangePerSession, delta)
		logrus.Debugf("net change %v capped to %v", delta, capped)
		delta = capped
	}

	return m.ClampDifficulty(current + delta)
}

// ClampDifficulty clamps a value to the global bounds. Idempotent.
func (m *Manager) ClampDifficulty(value float64) float64 {
	if value < m.bounds.Min {
		return m.bounds.Min
	}
	if value > m.bounds.Max {
		return m.bounds.Max
	}
	return value
}

// LevelFor classifies a difficulty value into its tier.
func (m *Manager) LevelFor(value float64) Level {
	for _, b := range m.boundaries {
		if value < b.UpTo {
			return b.Level
		}
	}
	// Unreachable: the table is validated to end at +Inf.
	return m.boundaries[len(m.boundaries)-1].Level
}

// DefaultDifficulty returns the configured default value.
func (m *Manager) DefaultDifficulty() float64 {
	return m.bounds.Default
}

// Bounds returns the manager's global configuration.
func (m *Manager) Bounds() Bounds {
	return m.bounds
}
