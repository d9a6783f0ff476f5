package builtin

import (
	"math"
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/sirupsen/logrus"
)

const (
	// TypeLosingStreak is the type identifier for the losing streak modifier.
	TypeLosingStreak = "builtin.losing_streak"

	DefaultLosingStreakThreshold    = 3
	DefaultLosingStreakStepSize     = 0.5
	DefaultLosingStreakMaxReduction = 2.0
)

// LosingStreakModifier lowers difficulty while the player keeps losing,
// the mirror of the win streak modifier.
type LosingStreakModifier struct {
	config       modifier.Config
	threshold    int
	stepSize     float64
	maxReduction float64
}

// NewLosingStreakModifier creates a losing streak modifier from its bundle.
func NewLosingStreakModifier(config modifier.Config) (modifier.Modifier, error) {
	m := &LosingStreakModifier{
		config:       config,
		threshold:    config.GetInt("threshold", DefaultLosingStreakThreshold),
		stepSize:     config.GetFloat("step_size", DefaultLosingStreakStepSize),
		maxReduction: config.GetFloat("max_reduction", DefaultLosingStreakMaxReduction),
	}

	logrus.Infof("creating losing streak modifier: threshold=%d, stepSize=%v, maxReduction=%v",
		m.threshold, m.stepSize, m.maxReduction)

	return m, nil
}

// ID returns the modifier identifier.
func (m *LosingStreakModifier) ID() string {
	return m.config.ID
}

// Name returns the modifier name.
func (m *LosingStreakModifier) Name() string {
	return "Losing Streak Relief"
}

// Config returns the modifier configuration.
func (m *LosingStreakModifier) Config() modifier.Config {
	return m.config
}

// Evaluate returns a negative contribution once the loss streak reaches the
// threshold, growing per extra loss down to -maxReduction.
func (m *LosingStreakModifier) Evaluate(data *session.Data, now time.Time) modifier.Contribution {
	if data.LossStreak < m.threshold {
		return modifier.NewContribution(m.Name(), 0)
	}

	steps := float64(data.LossStreak-m.threshold) + 1
	value := -math.Min(m.maxReduction, steps*m.stepSize)

	logrus.Debugf("losing streak contribution: streak=%d, threshold=%d, value=%v",
		data.LossStreak, m.threshold, value)

	return modifier.NewContribution(m.Name(), value)
}
