package builtin

import (
	"math"
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/sirupsen/logrus"
)

const (
	// TypeWinStreak is the type identifier for the win streak modifier.
	TypeWinStreak = "builtin.win_streak"

	// Default parameters, used when the bundle omits a value.
	DefaultWinStreakThreshold = 3
	DefaultWinStreakStepSize  = 0.5
	DefaultWinStreakMaxBonus  = 2.0
)

// WinStreakModifier raises difficulty while the player keeps winning.
// Below the threshold it contributes exactly 0.
type WinStreakModifier struct {
	config    modifier.Config
	threshold int
	stepSize  float64
	maxBonus  float64
}

// NewWinStreakModifier creates a win streak modifier from its bundle.
func NewWinStreakModifier(config modifier.Config) (modifier.Modifier, error) {
	m := &WinStreakModifier{
		config:    config,
		threshold: config.GetInt("threshold", DefaultWinStreakThreshold),
		stepSize:  config.GetFloat("step_size", DefaultWinStreakStepSize),
		maxBonus:  config.GetFloat("max_bonus", DefaultWinStreakMaxBonus),
	}

	logrus.Infof("creating win streak modifier: threshold=%d, stepSize=%v, maxBonus=%v",
		m.threshold, m.stepSize, m.maxBonus)

	return m, nil
}

// ID returns the modifier identifier.
func (m *WinStreakModifier) ID() string {
	return m.config.ID
}

// Name returns the modifier name.
func (m *WinStreakModifier) Name() string {
	return "Win Streak Bonus"
}

// Config returns the modifier configuration.
func (m *WinStreakModifier) Config() modifier.Config {
	return m.config
}

// Evaluate returns a positive contribution once the win streak reaches the
// threshold, growing per extra win up to maxBonus.
func (m *WinStreakModifier) Evaluate(data *session.Data, now time.Time) modifier.Contribution {
	if data.WinStreak < m.threshold {
		return modifier.NewContribution(m.Name(), 0)
	}

	steps := float64(data.WinStreak-m.threshold) + 1
	value := math.Min(m.maxBonus, steps*m.stepSize)

	logrus.Debugf("win streak contribution: streak=%d, threshold=%d, value=%v",
		data.WinStreak, m.threshold, value)

	return modifier.NewContribution(m.Name(), value)
}
