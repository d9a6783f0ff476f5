package builtin

import (
	"math"
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/sirupsen/logrus"
)

const (
	// TypeTimeDecay is the type identifier for the time decay modifier.
	TypeTimeDecay = "builtin.time_decay"

	DefaultTimeDecayPerDay    = 0.5
	DefaultTimeDecayMax       = 2.0
	DefaultTimeDecayGraceHour = 24.0
)

// TimeDecayModifier eases difficulty back down for players returning after
// an absence, so a tuned-up difficulty does not greet a rusty player.
type TimeDecayModifier struct {
	config      modifier.Config
	decayPerDay float64
	maxDecay    float64
	graceHours  float64
}

// NewTimeDecayModifier creates a time decay modifier from its bundle.
func NewTimeDecayModifier(config modifier.Config) (modifier.Modifier, error) {
	m := &TimeDecayModifier{
		config:      config,
		decayPerDay: config.GetFloat("decay_per_day", DefaultTimeDecayPerDay),
		maxDecay:    config.GetFloat("max_decay", DefaultTimeDecayMax),
		graceHours:  config.GetFloat("grace_hours", DefaultTimeDecayGraceHour),
	}

	logrus.Infof("creating time decay modifier: decayPerDay=%v, maxDecay=%v, graceHours=%v",
		m.decayPerDay, m.maxDecay, m.graceHours)

	return m, nil
}

// ID returns the modifier identifier.
func (m *TimeDecayModifier) ID() string {
	return m.config.ID
}

// Name returns the modifier name.
func (m *TimeDecayModifier) Name() string {
	return "Absence Decay"
}

// Config returns the modifier configuration.
func (m *TimeDecayModifier) Config() modifier.Config {
	return m.config
}

// Evaluate returns a negative contribution proportional to the days elapsed
// since the last session end, once the grace period is exceeded. Players
// with no recorded session end contribute 0.
func (m *TimeDecayModifier) Evaluate(data *session.Data, now time.Time) modifier.Contribution {
	if data.LastSessionEnd.IsZero() {
		return modifier.NewContribution(m.Name(), 0)
	}

	elapsed := now.Sub(data.LastSessionEnd)
	if elapsed <= 0 {
		return modifier.NewContribution(m.Name(), 0)
	}

	if elapsed.Hours() <= m.graceHours {
		return modifier.NewContribution(m.Name(), 0)
	}

	days := elapsed.Hours() / 24
	value := -math.Min(m.maxDecay, m.decayPerDay*days)

	logrus.Debugf("time decay contribution: elapsed=%v, value=%v", elapsed, value)

	return modifier.NewContribution(m.Name(), value)
}
