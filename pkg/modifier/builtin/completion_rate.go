package builtin

import (
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/sirupsen/logrus"
)

const (
	// TypeCompletionRate is the type identifier for the completion rate modifier.
	TypeCompletionRate = "builtin.completion_rate"

	DefaultCompletionLowThreshold  = 0.3
	DefaultCompletionHighThreshold = 0.6
	DefaultCompletionAdjustment    = 0.5
	DefaultCompletionMinSamples    = 5
)

// CompletionRateModifier nudges difficulty based on overall win rate: a
// dominant player gets a bump, a struggling one gets relief. It stays
// silent until enough games have been recorded to make the rate meaningful.
type CompletionRateModifier struct {
	config        modifier.Config
	lowThreshold  float64
	highThreshold float64
	adjustment    float64
	minSamples    int
}

// NewCompletionRateModifier creates a completion rate modifier from its bundle.
func NewCompletionRateModifier(config modifier.Config) (modifier.Modifier, error) {
	m := &CompletionRateModifier{
		config:        config,
		lowThreshold:  config.GetFloat("low_threshold", DefaultCompletionLowThreshold),
		highThreshold: config.GetFloat("high_threshold", DefaultCompletionHighThreshold),
		adjustment:    config.GetFloat("adjustment", DefaultCompletionAdjustment),
		minSamples:    config.GetInt("min_samples", DefaultCompletionMinSamples),
	}

	logrus.Infof("creating completion rate modifier: low=%v, high=%v, adjustment=%v, minSamples=%d",
		m.lowThreshold, m.highThreshold, m.adjustment, m.minSamples)

	return m, nil
}

// ID returns the modifier identifier.
func (m *CompletionRateModifier) ID() string {
	return m.config.ID
}

// Name returns the modifier name.
func (m *CompletionRateModifier) Name() string {
	return "Completion Rate Adjustment"
}

// Config returns the modifier configuration.
func (m *CompletionRateModifier) Config() modifier.Config {
	return m.config
}

// Evaluate compares the player's win rate against the configured bands.
func (m *CompletionRateModifier) Evaluate(data *session.Data, now time.Time) modifier.Contribution {
	if data.TotalGames() < m.minSamples {
		return modifier.NewContribution(m.Name(), 0)
	}

	rate := data.WinRate()
	switch {
	case rate > m.highThreshold:
		logrus.Debugf("completion rate contribution: rate=%v, value=%v", rate, m.adjustment)
		return modifier.NewContribution(m.Name(), m.adjustment)
	case rate < m.lowThreshold:
		logrus.Debugf("completion rate contribution: rate=%v, value=%v", rate, -m.adjustment)
		return modifier.NewContribution(m.Name(), -m.adjustment)
	default:
		return modifier.NewContribution(m.Name(), 0)
	}
}
