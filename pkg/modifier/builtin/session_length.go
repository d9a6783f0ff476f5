package builtin

import (
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/sirupsen/logrus"
)

const (
	// TypeSessionLength is the type identifier for the session length modifier.
	TypeSessionLength = "builtin.session_length"

	DefaultSessionLengthAvgMinutes = 30.0
	DefaultSessionLengthShortRatio = 0.5
	DefaultSessionLengthLongRatio  = 1.5
	DefaultSessionLengthAdjustment = 0.3
)

// SessionLengthModifier reads engagement from the last session's length
// relative to the designer's average: a cut-short session hints at
// frustration, an unusually long one at comfortable engagement.
type SessionLengthModifier struct {
	config     modifier.Config
	avgMinutes float64
	shortRatio float64
	longRatio  float64
	adjustment float64
}

// NewSessionLengthModifier creates a session length modifier from its bundle.
func NewSessionLengthModifier(config modifier.Config) (modifier.Modifier, error) {
	m := &SessionLengthModifier{
		config:     config,
		avgMinutes: config.GetFloat("avg_session_minutes", DefaultSessionLengthAvgMinutes),
		shortRatio: config.GetFloat("short_session_ratio", DefaultSessionLengthShortRatio),
		longRatio:  config.GetFloat("long_session_ratio", DefaultSessionLengthLongRatio),
		adjustment: config.GetFloat("adjustment", DefaultSessionLengthAdjustment),
	}

	logrus.Infof("creating session length modifier: avgMinutes=%v, shortRatio=%v, longRatio=%v, adjustment=%v",
		m.avgMinutes, m.shortRatio, m.longRatio, m.adjustment)

	return m, nil
}

// ID returns the modifier identifier.
func (m *SessionLengthModifier) ID() string {
	return m.config.ID
}

// Name returns the modifier name.
func (m *SessionLengthModifier) Name() string {
	return "Session Length Adjustment"
}

// Config returns the modifier configuration.
func (m *SessionLengthModifier) Config() modifier.Config {
	return m.config
}

// Evaluate compares the last completed session length to the average.
// Players with no completed session yet contribute 0.
func (m *SessionLengthModifier) Evaluate(data *session.Data, now time.Time) modifier.Contribution {
	if data.LastSessionLength <= 0 {
		return modifier.NewContribution(m.Name(), 0)
	}

	minutes := data.LastSessionLength.Minutes()
	switch {
	case minutes < m.avgMinutes*m.shortRatio:
		logrus.Debugf("short session contribution: length=%vm, value=%v", minutes, -m.adjustment)
		return modifier.NewContribution(m.Name(), -m.adjustment)
	case minutes > m.avgMinutes*m.longRatio:
		logrus.Debugf("long session contribution: length=%vm, value=%v", minutes, m.adjustment)
		return modifier.NewContribution(m.Name(), m.adjustment)
	default:
		return modifier.NewContribution(m.Name(), 0)
	}
}
