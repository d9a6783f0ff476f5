package builtin

import (
	"math"
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/sirupsen/logrus"
)

const (
	// TypeComeback is the type identifier for the comeback modifier.
	TypeComeback = "builtin.comeback"

	DefaultComebackLossThreshold = 3
	DefaultComebackStepSize      = 0.25
	DefaultComebackMaxBonus      = 1.0
)

// ComebackModifier rewards breaking a qualifying losing streak: the first
// wins after a rough patch restore difficulty a little faster, scaled by
// how deep the broken streak was.
type ComebackModifier struct {
	config        modifier.Config
	lossThreshold int
	stepSize      float64
	maxBonus      float64
}

// NewComebackModifier creates a comeback modifier from its bundle.
func NewComebackModifier(config modifier.Config) (modifier.Modifier, error) {
	m := &ComebackModifier{
		config:        config,
		lossThreshold: config.GetInt("loss_threshold", DefaultComebackLossThreshold),
		stepSize:      config.GetFloat("step_size", DefaultComebackStepSize),
		maxBonus:      config.GetFloat("max_bonus", DefaultComebackMaxBonus),
	}

	logrus.Infof("creating comeback modifier: lossThreshold=%d, stepSize=%v, maxBonus=%v",
		m.lossThreshold, m.stepSize, m.maxBonus)

	return m, nil
}

// ID returns the modifier identifier.
func (m *ComebackModifier) ID() string {
	return m.config.ID
}

// Name returns the modifier name.
func (m *ComebackModifier) Name() string {
	return "Comeback Bonus"
}

// Config returns the modifier configuration.
func (m *ComebackModifier) Config() modifier.Config {
	return m.config
}

// Evaluate pays out only while a win streak is live and the streak it broke
// was deep enough to qualify.
func (m *ComebackModifier) Evaluate(data *session.Data, now time.Time) modifier.Contribution {
	if data.WinStreak < 1 || data.PrevLossStreak < m.lossThreshold {
		return modifier.NewContribution(m.Name(), 0)
	}

	value := math.Min(m.maxBonus, float64(data.PrevLossStreak)*m.stepSize)

	logrus.Debugf("comeback contribution: prevLossStreak=%d, value=%v", data.PrevLossStreak, value)

	return modifier.NewContribution(m.Name(), value)
}
