package builtin

import (
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/sirupsen/logrus"
)

const (
	// TypeRageQuit is the type identifier for the rage quit modifier.
	TypeRageQuit = "builtin.rage_quit"

	DefaultRageQuitPenalty = 1.0
	DefaultMidPlayPenalty  = 0.3
)

// RageQuitModifier lowers difficulty after a frustrated exit. A rage quit
// takes the full penalty, a mid-play quit a smaller one; a normal quit
// contributes nothing.
type RageQuitModifier struct {
	config          modifier.Config
	rageQuitPenalty float64
	midPlayPenalty  float64
}

// NewRageQuitModifier creates a rage quit modifier from its bundle.
func NewRageQuitModifier(config modifier.Config) (modifier.Modifier, error) {
	m := &RageQuitModifier{
		config:          config,
		rageQuitPenalty: config.GetFloat("rage_quit_penalty", DefaultRageQuitPenalty),
		midPlayPenalty:  config.GetFloat("mid_play_penalty", DefaultMidPlayPenalty),
	}

	logrus.Infof("creating rage quit modifier: rageQuitPenalty=%v, midPlayPenalty=%v",
		m.rageQuitPenalty, m.midPlayPenalty)

	return m, nil
}

// ID returns the modifier identifier.
func (m *RageQuitModifier) ID() string {
	return m.config.ID
}

// Name returns the modifier name.
func (m *RageQuitModifier) Name() string {
	return "Rage Quit Relief"
}

// Config returns the modifier configuration.
func (m *RageQuitModifier) Config() modifier.Config {
	return m.config
}

// Evaluate inspects the last quit classification.
func (m *RageQuitModifier) Evaluate(data *session.Data, now time.Time) modifier.Contribution {
	switch data.LastQuit {
	case session.QuitRageQuit:
		logrus.Debugf("rage quit contribution: value=%v", -m.rageQuitPenalty)
		return modifier.NewContribution(m.Name(), -m.rageQuitPenalty)
	case session.QuitMidPlay:
		logrus.Debugf("mid-play quit contribution: value=%v", -m.midPlayPenalty)
		return modifier.NewContribution(m.Name(), -m.midPlayPenalty)
	default:
		return modifier.NewContribution(m.Name(), 0)
	}
}
