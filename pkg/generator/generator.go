package generator

import (
	"fmt"
	"math"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/difficulty"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier/builtin"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/stats"
	"github.com/sirupsen/logrus"
)

// Safe ranges for generated parameters. Every derived value is clamped into
// one of these at generation time, so even pathological (but valid) game
// statistics cannot produce a runaway or negligible modifier.
const (
	minStepSize = 0.1
	maxStepSize = 2.0

	minStreakLimit = 0.5
	maxStreakLimit = 5.0

	minDecayPerDay = 0.1
	maxDecayPerDay = 2.0
	minDecayLimit  = 0.5
	maxDecayLimit  = 5.0
	maxGraceHours  = 48.0

	minQuitPenalty     = 0.3
	maxQuitPenalty     = 3.0
	minMidPlayPenalty  = 0.1
	maxMidPlayPenalty  = 1.0
	lowCompletionBand  = 0.3
	highCompletionBand = 0.6
	minCompletionAdj   = 0.1
	maxCompletionAdj   = 1.5
	minSampleFloor     = 5

	shortSessionRatio = 0.5
	longSessionRatio  = 1.5
	minSessionAdj     = 0.1
	maxSessionAdj     = 1.0

	minComebackStep  = 0.05
	maxComebackStep  = 1.0
	minComebackBonus = 0.3
	maxComebackBonus = 2.0
)

// ConfigBundle is the full output of config generation: global bounds plus
// the ordered parameter bundles for all seven built-in modifiers.
type ConfigBundle struct {
	Bounds    difficulty.Bounds
	Modifiers []modifier.Config
}

// GenerateAllConfigs derives the complete configuration bundle from game
// statistics. It is a pure function: identical stats yield identical
// bundles, and it touches no existing configuration — on validation failure
// the caller's prior bundle stays intact.
func GenerateAllConfigs(gs stats.GameStats) (*ConfigBundle, error) {
	if err := gs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game stats: %w", err)
	}

	r := gs.DifficultyRange()

	bundle := &ConfigBundle{
		Bounds: difficulty.Bounds{
			Min:                 gs.DifficultyMin,
			Max:                 gs.DifficultyMax,
			Default:             gs.DifficultyDefault,
			MaxChangePerSession: gs.MaxDifficultyChangePerSession,
		},
		Modifiers: []modifier.Config{
			winStreakConfig(gs, r),
			losingStreakConfig(gs, r),
			timeDecayConfig(gs),
			rageQuitConfig(r),
			completionRateConfig(gs),
			sessionLengthConfig(gs, r),
			comebackConfig(gs, r),
		},
	}

	logrus.Infof("generated difficulty configs: range=%v, %d modifiers", r, len(bundle.Modifiers))

	return bundle, nil
}

func winStreakConfig(gs stats.GameStats, r float64) modifier.Config {
	return modifier.Config{
		ID:      "win_streak",
		Type:    builtin.TypeWinStreak,
		Enabled: true,
		Parameters: map[string]interface{}{
			"threshold": maxInt(2, round(gs.AvgConsecutiveWins*0.75)),
			"step_size": clamp(r/(gs.AvgConsecutiveWins*2), minStepSize, maxStepSize),
			"max_bonus": clamp(r*0.3, minStreakLimit, maxStreakLimit),
		},
	}
}

func losingStreakConfig(gs stats.GameStats, r float64) modifier.Config {
	return modifier.Config{
		ID:      "losing_streak",
		Type:    builtin.TypeLosingStreak,
		Enabled: true,
		Parameters: map[string]interface{}{
			"threshold":     maxInt(2, round(gs.AvgConsecutiveLosses*0.8)),
			"step_size":     clamp(r/(gs.AvgConsecutiveLosses*3), minStepSize, maxStepSize),
			"max_reduction": clamp(r*0.25, minStreakLimit, maxStreakLimit),
		},
	}
}

func timeDecayConfig(gs stats.GameStats) modifier.Config {
	return modifier.Config{
		ID:      "time_decay",
		Type:    builtin.TypeTimeDecay,
		Enabled: true,
		Parameters: map[string]interface{}{
			"decay_per_day": clamp(gs.MaxDifficultyChangePerSession/gs.TargetRetentionDays, minDecayPerDay, maxDecayPerDay),
			"max_decay":     clamp(gs.MaxDifficultyChangePerSession, minDecayLimit, maxDecayLimit),
			"grace_hours":   clamp(gs.AvgHoursBetweenSessions, 0, maxGraceHours),
		},
	}
}

func rageQuitConfig(r float64) modifier.Config {
	return modifier.Config{
		ID:      "rage_quit",
		Type:    builtin.TypeRageQuit,
		Enabled: true,
		Parameters: map[string]interface{}{
			"rage_quit_penalty": clamp(r*0.15, minQuitPenalty, maxQuitPenalty),
			"mid_play_penalty":  clamp(r*0.05, minMidPlayPenalty, maxMidPlayPenalty),
		},
	}
}

func completionRateConfig(gs stats.GameStats) modifier.Config {
	r := gs.DifficultyRange()
	return modifier.Config{
		ID:      "completion_rate",
		Type:    builtin.TypeCompletionRate,
		Enabled: true,
		Parameters: map[string]interface{}{
			"low_threshold":  lowCompletionBand,
			"high_threshold": highCompletionBand,
			"adjustment":     clamp(r*0.1, minCompletionAdj, maxCompletionAdj),
			"min_samples":    maxInt(minSampleFloor, round(gs.AvgConsecutiveWins+gs.AvgConsecutiveLosses)),
		},
	}
}

func sessionLengthConfig(gs stats.GameStats, r float64) modifier.Config {
	return modifier.Config{
		ID:      "session_length",
		Type:    builtin.TypeSessionLength,
		Enabled: true,
		Parameters: map[string]interface{}{
			"avg_session_minutes": gs.AvgSessionLengthMinutes,
			"short_session_ratio": shortSessionRatio,
			"long_session_ratio":  longSessionRatio,
			"adjustment":          clamp(r*0.08, minSessionAdj, maxSessionAdj),
		},
	}
}

func comebackConfig(gs stats.GameStats, r float64) modifier.Config {
	return modifier.Config{
		ID:      "comeback",
		Type:    builtin.TypeComeback,
		Enabled: true,
		Parameters: map[string]interface{}{
			"loss_threshold": maxInt(2, round(gs.AvgConsecutiveLosses)),
			"step_size":      clamp(r/(gs.AvgConsecutiveLosses*4), minComebackStep, maxComebackStep),
			"max_bonus":      clamp(r*0.15, minComebackBonus, maxComebackBonus),
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round(v float64) int {
	return int(math.Round(v))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
