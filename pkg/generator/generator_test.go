package generator

import (
	"reflect"
	"testing"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/stats"
)

func testStats() stats.GameStats {
	return stats.GameStats{
		AvgConsecutiveWins:            3,
		AvgConsecutiveLosses:          2.5,
		DifficultyMin:                 1,
		DifficultyDefault:             5,
		DifficultyMax:                 10,
		MaxDifficultyChangePerSession: 2,
		TargetRetentionDays:           14,
		AvgHoursBetweenSessions:       24,
		AvgSessionLengthMinutes:       30,
	}
}

func TestGenerateAllConfigs_RejectsInvalidStats(t *testing.T) {
	gs := testStats()
	gs.DifficultyMin = 20

	if _, err := GenerateAllConfigs(gs); err == nil {
		t.Error("GenerateAllConfigs() expected error for invalid stats")
	}
}

func TestGenerateAllConfigs_Bounds(t *testing.T) {
	bundle, err := GenerateAllConfigs(testStats())
	if err != nil {
		t.Fatalf("GenerateAllConfigs() error = %v", err)
	}

	if bundle.Bounds.Min != 1 || bundle.Bounds.Max != 10 || bundle.Bounds.Default != 5 {
		t.Errorf("Bounds = %+v, expected [1, 10] default 5", bundle.Bounds)
	}
	if bundle.Bounds.MaxChangePerSession != 2 {
		t.Errorf("MaxChangePerSession = %v, expected 2", bundle.Bounds.MaxChangePerSession)
	}
}

func TestGenerateAllConfigs_SevenOrderedModifiers(t *testing.T) {
	bundle, err := GenerateAllConfigs(testStats())
	if err != nil {
		t.Fatalf("GenerateAllConfigs() error = %v", err)
	}

	wantOrder := []string{
		"win_streak", "losing_streak", "time_decay",
		"rage_quit", "completion_rate", "session_length", "comeback",
	}
	if len(bundle.Modifiers) != len(wantOrder) {
		t.Fatalf("generated %d modifier configs, expected %d", len(bundle.Modifiers), len(wantOrder))
	}
	for i, cfg := range bundle.Modifiers {
		if cfg.ID != wantOrder[i] {
			t.Errorf("modifier[%d].ID = %s, expected %s", i, cfg.ID, wantOrder[i])
		}
		if !cfg.Enabled {
			t.Errorf("modifier %s should be enabled", cfg.ID)
		}
		if cfg.Type == "" {
			t.Errorf("modifier %s has empty type", cfg.ID)
		}
	}
}

func TestGenerateAllConfigs_DocumentedFormulas(t *testing.T) {
	bundle, err := GenerateAllConfigs(testStats())
	if err != nil {
		t.Fatalf("GenerateAllConfigs() error = %v", err)
	}

	win := bundle.Modifiers[0]
	// threshold = max(2, round(3 * 0.75)) = 2
	if got := win.GetInt("threshold", -1); got != 2 {
		t.Errorf("win_streak threshold = %d, expected 2", got)
	}
	// step = clamp(9 / 6, 0.1, 2.0) = 1.5
	if got := win.GetFloat("step_size", -1); got != 1.5 {
		t.Errorf("win_streak step_size = %v, expected 1.5", got)
	}
	// maxBonus = clamp(9 * 0.3, 0.5, 5.0) = 2.7
	if got := win.GetFloat("max_bonus", -1); got != 2.7 {
		t.Errorf("win_streak max_bonus = %v, expected 2.7", got)
	}

	loss := bundle.Modifiers[1]
	// threshold = max(2, round(2.5 * 0.8)) = 2
	if got := loss.GetInt("threshold", -1); got != 2 {
		t.Errorf("losing_streak threshold = %d, expected 2", got)
	}
	// step = clamp(9 / 7.5, 0.1, 2.0) = 1.2
	if got := loss.GetFloat("step_size", -1); got != 1.2 {
		t.Errorf("losing_streak step_size = %v, expected 1.2", got)
	}
	// maxReduction = clamp(9 * 0.25, 0.5, 5.0) = 2.25
	if got := loss.GetFloat("max_reduction", -1); got != 2.25 {
		t.Errorf("losing_streak max_reduction = %v, expected 2.25", got)
	}

	decay := bundle.Modifiers[2]
	// decayPerDay = clamp(2 / 14, 0.1, 2.0) ≈ 0.1429
	gotDecay := decay.GetFloat("decay_per_day", -1)
	if gotDecay < 0.142 || gotDecay > 0.143 {
		t.Errorf("time_decay decay_per_day = %v, expected ~0.1429", gotDecay)
	}
	// maxDecay = clamp(2, 0.5, 5.0) = 2
	if got := decay.GetFloat("max_decay", -1); got != 2 {
		t.Errorf("time_decay max_decay = %v, expected 2", got)
	}
	// graceHours = clamp(24, 0, 48) = 24
	if got := decay.GetFloat("grace_hours", -1); got != 24 {
		t.Errorf("time_decay grace_hours = %v, expected 24", got)
	}
}

func TestGenerateAllConfigs_Deterministic(t *testing.T) {
	first, err := GenerateAllConfigs(testStats())
	if err != nil {
		t.Fatalf("GenerateAllConfigs() error = %v", err)
	}
	second, err := GenerateAllConfigs(testStats())
	if err != nil {
		t.Fatalf("GenerateAllConfigs() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("GenerateAllConfigs() is not deterministic for identical stats")
	}
}

func TestGenerateAllConfigs_ExtremeStatsStayClamped(t *testing.T) {
	extremes := []stats.GameStats{
		func() stats.GameStats {
			gs := testStats()
			gs.AvgConsecutiveWins = 1000
			gs.AvgConsecutiveLosses = 1000
			return gs
		}(),
		func() stats.GameStats {
			gs := testStats()
			gs.AvgConsecutiveWins = 0.001
			gs.AvgConsecutiveLosses = 0.001
			return gs
		}(),
		func() stats.GameStats {
			gs := testStats()
			gs.DifficultyMin = -1000
			gs.DifficultyDefault = 0
			gs.DifficultyMax = 1000
			gs.MaxDifficultyChangePerSession = 500
			gs.TargetRetentionDays = 0.01
			gs.AvgHoursBetweenSessions = 100000
			return gs
		}(),
	}

	type rng struct{ lo, hi float64 }
	floatRanges := map[string]map[string]rng{
		"win_streak": {
			"step_size": {0.1, 2.0},
			"max_bonus": {0.5, 5.0},
		},
		"losing_streak": {
			"step_size":     {0.1, 2.0},
			"max_reduction": {0.5, 5.0},
		},
		"time_decay": {
			"decay_per_day": {0.1, 2.0},
			"max_decay":     {0.5, 5.0},
			"grace_hours":   {0, 48},
		},
		"rage_quit": {
			"rage_quit_penalty": {0.3, 3.0},
			"mid_play_penalty":  {0.1, 1.0},
		},
		"completion_rate": {
			"adjustment": {0.1, 1.5},
		},
		"session_length": {
			"adjustment": {0.1, 1.0},
		},
		"comeback": {
			"step_size": {0.05, 1.0},
			"max_bonus": {0.3, 2.0},
		},
	}

	for i, gs := range extremes {
		bundle, err := GenerateAllConfigs(gs)
		if err != nil {
			t.Fatalf("GenerateAllConfigs(extreme %d) error = %v", i, err)
		}

		for _, cfg := range bundle.Modifiers {
			for key, want := range floatRanges[cfg.ID] {
				got := cfg.GetFloat(key, -1)
				if got < want.lo || got > want.hi {
					t.Errorf("extreme %d: %s.%s = %v outside [%v, %v]", i, cfg.ID, key, got, want.lo, want.hi)
				}
			}
		}
	}
}

func TestGenerateAllConfigs_ThresholdFloor(t *testing.T) {
	gs := testStats()
	gs.AvgConsecutiveWins = 0.1
	gs.AvgConsecutiveLosses = 0.1

	bundle, err := GenerateAllConfigs(gs)
	if err != nil {
		t.Fatalf("GenerateAllConfigs() error = %v", err)
	}

	for _, id := range []string{"win_streak", "losing_streak"} {
		for _, cfg := range bundle.Modifiers {
			if cfg.ID != id {
				continue
			}
			if got := cfg.GetInt("threshold", -1); got < 2 {
				t.Errorf("%s threshold = %d, expected floor of 2", id, got)
			}
		}
	}
}
