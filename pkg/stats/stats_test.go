package stats

import (
	"strings"
	"testing"
)

func validStats() GameStats {
	return GameStats{
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

func TestValidate_ValidStats(t *testing.T) {
	if err := validStats().Validate(); err != nil {
		t.Fatalf("Validate() error = %v, expected nil", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameStats)
		wantSub string
	}{
		{
			name:    "zero avg wins",
			mutate:  func(s *GameStats) { s.AvgConsecutiveWins = 0 },
			wantSub: "avgConsecutiveWins",
		},
		{
			name:    "negative avg losses",
			mutate:  func(s *GameStats) { s.AvgConsecutiveLosses = -1 },
			wantSub: "avgConsecutiveLosses",
		},
		{
			name:    "min above default",
			mutate:  func(s *GameStats) { s.DifficultyMin = 6 },
			wantSub: "difficultyMin",
		},
		{
			name:    "default above max",
			mutate:  func(s *GameStats) { s.DifficultyDefault = 11 },
			wantSub: "difficultyDefault",
		},
		{
			name:    "min equals default",
			mutate:  func(s *GameStats) { s.DifficultyMin = 5 },
			wantSub: "difficultyMin",
		},
		{
			name:    "zero max change",
			mutate:  func(s *GameStats) { s.MaxDifficultyChangePerSession = 0 },
			wantSub: "maxDifficultyChangePerSession",
		},
		{
			name:    "zero retention",
			mutate:  func(s *GameStats) { s.TargetRetentionDays = 0 },
			wantSub: "targetRetentionDays",
		},
		{
			name:    "negative hour gap",
			mutate:  func(s *GameStats) { s.AvgHoursBetweenSessions = -0.5 },
			wantSub: "avgHoursBetweenSessions",
		},
		{
			name:    "zero session length",
			mutate:  func(s *GameStats) { s.AvgSessionLengthMinutes = 0 },
			wantSub: "avgSessionLengthMinutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStats()
			tt.mutate(&s)

			err := s.Validate()
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Validate() error = %q, expected it to mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidate_ZeroHourGapAllowed(t *testing.T) {
	s := validStats()
	s.AvgHoursBetweenSessions = 0

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, expected zero hour gap to be valid", err)
	}
}

func TestDifficultyRange(t *testing.T) {
	s := validStats()
	if got := s.DifficultyRange(); got != 9 {
		t.Errorf("DifficultyRange() = %v, expected 9", got)
	}
}
