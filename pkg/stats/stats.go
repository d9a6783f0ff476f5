package stats

import "fmt"

// GameStats holds designer-supplied aggregate numbers describing how the
// game plays out on average. It is the single input to config generation
// and is treated as immutable once validated.
type GameStats struct {
	// AvgConsecutiveWins is the average length of a player's win streak.
	AvgConsecutiveWins float64 `yaml:"avgConsecutiveWins" json:"avgConsecutiveWins"`

	// AvgConsecutiveLosses is the average length of a player's loss streak.
	AvgConsecutiveLosses float64 `yaml:"avgConsecutiveLosses" json:"avgConsecutiveLosses"`

	// DifficultyMin/Default/Max define the global difficulty scale.
	DifficultyMin     float64 `yaml:"difficultyMin" json:"difficultyMin"`
	DifficultyDefault float64 `yaml:"difficultyDefault" json:"difficultyDefault"`
	DifficultyMax     float64 `yaml:"difficultyMax" json:"difficultyMax"`

	// MaxDifficultyChangePerSession caps how far difficulty may move in a
	// single update cycle.
	MaxDifficultyChangePerSession float64 `yaml:"maxDifficultyChangePerSession" json:"maxDifficultyChangePerSession"`

	// TargetRetentionDays is how long the game wants to keep a lapsed
	// player's tuned difficulty relevant before decaying it.
	TargetRetentionDays float64 `yaml:"targetRetentionDays" json:"targetRetentionDays"`

	// AvgHoursBetweenSessions is the typical gap between play sessions.
	AvgHoursBetweenSessions float64 `yaml:"avgHoursBetweenSessions" json:"avgHoursBetweenSessions"`

	// AvgSessionLengthMinutes is the typical play session length.
	AvgSessionLengthMinutes float64 `yaml:"avgSessionLengthMinutes" json:"avgSessionLengthMinutes"`
}

// Validate checks the statistics for internal consistency. It never
// auto-corrects: invalid input is rejected with a descriptive reason so the
// designer can fix the source numbers.
func (s GameStats) Validate() error {
	if s.AvgConsecutiveWins <= 0 {
		return fmt.Errorf("avgConsecutiveWins must be positive, got %v", s.AvgConsecutiveWins)
	}
	if s.AvgConsecutiveLosses <= 0 {
		return fmt.Errorf("avgConsecutiveLosses must be positive, got %v", s.AvgConsecutiveLosses)
	}
	if s.DifficultyMin >= s.DifficultyDefault {
		return fmt.Errorf("difficultyMin (%v) must be below difficultyDefault (%v)", s.DifficultyMin, s.DifficultyDefault)
	}
	if s.DifficultyDefault >= s.DifficultyMax {
		return fmt.Errorf("difficultyDefault (%v) must be below difficultyMax (%v)", s.DifficultyDefault, s.DifficultyMax)
	}
	if s.MaxDifficultyChangePerSession <= 0 {
		return fmt.Errorf("maxDifficultyChangePerSession must be positive, got %v", s.MaxDifficultyChangePerSession)
	}
	if s.TargetRetentionDays <= 0 {
		return fmt.Errorf("targetRetentionDays must be positive, got %v", s.TargetRetentionDays)
	}
	if s.AvgHoursBetweenSessions < 0 {
		return fmt.Errorf("avgHoursBetweenSessions must not be negative, got %v", s.AvgHoursBetweenSessions)
	}
	if s.AvgSessionLengthMinutes <= 0 {
		return fmt.Errorf("avgSessionLengthMinutes must be positive, got %v", s.AvgSessionLengthMinutes)
	}
	return nil
}

// DifficultyRange returns the width of the configured difficulty scale.
func (s GameStats) DifficultyRange() float64 {
	return s.DifficultyMax - s.DifficultyMin
}
