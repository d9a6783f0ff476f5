package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/common"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/difficulty"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/metrics"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/sirupsen/logrus"
)

// Service orchestrates the difficulty system for stored players: it records
// gameplay events into session data, runs the modifier set through the
// difficulty manager, and delegates persistence to the data provider.
//
// The service holds no per-player state; concurrent callers touching the
// same userID must serialize access themselves.
type Service struct {
	provider DataProvider
	manager  *difficulty.Manager
	registry *modifier.Registry
	now      func() time.Time
}

// NewService creates a difficulty service.
func NewService(provider DataProvider, manager *difficulty.Manager, registry *modifier.Registry) (*Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("data provider is required")
	}
	if manager == nil {
		return nil, fmt.Errorf("difficulty manager is required")
	}
	if registry == nil {
		return nil, fmt.Errorf("modifier registry is required")
	}

	return &Service{
		provider: provider,
		manager:  manager,
		registry: registry,
		now:      time.Now,
	}, nil
}

// RecordWin registers a match win for the player.
func (s *Service) RecordWin(ctx context.Context, userID string) error {
	return s.mutateSession(ctx, userID, func(d *session.Data) {
		session.RecordWin(d)
	})
}

// RecordLoss registers a match loss for the player.
func (s *Service) RecordLoss(ctx context.Context, userID string) error {
	return s.mutateSession(ctx, userID, func(d *session.Data) {
		session.RecordLoss(d)
	})
}

// StartSession marks the start of a play session.
func (s *Service) StartSession(ctx context.Context, userID string) error {
	now := s.now()
	return s.mutateSession(ctx, userID, func(d *session.Data) {
		session.StartSession(d, now)
	})
}

// EndSession marks the end of the open play session.
func (s *Service) EndSession(ctx context.Context, userID string) error {
	now := s.now()
	return s.mutateSession(ctx, userID, func(d *session.Data) {
		session.EndSession(d, now)
	})
}

// RecordQuit stores the quit classification for the just-ended session.
func (s *Service) RecordQuit(ctx context.Context, userID string, kind session.QuitKind) error {
	return s.mutateSession(ctx, userID, func(d *session.Data) {
		session.RecordQuit(d, kind)
	})
}

// UpdateDifficulty runs a full calculation cycle: it reads the player's
// current difficulty and session data, evaluates every registered modifier
// in registration order, applies the result through the difficulty manager
// and persists the new value.
func (s *Service) UpdateDifficulty(ctx context.Context, userID string) (float64, error) {
	scope := common.NewScope(ctx, "Service.UpdateDifficulty")
	defer scope.Finish()
	scope.SetAttributes("user_id", userID)

	current, err := s.currentDifficulty(scope.Ctx, userID)
	if err != nil {
		scope.TraceError(err)
		return 0, err
	}

	data, err := s.provider.LoadSessionData(scope.Ctx, userID)
	if err != nil {
		scope.TraceError(err)
		return 0, fmt.Errorf("failed to load session data: %w", err)
	}

	now := s.now()
	modifiers := s.registry.GetAll()
	contributions := make([]modifier.Contribution, 0, len(modifiers))
	for _, m := range modifiers {
		c := m.Evaluate(data, now)
		metrics.ModifierContribution.WithLabelValues(m.ID()).Observe(c.Value)
		contributions = append(contributions, c)
	}

	updated := s.manager.CalculateDifficulty(current, contributions)
	level := s.manager.LevelFor(updated)

	if err := s.provider.SaveDifficulty(scope.Ctx, userID, updated); err != nil {
		scope.TraceError(err)
		return 0, fmt.Errorf("failed to save difficulty: %w", err)
	}

	metrics.DifficultyUpdatesTotal.WithLabelValues(string(level)).Inc()
	metrics.DifficultyChange.Observe(updated - current)

	scope.SetAttributes("difficulty", updated)
	scope.SetAttributes("level", string(level))
	scope.Log.Infof("updated difficulty for user %s: %v -> %v (%s)", userID, current, updated, level)

	return updated, nil
}

// ResetDifficulty persists the manager's default difficulty for the
// player, bypassing the modifier set.
func (s *Service) ResetDifficulty(ctx context.Context, userID string) error {
	value := s.manager.DefaultDifficulty()
	if err := s.provider.SaveDifficulty(ctx, userID, value); err != nil {
		return fmt.Errorf("failed to reset difficulty: %w", err)
	}

	logrus.Infof("reset difficulty for user %s to %v", userID, value)
	return nil
}

// DifficultyStats returns a diagnostic snapshot of the player's state.
// The snapshot is derived on demand and is not authoritative.
func (s *Service) DifficultyStats(ctx context.Context, userID string) (map[string]interface{}, error) {
	current, err := s.currentDifficulty(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, err := s.provider.LoadSessionData(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session data: %w", err)
	}

	return map[string]interface{}{
		"difficulty":    current,
		"level":         string(s.manager.LevelFor(current)),
		"winStreak":     data.WinStreak,
		"lossStreak":    data.LossStreak,
		"totalWins":     data.TotalWins,
		"totalLosses":   data.TotalLosses,
		"sessionCount":  data.SessionCount,
		"lastQuit":      string(data.LastQuit),
		"modifierCount": s.registry.Count(),
	}, nil
}

// LoadSessionData delegates to the data provider.
func (s *Service) LoadSessionData(ctx context.Context, userID string) (*session.Data, error) {
	return s.provider.LoadSessionData(ctx, userID)
}

// SaveSessionData delegates to the data provider.
func (s *Service) SaveSessionData(ctx context.Context, userID string, data *session.Data) error {
	return s.provider.SaveSessionData(ctx, userID, data)
}

// ClearData delegates to the data provider.
func (s *Service) ClearData(ctx context.Context, userID string) error {
	return s.provider.ClearData(ctx, userID)
}

// currentDifficulty reads the stored value, falling back to the
// configured default for players without one.
func (s *Service) currentDifficulty(ctx context.Context, userID string) (float64, error) {
	value, found, err := s.provider.LoadDifficulty(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load difficulty: %w", err)
	}
	if !found {
		return s.manager.DefaultDifficulty(), nil
	}
	return value, nil
}

// mutateSession loads the player's session data, applies fn and saves it
// back.
func (s *Service) mutateSession(ctx context.Context, userID string, fn func(*session.Data)) error {
	data, err := s.provider.LoadSessionData(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load session data: %w", err)
	}

	fn(data)

	if err := s.provider.SaveSessionData(ctx, userID, data); err != nil {
		return fmt.Errorf("failed to save session data: %w", err)
	}

	return nil
}
