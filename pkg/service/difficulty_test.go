package service

import (
	"context"
	"testing"
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/difficulty"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier/builtin"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/alicebob/miniredis/v2"
)

var testBounds = difficulty.Bounds{
	Min:                 1.0,
	Max:                 10.0,
	Default:             5.0,
	MaxChangePerSession: 2.0,
}

// newTestService wires a full service against miniredis with the given
// modifier configurations.
func newTestService(t *testing.T, configs []modifier.Config) (*Service, *miniredis.Miniredis) {
	t.Helper()

	client, mr := setupTestRedis(t)
	provider := NewRedisDataProvider(client, RedisDataProviderConfig{})

	manager, err := difficulty.NewManager(testBounds, nil)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	builtin.RegisterBuiltinModifiers()
	registry := modifier.NewRegistry()
	if err := modifier.RegisterModifiers(registry, configs); err != nil {
		t.Fatalf("failed to register modifiers: %v", err)
	}

	svc, err := NewService(provider, manager, registry)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	return svc, mr
}

func winStreakConfig(threshold int, step, max float64) modifier.Config {
	return modifier.Config{
		ID:      "win_streak",
		Type:    builtin.TypeWinStreak,
		Enabled: true,
		Parameters: map[string]interface{}{
			"threshold": threshold,
			"step_size": step,
			"max_bonus": max,
		},
	}
}

func losingStreakConfig(threshold int, step, max float64) modifier.Config {
	return modifier.Config{
		ID:      "losing_streak",
		Type:    builtin.TypeLosingStreak,
		Enabled: true,
		Parameters: map[string]interface{}{
			"threshold":     threshold,
			"step_size":     step,
			"max_reduction": max,
		},
	}
}

func TestNewService_RequiresDependencies(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	provider := NewRedisDataProvider(client, RedisDataProviderConfig{})
	manager, _ := difficulty.NewManager(testBounds, nil)
	registry := modifier.NewRegistry()

	if _, err := NewService(nil, manager, registry); err == nil {
		t.Error("expected error for nil provider")
	}
	if _, err := NewService(provider, nil, registry); err == nil {
		t.Error("expected error for nil manager")
	}
	if _, err := NewService(provider, manager, nil); err == nil {
		t.Error("expected error for nil registry")
	}
}

func TestUpdateDifficulty_NewPlayerStaysAtDefault(t *testing.T) {
	svc, mr := newTestService(t, []modifier.Config{winStreakConfig(2, 0.5, 2.0)})
	defer mr.Close()

	value, err := svc.UpdateDifficulty(context.Background(), "fresh-player")
	if err != nil {
		t.Fatalf("UpdateDifficulty() error = %v", err)
	}

	if value != testBounds.Default {
		t.Errorf("difficulty = %v, expected default %v for a player with no history", value, testBounds.Default)
	}
}

func TestUpdateDifficulty_WinStreakRaises(t *testing.T) {
	svc, mr := newTestService(t, []modifier.Config{winStreakConfig(2, 0.5, 2.0)})
	defer mr.Close()

	ctx := context.Background()
	userID := "winner"

	for i := 0; i < 3; i++ {
		if err := svc.RecordWin(ctx, userID); err != nil {
			t.Fatalf("RecordWin() error = %v", err)
		}
	}

	value, err := svc.UpdateDifficulty(ctx, userID)
	if err != nil {
		t.Fatalf("UpdateDifficulty() error = %v", err)
	}

	// streak 3, threshold 2: two steps of 0.5 above the default
	expected := 6.0
	if value != expected {
		t.Errorf("difficulty = %v, expected %v", value, expected)
	}
}

func TestUpdateDifficulty_NetChangeCapped(t *testing.T) {
	svc, mr := newTestService(t, []modifier.Config{losingStreakConfig(2, 1.0, 5.0)})
	defer mr.Close()

	ctx := context.Background()
	userID := "struggling"

	for i := 0; i < 6; i++ {
		if err := svc.RecordLoss(ctx, userID); err != nil {
			t.Fatalf("RecordLoss() error = %v", err)
		}
	}

	value, err := svc.UpdateDifficulty(ctx, userID)
	if err != nil {
		t.Fatalf("UpdateDifficulty() error = %v", err)
	}

	// Raw reduction would be 5.0; the per-session cap limits it to 2.0.
	expected := testBounds.Default - testBounds.MaxChangePerSession
	if value != expected {
		t.Errorf("difficulty = %v, expected %v after session cap", value, expected)
	}
}

func TestUpdateDifficulty_PersistsBetweenCycles(t *testing.T) {
	svc, mr := newTestService(t, []modifier.Config{winStreakConfig(2, 0.5, 2.0)})
	defer mr.Close()

	ctx := context.Background()
	userID := "regular"

	svc.RecordWin(ctx, userID)
	svc.RecordWin(ctx, userID)

	first, err := svc.UpdateDifficulty(ctx, userID)
	if err != nil {
		t.Fatalf("UpdateDifficulty() error = %v", err)
	}
	if first != 5.5 {
		t.Fatalf("first update = %v, expected 5.5", first)
	}

	second, err := svc.UpdateDifficulty(ctx, userID)
	if err != nil {
		t.Fatalf("UpdateDifficulty() error = %v", err)
	}
	// Second cycle starts from the stored 5.5 and applies the same bonus.
	if second != 6.0 {
		t.Errorf("second update = %v, expected 6.0", second)
	}
}

func TestUpdateDifficulty_ClampedAtMax(t *testing.T) {
	svc, mr := newTestService(t, []modifier.Config{winStreakConfig(1, 2.0, 10.0)})
	defer mr.Close()

	ctx := context.Background()
	userID := "dominant"

	for i := 0; i < 5; i++ {
		svc.RecordWin(ctx, userID)
	}

	var value float64
	var err error
	for i := 0; i < 10; i++ {
		value, err = svc.UpdateDifficulty(ctx, userID)
		if err != nil {
			t.Fatalf("UpdateDifficulty() error = %v", err)
		}
		if value > testBounds.Max {
			t.Fatalf("difficulty %v exceeded max %v", value, testBounds.Max)
		}
	}

	if value != testBounds.Max {
		t.Errorf("difficulty = %v, expected to saturate at %v", value, testBounds.Max)
	}
}

func TestResetDifficulty(t *testing.T) {
	svc, mr := newTestService(t, []modifier.Config{winStreakConfig(1, 2.0, 10.0)})
	defer mr.Close()

	ctx := context.Background()
	userID := "reset-me"

	for i := 0; i < 4; i++ {
		svc.RecordWin(ctx, userID)
	}
	if _, err := svc.UpdateDifficulty(ctx, userID); err != nil {
		t.Fatalf("UpdateDifficulty() error = %v", err)
	}

	if err := svc.ResetDifficulty(ctx, userID); err != nil {
		t.Fatalf("ResetDifficulty() error = %v", err)
	}

	value, found, err := svc.provider.LoadDifficulty(ctx, userID)
	if err != nil {
		t.Fatalf("LoadDifficulty() error = %v", err)
	}
	if !found || value != testBounds.Default {
		t.Errorf("stored difficulty = %v (found=%v), expected default %v", value, found, testBounds.Default)
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc, mr := newTestService(t, nil)
	defer mr.Close()

	ctx := context.Background()
	userID := "lifecycle"

	start := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	if err := svc.StartSession(ctx, userID); err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	svc.now = func() time.Time { return start.Add(42 * time.Minute) }

	if err := svc.EndSession(ctx, userID); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}
	if err := svc.RecordQuit(ctx, userID, session.QuitRageQuit); err != nil {
		t.Fatalf("RecordQuit() error = %v", err)
	}

	data, err := svc.LoadSessionData(ctx, userID)
	if err != nil {
		t.Fatalf("LoadSessionData() error = %v", err)
	}

	if data.SessionCount != 1 {
		t.Errorf("SessionCount = %d, expected 1", data.SessionCount)
	}
	if data.SessionActive {
		t.Error("SessionActive = true, expected closed session")
	}
	if data.LastSessionLength != 42*time.Minute {
		t.Errorf("LastSessionLength = %v, expected 42m", data.LastSessionLength)
	}
	if data.LastQuit != session.QuitRageQuit {
		t.Errorf("LastQuit = %q, expected %q", data.LastQuit, session.QuitRageQuit)
	}
}

func TestDifficultyStats(t *testing.T) {
	svc, mr := newTestService(t, []modifier.Config{
		winStreakConfig(2, 0.5, 2.0),
		losingStreakConfig(2, 0.5, 2.0),
	})
	defer mr.Close()

	ctx := context.Background()
	userID := "stats"

	svc.RecordWin(ctx, userID)
	svc.RecordWin(ctx, userID)
	svc.RecordLoss(ctx, userID)

	stats, err := svc.DifficultyStats(ctx, userID)
	if err != nil {
		t.Fatalf("DifficultyStats() error = %v", err)
	}

	if stats["difficulty"] != testBounds.Default {
		t.Errorf("difficulty = %v, expected default %v", stats["difficulty"], testBounds.Default)
	}
	if stats["level"] != string(difficulty.LevelMedium) {
		t.Errorf("level = %v, expected %q", stats["level"], difficulty.LevelMedium)
	}
	if stats["winStreak"] != 0 {
		t.Errorf("winStreak = %v, expected 0 after a loss", stats["winStreak"])
	}
	if stats["lossStreak"] != 1 {
		t.Errorf("lossStreak = %v, expected 1", stats["lossStreak"])
	}
	if stats["modifierCount"] != 2 {
		t.Errorf("modifierCount = %v, expected 2", stats["modifierCount"])
	}
}

func TestClearData_RestoresFreshState(t *testing.T) {
	svc, mr := newTestService(t, []modifier.Config{winStreakConfig(2, 0.5, 2.0)})
	defer mr.Close()

	ctx := context.Background()
	userID := "wiped"

	svc.RecordWin(ctx, userID)
	svc.RecordWin(ctx, userID)
	if _, err := svc.UpdateDifficulty(ctx, userID); err != nil {
		t.Fatalf("UpdateDifficulty() error = %v", err)
	}

	if err := svc.ClearData(ctx, userID); err != nil {
		t.Fatalf("ClearData() error = %v", err)
	}

	value, err := svc.UpdateDifficulty(ctx, userID)
	if err != nil {
		t.Fatalf("UpdateDifficulty() error = %v", err)
	}
	if value != testBounds.Default {
		t.Errorf("difficulty = %v, expected default %v after clear", value, testBounds.Default)
	}
}
