package service

import (
	"context"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
)

// DataProvider is the persistence collaborator for per-player difficulty
// state. The core treats storage as external: provider failures propagate
// to the caller unchanged.
//
// You may not need to have interface and go with direct struct usage,
// but having interfaces allows easier mocking for unit tests.
type DataProvider interface {
	// LoadSessionData returns the player's session/behavior record, or a
	// fresh zeroed record when the player has none yet.
	LoadSessionData(ctx context.Context, userID string) (*session.Data, error)

	// SaveSessionData persists the player's session/behavior record.
	SaveSessionData(ctx context.Context, userID string, data *session.Data) error

	// LoadDifficulty returns the player's stored difficulty value.
	// found is false when no value has been stored yet.
	LoadDifficulty(ctx context.Context, userID string) (value float64, found bool, err error)

	// SaveDifficulty persists the player's difficulty value.
	SaveDifficulty(ctx context.Context, userID string, value float64) error

	// ClearData removes all stored state for the player.
	ClearData(ctx context.Context, userID string) error
}
