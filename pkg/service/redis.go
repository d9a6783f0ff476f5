// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTTL is the default TTL for player state in Redis (30 days)
	DefaultTTL = 30 * 24 * time.Hour

	// Key prefixes for the two stored records per player.
	SessionKeyPrefix    = "dynamic_difficulty:session:"
	DifficultyKeyPrefix = "dynamic_difficulty:difficulty:"
)

// RedisDataProviderConfig configures the Redis-backed data provider.
type RedisDataProviderConfig struct {
	// TTL overrides DefaultTTL when positive.
	TTL time.Duration
}

// RedisDataProvider stores per-player session data and difficulty values
// in Redis. Session data is stored as JSON, the difficulty value as a
// plain float string.
type RedisDataProvider struct {
	client redis.UniversalClient
	cfg    RedisDataProviderConfig
}

// NewRedisDataProvider creates a Redis-backed data provider.
func NewRedisDataProvider(client redis.UniversalClient, cfg RedisDataProviderConfig) *RedisDataProvider {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &RedisDataProvider{client: client, cfg: cfg}
}

func sessionKey(userID string) string {
	return SessionKeyPrefix + userID
}

func difficultyKey(userID string) string {
	return DifficultyKeyPrefix + userID
}

// LoadSessionData retrieves the session record for a player from Redis.
// A player without stored data gets a fresh zeroed record.
func (p *RedisDataProvider) LoadSessionData(ctx context.Context, userID string) (*session.Data, error) {
	data, err := p.client.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		logrus.Debugf("no existing session data for user %s, returning new record", userID)
		return session.NewData(), nil
	}
	if err != nil {
		logrus.Errorf("failed to get session data for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to get session data: %w", err)
	}

	var record session.Data
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		logrus.Errorf("failed to unmarshal session data for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &record, nil
}

// SaveSessionData persists the session record for a player in Redis.
func (p *RedisDataProvider) SaveSessionData(ctx context.Context, userID string, record *session.Data) error {
	data, err := json.Marshal(record)
	if err != nil {
		logrus.Errorf("failed to marshal session data for user %s: %v", userID, err)
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	if err := p.client.Set(ctx, sessionKey(userID), data, p.cfg.TTL).Err(); err != nil {
		logrus.Errorf("failed to set session data for user %s: %v", userID, err)
		return fmt.Errorf("failed to set session data: %w", err)
	}

	logrus.Debugf("saved session data for user %s with TTL %v", userID, p.cfg.TTL)
	return nil
}

// LoadDifficulty retrieves the stored difficulty value for a player.
// found is false when the player has no stored value yet.
func (p *RedisDataProvider) LoadDifficulty(ctx context.Context, userID string) (float64, bool, error) {
	data, err := p.client.Get(ctx, difficultyKey(userID)).Result()
	if err == redis.Nil {
		logrus.Debugf("no stored difficulty for user %s", userID)
		return 0, false, nil
	}
	if err != nil {
		logrus.Errorf("failed to get difficulty for user %s: %v", userID, err)
		return 0, false, fmt.Errorf("failed to get difficulty: %w", err)
	}

	value, err := strconv.ParseFloat(data, 64)
	if err != nil {
		logrus.Errorf("failed to parse stored difficulty for user %s: %v", userID, err)
		return 0, false, fmt.Errorf("failed to parse stored difficulty: %w", err)
	}

	return value, true, nil
}

// SaveDifficulty persists the difficulty value for a player.
func (p *RedisDataProvider) SaveDifficulty(ctx context.Context, userID string, value float64) error {
	data := strconv.FormatFloat(value, 'f', -1, 64)

	if err := p.client.Set(ctx, difficultyKey(userID), data, p.cfg.TTL).Err(); err != nil {
		logrus.Errorf("failed to set difficulty for user %s: %v", userID, err)
		return fmt.Errorf("failed to set difficulty: %w", err)
	}

	logrus.Debugf("saved difficulty %v for user %s", value, userID)
	return nil
}

// ClearData removes all stored state for a player.
func (p *RedisDataProvider) ClearData(ctx context.Context, userID string) error {
	if err := p.client.Del(ctx, sessionKey(userID), difficultyKey(userID)).Err(); err != nil {
		logrus.Errorf("failed to clear data for user %s: %v", userID, err)
		return fmt.Errorf("failed to clear data: %w", err)
	}

	logrus.Infof("cleared stored data for user %s", userID)
	return nil
}
