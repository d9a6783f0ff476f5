// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

//go:build integration
// +build integration

package main

import (
	"context"
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/service"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// This is a manual integration test for Redis operations
// Run this with: go run -tags integration test_redis_integration.go
// Requires: Redis running on localhost:6379

func main() {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.Infof("Starting Redis integration test...")

	ctx := context.Background()
	userID := "integration-test-user"

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	logrus.Infof("Connected to Redis")

	provider := service.NewRedisDataProvider(client, service.RedisDataProviderConfig{})

	// Write and read back a session record
	data := session.NewData()
	session.StartSession(data, time.Now().Add(-30*time.Minute))
	session.RecordWin(data)
	session.RecordWin(data)
	session.RecordLoss(data)
	session.EndSession(data, time.Now())
	session.RecordQuit(data, session.QuitNormal)

	if err := provider.SaveSessionData(ctx, userID, data); err != nil {
		logrus.Fatalf("Failed to save session data: %v", err)
	}
	logrus.Infof("Saved session data")

	loaded, err := provider.LoadSessionData(ctx, userID)
	if err != nil {
		logrus.Fatalf("Failed to load session data: %v", err)
	}
	logrus.Infof("Loaded session data: winStreak=%d, lossStreak=%d, sessions=%d, lastLength=%v",
		loaded.WinStreak, loaded.LossStreak, loaded.SessionCount, loaded.LastSessionLength)

	// Write and read back a difficulty value
	if err := provider.SaveDifficulty(ctx, userID, 6.5); err != nil {
		logrus.Fatalf("Failed to save difficulty: %v", err)
	}
	value, found, err := provider.LoadDifficulty(ctx, userID)
	if err != nil {
		logrus.Fatalf("Failed to load difficulty: %v", err)
	}
	logrus.Infof("Loaded difficulty: value=%v, found=%v", value, found)

	// Clean up
	if err := provider.ClearData(ctx, userID); err != nil {
		logrus.Fatalf("Failed to clear data: %v", err)
	}
	logrus.Infof("Cleared test data")

	if err := client.Close(); err != nil {
		logrus.Errorf("Failed to close Redis client: %v", err)
	}

	logrus.Infof("Redis integration test completed successfully")
}
