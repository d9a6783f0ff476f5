// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/internal/config"
	"github.com/AccelByte/extend-dynamic-difficulty/internal/server"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/difficulty"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/generator"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier/builtin"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/service"
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/tuning"
	"github.com/cenkalti/backoff/v4"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	metricsServer     *server.MetricsServer
	redisClient       *redis.Client
	shutdownTelemetry func(context.Context) error

	// Service is the assembled difficulty service, exposed so embedding
	// programs can drive update cycles directly.
	Service *service.Service
}

// New creates and initializes a new application instance.
//
// Components are initialized in dependency order:
// 1. Redis (required for state storage)
// 2. Tuning file (game statistics + overrides)
// 3. Config generation and override merge
// 4. Difficulty core (manager + modifier registry)
// 5. Difficulty service
// 6. Metrics server
// 7. Telemetry (OpenTelemetry tracing)
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	if err := app.initRedis(ctx); err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}

	tun, err := tuning.LoadConfig(cfg.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tuning file from %s: %w", cfg.TuningPath, err)
	}
	logrus.Infof("loaded tuning configuration from %s", cfg.TuningPath)

	bundle, err := generator.GenerateAllConfigs(tun.GameStats)
	if err != nil {
		return nil, fmt.Errorf("failed to generate difficulty configs: %w", err)
	}

	if err := tuning.ApplyOverrides(bundle, tun.Modifiers); err != nil {
		return nil, fmt.Errorf("failed to apply modifier overrides: %w", err)
	}

	manager, err := difficulty.NewManager(bundle.Bounds, tun.Levels)
	if err != nil {
		return nil, fmt.Errorf("failed to create difficulty manager: %w", err)
	}

	builtin.RegisterBuiltinModifiers()
	registry := modifier.NewRegistry()
	if err := modifier.RegisterModifiers(registry, bundle.Modifiers); err != nil {
		return nil, fmt.Errorf("failed to register modifiers: %w", err)
	}

	provider := service.NewRedisDataProvider(app.redisClient, service.RedisDataProviderConfig{})

	app.Service, err = service.NewService(provider, manager, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create difficulty service: %w", err)
	}

	health := service.NewHealthChecker(app.redisClient)
	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, "/metrics", health)
	if err := app.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	if cfg.OtelEnabled {
		shutdownTelemetry, err := server.SetupTelemetry(ctx, cfg.ServiceName, cfg.Environment, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to setup telemetry: %w", err)
		}
		app.shutdownTelemetry = shutdownTelemetry
	}

	logrus.Info("application initialized successfully")

	return app, nil
}

// initRedis initializes the Redis client.
func (a *App) initRedis(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:         a.cfg.RedisHost + ":" + a.cfg.RedisPort,
		Password:     a.cfg.RedisPassword,
		DB:           0, // use default DB
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Duration(a.cfg.RedisRetryDelayMs) * time.Millisecond
	maxRetries := backoff.WithMaxRetries(b, uint64(a.cfg.RedisMaxRetries))

	err := backoff.Retry(
		func() error {
			_, err := client.Ping(ctx).Result()
			if err != nil {
				logrus.Warnf("Redis connection failed: %v, retrying...", err)
				return err
			}
			return nil
		},
		maxRetries,
	)

	if err != nil {
		return err
	}

	a.redisClient = client
	logrus.Info("Redis client initialized")
	return nil
}
