package main

import (
	"context"
	"fmt"
	"io"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/cache"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/memory"

	"github.com/sirupsen/logrus"
)

// openStateRepository builds the state backend selected by STATE_BACKEND.
// The returned closer releases its connection.
func openStateRepository(ctx context.Context, cfg *config.AppConfig, log *logrus.Entry) (homework.StateRepository, io.Closer, error) {
	switch cfg.StateBackend {
	case config.StateBackendPostgres:
		db, err := idb.NewPostgresConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo := idb.NewPostgresStateRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("Using Postgres state repository")
		return repo, db, nil
	case config.StateBackendRedis:
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using Redis state repository")
		return cache.NewRedisStateRepository(client, cache.DefaultStateKey), client, nil
	case config.StateBackendMemory:
		log.Info("Using in-memory state repository")
		return memory.NewStateRepository(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
