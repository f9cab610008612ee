package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"kept_house/internal/adapter/persistence/repository"
	appconfig "kept_house/internal/infrastructure/config"
	"kept_house/internal/infrastructure/database"
	"kept_house/internal/infrastructure/lock"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/infrastructure/notify"
	"kept_house/internal/usecase"
	"kept_house/internal/usecase/interfaces"
)

const lockWait = 5 * time.Second

// app holds the usecases the job commands need. Payments are never wired:
// keptctl does not open checkouts.
type app struct {
	cfg     *appconfig.Config
	jobs    *usecase.JobUseCase
	finance *usecase.FinanceUseCase
	close   func()
}

func loadConfig() (*appconfig.Config, error) {
	cfg, err := appconfig.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.SetDefault(logger.New(logger.Config{
		Level:       "warn",
		Format:      "text",
		ServiceName: "keptctl",
		Output:      os.Stderr,
	}))
	return cfg, nil
}

// newApp connects DynamoDB and, when configured, redis so finance writes
// take the same per-job lock the API takes.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	jobRepo := repository.NewJobDynamoRepository(ddb, cfg.DynamoDB.JobsTable)

	var locker interfaces.ILocker = lock.NewMemoryLocker(lockWait)
	var notifier interfaces.INotifier = notify.LogNotifier{}
	closeFn := func() {}

	rdb, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Component(ctx, "keptctl").WithError(err).Warn("redis unavailable, finance lock is process-local")
	} else if rdb != nil {
		locker = lock.NewRedisLocker(rdb, cfg.Redis.LockTTL, lockWait)
		notifier = notify.Fanout{notify.LogNotifier{}, notify.NewRedisNotifier(rdb, cfg.Redis.EventsChannel)}
		closeFn = func() { _ = rdb.Close() }
	}

	return &app{
		cfg:     cfg,
		jobs:    usecase.NewJobUseCase(jobRepo, nil),
		finance: usecase.NewFinanceUseCase(jobRepo, locker, notifier),
		close:   closeFn,
	}, nil
}
