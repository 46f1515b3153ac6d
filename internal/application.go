package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/arcadelab/tictacai/internal/config"
	"github.com/arcadelab/tictacai/internal/engine"
	"github.com/arcadelab/tictacai/internal/repository"
	"github.com/arcadelab/tictacai/internal/repository/storage"
	"github.com/arcadelab/tictacai/internal/service"
	"github.com/arcadelab/tictacai/internal/terminal"
	"github.com/arcadelab/tictacai/internal/usecase"
)

var ErrUnknownStatsBackend = errors.New("unknown stats backend")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	difficulty, err := engine.ParseDifficulty(conf.DefaultDifficulty)
	if err != nil {
		return fmt.Errorf("invalid default difficulty: %w", err)
	}

	statsRepo, closeStorage, err := buildStatsRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not set up statistics storage: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close stats storage", "error", err)
		}
	}()

	strategy := engine.NewStrategy(conf.EasySmartChance, conf.HardSearchDepth, nil)
	botService := service.NewBotService(logger, strategy)
	sessions := usecase.NewSessionManager(logger, statsRepo, botService)

	term := terminal.New(logger, sessions, os.Stdin, os.Stdout, difficulty, conf.Stats.History)

	termErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game session", "difficulty", difficulty, "stats_backend", conf.Stats.Backend)
		termErrCh <- term.Run(ctx)
	}()

	select {
	case err = <-termErrCh:
		if err != nil {
			return fmt.Errorf("terminal session error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// buildStatsRepository picks the statistics backend from config and returns
// the repository together with its storage closer.
func buildStatsRepository(ctx context.Context, conf *config.Config) (repository.StatsRepository, func() error, error) {
	switch conf.Stats.Backend {
	case "sqlite":
		store, err := storage.NewSQLiteStorage(conf.Stats.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = store.Init(ctx); err != nil {
			return nil, nil, fmt.Errorf("could not init sqlite schema: %w", err)
		}

		return repository.NewSQLiteStatsRepository(store), store.Close, nil

	case "redis":
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Stats.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisStatsRepository(redisStorage.Connection, conf.Stats.History), redisStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStatsBackend, conf.Stats.Backend)
	}
}
