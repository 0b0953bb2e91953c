package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/memory"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

type setupOptions struct {
	dryRun  bool      // print messages to out instead of sending them
	from    int64     // cursor to start from when fromSet
	fromSet bool      // start from `from` with throwaway state
	out     io.Writer // dry-run destination
}

// application is everything the commands need, built from the environment.
type application struct {
	cfg     *config.AppConfig
	log     *logrus.Entry
	agent   *app.PollingAgent
	closers []io.Closer
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.WithError(err).Warn("Failed to release resource")
		}
	}
}

// setup loads configuration and wires the polling agent. A missing credential
// is fatal: the process exits before any polling starts.
func setup(ctx context.Context, opts setupOptions) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingEnv) {
			logger.Log.Fatalf("FATAL: Missing required credential: %v", err)
		}
		return nil, err
	}

	logCloser, err := logger.Init(cfg)
	if err != nil {
		return nil, err
	}
	a := &application{
		cfg:     cfg,
		log:     logger.Get().WithField("component", "homework-bot"),
		closers: []io.Closer{logCloser},
	}
	a.log.WithFields(logrus.Fields{
		"environment":   cfg.Environment,
		"state_backend": cfg.StateBackend,
		"schedule":      cfg.PollSchedule,
	}).Info("Configuration loaded")

	var stateRepo homework.StateRepository
	switch {
	case opts.fromSet:
		stateRepo = memory.NewStateRepository()
		if err := stateRepo.Save(ctx, homework.State{Cursor: opts.from}); err != nil {
			a.Close()
			return nil, err
		}
	default:
		repo, closer, err := openStateRepository(ctx, cfg, a.log)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, closer)
		stateRepo = repo
		if opts.dryRun {
			if stateRepo, err = snapshotState(ctx, repo); err != nil {
				a.Close()
				return nil, err
			}
		}
	}

	var client domainTelegram.Client
	if opts.dryRun {
		client = telegram.NewWriterClient(opts.out)
	} else {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAPIURL, a.log.WithField("component", "telebot"))
		if err != nil {
			a.Close()
			return nil, err
		}
		client = telegram.NewTelebotAdapter(bot)
	}

	source := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.RequestTimeout)
	a.agent = app.NewPollingAgent(source, client, stateRepo, app.AgentConfig{
		ChatID:        cfg.TelegramChatID,
		NotifyOnError: cfg.NotifyOnError,
	}, a.log.WithField("component", "polling_agent"))

	return a, nil
}

// snapshotState copies the saved state into a throwaway repository, so a dry
// run starts where the daemon would but never writes back. Otherwise a printed
// message would be recorded as delivered and the daemon would skip it.
func snapshotState(ctx context.Context, repo homework.StateRepository) (homework.StateRepository, error) {
	snapshot := memory.NewStateRepository()
	state, err := repo.Load(ctx)
	switch {
	case err == nil:
		if err := snapshot.Save(ctx, state); err != nil {
			return nil, err
		}
	case errors.Is(err, homework.ErrStateNotFound):
	default:
		return nil, fmt.Errorf("load saved state: %w", err)
	}
	return snapshot, nil
}
