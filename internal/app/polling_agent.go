// internal/app/polling_agent.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// failurePrefix starts every message about a failed poll.
const failurePrefix = "Сбой в работе программы: "

// maxMessageRunes is the Telegram limit for a text message.
const maxMessageRunes = 4096

// Waiter blocks between two poll iterations.
type Waiter interface {
	Wait(ctx context.Context) error
}

// AgentConfig is the part of the application configuration the agent needs.
type AgentConfig struct {
	ChatID        int64
	NotifyOnError bool
}

// NotifyResult is the outcome of a single delivery attempt.
type NotifyResult struct {
	Delivered bool
	Err       error // *homework.NotificationError when delivery failed
}

// PollOutcome describes what one iteration of the loop did.
type PollOutcome struct {
	CycleID  string
	Cursor   int64  // cursor after the iteration
	Message  string // text produced by the iteration, empty when nothing changed
	Notified bool
	Err      error // fetch, validation or interpretation failure
}

// PollingAgent watches the status API and reports homework status changes to a chat.
// It is not safe for concurrent use: Poll and Run must be called from one goroutine.
type PollingAgent struct {
	source         homework.StatusSource
	telegramClient domainTelegram.Client
	stateRepo      homework.StateRepository
	cfg            AgentConfig
	logger         *logrus.Entry
	now            func() time.Time

	state       homework.State
	stateLoaded bool
}

func NewPollingAgent(
	source homework.StatusSource,
	tc domainTelegram.Client,
	stateRepo homework.StateRepository,
	cfg AgentConfig,
	logger *logrus.Entry,
) *PollingAgent {
	return &PollingAgent{
		source:         source,
		telegramClient: tc,
		stateRepo:      stateRepo,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
	}
}

// State returns a copy of the current cursor and last delivered message.
func (a *PollingAgent) State() homework.State {
	return a.state
}

// Run polls until ctx is cancelled, waiting on w after every iteration
// whatever its outcome.
func (a *PollingAgent) Run(ctx context.Context, w Waiter) error {
	a.logger.WithField("chat_id", a.cfg.ChatID).Info("Polling agent started")
	for {
		a.Poll(ctx)

		if err := w.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				a.logger.Info("Polling agent stopped")
				return nil
			}
			return fmt.Errorf("wait for next poll: %w", err)
		}
	}
}

// Poll runs one iteration: fetch, validate, interpret and, when the resulting
// message differs from the last delivered one, notify.
func (a *PollingAgent) Poll(ctx context.Context) PollOutcome {
	cycleID := uuid.NewString()
	logCtx := a.logger.WithField("cycle_id", cycleID)

	a.loadState(ctx, logCtx)
	logCtx = logCtx.WithField("from_date", a.state.Cursor)
	logCtx.Debug("Polling homework statuses")

	outcome := PollOutcome{CycleID: cycleID}
	message, err := a.checkStatuses(ctx, logCtx)
	if err != nil {
		outcome.Err = err
		if ctx.Err() != nil {
			logCtx.WithError(err).Info("Poll interrupted by shutdown")
			outcome.Cursor = a.state.Cursor
			return outcome
		}
		logCtx.WithError(err).Error("Poll failed")
		if a.cfg.NotifyOnError {
			message = homework.Abbreviate(failurePrefix+err.Error(), maxMessageRunes)
		}
	}
	outcome.Message = message

	switch {
	case message == "":
	case message == a.state.LastMessage:
		logCtx.Debug("Message unchanged since last notification, skipping")
	default:
		result := a.Notify(message)
		if result.Err != nil {
			logCtx.WithError(result.Err).Error("Failed to send notification")
		} else {
			logCtx.WithField("message", message).Info("Notification sent")
			a.state.LastMessage = message
			outcome.Notified = true
		}
	}

	if err := a.stateRepo.Save(context.WithoutCancel(ctx), a.state); err != nil {
		logCtx.WithError(err).Error("Failed to save polling state")
	}
	outcome.Cursor = a.state.Cursor
	return outcome
}

// Notify delivers text to the configured chat. Failures are reported in the
// result and never returned as errors.
func (a *PollingAgent) Notify(text string) NotifyResult {
	if err := a.telegramClient.SendMessage(a.cfg.ChatID, text, nil); err != nil {
		return NotifyResult{Err: &homework.NotificationError{ChatID: a.cfg.ChatID, Err: err}}
	}
	return NotifyResult{Delivered: true}
}

func (a *PollingAgent) checkStatuses(ctx context.Context, logCtx *logrus.Entry) (string, error) {
	raw, err := a.source.FetchStatuses(ctx, a.state.Cursor)
	if err != nil {
		return "", err
	}

	homeworks, err := homework.CheckResponse(raw)
	if err != nil {
		return "", err
	}
	a.advanceCursor(raw, logCtx)

	if len(homeworks) == 0 {
		logCtx.Debug("No new homework statuses")
		return "", nil
	}
	return homework.ParseStatus(homeworks[0])
}

// advanceCursor moves the cursor to the server's current_date, or to the wall
// clock when the response carries none. The cursor never moves backwards.
func (a *PollingAgent) advanceCursor(raw any, logCtx *logrus.Entry) {
	next, ok := homework.CurrentDate(raw)
	if !ok {
		next = a.now().Unix()
		logCtx.Debug("Response has no current_date, using wall clock")
	}
	if next < a.state.Cursor {
		logCtx.WithField("current_date", next).Warn("current_date is behind the cursor, keeping the cursor")
		return
	}
	a.state.Cursor = next
}

func (a *PollingAgent) loadState(ctx context.Context, logCtx *logrus.Entry) {
	if a.stateLoaded {
		return
	}
	a.stateLoaded = true

	state, err := a.stateRepo.Load(ctx)
	switch {
	case err == nil:
		a.state = state
		logCtx.WithField("from_date", state.Cursor).Info("Resuming from saved state")
	case errors.Is(err, homework.ErrStateNotFound):
		a.state = homework.State{Cursor: a.now().Unix()}
	default:
		logCtx.WithError(err).Warn("Could not load saved state, starting from now")
		a.state = homework.State{Cursor: a.now().Unix()}
	}
}
