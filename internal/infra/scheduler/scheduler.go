package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Ticker paces the polling loop by a cron schedule. Unlike cron.Cron it never
// runs jobs on its own goroutines: the caller blocks in Wait between iterations.
type Ticker struct {
	schedule cron.Schedule
	logger   *logrus.Entry
	now      func() time.Time
}

// NewTicker parses spec with the standard cron parser, so both
// "@every 600s" and five-field expressions like "*/10 * * * *" are accepted.
func NewTicker(spec string, logger *logrus.Entry) (*Ticker, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &Ticker{
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Next reports when the next iteration is due.
func (t *Ticker) Next() time.Time {
	return t.schedule.Next(t.now())
}

// Wait blocks until the next scheduled time or until ctx is done.
func (t *Ticker) Wait(ctx context.Context) error {
	next := t.Next()
	delay := time.Until(next)
	t.logger.WithField("next_poll_at", next.Format(time.RFC3339)).Debugf("Sleeping for %s", delay.Round(time.Second))

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
