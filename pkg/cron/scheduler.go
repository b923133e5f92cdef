// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Purger is the subset of the analysis cache the janitor needs.
type Purger interface {
	Purge() int
	Len() int
}

// Scheduler runs the cache janitor on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	cache    Purger
	schedule string
	logger   *slog.Logger
}

// NewScheduler creates a scheduler sweeping cache on the given cron spec
// (standard 5-field format or @every syntax).
func NewScheduler(cache Purger, schedule string, logger *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:     c,
		cache:    cache,
		schedule: schedule,
		logger:   logger,
	}
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.sweepCache)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.String("schedule", s.schedule),
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers a cache sweep (for testing/admin).
func (s *Scheduler) RunNow() {
	go s.sweepCache()
}

func (s *Scheduler) sweepCache() {
	dropped := s.cache.Purge()
	s.logger.Debug("analysis cache swept",
		slog.Int("dropped", dropped),
		slog.Int("remaining", s.cache.Len()),
	)
}
