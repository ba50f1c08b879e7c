package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/service"
)

// Scheduler runs the background scans: redelivering failed hospital
// communications and timing out handoffs no hospital acknowledged.
type Scheduler struct {
	c      *cron.Cron
	retry  service.RetryService
	logger *logrus.Logger
	cfg    *config.Config
}

// New builds the scheduler with its jobs registered but not started.
func New(retry service.RetryService, logger *logrus.Logger, cfg *config.Config) (*Scheduler, error) {
	s := &Scheduler{
		c:      cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		retry:  retry,
		logger: logger,
		cfg:    cfg,
	}

	if _, err := s.c.AddFunc(cfg.RetryScanSchedule, s.runRetryScan); err != nil {
		return nil, fmt.Errorf("failed to register retry scan: %w", err)
	}
	if _, err := s.c.AddFunc(cfg.TimeoutSweepSchedule, s.runTimeoutSweep); err != nil {
		return nil, fmt.Errorf("failed to register timeout sweep: %w", err)
	}

	return s, nil
}

// Start begins running the registered jobs on their schedules.
func (s *Scheduler) Start() {
	s.logger.WithFields(logrus.Fields{
		"retry_scan":    s.cfg.RetryScanSchedule,
		"timeout_sweep": s.cfg.TimeoutSweepSchedule,
	}).Info("Scheduler started")
	s.c.Start()
}

// Stop halts scheduling and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.c.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) runRetryScan() {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
	defer cancel()

	retried, err := s.retry.RetryFailedCommunications(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Retry scan failed")
		return
	}
	if retried > 0 {
		s.logger.WithField("retried", retried).Info("Retry scan redelivered communications")
	}
}

func (s *Scheduler) runTimeoutSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
	defer cancel()

	timedOut, err := s.retry.SweepAcknowledgmentTimeouts(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Timeout sweep failed")
		return
	}
	if timedOut > 0 {
		s.logger.WithField("timed_out", timedOut).Warn("Timeout sweep failed unacknowledged communications")
	}
}
