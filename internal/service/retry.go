package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/metrics"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
)

// RetryService re-drives failed hospital deliveries and times out
// communications no hospital ever acknowledged. Both methods are run
// from the scheduler.
type RetryService interface {
	// RetryFailedCommunications redelivers eligible failed handoffs.
	// Returns the number of redelivery attempts made.
	RetryFailedCommunications(ctx context.Context) (int, error)

	// SweepAcknowledgmentTimeouts fails handoffs that were sent but
	// never acknowledged within the acknowledgment window. Returns the
	// number of communications timed out.
	SweepAcknowledgmentTimeouts(ctx context.Context) (int, error)
}

type retryService struct {
	repo   CommunicationRepository
	comms  CommunicationService
	logger *logrus.Logger
	cfg    *config.Config
}

// NewRetryService creates a RetryService.
func NewRetryService(repo CommunicationRepository, comms CommunicationService, logger *logrus.Logger, cfg *config.Config) RetryService {
	return &retryService{
		repo:   repo,
		comms:  comms,
		logger: logger,
		cfg:    cfg,
	}
}

func (s *retryService) RetryFailedCommunications(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "retry",
		"method":  "RetryFailedCommunications",
	})

	candidates, err := s.repo.ListRetryable(ctx, s.cfg.RetryWindow, s.cfg.MaxCommunicationAttempts)
	if err != nil {
		return 0, fmt.Errorf("service: could not list retryable communications: %w", err)
	}
	if len(candidates) == 0 {
		return 0, nil
	}
	log.WithField("candidates", len(candidates)).Info("Scanning failed communications")

	now := time.Now().UTC()
	retried := 0
	for _, comm := range candidates {
		if !retryDue(comm, now) {
			continue
		}

		metrics.RetriesAttempted.Inc()
		if err := s.comms.Redeliver(ctx, comm); err != nil {
			log.WithError(err).WithField("communication_id", comm.ID).Error("Redelivery failed")
			continue
		}
		retried++

		if comm.Status == models.CommFailed && comm.CommunicationAttempts >= s.cfg.MaxCommunicationAttempts {
			metrics.RetriesExhausted.Inc()
			log.WithField("communication_id", comm.ID).Warn("Communication exhausted its retry budget")
		}
	}

	if retried > 0 {
		log.WithField("retried", retried).Info("Retry scan finished")
	}
	return retried, nil
}

// retryDue applies the exponential backoff: a communication with n
// attempts waits 2^n minutes after the last one. Rows that somehow
// lack an attempt timestamp are eligible immediately.
func retryDue(comm *models.EmergencyHospitalCommunication, now time.Time) bool {
	if comm.LastCommunicationAttempt == nil {
		return true
	}
	delay := time.Duration(math.Pow(2, float64(comm.CommunicationAttempts))) * time.Minute
	return !now.Before(comm.LastCommunicationAttempt.Add(delay))
}

func (s *retryService) SweepAcknowledgmentTimeouts(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "retry",
		"method":  "SweepAcknowledgmentTimeouts",
	})

	stale, err := s.repo.ListAcknowledgmentTimeouts(ctx, s.cfg.AcknowledgmentTimeout)
	if err != nil {
		return 0, fmt.Errorf("service: could not list unacknowledged communications: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}
	log.WithField("candidates", len(stale)).Info("Sweeping unacknowledged communications")

	timedOut := 0
	for _, comm := range stale {
		now := time.Now().UTC()
		comm.Status = models.CommFailed

		entry := &models.CommunicationLog{
			CommunicationID: comm.ID,
			Channel:         models.ChannelSystem,
			Direction:       models.DirectionOutgoing,
			MessageType:     models.MessageTimeout,
			MessageContent:  "Communication timeout - no hospital response",
			IsSuccessful:    false,
			ErrorMessage:    "Hospital did not respond within timeout period",
			SentAt:          now,
		}

		if err := s.repo.UpdateStatusWithLog(ctx, comm, entry); err != nil {
			log.WithError(err).WithField("communication_id", comm.ID).Error("Could not time out communication")
			continue
		}

		metrics.AcknowledgmentTimeouts.Inc()
		timedOut++
	}

	if timedOut > 0 {
		log.WithField("timed_out", timedOut).Warn("Communications timed out without acknowledgment")
	}
	return timedOut, nil
}
