package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/service/mocks"
)

func newTestRetryService(t *testing.T) (RetryService, *mocks.MockCommunicationRepository, *mocks.MockCommunicationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCommunicationRepository(ctrl)
	comms := mocks.NewMockCommunicationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		MaxCommunicationAttempts: 3,
		RetryWindow:              30 * time.Minute,
		AcknowledgmentTimeout:    10 * time.Minute,
	}

	return NewRetryService(repo, comms, logger, cfg), repo, comms
}

func failedComm(attempts int, lastAttempt time.Time) *models.EmergencyHospitalCommunication {
	return &models.EmergencyHospitalCommunication{
		ID:                       uuid.New(),
		HospitalID:               uuid.New(),
		AlertReferenceID:         "EMG1",
		Status:                   models.CommFailed,
		CommunicationAttempts:    attempts,
		LastCommunicationAttempt: &lastAttempt,
	}
}

func TestRetryFailed_RedeliversDueCommunications(t *testing.T) {
	// Setup: one attempt means a two-minute backoff, long since elapsed.
	service, repo, comms := newTestRetryService(t)
	ctx := context.Background()
	due := failedComm(1, time.Now().UTC().Add(-5*time.Minute))

	repo.EXPECT().ListRetryable(ctx, 30*time.Minute, 3).
		Return([]*models.EmergencyHospitalCommunication{due}, nil)
	comms.EXPECT().Redeliver(ctx, due).Return(nil)

	retried, err := service.RetryFailedCommunications(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, retried)
}

func TestRetryFailed_BackoffNotElapsed(t *testing.T) {
	// Two attempts means a four-minute backoff; the last attempt was
	// one minute ago, so the handoff is not yet due.
	service, repo, comms := newTestRetryService(t)
	ctx := context.Background()
	tooSoon := failedComm(2, time.Now().UTC().Add(-1*time.Minute))

	repo.EXPECT().ListRetryable(ctx, 30*time.Minute, 3).
		Return([]*models.EmergencyHospitalCommunication{tooSoon}, nil)
	comms.EXPECT().Redeliver(gomock.Any(), gomock.Any()).Times(0)

	retried, err := service.RetryFailedCommunications(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, retried)
}

func TestRetryFailed_MissingTimestampIsDueImmediately(t *testing.T) {
	service, repo, comms := newTestRetryService(t)
	ctx := context.Background()
	orphan := failedComm(1, time.Now().UTC())
	orphan.LastCommunicationAttempt = nil

	repo.EXPECT().ListRetryable(ctx, 30*time.Minute, 3).
		Return([]*models.EmergencyHospitalCommunication{orphan}, nil)
	comms.EXPECT().Redeliver(ctx, orphan).Return(nil)

	retried, err := service.RetryFailedCommunications(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, retried)
}

func TestRetryFailed_RedeliveryErrorDoesNotStopScan(t *testing.T) {
	service, repo, comms := newTestRetryService(t)
	ctx := context.Background()
	broken := failedComm(1, time.Now().UTC().Add(-10*time.Minute))
	healthy := failedComm(1, time.Now().UTC().Add(-10*time.Minute))

	repo.EXPECT().ListRetryable(ctx, 30*time.Minute, 3).
		Return([]*models.EmergencyHospitalCommunication{broken, healthy}, nil)
	comms.EXPECT().Redeliver(ctx, broken).Return(errors.New("hospital lookup failed"))
	comms.EXPECT().Redeliver(ctx, healthy).Return(nil)

	retried, err := service.RetryFailedCommunications(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, retried)
}

func TestRetryFailed_NoCandidates(t *testing.T) {
	service, repo, _ := newTestRetryService(t)
	ctx := context.Background()

	repo.EXPECT().ListRetryable(ctx, 30*time.Minute, 3).Return(nil, nil)

	retried, err := service.RetryFailedCommunications(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, retried)
}

func TestRetryDue_ExponentialBackoff(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		attempts int
		since    time.Duration
		due      bool
	}{
		{"first retry after two minutes", 1, 2 * time.Minute, true},
		{"first retry too early", 1, 90 * time.Second, false},
		{"second retry after four minutes", 2, 4 * time.Minute, true},
		{"second retry too early", 2, 3 * time.Minute, false},
		{"third retry after eight minutes", 3, 8 * time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := now.Add(-tt.since)
			comm := failedComm(tt.attempts, last)
			assert.Equal(t, tt.due, retryDue(comm, now))
		})
	}
}

func TestSweepTimeouts_FailsUnacknowledged(t *testing.T) {
	// Setup
	service, repo, _ := newTestRetryService(t)
	ctx := context.Background()
	stale := &models.EmergencyHospitalCommunication{
		ID:               uuid.New(),
		AlertReferenceID: "EMG1",
		Status:           models.CommSent,
	}

	// Expectations
	repo.EXPECT().ListAcknowledgmentTimeouts(ctx, 10*time.Minute).
		Return([]*models.EmergencyHospitalCommunication{stale}, nil)
	repo.EXPECT().UpdateStatusWithLog(ctx, stale, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.EmergencyHospitalCommunication, entry *models.CommunicationLog) error {
			assert.Equal(t, models.CommFailed, c.Status)
			assert.Equal(t, models.MessageTimeout, entry.MessageType)
			assert.False(t, entry.IsSuccessful)
			return nil
		})

	// Action
	timedOut, err := service.SweepAcknowledgmentTimeouts(ctx)

	// Checks
	require.NoError(t, err)
	assert.Equal(t, 1, timedOut)
}

func TestSweepTimeouts_StoreErrorSkipsRow(t *testing.T) {
	service, repo, _ := newTestRetryService(t)
	ctx := context.Background()
	first := &models.EmergencyHospitalCommunication{ID: uuid.New(), Status: models.CommSent}
	second := &models.EmergencyHospitalCommunication{ID: uuid.New(), Status: models.CommDelivered}

	repo.EXPECT().ListAcknowledgmentTimeouts(ctx, 10*time.Minute).
		Return([]*models.EmergencyHospitalCommunication{first, second}, nil)
	repo.EXPECT().UpdateStatusWithLog(ctx, first, gomock.Any()).Return(errors.New("connection reset"))
	repo.EXPECT().UpdateStatusWithLog(ctx, second, gomock.Any()).Return(nil)

	timedOut, err := service.SweepAcknowledgmentTimeouts(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, timedOut)
}
