package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/notification"
	notifmocks "github.com/almamutuguti/Haven-Backend-sub000/internal/notification/mocks"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/service/mocks"
)

type verificationMocks struct {
	repo   *mocks.MockAlertRepository
	alerts *mocks.MockAlertService
	sender *notifmocks.MockSender
}

func newTestVerificationService(t *testing.T) (VerificationService, verificationMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := verificationMocks{
		repo:   mocks.NewMockAlertRepository(ctrl),
		alerts: mocks.NewMockAlertService(ctrl),
		sender: notifmocks.NewMockSender(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewVerificationService(m.repo, m.alerts, m.sender, logger), m
}

func TestRequestCode_SendsSixDigitSMS(t *testing.T) {
	// Setup
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	alert := &models.EmergencyAlert{
		ID:         uuid.New(),
		AlertID:    "EMG1",
		ReporterID: "fa-001",
		Status:     models.AlertPending,
	}
	var issued string

	// Expectations
	m.repo.EXPECT().GetByReference(ctx, "EMG1").Return(alert, nil)
	m.repo.EXPECT().CreateVerification(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, verification *models.AlertVerification) error {
			assert.Equal(t, alert.ID, verification.AlertID)
			assert.Equal(t, models.VerifyBySMS, verification.Method)
			assert.Len(t, verification.VerificationCode, 6)
			issued = verification.VerificationCode
			return nil
		})
	m.sender.EXPECT().Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) (*notification.Result, error) {
			assert.Equal(t, models.ChannelSMS, msg.Channel)
			assert.Equal(t, "+254711000111", msg.Recipient)
			assert.Contains(t, msg.Body, issued)
			return &notification.Result{}, nil
		})
	m.repo.EXPECT().IncrementVerificationAttempts(ctx, alert.ID).Return(nil)

	// Action
	err := service.RequestCode(ctx, firstAider("fa-001"), "EMG1")

	// Checks
	require.NoError(t, err)
}

func TestRequestCode_SMSFailureIsNotFatal(t *testing.T) {
	// The code is stored first; the reporter can ask for another SMS.
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	alert := &models.EmergencyAlert{ID: uuid.New(), AlertID: "EMG1", ReporterID: "fa-001"}

	m.repo.EXPECT().GetByReference(ctx, "EMG1").Return(alert, nil)
	m.repo.EXPECT().CreateVerification(ctx, gomock.Any()).Return(nil)
	m.sender.EXPECT().Send(ctx, gomock.Any()).Return(nil, assert.AnError)
	m.repo.EXPECT().IncrementVerificationAttempts(ctx, alert.ID).Return(nil)

	require.NoError(t, service.RequestCode(ctx, firstAider("fa-001"), "EMG1"))
}

func TestRequestCode_RequiresPhone(t *testing.T) {
	service, _ := newTestVerificationService(t)
	actor := firstAider("fa-001")
	actor.Phone = ""

	err := service.RequestCode(context.Background(), actor, "EMG1")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "phone", validation.Field)
}

func TestRequestCode_AlreadyVerified(t *testing.T) {
	service, m := newTestVerificationService(t)
	ctx := context.Background()

	m.repo.EXPECT().GetByReference(ctx, "EMG1").Return(&models.EmergencyAlert{
		ID:         uuid.New(),
		AlertID:    "EMG1",
		ReporterID: "fa-001",
		IsVerified: true,
	}, nil)

	err := service.RequestCode(ctx, firstAider("fa-001"), "EMG1")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "status", validation.Field)
}

func TestConfirmCode_MatchVerifiesAlert(t *testing.T) {
	// Setup
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	alert := &models.EmergencyAlert{
		ID:         uuid.New(),
		AlertID:    "EMG1",
		ReporterID: "fa-001",
		Status:     models.AlertPending,
	}
	pending := &models.AlertVerification{
		ID:               uuid.New(),
		AlertID:          alert.ID,
		Method:           models.VerifyBySMS,
		VerificationCode: "482913",
		CreatedAt:        time.Now().UTC().Add(-time.Minute),
	}

	// Expectations
	m.repo.EXPECT().GetByReference(ctx, "EMG1").Return(alert, nil)
	m.repo.EXPECT().LatestPendingVerification(ctx, alert.ID, gomock.Any()).Return(pending, nil)
	m.repo.EXPECT().SaveVerification(ctx, pending).
		DoAndReturn(func(_ context.Context, verification *models.AlertVerification) error {
			assert.True(t, verification.IsSuccessful)
			assert.True(t, verification.ResponseReceived)
			assert.NotNil(t, verification.RespondedAt)
			return nil
		})
	m.alerts.EXPECT().
		UpdateStatus(ctx, "EMG1", models.AlertVerified, "fa-001", gomock.Any()).
		Return(alert, nil)

	// Action
	verified, err := service.ConfirmCode(ctx, firstAider("fa-001"), "EMG1", "482913")

	// Checks
	require.NoError(t, err)
	assert.True(t, verified)
}

func TestConfirmCode_MismatchIsRecordedNotFatal(t *testing.T) {
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	alert := &models.EmergencyAlert{ID: uuid.New(), AlertID: "EMG1", ReporterID: "fa-001"}
	pending := &models.AlertVerification{
		ID:               uuid.New(),
		AlertID:          alert.ID,
		VerificationCode: "482913",
	}

	m.repo.EXPECT().GetByReference(ctx, "EMG1").Return(alert, nil)
	m.repo.EXPECT().LatestPendingVerification(ctx, alert.ID, gomock.Any()).Return(pending, nil)
	m.repo.EXPECT().SaveVerification(ctx, pending).
		DoAndReturn(func(_ context.Context, verification *models.AlertVerification) error {
			assert.False(t, verification.IsSuccessful)
			assert.True(t, verification.ResponseReceived)
			return nil
		})

	verified, err := service.ConfirmCode(ctx, firstAider("fa-001"), "EMG1", "000000")

	require.NoError(t, err)
	assert.False(t, verified)
}

func TestConfirmCode_ExpiredCode(t *testing.T) {
	service, m := newTestVerificationService(t)
	ctx := context.Background()
	alert := &models.EmergencyAlert{ID: uuid.New(), AlertID: "EMG1", ReporterID: "fa-001"}

	m.repo.EXPECT().GetByReference(ctx, "EMG1").Return(alert, nil)
	m.repo.EXPECT().LatestPendingVerification(ctx, alert.ID, gomock.Any()).Return(nil, nil)

	_, err := service.ConfirmCode(ctx, firstAider("fa-001"), "EMG1", "482913")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "code", validation.Field)
}

func TestConfirmCode_AlreadyVerifiedShortCircuits(t *testing.T) {
	service, m := newTestVerificationService(t)
	ctx := context.Background()

	m.repo.EXPECT().GetByReference(ctx, "EMG1").Return(&models.EmergencyAlert{
		ID:         uuid.New(),
		AlertID:    "EMG1",
		ReporterID: "fa-001",
		IsVerified: true,
	}, nil)

	verified, err := service.ConfirmCode(ctx, firstAider("fa-001"), "EMG1", "482913")

	require.NoError(t, err)
	assert.True(t, verified)
}
