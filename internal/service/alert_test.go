package service

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/service/mocks"
)

func newTestAlertService(t *testing.T) (AlertService, *mocks.MockAlertRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAlertRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewAlertService(repo, logger), repo
}

func TestCreateAlert_AssignsReferenceAndDefaults(t *testing.T) {
	// Setup
	service, repo := newTestAlertService(t)
	ctx := context.Background()
	actor := firstAider("fa-001")
	alert := &models.EmergencyAlert{
		EmergencyType: models.EmergencyCardiac,
		Latitude:      -1.2921,
		Longitude:     36.8219,
		Description:   "Collapsed at the bus stage",
	}

	// Expectations
	repo.EXPECT().FindRecentActiveByReporter(ctx, "fa-001", gomock.Any()).Return(nil, nil)
	repo.EXPECT().Create(ctx, alert, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.EmergencyAlert, initial *models.EmergencyUpdate) error {
			a.ID = uuid.New()
			assert.Equal(t, models.UpdateCreated, initial.UpdateType)
			assert.Equal(t, "fa-001", initial.CreatedBy)
			return nil
		})

	// Action
	created, err := service.CreateAlert(ctx, actor, alert)

	// Checks
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^EMG\d{12}[A-Z0-9]{6}$`), created.AlertID)
	assert.Equal(t, "fa-001", created.ReporterID)
	assert.Equal(t, models.AlertPending, created.Status)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.True(t, created.IsActive)
}

func TestCreateAlert_SuppressesDuplicateWithinWindow(t *testing.T) {
	// A second tap on the panic button returns the active alert instead
	// of creating another.
	service, repo := newTestAlertService(t)
	ctx := context.Background()
	existing := &models.EmergencyAlert{
		ID:       uuid.New(),
		AlertID:  "EMG202608261030ABCDEF",
		Status:   models.AlertPending,
		IsActive: true,
	}

	repo.EXPECT().FindRecentActiveByReporter(ctx, "fa-001", gomock.Any()).Return(existing, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	created, err := service.CreateAlert(ctx, firstAider("fa-001"), &models.EmergencyAlert{
		EmergencyType: models.EmergencyMedical,
		Latitude:      -1.2921,
		Longitude:     36.8219,
	})

	require.NoError(t, err)
	assert.Same(t, existing, created)
}

func TestCreateAlert_RejectsBadCoordinates(t *testing.T) {
	service, _ := newTestAlertService(t)

	_, err := service.CreateAlert(context.Background(), firstAider("fa-001"), &models.EmergencyAlert{
		EmergencyType: models.EmergencyMedical,
		Latitude:      -95.0,
		Longitude:     36.8219,
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "latitude,longitude", validation.Field)
}

func TestCreateAlert_RequiresEmergencyType(t *testing.T) {
	service, _ := newTestAlertService(t)

	_, err := service.CreateAlert(context.Background(), firstAider("fa-001"), &models.EmergencyAlert{
		Latitude:  -1.2921,
		Longitude: 36.8219,
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "emergency_type", validation.Field)
}

func TestUpdateStatus_StampsLifecycleTimestamps(t *testing.T) {
	tests := []struct {
		name   string
		status models.AlertStatus
		check  func(t *testing.T, alert *models.EmergencyAlert)
	}{
		{
			name:   "verified sets verification state",
			status: models.AlertVerified,
			check: func(t *testing.T, alert *models.EmergencyAlert) {
				assert.True(t, alert.IsVerified)
				assert.NotNil(t, alert.VerifiedAt)
				assert.True(t, alert.IsActive)
			},
		},
		{
			name:   "dispatched stamps dispatch time",
			status: models.AlertDispatched,
			check: func(t *testing.T, alert *models.EmergencyAlert) {
				assert.NotNil(t, alert.DispatchedAt)
				assert.True(t, alert.IsActive)
			},
		},
		{
			name:   "completed closes the alert",
			status: models.AlertCompleted,
			check: func(t *testing.T, alert *models.EmergencyAlert) {
				assert.NotNil(t, alert.CompletedAt)
				assert.False(t, alert.IsActive)
			},
		},
		{
			name:   "cancelled closes the alert",
			status: models.AlertCancelled,
			check: func(t *testing.T, alert *models.EmergencyAlert) {
				assert.NotNil(t, alert.CancelledAt)
				assert.False(t, alert.IsActive)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestAlertService(t)
			ctx := context.Background()
			alert := &models.EmergencyAlert{
				ID:       uuid.New(),
				AlertID:  "EMG1",
				Status:   models.AlertPending,
				IsActive: true,
			}

			repo.EXPECT().GetByReference(ctx, "EMG1").Return(alert, nil)
			repo.EXPECT().ChangeStatus(ctx, alert, gomock.Any()).
				DoAndReturn(func(_ context.Context, a *models.EmergencyAlert, update *models.EmergencyUpdate) error {
					assert.Equal(t, models.AlertPending, update.PreviousStatus)
					assert.Equal(t, tt.status, update.NewStatus)
					return nil
				})

			updated, err := service.UpdateStatus(ctx, "EMG1", tt.status, "system", nil)

			require.NoError(t, err)
			assert.Equal(t, tt.status, updated.Status)
			tt.check(t, updated)
		})
	}
}

func TestUpdateStatus_FinalStatusIsImmutable(t *testing.T) {
	service, repo := newTestAlertService(t)
	ctx := context.Background()

	repo.EXPECT().GetByReference(ctx, "EMG1").Return(&models.EmergencyAlert{
		AlertID: "EMG1",
		Status:  models.AlertCancelled,
	}, nil)

	_, err := service.UpdateStatus(ctx, "EMG1", models.AlertCompleted, "system", nil)

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "status", validation.Field)
}

func TestUpdateStatus_SameStatusIsNoop(t *testing.T) {
	service, repo := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.EmergencyAlert{AlertID: "EMG1", Status: models.AlertVerified, IsActive: true}

	repo.EXPECT().GetByReference(ctx, "EMG1").Return(alert, nil)
	repo.EXPECT().ChangeStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	updated, err := service.UpdateStatus(ctx, "EMG1", models.AlertVerified, "system", nil)

	require.NoError(t, err)
	assert.Same(t, alert, updated)
}

func TestCancelAlert_RecordsReason(t *testing.T) {
	// Setup
	service, repo := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.EmergencyAlert{
		ID:         uuid.New(),
		AlertID:    "EMG1",
		ReporterID: "fa-001",
		Status:     models.AlertPending,
		IsActive:   true,
	}

	// CancelAlert re-reads the alert through UpdateStatus.
	repo.EXPECT().GetByReference(ctx, "EMG1").Return(alert, nil).Times(2)
	repo.EXPECT().ChangeStatus(ctx, alert, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.EmergencyAlert, update *models.EmergencyUpdate) error {
			assert.Equal(t, models.UpdateCancelled, update.UpdateType)
			assert.Equal(t, "false alarm", update.Details["reason"])
			assert.Equal(t, "fa-001", update.CreatedBy)
			return nil
		})

	// Action
	cancelled, err := service.CancelAlert(ctx, firstAider("fa-001"), "EMG1", "false alarm")

	// Checks
	require.NoError(t, err)
	assert.Equal(t, models.AlertCancelled, cancelled.Status)
	assert.False(t, cancelled.IsActive)
}

func TestCancelAlert_HidesForeignAlert(t *testing.T) {
	service, repo := newTestAlertService(t)
	ctx := context.Background()

	repo.EXPECT().GetByReference(ctx, "EMG1").Return(&models.EmergencyAlert{
		AlertID:    "EMG1",
		ReporterID: "fa-999",
		Status:     models.AlertPending,
	}, nil)

	_, err := service.CancelAlert(ctx, firstAider("fa-001"), "EMG1", "wrong report")

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUpdateLocation_RejectsInactiveAlert(t *testing.T) {
	service, repo := newTestAlertService(t)
	ctx := context.Background()

	repo.EXPECT().GetByReference(ctx, "EMG1").Return(&models.EmergencyAlert{
		AlertID:    "EMG1",
		ReporterID: "fa-001",
		Status:     models.AlertCompleted,
		IsActive:   false,
	}, nil)

	_, err := service.UpdateLocation(ctx, firstAider("fa-001"), "EMG1", -1.30, 36.81, "")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "status", validation.Field)
}

func TestUpdateLocation_MovesActiveAlert(t *testing.T) {
	service, repo := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.EmergencyAlert{
		ID:         uuid.New(),
		AlertID:    "EMG1",
		ReporterID: "fa-001",
		Latitude:   -1.2921,
		Longitude:  36.8219,
		Status:     models.AlertPending,
		IsActive:   true,
	}

	repo.EXPECT().GetByReference(ctx, "EMG1").Return(alert, nil)
	repo.EXPECT().UpdateLocation(ctx, alert, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.EmergencyAlert, update *models.EmergencyUpdate) error {
			assert.Equal(t, models.UpdateLocationUpdated, update.UpdateType)
			return nil
		})

	moved, err := service.UpdateLocation(ctx, firstAider("fa-001"), "EMG1", -1.3032, 36.7073, "Karen Shopping Centre")

	require.NoError(t, err)
	assert.Equal(t, -1.3032, moved.Latitude)
	assert.Equal(t, "Karen Shopping Centre", moved.Address)
}

func TestDeleteAlert_SystemAdminOnly(t *testing.T) {
	service, _ := newTestAlertService(t)

	err := service.DeleteAlert(context.Background(), firstAider("fa-001"), "EMG1")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "role", validation.Field)
}

func TestDeleteAlert_CascadesOwnedRecords(t *testing.T) {
	service, repo := newTestAlertService(t)
	ctx := context.Background()
	admin := models.Actor{UserID: "admin-01", Role: models.RoleSystemAdmin}
	alert := &models.EmergencyAlert{ID: uuid.New(), AlertID: "EMG1"}

	repo.EXPECT().GetByReference(ctx, "EMG1").Return(alert, nil)
	repo.EXPECT().DeleteCascade(ctx, alert.ID).Return(nil)

	require.NoError(t, service.DeleteAlert(ctx, admin, "EMG1"))
}

func TestGetHistory_DefaultsLimit(t *testing.T) {
	service, repo := newTestAlertService(t)
	ctx := context.Background()

	repo.EXPECT().ListByReporter(ctx, "fa-001", defaultHistoryLimit).
		Return([]*models.EmergencyAlert{{AlertID: "EMG1"}}, nil)

	history, err := service.GetHistory(ctx, firstAider("fa-001"), 0)

	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestGenerateAlertReference_Format(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC)

	reference := generateAlertReference(now)

	assert.Regexp(t, regexp.MustCompile(`^EMG202608261030[A-Z0-9]{6}$`), reference)
}
