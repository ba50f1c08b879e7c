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

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/notification"
	notifmocks "github.com/almamutuguti/Haven-Backend-sub000/internal/notification/mocks"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/service/mocks"
)

type commMocks struct {
	repo      *mocks.MockCommunicationRepository
	alerts    *mocks.MockAlertRepository
	hospitals *mocks.MockHospitalRepository
	sender    *notifmocks.MockSender
	publisher *notifmocks.MockPublisher
}

func newTestCommunicationService(t *testing.T) (CommunicationService, commMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := commMocks{
		repo:      mocks.NewMockCommunicationRepository(ctrl),
		alerts:    mocks.NewMockAlertRepository(ctrl),
		hospitals: mocks.NewMockHospitalRepository(ctrl),
		sender:    notifmocks.NewMockSender(ctrl),
		publisher: notifmocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		MaxCommunicationAttempts: 3,
		RetryWindow:              5 * time.Minute,
		AcknowledgmentTimeout:    10 * time.Minute,
		StatsWindowDays:          7,
	}

	service := NewCommunicationService(m.repo, m.alerts, m.hospitals, m.sender, m.publisher, logger, cfg)
	return service, m
}

func firstAider(id string) models.Actor {
	return models.Actor{UserID: id, Role: models.RoleFirstAider, Name: "Otieno Odhiambo", Phone: "+254711000111"}
}

func hospitalStaff(id string, hospitalID uuid.UUID) models.Actor {
	return models.Actor{UserID: id, Role: models.RoleHospitalStaff, Name: "Dr. Achieng", HospitalID: hospitalID}
}

func apiOnlyHospital(id uuid.UUID) *models.Hospital {
	return &models.Hospital{
		ID:         id,
		Name:       "Mombasa Coast General",
		APIBaseURL: "https://coastgeneral.example.org/api",
		APIKey:     "hospital-key",
	}
}

func TestCommunicationCreate_DeliversOverAPI(t *testing.T) {
	// Setup
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	alertID := uuid.New()
	hospitalID := uuid.New()
	comm := &models.EmergencyHospitalCommunication{
		AlertID:        alertID,
		HospitalID:     hospitalID,
		ChiefComplaint: "Severe chest pain",
	}

	// Expectations
	m.alerts.EXPECT().GetByID(ctx, alertID).
		Return(&models.EmergencyAlert{ID: alertID, AlertID: "EMG202608261030ABCDEF"}, nil)
	m.hospitals.EXPECT().GetByID(ctx, hospitalID).Return(apiOnlyHospital(hospitalID), nil)
	m.repo.EXPECT().Create(ctx, comm).
		DoAndReturn(func(_ context.Context, c *models.EmergencyHospitalCommunication) error {
			c.ID = uuid.New()
			return nil
		})
	m.repo.EXPECT().UpdateDelivery(ctx, comm).Return(nil)
	m.sender.EXPECT().Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) (*notification.Result, error) {
			assert.Equal(t, models.ChannelAPI, msg.Channel)
			assert.Equal(t, "https://coastgeneral.example.org/api", msg.Recipient)
			return &notification.Result{ResponseCode: 200}, nil
		})
	m.repo.EXPECT().AppendLog(ctx, gomock.Any()).Return(nil)

	// Action
	err := service.Create(ctx, firstAider("fa-001"), comm)

	// Checks
	require.NoError(t, err)
	assert.Equal(t, models.CommSent, comm.Status)
	assert.Equal(t, "EMG202608261030ABCDEF", comm.AlertReferenceID)
	assert.Equal(t, "fa-001", comm.FirstAiderID)
	assert.Equal(t, 1, comm.CommunicationAttempts)
	assert.NotNil(t, comm.SentToHospitalAt)
	assert.Equal(t, models.PriorityHigh, comm.Priority)
}

func TestCommunicationCreate_RejectsHospitalStaff(t *testing.T) {
	service, _ := newTestCommunicationService(t)

	err := service.Create(context.Background(), hospitalStaff("staff-01", uuid.New()), &models.EmergencyHospitalCommunication{
		AlertID:        uuid.New(),
		HospitalID:     uuid.New(),
		ChiefComplaint: "Fracture",
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "role", validation.Field)
}

func TestRedeliver_AllChannelsFailMarksFailed(t *testing.T) {
	// Setup: the hospital has an API, SMS and a voice line configured.
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	hospitalID := uuid.New()
	hospital := apiOnlyHospital(hospitalID)
	hospital.SMSNotifications = true
	hospital.EmergencyPhone = "+254720000001"
	hospital.Phone = "+254720000002"

	comm := &models.EmergencyHospitalCommunication{
		ID:               uuid.New(),
		HospitalID:       hospitalID,
		AlertReferenceID: "EMG1",
		Status:           models.CommFailed,
		ChiefComplaint:   "Road traffic accident",
		Priority:         models.PriorityCritical,
	}

	// Expectations
	m.hospitals.EXPECT().GetByID(ctx, hospitalID).Return(hospital, nil)
	m.repo.EXPECT().UpdateDelivery(ctx, comm).Return(nil)
	m.sender.EXPECT().Send(ctx, gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(3)
	// Intermediate failures are logged standalone; the last one rides
	// the failed-status transaction.
	m.repo.EXPECT().AppendLog(ctx, gomock.Any()).Return(nil).Times(2)
	m.repo.EXPECT().UpdateStatusWithLog(ctx, comm, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.EmergencyHospitalCommunication, entry *models.CommunicationLog) error {
			assert.Equal(t, models.CommFailed, c.Status)
			assert.False(t, entry.IsSuccessful)
			return nil
		})

	// Action
	err := service.Redeliver(ctx, comm)

	// Checks: exhaustion is not an error, the retry scan picks it up.
	require.NoError(t, err)
	assert.Equal(t, models.CommFailed, comm.Status)
	assert.Equal(t, 1, comm.CommunicationAttempts)
}

func TestAcknowledge_OpensChecklistAndNotifies(t *testing.T) {
	// Setup
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	hospitalID := uuid.New()
	commID := uuid.New()
	sentAt := time.Now().UTC().Add(-2 * time.Minute)
	stored := &models.EmergencyHospitalCommunication{
		ID:               commID,
		HospitalID:       hospitalID,
		AlertReferenceID: "EMG1",
		FirstAiderID:     "fa-001",
		Status:           models.CommSent,
		SentToHospitalAt: &sentAt,
	}

	// Expectations
	m.repo.EXPECT().GetByID(ctx, commID).Return(stored, nil)
	m.repo.EXPECT().UpdateStatusWithLog(ctx, stored, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.EmergencyHospitalCommunication, entry *models.CommunicationLog) error {
			assert.Equal(t, models.CommAcknowledged, c.Status)
			assert.Equal(t, "staff-07", c.HospitalAcknowledgedBy)
			assert.NotNil(t, c.HospitalAcknowledgedAt)
			assert.Equal(t, models.MessageAcknowledgment, entry.MessageType)
			return nil
		})
	m.repo.EXPECT().CreateChecklist(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, checklist *models.HospitalPreparationChecklist) error {
			assert.Equal(t, commID, checklist.CommunicationID)
			return nil
		})
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notification.Event) error {
			assert.Equal(t, "fa-001", event.RecipientID)
			assert.Equal(t, "acknowledgment", event.Kind)
			return nil
		})

	// Action
	comm, err := service.Acknowledge(ctx, hospitalStaff("staff-07", hospitalID), commID, "ED team briefed")

	// Checks
	require.NoError(t, err)
	assert.Equal(t, models.CommAcknowledged, comm.Status)
	assert.Equal(t, "ED team briefed", comm.HospitalPreparationNotes)
}

func TestAcknowledge_RejectsFirstAider(t *testing.T) {
	service, _ := newTestCommunicationService(t)

	_, err := service.Acknowledge(context.Background(), firstAider("fa-001"), uuid.New(), "")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "role", validation.Field)
}

func TestAcknowledge_RejectsOtherHospital(t *testing.T) {
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	commID := uuid.New()

	m.repo.EXPECT().GetByID(ctx, commID).Return(&models.EmergencyHospitalCommunication{
		ID:         commID,
		HospitalID: uuid.New(),
		Status:     models.CommSent,
	}, nil)

	_, err := service.Acknowledge(ctx, hospitalStaff("staff-07", uuid.New()), commID, "")

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUpdateFields_RejectsFirstAiderSettingHospitalFields(t *testing.T) {
	service, _ := newTestCommunicationService(t)
	ready := true

	_, err := service.UpdateFields(context.Background(), firstAider("fa-001"), uuid.New(), models.FieldUpdate{
		DoctorsReady: &ready,
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Field, "doctors_ready")
}

func TestUpdateFields_RejectsMixedRoleFieldsWholesale(t *testing.T) {
	// A single request mixing scene facts with preparation state is
	// rejected entirely, including the fields the caller could set.
	service, _ := newTestCommunicationService(t)
	ready := true

	_, err := service.UpdateFields(context.Background(), firstAider("fa-001"), uuid.New(), models.FieldUpdate{
		VitalSigns:   map[string]any{"pulse": 110},
		DoctorsReady: &ready,
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Field, "doctors_ready")
	assert.NotContains(t, validation.Field, "vital_signs")
}

func TestUpdateFields_EmptyUpdateRejected(t *testing.T) {
	service, _ := newTestCommunicationService(t)

	_, err := service.UpdateFields(context.Background(), firstAider("fa-001"), uuid.New(), models.FieldUpdate{})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "fields", validation.Field)
}

func TestUpdateFields_HospitalCompletionAdvancesToReady(t *testing.T) {
	// Setup: the hospital flips the last preparation flag.
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	hospitalID := uuid.New()
	commID := uuid.New()
	equipmentReady := true
	update := models.FieldUpdate{EquipmentReady: &equipmentReady}

	stored := &models.EmergencyHospitalCommunication{
		ID:           commID,
		HospitalID:   hospitalID,
		FirstAiderID: "fa-001",
		Status:       models.CommPreparing,
	}
	fresh := &models.EmergencyHospitalCommunication{
		ID:               commID,
		HospitalID:       hospitalID,
		FirstAiderID:     "fa-001",
		AlertReferenceID: "EMG1",
		Status:           models.CommPreparing,
		DoctorsReady:     true,
		NursesReady:      true,
		EquipmentReady:   true,
		BedReady:         true,
	}

	// Expectations
	m.repo.EXPECT().GetByID(ctx, commID).Return(stored, nil)
	m.repo.EXPECT().ApplyFieldUpdate(ctx, commID, update).Return(fresh, nil)
	m.repo.EXPECT().AppendLog(ctx, gomock.Any()).Return(nil).AnyTimes()
	// Mirror into the checklist.
	m.repo.EXPECT().GetChecklist(ctx, commID).
		Return(&models.HospitalPreparationChecklist{ID: uuid.New(), CommunicationID: commID}, nil)
	m.repo.EXPECT().UpdateChecklist(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, checklist *models.HospitalPreparationChecklist) error {
			assert.True(t, checklist.VitalMonitorsReady)
			return nil
		})
	// The readiness guard runs in the database.
	m.repo.EXPECT().MarkReadyIfPrepared(ctx, commID, gomock.Any(), gomock.Any()).Return(true, nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	// Action
	result, err := service.UpdateFields(ctx, hospitalStaff("staff-07", hospitalID), commID, update)

	// Checks
	require.NoError(t, err)
	assert.Equal(t, models.CommReady, result.Status)
	assert.NotNil(t, result.HospitalReadyAt)
}

func TestUpdateFields_GuardLosesRace(t *testing.T) {
	// The in-memory view says ready, but the database guard does not
	// hold; the handoff must not be advanced.
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	hospitalID := uuid.New()
	commID := uuid.New()
	bedReady := true
	update := models.FieldUpdate{BedReady: &bedReady}

	stored := &models.EmergencyHospitalCommunication{
		ID:         commID,
		HospitalID: hospitalID,
		Status:     models.CommPreparing,
	}
	fresh := &models.EmergencyHospitalCommunication{
		ID:             commID,
		HospitalID:     hospitalID,
		Status:         models.CommPreparing,
		DoctorsReady:   true,
		NursesReady:    true,
		EquipmentReady: true,
		BedReady:       true,
	}

	m.repo.EXPECT().GetByID(ctx, commID).Return(stored, nil)
	m.repo.EXPECT().ApplyFieldUpdate(ctx, commID, update).Return(fresh, nil)
	m.repo.EXPECT().AppendLog(ctx, gomock.Any()).Return(nil).AnyTimes()
	m.repo.EXPECT().GetChecklist(ctx, commID).
		Return(&models.HospitalPreparationChecklist{ID: uuid.New(), CommunicationID: commID}, nil)
	m.repo.EXPECT().MarkReadyIfPrepared(ctx, commID, gomock.Any(), gomock.Any()).Return(false, nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := service.UpdateFields(ctx, hospitalStaff("staff-07", hospitalID), commID, update)

	require.NoError(t, err)
	assert.Equal(t, models.CommPreparing, result.Status)
	assert.Nil(t, result.HospitalReadyAt)
}

func TestUpdateFields_FirstHospitalTouchStartsPreparing(t *testing.T) {
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	hospitalID := uuid.New()
	commID := uuid.New()
	doctors := true
	update := models.FieldUpdate{DoctorsReady: &doctors}

	stored := &models.EmergencyHospitalCommunication{
		ID:         commID,
		HospitalID: hospitalID,
		Status:     models.CommAcknowledged,
	}
	fresh := &models.EmergencyHospitalCommunication{
		ID:           commID,
		HospitalID:   hospitalID,
		Status:       models.CommAcknowledged,
		DoctorsReady: true,
	}

	m.repo.EXPECT().GetByID(ctx, commID).Return(stored, nil)
	m.repo.EXPECT().ApplyFieldUpdate(ctx, commID, update).Return(fresh, nil)
	m.repo.EXPECT().AppendLog(ctx, gomock.Any()).Return(nil).AnyTimes()
	m.repo.EXPECT().GetChecklist(ctx, commID).
		Return(&models.HospitalPreparationChecklist{ID: uuid.New(), CommunicationID: commID}, nil)
	m.repo.EXPECT().UpdateChecklist(ctx, gomock.Any()).Return(nil)
	m.repo.EXPECT().UpdateStatusWithLog(ctx, fresh, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.EmergencyHospitalCommunication, _ *models.CommunicationLog) error {
			assert.Equal(t, models.CommPreparing, c.Status)
			return nil
		})
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := service.UpdateFields(ctx, hospitalStaff("staff-07", hospitalID), commID, update)

	require.NoError(t, err)
	assert.Equal(t, models.CommPreparing, result.Status)
}

func TestUpdateStatus_EnRouteRequiresETA(t *testing.T) {
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	commID := uuid.New()

	m.repo.EXPECT().GetByID(ctx, commID).Return(&models.EmergencyHospitalCommunication{
		ID:           commID,
		FirstAiderID: "fa-001",
		Status:       models.CommReady,
	}, nil)

	_, err := service.UpdateStatus(ctx, firstAider("fa-001"), commID, models.CommEnRoute, "")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "estimated_arrival_minutes", validation.Field)
}

func TestUpdateStatus_EnRouteComputesArrivalTime(t *testing.T) {
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	commID := uuid.New()
	eta := 15

	m.repo.EXPECT().GetByID(ctx, commID).Return(&models.EmergencyHospitalCommunication{
		ID:                      commID,
		FirstAiderID:            "fa-001",
		Status:                  models.CommReady,
		EstimatedArrivalMinutes: &eta,
	}, nil)
	m.repo.EXPECT().UpdateStatusWithLog(ctx, gomock.Any(), gomock.Any()).Return(nil)

	comm, err := service.UpdateStatus(ctx, firstAider("fa-001"), commID, models.CommEnRoute, "leaving scene")

	require.NoError(t, err)
	assert.Equal(t, models.CommEnRoute, comm.Status)
	require.NotNil(t, comm.EstimatedArrivalTime)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), *comm.EstimatedArrivalTime, 5*time.Second)
}

func TestUpdateStatus_ArrivedStampsArrivalTime(t *testing.T) {
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	commID := uuid.New()

	m.repo.EXPECT().GetByID(ctx, commID).Return(&models.EmergencyHospitalCommunication{
		ID:           commID,
		FirstAiderID: "fa-001",
		Status:       models.CommEnRoute,
	}, nil)
	m.repo.EXPECT().UpdateStatusWithLog(ctx, gomock.Any(), gomock.Any()).Return(nil)

	comm, err := service.UpdateStatus(ctx, firstAider("fa-001"), commID, models.CommArrived, "")

	require.NoError(t, err)
	assert.Equal(t, models.CommArrived, comm.Status)
	assert.NotNil(t, comm.PatientArrivedAt)
}

func TestUpdateStatus_IndirectStatusRejected(t *testing.T) {
	service, _ := newTestCommunicationService(t)

	_, err := service.UpdateStatus(context.Background(), firstAider("fa-001"), uuid.New(), models.CommReady, "")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "status", validation.Field)
}

func TestUpdateStatus_IllegalTransitionRejected(t *testing.T) {
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	commID := uuid.New()

	m.repo.EXPECT().GetByID(ctx, commID).Return(&models.EmergencyHospitalCommunication{
		ID:           commID,
		FirstAiderID: "fa-001",
		Status:       models.CommPending,
	}, nil)

	_, err := service.UpdateStatus(ctx, firstAider("fa-001"), commID, models.CommArrived, "")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestSubmitAssessment_TriageUpdatesPriority(t *testing.T) {
	// Setup
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	commID := uuid.New()
	eyes, verbal, motor := 2, 3, 4
	assessment := &models.FirstAiderAssessment{
		GCSEyes:        &eyes,
		GCSVerbal:      &verbal,
		GCSMotor:       &motor,
		TriageCategory: models.TriageImmediate,
	}

	// Expectations
	m.repo.EXPECT().GetByID(ctx, commID).Return(&models.EmergencyHospitalCommunication{
		ID:           commID,
		FirstAiderID: "fa-001",
		Status:       models.CommAcknowledged,
		Priority:     models.PriorityHigh,
	}, nil)
	m.repo.EXPECT().GetAssessment(ctx, commID).Return(nil, nil)
	m.repo.EXPECT().CreateAssessment(ctx, assessment).Return(nil)
	m.repo.EXPECT().UpdatePriority(ctx, commID, models.PriorityCritical).Return(nil)
	m.repo.EXPECT().AppendLog(ctx, gomock.Any()).Return(nil)

	// Action
	stored, err := service.SubmitAssessment(ctx, firstAider("fa-001"), commID, assessment)

	// Checks
	require.NoError(t, err)
	require.NotNil(t, stored.GCSTotal)
	assert.Equal(t, 9, *stored.GCSTotal)
	assert.Equal(t, commID, stored.CommunicationID)
}

func TestSubmitAssessment_DuplicateRejected(t *testing.T) {
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	commID := uuid.New()

	m.repo.EXPECT().GetByID(ctx, commID).Return(&models.EmergencyHospitalCommunication{
		ID:           commID,
		FirstAiderID: "fa-001",
	}, nil)
	m.repo.EXPECT().GetAssessment(ctx, commID).
		Return(&models.FirstAiderAssessment{ID: uuid.New(), CommunicationID: commID}, nil)

	_, err := service.SubmitAssessment(ctx, firstAider("fa-001"), commID, &models.FirstAiderAssessment{
		TriageCategory: models.TriageMinor,
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "assessment", validation.Field)
}

func TestSubmitAssessment_PartialGCSRejected(t *testing.T) {
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	commID := uuid.New()
	eyes := 3

	m.repo.EXPECT().GetByID(ctx, commID).Return(&models.EmergencyHospitalCommunication{
		ID:           commID,
		FirstAiderID: "fa-001",
	}, nil)
	m.repo.EXPECT().GetAssessment(ctx, commID).Return(nil, nil)

	_, err := service.SubmitAssessment(ctx, firstAider("fa-001"), commID, &models.FirstAiderAssessment{
		GCSEyes:        &eyes,
		TriageCategory: models.TriageDelayed,
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "gcs", validation.Field)
}

func TestUpdateChecklist_CompletionIsDerived(t *testing.T) {
	// Setup: every item but one is already ticked.
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	hospitalID := uuid.New()
	commID := uuid.New()
	almostDone := &models.HospitalPreparationChecklist{
		ID:                        uuid.New(),
		CommunicationID:           commID,
		EmergencyDoctorAssigned:   true,
		SpecialistDoctorNotified:  true,
		NursingTeamReady:          true,
		AnesthesiologistAlerted:   true,
		EmergencyBedPrepared:      true,
		OperatingRoomReserved:     true,
		ICUBedAvailable:           true,
		VitalMonitorsReady:        true,
		VentilatorAvailable:       true,
		DefibrillatorReady:        true,
		EmergencyMedicationsReady: true,
		LabTestsOrdered:           true,
		ImagingReady:              true,
		BloodProductsAvailable:    true,
		PharmacyAlerted:           true,
	}
	notified := true

	// Expectations
	m.repo.EXPECT().GetByID(ctx, commID).Return(&models.EmergencyHospitalCommunication{
		ID:         commID,
		HospitalID: hospitalID,
		Status:     models.CommPreparing,
	}, nil)
	m.repo.EXPECT().GetChecklist(ctx, commID).Return(almostDone, nil)
	m.repo.EXPECT().UpdateChecklist(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, checklist *models.HospitalPreparationChecklist) error {
			assert.True(t, checklist.ChecklistCompleted)
			assert.Equal(t, "staff-07", checklist.CompletedBy)
			assert.NotNil(t, checklist.CompletedAt)
			return nil
		})
	m.repo.EXPECT().AppendLog(ctx, gomock.Any()).Return(nil)

	// Action
	checklist, err := service.UpdateChecklist(ctx, hospitalStaff("staff-07", hospitalID), commID, models.ChecklistUpdate{
		BloodBankNotified: &notified,
	})

	// Checks
	require.NoError(t, err)
	assert.True(t, checklist.ChecklistCompleted)
	assert.Equal(t, 100.0, checklist.CompletionPercentage())
}

func TestUpdateChecklist_UntickingRevokesCompletion(t *testing.T) {
	service, m := newTestCommunicationService(t)
	ctx := context.Background()
	hospitalID := uuid.New()
	commID := uuid.New()
	completedAt := time.Now().UTC()
	done := &models.HospitalPreparationChecklist{
		ID:                        uuid.New(),
		CommunicationID:           commID,
		EmergencyDoctorAssigned:   true,
		SpecialistDoctorNotified:  true,
		NursingTeamReady:          true,
		AnesthesiologistAlerted:   true,
		EmergencyBedPrepared:      true,
		OperatingRoomReserved:     true,
		ICUBedAvailable:           true,
		VitalMonitorsReady:        true,
		VentilatorAvailable:       true,
		DefibrillatorReady:        true,
		EmergencyMedicationsReady: true,
		LabTestsOrdered:           true,
		ImagingReady:              true,
		BloodProductsAvailable:    true,
		PharmacyAlerted:           true,
		BloodBankNotified:         true,
		ChecklistCompleted:        true,
		CompletedAt:               &completedAt,
		CompletedBy:               "staff-07",
	}
	unticked := false

	m.repo.EXPECT().GetByID(ctx, commID).Return(&models.EmergencyHospitalCommunication{
		ID:         commID,
		HospitalID: hospitalID,
		Status:     models.CommReady,
	}, nil)
	m.repo.EXPECT().GetChecklist(ctx, commID).Return(done, nil)
	m.repo.EXPECT().UpdateChecklist(ctx, gomock.Any()).Return(nil)
	m.repo.EXPECT().AppendLog(ctx, gomock.Any()).Return(nil)

	checklist, err := service.UpdateChecklist(ctx, hospitalStaff("staff-07", hospitalID), commID, models.ChecklistUpdate{
		ICUBedAvailable: &unticked,
	})

	require.NoError(t, err)
	assert.False(t, checklist.ChecklistCompleted)
	assert.Nil(t, checklist.CompletedAt)
	assert.Empty(t, checklist.CompletedBy)
}

func TestUpdateChecklist_RejectsFirstAider(t *testing.T) {
	service, _ := newTestCommunicationService(t)
	ticked := true

	_, err := service.UpdateChecklist(context.Background(), firstAider("fa-001"), uuid.New(), models.ChecklistUpdate{
		PharmacyAlerted: &ticked,
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "role", validation.Field)
}

func TestStats_HospitalStaffNeedsLinkedHospital(t *testing.T) {
	service, _ := newTestCommunicationService(t)

	_, err := service.Stats(context.Background(), models.Actor{UserID: "staff-07", Role: models.RoleHospitalStaff}, 7)

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "hospital_id", validation.Field)
}

func TestStats_ScopesToFirstAider(t *testing.T) {
	service, m := newTestCommunicationService(t)
	ctx := context.Background()

	m.repo.EXPECT().
		Stats(ctx, gomock.Any(), gomock.Nil(), "fa-001").
		Return(&models.CommunicationStats{TotalCommunications: 4, Acknowledged: 3}, nil)

	stats, err := service.Stats(ctx, firstAider("fa-001"), 0)

	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalCommunications)
}
