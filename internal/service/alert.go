package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/metrics"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/pkg/geo"
)

// duplicateAlertWindow suppresses repeated taps on the panic button: an
// active alert from the same reporter within this window is returned
// instead of creating a second one.
const duplicateAlertWindow = 2 * time.Minute

const (
	alertIDPrefix  = "EMG"
	alertIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	alertIDSuffix  = 6

	defaultHistoryLimit = 50
	defaultUpdatesLimit = 100
)

// AlertRepository is the storage contract for emergency alerts and
// their audit timeline.
//
// FindRecentActiveByReporter and LatestPendingVerification return
// (nil, nil) when no row matches; GetByID and GetByReference return a
// NotFoundError instead.
type AlertRepository interface {
	// Create stores the alert and its first timeline entry in one
	// transaction.
	Create(ctx context.Context, alert *models.EmergencyAlert, initial *models.EmergencyUpdate) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.EmergencyAlert, error)
	GetByReference(ctx context.Context, reference string) (*models.EmergencyAlert, error)
	FindRecentActiveByReporter(ctx context.Context, reporterID string, since time.Time) (*models.EmergencyAlert, error)

	// ChangeStatus persists the alert's status, flags and lifecycle
	// timestamps together with the audit entry in one transaction.
	ChangeStatus(ctx context.Context, alert *models.EmergencyAlert, update *models.EmergencyUpdate) error

	// UpdateLocation persists new coordinates together with the audit
	// entry in one transaction.
	UpdateLocation(ctx context.Context, alert *models.EmergencyAlert, update *models.EmergencyUpdate) error

	AppendUpdate(ctx context.Context, update *models.EmergencyUpdate) error
	ListUpdates(ctx context.Context, alertID uuid.UUID, limit int) ([]*models.EmergencyUpdate, error)
	ListByReporter(ctx context.Context, reporterID string, limit int) ([]*models.EmergencyAlert, error)
	ListActive(ctx context.Context) ([]*models.EmergencyAlert, error)

	// DeleteCascade removes the alert and everything it owns:
	// communications with their logs, checklists and assessments,
	// timeline entries and verifications.
	DeleteCascade(ctx context.Context, id uuid.UUID) error

	CreateVerification(ctx context.Context, verification *models.AlertVerification) error
	LatestPendingVerification(ctx context.Context, alertID uuid.UUID, since time.Time) (*models.AlertVerification, error)
	SaveVerification(ctx context.Context, verification *models.AlertVerification) error
	IncrementVerificationAttempts(ctx context.Context, alertID uuid.UUID) error
}

// AlertService manages the emergency alert lifecycle.
type AlertService interface {
	// CreateAlert registers a new emergency. A still-active alert from
	// the same reporter created within the duplicate window is returned
	// instead of a new one.
	CreateAlert(ctx context.Context, actor models.Actor, alert *models.EmergencyAlert) (*models.EmergencyAlert, error)

	GetAlert(ctx context.Context, reference string) (*models.EmergencyAlert, error)
	UpdateStatus(ctx context.Context, reference string, status models.AlertStatus, actorID string, details map[string]any) (*models.EmergencyAlert, error)
	UpdateLocation(ctx context.Context, actor models.Actor, reference string, latitude, longitude float64, address string) (*models.EmergencyAlert, error)
	CancelAlert(ctx context.Context, actor models.Actor, reference, reason string) (*models.EmergencyAlert, error)
	GetHistory(ctx context.Context, actor models.Actor, limit int) ([]*models.EmergencyAlert, error)
	ListActive(ctx context.Context) ([]*models.EmergencyAlert, error)
	GetUpdates(ctx context.Context, reference string, limit int) ([]*models.EmergencyUpdate, error)

	// DeleteAlert permanently removes an alert and all owned records.
	// System administrators only.
	DeleteAlert(ctx context.Context, actor models.Actor, reference string) error
}

type alertService struct {
	repo   AlertRepository
	logger *logrus.Logger
}

// NewAlertService creates an AlertService.
func NewAlertService(repo AlertRepository, logger *logrus.Logger) AlertService {
	return &alertService{repo: repo, logger: logger}
}

func (s *alertService) CreateAlert(ctx context.Context, actor models.Actor, alert *models.EmergencyAlert) (*models.EmergencyAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "alert",
		"method":         "CreateAlert",
		"reporter_id":    actor.UserID,
		"emergency_type": alert.EmergencyType,
	})
	log.Info("Creating emergency alert")

	if !geo.ValidCoordinates(alert.Latitude, alert.Longitude) {
		return nil, apperrors.NewValidation("latitude,longitude", "coordinates are out of range")
	}
	if alert.EmergencyType == "" {
		return nil, apperrors.NewValidation("emergency_type", "emergency type is required")
	}
	if !geo.KenyaBounds.Contains(alert.Latitude, alert.Longitude) {
		log.WithFields(logrus.Fields{
			"latitude":  alert.Latitude,
			"longitude": alert.Longitude,
		}).Warn("Alert coordinates fall outside the service area")
	}

	now := time.Now().UTC()

	existing, err := s.repo.FindRecentActiveByReporter(ctx, actor.UserID, now.Add(-duplicateAlertWindow))
	if err != nil {
		return nil, fmt.Errorf("service: could not check for duplicate alert: %w", err)
	}
	if existing != nil {
		log.WithField("alert_id", existing.AlertID).Info("Duplicate alert suppressed, returning active one")
		return existing, nil
	}

	alert.AlertID = generateAlertReference(now)
	alert.ReporterID = actor.UserID
	alert.Status = models.AlertPending
	alert.IsActive = true
	if alert.Priority == "" {
		alert.Priority = models.PriorityMedium
	}

	initial := &models.EmergencyUpdate{
		UpdateType: models.UpdateCreated,
		NewStatus:  models.AlertPending,
		Details: map[string]any{
			"emergency_type": string(alert.EmergencyType),
			"coordinates":    fmt.Sprintf("%f,%f", alert.Latitude, alert.Longitude),
			"description":    alert.Description,
		},
		CreatedBy: actor.UserID,
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, alert, initial); err != nil {
		log.WithError(err).Error("Failed to create alert")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}
	metrics.AlertsCreated.WithLabelValues(string(alert.EmergencyType)).Inc()

	log.WithField("alert_id", alert.AlertID).Info("Emergency alert created")
	return alert, nil
}

func (s *alertService) GetAlert(ctx context.Context, reference string) (*models.EmergencyAlert, error) {
	alert, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	return alert, nil
}

func (s *alertService) UpdateStatus(ctx context.Context, reference string, status models.AlertStatus, actorID string, details map[string]any) (*models.EmergencyAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "UpdateStatus",
		"alert_id":   reference,
		"new_status": status,
	})
	log.Info("Updating alert status")

	alert, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	if alert.Status.IsFinal() {
		return nil, apperrors.NewValidation("status", fmt.Sprintf("alert in status %q can no longer change", alert.Status))
	}
	if alert.Status == status {
		return alert, nil
	}

	now := time.Now().UTC()
	previous := alert.Status
	alert.Status = status

	switch status {
	case models.AlertVerified:
		alert.IsVerified = true
		alert.VerifiedAt = &now
	case models.AlertDispatched:
		alert.DispatchedAt = &now
	case models.AlertCompleted:
		alert.CompletedAt = &now
		alert.IsActive = false
	case models.AlertCancelled:
		alert.CancelledAt = &now
		alert.IsActive = false
	case models.AlertExpired:
		alert.IsActive = false
	}

	update := &models.EmergencyUpdate{
		AlertID:        alert.ID,
		UpdateType:     updateTypeForStatus(status),
		PreviousStatus: previous,
		NewStatus:      status,
		Details:        details,
		CreatedBy:      actorID,
		CreatedAt:      now,
	}

	if err := s.repo.ChangeStatus(ctx, alert, update); err != nil {
		log.WithError(err).Error("Failed to update alert status")
		return nil, fmt.Errorf("service: could not update alert status: %w", err)
	}

	log.Info("Alert status updated")
	return alert, nil
}

func (s *alertService) UpdateLocation(ctx context.Context, actor models.Actor, reference string, latitude, longitude float64, address string) (*models.EmergencyAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateLocation",
		"alert_id": reference,
	})
	log.Info("Updating alert location")

	if !geo.ValidCoordinates(latitude, longitude) {
		return nil, apperrors.NewValidation("latitude,longitude", "coordinates are out of range")
	}

	alert, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	if err := authorizeAlertAccess(actor, alert); err != nil {
		return nil, err
	}
	if !alert.IsActive {
		return nil, apperrors.NewValidation("status", "cannot move an inactive alert")
	}

	now := time.Now().UTC()
	update := &models.EmergencyUpdate{
		AlertID:    alert.ID,
		UpdateType: models.UpdateLocationUpdated,
		Details: map[string]any{
			"previous_coordinates": fmt.Sprintf("%f,%f", alert.Latitude, alert.Longitude),
			"new_coordinates":      fmt.Sprintf("%f,%f", latitude, longitude),
			"address":              address,
		},
		CreatedBy: actor.UserID,
		CreatedAt: now,
	}

	alert.Latitude = latitude
	alert.Longitude = longitude
	if address != "" {
		alert.Address = address
	}

	if err := s.repo.UpdateLocation(ctx, alert, update); err != nil {
		log.WithError(err).Error("Failed to update alert location")
		return nil, fmt.Errorf("service: could not update alert location: %w", err)
	}

	return alert, nil
}

func (s *alertService) CancelAlert(ctx context.Context, actor models.Actor, reference, reason string) (*models.EmergencyAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "CancelAlert",
		"alert_id": reference,
	})
	log.Info("Cancelling alert")

	alert, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	if err := authorizeAlertAccess(actor, alert); err != nil {
		return nil, err
	}
	if alert.Status.IsFinal() {
		return nil, apperrors.NewValidation("status", fmt.Sprintf("alert in status %q can no longer be cancelled", alert.Status))
	}

	details := map[string]any{"reason": reason}
	return s.UpdateStatus(ctx, reference, models.AlertCancelled, actor.UserID, details)
}

func (s *alertService) GetHistory(ctx context.Context, actor models.Actor, limit int) ([]*models.EmergencyAlert, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	alerts, err := s.repo.ListByReporter(ctx, actor.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: could not list alert history: %w", err)
	}
	return alerts, nil
}

func (s *alertService) ListActive(ctx context.Context) ([]*models.EmergencyAlert, error) {
	alerts, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active alerts: %w", err)
	}
	return alerts, nil
}

func (s *alertService) GetUpdates(ctx context.Context, reference string, limit int) ([]*models.EmergencyUpdate, error) {
	if limit <= 0 {
		limit = defaultUpdatesLimit
	}

	alert, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}

	updates, err := s.repo.ListUpdates(ctx, alert.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: could not list alert updates: %w", err)
	}
	return updates, nil
}

func (s *alertService) DeleteAlert(ctx context.Context, actor models.Actor, reference string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "DeleteAlert",
		"alert_id": reference,
	})

	if actor.Role != models.RoleSystemAdmin {
		return apperrors.NewValidation("role", "only system administrators can delete alerts")
	}

	alert, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return fmt.Errorf("service: could not get alert: %w", err)
	}

	if err := s.repo.DeleteCascade(ctx, alert.ID); err != nil {
		log.WithError(err).Error("Failed to delete alert")
		return fmt.Errorf("service: could not delete alert: %w", err)
	}

	log.Warn("Alert and all owned records deleted")
	return nil
}

// authorizeAlertAccess allows the reporting first aider and admins to
// act on an alert.
func authorizeAlertAccess(actor models.Actor, alert *models.EmergencyAlert) error {
	if actor.Role.IsAdmin() {
		return nil
	}
	if alert.ReporterID == actor.UserID {
		return nil
	}
	return apperrors.NewNotFound("alert", alert.AlertID)
}

func updateTypeForStatus(status models.AlertStatus) models.UpdateType {
	switch status {
	case models.AlertVerified:
		return models.UpdateVerified
	case models.AlertHospitalSelected:
		return models.UpdateHospitalAssigned
	case models.AlertDispatched:
		return models.UpdateAmbulanceDispatched
	case models.AlertCancelled:
		return models.UpdateCancelled
	case models.AlertCompleted:
		return models.UpdateCompleted
	default:
		return models.UpdateStatusChanged
	}
}

// generateAlertReference builds the human-readable alert reference:
// EMG, a minute-resolution timestamp and six random characters.
func generateAlertReference(now time.Time) string {
	suffix := make([]byte, alertIDSuffix)
	for i := range suffix {
		suffix[i] = alertIDCharset[rand.Intn(len(alertIDCharset))]
	}
	return alertIDPrefix + now.Format("200601021504") + string(suffix)
}
