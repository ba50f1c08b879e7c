package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/metrics"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/notification"
)

// CommunicationRepository is the storage contract for hospital handoffs.
//
// GetChecklist and GetAssessment return (nil, nil) when no record
// exists; GetByID returns a NotFoundError instead.
type CommunicationRepository interface {
	Create(ctx context.Context, comm *models.EmergencyHospitalCommunication) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.EmergencyHospitalCommunication, error)

	// UpdateDelivery persists the delivery bookkeeping fields: status,
	// attempt counters and send timestamps.
	UpdateDelivery(ctx context.Context, comm *models.EmergencyHospitalCommunication) error

	// UpdateStatusWithLog persists the communication state and appends
	// the audit entry in one transaction.
	UpdateStatusWithLog(ctx context.Context, comm *models.EmergencyHospitalCommunication, entry *models.CommunicationLog) error

	// ApplyFieldUpdate patches the given fields and returns the row as
	// persisted, so readiness checks never act on stale state.
	ApplyFieldUpdate(ctx context.Context, id uuid.UUID, update models.FieldUpdate) (*models.EmergencyHospitalCommunication, error)

	// MarkReadyIfPrepared flips status to ready only if all four
	// mandatory booleans are true in the database at that moment.
	// Returns false when the guard did not hold.
	MarkReadyIfPrepared(ctx context.Context, id uuid.UUID, at time.Time, entry *models.CommunicationLog) (bool, error)

	UpdatePriority(ctx context.Context, id uuid.UUID, priority models.AlertPriority) error
	AppendLog(ctx context.Context, entry *models.CommunicationLog) error
	ListLogs(ctx context.Context, communicationID uuid.UUID) ([]*models.CommunicationLog, error)

	CreateChecklist(ctx context.Context, checklist *models.HospitalPreparationChecklist) error
	GetChecklist(ctx context.Context, communicationID uuid.UUID) (*models.HospitalPreparationChecklist, error)
	UpdateChecklist(ctx context.Context, checklist *models.HospitalPreparationChecklist) error

	CreateAssessment(ctx context.Context, assessment *models.FirstAiderAssessment) error
	GetAssessment(ctx context.Context, communicationID uuid.UUID) (*models.FirstAiderAssessment, error)

	ListPendingForHospital(ctx context.Context, hospitalID uuid.UUID) ([]*models.EmergencyHospitalCommunication, error)
	ListActiveForFirstAider(ctx context.Context, firstAiderID string) ([]*models.EmergencyHospitalCommunication, error)
	ListRetryable(ctx context.Context, window time.Duration, maxAttempts int) ([]*models.EmergencyHospitalCommunication, error)
	ListAcknowledgmentTimeouts(ctx context.Context, timeout time.Duration) ([]*models.EmergencyHospitalCommunication, error)
	Stats(ctx context.Context, since time.Time, hospitalID *uuid.UUID, firstAiderID string) (*models.CommunicationStats, error)
}

// CommunicationService drives a handoff from creation through delivery,
// hospital preparation and patient arrival.
type CommunicationService interface {
	Create(ctx context.Context, actor models.Actor, comm *models.EmergencyHospitalCommunication) error
	Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.EmergencyHospitalCommunication, error)

	// Redeliver re-runs the channel chain for a pending or failed
	// handoff; the retry scan is its main caller.
	Redeliver(ctx context.Context, comm *models.EmergencyHospitalCommunication) error

	Acknowledge(ctx context.Context, actor models.Actor, id uuid.UUID, notes string) (*models.EmergencyHospitalCommunication, error)
	UpdateFields(ctx context.Context, actor models.Actor, id uuid.UUID, update models.FieldUpdate) (*models.EmergencyHospitalCommunication, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id uuid.UUID, status models.CommunicationStatus, notes string) (*models.EmergencyHospitalCommunication, error)

	SubmitAssessment(ctx context.Context, actor models.Actor, id uuid.UUID, assessment *models.FirstAiderAssessment) (*models.FirstAiderAssessment, error)
	GetAssessment(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.FirstAiderAssessment, error)

	GetChecklist(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.HospitalPreparationChecklist, error)
	UpdateChecklist(ctx context.Context, actor models.Actor, id uuid.UUID, update models.ChecklistUpdate) (*models.HospitalPreparationChecklist, error)

	ListLogs(ctx context.Context, actor models.Actor, id uuid.UUID) ([]*models.CommunicationLog, error)
	ListPendingForHospital(ctx context.Context, actor models.Actor) ([]*models.EmergencyHospitalCommunication, error)
	ListActiveForFirstAider(ctx context.Context, actor models.Actor) ([]*models.EmergencyHospitalCommunication, error)
	Stats(ctx context.Context, actor models.Actor, days int) (*models.CommunicationStats, error)
}

// statusesSettableDirectly are the transitions callers may request via
// UpdateStatus. Everything else is driven by dedicated operations:
// sent by delivery, acknowledged by Acknowledge, ready by preparation.
var statusesSettableDirectly = map[models.CommunicationStatus]bool{
	models.CommDelivered: true,
	models.CommEnRoute:   true,
	models.CommArrived:   true,
	models.CommCancelled: true,
}

var firstAiderFields = map[string]bool{
	"vital_signs":               true,
	"first_aid_provided":        true,
	"estimated_arrival_minutes": true,
}

var hospitalFields = map[string]bool{
	"doctors_ready":              true,
	"nurses_ready":               true,
	"equipment_ready":            true,
	"bed_ready":                  true,
	"blood_available":            true,
	"hospital_preparation_notes": true,
}

type communicationService struct {
	repo      CommunicationRepository
	alerts    AlertRepository
	hospitals HospitalRepository
	sender    notification.Sender
	publisher notification.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

// NewCommunicationService creates a CommunicationService.
func NewCommunicationService(
	repo CommunicationRepository,
	alerts AlertRepository,
	hospitals HospitalRepository,
	sender notification.Sender,
	publisher notification.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) CommunicationService {
	return &communicationService{
		repo:      repo,
		alerts:    alerts,
		hospitals: hospitals,
		sender:    sender,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

func (s *communicationService) Create(ctx context.Context, actor models.Actor, comm *models.EmergencyHospitalCommunication) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "communication",
		"method":      "Create",
		"alert_id":    comm.AlertID,
		"hospital_id": comm.HospitalID,
	})
	log.Info("Creating hospital communication")

	if actor.Role != models.RoleFirstAider && !actor.Role.IsAdmin() {
		return apperrors.NewValidation("role", "only first aiders can open a hospital communication")
	}
	if strings.TrimSpace(comm.ChiefComplaint) == "" {
		return apperrors.NewValidation("chief_complaint", "chief complaint is required")
	}

	alert, err := s.alerts.GetByID(ctx, comm.AlertID)
	if err != nil {
		log.WithError(err).Warn("Alert lookup failed")
		return fmt.Errorf("service: could not load alert: %w", err)
	}

	hospital, err := s.hospitals.GetByID(ctx, comm.HospitalID)
	if err != nil {
		log.WithError(err).Warn("Hospital lookup failed")
		return fmt.Errorf("service: could not load hospital: %w", err)
	}

	comm.AlertReferenceID = alert.AlertID
	comm.FirstAiderID = actor.UserID
	comm.FirstAiderName = actor.Name
	comm.FirstAiderPhone = actor.Phone
	comm.Status = models.CommPending
	if comm.Priority == "" {
		comm.Priority = models.PriorityHigh
	}

	if err := s.repo.Create(ctx, comm); err != nil {
		log.WithError(err).Error("Failed to create communication")
		return fmt.Errorf("service: could not create communication: %w", err)
	}
	metrics.CommunicationsCreated.Inc()

	if err := s.deliver(ctx, comm, hospital); err != nil {
		log.WithError(err).Error("Delivery bookkeeping failed")
		return fmt.Errorf("service: could not deliver communication: %w", err)
	}

	log.WithField("communication_id", comm.ID).Info("Created hospital communication")
	return nil
}

func (s *communicationService) Redeliver(ctx context.Context, comm *models.EmergencyHospitalCommunication) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "communication",
		"method":           "Redeliver",
		"communication_id": comm.ID,
	})
	log.Info("Redelivering hospital communication")

	hospital, err := s.hospitals.GetByID(ctx, comm.HospitalID)
	if err != nil {
		return fmt.Errorf("service: could not load hospital: %w", err)
	}

	return s.deliver(ctx, comm, hospital)
}

// deliver walks the channel chain in priority order. The attempt is
// recorded before any channel is tried, so a crash mid-delivery still
// counts against the budget. Channel exhaustion is not an error: the
// handoff is marked failed and left for the retry scan.
func (s *communicationService) deliver(ctx context.Context, comm *models.EmergencyHospitalCommunication, hospital *models.Hospital) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "communication",
		"method":           "deliver",
		"communication_id": comm.ID,
		"attempt":          comm.CommunicationAttempts + 1,
	})

	if !comm.Status.CanTransitionTo(models.CommSent) {
		return apperrors.NewValidation("status", fmt.Sprintf("cannot deliver a communication in status %q", comm.Status))
	}

	now := time.Now().UTC()
	comm.Status = models.CommSent
	comm.SentToHospitalAt = &now
	comm.CommunicationAttempts++
	comm.LastCommunicationAttempt = &now

	if err := s.repo.UpdateDelivery(ctx, comm); err != nil {
		return fmt.Errorf("service: could not persist delivery attempt: %w", err)
	}

	packet := buildAlertPacket(comm, hospital, now)
	channels := channelPlan(hospital)

	var lastEntry *models.CommunicationLog
	for i, channel := range channels {
		msg := s.buildMessage(channel, comm, hospital, packet)

		result, err := s.sender.Send(ctx, msg)
		entry := newDeliveryLog(comm.ID, channel, msg, packet, result, err)

		if err == nil {
			metrics.DeliveryAttempts.WithLabelValues(string(channel), "success").Inc()
			s.appendLog(ctx, entry)
			log.WithField("channel", channel).Info("Alert delivered to hospital")
			return nil
		}

		metrics.DeliveryAttempts.WithLabelValues(string(channel), "failure").Inc()
		log.WithError(err).WithField("channel", channel).Warn("Channel delivery failed")

		if i == len(channels)-1 {
			lastEntry = entry
		} else {
			s.appendLog(ctx, entry)
		}
	}

	// Every channel failed; flip to failed atomically with the final
	// attempt's audit entry.
	comm.Status = models.CommFailed
	if err := s.repo.UpdateStatusWithLog(ctx, comm, lastEntry); err != nil {
		return fmt.Errorf("service: could not mark communication failed: %w", err)
	}

	log.Warn("All delivery channels failed")
	return nil
}

func (s *communicationService) Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.EmergencyHospitalCommunication, error) {
	comm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get communication: %w", err)
	}
	if err := authorizeCommunicationAccess(actor, comm); err != nil {
		return nil, err
	}
	return comm, nil
}

func (s *communicationService) Acknowledge(ctx context.Context, actor models.Actor, id uuid.UUID, notes string) (*models.EmergencyHospitalCommunication, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "communication",
		"method":           "Acknowledge",
		"communication_id": id,
	})
	log.Info("Hospital acknowledging communication")

	if !actor.Role.IsHospitalSide() && !actor.Role.IsAdmin() {
		return nil, apperrors.NewValidation("role", "only hospital staff can acknowledge a communication")
	}

	comm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get communication: %w", err)
	}
	if err := authorizeCommunicationAccess(actor, comm); err != nil {
		return nil, err
	}
	if !comm.Status.CanTransitionTo(models.CommAcknowledged) {
		return nil, apperrors.NewValidation("status", fmt.Sprintf("cannot acknowledge a communication in status %q", comm.Status))
	}

	now := time.Now().UTC()
	sentAt := comm.SentToHospitalAt

	comm.Status = models.CommAcknowledged
	comm.HospitalAcknowledgedAt = &now
	comm.HospitalAcknowledgedBy = actor.UserID
	if notes != "" {
		comm.HospitalPreparationNotes = notes
	}

	entry := &models.CommunicationLog{
		CommunicationID: comm.ID,
		Channel:         models.ChannelAPI,
		Direction:       models.DirectionIncoming,
		MessageType:     models.MessageAcknowledgment,
		MessageContent:  fmt.Sprintf("Emergency acknowledged by %s", actor.Name),
		MessageData: map[string]any{
			"acknowledged_by": actor.UserID,
			"notes":           notes,
		},
		IsSuccessful:       true,
		ResponseCode:       "200",
		SentAt:             now,
		ResponseReceivedAt: &now,
	}

	if err := s.repo.UpdateStatusWithLog(ctx, comm, entry); err != nil {
		log.WithError(err).Error("Failed to store acknowledgment")
		return nil, fmt.Errorf("service: could not acknowledge communication: %w", err)
	}

	// The preparation checklist opens as soon as the hospital engages.
	checklist := &models.HospitalPreparationChecklist{CommunicationID: comm.ID}
	if err := s.repo.CreateChecklist(ctx, checklist); err != nil {
		log.WithError(err).Warn("Could not create preparation checklist")
	}

	if sentAt != nil {
		metrics.AcknowledgmentLatency.Observe(now.Sub(*sentAt).Seconds())
	}

	s.notifyFirstAider(ctx, comm, "acknowledgment",
		"Hospital acknowledged your emergency",
		fmt.Sprintf("Emergency %s was acknowledged and the hospital is preparing.", comm.AlertReferenceID))

	log.Info("Communication acknowledged")
	return comm, nil
}

func (s *communicationService) UpdateFields(ctx context.Context, actor models.Actor, id uuid.UUID, update models.FieldUpdate) (*models.EmergencyHospitalCommunication, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "communication",
		"method":           "UpdateFields",
		"communication_id": id,
		"role":             actor.Role,
	})
	log.Info("Updating communication fields")

	if update.IsEmpty() {
		return nil, apperrors.NewValidation("fields", "no fields to update")
	}
	if err := validateFieldAccess(actor.Role, update.FieldNames()); err != nil {
		log.WithError(err).Warn("Rejected cross-role field update")
		return nil, err
	}

	comm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get communication: %w", err)
	}
	if err := authorizeCommunicationAccess(actor, comm); err != nil {
		return nil, err
	}
	if comm.Status.IsTerminal() {
		return nil, apperrors.NewValidation("status", fmt.Sprintf("communication in status %q can no longer be updated", comm.Status))
	}

	fresh, err := s.repo.ApplyFieldUpdate(ctx, id, update)
	if err != nil {
		log.WithError(err).Error("Failed to apply field update")
		return nil, fmt.Errorf("service: could not update communication: %w", err)
	}

	now := time.Now().UTC()
	messageType := models.MessageStatusUpdate
	direction := models.DirectionOutgoing
	content := "Field report updated by first aider"
	if actor.Role.IsHospitalSide() {
		messageType = models.MessagePreparationUpdate
		direction = models.DirectionIncoming
		content = "Preparation status updated by hospital"
	}
	s.appendLog(ctx, &models.CommunicationLog{
		CommunicationID: fresh.ID,
		Channel:         models.ChannelAPI,
		Direction:       direction,
		MessageType:     messageType,
		MessageContent:  content,
		MessageData:     fieldUpdateData(update),
		IsSuccessful:    true,
		SentAt:          now,
	})

	if actor.Role.IsHospitalSide() {
		s.mirrorPreparationToChecklist(ctx, fresh.ID, update)

		// First touch moves an acknowledged handoff into preparing.
		if fresh.Status == models.CommAcknowledged {
			fresh.Status = models.CommPreparing
			transition := &models.CommunicationLog{
				CommunicationID: fresh.ID,
				Channel:         models.ChannelInApp,
				Direction:       models.DirectionOutgoing,
				MessageType:     models.MessageStatusUpdate,
				MessageContent:  "Status updated to preparing",
				MessageData:     map[string]any{"new_status": string(models.CommPreparing)},
				IsSuccessful:    true,
				SentAt:          now,
			}
			if err := s.repo.UpdateStatusWithLog(ctx, fresh, transition); err != nil {
				log.WithError(err).Error("Failed to advance to preparing")
				return nil, fmt.Errorf("service: could not update communication status: %w", err)
			}
		}

		if fresh.ReadyForPatient() && fresh.Status.CanTransitionTo(models.CommReady) {
			readyEntry := &models.CommunicationLog{
				CommunicationID: fresh.ID,
				Channel:         models.ChannelInApp,
				Direction:       models.DirectionOutgoing,
				MessageType:     models.MessageStatusUpdate,
				MessageContent:  "Hospital fully prepared for patient arrival",
				MessageData:     map[string]any{"new_status": string(models.CommReady)},
				IsSuccessful:    true,
				SentAt:          now,
			}
			ready, err := s.repo.MarkReadyIfPrepared(ctx, fresh.ID, now, readyEntry)
			if err != nil {
				log.WithError(err).Error("Failed to mark communication ready")
				return nil, fmt.Errorf("service: could not mark communication ready: %w", err)
			}
			if ready {
				fresh.Status = models.CommReady
				fresh.HospitalReadyAt = &now
				s.notifyFirstAider(ctx, fresh, "ready",
					"Hospital is ready",
					fmt.Sprintf("The hospital is fully prepared to receive the patient for %s.", fresh.AlertReferenceID))
			}
		}

		s.notifyFirstAider(ctx, fresh, "preparation_update",
			"Hospital preparation update",
			fmt.Sprintf("Preparation progressed for emergency %s.", fresh.AlertReferenceID))
	}

	return fresh, nil
}

func (s *communicationService) UpdateStatus(ctx context.Context, actor models.Actor, id uuid.UUID, status models.CommunicationStatus, notes string) (*models.EmergencyHospitalCommunication, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "communication",
		"method":           "UpdateStatus",
		"communication_id": id,
		"new_status":       status,
	})
	log.Info("Updating communication status")

	if !statusesSettableDirectly[status] {
		return nil, apperrors.NewValidation("status", fmt.Sprintf("status %q cannot be set directly", status))
	}

	comm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get communication: %w", err)
	}
	if err := authorizeCommunicationAccess(actor, comm); err != nil {
		return nil, err
	}
	if !comm.Status.CanTransitionTo(status) {
		return nil, apperrors.NewValidation("status", fmt.Sprintf("cannot transition from %q to %q", comm.Status, status))
	}

	now := time.Now().UTC()
	switch status {
	case models.CommEnRoute:
		if comm.EstimatedArrivalMinutes == nil {
			return nil, apperrors.NewValidation("estimated_arrival_minutes", "must be set before departure")
		}
		eta := now.Add(time.Duration(*comm.EstimatedArrivalMinutes) * time.Minute)
		comm.EstimatedArrivalTime = &eta
	case models.CommArrived:
		comm.PatientArrivedAt = &now
	}
	comm.Status = status

	entry := &models.CommunicationLog{
		CommunicationID: comm.ID,
		Channel:         models.ChannelInApp,
		Direction:       models.DirectionOutgoing,
		MessageType:     models.MessageStatusUpdate,
		MessageContent:  fmt.Sprintf("Status updated to %s", status),
		MessageData: map[string]any{
			"new_status": string(status),
			"notes":      notes,
		},
		IsSuccessful: true,
		SentAt:       now,
	}

	if err := s.repo.UpdateStatusWithLog(ctx, comm, entry); err != nil {
		log.WithError(err).Error("Failed to update status")
		return nil, fmt.Errorf("service: could not update communication status: %w", err)
	}

	log.Info("Communication status updated")
	return comm, nil
}

func (s *communicationService) SubmitAssessment(ctx context.Context, actor models.Actor, id uuid.UUID, assessment *models.FirstAiderAssessment) (*models.FirstAiderAssessment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "communication",
		"method":           "SubmitAssessment",
		"communication_id": id,
	})
	log.Info("Recording first aider assessment")

	if actor.Role != models.RoleFirstAider && !actor.Role.IsAdmin() {
		return nil, apperrors.NewValidation("role", "only first aiders can record an assessment")
	}

	comm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get communication: %w", err)
	}
	if err := authorizeCommunicationAccess(actor, comm); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetAssessment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not check for existing assessment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidation("assessment", "an assessment is already recorded for this communication")
	}

	if err := validateAssessment(assessment); err != nil {
		return nil, err
	}

	assessment.CommunicationID = id
	if assessment.TriageCategory == "" {
		assessment.TriageCategory = models.TriageImmediate
	}
	assessment.ComputeGCSTotal()

	if err := s.repo.CreateAssessment(ctx, assessment); err != nil {
		log.WithError(err).Error("Failed to store assessment")
		return nil, fmt.Errorf("service: could not store assessment: %w", err)
	}

	// Triage drives urgency for the receiving hospital.
	priority := models.TriagePriority(assessment.TriageCategory)
	if priority != comm.Priority {
		if err := s.repo.UpdatePriority(ctx, id, priority); err != nil {
			log.WithError(err).Error("Failed to update priority from triage")
			return nil, fmt.Errorf("service: could not update priority: %w", err)
		}
		s.appendLog(ctx, &models.CommunicationLog{
			CommunicationID: id,
			Channel:         models.ChannelInApp,
			Direction:       models.DirectionOutgoing,
			MessageType:     models.MessageStatusUpdate,
			MessageContent:  fmt.Sprintf("Priority updated to %s from triage assessment", priority),
			MessageData: map[string]any{
				"triage_category": string(assessment.TriageCategory),
				"priority":        string(priority),
			},
			IsSuccessful: true,
			SentAt:       time.Now().UTC(),
		})
	}

	log.Info("Assessment recorded")
	return assessment, nil
}

func (s *communicationService) GetAssessment(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.FirstAiderAssessment, error) {
	comm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get communication: %w", err)
	}
	if err := authorizeCommunicationAccess(actor, comm); err != nil {
		return nil, err
	}

	assessment, err := s.repo.GetAssessment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get assessment: %w", err)
	}
	if assessment == nil {
		return nil, apperrors.NewNotFound("assessment", id.String())
	}
	return assessment, nil
}

func (s *communicationService) GetChecklist(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.HospitalPreparationChecklist, error) {
	comm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get communication: %w", err)
	}
	if err := authorizeCommunicationAccess(actor, comm); err != nil {
		return nil, err
	}

	checklist, err := s.repo.GetChecklist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get checklist: %w", err)
	}
	if checklist == nil {
		return nil, apperrors.NewNotFound("checklist", id.String())
	}
	return checklist, nil
}

func (s *communicationService) UpdateChecklist(ctx context.Context, actor models.Actor, id uuid.UUID, update models.ChecklistUpdate) (*models.HospitalPreparationChecklist, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "communication",
		"method":           "UpdateChecklist",
		"communication_id": id,
	})
	log.Info("Updating preparation checklist")

	if !actor.Role.IsHospitalSide() && !actor.Role.IsAdmin() {
		return nil, apperrors.NewValidation("role", "only hospital staff can update the preparation checklist")
	}

	comm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get communication: %w", err)
	}
	if err := authorizeCommunicationAccess(actor, comm); err != nil {
		return nil, err
	}
	if comm.Status.IsTerminal() {
		return nil, apperrors.NewValidation("status", fmt.Sprintf("communication in status %q can no longer be updated", comm.Status))
	}

	checklist, err := s.repo.GetChecklist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get checklist: %w", err)
	}
	if checklist == nil {
		checklist = &models.HospitalPreparationChecklist{CommunicationID: id}
		if err := s.repo.CreateChecklist(ctx, checklist); err != nil {
			return nil, fmt.Errorf("service: could not create checklist: %w", err)
		}
	}

	applyChecklistUpdate(checklist, update)

	// Completion is recomputed from the current items on every write.
	now := time.Now().UTC()
	if checklist.AllItemsComplete() {
		if !checklist.ChecklistCompleted {
			checklist.ChecklistCompleted = true
			checklist.CompletedAt = &now
			checklist.CompletedBy = actor.UserID
		}
	} else {
		checklist.ChecklistCompleted = false
		checklist.CompletedAt = nil
		checklist.CompletedBy = ""
	}

	if err := s.repo.UpdateChecklist(ctx, checklist); err != nil {
		log.WithError(err).Error("Failed to update checklist")
		return nil, fmt.Errorf("service: could not update checklist: %w", err)
	}

	s.appendLog(ctx, &models.CommunicationLog{
		CommunicationID: id,
		Channel:         models.ChannelAPI,
		Direction:       models.DirectionIncoming,
		MessageType:     models.MessagePreparationUpdate,
		MessageContent:  "Preparation checklist updated",
		MessageData: map[string]any{
			"completion_percentage": checklist.CompletionPercentage(),
		},
		IsSuccessful: true,
		SentAt:       now,
	})

	return checklist, nil
}

func (s *communicationService) ListLogs(ctx context.Context, actor models.Actor, id uuid.UUID) ([]*models.CommunicationLog, error) {
	comm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get communication: %w", err)
	}
	if err := authorizeCommunicationAccess(actor, comm); err != nil {
		return nil, err
	}

	logs, err := s.repo.ListLogs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not list communication logs: %w", err)
	}
	return logs, nil
}

func (s *communicationService) ListPendingForHospital(ctx context.Context, actor models.Actor) ([]*models.EmergencyHospitalCommunication, error) {
	if !actor.Role.IsHospitalSide() {
		return nil, apperrors.NewValidation("role", "only hospital staff have a pending queue")
	}
	if actor.HospitalID == uuid.Nil {
		return nil, apperrors.NewValidation("hospital_id", "account is not linked to a hospital")
	}

	comms, err := s.repo.ListPendingForHospital(ctx, actor.HospitalID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list pending communications: %w", err)
	}
	return comms, nil
}

func (s *communicationService) ListActiveForFirstAider(ctx context.Context, actor models.Actor) ([]*models.EmergencyHospitalCommunication, error) {
	if actor.Role != models.RoleFirstAider {
		return nil, apperrors.NewValidation("role", "only first aiders have an active handoff list")
	}

	comms, err := s.repo.ListActiveForFirstAider(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active communications: %w", err)
	}
	return comms, nil
}

func (s *communicationService) Stats(ctx context.Context, actor models.Actor, days int) (*models.CommunicationStats, error) {
	if days <= 0 {
		days = s.cfg.StatsWindowDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	var hospitalID *uuid.UUID
	firstAiderID := ""
	switch {
	case actor.Role.IsHospitalSide():
		if actor.HospitalID == uuid.Nil {
			return nil, apperrors.NewValidation("hospital_id", "account is not linked to a hospital")
		}
		id := actor.HospitalID
		hospitalID = &id
	case actor.Role == models.RoleFirstAider:
		firstAiderID = actor.UserID
	}

	stats, err := s.repo.Stats(ctx, since, hospitalID, firstAiderID)
	if err != nil {
		return nil, fmt.Errorf("service: could not compute communication stats: %w", err)
	}
	return stats, nil
}

// channelPlan orders delivery channels for a hospital: the API first,
// then SMS, webhook and voice for whatever the hospital has configured.
func channelPlan(hospital *models.Hospital) []models.CommunicationChannel {
	channels := []models.CommunicationChannel{models.ChannelAPI}
	if hospital.SMSNotifications && hospital.EmergencyPhone != "" {
		channels = append(channels, models.ChannelSMS)
	}
	if hospital.WebhookURL != "" {
		channels = append(channels, models.ChannelWebhook)
	}
	if hospital.Phone != "" {
		channels = append(channels, models.ChannelVoice)
	}
	return channels
}

func (s *communicationService) buildMessage(channel models.CommunicationChannel, comm *models.EmergencyHospitalCommunication, hospital *models.Hospital, packet map[string]any) notification.Message {
	msg := notification.Message{Channel: channel, Payload: packet}

	switch channel {
	case models.ChannelAPI:
		msg.Recipient = hospital.APIBaseURL
		msg.AuthToken = hospital.APIKey
	case models.ChannelSMS:
		msg.Recipient = hospital.EmergencyPhone
		msg.Body = renderAlertSMS(comm)
	case models.ChannelWebhook:
		msg.Recipient = hospital.WebhookURL
	case models.ChannelVoice:
		msg.Recipient = hospital.Phone
		msg.Body = renderAlertSMS(comm)
	}

	return msg
}

// buildAlertPacket assembles the structured payload hospitals receive
// on the api and webhook channels.
func buildAlertPacket(comm *models.EmergencyHospitalCommunication, hospital *models.Hospital, now time.Time) map[string]any {
	return map[string]any{
		"alert_id":    comm.AlertReferenceID,
		"hospital_id": hospital.ID.String(),
		"timestamp":   now.Format(time.RFC3339),
		"priority":    string(comm.Priority),
		"patient_info": map[string]any{
			"name":   comm.VictimName,
			"age":    comm.VictimAge,
			"gender": string(comm.VictimGender),
		},
		"emergency_details": map[string]any{
			"chief_complaint":    comm.ChiefComplaint,
			"vital_signs":        comm.VitalSigns,
			"initial_assessment": comm.InitialAssessment,
			"first_aid_provided": comm.FirstAidProvided,
		},
		"logistics": map[string]any{
			"estimated_arrival_minutes": comm.EstimatedArrivalMinutes,
			"required_specialties":      comm.RequiredSpecialties,
			"equipment_needed":          comm.EquipmentNeeded,
			"blood_type_required":       comm.BloodTypeRequired,
		},
		"first_aider_info": map[string]any{
			"name":    comm.FirstAiderName,
			"contact": comm.FirstAiderPhone,
		},
	}
}

// renderAlertSMS renders the compact text-message form of the alert.
func renderAlertSMS(comm *models.EmergencyHospitalCommunication) string {
	victim := comm.VictimName
	if victim == "" {
		victim = "Unknown"
	}
	age := "unknown"
	if comm.VictimAge != nil {
		age = strconv.Itoa(*comm.VictimAge)
	}
	eta := "unknown"
	if comm.EstimatedArrivalMinutes != nil {
		eta = strconv.Itoa(*comm.EstimatedArrivalMinutes)
	}
	aider := comm.FirstAiderName
	if aider == "" {
		aider = "Unknown"
	}

	return fmt.Sprintf(
		"EMERGENCY ALERT - %s\nPriority: %s\nPatient: %s, %s\nComplaint: %s\nETA: %s mins\nFirst Aider: %s\nLogin to Haven for details",
		comm.AlertReferenceID,
		strings.ToUpper(string(comm.Priority)),
		victim, age,
		comm.ChiefComplaint,
		eta,
		aider,
	)
}

func newDeliveryLog(commID uuid.UUID, channel models.CommunicationChannel, msg notification.Message, packet map[string]any, result *notification.Result, sendErr error) *models.CommunicationLog {
	now := time.Now().UTC()
	entry := &models.CommunicationLog{
		CommunicationID: commID,
		Channel:         channel,
		Direction:       models.DirectionOutgoing,
		MessageType:     models.MessageEmergencyAlert,
		MessageContent:  msg.Body,
		MessageData:     packet,
		SentAt:          now,
	}

	if sendErr != nil {
		entry.IsSuccessful = false
		entry.ErrorMessage = sendErr.Error()
		entry.ResponseCode = "500"
		return entry
	}

	entry.IsSuccessful = true
	entry.DeliveredAt = &now
	entry.ResponseCode = "200"
	if result != nil && result.ResponseCode != 0 {
		entry.ResponseCode = strconv.Itoa(result.ResponseCode)
	}
	return entry
}

// validateFieldAccess rejects the whole update when any field is outside
// the caller's role. Scene facts belong to first aiders, preparation
// state to hospital staff.
func validateFieldAccess(role models.Role, fields []string) error {
	if role.IsAdmin() {
		return nil
	}

	var allowed map[string]bool
	switch {
	case role == models.RoleFirstAider:
		allowed = firstAiderFields
	case role.IsHospitalSide():
		allowed = hospitalFields
	default:
		return apperrors.NewValidation("role", fmt.Sprintf("role %q may not update communications", role))
	}

	var forbidden []string
	for _, field := range fields {
		if !allowed[field] {
			forbidden = append(forbidden, field)
		}
	}
	if len(forbidden) > 0 {
		return apperrors.NewValidation(strings.Join(forbidden, ", "), fmt.Sprintf("fields not permitted for role %q", role))
	}
	return nil
}

// authorizeCommunicationAccess hides handoffs from everyone but their
// first aider, the receiving hospital's staff and admins.
func authorizeCommunicationAccess(actor models.Actor, comm *models.EmergencyHospitalCommunication) error {
	switch {
	case actor.Role.IsAdmin():
		return nil
	case actor.Role == models.RoleFirstAider && comm.FirstAiderID == actor.UserID:
		return nil
	case actor.Role.IsHospitalSide() && actor.HospitalID == comm.HospitalID:
		return nil
	default:
		return apperrors.NewNotFound("communication", comm.ID.String())
	}
}

func validateAssessment(assessment *models.FirstAiderAssessment) error {
	gcsSet := 0
	for _, component := range []*int{assessment.GCSEyes, assessment.GCSVerbal, assessment.GCSMotor} {
		if component != nil {
			gcsSet++
		}
	}
	if gcsSet != 0 && gcsSet != 3 {
		return apperrors.NewValidation("gcs", "eyes, verbal and motor scores must be provided together")
	}
	if gcsSet == 3 {
		if *assessment.GCSEyes < 1 || *assessment.GCSEyes > 4 {
			return apperrors.NewValidation("gcs_eyes", "must be between 1 and 4")
		}
		if *assessment.GCSVerbal < 1 || *assessment.GCSVerbal > 5 {
			return apperrors.NewValidation("gcs_verbal", "must be between 1 and 5")
		}
		if *assessment.GCSMotor < 1 || *assessment.GCSMotor > 6 {
			return apperrors.NewValidation("gcs_motor", "must be between 1 and 6")
		}
	}
	if assessment.PainLevel != nil && (*assessment.PainLevel < 0 || *assessment.PainLevel > 10) {
		return apperrors.NewValidation("pain_level", "must be between 0 and 10")
	}
	if assessment.OxygenSaturation != nil && (*assessment.OxygenSaturation < 0 || *assessment.OxygenSaturation > 100) {
		return apperrors.NewValidation("oxygen_saturation", "must be between 0 and 100")
	}
	return nil
}

func (s *communicationService) mirrorPreparationToChecklist(ctx context.Context, commID uuid.UUID, update models.FieldUpdate) {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "communication",
		"communication_id": commID,
	})

	checklist, err := s.repo.GetChecklist(ctx, commID)
	if err != nil {
		log.WithError(err).Warn("Could not load checklist for mirroring")
		return
	}
	if checklist == nil {
		checklist = &models.HospitalPreparationChecklist{CommunicationID: commID}
		if err := s.repo.CreateChecklist(ctx, checklist); err != nil {
			log.WithError(err).Warn("Could not create checklist for mirroring")
			return
		}
	}

	changed := false
	if update.DoctorsReady != nil && *update.DoctorsReady {
		checklist.EmergencyDoctorAssigned = true
		changed = true
	}
	if update.NursesReady != nil && *update.NursesReady {
		checklist.NursingTeamReady = true
		changed = true
	}
	if update.EquipmentReady != nil && *update.EquipmentReady {
		checklist.VitalMonitorsReady = true
		changed = true
	}
	if update.BloodAvailable != nil && *update.BloodAvailable {
		checklist.BloodProductsAvailable = true
		changed = true
	}
	if !changed {
		return
	}

	if err := s.repo.UpdateChecklist(ctx, checklist); err != nil {
		log.WithError(err).Warn("Could not mirror preparation to checklist")
	}
}

func (s *communicationService) notifyFirstAider(ctx context.Context, comm *models.EmergencyHospitalCommunication, kind, title, body string) {
	event := notification.Event{
		CommunicationID: comm.ID,
		RecipientID:     comm.FirstAiderID,
		Phone:           comm.FirstAiderPhone,
		Kind:            kind,
		Title:           title,
		Body:            body,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("communication_id", comm.ID).Warn("Could not queue first aider notification")
	}
}

func (s *communicationService) appendLog(ctx context.Context, entry *models.CommunicationLog) {
	if err := s.repo.AppendLog(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("communication_id", entry.CommunicationID).Warn("Could not append communication log")
	}
}

func fieldUpdateData(update models.FieldUpdate) map[string]any {
	data := make(map[string]any)
	if update.VitalSigns != nil {
		data["vital_signs"] = update.VitalSigns
	}
	if update.FirstAidProvided != nil {
		data["first_aid_provided"] = *update.FirstAidProvided
	}
	if update.EstimatedArrivalMinutes != nil {
		data["estimated_arrival_minutes"] = *update.EstimatedArrivalMinutes
	}
	if update.DoctorsReady != nil {
		data["doctors_ready"] = *update.DoctorsReady
	}
	if update.NursesReady != nil {
		data["nurses_ready"] = *update.NursesReady
	}
	if update.EquipmentReady != nil {
		data["equipment_ready"] = *update.EquipmentReady
	}
	if update.BedReady != nil {
		data["bed_ready"] = *update.BedReady
	}
	if update.BloodAvailable != nil {
		data["blood_available"] = *update.BloodAvailable
	}
	if update.HospitalPreparationNotes != nil {
		data["hospital_preparation_notes"] = *update.HospitalPreparationNotes
	}
	return data
}

func applyChecklistUpdate(checklist *models.HospitalPreparationChecklist, update models.ChecklistUpdate) {
	if update.EmergencyDoctorAssigned != nil {
		checklist.EmergencyDoctorAssigned = *update.EmergencyDoctorAssigned
	}
	if update.SpecialistDoctorNotified != nil {
		checklist.SpecialistDoctorNotified = *update.SpecialistDoctorNotified
	}
	if update.NursingTeamReady != nil {
		checklist.NursingTeamReady = *update.NursingTeamReady
	}
	if update.AnesthesiologistAlerted != nil {
		checklist.AnesthesiologistAlerted = *update.AnesthesiologistAlerted
	}
	if update.EmergencyBedPrepared != nil {
		checklist.EmergencyBedPrepared = *update.EmergencyBedPrepared
	}
	if update.OperatingRoomReserved != nil {
		checklist.OperatingRoomReserved = *update.OperatingRoomReserved
	}
	if update.ICUBedAvailable != nil {
		checklist.ICUBedAvailable = *update.ICUBedAvailable
	}
	if update.VitalMonitorsReady != nil {
		checklist.VitalMonitorsReady = *update.VitalMonitorsReady
	}
	if update.VentilatorAvailable != nil {
		checklist.VentilatorAvailable = *update.VentilatorAvailable
	}
	if update.DefibrillatorReady != nil {
		checklist.DefibrillatorReady = *update.DefibrillatorReady
	}
	if update.EmergencyMedicationsReady != nil {
		checklist.EmergencyMedicationsReady = *update.EmergencyMedicationsReady
	}
	if update.LabTestsOrdered != nil {
		checklist.LabTestsOrdered = *update.LabTestsOrdered
	}
	if update.ImagingReady != nil {
		checklist.ImagingReady = *update.ImagingReady
	}
	if update.BloodProductsAvailable != nil {
		checklist.BloodProductsAvailable = *update.BloodProductsAvailable
	}
	if update.PharmacyAlerted != nil {
		checklist.PharmacyAlerted = *update.PharmacyAlerted
	}
	if update.BloodBankNotified != nil {
		checklist.BloodBankNotified = *update.BloodBankNotified
	}
	if update.Notes != nil {
		checklist.Notes = *update.Notes
	}
}
