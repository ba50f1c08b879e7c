package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/service"
)

// CommunicationRepository is the PostgreSQL store for hospital handoffs,
// their audit logs, preparation checklists and scene assessments.
type CommunicationRepository struct {
	db *pgxpool.Pool
}

// NewCommunicationRepository creates the communication store.
func NewCommunicationRepository(db *pgxpool.Pool) service.CommunicationRepository {
	return &CommunicationRepository{db: db}
}

const communicationColumns = `
	id, alert_id, alert_reference_id, hospital_id,
	first_aider_id, first_aider_name, first_aider_phone,
	status, priority,
	victim_name, victim_age, victim_gender, chief_complaint,
	vital_signs, initial_assessment, first_aid_provided,
	estimated_arrival_minutes, estimated_arrival_time,
	required_specialties, equipment_needed, blood_type_required,
	communication_attempts, last_communication_attempt,
	hospital_acknowledged_at, hospital_acknowledged_by,
	doctors_ready, nurses_ready, equipment_ready, bed_ready, blood_available,
	hospital_preparation_notes,
	sent_to_hospital_at, hospital_ready_at, patient_arrived_at,
	created_at, updated_at
`

func scanCommunication(row pgx.Row) (*models.EmergencyHospitalCommunication, error) {
	comm := &models.EmergencyHospitalCommunication{}
	var vitalSigns []byte
	err := row.Scan(
		&comm.ID,
		&comm.AlertID,
		&comm.AlertReferenceID,
		&comm.HospitalID,
		&comm.FirstAiderID,
		&comm.FirstAiderName,
		&comm.FirstAiderPhone,
		&comm.Status,
		&comm.Priority,
		&comm.VictimName,
		&comm.VictimAge,
		&comm.VictimGender,
		&comm.ChiefComplaint,
		&vitalSigns,
		&comm.InitialAssessment,
		&comm.FirstAidProvided,
		&comm.EstimatedArrivalMinutes,
		&comm.EstimatedArrivalTime,
		&comm.RequiredSpecialties,
		&comm.EquipmentNeeded,
		&comm.BloodTypeRequired,
		&comm.CommunicationAttempts,
		&comm.LastCommunicationAttempt,
		&comm.HospitalAcknowledgedAt,
		&comm.HospitalAcknowledgedBy,
		&comm.DoctorsReady,
		&comm.NursesReady,
		&comm.EquipmentReady,
		&comm.BedReady,
		&comm.BloodAvailable,
		&comm.HospitalPreparationNotes,
		&comm.SentToHospitalAt,
		&comm.HospitalReadyAt,
		&comm.PatientArrivedAt,
		&comm.CreatedAt,
		&comm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(vitalSigns) > 0 {
		if err := json.Unmarshal(vitalSigns, &comm.VitalSigns); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vital signs: %w", err)
		}
	}
	return comm, nil
}

// Create stores a new handoff record.
func (r *CommunicationRepository) Create(ctx context.Context, comm *models.EmergencyHospitalCommunication) error {
	vitalSigns, err := json.Marshal(comm.VitalSigns)
	if err != nil {
		return fmt.Errorf("failed to marshal vital signs: %w", err)
	}

	query := `
		INSERT INTO hospital_communications (
			alert_id, alert_reference_id, hospital_id,
			first_aider_id, first_aider_name, first_aider_phone,
			status, priority,
			victim_name, victim_age, victim_gender, chief_complaint,
			vital_signs, initial_assessment, first_aid_provided,
			estimated_arrival_minutes, estimated_arrival_time,
			required_specialties, equipment_needed, blood_type_required
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		comm.AlertID,
		comm.AlertReferenceID,
		comm.HospitalID,
		comm.FirstAiderID,
		comm.FirstAiderName,
		comm.FirstAiderPhone,
		comm.Status,
		comm.Priority,
		comm.VictimName,
		comm.VictimAge,
		comm.VictimGender,
		comm.ChiefComplaint,
		vitalSigns,
		comm.InitialAssessment,
		comm.FirstAidProvided,
		comm.EstimatedArrivalMinutes,
		comm.EstimatedArrivalTime,
		comm.RequiredSpecialties,
		comm.EquipmentNeeded,
		comm.BloodTypeRequired,
	).Scan(&comm.ID, &comm.CreatedAt, &comm.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create communication: %w", err)
	}
	return nil
}

// GetByID returns a handoff by its primary key.
func (r *CommunicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EmergencyHospitalCommunication, error) {
	query := `SELECT ` + communicationColumns + ` FROM hospital_communications WHERE id = $1;`

	comm, err := scanCommunication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("communication", id.String())
		}
		return nil, fmt.Errorf("failed to get communication by id: %w", err)
	}
	return comm, nil
}

// UpdateDelivery persists the delivery bookkeeping fields.
func (r *CommunicationRepository) UpdateDelivery(ctx context.Context, comm *models.EmergencyHospitalCommunication) error {
	query := `
		UPDATE hospital_communications SET
			status = $1,
			communication_attempts = $2,
			last_communication_attempt = $3,
			sent_to_hospital_at = $4,
			updated_at = NOW()
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		comm.Status,
		comm.CommunicationAttempts,
		comm.LastCommunicationAttempt,
		comm.SentToHospitalAt,
		comm.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update communication delivery: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("communication", comm.ID.String())
	}
	return nil
}

// UpdateStatusWithLog persists the communication state and appends the
// audit entry in one transaction.
func (r *CommunicationRepository) UpdateStatusWithLog(ctx context.Context, comm *models.EmergencyHospitalCommunication, entry *models.CommunicationLog) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE hospital_communications SET
			status = $1,
			priority = $2,
			communication_attempts = $3,
			last_communication_attempt = $4,
			hospital_acknowledged_at = $5,
			hospital_acknowledged_by = $6,
			estimated_arrival_minutes = $7,
			estimated_arrival_time = $8,
			hospital_preparation_notes = $9,
			sent_to_hospital_at = $10,
			hospital_ready_at = $11,
			patient_arrived_at = $12,
			updated_at = NOW()
		WHERE id = $13;
	`
	cmdTag, err := tx.Exec(ctx, query,
		comm.Status,
		comm.Priority,
		comm.CommunicationAttempts,
		comm.LastCommunicationAttempt,
		comm.HospitalAcknowledgedAt,
		comm.HospitalAcknowledgedBy,
		comm.EstimatedArrivalMinutes,
		comm.EstimatedArrivalTime,
		comm.HospitalPreparationNotes,
		comm.SentToHospitalAt,
		comm.HospitalReadyAt,
		comm.PatientArrivedAt,
		comm.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update communication status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("communication", comm.ID.String())
	}

	if entry != nil {
		if err := insertLog(ctx, tx, entry); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

var fieldUpdateColumns = map[string]string{
	"vital_signs":                "vital_signs",
	"first_aid_provided":         "first_aid_provided",
	"estimated_arrival_minutes":  "estimated_arrival_minutes",
	"doctors_ready":              "doctors_ready",
	"nurses_ready":               "nurses_ready",
	"equipment_ready":            "equipment_ready",
	"bed_ready":                  "bed_ready",
	"blood_available":            "blood_available",
	"hospital_preparation_notes": "hospital_preparation_notes",
}

// ApplyFieldUpdate patches only the fields the update carries and
// returns the row as persisted.
func (r *CommunicationRepository) ApplyFieldUpdate(ctx context.Context, id uuid.UUID, update models.FieldUpdate) (*models.EmergencyHospitalCommunication, error) {
	assignments := make([]string, 0, 10)
	args := make([]any, 0, 10)

	addAssignment := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.VitalSigns != nil {
		vitalSigns, err := json.Marshal(update.VitalSigns)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal vital signs: %w", err)
		}
		addAssignment(fieldUpdateColumns["vital_signs"], vitalSigns)
	}
	if update.FirstAidProvided != nil {
		addAssignment(fieldUpdateColumns["first_aid_provided"], *update.FirstAidProvided)
	}
	if update.EstimatedArrivalMinutes != nil {
		addAssignment(fieldUpdateColumns["estimated_arrival_minutes"], *update.EstimatedArrivalMinutes)
	}
	if update.DoctorsReady != nil {
		addAssignment(fieldUpdateColumns["doctors_ready"], *update.DoctorsReady)
	}
	if update.NursesReady != nil {
		addAssignment(fieldUpdateColumns["nurses_ready"], *update.NursesReady)
	}
	if update.EquipmentReady != nil {
		addAssignment(fieldUpdateColumns["equipment_ready"], *update.EquipmentReady)
	}
	if update.BedReady != nil {
		addAssignment(fieldUpdateColumns["bed_ready"], *update.BedReady)
	}
	if update.BloodAvailable != nil {
		addAssignment(fieldUpdateColumns["blood_available"], *update.BloodAvailable)
	}
	if update.HospitalPreparationNotes != nil {
		addAssignment(fieldUpdateColumns["hospital_preparation_notes"], *update.HospitalPreparationNotes)
	}
	if len(assignments) == 0 {
		return nil, fmt.Errorf("field update touches no columns")
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE hospital_communications SET
			%s,
			updated_at = NOW()
		WHERE id = $%d
		RETURNING %s;
	`, strings.Join(assignments, ",\n\t\t\t"), len(args), communicationColumns)

	comm, err := scanCommunication(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("communication", id.String())
		}
		return nil, fmt.Errorf("failed to apply field update: %w", err)
	}
	return comm, nil
}

// MarkReadyIfPrepared flips the handoff to ready only when all four
// mandatory preparation flags are true in the database at that moment.
// The guard and the write are one statement, so a concurrent field
// update cannot slip a half-prepared hospital through.
func (r *CommunicationRepository) MarkReadyIfPrepared(ctx context.Context, id uuid.UUID, at time.Time, entry *models.CommunicationLog) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE hospital_communications SET
			status = 'ready',
			hospital_ready_at = $1,
			updated_at = NOW()
		WHERE id = $2
			AND status IN ('acknowledged', 'preparing')
			AND doctors_ready AND nurses_ready AND equipment_ready AND bed_ready;
	`
	cmdTag, err := tx.Exec(ctx, query, at, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark communication ready: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return false, nil
	}

	if entry != nil {
		if err := insertLog(ctx, tx, entry); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// UpdatePriority persists a new priority on the handoff.
func (r *CommunicationRepository) UpdatePriority(ctx context.Context, id uuid.UUID, priority models.AlertPriority) error {
	query := `UPDATE hospital_communications SET priority = $1, updated_at = NOW() WHERE id = $2;`

	cmdTag, err := r.db.Exec(ctx, query, priority, id)
	if err != nil {
		return fmt.Errorf("failed to update communication priority: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("communication", id.String())
	}
	return nil
}

// AppendLog stores one audit entry outside a status change.
func (r *CommunicationRepository) AppendLog(ctx context.Context, entry *models.CommunicationLog) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertLog(ctx, tx, entry); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertLog(ctx context.Context, tx pgx.Tx, entry *models.CommunicationLog) error {
	messageData, err := json.Marshal(entry.MessageData)
	if err != nil {
		return fmt.Errorf("failed to marshal log message data: %w", err)
	}

	query := `
		INSERT INTO communication_logs (
			communication_id, channel, direction, message_type,
			message_content, message_data, is_successful, error_message,
			response_code, sent_at, delivered_at, response_received_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`
	if entry.SentAt.IsZero() {
		entry.SentAt = time.Now().UTC()
	}
	err = tx.QueryRow(ctx, query,
		entry.CommunicationID,
		entry.Channel,
		entry.Direction,
		entry.MessageType,
		entry.MessageContent,
		messageData,
		entry.IsSuccessful,
		entry.ErrorMessage,
		entry.ResponseCode,
		entry.SentAt,
		entry.DeliveredAt,
		entry.ResponseReceivedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert communication log: %w", err)
	}
	return nil
}

// ListLogs returns a handoff's audit trail in the order it happened.
func (r *CommunicationRepository) ListLogs(ctx context.Context, communicationID uuid.UUID) ([]*models.CommunicationLog, error) {
	query := `
		SELECT id, communication_id, channel, direction, message_type,
			message_content, message_data, is_successful, error_message,
			response_code, sent_at, delivered_at, response_received_at
		FROM communication_logs
		WHERE communication_id = $1
		ORDER BY sent_at;
	`
	rows, err := r.db.Query(ctx, query, communicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list communication logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.CommunicationLog, 0)
	for rows.Next() {
		entry := &models.CommunicationLog{}
		var messageData []byte
		if err := rows.Scan(
			&entry.ID,
			&entry.CommunicationID,
			&entry.Channel,
			&entry.Direction,
			&entry.MessageType,
			&entry.MessageContent,
			&messageData,
			&entry.IsSuccessful,
			&entry.ErrorMessage,
			&entry.ResponseCode,
			&entry.SentAt,
			&entry.DeliveredAt,
			&entry.ResponseReceivedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan communication log row: %w", err)
		}
		if len(messageData) > 0 {
			if err := json.Unmarshal(messageData, &entry.MessageData); err != nil {
				return nil, fmt.Errorf("failed to unmarshal log message data: %w", err)
			}
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating communication log rows: %w", err)
	}
	return logs, nil
}

const checklistColumns = `
	id, communication_id,
	emergency_doctor_assigned, specialist_doctor_notified, nursing_team_ready, anesthesiologist_alerted,
	emergency_bed_prepared, operating_room_reserved, icu_bed_available,
	vital_monitors_ready, ventilator_available, defibrillator_ready, emergency_medications_ready,
	lab_tests_ordered, imaging_ready, blood_products_available,
	pharmacy_alerted, blood_bank_notified,
	checklist_completed, completed_at, completed_by, notes,
	created_at, updated_at
`

func scanChecklist(row pgx.Row) (*models.HospitalPreparationChecklist, error) {
	checklist := &models.HospitalPreparationChecklist{}
	err := row.Scan(
		&checklist.ID,
		&checklist.CommunicationID,
		&checklist.EmergencyDoctorAssigned,
		&checklist.SpecialistDoctorNotified,
		&checklist.NursingTeamReady,
		&checklist.AnesthesiologistAlerted,
		&checklist.EmergencyBedPrepared,
		&checklist.OperatingRoomReserved,
		&checklist.ICUBedAvailable,
		&checklist.VitalMonitorsReady,
		&checklist.VentilatorAvailable,
		&checklist.DefibrillatorReady,
		&checklist.EmergencyMedicationsReady,
		&checklist.LabTestsOrdered,
		&checklist.ImagingReady,
		&checklist.BloodProductsAvailable,
		&checklist.PharmacyAlerted,
		&checklist.BloodBankNotified,
		&checklist.ChecklistCompleted,
		&checklist.CompletedAt,
		&checklist.CompletedBy,
		&checklist.Notes,
		&checklist.CreatedAt,
		&checklist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return checklist, nil
}

// CreateChecklist stores a fresh preparation checklist for a handoff.
func (r *CommunicationRepository) CreateChecklist(ctx context.Context, checklist *models.HospitalPreparationChecklist) error {
	query := `
		INSERT INTO preparation_checklists (communication_id)
		VALUES ($1)
		ON CONFLICT (communication_id) DO NOTHING
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, checklist.CommunicationID).
		Scan(&checklist.ID, &checklist.CreatedAt, &checklist.UpdatedAt)
	if err != nil {
		// Another acknowledgment already created it; that is fine.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to create checklist: %w", err)
	}
	return nil
}

// GetChecklist returns the handoff's checklist, or (nil, nil) when none
// has been created yet.
func (r *CommunicationRepository) GetChecklist(ctx context.Context, communicationID uuid.UUID) (*models.HospitalPreparationChecklist, error) {
	query := `SELECT ` + checklistColumns + ` FROM preparation_checklists WHERE communication_id = $1;`

	checklist, err := scanChecklist(r.db.QueryRow(ctx, query, communicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	return checklist, nil
}

// UpdateChecklist persists every checklist item plus completion state.
func (r *CommunicationRepository) UpdateChecklist(ctx context.Context, checklist *models.HospitalPreparationChecklist) error {
	query := `
		UPDATE preparation_checklists SET
			emergency_doctor_assigned = $1,
			specialist_doctor_notified = $2,
			nursing_team_ready = $3,
			anesthesiologist_alerted = $4,
			emergency_bed_prepared = $5,
			operating_room_reserved = $6,
			icu_bed_available = $7,
			vital_monitors_ready = $8,
			ventilator_available = $9,
			defibrillator_ready = $10,
			emergency_medications_ready = $11,
			lab_tests_ordered = $12,
			imaging_ready = $13,
			blood_products_available = $14,
			pharmacy_alerted = $15,
			blood_bank_notified = $16,
			checklist_completed = $17,
			completed_at = $18,
			completed_by = $19,
			notes = $20,
			updated_at = NOW()
		WHERE id = $21;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		checklist.EmergencyDoctorAssigned,
		checklist.SpecialistDoctorNotified,
		checklist.NursingTeamReady,
		checklist.AnesthesiologistAlerted,
		checklist.EmergencyBedPrepared,
		checklist.OperatingRoomReserved,
		checklist.ICUBedAvailable,
		checklist.VitalMonitorsReady,
		checklist.VentilatorAvailable,
		checklist.DefibrillatorReady,
		checklist.EmergencyMedicationsReady,
		checklist.LabTestsOrdered,
		checklist.ImagingReady,
		checklist.BloodProductsAvailable,
		checklist.PharmacyAlerted,
		checklist.BloodBankNotified,
		checklist.ChecklistCompleted,
		checklist.CompletedAt,
		checklist.CompletedBy,
		checklist.Notes,
		checklist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update checklist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("checklist", checklist.ID.String())
	}
	return nil
}

// CreateAssessment stores the scene assessment for a handoff.
func (r *CommunicationRepository) CreateAssessment(ctx context.Context, assessment *models.FirstAiderAssessment) error {
	query := `
		INSERT INTO first_aider_assessments (
			communication_id,
			gcs_eyes, gcs_verbal, gcs_motor, gcs_total,
			heart_rate, blood_pressure_systolic, blood_pressure_diastolic,
			respiratory_rate, oxygen_saturation, temperature,
			mechanism_of_injury, injuries_noted, pain_level,
			known_allergies, current_medications, past_medical_history, last_oral_intake,
			interventions_provided, medications_administered,
			triage_category, scene_observations, safety_concerns
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		assessment.CommunicationID,
		assessment.GCSEyes,
		assessment.GCSVerbal,
		assessment.GCSMotor,
		assessment.GCSTotal,
		assessment.HeartRate,
		assessment.BloodPressureSystolic,
		assessment.BloodPressureDiastolic,
		assessment.RespiratoryRate,
		assessment.OxygenSaturation,
		assessment.Temperature,
		assessment.MechanismOfInjury,
		assessment.InjuriesNoted,
		assessment.PainLevel,
		assessment.KnownAllergies,
		assessment.CurrentMedications,
		assessment.PastMedicalHistory,
		assessment.LastOralIntake,
		assessment.InterventionsProvided,
		assessment.MedicationsAdministered,
		assessment.TriageCategory,
		assessment.SceneObservations,
		assessment.SafetyConcerns,
	).Scan(&assessment.ID, &assessment.CreatedAt, &assessment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

// GetAssessment returns the handoff's scene assessment, or (nil, nil)
// when none has been submitted.
func (r *CommunicationRepository) GetAssessment(ctx context.Context, communicationID uuid.UUID) (*models.FirstAiderAssessment, error) {
	query := `
		SELECT id, communication_id,
			gcs_eyes, gcs_verbal, gcs_motor, gcs_total,
			heart_rate, blood_pressure_systolic, blood_pressure_diastolic,
			respiratory_rate, oxygen_saturation, temperature,
			mechanism_of_injury, injuries_noted, pain_level,
			known_allergies, current_medications, past_medical_history, last_oral_intake,
			interventions_provided, medications_administered,
			triage_category, scene_observations, safety_concerns,
			created_at, updated_at
		FROM first_aider_assessments
		WHERE communication_id = $1;
	`
	assessment := &models.FirstAiderAssessment{}
	err := r.db.QueryRow(ctx, query, communicationID).Scan(
		&assessment.ID,
		&assessment.CommunicationID,
		&assessment.GCSEyes,
		&assessment.GCSVerbal,
		&assessment.GCSMotor,
		&assessment.GCSTotal,
		&assessment.HeartRate,
		&assessment.BloodPressureSystolic,
		&assessment.BloodPressureDiastolic,
		&assessment.RespiratoryRate,
		&assessment.OxygenSaturation,
		&assessment.Temperature,
		&assessment.MechanismOfInjury,
		&assessment.InjuriesNoted,
		&assessment.PainLevel,
		&assessment.KnownAllergies,
		&assessment.CurrentMedications,
		&assessment.PastMedicalHistory,
		&assessment.LastOralIntake,
		&assessment.InterventionsProvided,
		&assessment.MedicationsAdministered,
		&assessment.TriageCategory,
		&assessment.SceneObservations,
		&assessment.SafetyConcerns,
		&assessment.CreatedAt,
		&assessment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return assessment, nil
}

// ListPendingForHospital returns handoffs awaiting the hospital's
// response, most urgent first.
func (r *CommunicationRepository) ListPendingForHospital(ctx context.Context, hospitalID uuid.UUID) ([]*models.EmergencyHospitalCommunication, error) {
	query := `
		SELECT ` + communicationColumns + `
		FROM hospital_communications
		WHERE hospital_id = $1 AND status IN ('sent', 'delivered')
		ORDER BY
			CASE priority
				WHEN 'critical' THEN 0
				WHEN 'high' THEN 1
				WHEN 'medium' THEN 2
				ELSE 3
			END,
			created_at;
	`
	return r.listCommunications(ctx, query, hospitalID)
}

// ListActiveForFirstAider returns the caller's handoffs still in flight.
func (r *CommunicationRepository) ListActiveForFirstAider(ctx context.Context, firstAiderID string) ([]*models.EmergencyHospitalCommunication, error) {
	query := `
		SELECT ` + communicationColumns + `
		FROM hospital_communications
		WHERE first_aider_id = $1 AND status NOT IN ('arrived', 'cancelled', 'failed')
		ORDER BY created_at DESC;
	`
	return r.listCommunications(ctx, query, firstAiderID)
}

// ListRetryable returns recently created handoffs still waiting on a
// successful delivery and under the attempt cap.
func (r *CommunicationRepository) ListRetryable(ctx context.Context, window time.Duration, maxAttempts int) ([]*models.EmergencyHospitalCommunication, error) {
	query := `
		SELECT ` + communicationColumns + `
		FROM hospital_communications
		WHERE status IN ('pending', 'failed')
			AND communication_attempts < $1
			AND created_at >= $2
		ORDER BY created_at;
	`
	return r.listCommunications(ctx, query, maxAttempts, time.Now().UTC().Add(-window))
}

// ListAcknowledgmentTimeouts returns handoffs the hospital has not
// acknowledged within the timeout.
func (r *CommunicationRepository) ListAcknowledgmentTimeouts(ctx context.Context, timeout time.Duration) ([]*models.EmergencyHospitalCommunication, error) {
	query := `
		SELECT ` + communicationColumns + `
		FROM hospital_communications
		WHERE status IN ('sent', 'delivered')
			AND hospital_acknowledged_at IS NULL
			AND sent_to_hospital_at IS NOT NULL
			AND sent_to_hospital_at < $1
		ORDER BY sent_to_hospital_at;
	`
	return r.listCommunications(ctx, query, time.Now().UTC().Add(-timeout))
}

func (r *CommunicationRepository) listCommunications(ctx context.Context, query string, args ...any) ([]*models.EmergencyHospitalCommunication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list communications: %w", err)
	}
	defer rows.Close()

	comms := make([]*models.EmergencyHospitalCommunication, 0)
	for rows.Next() {
		comm, err := scanCommunication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan communication row: %w", err)
		}
		comms = append(comms, comm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating communication rows: %w", err)
	}
	return comms, nil
}

// Stats aggregates handoff outcomes since the given time, optionally
// scoped to one hospital or one first aider.
func (r *CommunicationRepository) Stats(ctx context.Context, since time.Time, hospitalID *uuid.UUID, firstAiderID string) (*models.CommunicationStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE hospital_acknowledged_at IS NOT NULL),
			COUNT(*) FILTER (WHERE status = 'ready'),
			COUNT(*) FILTER (WHERE status = 'arrived'),
			COUNT(*) FILTER (WHERE status = 'failed'),
			AVG(EXTRACT(EPOCH FROM (hospital_acknowledged_at - sent_to_hospital_at)) / 60)
				FILTER (WHERE hospital_acknowledged_at IS NOT NULL AND sent_to_hospital_at IS NOT NULL)
		FROM hospital_communications
		WHERE created_at >= $1
			AND ($2::uuid IS NULL OR hospital_id = $2)
			AND ($3 = '' OR first_aider_id = $3);
	`
	stats := &models.CommunicationStats{}
	err := r.db.QueryRow(ctx, query, since, hospitalID, firstAiderID).Scan(
		&stats.TotalCommunications,
		&stats.Acknowledged,
		&stats.Ready,
		&stats.Arrived,
		&stats.Failed,
		&stats.AverageResponseMinutes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate communication stats: %w", err)
	}
	return stats, nil
}
