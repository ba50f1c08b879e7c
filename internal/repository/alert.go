package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/service"
)

// AlertRepository is the PostgreSQL store for emergency alerts, their
// append-only timeline and their verification attempts. Status changes
// are written together with their timeline entry in one transaction.
type AlertRepository struct {
	db *pgxpool.Pool
}

// NewAlertRepository creates the alert store.
func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

const alertColumns = `
	id, alert_id, reporter_id, emergency_type, description, priority,
	latitude, longitude, address, status, is_active, is_verified,
	verification_attempts, verified_at, dispatched_at, completed_at,
	cancelled_at, created_at, updated_at
`

func scanAlert(row pgx.Row) (*models.EmergencyAlert, error) {
	alert := &models.EmergencyAlert{}
	err := row.Scan(
		&alert.ID,
		&alert.AlertID,
		&alert.ReporterID,
		&alert.EmergencyType,
		&alert.Description,
		&alert.Priority,
		&alert.Latitude,
		&alert.Longitude,
		&alert.Address,
		&alert.Status,
		&alert.IsActive,
		&alert.IsVerified,
		&alert.VerificationAttempts,
		&alert.VerifiedAt,
		&alert.DispatchedAt,
		&alert.CompletedAt,
		&alert.CancelledAt,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// Create stores the alert and its first timeline entry in one transaction.
func (r *AlertRepository) Create(ctx context.Context, alert *models.EmergencyAlert, initial *models.EmergencyUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO emergency_alerts (
			alert_id, reporter_id, emergency_type, description, priority,
			latitude, longitude, address, status, is_active, is_verified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;
	`
	err = tx.QueryRow(ctx, query,
		alert.AlertID,
		alert.ReporterID,
		alert.EmergencyType,
		alert.Description,
		alert.Priority,
		alert.Latitude,
		alert.Longitude,
		alert.Address,
		alert.Status,
		alert.IsActive,
		alert.IsVerified,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	initial.AlertID = alert.ID
	if err := insertUpdate(ctx, tx, initial); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID returns an alert by its primary key.
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EmergencyAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM emergency_alerts WHERE id = $1;`

	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("alert", id.String())
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// GetByReference returns an alert by its human-readable reference.
func (r *AlertRepository) GetByReference(ctx context.Context, reference string) (*models.EmergencyAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM emergency_alerts WHERE alert_id = $1;`

	alert, err := scanAlert(r.db.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("alert", reference)
		}
		return nil, fmt.Errorf("failed to get alert by reference: %w", err)
	}
	return alert, nil
}

// FindRecentActiveByReporter returns the reporter's newest still-active
// alert created at or after since, or (nil, nil) when there is none.
func (r *AlertRepository) FindRecentActiveByReporter(ctx context.Context, reporterID string, since time.Time) (*models.EmergencyAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM emergency_alerts
		WHERE reporter_id = $1 AND is_active = TRUE AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT 1;
	`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, reporterID, since))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find recent alert by reporter: %w", err)
	}
	return alert, nil
}

// ChangeStatus persists the alert's status, flags and lifecycle
// timestamps together with the audit entry in one transaction.
func (r *AlertRepository) ChangeStatus(ctx context.Context, alert *models.EmergencyAlert, update *models.EmergencyUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE emergency_alerts SET
			status = $1,
			is_active = $2,
			is_verified = $3,
			verified_at = $4,
			dispatched_at = $5,
			completed_at = $6,
			cancelled_at = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := tx.Exec(ctx, query,
		alert.Status,
		alert.IsActive,
		alert.IsVerified,
		alert.VerifiedAt,
		alert.DispatchedAt,
		alert.CompletedAt,
		alert.CancelledAt,
		alert.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("alert", alert.ID.String())
	}

	if err := insertUpdate(ctx, tx, update); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// UpdateLocation persists new coordinates together with the audit entry
// in one transaction.
func (r *AlertRepository) UpdateLocation(ctx context.Context, alert *models.EmergencyAlert, update *models.EmergencyUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE emergency_alerts SET
			latitude = $1,
			longitude = $2,
			address = $3,
			updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := tx.Exec(ctx, query, alert.Latitude, alert.Longitude, alert.Address, alert.ID)
	if err != nil {
		return fmt.Errorf("failed to update alert location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("alert", alert.ID.String())
	}

	if err := insertUpdate(ctx, tx, update); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// AppendUpdate stores one timeline entry outside a status change.
func (r *AlertRepository) AppendUpdate(ctx context.Context, update *models.EmergencyUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertUpdate(ctx, tx, update); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertUpdate(ctx context.Context, tx pgx.Tx, update *models.EmergencyUpdate) error {
	details, err := json.Marshal(update.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal update details: %w", err)
	}

	query := `
		INSERT INTO emergency_updates (
			alert_id, update_type, previous_status, new_status, details, created_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	if update.CreatedAt.IsZero() {
		update.CreatedAt = time.Now().UTC()
	}
	err = tx.QueryRow(ctx, query,
		update.AlertID,
		update.UpdateType,
		update.PreviousStatus,
		update.NewStatus,
		details,
		update.CreatedBy,
		update.CreatedAt,
	).Scan(&update.ID)
	if err != nil {
		return fmt.Errorf("failed to insert alert update: %w", err)
	}
	return nil
}

// ListUpdates returns an alert's timeline, newest first.
func (r *AlertRepository) ListUpdates(ctx context.Context, alertID uuid.UUID, limit int) ([]*models.EmergencyUpdate, error) {
	query := `
		SELECT id, alert_id, update_type, previous_status, new_status, details, created_by, created_at
		FROM emergency_updates
		WHERE alert_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, alertID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list alert updates: %w", err)
	}
	defer rows.Close()

	updates := make([]*models.EmergencyUpdate, 0)
	for rows.Next() {
		update := &models.EmergencyUpdate{}
		var details []byte
		if err := rows.Scan(
			&update.ID,
			&update.AlertID,
			&update.UpdateType,
			&update.PreviousStatus,
			&update.NewStatus,
			&details,
			&update.CreatedBy,
			&update.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert update row: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &update.Details); err != nil {
				return nil, fmt.Errorf("failed to unmarshal update details: %w", err)
			}
		}
		updates = append(updates, update)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert update rows: %w", err)
	}
	return updates, nil
}

// ListByReporter returns a reporter's alerts, newest first.
func (r *AlertRepository) ListByReporter(ctx context.Context, reporterID string, limit int) ([]*models.EmergencyAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM emergency_alerts
		WHERE reporter_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	return r.listAlerts(ctx, query, reporterID, limit)
}

// ListActive returns all alerts still in flight, most urgent first.
func (r *AlertRepository) ListActive(ctx context.Context) ([]*models.EmergencyAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM emergency_alerts
		WHERE is_active = TRUE
		ORDER BY
			CASE priority
				WHEN 'critical' THEN 0
				WHEN 'high' THEN 1
				WHEN 'medium' THEN 2
				ELSE 3
			END,
			created_at;
	`
	return r.listAlerts(ctx, query)
}

func (r *AlertRepository) listAlerts(ctx context.Context, query string, args ...any) ([]*models.EmergencyAlert, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.EmergencyAlert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert rows: %w", err)
	}
	return alerts, nil
}

// DeleteCascade removes the alert and everything it owns: communications
// with their logs, checklists and assessments, timeline entries and
// verifications. The alert is the root of ownership, so children go
// first inside one transaction.
func (r *AlertRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`DELETE FROM communication_logs WHERE communication_id IN
			(SELECT id FROM hospital_communications WHERE alert_id = $1);`,
		`DELETE FROM preparation_checklists WHERE communication_id IN
			(SELECT id FROM hospital_communications WHERE alert_id = $1);`,
		`DELETE FROM first_aider_assessments WHERE communication_id IN
			(SELECT id FROM hospital_communications WHERE alert_id = $1);`,
		`DELETE FROM hospital_communications WHERE alert_id = $1;`,
		`DELETE FROM emergency_updates WHERE alert_id = $1;`,
		`DELETE FROM alert_verifications WHERE alert_id = $1;`,
	}
	for _, statement := range statements {
		if _, err := tx.Exec(ctx, statement, id); err != nil {
			return fmt.Errorf("failed to delete alert children: %w", err)
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM emergency_alerts WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("alert", id.String())
	}

	return tx.Commit(ctx)
}

// CreateVerification stores one verification attempt.
func (r *AlertRepository) CreateVerification(ctx context.Context, verification *models.AlertVerification) error {
	query := `
		INSERT INTO alert_verifications (alert_id, method, verification_code, is_successful, response_received)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		verification.AlertID,
		verification.Method,
		verification.VerificationCode,
		verification.IsSuccessful,
		verification.ResponseReceived,
	).Scan(&verification.ID, &verification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create verification: %w", err)
	}
	return nil
}

// LatestPendingVerification returns the newest unanswered verification
// created at or after since, or (nil, nil) when none is pending.
func (r *AlertRepository) LatestPendingVerification(ctx context.Context, alertID uuid.UUID, since time.Time) (*models.AlertVerification, error) {
	query := `
		SELECT id, alert_id, method, verification_code, is_successful, response_received, responded_at, created_at
		FROM alert_verifications
		WHERE alert_id = $1 AND response_received = FALSE AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT 1;
	`
	verification := &models.AlertVerification{}
	err := r.db.QueryRow(ctx, query, alertID, since).Scan(
		&verification.ID,
		&verification.AlertID,
		&verification.Method,
		&verification.VerificationCode,
		&verification.IsSuccessful,
		&verification.ResponseReceived,
		&verification.RespondedAt,
		&verification.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending verification: %w", err)
	}
	return verification, nil
}

// SaveVerification persists the outcome of a verification attempt.
func (r *AlertRepository) SaveVerification(ctx context.Context, verification *models.AlertVerification) error {
	query := `
		UPDATE alert_verifications SET
			is_successful = $1,
			response_received = $2,
			responded_at = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		verification.IsSuccessful,
		verification.ResponseReceived,
		verification.RespondedAt,
		verification.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save verification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("verification", verification.ID.String())
	}
	return nil
}

// IncrementVerificationAttempts counts one more verification attempt on
// the alert itself.
func (r *AlertRepository) IncrementVerificationAttempts(ctx context.Context, alertID uuid.UUID) error {
	query := `
		UPDATE emergency_alerts SET
			verification_attempts = verification_attempts + 1,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, alertID)
	if err != nil {
		return fmt.Errorf("failed to increment verification attempts: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("alert", alertID.String())
	}
	return nil
}
