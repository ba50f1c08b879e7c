package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyType classifies what happened at the scene.
type EmergencyType string

const (
	EmergencyMedical     EmergencyType = "medical"
	EmergencyAccident    EmergencyType = "accident"
	EmergencyCardiac     EmergencyType = "cardiac"
	EmergencyTrauma      EmergencyType = "trauma"
	EmergencyRespiratory EmergencyType = "respiratory"
	EmergencyPediatric   EmergencyType = "pediatric"
	EmergencyOther       EmergencyType = "other"
)

// AlertPriority orders emergencies by urgency.
type AlertPriority string

const (
	PriorityCritical AlertPriority = "critical"
	PriorityHigh     AlertPriority = "high"
	PriorityMedium   AlertPriority = "medium"
	PriorityLow      AlertPriority = "low"
)

// AlertStatus tracks an alert through its lifecycle.
type AlertStatus string

const (
	AlertPending          AlertStatus = "pending"
	AlertVerified         AlertStatus = "verified"
	AlertDispatched       AlertStatus = "dispatched"
	AlertHospitalSelected AlertStatus = "hospital_selected"
	AlertEnRoute          AlertStatus = "en_route"
	AlertArrived          AlertStatus = "arrived"
	AlertCompleted        AlertStatus = "completed"
	AlertCancelled        AlertStatus = "cancelled"
	AlertExpired          AlertStatus = "expired"
)

// IsFinal reports whether the alert can no longer change state.
func (s AlertStatus) IsFinal() bool {
	return s == AlertCompleted || s == AlertCancelled || s == AlertExpired
}

// UpdateType names a kind of entry on an alert's timeline.
type UpdateType string

const (
	UpdateCreated             UpdateType = "created"
	UpdateVerified            UpdateType = "verified"
	UpdateLocationUpdated     UpdateType = "location_updated"
	UpdateStatusChanged       UpdateType = "status_changed"
	UpdateHospitalAssigned    UpdateType = "hospital_assigned"
	UpdateAmbulanceDispatched UpdateType = "ambulance_dispatched"
	UpdateETAUpdated          UpdateType = "eta_updated"
	UpdateCancelled           UpdateType = "cancelled"
	UpdateCompleted           UpdateType = "completed"
)

// VerificationMethod names how an alert was confirmed to be real.
type VerificationMethod string

const (
	VerifyByCall VerificationMethod = "call"
	VerifyBySMS  VerificationMethod = "sms"
	VerifyByPush VerificationMethod = "push"
	VerifyAuto   VerificationMethod = "auto"
)

// EmergencyAlert is the root record of one reported emergency.
type EmergencyAlert struct {
	ID            uuid.UUID     `json:"id"`
	AlertID       string        `json:"alert_id"`
	ReporterID    string        `json:"reporter_id"`
	EmergencyType EmergencyType `json:"emergency_type"`
	Description   string        `json:"description,omitempty"`
	Priority      AlertPriority `json:"priority"`
	Latitude      float64       `json:"latitude"`
	Longitude     float64       `json:"longitude"`
	Address       string        `json:"address,omitempty"`
	Status        AlertStatus   `json:"status"`
	IsActive      bool          `json:"is_active"`
	IsVerified    bool          `json:"is_verified"`

	VerificationAttempts int `json:"verification_attempts"`

	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	DispatchedAt *time.Time `json:"dispatched_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmergencyUpdate is one audit entry on an alert's timeline.
type EmergencyUpdate struct {
	ID             uuid.UUID      `json:"id"`
	AlertID        uuid.UUID      `json:"alert_id"`
	UpdateType     UpdateType     `json:"update_type"`
	PreviousStatus AlertStatus    `json:"previous_status,omitempty"`
	NewStatus      AlertStatus    `json:"new_status,omitempty"`
	Details        map[string]any `json:"details,omitempty"`
	CreatedBy      string         `json:"created_by,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// AlertVerification is one attempt to confirm an alert with its reporter.
type AlertVerification struct {
	ID               uuid.UUID          `json:"id"`
	AlertID          uuid.UUID          `json:"alert_id"`
	Method           VerificationMethod `json:"method"`
	VerificationCode string             `json:"-"`
	IsSuccessful     bool               `json:"is_successful"`
	ResponseReceived bool               `json:"response_received"`
	RespondedAt      *time.Time         `json:"responded_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

// DispatchResult is the outcome of running the full pipeline on one alert.
type DispatchResult struct {
	Alert           *EmergencyAlert `json:"alert"`
	Hospital        *Hospital       `json:"hospital"`
	DistanceKM      float64         `json:"distance_km"`
	ETAMinutes      int             `json:"estimated_arrival_minutes"`
	CommunicationID uuid.UUID       `json:"communication_id"`
}
