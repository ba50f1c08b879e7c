package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateAlertRequest reports a new emergency from the scene.
// @Description Request to report a new emergency
type CreateAlertRequest struct {
	EmergencyType string  `json:"emergency_type" validate:"required,oneof=medical accident cardiac trauma respiratory pediatric other"`
	Description   string  `json:"description,omitempty" validate:"max=2000"`
	Priority      string  `json:"priority,omitempty" validate:"omitempty,oneof=critical high medium low"`
	Latitude      float64 `json:"latitude" validate:"required,latitude"`
	Longitude     float64 `json:"longitude" validate:"required,longitude"`
	Address       string  `json:"address,omitempty" validate:"max=500"`
}

// UpdateAlertLocationRequest moves an active alert to new coordinates.
// @Description Request to update an alert's location
type UpdateAlertLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Address   string  `json:"address,omitempty" validate:"max=500"`
}

// CancelAlertRequest cancels an alert with a reason.
// @Description Request to cancel an alert
type CancelAlertRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// ConfirmVerificationRequest submits an SMS verification code.
// @Description Request to confirm an alert verification code
type ConfirmVerificationRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// AlertResponse is the API view of an emergency alert.
// @Description Emergency alert
type AlertResponse struct {
	ID                   uuid.UUID  `json:"id"`
	AlertID              string     `json:"alert_id"`
	ReporterID           string     `json:"reporter_id"`
	EmergencyType        string     `json:"emergency_type"`
	Description          string     `json:"description,omitempty"`
	Priority             string     `json:"priority"`
	Latitude             float64    `json:"latitude"`
	Longitude            float64    `json:"longitude"`
	Address              string     `json:"address,omitempty"`
	Status               string     `json:"status"`
	IsActive             bool       `json:"is_active"`
	IsVerified           bool       `json:"is_verified"`
	VerificationAttempts int        `json:"verification_attempts"`
	VerifiedAt           *time.Time `json:"verified_at,omitempty"`
	DispatchedAt         *time.Time `json:"dispatched_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// TimelineEntryResponse is one audit entry on an alert's timeline.
// @Description Alert timeline entry
type TimelineEntryResponse struct {
	ID             uuid.UUID      `json:"id"`
	UpdateType     string         `json:"update_type"`
	PreviousStatus string         `json:"previous_status,omitempty"`
	NewStatus      string         `json:"new_status,omitempty"`
	Details        map[string]any `json:"details,omitempty"`
	CreatedBy      string         `json:"created_by,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// MatchHospitalsRequest asks the matching engine to rank hospitals for
// an emergency at the given location.
// @Description Request to rank hospitals for an emergency
type MatchHospitalsRequest struct {
	Latitude            float64  `json:"latitude" validate:"required,latitude"`
	Longitude           float64  `json:"longitude" validate:"required,longitude"`
	EmergencyType       string   `json:"emergency_type" validate:"required,oneof=medical accident cardiac trauma respiratory pediatric other"`
	RequiredSpecialties []string `json:"required_specialties,omitempty" validate:"max=10,dive,min=2,max=50"`
	MaxDistanceKM       float64  `json:"max_distance_km,omitempty" validate:"omitempty,gt=0,lte=500"`
	MaxResults          int      `json:"max_results,omitempty" validate:"omitempty,gt=0,lte=20"`
}

// CreateCommunicationRequest opens a hospital handoff for an alert.
// @Description Request to open a hospital communication
type CreateCommunicationRequest struct {
	AlertID    uuid.UUID `json:"alert_id" validate:"required"`
	HospitalID uuid.UUID `json:"hospital_id" validate:"required"`

	VictimName     string         `json:"victim_name,omitempty" validate:"max=255"`
	VictimAge      *int           `json:"victim_age,omitempty" validate:"omitempty,gte=0,lte=130"`
	VictimGender   string         `json:"victim_gender,omitempty" validate:"omitempty,oneof=male female other"`
	ChiefComplaint string         `json:"chief_complaint" validate:"required,max=2000"`
	VitalSigns     map[string]any `json:"vital_signs,omitempty"`

	InitialAssessment string `json:"initial_assessment,omitempty" validate:"max=5000"`
	FirstAidProvided  string `json:"first_aid_provided,omitempty" validate:"max=5000"`
	Priority          string `json:"priority,omitempty" validate:"omitempty,oneof=critical high medium low"`

	EstimatedArrivalMinutes *int `json:"estimated_arrival_minutes,omitempty" validate:"omitempty,gte=0,lte=720"`

	RequiredSpecialties []string `json:"required_specialties,omitempty" validate:"max=10,dive,min=2,max=50"`
	EquipmentNeeded     []string `json:"equipment_needed,omitempty" validate:"max=20,dive,min=2,max=100"`
	BloodTypeRequired   string   `json:"blood_type_required,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

// AcknowledgeRequest confirms receipt of a handoff by hospital staff.
// @Description Request to acknowledge a communication
type AcknowledgeRequest struct {
	Notes string `json:"notes,omitempty" validate:"max=2000"`
}

// UpdateCommunicationFieldsRequest patches role-scoped fields on a
// handoff. Absent fields are left unchanged.
// @Description Partial update of communication fields
type UpdateCommunicationFieldsRequest struct {
	VitalSigns              map[string]any `json:"vital_signs,omitempty"`
	FirstAidProvided        *string        `json:"first_aid_provided,omitempty" validate:"omitempty,max=5000"`
	EstimatedArrivalMinutes *int           `json:"estimated_arrival_minutes,omitempty" validate:"omitempty,gte=0,lte=720"`

	DoctorsReady   *bool `json:"doctors_ready,omitempty"`
	NursesReady    *bool `json:"nurses_ready,omitempty"`
	EquipmentReady *bool `json:"equipment_ready,omitempty"`
	BedReady       *bool `json:"bed_ready,omitempty"`
	BloodAvailable *bool `json:"blood_available,omitempty"`

	HospitalPreparationNotes *string `json:"hospital_preparation_notes,omitempty" validate:"omitempty,max=5000"`
}

// UpdateCommunicationStatusRequest moves a handoff to a new status.
// @Description Request to update a communication's status
type UpdateCommunicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=delivered en_route arrived cancelled"`
	Notes  string `json:"notes,omitempty" validate:"max=2000"`
}

// SubmitAssessmentRequest records the structured clinical picture from
// the scene.
// @Description Request to submit a first aider assessment
type SubmitAssessmentRequest struct {
	GCSEyes   *int `json:"gcs_eyes,omitempty" validate:"omitempty,gte=1,lte=4"`
	GCSVerbal *int `json:"gcs_verbal,omitempty" validate:"omitempty,gte=1,lte=5"`
	GCSMotor  *int `json:"gcs_motor,omitempty" validate:"omitempty,gte=1,lte=6"`

	HeartRate              *int     `json:"heart_rate,omitempty" validate:"omitempty,gte=0,lte=400"`
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic,omitempty" validate:"omitempty,gte=0,lte=350"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic,omitempty" validate:"omitempty,gte=0,lte=250"`
	RespiratoryRate        *int     `json:"respiratory_rate,omitempty" validate:"omitempty,gte=0,lte=120"`
	OxygenSaturation       *int     `json:"oxygen_saturation,omitempty" validate:"omitempty,gte=0,lte=100"`
	Temperature            *float64 `json:"temperature,omitempty" validate:"omitempty,gte=20,lte=45"`

	MechanismOfInjury string   `json:"mechanism_of_injury,omitempty" validate:"max=2000"`
	InjuriesNoted     []string `json:"injuries_noted,omitempty" validate:"max=30,dive,max=255"`
	PainLevel         *int     `json:"pain_level,omitempty" validate:"omitempty,gte=0,lte=10"`

	KnownAllergies     string `json:"known_allergies,omitempty" validate:"max=2000"`
	CurrentMedications string `json:"current_medications,omitempty" validate:"max=2000"`
	PastMedicalHistory string `json:"past_medical_history,omitempty" validate:"max=5000"`
	LastOralIntake     string `json:"last_oral_intake,omitempty" validate:"max=500"`

	InterventionsProvided   []string `json:"interventions_provided,omitempty" validate:"max=30,dive,max=255"`
	MedicationsAdministered []string `json:"medications_administered,omitempty" validate:"max=30,dive,max=255"`

	TriageCategory    string `json:"triage_category" validate:"required,oneof=immediate delayed minor expectant"`
	SceneObservations string `json:"scene_observations,omitempty" validate:"max=5000"`
	SafetyConcerns    string `json:"safety_concerns,omitempty" validate:"max=2000"`
}

// UpdateChecklistRequest patches items on the preparation checklist.
// Absent items are left unchanged.
// @Description Partial update of the preparation checklist
type UpdateChecklistRequest struct {
	EmergencyDoctorAssigned  *bool `json:"emergency_doctor_assigned,omitempty"`
	SpecialistDoctorNotified *bool `json:"specialist_doctor_notified,omitempty"`
	NursingTeamReady         *bool `json:"nursing_team_ready,omitempty"`
	AnesthesiologistAlerted  *bool `json:"anesthesiologist_alerted,omitempty"`

	EmergencyBedPrepared  *bool `json:"emergency_bed_prepared,omitempty"`
	OperatingRoomReserved *bool `json:"operating_room_reserved,omitempty"`
	ICUBedAvailable       *bool `json:"icu_bed_available,omitempty"`

	VitalMonitorsReady        *bool `json:"vital_monitors_ready,omitempty"`
	VentilatorAvailable       *bool `json:"ventilator_available,omitempty"`
	DefibrillatorReady        *bool `json:"defibrillator_ready,omitempty"`
	EmergencyMedicationsReady *bool `json:"emergency_medications_ready,omitempty"`

	LabTestsOrdered        *bool `json:"lab_tests_ordered,omitempty"`
	ImagingReady           *bool `json:"imaging_ready,omitempty"`
	BloodProductsAvailable *bool `json:"blood_products_available,omitempty"`

	PharmacyAlerted   *bool `json:"pharmacy_alerted,omitempty"`
	BloodBankNotified *bool `json:"blood_bank_notified,omitempty"`

	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ChecklistResponse is the preparation checklist with derived progress.
// @Description Hospital preparation checklist
type ChecklistResponse struct {
	ID              uuid.UUID `json:"id"`
	CommunicationID uuid.UUID `json:"communication_id"`

	EmergencyDoctorAssigned  bool `json:"emergency_doctor_assigned"`
	SpecialistDoctorNotified bool `json:"specialist_doctor_notified"`
	NursingTeamReady         bool `json:"nursing_team_ready"`
	AnesthesiologistAlerted  bool `json:"anesthesiologist_alerted"`

	EmergencyBedPrepared  bool `json:"emergency_bed_prepared"`
	OperatingRoomReserved bool `json:"operating_room_reserved"`
	ICUBedAvailable       bool `json:"icu_bed_available"`

	VitalMonitorsReady        bool `json:"vital_monitors_ready"`
	VentilatorAvailable       bool `json:"ventilator_available"`
	DefibrillatorReady        bool `json:"defibrillator_ready"`
	EmergencyMedicationsReady bool `json:"emergency_medications_ready"`

	LabTestsOrdered        bool `json:"lab_tests_ordered"`
	ImagingReady           bool `json:"imaging_ready"`
	BloodProductsAvailable bool `json:"blood_products_available"`

	PharmacyAlerted   bool `json:"pharmacy_alerted"`
	BloodBankNotified bool `json:"blood_bank_notified"`

	ChecklistCompleted   bool       `json:"checklist_completed"`
	CompletionPercentage float64    `json:"completion_percentage"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CompletedBy          string     `json:"completed_by,omitempty"`
	Notes                string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommunicationResponse is the API view of a hospital handoff.
// @Description Emergency-hospital communication
type CommunicationResponse struct {
	ID               uuid.UUID `json:"id"`
	AlertID          uuid.UUID `json:"alert_id"`
	AlertReferenceID string    `json:"alert_reference_id"`
	HospitalID       uuid.UUID `json:"hospital_id"`
	FirstAiderID     string    `json:"first_aider_id"`
	FirstAiderName   string    `json:"first_aider_name,omitempty"`
	FirstAiderPhone  string    `json:"first_aider_phone,omitempty"`
	Status           string    `json:"status"`
	Priority         string    `json:"priority"`

	VictimName        string         `json:"victim_name,omitempty"`
	VictimAge         *int           `json:"victim_age,omitempty"`
	VictimGender      string         `json:"victim_gender,omitempty"`
	ChiefComplaint    string         `json:"chief_complaint"`
	VitalSigns        map[string]any `json:"vital_signs,omitempty"`
	InitialAssessment string         `json:"initial_assessment,omitempty"`
	FirstAidProvided  string         `json:"first_aid_provided,omitempty"`

	EstimatedArrivalMinutes *int       `json:"estimated_arrival_minutes,omitempty"`
	EstimatedArrivalTime    *time.Time `json:"estimated_arrival_time,omitempty"`

	RequiredSpecialties []string `json:"required_specialties,omitempty"`
	EquipmentNeeded     []string `json:"equipment_needed,omitempty"`
	BloodTypeRequired   string   `json:"blood_type_required,omitempty"`

	CommunicationAttempts    int        `json:"communication_attempts"`
	LastCommunicationAttempt *time.Time `json:"last_communication_attempt,omitempty"`

	HospitalAcknowledgedAt *time.Time `json:"hospital_acknowledged_at,omitempty"`
	HospitalAcknowledgedBy string     `json:"hospital_acknowledged_by,omitempty"`

	DoctorsReady   bool `json:"doctors_ready"`
	NursesReady    bool `json:"nurses_ready"`
	EquipmentReady bool `json:"equipment_ready"`
	BedReady       bool `json:"bed_ready"`
	BloodAvailable bool `json:"blood_available"`

	HospitalPreparationNotes string `json:"hospital_preparation_notes,omitempty"`

	SentToHospitalAt *time.Time `json:"sent_to_hospital_at,omitempty"`
	HospitalReadyAt  *time.Time `json:"hospital_ready_at,omitempty"`
	PatientArrivedAt *time.Time `json:"patient_arrived_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CountResponse reports how many records an operation returned.
// @Description Count of records
type CountResponse struct {
	Count int `json:"count"`
}

// VerificationResponse reports the outcome of a code confirmation.
// @Description Verification confirmation outcome
type VerificationResponse struct {
	Verified bool `json:"verified"`
}
