package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CommunicationStatus tracks a hospital handoff through its lifecycle.
type CommunicationStatus string

const (
	CommPending      CommunicationStatus = "pending"
	CommSent         CommunicationStatus = "sent"
	CommDelivered    CommunicationStatus = "delivered"
	CommAcknowledged CommunicationStatus = "acknowledged"
	CommPreparing    CommunicationStatus = "preparing"
	CommReady        CommunicationStatus = "ready"
	CommEnRoute      CommunicationStatus = "en_route"
	CommArrived      CommunicationStatus = "arrived"
	CommCancelled    CommunicationStatus = "cancelled"
	CommFailed       CommunicationStatus = "failed"
)

// communicationTransitions enumerates the legal forward moves of the
// handoff state machine. Cancellation is handled separately: it is legal
// from any non-terminal state. failed -> sent is the retry path.
var communicationTransitions = map[CommunicationStatus][]CommunicationStatus{
	CommPending:      {CommSent, CommFailed},
	CommSent:         {CommDelivered, CommAcknowledged, CommFailed},
	CommDelivered:    {CommAcknowledged, CommFailed},
	CommAcknowledged: {CommPreparing, CommReady, CommFailed},
	CommPreparing:    {CommReady, CommFailed},
	CommReady:        {CommEnRoute, CommFailed},
	CommEnRoute:      {CommArrived, CommFailed},
	CommFailed:       {CommSent},
}

// IsTerminal reports whether no further transition is possible.
func (s CommunicationStatus) IsTerminal() bool {
	return s == CommArrived || s == CommCancelled
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s CommunicationStatus) CanTransitionTo(next CommunicationStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == CommCancelled {
		return true
	}
	for _, allowed := range communicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CommunicationChannel names a delivery mechanism for hospital alerts.
type CommunicationChannel string

const (
	ChannelAPI     CommunicationChannel = "api"
	ChannelSMS     CommunicationChannel = "sms"
	ChannelVoice   CommunicationChannel = "voice"
	ChannelWebhook CommunicationChannel = "webhook"
	ChannelPush    CommunicationChannel = "push"
	ChannelInApp   CommunicationChannel = "in_app"
	ChannelSystem  CommunicationChannel = "system"
)

// LogDirection distinguishes messages we sent from messages we received.
type LogDirection string

const (
	DirectionOutgoing LogDirection = "outgoing"
	DirectionIncoming LogDirection = "incoming"
)

// MessageType names what a communication log entry records.
type MessageType string

const (
	MessageEmergencyAlert    MessageType = "emergency_alert"
	MessageAcknowledgment    MessageType = "acknowledgment"
	MessagePreparationUpdate MessageType = "preparation_update"
	MessageStatusUpdate      MessageType = "status_update"
	MessageTimeout           MessageType = "timeout"
)

// Gender of the victim as reported from the scene.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// TriageCategory follows the START triage scheme.
type TriageCategory string

const (
	TriageImmediate TriageCategory = "immediate"
	TriageDelayed   TriageCategory = "delayed"
	TriageMinor     TriageCategory = "minor"
	TriageExpectant TriageCategory = "expectant"
)

// TriagePriority maps a triage category to the alert priority it implies.
func TriagePriority(t TriageCategory) AlertPriority {
	switch t {
	case TriageImmediate:
		return PriorityCritical
	case TriageDelayed:
		return PriorityHigh
	case TriageMinor:
		return PriorityMedium
	case TriageExpectant:
		return PriorityLow
	default:
		return PriorityHigh
	}
}

// EmergencyHospitalCommunication is the handoff record between a first
// aider at the scene and the receiving hospital.
type EmergencyHospitalCommunication struct {
	ID               uuid.UUID           `json:"id"`
	AlertID          uuid.UUID           `json:"alert_id"`
	AlertReferenceID string              `json:"alert_reference_id"`
	HospitalID       uuid.UUID           `json:"hospital_id"`
	FirstAiderID     string              `json:"first_aider_id"`
	FirstAiderName   string              `json:"first_aider_name,omitempty"`
	FirstAiderPhone  string              `json:"first_aider_phone,omitempty"`
	Status           CommunicationStatus `json:"status"`
	Priority         AlertPriority       `json:"priority"`

	VictimName        string         `json:"victim_name,omitempty"`
	VictimAge         *int           `json:"victim_age,omitempty"`
	VictimGender      Gender         `json:"victim_gender,omitempty"`
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

// ReadyForPatient reports whether the hospital confirmed all four
// mandatory preparation steps. Blood availability is advisory.
func (c *EmergencyHospitalCommunication) ReadyForPatient() bool {
	return c.DoctorsReady && c.NursesReady && c.EquipmentReady && c.BedReady
}

// CommunicationLog is one audit entry for a handoff: every delivery
// attempt, hospital response, and state change lands here.
type CommunicationLog struct {
	ID              uuid.UUID            `json:"id"`
	CommunicationID uuid.UUID            `json:"communication_id"`
	Channel         CommunicationChannel `json:"channel"`
	Direction       LogDirection         `json:"direction"`
	MessageType     MessageType          `json:"message_type"`
	MessageContent  string               `json:"message_content,omitempty"`
	MessageData     map[string]any       `json:"message_data,omitempty"`
	IsSuccessful    bool                 `json:"is_successful"`
	ErrorMessage    string               `json:"error_message,omitempty"`
	ResponseCode    string               `json:"response_code,omitempty"`

	SentAt             time.Time  `json:"sent_at"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	ResponseReceivedAt *time.Time `json:"response_received_at,omitempty"`
}

// checklistItemCount is the number of boolean items on the preparation
// checklist; completion percentage is derived from it.
const checklistItemCount = 16

// HospitalPreparationChecklist is the hospital-side readiness worksheet
// for one incoming patient.
type HospitalPreparationChecklist struct {
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

	ChecklistCompleted bool       `json:"checklist_completed"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CompletedBy        string     `json:"completed_by,omitempty"`
	Notes              string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *HospitalPreparationChecklist) items() []bool {
	return []bool{
		c.EmergencyDoctorAssigned,
		c.SpecialistDoctorNotified,
		c.NursingTeamReady,
		c.AnesthesiologistAlerted,
		c.EmergencyBedPrepared,
		c.OperatingRoomReserved,
		c.ICUBedAvailable,
		c.VitalMonitorsReady,
		c.VentilatorAvailable,
		c.DefibrillatorReady,
		c.EmergencyMedicationsReady,
		c.LabTestsOrdered,
		c.ImagingReady,
		c.BloodProductsAvailable,
		c.PharmacyAlerted,
		c.BloodBankNotified,
	}
}

// AllItemsComplete reports whether every checklist item is ticked.
func (c *HospitalPreparationChecklist) AllItemsComplete() bool {
	for _, done := range c.items() {
		if !done {
			return false
		}
	}
	return true
}

// CompletionPercentage returns checklist progress rounded to one decimal.
func (c *HospitalPreparationChecklist) CompletionPercentage() float64 {
	completed := 0
	for _, done := range c.items() {
		if done {
			completed++
		}
	}
	pct := float64(completed) / checklistItemCount * 100
	return math.Round(pct*10) / 10
}

// FirstAiderAssessment is the structured clinical picture recorded at the
// scene. At most one exists per communication.
type FirstAiderAssessment struct {
	ID              uuid.UUID `json:"id"`
	CommunicationID uuid.UUID `json:"communication_id"`

	GCSEyes   *int `json:"gcs_eyes,omitempty"`
	GCSVerbal *int `json:"gcs_verbal,omitempty"`
	GCSMotor  *int `json:"gcs_motor,omitempty"`
	GCSTotal  *int `json:"gcs_total,omitempty"`

	HeartRate              *int     `json:"heart_rate,omitempty"`
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic,omitempty"`
	RespiratoryRate        *int     `json:"respiratory_rate,omitempty"`
	OxygenSaturation       *int     `json:"oxygen_saturation,omitempty"`
	Temperature            *float64 `json:"temperature,omitempty"`

	MechanismOfInjury string   `json:"mechanism_of_injury,omitempty"`
	InjuriesNoted     []string `json:"injuries_noted,omitempty"`
	PainLevel         *int     `json:"pain_level,omitempty"`

	KnownAllergies     string `json:"known_allergies,omitempty"`
	CurrentMedications string `json:"current_medications,omitempty"`
	PastMedicalHistory string `json:"past_medical_history,omitempty"`
	LastOralIntake     string `json:"last_oral_intake,omitempty"`

	InterventionsProvided   []string `json:"interventions_provided,omitempty"`
	MedicationsAdministered []string `json:"medications_administered,omitempty"`

	TriageCategory    TriageCategory `json:"triage_category"`
	SceneObservations string         `json:"scene_observations,omitempty"`
	SafetyConcerns    string         `json:"safety_concerns,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeGCSTotal fills GCSTotal from the three components when all are
// present; a partial score leaves the total unset.
func (a *FirstAiderAssessment) ComputeGCSTotal() {
	if a.GCSEyes != nil && a.GCSVerbal != nil && a.GCSMotor != nil {
		total := *a.GCSEyes + *a.GCSVerbal + *a.GCSMotor
		a.GCSTotal = &total
	} else {
		a.GCSTotal = nil
	}
}

// FieldUpdate is a partial update to a communication. Which fields a
// caller may set depends on their role; nil means "leave unchanged".
type FieldUpdate struct {
	VitalSigns              map[string]any
	FirstAidProvided        *string
	EstimatedArrivalMinutes *int

	DoctorsReady   *bool
	NursesReady    *bool
	EquipmentReady *bool
	BedReady       *bool
	BloodAvailable *bool

	HospitalPreparationNotes *string
}

// FieldNames lists the fields the update actually touches.
func (u FieldUpdate) FieldNames() []string {
	var names []string
	if u.VitalSigns != nil {
		names = append(names, "vital_signs")
	}
	if u.FirstAidProvided != nil {
		names = append(names, "first_aid_provided")
	}
	if u.EstimatedArrivalMinutes != nil {
		names = append(names, "estimated_arrival_minutes")
	}
	if u.DoctorsReady != nil {
		names = append(names, "doctors_ready")
	}
	if u.NursesReady != nil {
		names = append(names, "nurses_ready")
	}
	if u.EquipmentReady != nil {
		names = append(names, "equipment_ready")
	}
	if u.BedReady != nil {
		names = append(names, "bed_ready")
	}
	if u.BloodAvailable != nil {
		names = append(names, "blood_available")
	}
	if u.HospitalPreparationNotes != nil {
		names = append(names, "hospital_preparation_notes")
	}
	return names
}

// IsEmpty reports whether the update touches nothing.
func (u FieldUpdate) IsEmpty() bool {
	return len(u.FieldNames()) == 0
}

// ChecklistUpdate is a partial update to a preparation checklist.
type ChecklistUpdate struct {
	EmergencyDoctorAssigned  *bool
	SpecialistDoctorNotified *bool
	NursingTeamReady         *bool
	AnesthesiologistAlerted  *bool

	EmergencyBedPrepared  *bool
	OperatingRoomReserved *bool
	ICUBedAvailable       *bool

	VitalMonitorsReady        *bool
	VentilatorAvailable       *bool
	DefibrillatorReady        *bool
	EmergencyMedicationsReady *bool

	LabTestsOrdered        *bool
	ImagingReady           *bool
	BloodProductsAvailable *bool

	PharmacyAlerted   *bool
	BloodBankNotified *bool

	Notes *string
}

// CommunicationStats summarizes handoff outcomes over a reporting window.
type CommunicationStats struct {
	TotalCommunications int `json:"total_communications"`
	Acknowledged        int `json:"acknowledged"`
	Ready               int `json:"ready"`
	Arrived             int `json:"arrived"`
	Failed              int `json:"failed"`

	// AverageResponseMinutes is nil when no handoff in the window was
	// acknowledged.
	AverageResponseMinutes *float64 `json:"average_response_time,omitempty"`
}
