package models

import (
	"time"

	"github.com/google/uuid"
)

// HospitalType classifies the owning organization of a facility.
type HospitalType string

const (
	HospitalTypePublic      HospitalType = "public"
	HospitalTypePrivate     HospitalType = "private"
	HospitalTypeMission     HospitalType = "mission"
	HospitalTypeClinic      HospitalType = "clinic"
	HospitalTypeSpecialized HospitalType = "specialized"
)

// FacilityLevel follows the national facility classification, level 1 to 6.
type FacilityLevel string

const (
	FacilityLevel1 FacilityLevel = "level_1"
	FacilityLevel2 FacilityLevel = "level_2"
	FacilityLevel3 FacilityLevel = "level_3"
	FacilityLevel4 FacilityLevel = "level_4"
	FacilityLevel5 FacilityLevel = "level_5"
	FacilityLevel6 FacilityLevel = "level_6"
)

// CapacityStatus is the self-reported load of a facility.
type CapacityStatus string

const (
	CapacityLow      CapacityStatus = "low"
	CapacityModerate CapacityStatus = "moderate"
	CapacityHigh     CapacityStatus = "high"
	CapacityFull     CapacityStatus = "full"
	CapacityOverflow CapacityStatus = "overflow"
)

// CapabilityLevel grades how well a hospital covers a specialty.
type CapabilityLevel string

const (
	CapabilityBasic        CapabilityLevel = "basic"
	CapabilityIntermediate CapabilityLevel = "intermediate"
	CapabilityAdvanced     CapabilityLevel = "advanced"
	CapabilitySpecialized  CapabilityLevel = "specialized"
)

// Specialty names a clinical department a hospital may offer.
type Specialty string

const (
	SpecialtyTrauma         Specialty = "trauma"
	SpecialtyCardiac        Specialty = "cardiac"
	SpecialtyPediatric      Specialty = "pediatric"
	SpecialtyMaternity      Specialty = "maternity"
	SpecialtySurgical       Specialty = "surgical"
	SpecialtyICU            Specialty = "icu"
	SpecialtyEmergency      Specialty = "emergency"
	SpecialtyOrthopedic     Specialty = "orthopedic"
	SpecialtyNeurology      Specialty = "neurology"
	SpecialtyOncology       Specialty = "oncology"
	SpecialtyBurnUnit       Specialty = "burn_unit"
	SpecialtyPsychiatric    Specialty = "psychiatric"
	SpecialtyRehabilitation Specialty = "rehabilitation"
)

// Hospital is a facility in the emergency directory.
type Hospital struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	HospitalType   HospitalType  `json:"hospital_type"`
	Level          FacilityLevel `json:"level"`
	Latitude       float64       `json:"latitude"`
	Longitude      float64       `json:"longitude"`
	Address        string        `json:"address"`
	City           string        `json:"city"`
	County         string        `json:"county"`
	Phone          string        `json:"phone"`
	EmergencyPhone string        `json:"emergency_phone"`
	Email          string        `json:"email,omitempty"`
	Website        string        `json:"website,omitempty"`
	PlaceID        string        `json:"place_id,omitempty"`
	MFLCode        string        `json:"mfl_code,omitempty"`

	// Alert delivery endpoints. Empty values disable the channel.
	APIBaseURL       string `json:"api_base_url,omitempty"`
	APIKey           string `json:"-"`
	WebhookURL       string `json:"webhook_url,omitempty"`
	SMSNotifications bool   `json:"sms_notifications"`

	IsOperational      bool       `json:"is_operational"`
	IsVerified         bool       `json:"is_verified"`
	AcceptsEmergencies bool       `json:"accepts_emergencies"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`

	Specialties []HospitalSpecialty `json:"specialties,omitempty"`
	Capacity    *HospitalCapacity   `json:"capacity,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HospitalSpecialty is one clinical capability of a hospital.
type HospitalSpecialty struct {
	ID          uuid.UUID       `json:"id"`
	HospitalID  uuid.UUID       `json:"hospital_id"`
	Specialty   Specialty       `json:"specialty"`
	Capability  CapabilityLevel `json:"capability_level"`
	IsAvailable bool            `json:"is_available"`
	Notes       string          `json:"notes,omitempty"`
}

// HospitalCapacity is a point-in-time load snapshot for a hospital.
type HospitalCapacity struct {
	HospitalID               uuid.UUID      `json:"hospital_id"`
	TotalBeds                int            `json:"total_beds"`
	AvailableBeds            int            `json:"available_beds"`
	EmergencyBedsTotal       int            `json:"emergency_beds_total"`
	EmergencyBedsAvailable   int            `json:"emergency_beds_available"`
	ICUBedsTotal             int            `json:"icu_beds_total"`
	ICUBedsAvailable         int            `json:"icu_beds_available"`
	AverageWaitTimeMinutes   int            `json:"average_wait_time"`
	EmergencyWaitTimeMinutes int            `json:"emergency_wait_time"`
	DoctorsAvailable         int            `json:"doctors_available"`
	NursesAvailable          int            `json:"nurses_available"`
	IsAcceptingPatients      bool           `json:"is_accepting_patients"`
	Status                   CapacityStatus `json:"capacity_status"`
	LastUpdated              time.Time      `json:"last_updated"`
}

// HospitalRating is one patient review of a facility.
type HospitalRating struct {
	ID                  uuid.UUID `json:"id"`
	HospitalID          uuid.UUID `json:"hospital_id"`
	UserID              string    `json:"user_id"`
	OverallRating       int       `json:"overall_rating"`
	StaffRating         *int      `json:"staff_rating,omitempty"`
	FacilitiesRating    *int      `json:"facilities_rating,omitempty"`
	EmergencyCareRating *int      `json:"emergency_care_rating,omitempty"`
	Review              string    `json:"review,omitempty"`
	WasEmergency        bool      `json:"was_emergency"`
	IsApproved          bool      `json:"is_approved"`
	CreatedAt           time.Time `json:"created_at"`
}

// HospitalWorkingHours is the schedule for one weekday, 0 = Monday.
type HospitalWorkingHours struct {
	HospitalID         uuid.UUID `json:"hospital_id"`
	DayOfWeek          int       `json:"day_of_week"`
	OpensAt            string    `json:"opens_at,omitempty"`
	ClosesAt           string    `json:"closes_at,omitempty"`
	EmergencyOpensAt   string    `json:"emergency_opens_at,omitempty"`
	EmergencyClosesAt  string    `json:"emergency_closes_at,omitempty"`
	Is24Hours          bool      `json:"is_24_hours"`
	IsEmergency24Hours bool      `json:"is_emergency_24_hours"`
	IsClosed           bool      `json:"is_closed"`
}

// RatingSummary aggregates approved ratings for a hospital.
type RatingSummary struct {
	AverageOverall       float64 `json:"average_overall"`
	AverageEmergencyCare float64 `json:"average_emergency_care"`
	Count                int     `json:"count"`
}

// DiscoveryFilter narrows a nearby-hospital search.
type DiscoveryFilter struct {
	EmergencyType EmergencyType
	Specialties   []string
	Level         FacilityLevel
	MaxResults    int
}

// NearbyHospital is a directory entry annotated with straight-line distance.
type NearbyHospital struct {
	Hospital   *Hospital `json:"hospital"`
	DistanceKM float64   `json:"distance_km"`
}

// HospitalDetails is the full directory view of one facility.
type HospitalDetails struct {
	Hospital     *Hospital              `json:"hospital"`
	WorkingHours []HospitalWorkingHours `json:"working_hours"`
	Rating       *RatingSummary         `json:"rating,omitempty"`
}

// HospitalAvailability is the answer to "can this hospital take a patient now".
type HospitalAvailability struct {
	HospitalID             uuid.UUID      `json:"hospital_id"`
	IsAvailable            bool           `json:"is_available"`
	Reason                 string         `json:"reason,omitempty"`
	Status                 CapacityStatus `json:"capacity_status"`
	AvailableBeds          int            `json:"available_beds"`
	EmergencyBedsAvailable int            `json:"emergency_beds_available"`
	ICUBedsAvailable       int            `json:"icu_beds_available"`
	EmergencyWaitTime      int            `json:"emergency_wait_time"`
	DoctorsAvailable       int            `json:"doctors_available"`
	NursesAvailable        int            `json:"nurses_available"`
	LastUpdated            *time.Time     `json:"last_updated,omitempty"`
}

// MatchScore is the weighted breakdown behind a hospital recommendation.
type MatchScore struct {
	DistanceScore  float64 `json:"distance_score"`
	CapacityScore  float64 `json:"capacity_score"`
	SpecialtyScore float64 `json:"specialty_score"`
	LevelScore     float64 `json:"level_score"`
	RatingScore    float64 `json:"rating_score"`
	TotalScore     float64 `json:"total_score"`
}

// HospitalMatch is one ranked recommendation from the matching engine.
type HospitalMatch struct {
	Hospital   *Hospital  `json:"hospital"`
	DistanceKM float64    `json:"distance_km"`
	ETAMinutes int        `json:"estimated_arrival_minutes"`
	Score      MatchScore `json:"matching_score"`
}
