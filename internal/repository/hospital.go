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
	"github.com/redis/go-redis/v9"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/service"
)

// HospitalRepository is the PostgreSQL-backed hospital directory, with a
// Redis cache in front of the discovery queries.
type HospitalRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewHospitalRepository creates the directory store. cacheTTL bounds how
// long a cached discovery result may be served.
func NewHospitalRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.HospitalRepository {
	return &HospitalRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

const hospitalColumns = `
	id, name, hospital_type, level, latitude, longitude,
	address, city, county, phone, emergency_phone, email, website,
	place_id, mfl_code, api_base_url, api_key, webhook_url,
	sms_notifications, is_operational, is_verified, accepts_emergencies,
	verified_at, created_at, updated_at
`

// hospitalColumnsQualified disambiguates the select list in joins.
const hospitalColumnsQualified = `
	h.id, h.name, h.hospital_type, h.level, h.latitude, h.longitude,
	h.address, h.city, h.county, h.phone, h.emergency_phone, h.email, h.website,
	h.place_id, h.mfl_code, h.api_base_url, h.api_key, h.webhook_url,
	h.sms_notifications, h.is_operational, h.is_verified, h.accepts_emergencies,
	h.verified_at, h.created_at, h.updated_at
`

func scanHospital(row pgx.Row) (*models.Hospital, error) {
	hospital := &models.Hospital{}
	err := row.Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.HospitalType,
		&hospital.Level,
		&hospital.Latitude,
		&hospital.Longitude,
		&hospital.Address,
		&hospital.City,
		&hospital.County,
		&hospital.Phone,
		&hospital.EmergencyPhone,
		&hospital.Email,
		&hospital.Website,
		&hospital.PlaceID,
		&hospital.MFLCode,
		&hospital.APIBaseURL,
		&hospital.APIKey,
		&hospital.WebhookURL,
		&hospital.SMSNotifications,
		&hospital.IsOperational,
		&hospital.IsVerified,
		&hospital.AcceptsEmergencies,
		&hospital.VerifiedAt,
		&hospital.CreatedAt,
		&hospital.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return hospital, nil
}

// GetByID returns one hospital with its specialties and capacity snapshot.
func (r *HospitalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = $1;`

	hospital, err := scanHospital(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("hospital", id.String())
		}
		return nil, fmt.Errorf("failed to get hospital by id: %w", err)
	}

	if err := r.attachChildren(ctx, []*models.Hospital{hospital}); err != nil {
		return nil, err
	}
	return hospital, nil
}

// ListEmergencyReady returns operational hospitals that accept
// emergencies. Level and specialties narrow the result when non-zero.
func (r *HospitalRepository) ListEmergencyReady(ctx context.Context, level models.FacilityLevel, specialties []string) ([]*models.Hospital, error) {
	query := `
		SELECT ` + hospitalColumns + `
		FROM hospitals h
		WHERE h.is_operational = TRUE
		  AND h.accepts_emergencies = TRUE
		  AND ($1 = '' OR h.level = $1)
		  AND (
			cardinality($2::text[]) = 0
			OR EXISTS (
				SELECT 1 FROM hospital_specialties s
				WHERE s.hospital_id = h.id
				  AND s.is_available = TRUE
				  AND s.specialty = ANY($2::text[])
			)
		  )
		ORDER BY h.name;
	`
	if specialties == nil {
		specialties = []string{}
	}

	rows, err := r.db.Query(ctx, query, string(level), specialties)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency-ready hospitals: %w", err)
	}
	defer rows.Close()

	hospitals := make([]*models.Hospital, 0)
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hospital rows: %w", err)
	}

	if err := r.attachChildren(ctx, hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

// Search finds hospitals by name, city, county or offered specialty.
func (r *HospitalRepository) Search(ctx context.Context, query string, limit int) ([]*models.Hospital, error) {
	sql := `
		SELECT DISTINCT ` + hospitalColumnsQualified + `
		FROM hospitals h
		LEFT JOIN hospital_specialties s ON s.hospital_id = h.id
		WHERE h.is_operational = TRUE
		  AND (
			h.name ILIKE '%' || $1 || '%'
			OR h.city ILIKE '%' || $1 || '%'
			OR h.county ILIKE '%' || $1 || '%'
			OR s.specialty ILIKE '%' || $1 || '%'
		  )
		ORDER BY h.name
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search hospitals: %w", err)
	}
	defer rows.Close()

	hospitals := make([]*models.Hospital, 0)
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row in Search: %w", err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search rows: %w", err)
	}

	if err := r.attachChildren(ctx, hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

// attachChildren loads specialties and capacity snapshots for a batch of
// hospitals in two queries instead of one pair per hospital.
func (r *HospitalRepository) attachChildren(ctx context.Context, hospitals []*models.Hospital) error {
	if len(hospitals) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(hospitals))
	byID := make(map[uuid.UUID]*models.Hospital, len(hospitals))
	for i, hospital := range hospitals {
		ids[i] = hospital.ID
		byID[hospital.ID] = hospital
	}

	specialtyRows, err := r.db.Query(ctx, `
		SELECT id, hospital_id, specialty, capability_level, is_available, COALESCE(notes, '')
		FROM hospital_specialties
		WHERE hospital_id = ANY($1);
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to load hospital specialties: %w", err)
	}
	defer specialtyRows.Close()

	for specialtyRows.Next() {
		var specialty models.HospitalSpecialty
		if err := specialtyRows.Scan(
			&specialty.ID,
			&specialty.HospitalID,
			&specialty.Specialty,
			&specialty.Capability,
			&specialty.IsAvailable,
			&specialty.Notes,
		); err != nil {
			return fmt.Errorf("failed to scan specialty row: %w", err)
		}
		if hospital, ok := byID[specialty.HospitalID]; ok {
			hospital.Specialties = append(hospital.Specialties, specialty)
		}
	}
	if err := specialtyRows.Err(); err != nil {
		return fmt.Errorf("error iterating specialty rows: %w", err)
	}

	capacityRows, err := r.db.Query(ctx, `
		SELECT hospital_id, total_beds, available_beds,
		       emergency_beds_total, emergency_beds_available,
		       icu_beds_total, icu_beds_available,
		       average_wait_time_minutes, emergency_wait_time_minutes,
		       doctors_available, nurses_available,
		       is_accepting_patients, capacity_status, last_updated
		FROM hospital_capacities
		WHERE hospital_id = ANY($1);
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to load hospital capacities: %w", err)
	}
	defer capacityRows.Close()

	for capacityRows.Next() {
		capacity := &models.HospitalCapacity{}
		if err := capacityRows.Scan(
			&capacity.HospitalID,
			&capacity.TotalBeds,
			&capacity.AvailableBeds,
			&capacity.EmergencyBedsTotal,
			&capacity.EmergencyBedsAvailable,
			&capacity.ICUBedsTotal,
			&capacity.ICUBedsAvailable,
			&capacity.AverageWaitTimeMinutes,
			&capacity.EmergencyWaitTimeMinutes,
			&capacity.DoctorsAvailable,
			&capacity.NursesAvailable,
			&capacity.IsAcceptingPatients,
			&capacity.Status,
			&capacity.LastUpdated,
		); err != nil {
			return fmt.Errorf("failed to scan capacity row: %w", err)
		}
		if hospital, ok := byID[capacity.HospitalID]; ok {
			hospital.Capacity = capacity
		}
	}
	if err := capacityRows.Err(); err != nil {
		return fmt.Errorf("error iterating capacity rows: %w", err)
	}

	return nil
}

// EmergencyRatingAvg returns the mean approved emergency-care rating and
// the number of ratings behind it. No ratings is (0, 0), not an error.
func (r *HospitalRepository) EmergencyRatingAvg(ctx context.Context, hospitalID uuid.UUID) (float64, int, error) {
	query := `
		SELECT COALESCE(AVG(emergency_care_rating), 0), COUNT(emergency_care_rating)
		FROM hospital_ratings
		WHERE hospital_id = $1
		  AND is_approved = TRUE
		  AND emergency_care_rating IS NOT NULL;
	`
	var avg float64
	var count int
	if err := r.db.QueryRow(ctx, query, hospitalID).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("failed to get emergency rating average: %w", err)
	}
	return avg, count, nil
}

// RatingSummary aggregates all approved ratings for one hospital.
func (r *HospitalRepository) RatingSummary(ctx context.Context, hospitalID uuid.UUID) (*models.RatingSummary, error) {
	query := `
		SELECT COALESCE(AVG(overall_rating), 0),
		       COALESCE(AVG(emergency_care_rating), 0),
		       COUNT(*)
		FROM hospital_ratings
		WHERE hospital_id = $1 AND is_approved = TRUE;
	`
	summary := &models.RatingSummary{}
	if err := r.db.QueryRow(ctx, query, hospitalID).Scan(
		&summary.AverageOverall,
		&summary.AverageEmergencyCare,
		&summary.Count,
	); err != nil {
		return nil, fmt.Errorf("failed to get rating summary: %w", err)
	}
	return summary, nil
}

// ListWorkingHours returns the weekly schedule for one hospital.
func (r *HospitalRepository) ListWorkingHours(ctx context.Context, hospitalID uuid.UUID) ([]models.HospitalWorkingHours, error) {
	query := `
		SELECT hospital_id, day_of_week,
		       COALESCE(opens_at, ''), COALESCE(closes_at, ''),
		       COALESCE(emergency_opens_at, ''), COALESCE(emergency_closes_at, ''),
		       is_24_hours, is_emergency_24_hours, is_closed
		FROM hospital_working_hours
		WHERE hospital_id = $1
		ORDER BY day_of_week;
	`
	rows, err := r.db.Query(ctx, query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list working hours: %w", err)
	}
	defer rows.Close()

	hours := make([]models.HospitalWorkingHours, 0)
	for rows.Next() {
		var day models.HospitalWorkingHours
		if err := rows.Scan(
			&day.HospitalID,
			&day.DayOfWeek,
			&day.OpensAt,
			&day.ClosesAt,
			&day.EmergencyOpensAt,
			&day.EmergencyClosesAt,
			&day.Is24Hours,
			&day.IsEmergency24Hours,
			&day.IsClosed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan working hours row: %w", err)
		}
		hours = append(hours, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating working hours rows: %w", err)
	}
	return hours, nil
}

// GetDiscoveryCache reads a cached discovery result. A miss or an
// unreachable cache is (nil, err-or-nil); the caller falls back to the
// database either way.
func (r *HospitalRepository) GetDiscoveryCache(ctx context.Context, key string) ([]*models.NearbyHospital, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get discovery result from cache: %w", err)
	}

	var hospitals []*models.NearbyHospital
	if err := json.Unmarshal(val, &hospitals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal discovery result from cache: %w", err)
	}
	return hospitals, nil
}

// SetDiscoveryCache stores a discovery result with the configured TTL.
func (r *HospitalRepository) SetDiscoveryCache(ctx context.Context, key string, hospitals []*models.NearbyHospital) error {
	val, err := json.Marshal(hospitals)
	if err != nil {
		return fmt.Errorf("failed to marshal discovery result for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set discovery result in cache: %w", err)
	}
	return nil
}
