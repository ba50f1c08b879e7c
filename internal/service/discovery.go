package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/pkg/geo"
)

// HospitalRepository is the directory storage contract used by the
// discovery and matching services.
type HospitalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error)
	// ListEmergencyReady returns operational hospitals that accept
	// emergencies, with capacity and specialties attached. Level and
	// specialties narrow the result when non-zero.
	ListEmergencyReady(ctx context.Context, level models.FacilityLevel, specialties []string) ([]*models.Hospital, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Hospital, error)
	EmergencyRatingAvg(ctx context.Context, hospitalID uuid.UUID) (float64, int, error)
	RatingSummary(ctx context.Context, hospitalID uuid.UUID) (*models.RatingSummary, error)
	ListWorkingHours(ctx context.Context, hospitalID uuid.UUID) ([]models.HospitalWorkingHours, error)

	GetDiscoveryCache(ctx context.Context, key string) ([]*models.NearbyHospital, error)
	SetDiscoveryCache(ctx context.Context, key string, hospitals []*models.NearbyHospital) error
}

// DiscoveryService finds hospitals around a location.
type DiscoveryService interface {
	FindNearby(ctx context.Context, lat, lon, radiusKM float64, filter models.DiscoveryFilter) ([]*models.NearbyHospital, error)
	SearchHospitals(ctx context.Context, query string, lat, lon *float64, maxResults int) ([]*models.NearbyHospital, error)
	GetHospitalDetails(ctx context.Context, id uuid.UUID) (*models.HospitalDetails, error)
	CheckAvailability(ctx context.Context, id uuid.UUID) (*models.HospitalAvailability, error)
}

const (
	defaultDiscoveryRadiusKM = 50.0
	defaultDiscoveryResults  = 20
	defaultSearchResults     = 20
)

type discoveryService struct {
	repo   HospitalRepository
	logger *logrus.Logger
	cfg    *config.Config
}

// NewDiscoveryService creates a DiscoveryService.
func NewDiscoveryService(repo HospitalRepository, logger *logrus.Logger, cfg *config.Config) DiscoveryService {
	return &discoveryService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

func (s *discoveryService) FindNearby(ctx context.Context, lat, lon, radiusKM float64, filter models.DiscoveryFilter) ([]*models.NearbyHospital, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "discovery",
		"method":    "FindNearby",
		"latitude":  lat,
		"longitude": lon,
		"radius_km": radiusKM,
	})
	log.Info("Searching for nearby hospitals")

	if !geo.ValidCoordinates(lat, lon) {
		return nil, apperrors.NewValidation("coordinates", "latitude/longitude pair is not a usable location")
	}
	if radiusKM <= 0 {
		radiusKM = defaultDiscoveryRadiusKM
	}
	if filter.MaxResults <= 0 {
		filter.MaxResults = defaultDiscoveryResults
	}

	cacheKey := discoveryCacheKey(lat, lon, radiusKM, filter)

	cached, err := s.repo.GetDiscoveryCache(ctx, cacheKey)
	if err != nil {
		log.WithError(err).Warn("Could not read discovery cache, falling back to database")
	}
	if cached != nil {
		log.WithField("count", len(cached)).Info("Returning nearby hospitals from cache")
		return cached, nil
	}

	hospitals, err := s.repo.ListEmergencyReady(ctx, filter.Level, filter.Specialties)
	if err != nil {
		log.WithError(err).Error("Failed to list emergency-ready hospitals")
		return nil, fmt.Errorf("service: could not list hospitals: %w", err)
	}

	nearby := make([]*models.NearbyHospital, 0, len(hospitals))
	for _, hospital := range hospitals {
		distance := geo.Haversine(lat, lon, hospital.Latitude, hospital.Longitude)
		if distance <= radiusKM {
			nearby = append(nearby, &models.NearbyHospital{Hospital: hospital, DistanceKM: distance})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKM < nearby[j].DistanceKM
	})
	if len(nearby) > filter.MaxResults {
		nearby = nearby[:filter.MaxResults]
	}

	if err := s.repo.SetDiscoveryCache(ctx, cacheKey, nearby); err != nil {
		log.WithError(err).Warn("Could not write discovery cache")
	}

	log.WithField("count", len(nearby)).Info("Found nearby hospitals")
	return nearby, nil
}

func (s *discoveryService) SearchHospitals(ctx context.Context, query string, lat, lon *float64, maxResults int) ([]*models.NearbyHospital, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "discovery",
		"method":  "SearchHospitals",
		"query":   query,
	})
	log.Info("Searching hospital directory")

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidation("query", "search query must not be empty")
	}
	if maxResults <= 0 {
		maxResults = defaultSearchResults
	}

	hospitals, err := s.repo.Search(ctx, query, maxResults)
	if err != nil {
		log.WithError(err).Error("Failed to search hospitals")
		return nil, fmt.Errorf("service: could not search hospitals: %w", err)
	}

	results := make([]*models.NearbyHospital, 0, len(hospitals))
	for _, hospital := range hospitals {
		entry := &models.NearbyHospital{Hospital: hospital}
		if lat != nil && lon != nil && geo.ValidCoordinates(*lat, *lon) {
			entry.DistanceKM = geo.Haversine(*lat, *lon, hospital.Latitude, hospital.Longitude)
		}
		results = append(results, entry)
	}

	// With a caller location, closest first; otherwise keep name order.
	if lat != nil && lon != nil {
		sort.Slice(results, func(i, j int) bool {
			return results[i].DistanceKM < results[j].DistanceKM
		})
	}

	return results, nil
}

func (s *discoveryService) GetHospitalDetails(ctx context.Context, id uuid.UUID) (*models.HospitalDetails, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "discovery",
		"method":      "GetHospitalDetails",
		"hospital_id": id,
	})
	log.Info("Getting hospital details")

	hospital, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get hospital")
		return nil, fmt.Errorf("service: could not get hospital: %w", err)
	}

	hours, err := s.repo.ListWorkingHours(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get working hours")
		return nil, fmt.Errorf("service: could not get working hours: %w", err)
	}

	rating, err := s.repo.RatingSummary(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get rating summary")
		return nil, fmt.Errorf("service: could not get rating summary: %w", err)
	}

	return &models.HospitalDetails{
		Hospital:     hospital,
		WorkingHours: hours,
		Rating:       rating,
	}, nil
}

func (s *discoveryService) CheckAvailability(ctx context.Context, id uuid.UUID) (*models.HospitalAvailability, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "discovery",
		"method":      "CheckAvailability",
		"hospital_id": id,
	})
	log.Info("Checking hospital availability")

	hospital, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get hospital")
		return nil, fmt.Errorf("service: could not get hospital: %w", err)
	}

	if hospital.Capacity == nil {
		return &models.HospitalAvailability{
			HospitalID:  hospital.ID,
			IsAvailable: false,
			Reason:      "Capacity information not available",
			Status:      "unknown",
		}, nil
	}

	capacity := hospital.Capacity
	available := hospital.IsOperational && hospital.AcceptsEmergencies && capacity.IsAcceptingPatients

	availability := &models.HospitalAvailability{
		HospitalID:             hospital.ID,
		IsAvailable:            available,
		Status:                 capacity.Status,
		AvailableBeds:          capacity.AvailableBeds,
		EmergencyBedsAvailable: capacity.EmergencyBedsAvailable,
		ICUBedsAvailable:       capacity.ICUBedsAvailable,
		EmergencyWaitTime:      capacity.EmergencyWaitTimeMinutes,
		DoctorsAvailable:       capacity.DoctorsAvailable,
		NursesAvailable:        capacity.NursesAvailable,
		LastUpdated:            &capacity.LastUpdated,
	}
	if !available {
		availability.Reason = "Hospital is not accepting patients right now"
	}

	return availability, nil
}

// discoveryCacheKey builds a deterministic cache key from the full
// search tuple so differently filtered queries never collide.
func discoveryCacheKey(lat, lon, radiusKM float64, filter models.DiscoveryFilter) string {
	specialties := append([]string(nil), filter.Specialties...)
	sort.Strings(specialties)

	return fmt.Sprintf("hospitals:nearby:%.4f:%.4f:%.1f:%s:%s:%d:%s",
		lat, lon, radiusKM,
		filter.EmergencyType, filter.Level, filter.MaxResults,
		strings.Join(specialties, ","),
	)
}
