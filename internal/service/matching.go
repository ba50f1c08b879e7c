package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/metrics"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/pkg/geo"
)

// MatchingService ranks candidate hospitals for an emergency.
type MatchingService interface {
	FindBestHospitals(ctx context.Context, lat, lon float64, emergencyType models.EmergencyType, requiredSpecialties []string, maxDistanceKM float64, maxResults int) ([]*models.HospitalMatch, error)
	FindFallbackHospitals(ctx context.Context, primaryID uuid.UUID, lat, lon float64, maxResults int) ([]*models.HospitalMatch, error)
}

// Scoring weights; they always sum to 1.
const (
	weightDistance  = 0.40
	weightCapacity  = 0.25
	weightSpecialty = 0.20
	weightLevel     = 0.10
	weightRating    = 0.05
)

const (
	defaultMatchDistanceKM = 50.0
	defaultMatchResults    = 5
	fallbackSearchRadiusKM = 100.0
	defaultFallbackResults = 3
	defaultUnknownScore    = 50.0
	emergencyBedScoreBonus = 30.0
)

// emergencySpecialtyMap lists which specialties an emergency type needs.
var emergencySpecialtyMap = map[models.EmergencyType][]string{
	models.EmergencyTrauma:      {"trauma", "surgical", "emergency", "orthopedic"},
	models.EmergencyCardiac:     {"cardiac", "icu", "emergency"},
	models.EmergencyPediatric:   {"pediatric", "emergency"},
	models.EmergencyRespiratory: {"emergency", "icu"},
	models.EmergencyMedical:     {"emergency"},
	models.EmergencyAccident:    {"trauma", "emergency", "surgical"},
}

var capacityBaseScores = map[models.CapacityStatus]float64{
	models.CapacityLow:      100,
	models.CapacityModerate: 75,
	models.CapacityHigh:     50,
	models.CapacityFull:     10,
	models.CapacityOverflow: 0,
}

var capabilityWeights = map[models.CapabilityLevel]float64{
	models.CapabilityBasic:        20,
	models.CapabilityIntermediate: 40,
	models.CapabilityAdvanced:     70,
	models.CapabilitySpecialized:  100,
}

var levelScores = map[models.FacilityLevel]float64{
	models.FacilityLevel1: 30,
	models.FacilityLevel2: 50,
	models.FacilityLevel3: 70,
	models.FacilityLevel4: 85,
	models.FacilityLevel5: 95,
	models.FacilityLevel6: 100,
}

type matchingService struct {
	discovery DiscoveryService
	repo      HospitalRepository
	logger    *logrus.Logger
}

// NewMatchingService creates a MatchingService on top of discovery.
func NewMatchingService(discovery DiscoveryService, repo HospitalRepository, logger *logrus.Logger) MatchingService {
	return &matchingService{
		discovery: discovery,
		repo:      repo,
		logger:    logger,
	}
}

func (s *matchingService) FindBestHospitals(ctx context.Context, lat, lon float64, emergencyType models.EmergencyType, requiredSpecialties []string, maxDistanceKM float64, maxResults int) ([]*models.HospitalMatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "matching",
		"method":         "FindBestHospitals",
		"emergency_type": emergencyType,
	})
	log.Info("Ranking candidate hospitals")

	started := time.Now()
	defer func() {
		metrics.MatchingDuration.Observe(time.Since(started).Seconds())
	}()

	if !geo.ValidCoordinates(lat, lon) {
		return nil, apperrors.NewValidation("coordinates", "latitude/longitude pair is not a usable location")
	}
	if maxDistanceKM <= 0 {
		maxDistanceKM = defaultMatchDistanceKM
	}
	if maxResults <= 0 {
		maxResults = defaultMatchResults
	}
	if len(requiredSpecialties) == 0 {
		requiredSpecialties = RequiredSpecialtiesFor(emergencyType)
	}

	candidates, err := s.discovery.FindNearby(ctx, lat, lon, maxDistanceKM, models.DiscoveryFilter{
		EmergencyType: emergencyType,
		MaxResults:    defaultDiscoveryResults,
	})
	if err != nil {
		log.WithError(err).Error("Failed to discover candidate hospitals")
		return nil, fmt.Errorf("service: could not discover hospitals: %w", err)
	}

	matches := s.scoreCandidates(ctx, candidates, requiredSpecialties)

	sortMatches(matches)
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	log.WithField("count", len(matches)).Info("Ranked candidate hospitals")
	return matches, nil
}

func (s *matchingService) FindFallbackHospitals(ctx context.Context, primaryID uuid.UUID, lat, lon float64, maxResults int) ([]*models.HospitalMatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "matching",
		"method":      "FindFallbackHospitals",
		"hospital_id": primaryID,
	})
	log.Info("Finding fallback hospitals")

	if maxResults <= 0 {
		maxResults = defaultFallbackResults
	}

	// One extra so dropping the primary still fills the quota.
	matches, err := s.FindBestHospitals(ctx, lat, lon, models.EmergencyMedical, nil, fallbackSearchRadiusKM, maxResults+1)
	if err != nil {
		return nil, err
	}

	fallbacks := make([]*models.HospitalMatch, 0, maxResults)
	for _, match := range matches {
		if match.Hospital.ID == primaryID {
			continue
		}
		fallbacks = append(fallbacks, match)
		if len(fallbacks) == maxResults {
			break
		}
	}

	return fallbacks, nil
}

func (s *matchingService) scoreCandidates(ctx context.Context, candidates []*models.NearbyHospital, requiredSpecialties []string) []*models.HospitalMatch {
	matches := make([]*models.HospitalMatch, 0, len(candidates))

	for _, candidate := range candidates {
		hospital := candidate.Hospital

		ratingAvg, ratingCount, err := s.repo.EmergencyRatingAvg(ctx, hospital.ID)
		if err != nil {
			// A missing rating never disqualifies a hospital.
			s.logger.WithError(err).WithField("hospital_id", hospital.ID).Warn("Could not load emergency ratings")
			ratingAvg, ratingCount = 0, 0
		}

		score := models.MatchScore{
			DistanceScore:  distanceScore(candidate.DistanceKM),
			CapacityScore:  capacityScore(hospital.Capacity),
			SpecialtyScore: specialtyScore(hospital.Specialties, requiredSpecialties),
			LevelScore:     levelScore(hospital.Level),
			RatingScore:    ratingScore(ratingAvg, ratingCount),
		}
		score.TotalScore = round2(
			score.DistanceScore*weightDistance +
				score.CapacityScore*weightCapacity +
				score.SpecialtyScore*weightSpecialty +
				score.LevelScore*weightLevel +
				score.RatingScore*weightRating,
		)

		if score.TotalScore <= 0 {
			continue
		}

		matches = append(matches, &models.HospitalMatch{
			Hospital:   hospital,
			DistanceKM: round2(candidate.DistanceKM),
			ETAMinutes: geo.EstimateETAMinutes(candidate.DistanceKM),
			Score:      score,
		})
	}

	return matches
}

// RequiredSpecialtiesFor maps an emergency type to the specialties a
// receiving hospital should have.
func RequiredSpecialtiesFor(emergencyType models.EmergencyType) []string {
	if required, ok := emergencySpecialtyMap[emergencyType]; ok {
		return required
	}
	return []string{"emergency"}
}

func distanceScore(distanceKM float64) float64 {
	switch {
	case distanceKM <= 5:
		return 100
	case distanceKM <= 10:
		return 80
	case distanceKM <= 20:
		return 60
	case distanceKM <= 30:
		return 40
	case distanceKM <= 50:
		return 20
	default:
		return 0
	}
}

func capacityScore(capacity *models.HospitalCapacity) float64 {
	if capacity == nil || !capacity.IsAcceptingPatients {
		return 0
	}

	base, ok := capacityBaseScores[capacity.Status]
	if !ok {
		base = defaultUnknownScore
	}

	if capacity.EmergencyBedsAvailable > 0 {
		total := capacity.EmergencyBedsTotal
		if total < 1 {
			total = 1
		}
		ratio := float64(capacity.EmergencyBedsAvailable) / float64(total)
		return math.Min(base+ratio*emergencyBedScoreBonus, 100)
	}

	return base
}

func specialtyScore(available []models.HospitalSpecialty, required []string) float64 {
	if len(required) == 0 {
		return defaultUnknownScore
	}

	byName := make(map[string]models.HospitalSpecialty, len(available))
	for _, specialty := range available {
		if specialty.IsAvailable {
			byName[string(specialty.Specialty)] = specialty
		}
	}
	if len(byName) == 0 {
		return 0
	}

	var sum float64
	matched := 0
	for _, name := range required {
		specialty, ok := byName[name]
		if !ok {
			continue
		}
		matched++
		weight, ok := capabilityWeights[specialty.Capability]
		if !ok {
			weight = capabilityWeights[models.CapabilityBasic]
		}
		sum += weight
	}
	if matched == 0 {
		return 0
	}

	maxPossible := float64(len(required)) * 100
	return math.Min(sum/maxPossible*100, 100)
}

func levelScore(level models.FacilityLevel) float64 {
	if score, ok := levelScores[level]; ok {
		return score
	}
	return defaultUnknownScore
}

func ratingScore(average float64, count int) float64 {
	if count == 0 || average <= 0 {
		return defaultUnknownScore
	}
	return average / 5 * 100
}

// sortMatches orders by total score, breaking ties by distance and then
// hospital ID so equal candidates always rank deterministically.
func sortMatches(matches []*models.HospitalMatch) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score.TotalScore != matches[j].Score.TotalScore {
			return matches[i].Score.TotalScore > matches[j].Score.TotalScore
		}
		if matches[i].DistanceKM != matches[j].DistanceKM {
			return matches[i].DistanceKM < matches[j].DistanceKM
		}
		return matches[i].Hospital.ID.String() < matches[j].Hospital.ID.String()
	})
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
