package service

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/geolocation"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/metrics"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
	"github.com/almamutuguti/Haven-Backend-sub000/pkg/geo"
)

// dispatchRadiusKM bounds the search for a receiving hospital when an
// alert is processed end to end.
const dispatchRadiusKM = 10.0

// systemActorID marks timeline entries written by the pipeline itself.
const systemActorID = "system"

// EmergencyOrchestrator runs the full pipeline on one alert: verify,
// discover, pick the best-reachable hospital, open the handoff.
type EmergencyOrchestrator interface {
	ProcessAlert(ctx context.Context, reference string) (*models.DispatchResult, error)
}

type orchestratorService struct {
	alerts    AlertService
	discovery DiscoveryService
	comms     CommunicationService
	distance  geolocation.DistanceProvider
	logger    *logrus.Logger
}

// NewEmergencyOrchestrator creates an EmergencyOrchestrator. distance
// may be nil; hospital selection then falls back to straight-line
// distance.
func NewEmergencyOrchestrator(
	alerts AlertService,
	discovery DiscoveryService,
	comms CommunicationService,
	distance geolocation.DistanceProvider,
	logger *logrus.Logger,
) EmergencyOrchestrator {
	return &orchestratorService{
		alerts:    alerts,
		discovery: discovery,
		comms:     comms,
		distance:  distance,
		logger:    logger,
	}
}

func (s *orchestratorService) ProcessAlert(ctx context.Context, reference string) (*models.DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "orchestrator",
		"method":   "ProcessAlert",
		"alert_id": reference,
	})
	log.Info("Processing emergency alert")

	alert, err := s.alerts.GetAlert(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("service: could not load alert: %w", err)
	}

	// Guard against double dispatch: a second invocation for the same
	// alert must not open a second hospital handoff.
	if alert.Status != models.AlertPending && alert.Status != models.AlertVerified {
		return nil, apperrors.NewValidation("status", fmt.Sprintf("alert in status %q has already been processed", alert.Status))
	}

	if !alert.IsVerified {
		method := "auto"
		if alert.Priority == models.PriorityCritical || alert.Priority == models.PriorityHigh {
			method = "auto_priority"
		}
		alert, err = s.alerts.UpdateStatus(ctx, reference, models.AlertVerified, systemActorID, map[string]any{
			"verification_method": method,
		})
		if err != nil {
			metrics.DispatchOutcomes.WithLabelValues("verification_failed").Inc()
			return nil, fmt.Errorf("service: could not verify alert: %w", err)
		}
		log.WithField("verification_method", method).Info("Alert auto-verified")
	}

	candidates, err := s.discovery.FindNearby(ctx, alert.Latitude, alert.Longitude, dispatchRadiusKM, models.DiscoveryFilter{
		EmergencyType: alert.EmergencyType,
	})
	if err != nil {
		return nil, fmt.Errorf("service: hospital discovery failed: %w", err)
	}

	required := RequiredSpecialtiesFor(alert.EmergencyType)
	suitable := filterSuitable(candidates, required)
	if len(suitable) == 0 {
		metrics.DispatchOutcomes.WithLabelValues("no_hospitals").Inc()
		log.Warn("No suitable hospital within dispatch radius")
		return nil, apperrors.NewNotFound("hospital", fmt.Sprintf("no suitable hospital within %.0f km", dispatchRadiusKM))
	}

	best, etaMinutes := s.selectByTravelTime(ctx, alert, suitable)
	log.WithFields(logrus.Fields{
		"hospital_id": best.Hospital.ID,
		"hospital":    best.Hospital.Name,
		"distance_km": best.DistanceKM,
		"eta_minutes": etaMinutes,
	}).Info("Hospital selected")

	alert, err = s.alerts.UpdateStatus(ctx, reference, models.AlertHospitalSelected, systemActorID, map[string]any{
		"hospital_id":      best.Hospital.ID.String(),
		"hospital_name":    best.Hospital.Name,
		"hospital_address": best.Hospital.Address,
		"coordinates":      fmt.Sprintf("%f,%f", best.Hospital.Latitude, best.Hospital.Longitude),
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not record hospital selection: %w", err)
	}

	eta := etaMinutes
	comm := &models.EmergencyHospitalCommunication{
		AlertID:                 alert.ID,
		HospitalID:              best.Hospital.ID,
		Priority:                alert.Priority,
		ChiefComplaint:          chiefComplaintFor(alert),
		EstimatedArrivalMinutes: &eta,
		RequiredSpecialties:     required,
	}
	reporter := models.Actor{UserID: alert.ReporterID, Role: models.RoleFirstAider}
	if err := s.comms.Create(ctx, reporter, comm); err != nil {
		// The alert stays in hospital_selected; there is no automatic
		// rollback, an operator has to follow up.
		metrics.DispatchOutcomes.WithLabelValues("communication_failed").Inc()
		log.WithError(err).Error("Hospital handoff failed, alert needs operator follow-up")
		return nil, fmt.Errorf("service: could not open hospital communication: %w", err)
	}

	alert, err = s.alerts.UpdateStatus(ctx, reference, models.AlertDispatched, systemActorID, map[string]any{
		"communication_id": comm.ID.String(),
		"hospital_id":      best.Hospital.ID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not mark alert dispatched: %w", err)
	}

	metrics.DispatchOutcomes.WithLabelValues("dispatched").Inc()
	log.Info("Alert dispatched")

	return &models.DispatchResult{
		Alert:           alert,
		Hospital:        best.Hospital,
		DistanceKM:      best.DistanceKM,
		ETAMinutes:      etaMinutes,
		CommunicationID: comm.ID,
	}, nil
}

// filterSuitable keeps hospitals offering at least one of the
// specialties the emergency type calls for.
func filterSuitable(candidates []*models.NearbyHospital, required []string) []*models.NearbyHospital {
	requiredSet := make(map[string]bool, len(required))
	for _, specialty := range required {
		requiredSet[specialty] = true
	}

	var suitable []*models.NearbyHospital
	for _, candidate := range candidates {
		for _, specialty := range candidate.Hospital.Specialties {
			if specialty.IsAvailable && requiredSet[string(specialty.Specialty)] {
				suitable = append(suitable, candidate)
				break
			}
		}
	}
	return suitable
}

// selectByTravelTime ranks the suitable hospitals by driving time from
// the scene. When the provider is missing, errors out or returns no
// usable element, the nearest-by-air candidate wins.
func (s *orchestratorService) selectByTravelTime(ctx context.Context, alert *models.EmergencyAlert, suitable []*models.NearbyHospital) (*models.NearbyHospital, int) {
	fallback := func() (*models.NearbyHospital, int) {
		nearest := suitable[0]
		return nearest, geo.EstimateETAMinutes(nearest.DistanceKM)
	}

	if s.distance == nil {
		return fallback()
	}

	origins := []geolocation.Coordinate{{Latitude: alert.Latitude, Longitude: alert.Longitude}}
	destinations := make([]geolocation.Coordinate, len(suitable))
	for i, candidate := range suitable {
		destinations[i] = geolocation.Coordinate{
			Latitude:  candidate.Hospital.Latitude,
			Longitude: candidate.Hospital.Longitude,
		}
	}

	rows, err := s.distance.Matrix(ctx, origins, destinations, "driving")
	if err != nil || len(rows) == 0 {
		s.logger.WithError(err).Warn("Distance matrix unavailable, using straight-line selection")
		return fallback()
	}

	bestIndex := -1
	bestDuration := 0
	for i, element := range rows[0] {
		if !element.OK {
			continue
		}
		if bestIndex == -1 || element.DurationSeconds < bestDuration {
			bestIndex = i
			bestDuration = element.DurationSeconds
		}
	}
	if bestIndex == -1 {
		return fallback()
	}

	minutes := int(math.Round(float64(bestDuration) / 60))
	if minutes < 1 {
		minutes = 1
	}
	return suitable[bestIndex], minutes
}

func chiefComplaintFor(alert *models.EmergencyAlert) string {
	if alert.Description != "" {
		return alert.Description
	}
	return fmt.Sprintf("%s emergency", alert.EmergencyType)
}
