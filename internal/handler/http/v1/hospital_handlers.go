package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
)

// @Summary Find nearby hospitals
// @Description List operational hospitals around a location, closest first.
// @Tags Hospitals
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Search radius in kilometres" default(50)
// @Param emergency_type query string false "Emergency type filter"
// @Param level query string false "Minimum facility level, e.g. level_4"
// @Param specialties query string false "Comma-separated specialty filter"
// @Param max_results query int false "Maximum number of hospitals" default(20)
// @Success 200 {array} models.NearbyHospital
// @Failure 400 {object} map[string]string "Missing or malformed coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/nearby [get]
func (h *Handler) findNearbyHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "findNearbyHospitals")

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}
	radiusKM, _ := strconv.ParseFloat(c.DefaultQuery("radius_km", "50"), 64)
	maxResults, _ := strconv.Atoi(c.DefaultQuery("max_results", "20"))

	filter := models.DiscoveryFilter{
		EmergencyType: models.EmergencyType(c.Query("emergency_type")),
		Level:         models.FacilityLevel(c.Query("level")),
		MaxResults:    maxResults,
	}
	if raw := c.Query("specialties"); raw != "" {
		filter.Specialties = strings.Split(raw, ",")
	}

	hospitals, err := h.discovery.FindNearby(c.Request.Context(), lat, lng, radiusKM, filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// @Summary Search the hospital directory
// @Description Search hospitals by name, city or county. With a caller location, results are sorted closest first.
// @Tags Hospitals
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Param lat query number false "Caller latitude"
// @Param lng query number false "Caller longitude"
// @Param max_results query int false "Maximum number of hospitals" default(20)
// @Success 200 {array} models.NearbyHospital
// @Failure 400 {object} map[string]string "Empty search query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/search [get]
func (h *Handler) searchHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "searchHospitals")
	maxResults, _ := strconv.Atoi(c.DefaultQuery("max_results", "20"))

	var lat, lng *float64
	if v, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(c.Query("lng"), 64); err == nil {
		lng = &v
	}

	hospitals, err := h.discovery.SearchHospitals(c.Request.Context(), c.Query("q"), lat, lng, maxResults)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// @Summary Get hospital details
// @Description Get the full directory view of one hospital: profile, working hours and rating summary.
// @Tags Hospitals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hospital ID"
// @Success 200 {object} models.HospitalDetails
// @Failure 400 {object} map[string]string "Invalid hospital ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/{id} [get]
func (h *Handler) getHospital(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hospital ID"})
		return
	}
	log := h.logger.WithField("method", "getHospital").WithField("hospital_id", id)

	details, err := h.discovery.GetHospitalDetails(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// @Summary Check hospital availability
// @Description Report whether a hospital can take a patient right now, with its current capacity snapshot.
// @Tags Hospitals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hospital ID"
// @Success 200 {object} models.HospitalAvailability
// @Failure 400 {object} map[string]string "Invalid hospital ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/{id}/availability [get]
func (h *Handler) checkHospitalAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hospital ID"})
		return
	}
	log := h.logger.WithField("method", "checkHospitalAvailability").WithField("hospital_id", id)

	availability, err := h.discovery.CheckAvailability(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// @Summary Rank hospitals for an emergency
// @Description Score and rank candidate hospitals for an emergency at the given location, best match first.
// @Tags Hospitals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MatchHospitalsRequest true "Matching request"
// @Success 200 {array} models.HospitalMatch
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/match [post]
func (h *Handler) matchHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "matchHospitals")

	var input MatchHospitalsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matches, err := h.matching.FindBestHospitals(
		c.Request.Context(),
		input.Latitude,
		input.Longitude,
		models.EmergencyType(input.EmergencyType),
		input.RequiredSpecialties,
		input.MaxDistanceKM,
		input.MaxResults,
	)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// @Summary Find fallback hospitals
// @Description Rank alternative hospitals around a location, excluding the primary choice.
// @Tags Hospitals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Primary hospital ID"
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param max_results query int false "Maximum number of fallbacks" default(3)
// @Success 200 {array} models.HospitalMatch
// @Failure 400 {object} map[string]string "Invalid hospital ID or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/{id}/fallbacks [get]
func (h *Handler) findFallbackHospitals(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hospital ID"})
		return
	}
	log := h.logger.WithField("method", "findFallbackHospitals").WithField("hospital_id", id)

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}
	maxResults, _ := strconv.Atoi(c.DefaultQuery("max_results", "3"))

	fallbacks, err := h.matching.FindFallbackHospitals(c.Request.Context(), id, lat, lng, maxResults)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, fallbacks)
}
