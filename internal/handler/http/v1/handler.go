package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/service"
)

// Handler bundles the API v1 endpoints and their dependencies.
type Handler struct {
	alerts       service.AlertService
	verification service.VerificationService
	orchestrator service.EmergencyOrchestrator
	discovery    service.DiscoveryService
	matching     service.MatchingService
	comms        service.CommunicationService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

// NewHandler creates the API v1 handler.
func NewHandler(
	alerts service.AlertService,
	verification service.VerificationService,
	orchestrator service.EmergencyOrchestrator,
	discovery service.DiscoveryService,
	matching service.MatchingService,
	comms service.CommunicationService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		alerts:       alerts,
		verification: verification,
		orchestrator: orchestrator,
		discovery:    discovery,
		matching:     matching,
		comms:        comms,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// respondError maps the service error taxonomy to HTTP statuses. Role
// violations are validation errors on the "role" field and map to 403;
// everything unrecognized is a 500 with a generic body.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var validation *apperrors.ValidationError
	if errors.As(err, &validation) {
		if validation.Field == "role" {
			log.WithError(err).Warn("Role-forbidden operation rejected")
			c.JSON(http.StatusForbidden, gin.H{"error": validation.Reason})
			return
		}
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
		return
	}

	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	log.WithError(err).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
