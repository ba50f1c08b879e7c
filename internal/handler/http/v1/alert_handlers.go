package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Report a new emergency
// @Description Create an emergency alert. A still-active alert from the same reporter created within the last two minutes is returned instead of a duplicate.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	log := h.logger.WithField("method", "createAlert")

	var input CreateAlertRequest
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

	actor := actorFromContext(c)
	alert, err := h.alerts.CreateAlert(c.Request.Context(), actor, alertFromCreateRequest(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, alertToResponse(alert))
}

// @Summary Get an alert
// @Description Get a single alert by its reference, e.g. EMG202608261030ABCDEF.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Alert reference"
// @Success 200 {object} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{reference} [get]
func (h *Handler) getAlert(c *gin.Context) {
	reference := c.Param("reference")
	log := h.logger.WithField("method", "getAlert").WithField("alert_id", reference)

	alert, err := h.alerts.GetAlert(c.Request.Context(), reference)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alertToResponse(alert))
}

// @Summary List active alerts
// @Description List all alerts still in flight, most urgent first.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/active [get]
func (h *Handler) listActiveAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveAlerts")

	alerts, err := h.alerts.ListActive(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alertsToResponses(alerts))
}

// @Summary Get the caller's alert history
// @Description List alerts reported by the authenticated caller, newest first.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of alerts" default(50)
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/history [get]
func (h *Handler) alertHistory(c *gin.Context) {
	log := h.logger.WithField("method", "alertHistory")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	actor := actorFromContext(c)
	alerts, err := h.alerts.GetHistory(c.Request.Context(), actor, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alertsToResponses(alerts))
}

// @Summary Get an alert's timeline
// @Description List the audit timeline of an alert, newest first.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Alert reference"
// @Param limit query int false "Maximum number of entries" default(100)
// @Success 200 {array} TimelineEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{reference}/updates [get]
func (h *Handler) getAlertUpdates(c *gin.Context) {
	reference := c.Param("reference")
	log := h.logger.WithField("method", "getAlertUpdates").WithField("alert_id", reference)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	updates, err := h.alerts.GetUpdates(c.Request.Context(), reference, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, updatesToResponses(updates))
}

// @Summary Update an alert's location
// @Description Move an active alert to new coordinates. Only the reporting first aider and admins may do this.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Alert reference"
// @Param location body UpdateAlertLocationRequest true "New location"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or inactive alert"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{reference}/location [put]
func (h *Handler) updateAlertLocation(c *gin.Context) {
	reference := c.Param("reference")
	log := h.logger.WithField("method", "updateAlertLocation").WithField("alert_id", reference)

	var input UpdateAlertLocationRequest
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

	actor := actorFromContext(c)
	alert, err := h.alerts.UpdateLocation(c.Request.Context(), actor, reference, input.Latitude, input.Longitude, input.Address)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alertToResponse(alert))
}

// @Summary Cancel an alert
// @Description Cancel an alert with a reason. Only the reporting first aider and admins may do this.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Alert reference"
// @Param cancellation body CancelAlertRequest true "Cancellation reason"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Alert already finalized"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{reference}/cancel [post]
func (h *Handler) cancelAlert(c *gin.Context) {
	reference := c.Param("reference")
	log := h.logger.WithField("method", "cancelAlert").WithField("alert_id", reference)

	var input CancelAlertRequest
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

	actor := actorFromContext(c)
	alert, err := h.alerts.CancelAlert(c.Request.Context(), actor, reference, input.Reason)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alertToResponse(alert))
}

// @Summary Request a verification code
// @Description Send an SMS verification code to the reporting first aider.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Alert reference"
// @Success 202 {object} map[string]string "Code issued"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{reference}/verify [post]
func (h *Handler) requestVerification(c *gin.Context) {
	reference := c.Param("reference")
	log := h.logger.WithField("method", "requestVerification").WithField("alert_id", reference)

	actor := actorFromContext(c)
	if err := h.verification.RequestCode(c.Request.Context(), actor, reference); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "verification code sent"})
}

// @Summary Confirm a verification code
// @Description Confirm the SMS verification code for an alert. A wrong code returns verified=false without failing the request.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Alert reference"
// @Param confirmation body ConfirmVerificationRequest true "Verification code"
// @Success 200 {object} VerificationResponse
// @Failure 400 {object} map[string]string "Invalid request body or no pending verification"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{reference}/verify/confirm [post]
func (h *Handler) confirmVerification(c *gin.Context) {
	reference := c.Param("reference")
	log := h.logger.WithField("method", "confirmVerification").WithField("alert_id", reference)

	var input ConfirmVerificationRequest
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

	actor := actorFromContext(c)
	verified, err := h.verification.ConfirmCode(c.Request.Context(), actor, reference, input.Code)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, VerificationResponse{Verified: verified})
}

// @Summary Run the dispatch pipeline on an alert
// @Description Verify the alert, find the best reachable hospital and open the handoff. A second invocation for an already-processed alert is rejected.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Alert reference"
// @Success 200 {object} models.DispatchResult
// @Failure 400 {object} map[string]string "Alert already processed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert or suitable hospital not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{reference}/process [post]
func (h *Handler) processAlert(c *gin.Context) {
	reference := c.Param("reference")
	log := h.logger.WithField("method", "processAlert").WithField("alert_id", reference)

	result, err := h.orchestrator.ProcessAlert(c.Request.Context(), reference)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Delete an alert
// @Description Permanently remove an alert and every record it owns. System administrators only.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Alert reference"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{reference} [delete]
func (h *Handler) deleteAlert(c *gin.Context) {
	reference := c.Param("reference")
	log := h.logger.WithField("method", "deleteAlert").WithField("alert_id", reference)

	actor := actorFromContext(c)
	if err := h.alerts.DeleteAlert(c.Request.Context(), actor, reference); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
