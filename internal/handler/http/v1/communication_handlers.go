package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
)

// @Summary Open a hospital communication
// @Description Create a hospital handoff for an alert and deliver it over the channel chain. First aiders only.
// @Tags Communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param communication body CreateCommunicationRequest true "Communication creation request"
// @Success 201 {object} CommunicationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a first aider"
// @Failure 404 {object} map[string]string "Alert or hospital not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications [post]
func (h *Handler) createCommunication(c *gin.Context) {
	log := h.logger.WithField("method", "createCommunication")

	var input CreateCommunicationRequest
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
	comm := communicationFromCreateRequest(input)
	if err := h.comms.Create(c.Request.Context(), actor, comm); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, communicationToResponse(comm))
}

// @Summary Get a communication
// @Description Get one hospital handoff. Visible to its first aider, the receiving hospital's staff and admins.
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Success 200 {object} CommunicationResponse
// @Failure 400 {object} map[string]string "Invalid communication ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Communication not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/{id} [get]
func (h *Handler) getCommunication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid communication ID"})
		return
	}
	log := h.logger.WithField("method", "getCommunication").WithField("communication_id", id)

	actor := actorFromContext(c)
	comm, err := h.comms.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, communicationToResponse(comm))
}

// @Summary Acknowledge a communication
// @Description Confirm receipt of a handoff on behalf of the hospital. Creates the preparation checklist.
// @Tags Communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Param acknowledgment body AcknowledgeRequest true "Acknowledgment"
// @Success 200 {object} CommunicationResponse
// @Failure 400 {object} map[string]string "Illegal state transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not hospital staff"
// @Failure 404 {object} map[string]string "Communication not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/{id}/acknowledge [post]
func (h *Handler) acknowledgeCommunication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid communication ID"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeCommunication").WithField("communication_id", id)

	var input AcknowledgeRequest
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
	comm, err := h.comms.Acknowledge(c.Request.Context(), actor, id, input.Notes)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, communicationToResponse(comm))
}

// @Summary Update communication fields
// @Description Patch role-scoped fields on a handoff. First aiders own scene fields, hospital staff own preparation fields; a request mixing in the other side's fields is rejected whole.
// @Tags Communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Param fields body UpdateCommunicationFieldsRequest true "Fields to update"
// @Success 200 {object} CommunicationResponse
// @Failure 400 {object} map[string]string "Empty update or terminal communication"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Field not writable by the caller's role"
// @Failure 404 {object} map[string]string "Communication not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/{id}/fields [patch]
func (h *Handler) updateCommunicationFields(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid communication ID"})
		return
	}
	log := h.logger.WithField("method", "updateCommunicationFields").WithField("communication_id", id)

	var input UpdateCommunicationFieldsRequest
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
	comm, err := h.comms.UpdateFields(c.Request.Context(), actor, id, fieldUpdateFromRequest(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, communicationToResponse(comm))
}

// @Summary Update communication status
// @Description Move a handoff to a new status. Only delivered, en_route, arrived and cancelled may be requested directly.
// @Tags Communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Param status body UpdateCommunicationStatusRequest true "New status"
// @Success 200 {object} CommunicationResponse
// @Failure 400 {object} map[string]string "Illegal state transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Communication not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/{id}/status [put]
func (h *Handler) updateCommunicationStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid communication ID"})
		return
	}
	log := h.logger.WithField("method", "updateCommunicationStatus").WithField("communication_id", id)

	var input UpdateCommunicationStatusRequest
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
	comm, err := h.comms.UpdateStatus(c.Request.Context(), actor, id, models.CommunicationStatus(input.Status), input.Notes)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, communicationToResponse(comm))
}

// @Summary Submit a first aider assessment
// @Description Record the structured clinical picture from the scene. At most one assessment exists per communication.
// @Tags Communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Param assessment body SubmitAssessmentRequest true "Scene assessment"
// @Success 201 {object} models.FirstAiderAssessment
// @Failure 400 {object} map[string]string "Invalid request body or assessment already submitted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the first aider on this handoff"
// @Failure 404 {object} map[string]string "Communication not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/{id}/assessment [post]
func (h *Handler) submitAssessment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid communication ID"})
		return
	}
	log := h.logger.WithField("method", "submitAssessment").WithField("communication_id", id)

	var input SubmitAssessmentRequest
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
	assessment, err := h.comms.SubmitAssessment(c.Request.Context(), actor, id, assessmentFromRequest(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

// @Summary Get the first aider assessment
// @Description Get the scene assessment for a handoff.
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Success 200 {object} models.FirstAiderAssessment
// @Failure 400 {object} map[string]string "Invalid communication ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Communication or assessment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/{id}/assessment [get]
func (h *Handler) getAssessment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid communication ID"})
		return
	}
	log := h.logger.WithField("method", "getAssessment").WithField("communication_id", id)

	actor := actorFromContext(c)
	assessment, err := h.comms.GetAssessment(c.Request.Context(), actor, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// @Summary Get the preparation checklist
// @Description Get the hospital preparation checklist with its derived completion percentage.
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Success 200 {object} ChecklistResponse
// @Failure 400 {object} map[string]string "Invalid communication ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Communication or checklist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/{id}/checklist [get]
func (h *Handler) getChecklist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid communication ID"})
		return
	}
	log := h.logger.WithField("method", "getChecklist").WithField("communication_id", id)

	actor := actorFromContext(c)
	checklist, err := h.comms.GetChecklist(c.Request.Context(), actor, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, checklistToResponse(checklist))
}

// @Summary Update the preparation checklist
// @Description Patch checklist items. Hospital staff only; completion state is derived from the items.
// @Tags Communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Param checklist body UpdateChecklistRequest true "Checklist items to update"
// @Success 200 {object} ChecklistResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not hospital staff"
// @Failure 404 {object} map[string]string "Communication or checklist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/{id}/checklist [patch]
func (h *Handler) updateChecklist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid communication ID"})
		return
	}
	log := h.logger.WithField("method", "updateChecklist").WithField("communication_id", id)

	var input UpdateChecklistRequest
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
	checklist, err := h.comms.UpdateChecklist(c.Request.Context(), actor, id, checklistUpdateFromRequest(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, checklistToResponse(checklist))
}

// @Summary Get a communication's audit trail
// @Description List every delivery attempt, hospital response and state change for a handoff, oldest first.
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Success 200 {array} models.CommunicationLog
// @Failure 400 {object} map[string]string "Invalid communication ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Communication not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/{id}/logs [get]
func (h *Handler) listCommunicationLogs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid communication ID"})
		return
	}
	log := h.logger.WithField("method", "listCommunicationLogs").WithField("communication_id", id)

	actor := actorFromContext(c)
	logs, err := h.comms.ListLogs(c.Request.Context(), actor, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// @Summary List pending communications for the caller's hospital
// @Description List handoffs awaiting the hospital's response, most urgent first. Hospital staff only.
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CommunicationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not hospital staff"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/pending [get]
func (h *Handler) listPendingCommunications(c *gin.Context) {
	log := h.logger.WithField("method", "listPendingCommunications")

	actor := actorFromContext(c)
	comms, err := h.comms.ListPendingForHospital(c.Request.Context(), actor)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, communicationsToResponses(comms))
}

// @Summary List the caller's active communications
// @Description List the first aider's handoffs still in flight, newest first.
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CommunicationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/active [get]
func (h *Handler) listActiveCommunications(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveCommunications")

	actor := actorFromContext(c)
	comms, err := h.comms.ListActiveForFirstAider(c.Request.Context(), actor)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, communicationsToResponses(comms))
}

// @Summary Get communication statistics
// @Description Aggregate handoff outcomes for the caller's scope over a reporting window.
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Param days query int false "Reporting window in days" default(7)
// @Success 200 {object} models.CommunicationStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /communications/stats [get]
func (h *Handler) communicationStats(c *gin.Context) {
	log := h.logger.WithField("method", "communicationStats")
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(h.cfg.StatsWindowDays)))

	actor := actorFromContext(c)
	stats, err := h.comms.Stats(c.Request.Context(), actor, days)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
