package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all API v1 routes. Everything except the health
// check sits behind the identity middleware.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)

	authed := api.Group("", JWTAuthMiddleware(h.cfg, h.logger))

	alerts := authed.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("/active", h.listActiveAlerts)
		alerts.GET("/history", h.alertHistory)
		alerts.GET("/:reference", h.getAlert)
		alerts.DELETE("/:reference", h.deleteAlert)
		alerts.GET("/:reference/updates", h.getAlertUpdates)
		alerts.PUT("/:reference/location", h.updateAlertLocation)
		alerts.POST("/:reference/cancel", h.cancelAlert)
		alerts.POST("/:reference/verify", h.requestVerification)
		alerts.POST("/:reference/verify/confirm", h.confirmVerification)
		alerts.POST("/:reference/process", h.processAlert)
	}

	hospitals := authed.Group("/hospitals")
	{
		hospitals.GET("/nearby", h.findNearbyHospitals)
		hospitals.GET("/search", h.searchHospitals)
		hospitals.POST("/match", h.matchHospitals)
		hospitals.GET("/:id", h.getHospital)
		hospitals.GET("/:id/availability", h.checkHospitalAvailability)
		hospitals.GET("/:id/fallbacks", h.findFallbackHospitals)
	}

	comms := authed.Group("/communications")
	{
		comms.POST("", h.createCommunication)
		comms.GET("/pending", h.listPendingCommunications)
		comms.GET("/active", h.listActiveCommunications)
		comms.GET("/stats", h.communicationStats)
		comms.GET("/:id", h.getCommunication)
		comms.POST("/:id/acknowledge", h.acknowledgeCommunication)
		comms.PATCH("/:id/fields", h.updateCommunicationFields)
		comms.PUT("/:id/status", h.updateCommunicationStatus)
		comms.POST("/:id/assessment", h.submitAssessment)
		comms.GET("/:id/assessment", h.getAssessment)
		comms.GET("/:id/checklist", h.getChecklist)
		comms.PATCH("/:id/checklist", h.updateChecklist)
		comms.GET("/:id/logs", h.listCommunicationLogs)
	}
}
