package routes

import (
	"medexam/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the slot-picker endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.POST("/session", ah.StartSession)
		api.GET("/session/:sessionID", ah.GetSession)
		api.POST("/session/:sessionID/action", ah.ApplyAction)
		api.POST("/session/:sessionID/commit", ah.CommitSession)
		api.DELETE("/session/:sessionID", ah.CancelSession)
	}
}

// RegisterSettingsRoutes registers availability settings administration.
func RegisterSettingsRoutes(r *gin.Engine, sh *handlers.SettingsHandler) {
	api := r.Group("/api/settings")
	{
		api.GET("/availability", sh.GetSettings)
		api.PUT("/availability", sh.PutSettings)
	}
}

// RegisterHealthRoutes registers the dependency health endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}
