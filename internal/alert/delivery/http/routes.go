package http

import (
	"vitalguard-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers signal intake and alert routes.
func MapRoutes(r *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	signals := r.Group("/signals", mw.Auth())
	{
		signals.POST("", h.SubmitSignal)
	}

	alerts := r.Group("/alerts", mw.Auth())
	{
		alerts.GET("", h.ListActive)
		alerts.GET("/history", h.History)
		alerts.GET("/:id", h.Detail)
		alerts.POST("/:id/acknowledge", h.Acknowledge)
		alerts.POST("/:id/escalate", h.ForceEscalate)
	}
}
