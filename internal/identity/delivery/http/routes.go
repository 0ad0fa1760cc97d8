package http

import (
	"vitalguard-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers authentication and actor routes.
func MapRoutes(r *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	users := r.Group("/users", mw.Auth())
	{
		users.GET("/:id", h.Detail)
	}

	patients := r.Group("/patients", mw.Auth())
	{
		patients.POST("/assign", h.AssignPatient)
	}
}
