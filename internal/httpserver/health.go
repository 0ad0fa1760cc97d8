package httpserver

import (
	"net/http"

	"vitalguard-api/internal/ws"
	pkgErrors "vitalguard-api/pkg/errors"
	"vitalguard-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall service health.
// @Summary Health Check
// @Description Check if the alerting service and its realtime backend are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.Resp "Redis connection failed"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, pkgErrors.NewHTTPError(503, "Redis connection failed", http.StatusServiceUnavailable))
			return
		}
	}

	hubStats, err := srv.wsUC.Stats(ctx)
	if err != nil {
		hubStats = ws.HubStats{}
	}

	response.OK(c, gin.H{
		"status":             "healthy",
		"service":            "vitalguard-api",
		"version":            "1.0.0",
		"active_connections": hubStats.ActiveConnections,
		"unique_users":       hubStats.UniqueUsers,
	})
}

// readyCheck reports readiness to serve traffic.
// @Summary Readiness Check
// @Description Check if the alerting service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, pkgErrors.NewHTTPError(503, "Redis connection not available", http.StatusServiceUnavailable))
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "vitalguard-api",
		"version": "1.0.0",
	})
}

// liveCheck reports process liveness.
// @Summary Liveness Check
// @Description Check if the alerting service process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "vitalguard-api",
		"version": "1.0.0",
	})
}
