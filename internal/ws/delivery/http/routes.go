package http

import (
	"github.com/gin-gonic/gin"
)

// MapRoutes registers the websocket feed route. Auth happens inside the
// handler: browsers cannot attach an Authorization header to an upgrade
// request, so the token travels as a query parameter.
func MapRoutes(r *gin.RouterGroup, h *handler) {
	ws := r.Group("/ws")
	{
		ws.GET("", h.Feed)
	}
}
