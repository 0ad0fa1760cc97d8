package http

import (
	"vitalguard-api/internal/ws"

	"github.com/gin-gonic/gin"
)

func (h *handler) processFeedRequest(c *gin.Context) (userID, role string, err error) {
	token := c.Query("token")
	if token == "" {
		return "", "", ws.ErrMissingToken
	}

	payload, err := h.jwtMgr.Verify(token)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "ws.delivery.http.processFeedRequest: %v", err)
		return "", "", ws.ErrInvalidToken
	}

	return payload.UserID, payload.Role, nil
}
