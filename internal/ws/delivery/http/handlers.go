package http

import (
	"net/http"

	"vitalguard-api/internal/ws"
	"vitalguard-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Feed upgrades the connection and attaches it to the live alert feed.
// @Summary Live alert feed
// @Description Upgrade to WebSocket and stream alert lifecycle events the caller is entitled to see. The JWT travels in the token query parameter.
// @Tags Feed
// @Param token query string true "JWT token"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} response.Resp "Missing or invalid token"
// @Router /ws [GET]
func (h *handler) Feed(c *gin.Context) {
	ctx := c.Request.Context()

	userID, role, err := h.processFeedRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  h.cfg.ReadBufferSize,
		WriteBufferSize: h.cfg.WriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(ctx, "ws.delivery.http.Feed.Upgrade: %v", err)
		return
	}

	if err := h.uc.Register(ctx, ws.ConnectionInput{
		UserID: userID,
		Role:   role,
		Conn:   conn,
	}); err != nil {
		h.l.Warnf(ctx, "ws.delivery.http.Feed.Register: %v", err)
		conn.Close()
		return
	}
}
