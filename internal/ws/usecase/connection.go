package usecase

import (
	"context"
	"time"

	pkgLog "vitalguard-api/pkg/log"

	"github.com/gorilla/websocket"
)

// connection is one websocket session of an authenticated actor.
type connection struct {
	hub  *hub
	conn *websocket.Conn

	userID string
	role   string

	// Buffered channel of outbound messages.
	send chan []byte

	pongWait   time.Duration
	pingPeriod time.Duration
	writeWait  time.Duration

	l pkgLog.Logger
}

// readPump pumps control frames from the peer. The feed is push-only, so
// incoming data frames are discarded; the pump exists to detect disconnects
// and answer pings.
func (c *connection) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.quit:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.l.Warnf(context.Background(), "internal.ws.connection.readPump: user=%s: %v", c.userID, err)
			}
			return
		}
	}
}

// writePump pumps messages from the hub to the peer. All writes happen on
// this goroutine.
func (c *connection) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush queued messages into the same frame.
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
