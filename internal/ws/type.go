package ws

import "github.com/gorilla/websocket"

// ConnectionInput carries an upgraded connection and the identity it
// authenticated as.
type ConnectionInput struct {
	UserID string
	Role   string
	Conn   *websocket.Conn
}

// HubStats is a point-in-time snapshot of hub occupancy.
type HubStats struct {
	ActiveConnections int `json:"active_connections"`
	UniqueUsers       int `json:"unique_users"`
}
