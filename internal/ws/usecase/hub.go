package usecase

import (
	"sync"

	pkgLog "vitalguard-api/pkg/log"
)

// hub maintains the set of active connections and fans messages out to them.
type hub struct {
	// Registered connections.
	clients map[*connection]bool

	// user_id -> set of connections, for targeted delivery.
	users map[string]map[*connection]bool

	register   chan *connection
	unregister chan *connection
	quit       chan struct{}

	mu sync.RWMutex

	l pkgLog.Logger
}

func newHub(l pkgLog.Logger) *hub {
	return &hub{
		clients:    make(map[*connection]bool),
		users:      make(map[string]map[*connection]bool),
		register:   make(chan *connection),
		unregister: make(chan *connection),
		quit:       make(chan struct{}),
		l:          l,
	}
}

func (h *hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if _, ok := h.users[client.userID]; !ok {
				h.users[client.userID] = make(map[*connection]bool)
			}
			h.users[client.userID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				if userConns, ok := h.users[client.userID]; ok {
					delete(userConns, client)
					if len(userConns) == 0 {
						delete(h.users, client.userID)
					}
				}
			}
			h.mu.Unlock()

		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.users = make(map[string]map[*connection]bool)
			h.mu.Unlock()
			return
		}
	}
}

// sendToUser delivers a message to every connection of one user. Connections
// with a full buffer are skipped, the write pump will drop them on timeout.
func (h *hub) sendToUser(userID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.users[userID] {
		select {
		case client.send <- message:
		default:
		}
	}
}

// sendWhere delivers a message to every connection matching the predicate.
func (h *hub) sendWhere(match func(*connection) bool, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if !match(client) {
			continue
		}
		select {
		case client.send <- message:
		default:
		}
	}
}

func (h *hub) stats() (int, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients), len(h.users)
}
