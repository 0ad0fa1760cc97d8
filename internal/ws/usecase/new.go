package usecase

import (
	"context"
	"encoding/json"
	"time"

	"vitalguard-api/internal/access"
	"vitalguard-api/internal/model"
	"vitalguard-api/internal/notifier"
	"vitalguard-api/internal/ws"
	pkgLog "vitalguard-api/pkg/log"
)

// Config tunes the per-connection keepalive behavior.
type Config struct {
	PongWait   time.Duration
	PingPeriod time.Duration
	WriteWait  time.Duration

	// MaxConnections caps hub occupancy. Zero means unlimited.
	MaxConnections int
}

type usecase struct {
	l        pkgLog.Logger
	hub      *hub
	provider access.ActorProvider
	cfg      Config
}

var _ ws.UseCase = &usecase{}

// New creates the live feed usecase. The provider resolves caretaker
// assignments when routing events.
func New(l pkgLog.Logger, provider access.ActorProvider, cfg Config) ws.UseCase {
	if cfg.PongWait <= 0 {
		cfg.PongWait = 60 * time.Second
	}
	if cfg.PingPeriod <= 0 {
		cfg.PingPeriod = (cfg.PongWait * 9) / 10
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = 10 * time.Second
	}

	return &usecase{
		l:        l,
		hub:      newHub(l),
		provider: provider,
		cfg:      cfg,
	}
}

func (uc *usecase) Run() {
	uc.hub.run()
}

func (uc *usecase) Shutdown(ctx context.Context) error {
	close(uc.hub.quit)
	return nil
}

func (uc *usecase) Register(ctx context.Context, ip ws.ConnectionInput) error {
	if uc.cfg.MaxConnections > 0 {
		if active, _ := uc.hub.stats(); active >= uc.cfg.MaxConnections {
			return ws.ErrMaxConnectionsReached
		}
	}

	client := &connection{
		hub:        uc.hub,
		conn:       ip.Conn,
		userID:     ip.UserID,
		role:       ip.Role,
		send:       make(chan []byte, 256),
		pongWait:   uc.cfg.PongWait,
		pingPeriod: uc.cfg.PingPeriod,
		writeWait:  uc.cfg.WriteWait,
		l:          uc.l,
	}

	uc.hub.register <- client

	go client.writePump()
	go client.readPump()

	return nil
}

// ProcessAlertEvent routes one alert event to the patient it concerns, to
// doctors and admins, and to caretakers assigned to that patient.
func (uc *usecase) ProcessAlertEvent(ctx context.Context, payload []byte) error {
	var msg notifier.AlertEventMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		uc.l.Warnf(ctx, "internal.ws.usecase.ProcessAlertEvent: %v", err)
		return nil
	}

	patientID := msg.Alert.PatientID

	uc.hub.sendWhere(func(c *connection) bool {
		return uc.entitled(ctx, c, patientID)
	}, payload)

	return nil
}

func (uc *usecase) entitled(ctx context.Context, c *connection, patientID string) bool {
	if c.userID == patientID {
		return true
	}
	switch c.role {
	case model.RoleDoctor, model.RoleAdmin:
		return true
	case model.RoleCaretaker:
		assigned, err := uc.provider.Assigned(ctx, c.userID, patientID)
		if err != nil {
			uc.l.Warnf(ctx, "internal.ws.usecase.entitled: %v", err)
			return false
		}
		return assigned
	}
	return false
}

func (uc *usecase) Stats(ctx context.Context) (ws.HubStats, error) {
	active, unique := uc.hub.stats()
	return ws.HubStats{
		ActiveConnections: active,
		UniqueUsers:       unique,
	}, nil
}
