package http

import (
	"vitalguard-api/internal/ws"
	pkgLog "vitalguard-api/pkg/log"
	"vitalguard-api/pkg/scope"
)

// Config tunes the HTTP upgrade path.
type Config struct {
	ReadBufferSize  int
	WriteBufferSize int
}

type handler struct {
	l      pkgLog.Logger
	uc     ws.UseCase
	jwtMgr scope.Manager
	cfg    Config
}

// New returns the HTTP handler for the live alert feed.
func New(l pkgLog.Logger, uc ws.UseCase, jwtMgr scope.Manager, cfg Config) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		jwtMgr: jwtMgr,
		cfg:    cfg,
	}
}
