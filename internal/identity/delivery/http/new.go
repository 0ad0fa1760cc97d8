package http

import (
	"vitalguard-api/internal/identity"
	pkgLog "vitalguard-api/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc identity.UseCase
}

// New returns the HTTP handler for authentication and actor management.
func New(l pkgLog.Logger, uc identity.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
