package http

import (
	"vitalguard-api/internal/alert"
	pkgLog "vitalguard-api/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc alert.UseCase
}

// New returns the HTTP handler for signal intake and alert management.
func New(l pkgLog.Logger, uc alert.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
