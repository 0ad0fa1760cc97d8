package middleware

import (
	pkgLog "vitalguard-api/pkg/log"
	"vitalguard-api/pkg/scope"
)

type Middleware struct {
	l          pkgLog.Logger
	jwtManager scope.Manager
}

func New(l pkgLog.Logger, jwtManager scope.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
