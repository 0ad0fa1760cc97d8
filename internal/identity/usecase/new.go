package usecase

import (
	"vitalguard-api/internal/access"
	"vitalguard-api/internal/identity"
	"vitalguard-api/internal/identity/repository"
	pkgLog "vitalguard-api/pkg/log"
	"vitalguard-api/pkg/scope"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	guard access.Guard
	scope scope.Manager
}

func New(l pkgLog.Logger, repo repository.Repository, guard access.Guard, scopeManager scope.Manager) identity.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		guard: guard,
		scope: scopeManager,
	}
}
