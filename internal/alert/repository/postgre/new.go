package postgres

import (
	"database/sql"
	"time"

	"vitalguard-api/internal/alert/repository"
	pkgLog "vitalguard-api/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	db    *sql.DB
	clock func() time.Time
}

var _ repository.AuditRepository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) *implRepository {
	return &implRepository{
		l:     l,
		db:    db,
		clock: time.Now,
	}
}
