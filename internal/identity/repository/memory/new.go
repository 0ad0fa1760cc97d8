package memory

import (
	"sync"
	"time"

	"vitalguard-api/internal/identity/repository"
	"vitalguard-api/internal/model"
	pkgLog "vitalguard-api/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger

	mu          sync.RWMutex
	actors      map[string]*model.Actor
	byUsername  map[string]string
	assignments map[string]map[string]bool

	now func() time.Time
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger) *implRepository {
	return &implRepository{
		l:           l,
		actors:      make(map[string]*model.Actor),
		byUsername:  make(map[string]string),
		assignments: make(map[string]map[string]bool),
		now:         time.Now,
	}
}
