package usecase

import (
	"time"

	"vitalguard-api/internal/access"
	"vitalguard-api/internal/alert"
	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/notifier"
	pkgLog "vitalguard-api/pkg/log"
	"vitalguard-api/pkg/scheduler"
)

// DefaultConfirmationWindow bounds how long an emergency alert waits for a
// confirming signal or a human acknowledgment before auto-escalating.
const DefaultConfirmationWindow = 30 * time.Second

type usecase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	auditRepo repository.AuditRepository
	guard     access.Guard
	sched     scheduler.Scheduler
	doctor    notifier.DoctorNotifier
	emergency notifier.EmergencyNotifier
	observers []notifier.Observer
	window    time.Duration
}

// Config tunes the confirmation window behaviour.
type Config struct {
	ConfirmationWindow time.Duration
}

// New wires the alert usecase. auditRepo, doctor, emergency and observers
// are best-effort collaborators and may be nil/empty.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	auditRepo repository.AuditRepository,
	guard access.Guard,
	sched scheduler.Scheduler,
	doctor notifier.DoctorNotifier,
	emergency notifier.EmergencyNotifier,
	observers []notifier.Observer,
	cfg Config,
) alert.UseCase {
	window := cfg.ConfirmationWindow
	if window <= 0 {
		window = DefaultConfirmationWindow
	}
	return &usecase{
		l:         l,
		repo:      repo,
		auditRepo: auditRepo,
		guard:     guard,
		sched:     sched,
		doctor:    doctor,
		emergency: emergency,
		observers: observers,
		window:    window,
	}
}
