package memory

import (
	"sync"
	"time"

	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/model"
	pkgLog "vitalguard-api/pkg/log"
)

// DefaultDedupLookback is the window within which a new triggering signal
// attaches to an existing active alert instead of creating a duplicate.
const DefaultDedupLookback = 5 * time.Minute

type implRepository struct {
	l        pkgLog.Logger
	lookback time.Duration

	// mu guards the shared alert map and insertion order; it is held only
	// for the brief map accesses. Check-then-act sections (dedup scan,
	// terminal-state guard) serialize on a per-patient mutex instead, so
	// signals for unrelated patients do not contend on one store lock.
	mu     sync.RWMutex
	alerts map[string]*model.Alert
	// order preserves insertion order for ListActive and newest-first History.
	order []string

	regMu sync.Mutex
	locks map[string]*sync.Mutex

	// now is swappable in tests.
	now func() time.Time
}

// patientLock returns the mutex serializing all mutations for one patient.
func (r *implRepository) patientLock(patientID string) *sync.Mutex {
	r.regMu.Lock()
	defer r.regMu.Unlock()

	l, ok := r.locks[patientID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[patientID] = l
	}
	return l
}

// New returns an in-memory alert store with the given dedup lookback.
// A non-positive lookback falls back to the default.
func New(l pkgLog.Logger, lookback time.Duration) repository.Repository {
	if lookback <= 0 {
		lookback = DefaultDedupLookback
	}
	return &implRepository{
		l:        l,
		lookback: lookback,
		alerts:   make(map[string]*model.Alert),
		locks:    make(map[string]*sync.Mutex),
		now:      time.Now,
	}
}
