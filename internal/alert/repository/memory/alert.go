package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/model"
	"vitalguard-api/pkg/paginator"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Alert, bool, error) {
	draft := opts.Draft

	// The dedup check-then-act is exclusive per patient only. Other
	// patients' signals proceed in parallel; the store lock is taken
	// briefly for the scan and the insert.
	pl := r.patientLock(draft.PatientID)
	pl.Lock()
	defer pl.Unlock()

	now := r.now()

	// Dedup: a still-active alert of the same (patient, type) within the
	// lookback absorbs the new signal.
	r.mu.RLock()
	cutoff := now.Add(-r.lookback)
	for i := len(r.order) - 1; i >= 0; i-- {
		existing := r.alerts[r.order[i]]
		if existing.CreatedAt.Before(cutoff) {
			break
		}
		if existing.PatientID == draft.PatientID && existing.Type == draft.Type && existing.Active() {
			out := *existing
			r.mu.RUnlock()
			return out, false, nil
		}
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	id := draft.ID
	if id == "" {
		id = uuid.New().String()
	} else if _, ok := r.alerts[id]; ok {
		// Invariant corruption: ids are immutable and globally unique.
		panic(fmt.Sprintf("memory.Create: duplicate alert id %q", id))
	}

	newAlert := &model.Alert{
		ID:                   id,
		PatientID:            draft.PatientID,
		Type:                 draft.Type,
		Source:               draft.Source,
		Severity:             draft.Severity,
		Message:              draft.Message,
		State:                model.StatePending,
		RequiresConfirmation: draft.RequiresConfirmation,
		CreatedAt:            now,
		Events: []model.AlertEvent{{
			Event:     model.EventCreated,
			Actor:     string(draft.Source),
			Detail:    draft.Message,
			Timestamp: now,
		}},
	}

	r.alerts[id] = newAlert
	r.order = append(r.order, id)

	return *newAlert, true, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.alerts[id]
	if !ok {
		return model.Alert{}, repository.ErrNotFound
	}
	return *a, nil
}

func (r *implRepository) ListActive(ctx context.Context, opts repository.ListActiveOptions) ([]model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Alert
	for _, id := range r.order {
		a := r.alerts[id]
		if !a.Active() {
			continue
		}
		if opts.PatientID != "" && a.PatientID != opts.PatientID {
			continue
		}
		if opts.Type != "" && a.Type != opts.Type {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Alert, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first.
	var matched []model.Alert
	for i := len(r.order) - 1; i >= 0; i-- {
		a := r.alerts[r.order[i]]
		if !matchFilter(a, opts.Filter) {
			continue
		}
		matched = append(matched, *a)
	}

	total := int64(len(matched))
	offset := opts.PaginateQuery.Offset()
	limit := opts.PaginateQuery.Limit

	var page []model.Alert
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		page = matched[offset:end]
	}

	return page, paginator.Paginator{
		Total:       total,
		Count:       int64(len(page)),
		PerPage:     limit,
		CurrentPage: opts.PaginateQuery.Page,
	}, nil
}

func matchFilter(a *model.Alert, f repository.Filter) bool {
	if f.PatientID != "" && a.PatientID != f.PatientID {
		return false
	}
	if len(f.Types) > 0 && !containsType(f.Types, a.Type) {
		return false
	}
	if len(f.States) > 0 && !containsState(f.States, a.State) {
		return false
	}
	return true
}

func containsType(types []model.AlertType, t model.AlertType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func containsState(states []model.AlertState, s model.AlertState) bool {
	for _, v := range states {
		if v == s {
			return true
		}
	}
	return false
}

// lockForAlert resolves the patient owning the alert and returns that
// patient's mutex. Patient ids on alerts are immutable, so the resolved
// lock stays correct after the read lock is dropped.
func (r *implRepository) lockForAlert(id string) (*sync.Mutex, error) {
	r.mu.RLock()
	a, ok := r.alerts[id]
	if !ok {
		r.mu.RUnlock()
		return nil, repository.ErrNotFound
	}
	patientID := a.PatientID
	r.mu.RUnlock()

	return r.patientLock(patientID), nil
}

func (r *implRepository) Acknowledge(ctx context.Context, id, by string) (model.Alert, error) {
	pl, err := r.lockForAlert(id)
	if err != nil {
		return model.Alert{}, err
	}
	pl.Lock()
	defer pl.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.alerts[id]
	if !ok {
		return model.Alert{}, repository.ErrNotFound
	}
	if a.State.Terminal() {
		return *a, repository.ErrAlreadyTerminal
	}

	now := r.now()
	a.State = model.StateAcknowledged
	a.AcknowledgedBy = &by
	a.AcknowledgedAt = &now
	a.Events = append(a.Events, model.AlertEvent{
		Event:     model.EventAcknowledged,
		Actor:     by,
		Timestamp: now,
	})

	return *a, nil
}

func (r *implRepository) Escalate(ctx context.Context, id, reason, actor string) (model.Alert, error) {
	pl, err := r.lockForAlert(id)
	if err != nil {
		return model.Alert{}, err
	}
	pl.Lock()
	defer pl.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.alerts[id]
	if !ok {
		return model.Alert{}, repository.ErrNotFound
	}
	if a.State.Terminal() {
		return *a, repository.ErrAlreadyTerminal
	}

	now := r.now()
	a.State = model.StateEscalated
	a.EscalatedAt = &now
	a.EscalationReason = &reason
	a.Events = append(a.Events, model.AlertEvent{
		Event:     model.EventEscalated,
		Actor:     actor,
		Detail:    reason,
		Timestamp: now,
	})

	return *a, nil
}
