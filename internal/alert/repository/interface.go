package repository

import (
	"context"

	"vitalguard-api/internal/model"
	"vitalguard-api/pkg/paginator"
)

//go:generate mockery --name Repository
// Repository is the authoritative alert store. Mutations linearize under the
// store's lock: the first of a racing acknowledge/escalate pair wins and the
// loser observes ErrAlreadyTerminal.
type Repository interface {
	// Create inserts a new pending alert from the draft, unless an active
	// alert of the same (patient, type) exists within the dedup lookback; in
	// that case the existing alert is returned unchanged and created is
	// false. Inserting a draft with an explicit id that already exists
	// panics: ids are immutable and globally unique for the store lifetime.
	Create(ctx context.Context, opts CreateOptions) (alert model.Alert, created bool, err error)

	// Get returns one alert by id.
	Get(ctx context.Context, id string) (model.Alert, error)

	// ListActive returns unresolved alerts in insertion order.
	ListActive(ctx context.Context, opts ListActiveOptions) ([]model.Alert, error)

	// List returns alerts matching the filter, newest first, paginated.
	List(ctx context.Context, opts ListOptions) ([]model.Alert, paginator.Paginator, error)

	// Acknowledge transitions a pending alert to Acknowledged. Returns
	// ErrAlreadyTerminal if the alert is already resolved.
	Acknowledge(ctx context.Context, id, by string) (model.Alert, error)

	// Escalate transitions a pending alert to Escalated. Returns
	// ErrAlreadyTerminal if the alert is already resolved.
	Escalate(ctx context.Context, id, reason, actor string) (model.Alert, error)
}

//go:generate mockery --name AuditRepository
// AuditRepository is the append-only audit log of alert state transitions,
// written best-effort outside the store's critical section.
type AuditRepository interface {
	Append(ctx context.Context, alert model.Alert, event model.AlertEvent) error
	ListEvents(ctx context.Context, opts ListEventsOptions) ([]AuditEvent, error)
}
