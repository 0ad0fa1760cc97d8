package postgres

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/friendsofgo/errors"

	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/model"
)

const insertEventQuery = `
	INSERT INTO alert_events (
		alert_id, patient_id, alert_type, severity, event, actor, detail, occurred_at, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id`

// Append writes one audit row. Best-effort from the caller's point of view:
// the dispatcher logs failures and moves on.
func (r *implRepository) Append(ctx context.Context, alert model.Alert, event model.AlertEvent) error {
	detail := null.NewString(event.Detail, event.Detail != "")

	var id int64
	err := r.db.QueryRowContext(ctx, insertEventQuery,
		alert.ID,
		alert.PatientID,
		string(alert.Type),
		string(alert.Severity),
		event.Event,
		event.Actor,
		detail,
		event.Timestamp,
		r.clock(),
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Append: %v", err)
		return errors.Wrap(err, "insert alert event")
	}

	return nil
}

const listEventsQuery = `
	SELECT id, alert_id, patient_id, alert_type, severity, event, actor, detail, occurred_at
	FROM alert_events
	WHERE ($1 = '' OR patient_id = $1)
	  AND occurred_at >= $2
	  AND occurred_at < $3
	ORDER BY occurred_at ASC, id ASC`

// ListEvents returns audit rows for a patient (or all patients when the
// patient filter is empty) within [From, To).
func (r *implRepository) ListEvents(ctx context.Context, opts repository.ListEventsOptions) ([]repository.AuditEvent, error) {
	rows, err := r.db.QueryContext(ctx, listEventsQuery, opts.PatientID, opts.From, opts.To)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListEvents: %v", err)
		return nil, errors.Wrap(err, "query alert events")
	}
	defer rows.Close()

	var events []repository.AuditEvent
	for rows.Next() {
		var (
			ev        repository.AuditEvent
			alertType string
			severity  string
			detail    null.String
		)
		if err := rows.Scan(
			&ev.ID,
			&ev.AlertID,
			&ev.PatientID,
			&alertType,
			&severity,
			&ev.Event,
			&ev.Actor,
			&detail,
			&ev.Timestamp,
		); err != nil {
			r.l.Errorf(ctx, "internal.alert.repository.postgres.ListEvents.Scan: %v", err)
			return nil, errors.Wrap(err, "scan alert event")
		}
		ev.AlertType = model.AlertType(alertType)
		ev.Severity = model.Severity(severity)
		ev.Detail = detail.String
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListEvents.Rows: %v", err)
		return nil, errors.Wrap(err, "iterate alert events")
	}

	return events, nil
}
