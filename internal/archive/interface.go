package archive

import (
	"context"
	"time"
)

// Archiver exports audit events to object storage on a schedule.
type Archiver interface {
	// Start ensures the archive bucket exists and begins the cron schedule.
	Start(ctx context.Context) error

	// Stop halts the schedule and waits for a running export to finish.
	Stop(ctx context.Context) error

	// ExportDay exports all audit events of one calendar day (UTC) as a
	// single JSON object. Returns the object key written.
	ExportDay(ctx context.Context, day time.Time) (string, error)
}
