package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"vitalguard-api/internal/alert/repository"
	pkgLog "vitalguard-api/pkg/log"
	pkgMinio "vitalguard-api/pkg/minio"
)

// DefaultCronSpec runs the export at midnight, archiving the day that just
// ended.
const DefaultCronSpec = "0 0 * * *"

// Config tunes the archiver.
type Config struct {
	Bucket   string
	CronSpec string
}

type archivedEvent struct {
	AlertID   string    `json:"alert_id"`
	PatientID string    `json:"patient_id"`
	AlertType string    `json:"alert_type"`
	Severity  string    `json:"severity"`
	Event     string    `json:"event"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type archiveDocument struct {
	Day        string          `json:"day"`
	EventCount int             `json:"event_count"`
	ExportedAt time.Time       `json:"exported_at"`
	Events     []archivedEvent `json:"events"`
}

type implArchiver struct {
	l         pkgLog.Logger
	auditRepo repository.AuditRepository
	storage   pkgMinio.MinIO
	cfg       Config
	cron      *cron.Cron
}

var _ Archiver = &implArchiver{}

// New creates an archiver exporting audit events daily to object storage.
func New(l pkgLog.Logger, auditRepo repository.AuditRepository, storage pkgMinio.MinIO, cfg Config) Archiver {
	if cfg.CronSpec == "" {
		cfg.CronSpec = DefaultCronSpec
	}
	return &implArchiver{
		l:         l,
		auditRepo: auditRepo,
		storage:   storage,
		cfg:       cfg,
		cron:      cron.New(),
	}
}

func (a *implArchiver) Start(ctx context.Context) error {
	if err := a.storage.EnsureBucket(ctx, a.cfg.Bucket); err != nil {
		return fmt.Errorf("ensure bucket %s: %w", a.cfg.Bucket, err)
	}

	_, err := a.cron.AddFunc(a.cfg.CronSpec, func() {
		day := time.Now().UTC().AddDate(0, 0, -1)
		if _, err := a.ExportDay(context.Background(), day); err != nil {
			a.l.Errorf(context.Background(), "internal.archive.Start.ExportDay: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", a.cfg.CronSpec, err)
	}

	a.cron.Start()
	a.l.Infof(ctx, "audit archiver started, spec=%q bucket=%s", a.cfg.CronSpec, a.cfg.Bucket)
	return nil
}

func (a *implArchiver) Stop(ctx context.Context) error {
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	a.l.Infof(ctx, "audit archiver stopped")
	return nil
}

// ObjectKey returns the archive key of one calendar day.
func ObjectKey(day time.Time) string {
	return fmt.Sprintf("emergency_alerts_%s.json", day.UTC().Format("2006-01-02"))
}

func (a *implArchiver) ExportDay(ctx context.Context, day time.Time) (string, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	events, err := a.auditRepo.ListEvents(ctx, repository.ListEventsOptions{From: from, To: to})
	if err != nil {
		return "", fmt.Errorf("list events: %w", err)
	}

	doc := archiveDocument{
		Day:        from.Format("2006-01-02"),
		EventCount: len(events),
		ExportedAt: time.Now().UTC(),
		Events:     make([]archivedEvent, 0, len(events)),
	}
	for _, ev := range events {
		doc.Events = append(doc.Events, archivedEvent{
			AlertID:   ev.AlertID,
			PatientID: ev.PatientID,
			AlertType: string(ev.AlertType),
			Severity:  string(ev.Severity),
			Event:     ev.Event,
			Actor:     ev.Actor,
			Detail:    ev.Detail,
			Timestamp: ev.Timestamp,
		})
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	key := ObjectKey(from)
	_, err = a.storage.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:  a.cfg.Bucket,
		ObjectName:  key,
		Reader:      bytes.NewReader(payload),
		Size:        int64(len(payload)),
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	a.l.Infof(ctx, "archived %d audit events to %s/%s", len(events), a.cfg.Bucket, key)
	return key, nil
}
