package archive

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/model"
	pkgMinio "vitalguard-api/pkg/minio"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type mockAuditRepo struct {
	events   []repository.AuditEvent
	lastOpts repository.ListEventsOptions
}

func (m *mockAuditRepo) Append(ctx context.Context, alert model.Alert, event model.AlertEvent) error {
	return nil
}

func (m *mockAuditRepo) ListEvents(ctx context.Context, opts repository.ListEventsOptions) ([]repository.AuditEvent, error) {
	m.lastOpts = opts
	return m.events, nil
}

type mockStorage struct {
	buckets  []string
	uploads  []*pkgMinio.UploadRequest
	payloads [][]byte
}

func (m *mockStorage) Connect(ctx context.Context) error     { return nil }
func (m *mockStorage) HealthCheck(ctx context.Context) error { return nil }
func (m *mockStorage) Close() error                          { return nil }

func (m *mockStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	m.buckets = append(m.buckets, bucketName)
	return nil
}

func (m *mockStorage) UploadFile(ctx context.Context, req *pkgMinio.UploadRequest) (*pkgMinio.FileInfo, error) {
	body, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	m.uploads = append(m.uploads, req)
	m.payloads = append(m.payloads, body)
	return &pkgMinio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (m *mockStorage) DownloadFile(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	return nil, pkgMinio.ErrObjectMissing
}

func (m *mockStorage) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	return false, nil
}

func TestObjectKey(t *testing.T) {
	day := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "emergency_alerts_2024-03-15.json", ObjectKey(day))
}

func TestExportDay(t *testing.T) {
	repo := &mockAuditRepo{
		events: []repository.AuditEvent{
			{
				ID:        1,
				AlertID:   "alert-1",
				PatientID: "patient-1",
				AlertType: model.AlertTypeEmergency,
				Severity:  model.SeverityCritical,
				Event:     model.EventCreated,
				Actor:     "vitals",
				Detail:    "FATAL VITAL SIGNS: Severely abnormal heart rate",
				Timestamp: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			},
			{
				ID:        2,
				AlertID:   "alert-1",
				PatientID: "patient-1",
				AlertType: model.AlertTypeEmergency,
				Severity:  model.SeverityCritical,
				Event:     model.EventEscalated,
				Actor:     model.SystemTimeoutActor,
				Detail:    "timeout",
				Timestamp: time.Date(2024, 3, 15, 10, 0, 30, 0, time.UTC),
			},
		},
	}
	storage := &mockStorage{}

	a := New(&mockLogger{}, repo, storage, Config{Bucket: "alerts-archive"})

	key, err := a.ExportDay(context.Background(), time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "emergency_alerts_2024-03-15.json", key)

	// Listing window covers the whole UTC day.
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), repo.lastOpts.From)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), repo.lastOpts.To)

	require.Len(t, storage.uploads, 1)
	assert.Equal(t, "alerts-archive", storage.uploads[0].BucketName)
	assert.Equal(t, "application/json", storage.uploads[0].ContentType)

	var doc archiveDocument
	require.NoError(t, json.Unmarshal(storage.payloads[0], &doc))
	assert.Equal(t, "2024-03-15", doc.Day)
	assert.Equal(t, 2, doc.EventCount)
	require.Len(t, doc.Events, 2)
	assert.Equal(t, "alert-1", doc.Events[0].AlertID)
	assert.Equal(t, model.SystemTimeoutActor, doc.Events[1].Actor)
}

func TestExportDayEmpty(t *testing.T) {
	repo := &mockAuditRepo{}
	storage := &mockStorage{}

	a := New(&mockLogger{}, repo, storage, Config{Bucket: "alerts-archive"})

	key, err := a.ExportDay(context.Background(), time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "emergency_alerts_2024-03-16.json", key)

	var doc archiveDocument
	require.Len(t, storage.payloads, 1)
	require.NoError(t, json.Unmarshal(storage.payloads[0], &doc))
	assert.Equal(t, 0, doc.EventCount)
	assert.Empty(t, doc.Events)
}
