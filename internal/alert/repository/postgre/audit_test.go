package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/model"
)

// mockLogger implements log.Logger for testing
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

func setupMockAuditDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *implRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := New(&mockLogger{}, db)
	return db, mock, repo
}

func TestAppend_Success(t *testing.T) {
	db, mock, repo := setupMockAuditDB(t)
	defer db.Close()

	occurred := time.Now()
	a := model.Alert{
		ID:        "alert-1",
		PatientID: "p-1",
		Type:      model.AlertTypeEmergency,
		Severity:  model.SeverityCritical,
	}
	ev := model.AlertEvent{
		Event:     model.EventEscalated,
		Actor:     model.SystemTimeoutActor,
		Detail:    "timeout",
		Timestamp: occurred,
	}

	mock.ExpectQuery(`INSERT INTO alert_events`).
		WithArgs("alert-1", "p-1", "emergency", "critical", "escalated",
			model.SystemTimeoutActor, sqlmock.AnyArg(), occurred, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	err := repo.Append(context.Background(), a, ev)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_DBError(t *testing.T) {
	db, mock, repo := setupMockAuditDB(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO alert_events`).
		WillReturnError(sql.ErrConnDone)

	err := repo.Append(context.Background(), model.Alert{ID: "alert-1"}, model.AlertEvent{
		Event:     model.EventCreated,
		Actor:     "vitals",
		Timestamp: time.Now(),
	})

	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEvents_Success(t *testing.T) {
	db, mock, repo := setupMockAuditDB(t)
	defer db.Close()

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	occurred := from.Add(3 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "alert_id", "patient_id", "alert_type", "severity",
		"event", "actor", "detail", "occurred_at",
	}).
		AddRow(int64(1), "alert-1", "p-1", "emergency", "critical",
			"created", "vitals", "FATAL VITAL SIGNS: Severely abnormal heart rate", occurred).
		AddRow(int64(2), "alert-1", "p-1", "emergency", "critical",
			"escalated", model.SystemTimeoutActor, "timeout", occurred.Add(30*time.Second))

	mock.ExpectQuery(`SELECT`).
		WithArgs("p-1", from, to).
		WillReturnRows(rows)

	events, err := repo.ListEvents(context.Background(), repository.ListEventsOptions{
		PatientID: "p-1",
		From:      from,
		To:        to,
	})

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "created", events[0].Event)
	assert.Equal(t, model.AlertTypeEmergency, events[0].AlertType)
	assert.Equal(t, "timeout", events[1].Detail)
	assert.Equal(t, model.SystemTimeoutActor, events[1].Actor)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEvents_Empty(t *testing.T) {
	db, mock, repo := setupMockAuditDB(t)
	defer db.Close()

	from := time.Now().Add(-24 * time.Hour)
	to := time.Now()

	mock.ExpectQuery(`SELECT`).
		WithArgs("", from, to).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "alert_id", "patient_id", "alert_type", "severity",
			"event", "actor", "detail", "occurred_at",
		}))

	events, err := repo.ListEvents(context.Background(), repository.ListEventsOptions{From: from, To: to})

	require.NoError(t, err)
	assert.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}
