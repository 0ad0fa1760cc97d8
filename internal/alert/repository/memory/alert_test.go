package memory

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/model"
	"vitalguard-api/pkg/paginator"
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

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	repo := New(&mockLogger{}, DefaultDedupLookback).(*implRepository)
	return repo
}

func emergencyDraft(patientID string) repository.CreateOptions {
	return repository.CreateOptions{Draft: repository.AlertDraft{
		PatientID:            patientID,
		Type:                 model.AlertTypeEmergency,
		Source:               model.SourceVitals,
		Severity:             model.SeverityCritical,
		Message:              "FATAL VITAL SIGNS: Severely abnormal heart rate",
		RequiresConfirmation: true,
	}}
}

func TestCreateDedupWithinLookback(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, created, err := repo.Create(ctx, emergencyDraft("p-1"))
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := repo.Create(ctx, emergencyDraft("p-1"))
	require.NoError(t, err)
	assert.False(t, created, "second create within lookback should dedup")
	assert.Equal(t, first.ID, second.ID)
}

func TestCreateNoDedupAcrossPatientsOrTypes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, _, err := repo.Create(ctx, emergencyDraft("p-1"))
	require.NoError(t, err)

	b, created, err := repo.Create(ctx, emergencyDraft("p-2"))
	require.NoError(t, err)
	assert.True(t, created, "different patient must not dedup")
	assert.NotEqual(t, a.ID, b.ID)

	opts := emergencyDraft("p-1")
	opts.Draft.Type = model.AlertTypeCriticalVitals
	c, created, err := repo.Create(ctx, opts)
	require.NoError(t, err)
	assert.True(t, created, "different type must not dedup")
	assert.NotEqual(t, a.ID, c.ID)
}

func TestCreateDedupExpiresAfterLookback(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now()
	repo.now = func() time.Time { return base }

	first, _, err := repo.Create(ctx, emergencyDraft("p-1"))
	require.NoError(t, err)

	repo.now = func() time.Time { return base.Add(DefaultDedupLookback + time.Second) }
	second, created, err := repo.Create(ctx, emergencyDraft("p-1"))
	require.NoError(t, err)
	require.True(t, created, "create after lookback should not dedup")
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateDedupIgnoresTerminalAlerts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, _, err := repo.Create(ctx, emergencyDraft("p-1"))
	require.NoError(t, err)
	_, err = repo.Acknowledge(ctx, first.ID, "caretaker-7")
	require.NoError(t, err)

	second, created, err := repo.Create(ctx, emergencyDraft("p-1"))
	require.NoError(t, err)
	require.True(t, created, "acknowledged alert must not absorb new signals")
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDuplicateIDPanics(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	opts := emergencyDraft("p-1")
	opts.Draft.ID = "fixed-id"
	_, _, err := repo.Create(ctx, opts)
	require.NoError(t, err)

	opts.Draft.PatientID = "p-2" // avoid dedup path
	assert.Panics(t, func() {
		_, _, _ = repo.Create(ctx, opts)
	}, "duplicate id insert should panic")
}

func TestAcknowledgeTransition(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, _, err := repo.Create(ctx, emergencyDraft("p-1"))
	require.NoError(t, err)

	acked, err := repo.Acknowledge(ctx, a.ID, "caretaker-7")
	require.NoError(t, err)
	assert.Equal(t, model.StateAcknowledged, acked.State)
	require.NotNil(t, acked.AcknowledgedBy)
	assert.Equal(t, "caretaker-7", *acked.AcknowledgedBy)
	require.Len(t, acked.Events, 2)
	assert.Equal(t, model.EventAcknowledged, acked.Events[1].Event)

	// Terminal guard: second resolution observes ErrAlreadyTerminal.
	_, err = repo.Escalate(ctx, a.ID, "timeout", model.SystemTimeoutActor)
	assert.ErrorIs(t, err, repository.ErrAlreadyTerminal)
	_, err = repo.Acknowledge(ctx, a.ID, "caretaker-8")
	assert.ErrorIs(t, err, repository.ErrAlreadyTerminal)
}

func TestEscalateTransition(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, _, err := repo.Create(ctx, emergencyDraft("p-1"))
	require.NoError(t, err)

	esc, err := repo.Escalate(ctx, a.ID, "timeout", model.SystemTimeoutActor)
	require.NoError(t, err)
	assert.Equal(t, model.StateEscalated, esc.State)
	require.NotNil(t, esc.EscalationReason)
	assert.Equal(t, "timeout", *esc.EscalationReason)
	assert.NotNil(t, esc.EscalatedAt)
}

func TestNotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.Acknowledge(ctx, "missing", "x")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.Escalate(ctx, "missing", "r", "x")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRaceExactlyOneTerminalState(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		a, _, err := repo.Create(ctx, repository.CreateOptions{Draft: repository.AlertDraft{
			PatientID:            "p-race",
			Type:                 model.AlertTypeEmergency,
			Source:               model.SourceManual,
			Severity:             model.SeverityHigh,
			Message:              "Emergency button pressed",
			RequiresConfirmation: true,
		}})
		require.NoError(t, err)

		var wg sync.WaitGroup
		var ackErr, escErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, ackErr = repo.Acknowledge(ctx, a.ID, "caretaker-7")
		}()
		go func() {
			defer wg.Done()
			_, escErr = repo.Escalate(ctx, a.ID, "timeout", model.SystemTimeoutActor)
		}()
		wg.Wait()

		require.NotEqual(t, ackErr == nil, escErr == nil,
			"exactly one of ack/escalate must win: ackErr=%v escErr=%v", ackErr, escErr)

		final, err := repo.Get(ctx, a.ID)
		require.NoError(t, err)
		require.True(t, final.State.Terminal(), "final state = %v", final.State)
	}
}

func TestConcurrentCreateSamePatientDedupsOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const workers = 16
	ids := make([]string, workers)
	createds := make([]bool, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			a, created, err := repo.Create(ctx, emergencyDraft("p-1"))
			ids[i], createds[i], errs[i] = a.ID, created, err
		}(i)
	}
	wg.Wait()

	wins := 0
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		if createds[i] {
			wins++
		}
		assert.Equal(t, ids[0], ids[i], "all submissions must land on one alert")
	}
	assert.Equal(t, 1, wins, "exactly one submission creates the alert")
}

func TestConcurrentCreateDistinctPatients(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const patients = 32
	createds := make([]bool, patients)
	errs := make([]error, patients)

	var wg sync.WaitGroup
	wg.Add(patients)
	for i := 0; i < patients; i++ {
		go func(i int) {
			defer wg.Done()
			_, createds[i], errs[i] = repo.Create(ctx, emergencyDraft("p-"+strconv.Itoa(i)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < patients; i++ {
		require.NoError(t, errs[i])
		assert.True(t, createds[i])
	}

	all, err := repo.ListActive(ctx, repository.ListActiveOptions{})
	require.NoError(t, err)
	assert.Len(t, all, patients)

	// Mutations serialize on one mutex per patient, not a store-wide lock.
	repo.regMu.Lock()
	defer repo.regMu.Unlock()
	assert.Len(t, repo.locks, patients)
}

func TestListActiveInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, _, err := repo.Create(ctx, emergencyDraft("p-1"))
	require.NoError(t, err)

	opts := emergencyDraft("p-1")
	opts.Draft.Type = model.AlertTypeCriticalVitals
	b, _, err := repo.Create(ctx, opts)
	require.NoError(t, err)

	c, _, err := repo.Create(ctx, emergencyDraft("p-2"))
	require.NoError(t, err)

	all, err := repo.ListActive(ctx, repository.ListActiveOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	forPatient, err := repo.ListActive(ctx, repository.ListActiveOptions{PatientID: "p-1"})
	require.NoError(t, err)
	assert.Len(t, forPatient, 2)

	_, err = repo.Acknowledge(ctx, a.ID, "caretaker-7")
	require.NoError(t, err)
	forPatient, err = repo.ListActive(ctx, repository.ListActiveOptions{PatientID: "p-1"})
	require.NoError(t, err)
	require.Len(t, forPatient, 1)
	assert.Equal(t, b.ID, forPatient[0].ID)
}

func TestListPagination(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		offset := time.Duration(i) * 10 * time.Minute
		repo.now = func() time.Time { return base.Add(offset) }
		_, created, err := repo.Create(ctx, emergencyDraft("p-1"))
		require.NoError(t, err)
		require.True(t, created, "Create() #%d", i)
	}

	out, pag, err := repo.List(ctx, repository.ListOptions{
		Filter:        repository.Filter{PatientID: "p-1"},
		PaginateQuery: paginator.PaginateQuery{Page: 1, Limit: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), pag.Total)
	assert.Equal(t, int64(2), pag.Count)
	assert.Equal(t, 3, pag.TotalPages())
	// Newest first.
	require.Len(t, out, 2)
	assert.True(t, out[0].CreatedAt.After(out[1].CreatedAt))
}
