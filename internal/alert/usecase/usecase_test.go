package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalguard-api/internal/access"
	"vitalguard-api/internal/alert"
	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/alert/repository/memory"
	"vitalguard-api/internal/model"
	"vitalguard-api/internal/notifier"
	"vitalguard-api/pkg/scheduler"
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

// mockGuard allows everything unless a deny rule matches.
type mockGuard struct {
	allow func(actorID, patientID string, cap access.Capability) bool
}

func (g *mockGuard) CanAccess(ctx context.Context, actorID, patientID string, cap access.Capability) (bool, error) {
	if g.allow == nil {
		return true, nil
	}
	return g.allow(actorID, patientID, cap), nil
}

// mockNotifier records doctor and emergency-service notifications.
type mockNotifier struct {
	mu             sync.Mutex
	doctorAlerts   []model.Alert
	emergencyCalls []model.Alert
	failDoctor     bool
}

func (n *mockNotifier) NotifyDoctor(ctx context.Context, a model.Alert) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failDoctor {
		return assert.AnError
	}
	n.doctorAlerts = append(n.doctorAlerts, a)
	return nil
}

func (n *mockNotifier) NotifyEmergencyServices(ctx context.Context, a model.Alert) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emergencyCalls = append(n.emergencyCalls, a)
	return nil
}

func (n *mockNotifier) doctorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.doctorAlerts)
}

func (n *mockNotifier) emergencyCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.emergencyCalls)
}

// mockObserver records every alert lifecycle event.
type mockObserver struct {
	mu     sync.Mutex
	events []model.AlertEvent
}

func (o *mockObserver) OnAlertEvent(ctx context.Context, a model.Alert, ev model.AlertEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, ev)
}

func (o *mockObserver) eventNames() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	names := make([]string, len(o.events))
	for i, ev := range o.events {
		names[i] = ev.Event
	}
	return names
}

type fixture struct {
	uc       alert.UseCase
	repo     repository.Repository
	sched    scheduler.Scheduler
	notifier *mockNotifier
	observer *mockObserver
	guard    *mockGuard
}

func newFixture(t *testing.T, window time.Duration) *fixture {
	t.Helper()

	l := &mockLogger{}
	repo := memory.New(l, memory.DefaultDedupLookback)
	sched := scheduler.New()
	t.Cleanup(sched.Stop)

	n := &mockNotifier{}
	o := &mockObserver{}
	g := &mockGuard{}

	uc := New(l, repo, nil, g, sched, n, n, []notifier.Observer{o}, Config{
		ConfirmationWindow: window,
	})

	return &fixture{uc: uc, repo: repo, sched: sched, notifier: n, observer: o, guard: g}
}

func fatalVitalsSignal(patientID string) model.Signal {
	return model.Signal{
		PatientID: patientID,
		Source:    model.SourceVitals,
		Vitals: &model.VitalsSnapshot{
			PatientID:   patientID,
			HeartRate:   155,
			Temperature: 98.6,
			Oxygen:      97,
			Systolic:    120,
			Diastolic:   80,
		},
		Timestamp: time.Now(),
	}
}

func manualSignal(patientID string) model.Signal {
	return model.Signal{
		PatientID:    patientID,
		Source:       model.SourceManual,
		SeverityHint: model.HintHigh,
		Timestamp:    time.Now(),
	}
}

func TestSubmitSignalFatalVitals(t *testing.T) {
	f := newFixture(t, time.Minute)

	out, err := f.uc.SubmitSignal(context.Background(), alert.SubmitSignalInput{Signal: fatalVitalsSignal("p-1")})
	require.NoError(t, err)
	require.NotNil(t, out.Alert)
	assert.True(t, out.Created)

	a := *out.Alert
	assert.Equal(t, model.AlertTypeEmergency, a.Type)
	assert.Equal(t, model.SeverityCritical, a.Severity)
	assert.True(t, a.RequiresConfirmation)
	assert.Contains(t, a.Message, "Severely abnormal heart rate")
	assert.True(t, strings.HasPrefix(a.Message, "FATAL VITAL SIGNS: "))
	assert.Equal(t, model.StatePending, a.State)
	assert.True(t, f.sched.Pending(a.ID), "confirmation window should be armed")
	assert.Greater(t, out.TimeRemaining, time.Duration(0))
}

func TestSubmitSignalNormalVitalsProducesNothing(t *testing.T) {
	f := newFixture(t, time.Minute)

	sig := fatalVitalsSignal("p-1")
	sig.Vitals.HeartRate = 72

	out, err := f.uc.SubmitSignal(context.Background(), alert.SubmitSignalInput{Signal: sig})
	require.NoError(t, err)
	assert.Nil(t, out.Alert)

	active, err := f.repo.ListActive(context.Background(), repository.ListActiveOptions{PatientID: "p-1"})
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestSubmitSignalCriticalVitalsNoConfirmation(t *testing.T) {
	f := newFixture(t, time.Minute)

	sig := fatalVitalsSignal("p-1")
	sig.Vitals.HeartRate = 110
	sig.Vitals.Oxygen = 92

	out, err := f.uc.SubmitSignal(context.Background(), alert.SubmitSignalInput{Signal: sig})
	require.NoError(t, err)
	require.NotNil(t, out.Alert)

	a := *out.Alert
	assert.Equal(t, model.AlertTypeCriticalVitals, a.Type)
	assert.Equal(t, model.SeverityHigh, a.Severity)
	assert.False(t, a.RequiresConfirmation)
	assert.Equal(t, "Abnormal heart rate, Low oxygen level", a.Message)
	assert.False(t, f.sched.Pending(a.ID), "no confirmation window for non-emergency alerts")
	assert.Zero(t, out.TimeRemaining)
}

func TestSubmitSignalInvalid(t *testing.T) {
	f := newFixture(t, time.Minute)
	ctx := context.Background()

	_, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: model.Signal{Source: model.SourceManual}})
	assert.ErrorIs(t, err, alert.ErrInvalidSignal)

	_, err = f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: model.Signal{PatientID: "p-1", Source: "radar"}})
	assert.ErrorIs(t, err, alert.ErrInvalidSignal)

	_, err = f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: model.Signal{PatientID: "p-1", Source: model.SourceVitals}})
	assert.ErrorIs(t, err, alert.ErrInvalidSignal)

	_, err = f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: model.Signal{PatientID: "p-1", Source: model.SourceManual, SeverityHint: "bogus"}})
	assert.ErrorIs(t, err, alert.ErrInvalidSignal)

	active, err := f.repo.ListActive(ctx, repository.ListActiveOptions{PatientID: "p-1"})
	require.NoError(t, err)
	assert.Empty(t, active, "rejected signals must not raise alerts")
}

func TestSubmitSignalDedupReturnsSameAlert(t *testing.T) {
	f := newFixture(t, time.Minute)
	ctx := context.Background()

	first, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: fatalVitalsSignal("p-1")})
	require.NoError(t, err)

	second, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: fatalVitalsSignal("p-1")})
	require.NoError(t, err)
	require.NotNil(t, second.Alert)

	assert.False(t, second.Created)
	assert.Equal(t, first.Alert.ID, second.Alert.ID)

	active, _ := f.repo.ListActive(ctx, repository.ListActiveOptions{PatientID: "p-1"})
	assert.Len(t, active, 1)
}

func TestTimeoutEscalation(t *testing.T) {
	f := newFixture(t, 50*time.Millisecond)
	ctx := context.Background()

	out, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: fatalVitalsSignal("p-1")})
	require.NoError(t, err)
	id := out.Alert.ID

	require.Eventually(t, func() bool {
		a, err := f.repo.Get(ctx, id)
		return err == nil && a.State == model.StateEscalated
	}, time.Second, 5*time.Millisecond)

	a, err := f.repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, a.EscalationReason)
	assert.Equal(t, "timeout", *a.EscalationReason)
	assert.NotNil(t, a.EscalatedAt)

	last := a.Events[len(a.Events)-1]
	assert.Equal(t, model.EventEscalated, last.Event)
	assert.Equal(t, model.SystemTimeoutActor, last.Actor)

	// Doctor always, emergency services because severity is critical.
	assert.Equal(t, 1, f.notifier.doctorCount())
	assert.Equal(t, 1, f.notifier.emergencyCount())
}

func TestTimelyAckPreventsEscalation(t *testing.T) {
	f := newFixture(t, 60*time.Millisecond)
	ctx := context.Background()

	out, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: fatalVitalsSignal("p-1")})
	require.NoError(t, err)
	id := out.Alert.ID

	ackOut, err := f.uc.Acknowledge(ctx, model.Scope{UserID: "caretaker-7", Role: model.RoleCaretaker}, id)
	require.NoError(t, err)
	assert.False(t, ackOut.AlreadyResolved)
	assert.Equal(t, model.StateAcknowledged, ackOut.Alert.State)
	require.NotNil(t, ackOut.Alert.AcknowledgedBy)
	assert.Equal(t, "caretaker-7", *ackOut.Alert.AcknowledgedBy)

	// Wait past the window: no escalation may occur.
	time.Sleep(150 * time.Millisecond)

	a, err := f.repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StateAcknowledged, a.State)
	assert.Nil(t, a.EscalatedAt)
	assert.Equal(t, 0, f.notifier.doctorCount())
}

func TestAckTimerRaceResolvesExactlyOnce(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newFixture(t, time.Millisecond)
		ctx := context.Background()

		out, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: manualSignal("p-race")})
		require.NoError(t, err)
		id := out.Alert.ID

		_, err = f.uc.Acknowledge(ctx, model.Scope{UserID: "caretaker-7", Role: model.RoleCaretaker}, id)
		require.NoError(t, err)

		// Give a late timer every chance to fire.
		time.Sleep(20 * time.Millisecond)

		a, err := f.repo.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, a.State.Terminal())

		if a.State == model.StateAcknowledged {
			assert.Nil(t, a.EscalatedAt, "acknowledged alert must not also escalate")
		} else {
			assert.Nil(t, a.AcknowledgedAt, "escalated alert must not also acknowledge")
		}

		// Never more than one escalation notification.
		assert.LessOrEqual(t, f.notifier.doctorCount(), 1)
	}
}

func TestConfirmNoResponseEscalatesActiveEmergency(t *testing.T) {
	f := newFixture(t, time.Minute)
	ctx := context.Background()

	out, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: manualSignal("p-1")})
	require.NoError(t, err)
	id := out.Alert.ID

	escOut, err := f.uc.ConfirmNoResponse(ctx, alert.ConfirmNoResponseInput{
		PatientID: "p-1",
		Source:    model.SourceManual,
	})
	require.NoError(t, err)
	assert.False(t, escOut.AlreadyResolved)
	assert.Equal(t, id, escOut.Alert.ID)
	assert.Equal(t, model.StateEscalated, escOut.Alert.State)
	require.NotNil(t, escOut.Alert.EscalationReason)
	assert.Equal(t, "No response to confirmation window - manual", *escOut.Alert.EscalationReason)

	// Manual-source emergencies are high severity: doctor only.
	assert.Equal(t, 1, f.notifier.doctorCount())
	assert.Equal(t, 0, f.notifier.emergencyCount())
	assert.True(t, escOut.DoctorNotified)
	assert.False(t, escOut.EmergencyServiceNotified)
}

func TestConfirmNoResponseWithoutActiveEmergency(t *testing.T) {
	f := newFixture(t, time.Minute)

	_, err := f.uc.ConfirmNoResponse(context.Background(), alert.ConfirmNoResponseInput{
		PatientID: "p-1",
		Source:    model.SourceManual,
	})
	assert.ErrorIs(t, err, alert.ErrNoActiveEmergency)
}

func TestAcknowledgePermissionGating(t *testing.T) {
	f := newFixture(t, time.Minute)
	ctx := context.Background()

	// Only caretaker-1 is assigned to p-1.
	f.guard.allow = func(actorID, patientID string, cap access.Capability) bool {
		return actorID == "caretaker-1" && patientID == "p-1"
	}

	out, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: manualSignal("p-1")})
	require.NoError(t, err)
	id := out.Alert.ID

	_, err = f.uc.Acknowledge(ctx, model.Scope{UserID: "caretaker-2", Role: model.RoleCaretaker}, id)
	assert.ErrorIs(t, err, alert.ErrPermissionDenied)

	ackOut, err := f.uc.Acknowledge(ctx, model.Scope{UserID: "caretaker-1", Role: model.RoleCaretaker}, id)
	require.NoError(t, err)
	assert.Equal(t, model.StateAcknowledged, ackOut.Alert.State)
}

func TestForceEscalate(t *testing.T) {
	f := newFixture(t, time.Minute)
	ctx := context.Background()

	out, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: fatalVitalsSignal("p-1")})
	require.NoError(t, err)
	id := out.Alert.ID

	escOut, err := f.uc.ForceEscalate(ctx, model.Scope{UserID: "doctor-1", Role: model.RoleDoctor}, alert.ForceEscalateInput{
		AlertID: id,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StateEscalated, escOut.Alert.State)
	require.NotNil(t, escOut.Alert.EscalationReason)
	assert.Equal(t, "manual", *escOut.Alert.EscalationReason)
	assert.True(t, escOut.DoctorNotified)
	assert.True(t, escOut.EmergencyServiceNotified)
	assert.False(t, f.sched.Pending(id), "window cancelled on escalation")
}

func TestForceEscalateNotFound(t *testing.T) {
	f := newFixture(t, time.Minute)

	_, err := f.uc.ForceEscalate(context.Background(), model.Scope{UserID: "doctor-1", Role: model.RoleDoctor}, alert.ForceEscalateInput{
		AlertID: "missing",
	})
	assert.ErrorIs(t, err, alert.ErrAlertNotFound)
}

func TestEscalationBestEffortOnDoctorFailure(t *testing.T) {
	f := newFixture(t, time.Minute)
	ctx := context.Background()

	f.notifier.failDoctor = true

	out, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: fatalVitalsSignal("p-1")})
	require.NoError(t, err)

	escOut, err := f.uc.ForceEscalate(ctx, model.Scope{UserID: "doctor-1", Role: model.RoleDoctor}, alert.ForceEscalateInput{
		AlertID: out.Alert.ID,
		Reason:  "doctor requested",
	})
	require.NoError(t, err, "notification failure must not fail the escalation")
	assert.False(t, escOut.DoctorNotified)
	assert.True(t, escOut.EmergencyServiceNotified, "doctor failure must not block emergency services")
	assert.Equal(t, model.StateEscalated, escOut.Alert.State)
}

func TestObserverReceivesLifecycleEvents(t *testing.T) {
	f := newFixture(t, time.Minute)
	ctx := context.Background()

	out, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: fatalVitalsSignal("p-1")})
	require.NoError(t, err)

	_, err = f.uc.Acknowledge(ctx, model.Scope{UserID: "caretaker-7", Role: model.RoleCaretaker}, out.Alert.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{model.EventCreated, model.EventAcknowledged}, f.observer.eventNames())
}

func TestListActiveAndDetailGating(t *testing.T) {
	f := newFixture(t, time.Minute)
	ctx := context.Background()

	out, err := f.uc.SubmitSignal(ctx, alert.SubmitSignalInput{Signal: manualSignal("p-1")})
	require.NoError(t, err)

	// Patient sees their own active alert.
	own, err := f.uc.ListActive(ctx, model.Scope{UserID: "p-1", Role: model.RolePatient}, "p-1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, out.Alert.ID, own[0].ID)

	// Listing across all patients requires the view-all capability.
	_, err = f.uc.ListActive(ctx, model.Scope{UserID: "p-1", Role: model.RolePatient}, "")
	assert.ErrorIs(t, err, alert.ErrPermissionDenied)

	all, err := f.uc.ListActive(ctx, model.Scope{UserID: "doctor-1", Role: model.RoleDoctor}, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	got, err := f.uc.Detail(ctx, model.Scope{UserID: "p-1", Role: model.RolePatient}, out.Alert.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Alert.ID, got.ID)

	_, err = f.uc.Detail(ctx, model.Scope{UserID: "p-1", Role: model.RolePatient}, "missing")
	assert.ErrorIs(t, err, alert.ErrAlertNotFound)
}
