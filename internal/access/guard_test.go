package access

import (
	"context"
	"testing"

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

// mockProvider is an in-memory ActorProvider for testing
type mockProvider struct {
	roles       map[string]string
	assignments map[string]map[string]bool
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		roles:       make(map[string]string),
		assignments: make(map[string]map[string]bool),
	}
}

func (m *mockProvider) setRole(actorID, role string) {
	m.roles[actorID] = role
}

func (m *mockProvider) assign(actorID, patientID string) {
	if m.assignments[actorID] == nil {
		m.assignments[actorID] = make(map[string]bool)
	}
	m.assignments[actorID][patientID] = true
}

func (m *mockProvider) RoleOf(ctx context.Context, actorID string) (string, error) {
	return m.roles[actorID], nil
}

func (m *mockProvider) Assigned(ctx context.Context, actorID, patientID string) (bool, error) {
	return m.assignments[actorID][patientID], nil
}

func TestCanAccess(t *testing.T) {
	provider := newMockProvider()
	provider.setRole("patient-1", model.RolePatient)
	provider.setRole("patient-2", model.RolePatient)
	provider.setRole("caretaker-1", model.RoleCaretaker)
	provider.setRole("doctor-1", model.RoleDoctor)
	provider.setRole("admin-1", model.RoleAdmin)
	provider.assign("caretaker-1", "patient-1")

	guard := New(&mockLogger{}, provider)
	ctx := context.Background()

	tests := []struct {
		name      string
		actorID   string
		patientID string
		cap       Capability
		want      bool
	}{
		{"patient views own alerts", "patient-1", "patient-1", CapViewOwnAlerts, true},
		{"patient cannot view another patient", "patient-1", "patient-2", CapViewPatientAlerts, false},
		{"patient cannot acknowledge own alerts", "patient-1", "patient-1", CapAcknowledgeAlerts, false},
		{"assigned caretaker acknowledges", "caretaker-1", "patient-1", CapAcknowledgeAlerts, true},
		{"unassigned caretaker denied", "caretaker-1", "patient-2", CapAcknowledgeAlerts, false},
		{"caretaker lacks escalate capability even when assigned", "caretaker-1", "patient-1", CapEscalateAlerts, false},
		{"doctor covered by view-all without assignment", "doctor-1", "patient-2", CapViewPatientAlerts, true},
		{"doctor escalates unassigned patient via view-all", "doctor-1", "patient-2", CapEscalateAlerts, true},
		{"doctor lacks manage users", "doctor-1", "patient-2", CapManageUsers, false},
		{"admin bypasses everything", "admin-1", "patient-2", CapManageUsers, true},
		{"unknown actor denied", "ghost", "patient-1", CapViewOwnAlerts, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := guard.CanAccess(ctx, tt.actorID, tt.patientID, tt.cap)
			if err != nil {
				t.Fatalf("CanAccess() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CanAccess(%s, %s, %s) = %v, want %v",
					tt.actorID, tt.patientID, tt.cap, got, tt.want)
			}
		})
	}
}

func TestHasCapabilityTableIsExplicit(t *testing.T) {
	// Patients hold exactly their own-view capabilities and nothing else.
	for _, cap := range []Capability{
		CapViewPatientVitals, CapViewPatientAlerts, CapViewPatientHistory,
		CapViewAllPatients, CapViewAllAlerts, CapAcknowledgeAlerts,
		CapEscalateAlerts, CapManagePatients, CapManageUsers,
	} {
		if HasCapability(model.RolePatient, cap) {
			t.Errorf("patient role unexpectedly holds %s", cap)
		}
	}

	if !HasCapability(model.RoleCaretaker, CapAcknowledgeAlerts) {
		t.Error("caretaker must hold acknowledge_alerts")
	}
	if HasCapability(model.RoleCaretaker, CapViewAllPatients) {
		t.Error("caretaker must not hold view_all_patients")
	}
	if !HasCapability(model.RoleDoctor, CapEscalateAlerts) {
		t.Error("doctor must hold escalate_alerts")
	}
	if HasCapability("unknown", CapViewOwnAlerts) {
		t.Error("unknown role must hold nothing")
	}
}
