package access

import "vitalguard-api/internal/model"

// Capability is a single named permission. Every capability a role holds is
// enumerated explicitly; nothing is inferred from a role hierarchy.
type Capability string

const (
	CapViewOwnVitals Capability = "view_own_vitals"
	CapViewOwnAlerts Capability = "view_own_alerts"

	CapViewPatientVitals  Capability = "view_patient_vitals"
	CapViewPatientAlerts  Capability = "view_patient_alerts"
	CapViewPatientHistory Capability = "view_patient_history"

	CapViewAllPatients Capability = "view_all_patients"
	CapViewAllAlerts   Capability = "view_all_alerts"

	CapAcknowledgeAlerts Capability = "acknowledge_alerts"
	CapEscalateAlerts    Capability = "escalate_alerts"

	CapManagePatients Capability = "manage_patients"
	CapManageUsers    Capability = "manage_users"
)

// roleCapabilities is the explicit capability table per role.
var roleCapabilities = map[string]map[Capability]bool{
	model.RolePatient: {
		CapViewOwnVitals: true,
		CapViewOwnAlerts: true,
	},
	model.RoleCaretaker: {
		CapViewOwnVitals:     true,
		CapViewOwnAlerts:     true,
		CapViewPatientVitals: true,
		CapViewPatientAlerts: true,
		CapAcknowledgeAlerts: true,
	},
	model.RoleDoctor: {
		CapViewOwnVitals:      true,
		CapViewOwnAlerts:      true,
		CapViewPatientVitals:  true,
		CapViewPatientAlerts:  true,
		CapViewPatientHistory: true,
		CapViewAllPatients:    true,
		CapViewAllAlerts:      true,
		CapAcknowledgeAlerts:  true,
		CapEscalateAlerts:     true,
	},
	model.RoleAdmin: {
		CapViewOwnVitals:      true,
		CapViewOwnAlerts:      true,
		CapViewPatientVitals:  true,
		CapViewPatientAlerts:  true,
		CapViewPatientHistory: true,
		CapViewAllPatients:    true,
		CapViewAllAlerts:      true,
		CapAcknowledgeAlerts:  true,
		CapEscalateAlerts:     true,
		CapManagePatients:     true,
		CapManageUsers:        true,
	},
}

// HasCapability reports whether the role's capability table includes cap.
func HasCapability(role string, cap Capability) bool {
	return roleCapabilities[role][cap]
}
