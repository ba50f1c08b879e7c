package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommunicationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from CommunicationStatus
		to   CommunicationStatus
		want bool
	}{
		{"pending to sent", CommPending, CommSent, true},
		{"sent to delivered", CommSent, CommDelivered, true},
		{"sent to acknowledged", CommSent, CommAcknowledged, true},
		{"delivered to acknowledged", CommDelivered, CommAcknowledged, true},
		{"acknowledged to preparing", CommAcknowledged, CommPreparing, true},
		{"acknowledged to ready", CommAcknowledged, CommReady, true},
		{"preparing to ready", CommPreparing, CommReady, true},
		{"ready to en_route", CommReady, CommEnRoute, true},
		{"en_route to arrived", CommEnRoute, CommArrived, true},
		{"failed to sent retry", CommFailed, CommSent, true},
		{"sent to failed", CommSent, CommFailed, true},
		{"cancel from preparing", CommPreparing, CommCancelled, true},
		{"cancel from sent", CommSent, CommCancelled, true},

		{"no skipping to en_route", CommAcknowledged, CommEnRoute, false},
		{"no going back to pending", CommSent, CommPending, false},
		{"arrived is terminal", CommArrived, CommCancelled, false},
		{"cancelled is terminal", CommCancelled, CommSent, false},
		{"no arrival without departure", CommReady, CommArrived, false},
		{"pending cannot acknowledge", CommPending, CommAcknowledged, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCommunicationStatus_IsTerminal(t *testing.T) {
	assert.True(t, CommArrived.IsTerminal())
	assert.True(t, CommCancelled.IsTerminal())
	assert.False(t, CommFailed.IsTerminal())
	assert.False(t, CommReady.IsTerminal())
}

func TestReadyForPatient(t *testing.T) {
	comm := &EmergencyHospitalCommunication{
		DoctorsReady:   true,
		NursesReady:    true,
		EquipmentReady: true,
		BedReady:       true,
	}
	assert.True(t, comm.ReadyForPatient())

	// Blood availability is not part of the mandatory four.
	comm.BloodAvailable = false
	assert.True(t, comm.ReadyForPatient())

	comm.BedReady = false
	assert.False(t, comm.ReadyForPatient())
}

func TestTriagePriority(t *testing.T) {
	assert.Equal(t, PriorityCritical, TriagePriority(TriageImmediate))
	assert.Equal(t, PriorityHigh, TriagePriority(TriageDelayed))
	assert.Equal(t, PriorityMedium, TriagePriority(TriageMinor))
	assert.Equal(t, PriorityLow, TriagePriority(TriageExpectant))
	assert.Equal(t, PriorityHigh, TriagePriority(TriageCategory("unknown")))
}

func TestChecklist_CompletionPercentage(t *testing.T) {
	checklist := &HospitalPreparationChecklist{}
	assert.Equal(t, 0.0, checklist.CompletionPercentage())

	checklist.EmergencyDoctorAssigned = true
	checklist.NursingTeamReady = true
	assert.Equal(t, 12.5, checklist.CompletionPercentage())

	checklist.EmergencyBedPrepared = true
	checklist.VitalMonitorsReady = true
	assert.Equal(t, 25.0, checklist.CompletionPercentage())

	all := &HospitalPreparationChecklist{
		EmergencyDoctorAssigned:   true,
		SpecialistDoctorNotified:  true,
		NursingTeamReady:          true,
		AnesthesiologistAlerted:   true,
		EmergencyBedPrepared:      true,
		OperatingRoomReserved:     true,
		ICUBedAvailable:           true,
		VitalMonitorsReady:        true,
		VentilatorAvailable:       true,
		DefibrillatorReady:        true,
		EmergencyMedicationsReady: true,
		LabTestsOrdered:           true,
		ImagingReady:              true,
		BloodProductsAvailable:    true,
		PharmacyAlerted:           true,
		BloodBankNotified:         true,
	}
	assert.Equal(t, 100.0, all.CompletionPercentage())
	assert.True(t, all.AllItemsComplete())
	assert.False(t, checklist.AllItemsComplete())
}

func TestChecklist_NotesDoNotAffectCompletion(t *testing.T) {
	checklist := &HospitalPreparationChecklist{Notes: "awaiting surgeon"}
	assert.Equal(t, 0.0, checklist.CompletionPercentage())
}

func TestComputeGCSTotal(t *testing.T) {
	eyes, verbal, motor := 4, 5, 6
	a := &FirstAiderAssessment{GCSEyes: &eyes, GCSVerbal: &verbal, GCSMotor: &motor}

	a.ComputeGCSTotal()

	assert.NotNil(t, a.GCSTotal)
	assert.Equal(t, 15, *a.GCSTotal)
}

func TestComputeGCSTotal_PartialLeavesTotalUnset(t *testing.T) {
	eyes := 3
	a := &FirstAiderAssessment{GCSEyes: &eyes}

	a.ComputeGCSTotal()

	assert.Nil(t, a.GCSTotal)
}

func TestFieldUpdate_FieldNames(t *testing.T) {
	ready := true
	notes := "bay 3"
	upd := FieldUpdate{
		VitalSigns:               map[string]any{"pulse": 90},
		DoctorsReady:             &ready,
		HospitalPreparationNotes: &notes,
	}

	names := upd.FieldNames()

	assert.ElementsMatch(t, []string{"vital_signs", "doctors_ready", "hospital_preparation_notes"}, names)
	assert.False(t, upd.IsEmpty())
	assert.True(t, FieldUpdate{}.IsEmpty())
}

func TestAlertStatus_IsFinal(t *testing.T) {
	assert.True(t, AlertCompleted.IsFinal())
	assert.True(t, AlertCancelled.IsFinal())
	assert.True(t, AlertExpired.IsFinal())
	assert.False(t, AlertDispatched.IsFinal())
	assert.False(t, AlertPending.IsFinal())
}
