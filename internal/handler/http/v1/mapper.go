package v1

import "github.com/almamutuguti/Haven-Backend-sub000/internal/models"

func alertFromCreateRequest(dto CreateAlertRequest) *models.EmergencyAlert {
	return &models.EmergencyAlert{
		EmergencyType: models.EmergencyType(dto.EmergencyType),
		Description:   dto.Description,
		Priority:      models.AlertPriority(dto.Priority),
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		Address:       dto.Address,
	}
}

func alertToResponse(alert *models.EmergencyAlert) *AlertResponse {
	return &AlertResponse{
		ID:                   alert.ID,
		AlertID:              alert.AlertID,
		ReporterID:           alert.ReporterID,
		EmergencyType:        string(alert.EmergencyType),
		Description:          alert.Description,
		Priority:             string(alert.Priority),
		Latitude:             alert.Latitude,
		Longitude:            alert.Longitude,
		Address:              alert.Address,
		Status:               string(alert.Status),
		IsActive:             alert.IsActive,
		IsVerified:           alert.IsVerified,
		VerificationAttempts: alert.VerificationAttempts,
		VerifiedAt:           alert.VerifiedAt,
		DispatchedAt:         alert.DispatchedAt,
		CompletedAt:          alert.CompletedAt,
		CancelledAt:          alert.CancelledAt,
		CreatedAt:            alert.CreatedAt,
		UpdatedAt:            alert.UpdatedAt,
	}
}

func alertsToResponses(alerts []*models.EmergencyAlert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = alertToResponse(alert)
	}
	return responses
}

func updatesToResponses(updates []*models.EmergencyUpdate) []*TimelineEntryResponse {
	responses := make([]*TimelineEntryResponse, len(updates))
	for i, update := range updates {
		responses[i] = &TimelineEntryResponse{
			ID:             update.ID,
			UpdateType:     string(update.UpdateType),
			PreviousStatus: string(update.PreviousStatus),
			NewStatus:      string(update.NewStatus),
			Details:        update.Details,
			CreatedBy:      update.CreatedBy,
			CreatedAt:      update.CreatedAt,
		}
	}
	return responses
}

func communicationFromCreateRequest(dto CreateCommunicationRequest) *models.EmergencyHospitalCommunication {
	return &models.EmergencyHospitalCommunication{
		AlertID:                 dto.AlertID,
		HospitalID:              dto.HospitalID,
		Priority:                models.AlertPriority(dto.Priority),
		VictimName:              dto.VictimName,
		VictimAge:               dto.VictimAge,
		VictimGender:            models.Gender(dto.VictimGender),
		ChiefComplaint:          dto.ChiefComplaint,
		VitalSigns:              dto.VitalSigns,
		InitialAssessment:       dto.InitialAssessment,
		FirstAidProvided:        dto.FirstAidProvided,
		EstimatedArrivalMinutes: dto.EstimatedArrivalMinutes,
		RequiredSpecialties:     dto.RequiredSpecialties,
		EquipmentNeeded:         dto.EquipmentNeeded,
		BloodTypeRequired:       dto.BloodTypeRequired,
	}
}

func communicationToResponse(comm *models.EmergencyHospitalCommunication) *CommunicationResponse {
	return &CommunicationResponse{
		ID:                       comm.ID,
		AlertID:                  comm.AlertID,
		AlertReferenceID:         comm.AlertReferenceID,
		HospitalID:               comm.HospitalID,
		FirstAiderID:             comm.FirstAiderID,
		FirstAiderName:           comm.FirstAiderName,
		FirstAiderPhone:          comm.FirstAiderPhone,
		Status:                   string(comm.Status),
		Priority:                 string(comm.Priority),
		VictimName:               comm.VictimName,
		VictimAge:                comm.VictimAge,
		VictimGender:             string(comm.VictimGender),
		ChiefComplaint:           comm.ChiefComplaint,
		VitalSigns:               comm.VitalSigns,
		InitialAssessment:        comm.InitialAssessment,
		FirstAidProvided:         comm.FirstAidProvided,
		EstimatedArrivalMinutes:  comm.EstimatedArrivalMinutes,
		EstimatedArrivalTime:     comm.EstimatedArrivalTime,
		RequiredSpecialties:      comm.RequiredSpecialties,
		EquipmentNeeded:          comm.EquipmentNeeded,
		BloodTypeRequired:        comm.BloodTypeRequired,
		CommunicationAttempts:    comm.CommunicationAttempts,
		LastCommunicationAttempt: comm.LastCommunicationAttempt,
		HospitalAcknowledgedAt:   comm.HospitalAcknowledgedAt,
		HospitalAcknowledgedBy:   comm.HospitalAcknowledgedBy,
		DoctorsReady:             comm.DoctorsReady,
		NursesReady:              comm.NursesReady,
		EquipmentReady:           comm.EquipmentReady,
		BedReady:                 comm.BedReady,
		BloodAvailable:           comm.BloodAvailable,
		HospitalPreparationNotes: comm.HospitalPreparationNotes,
		SentToHospitalAt:         comm.SentToHospitalAt,
		HospitalReadyAt:          comm.HospitalReadyAt,
		PatientArrivedAt:         comm.PatientArrivedAt,
		CreatedAt:                comm.CreatedAt,
		UpdatedAt:                comm.UpdatedAt,
	}
}

func communicationsToResponses(comms []*models.EmergencyHospitalCommunication) []*CommunicationResponse {
	responses := make([]*CommunicationResponse, len(comms))
	for i, comm := range comms {
		responses[i] = communicationToResponse(comm)
	}
	return responses
}

func fieldUpdateFromRequest(dto UpdateCommunicationFieldsRequest) models.FieldUpdate {
	return models.FieldUpdate{
		VitalSigns:               dto.VitalSigns,
		FirstAidProvided:         dto.FirstAidProvided,
		EstimatedArrivalMinutes:  dto.EstimatedArrivalMinutes,
		DoctorsReady:             dto.DoctorsReady,
		NursesReady:              dto.NursesReady,
		EquipmentReady:           dto.EquipmentReady,
		BedReady:                 dto.BedReady,
		BloodAvailable:           dto.BloodAvailable,
		HospitalPreparationNotes: dto.HospitalPreparationNotes,
	}
}

func checklistUpdateFromRequest(dto UpdateChecklistRequest) models.ChecklistUpdate {
	return models.ChecklistUpdate{
		EmergencyDoctorAssigned:   dto.EmergencyDoctorAssigned,
		SpecialistDoctorNotified:  dto.SpecialistDoctorNotified,
		NursingTeamReady:          dto.NursingTeamReady,
		AnesthesiologistAlerted:   dto.AnesthesiologistAlerted,
		EmergencyBedPrepared:      dto.EmergencyBedPrepared,
		OperatingRoomReserved:     dto.OperatingRoomReserved,
		ICUBedAvailable:           dto.ICUBedAvailable,
		VitalMonitorsReady:        dto.VitalMonitorsReady,
		VentilatorAvailable:       dto.VentilatorAvailable,
		DefibrillatorReady:        dto.DefibrillatorReady,
		EmergencyMedicationsReady: dto.EmergencyMedicationsReady,
		LabTestsOrdered:           dto.LabTestsOrdered,
		ImagingReady:              dto.ImagingReady,
		BloodProductsAvailable:    dto.BloodProductsAvailable,
		PharmacyAlerted:           dto.PharmacyAlerted,
		BloodBankNotified:         dto.BloodBankNotified,
		Notes:                     dto.Notes,
	}
}

func checklistToResponse(checklist *models.HospitalPreparationChecklist) *ChecklistResponse {
	return &ChecklistResponse{
		ID:                        checklist.ID,
		CommunicationID:           checklist.CommunicationID,
		EmergencyDoctorAssigned:   checklist.EmergencyDoctorAssigned,
		SpecialistDoctorNotified:  checklist.SpecialistDoctorNotified,
		NursingTeamReady:          checklist.NursingTeamReady,
		AnesthesiologistAlerted:   checklist.AnesthesiologistAlerted,
		EmergencyBedPrepared:      checklist.EmergencyBedPrepared,
		OperatingRoomReserved:     checklist.OperatingRoomReserved,
		ICUBedAvailable:           checklist.ICUBedAvailable,
		VitalMonitorsReady:        checklist.VitalMonitorsReady,
		VentilatorAvailable:       checklist.VentilatorAvailable,
		DefibrillatorReady:        checklist.DefibrillatorReady,
		EmergencyMedicationsReady: checklist.EmergencyMedicationsReady,
		LabTestsOrdered:           checklist.LabTestsOrdered,
		ImagingReady:              checklist.ImagingReady,
		BloodProductsAvailable:    checklist.BloodProductsAvailable,
		PharmacyAlerted:           checklist.PharmacyAlerted,
		BloodBankNotified:         checklist.BloodBankNotified,
		ChecklistCompleted:        checklist.ChecklistCompleted,
		CompletionPercentage:      checklist.CompletionPercentage(),
		CompletedAt:               checklist.CompletedAt,
		CompletedBy:               checklist.CompletedBy,
		Notes:                     checklist.Notes,
		CreatedAt:                 checklist.CreatedAt,
		UpdatedAt:                 checklist.UpdatedAt,
	}
}

func assessmentFromRequest(dto SubmitAssessmentRequest) *models.FirstAiderAssessment {
	return &models.FirstAiderAssessment{
		GCSEyes:                 dto.GCSEyes,
		GCSVerbal:               dto.GCSVerbal,
		GCSMotor:                dto.GCSMotor,
		HeartRate:               dto.HeartRate,
		BloodPressureSystolic:   dto.BloodPressureSystolic,
		BloodPressureDiastolic:  dto.BloodPressureDiastolic,
		RespiratoryRate:         dto.RespiratoryRate,
		OxygenSaturation:        dto.OxygenSaturation,
		Temperature:             dto.Temperature,
		MechanismOfInjury:       dto.MechanismOfInjury,
		InjuriesNoted:           dto.InjuriesNoted,
		PainLevel:               dto.PainLevel,
		KnownAllergies:          dto.KnownAllergies,
		CurrentMedications:      dto.CurrentMedications,
		PastMedicalHistory:      dto.PastMedicalHistory,
		LastOralIntake:          dto.LastOralIntake,
		InterventionsProvided:   dto.InterventionsProvided,
		MedicationsAdministered: dto.MedicationsAdministered,
		TriageCategory:          models.TriageCategory(dto.TriageCategory),
		SceneObservations:       dto.SceneObservations,
		SafetyConcerns:          dto.SafetyConcerns,
	}
}
