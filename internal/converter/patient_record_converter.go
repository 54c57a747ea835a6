package converter

import (
	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/domain/entity"
)

// PatientRecordToResponse converts a PatientRecord entity to its response DTO
func PatientRecordToResponse(record *entity.PatientRecord) *dto.PatientRecordResponse {
	if record == nil {
		return nil
	}

	eligibility := ""
	if record.Eligibility != nil {
		eligibility = *record.Eligibility
	}

	return &dto.PatientRecordResponse{
		ID:           record.ID,
		UserID:       record.UserID,
		Age:          record.Age,
		Sex:          record.Sex,
		WeightKg:     record.WeightKg,
		HeightCm:     record.HeightCm,
		BMI:          record.BMI,
		Cohort:       record.Cohort,
		ALT:          record.ALT,
		Creatinine:   record.Creatinine,
		SBP:          record.SBP,
		DBP:          record.DBP,
		HR:           record.HR,
		TempC:        record.TempC,
		AdverseEvent: record.AdverseEvent,
		Eligibility:  eligibility,
		CreatedAt:    record.CreatedAt,
	}
}

// PatientRecordsToResponses converts a slice of records
func PatientRecordsToResponses(records []entity.PatientRecord) []dto.PatientRecordResponse {
	responses := make([]dto.PatientRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *PatientRecordToResponse(&records[i]))
	}
	return responses
}
