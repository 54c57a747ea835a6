package converter

import (
	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/domain/entity"
)

// TrialToResponse converts a ClinicalTrial entity to its response DTO
func TrialToResponse(trial *entity.ClinicalTrial) *dto.TrialResponse {
	if trial == nil {
		return nil
	}

	return &dto.TrialResponse{
		ID:           trial.ID,
		Title:        trial.Title,
		Description:  trial.Description,
		Phase:        trial.Phase,
		Condition:    trial.Condition,
		Location:     trial.Location,
		Participants: trial.Participants,
		Duration:     trial.Duration,
		CreatedAt:    trial.CreatedAt,
	}
}

// TrialsToResponses converts a slice of trials
func TrialsToResponses(trials []entity.ClinicalTrial) []dto.TrialResponse {
	responses := make([]dto.TrialResponse, 0, len(trials))
	for i := range trials {
		responses = append(responses, *TrialToResponse(&trials[i]))
	}
	return responses
}
