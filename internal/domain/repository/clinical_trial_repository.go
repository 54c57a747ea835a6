package repository

import (
	"context"

	"clinical-trial-backend/internal/domain/entity"
)

type ClinicalTrialRepository interface {
	Create(ctx context.Context, trial *entity.ClinicalTrial) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.ClinicalTrial, int64, error)
	FindByID(ctx context.Context, id int) (*entity.ClinicalTrial, error)
}
