package repository

import (
	"context"

	"clinical-trial-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRecordRepository interface {
	Create(ctx context.Context, record *entity.PatientRecord) error
	FindAll(ctx context.Context) ([]entity.PatientRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PatientRecord, error)
	UpdateEligibility(ctx context.Context, id uuid.UUID, result string) error
}
