package repository

import (
	"context"
	"errors"

	"clinical-trial-backend/internal/domain/entity"
	domainRepo "clinical-trial-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRecordRepository struct {
	db *gorm.DB
}

func NewPatientRecordRepository(db *gorm.DB) domainRepo.PatientRecordRepository {
	return &patientRecordRepository{db: db}
}

func (r *patientRecordRepository) Create(ctx context.Context, record *entity.PatientRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *patientRecordRepository) FindAll(ctx context.Context) ([]entity.PatientRecord, error) {
	var records []entity.PatientRecord
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *patientRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PatientRecord, error) {
	var record entity.PatientRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *patientRecordRepository) UpdateEligibility(ctx context.Context, id uuid.UUID, result string) error {
	return r.db.WithContext(ctx).
		Model(&entity.PatientRecord{}).
		Where("id = ?", id).
		Update("eligibility", result).Error
}
