package repository

import (
	"context"
	"errors"

	"clinical-trial-backend/internal/domain/entity"
	domainRepo "clinical-trial-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicalTrialRepository struct {
	db *gorm.DB
}

func NewClinicalTrialRepository(db *gorm.DB) domainRepo.ClinicalTrialRepository {
	return &clinicalTrialRepository{db: db}
}

func (r *clinicalTrialRepository) Create(ctx context.Context, trial *entity.ClinicalTrial) error {
	return r.db.WithContext(ctx).Create(trial).Error
}

func (r *clinicalTrialRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.ClinicalTrial, int64, error) {
	var trials []entity.ClinicalTrial
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.ClinicalTrial{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("id ASC").Find(&trials).Error; err != nil {
		return nil, 0, err
	}

	return trials, total, nil
}

func (r *clinicalTrialRepository) FindByID(ctx context.Context, id int) (*entity.ClinicalTrial, error) {
	var trial entity.ClinicalTrial
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&trial).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trial, nil
}
