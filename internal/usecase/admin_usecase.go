package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinical-trial-backend/internal/converter"
	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrPatientNotFound = errors.New("patient not found")

const (
	adminPatientsCacheKey = "admin:patients"
	adminPatientsCacheTTL = 30 * time.Second
)

type AdminUsecase interface {
	Patients(ctx context.Context) ([]dto.PatientRecordResponse, error)
	CheckEligibility(ctx context.Context, patientID uuid.UUID) (*dto.EligibilityCheckResponse, error)
}

type adminUsecase struct {
	log         *logrus.Logger
	recordRepo  repository.PatientRecordRepository
	redisClient *redis.Client
}

func NewAdminUsecase(
	log *logrus.Logger,
	recordRepo repository.PatientRecordRepository,
	redisClient *redis.Client,
) AdminUsecase {
	return &adminUsecase{
		log:         log,
		recordRepo:  recordRepo,
		redisClient: redisClient,
	}
}

// Patients returns every submitted intake record, newest first. The listing
// is cached briefly in Redis; submissions and eligibility checks invalidate
// it. A cache failure falls through to the database.
func (u *adminUsecase) Patients(ctx context.Context) ([]dto.PatientRecordResponse, error) {
	cached, err := u.redisClient.Get(ctx, adminPatientsCacheKey).Result()
	if err == nil {
		var responses []dto.PatientRecordResponse
		if err := json.Unmarshal([]byte(cached), &responses); err == nil {
			return responses, nil
		}
		u.log.Warnf("Failed to decode cached patient listing: %+v", err)
	} else if !errors.Is(err, redis.Nil) {
		u.log.Warnf("Failed to read patient listing cache: %+v", err)
	}

	records, err := u.recordRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch patient records: %+v", err)
		return nil, err
	}

	responses := converter.PatientRecordsToResponses(records)

	if payload, err := json.Marshal(responses); err == nil {
		if err := u.redisClient.Set(ctx, adminPatientsCacheKey, payload, adminPatientsCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache patient listing: %+v", err)
		}
	}

	return responses, nil
}

// CheckEligibility runs the screening rules over a stored record and writes
// the result back, mirroring the old backend's model-then-update flow.
func (u *adminUsecase) CheckEligibility(ctx context.Context, patientID uuid.UUID) (*dto.EligibilityCheckResponse, error) {
	record, err := u.recordRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrPatientNotFound
	}

	result := EvaluateEligibility(record)
	if failed := FailedScreeningRules(record); len(failed) > 0 {
		u.log.Infof("Patient %s failed screening rules: %v", patientID, failed)
	}

	if err := u.recordRepo.UpdateEligibility(ctx, patientID, result); err != nil {
		u.log.Warnf("Failed to store eligibility result: %+v", err)
		return nil, err
	}
	record.Eligibility = &result

	if err := u.redisClient.Del(ctx, adminPatientsCacheKey).Err(); err != nil {
		u.log.Warnf("Failed to invalidate patient listing cache: %+v", err)
	}

	return &dto.EligibilityCheckResponse{
		Patient: converter.PatientRecordToResponse(record),
		Result:  result,
	}, nil
}
