package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/domain/entity"
	"clinical-trial-backend/internal/domain/repository"
	"clinical-trial-backend/internal/intake"
	"clinical-trial-backend/internal/trial"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrAgeOutOfRange is the legacy submit gate carried over from the old
// static-site script: ages outside [18, 90] are rejected at submission even
// though the form itself hints 0-120. The two ranges disagree on purpose.
var ErrAgeOutOfRange = errors.New("Age must be between 18 and 90")

const (
	legacyMinAge = 18
	legacyMaxAge = 90
)

type IntakeUsecase interface {
	Draft(userID uuid.UUID) intake.Values
	SetDraftField(userID uuid.UUID, field, rawValue string) (intake.Values, error)
	Submit(ctx context.Context, userID uuid.UUID, req *dto.SubmitFormRequest) (*entity.PatientRecord, error)
}

type intakeUsecase struct {
	log         *logrus.Logger
	recordRepo  repository.PatientRecordRepository
	sessions    *trial.Registry
	redisClient *redis.Client
}

func NewIntakeUsecase(
	log *logrus.Logger,
	recordRepo repository.PatientRecordRepository,
	sessions *trial.Registry,
	redisClient *redis.Client,
) IntakeUsecase {
	return &intakeUsecase{
		log:         log,
		recordRepo:  recordRepo,
		sessions:    sessions,
		redisClient: redisClient,
	}
}

func (u *intakeUsecase) Draft(userID uuid.UUID) intake.Values {
	return u.sessions.Session(userID).Draft().Snapshot()
}

func (u *intakeUsecase) SetDraftField(userID uuid.UUID, field, rawValue string) (intake.Values, error) {
	form := u.sessions.Session(userID).Draft()
	if err := form.SetField(field, rawValue); err != nil {
		return intake.Values{}, err
	}
	return form.Snapshot(), nil
}

// Submit persists the completed intake form. The cascade into the session's
// application store and activity feed only fires after the insert succeeds;
// a failed insert leaves the session untouched. On success the draft resets
// to empty.
func (u *intakeUsecase) Submit(ctx context.Context, userID uuid.UUID, req *dto.SubmitFormRequest) (*entity.PatientRecord, error) {
	if *req.Age < legacyMinAge || *req.Age > legacyMaxAge {
		return nil, ErrAgeOutOfRange
	}

	record := &entity.PatientRecord{
		UserID:       userID,
		Age:          *req.Age,
		Sex:          *req.Sex,
		WeightKg:     *req.WeightKg,
		HeightCm:     *req.HeightCm,
		BMI:          *req.BMI,
		Cohort:       *req.Cohort,
		ALT:          *req.ALT,
		Creatinine:   *req.Creatinine,
		SBP:          *req.SBP,
		DBP:          *req.DBP,
		HR:           *req.HR,
		TempC:        *req.TempC,
		AdverseEvent: *req.AdverseEvent,
	}

	if err := u.recordRepo.Create(ctx, record); err != nil {
		u.log.Warnf("Failed to store patient record: %+v", err)
		return nil, err
	}

	session := u.sessions.Session(userID)
	session.ResetDraft()

	if req.Trial != nil {
		session.AddApplication(applicationInputFor(req.Trial))
	}

	// The admin listing is stale now.
	if err := u.redisClient.Del(ctx, adminPatientsCacheKey).Err(); err != nil {
		u.log.Warnf("Failed to invalidate patient listing cache: %+v", err)
	}

	return record, nil
}

// applicationInputFor fills the gaps of a partially described trial the same
// way the portal did when a patient applied straight from a listing.
func applicationInputFor(info *dto.TrialApplicationInfo) trial.ApplicationInput {
	in := trial.ApplicationInput{
		TrialName: info.Title,
		TrialID:   fmt.Sprintf("TRL-%d-%d", info.TrialID, time.Now().UnixMilli()),
		Status:    trial.StatusPending,
		Phase:     info.Phase,
		Condition: info.Condition,
		Location:  info.Location,
	}
	if in.TrialName == "" {
		in.TrialName = "Clinical Trial"
	}
	if in.Phase == "" {
		in.Phase = "Unknown Phase"
	}
	if in.Condition == "" {
		in.Condition = "General"
	}
	if in.Location == "" {
		in.Location = "Unknown Location"
	}
	return in
}
