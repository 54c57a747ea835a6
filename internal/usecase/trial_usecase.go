package usecase

import (
	"context"
	"errors"

	"clinical-trial-backend/internal/converter"
	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/domain/entity"
	"clinical-trial-backend/internal/domain/repository"
	"clinical-trial-backend/internal/trial"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrApplicationNotFound = errors.New("application not found")

type TrialUsecase interface {
	ListTrials(ctx context.Context, page, limit int) ([]dto.TrialResponse, int64, error)
	CreateTrial(ctx context.Context, req *dto.CreateTrialRequest) (*dto.TrialResponse, error)

	Applications(userID uuid.UUID) []trial.Application
	AddApplication(userID uuid.UUID, req *dto.AddApplicationRequest) trial.Application
	UpdateApplicationStatus(userID uuid.UUID, applicationID string, status trial.ApplicationStatus) error
	RecentActivities(userID uuid.UUID, limit int) []trial.Activity
	Dashboard(userID uuid.UUID) trial.Summary
}

type trialUsecase struct {
	log       *logrus.Logger
	trialRepo repository.ClinicalTrialRepository
	sessions  *trial.Registry
}

func NewTrialUsecase(
	log *logrus.Logger,
	trialRepo repository.ClinicalTrialRepository,
	sessions *trial.Registry,
) TrialUsecase {
	return &trialUsecase{
		log:       log,
		trialRepo: trialRepo,
		sessions:  sessions,
	}
}

func (u *trialUsecase) ListTrials(ctx context.Context, page, limit int) ([]dto.TrialResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	trials, total, err := u.trialRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list trials: %+v", err)
		return nil, 0, err
	}

	return converter.TrialsToResponses(trials), total, nil
}

func (u *trialUsecase) CreateTrial(ctx context.Context, req *dto.CreateTrialRequest) (*dto.TrialResponse, error) {
	t := &entity.ClinicalTrial{
		Title:        req.Title,
		Description:  req.Description,
		Phase:        req.Phase,
		Condition:    req.Condition,
		Location:     req.Location,
		Participants: req.Participants,
		Duration:     req.Duration,
	}

	if err := u.trialRepo.Create(ctx, t); err != nil {
		u.log.Warnf("Failed to create trial: %+v", err)
		return nil, err
	}

	return converter.TrialToResponse(t), nil
}

func (u *trialUsecase) Applications(userID uuid.UUID) []trial.Application {
	return u.sessions.Session(userID).Applications()
}

func (u *trialUsecase) AddApplication(userID uuid.UUID, req *dto.AddApplicationRequest) trial.Application {
	status := trial.ApplicationStatus(req.Status)
	if status == "" {
		status = trial.StatusPending
	}

	return u.sessions.Session(userID).AddApplication(trial.ApplicationInput{
		TrialName: req.TrialName,
		TrialID:   req.TrialID,
		Status:    status,
		Phase:     req.Phase,
		Condition: req.Condition,
		Location:  req.Location,
	})
}

// UpdateApplicationStatus surfaces the store's silent no-op as a NotFound
// error so the HTTP edge can answer 404. Session state stays untouched
// either way.
func (u *trialUsecase) UpdateApplicationStatus(userID uuid.UUID, applicationID string, status trial.ApplicationStatus) error {
	if !u.sessions.Session(userID).UpdateApplicationStatus(applicationID, status) {
		return ErrApplicationNotFound
	}
	return nil
}

func (u *trialUsecase) RecentActivities(userID uuid.UUID, limit int) []trial.Activity {
	return u.sessions.Session(userID).RecentActivities(limit)
}

func (u *trialUsecase) Dashboard(userID uuid.UUID) trial.Summary {
	return trial.BuildSummary(u.sessions.Session(userID))
}
