package usecase

import (
	"context"
	"testing"

	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/domain/entity"
	"clinical-trial-backend/internal/trial"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClinicalTrialRepo struct {
	trials []entity.ClinicalTrial
}

func (f *fakeClinicalTrialRepo) Create(ctx context.Context, t *entity.ClinicalTrial) error {
	t.ID = len(f.trials) + 1
	f.trials = append(f.trials, *t)
	return nil
}

func (f *fakeClinicalTrialRepo) FindAll(ctx context.Context, limit, offset int) ([]entity.ClinicalTrial, int64, error) {
	total := int64(len(f.trials))
	if offset >= len(f.trials) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(f.trials) {
		end = len(f.trials)
	}
	return f.trials[offset:end], total, nil
}

func (f *fakeClinicalTrialRepo) FindByID(ctx context.Context, id int) (*entity.ClinicalTrial, error) {
	for i := range f.trials {
		if f.trials[i].ID == id {
			return &f.trials[i], nil
		}
	}
	return nil, nil
}

func newTrialFixture() (TrialUsecase, *fakeClinicalTrialRepo) {
	repo := &fakeClinicalTrialRepo{}
	return NewTrialUsecase(quietLogger(), repo, trial.NewRegistry()), repo
}

func TestTrialUsecase_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("create then list", func(t *testing.T) {
		uc, _ := newTrialFixture()

		created, err := uc.CreateTrial(ctx, &dto.CreateTrialRequest{
			Title:     "Migraine Prevention and Treatment Study",
			Phase:     "Phase III",
			Condition: "Migraine",
			Location:  "Boston, MA",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)

		trials, total, err := uc.ListTrials(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, trials, 1)
		assert.Equal(t, "Migraine Prevention and Treatment Study", trials[0].Title)
	})

	t.Run("pagination defaults kick in", func(t *testing.T) {
		uc, repo := newTrialFixture()
		for i := 0; i < 15; i++ {
			repo.trials = append(repo.trials, entity.ClinicalTrial{ID: i + 1, Title: "T"})
		}

		trials, total, err := uc.ListTrials(ctx, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		assert.Len(t, trials, 10)

		trials, _, err = uc.ListTrials(ctx, 2, 10)
		require.NoError(t, err)
		assert.Len(t, trials, 5)
	})
}

func TestTrialUsecase_Applications(t *testing.T) {
	userID := uuid.New()

	t.Run("add defaults status to pending", func(t *testing.T) {
		uc, _ := newTrialFixture()

		app := uc.AddApplication(userID, &dto.AddApplicationRequest{
			TrialName: "Migraine Study",
			TrialID:   "3",
			Phase:     "Phase III",
		})
		assert.Equal(t, trial.StatusPending, app.Status)
		assert.Len(t, uc.Applications(userID), 2)
	})

	t.Run("update status of a known application", func(t *testing.T) {
		uc, _ := newTrialFixture()
		app := uc.AddApplication(userID, &dto.AddApplicationRequest{TrialName: "T", TrialID: "1"})

		err := uc.UpdateApplicationStatus(userID, app.ID, trial.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, trial.StatusApproved, uc.Applications(userID)[0].Status)
	})

	t.Run("unknown application id maps to not found", func(t *testing.T) {
		uc, _ := newTrialFixture()

		err := uc.UpdateApplicationStatus(userID, "missing", trial.StatusApproved)
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestTrialUsecase_Dashboard(t *testing.T) {
	uc, _ := newTrialFixture()
	userID := uuid.New()

	sum := uc.Dashboard(userID)
	assert.Equal(t, 1, sum.AppliedTrials)
	assert.Equal(t, 5, sum.MatchingTrials)
	assert.Len(t, sum.RecentActivities, 4)

	uc.AddApplication(userID, &dto.AddApplicationRequest{TrialName: "T", TrialID: "1"})
	assert.Equal(t, 2, uc.Dashboard(userID).AppliedTrials)
}
