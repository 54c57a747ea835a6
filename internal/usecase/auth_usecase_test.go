package usecase

import (
	"context"
	"testing"
	"time"

	"clinical-trial-backend/config"
	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/domain/entity"
	"clinical-trial-backend/internal/trial"
	"clinical-trial-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

type fakeUserRepo struct {
	users     []entity.User
	createErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = uuid.New()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func newAuthFixture(repo *fakeUserRepo) AuthUsecase {
	return NewAuthUsecase(quietLogger(), repo, testJWTService(), deadRedis(), trial.NewRegistry())
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		repo := &fakeUserRepo{}
		uc := newAuthFixture(repo)

		resp, err := uc.Register(ctx, &dto.RegisterRequest{
			Username: "alice",
			Password: "s3cret-pass",
			Role:     entity.RolePatient,
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, entity.RolePatient, resp.Role)

		require.Len(t, repo.users, 1)
		stored := repo.users[0]
		assert.NotEqual(t, "s3cret-pass", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		repo := &fakeUserRepo{}
		uc := newAuthFixture(repo)

		_, err := uc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw123456", Role: entity.RolePatient})
		require.NoError(t, err)

		_, err = uc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw123456", Role: entity.RoleAdmin})
		assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	})

	t.Run("racing duplicate surfaces as the same error", func(t *testing.T) {
		repo := &fakeUserRepo{createErr: &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "idx_users_username",
		}}
		uc := newAuthFixture(repo)

		_, err := uc.Register(ctx, &dto.RegisterRequest{Username: "bob", Password: "pw123456", Role: entity.RolePatient})
		assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown username", func(t *testing.T) {
		uc := newAuthFixture(&fakeUserRepo{})

		_, err := uc.Login(ctx, &dto.LoginRequest{Username: "ghost", Password: "whatever"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeUserRepo{}
		uc := newAuthFixture(repo)

		_, err := uc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "right-pass", Role: entity.RolePatient})
		require.NoError(t, err)

		_, err = uc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrong-pass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthUsecase_CurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := &fakeUserRepo{}
		uc := newAuthFixture(repo)

		_, err := uc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw123456", Role: entity.RoleAdmin})
		require.NoError(t, err)

		resp, err := uc.CurrentUser(ctx, repo.users[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, entity.RoleAdmin, resp.Role)
	})

	t.Run("missing", func(t *testing.T) {
		uc := newAuthFixture(&fakeUserRepo{})

		_, err := uc.CurrentUser(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, isDuplicateKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}, "username"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_other"}, "username"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "idx_users_username"}, "username"))
	assert.False(t, isDuplicateKeyError(assert.AnError, "username"))
}
