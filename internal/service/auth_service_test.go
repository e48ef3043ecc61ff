package service

import (
	"context"
	"testing"
	"time"

	"devlink/internal/auth"
	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(userRepo *userRepoStub) (*AuthService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(userRepo, auth.NewPasswordHasher(4), tokens), tokens
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	var created *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 7
		created = u
		return nil
	}

	svc, tokens := newAuthService(repo)
	token, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada Lovelace",
		Email:    "Ada@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// password is stored hashed, never verbatim
	assert.NotEqual(t, "secret1", created.Password)
	assert.Contains(t, created.Avatar, "www.gravatar.com/avatar/")
	assert.Contains(t, created.Avatar, "s=200")

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestAuthService_Register_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(noopUserRepo())
	_, err := svc.Register(context.Background(), RegisterInput{})
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeValidationFailed, appErr.Code)
	assert.Len(t, appErr.Fields, 3)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		return &models.User{ID: 1, Email: email}, nil
	}

	svc, _ := newAuthService(repo)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Dup",
		Email:    "dup@example.com",
		Password: "secret1",
	})
	assertAppError(t, err, models.CodeValidationFailed, "User already exists")
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hasher := auth.NewPasswordHasher(4)
	hashed, err := hasher.Hash("secret1")
	require.NoError(t, err)

	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) {
		return &models.User{ID: 3, Email: "ada@example.com", Password: hashed}, nil
	}

	svc, tokens := newAuthService(repo)

	token, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)

	// wrong password and unknown email report identically
	_, err = svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrong-1"})
	assertAppError(t, err, models.CodeValidationFailed, "Invalid Credentials")

	repo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) { return nil, nil }
	_, err = svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "secret1"})
	assertAppError(t, err, models.CodeValidationFailed, "Invalid Credentials")
}

func TestAuthService_CurrentUser(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Name: "Ada"}, nil
	}

	svc, _ := newAuthService(repo)
	user, err := svc.CurrentUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
}
