package service

import (
	"context"
	"errors"
	"testing"

	"devlink/internal/github"
	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Test User", Avatar: "//g/x"}, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = 1
			return nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint) (*models.Post, error)
	listFn           func(context.Context) ([]models.Post, error)
	saveFn           func(context.Context, *models.Post) error
	deleteFn         func(context.Context, uint) error
	deleteByUserIDFn func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Save(ctx context.Context, post *models.Post) error {
	return s.saveFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = 1
			return nil
		},
		getByIDFn:        func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn:           func(_ context.Context) ([]models.Post, error) { return nil, nil },
		saveFn:           func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		deleteByUserIDFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn    func(context.Context, uint) (*models.Profile, error)
	listFn           func(context.Context) ([]models.Profile, error)
	createFn         func(context.Context, *models.Profile) error
	saveFn           func(context.Context, *models.Profile) error
	deleteByUserIDFn func(context.Context, uint) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Save(ctx context.Context, profile *models.Profile) error {
	return s.saveFn(ctx, profile)
}
func (s *profileRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(_ context.Context, _ uint) (*models.Profile, error) { return nil, nil },
		listFn:        func(_ context.Context) ([]models.Profile, error) { return nil, nil },
		createFn: func(_ context.Context, p *models.Profile) error {
			p.ID = 1
			return nil
		},
		saveFn:           func(_ context.Context, _ *models.Profile) error { return nil },
		deleteByUserIDFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// fetcherStub is a stub for github.RepoFetcher.
type fetcherStub struct {
	fetchFn func(context.Context, string) ([]github.Repository, error)
}

func (s *fetcherStub) FetchRepositories(ctx context.Context, username string) ([]github.Repository, error) {
	return s.fetchFn(ctx, username)
}

func assertAppError(t *testing.T, err error, code, msg string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
	if msg != "" {
		assert.Equal(t, msg, appErr.Message)
	}
}
