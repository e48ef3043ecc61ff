package repository

import (
	"context"
	"testing"
	"time"

	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepositoryCreateAndGetPreloadsUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Ada Lovelace", Email: "ada@example.com", Password: "x", Avatar: "//g/abc"}
	require.NoError(t, users.Create(ctx, user))

	profile := &models.Profile{
		UserID: user.ID,
		Status: "Developer",
		Skills: []string{"Go", "SQL"},
		Social: models.Social{Twitter: "https://twitter.com/ada"},
	}
	require.NoError(t, profiles.Create(ctx, profile))

	got, err := profiles.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Go", "SQL"}, got.Skills)
	assert.Equal(t, "https://twitter.com/ada", got.Social.Twitter)
	assert.Equal(t, "Ada Lovelace", got.User.Name)
	assert.Equal(t, "//g/abc", got.User.Avatar)
}

func TestProfileRepositoryGetByUserIDAbsent(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileRepository(db)

	got, err := profiles.GetByUserID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileRepositorySaveRoundTripsExperience(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Dev", Email: "dev@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, user))

	profile := &models.Profile{UserID: user.ID, Status: "Developer"}
	require.NoError(t, profiles.Create(ctx, profile))

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	profile.Experience = []models.Experience{
		{ID: "e2", Title: "Senior Engineer", Company: "Initech", From: &from, Current: true},
		{ID: "e1", Title: "Engineer", Company: "Acme", From: &from},
	}
	require.NoError(t, profiles.Save(ctx, profile))

	got, err := profiles.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Experience, 2)
	assert.Equal(t, "e2", got.Experience[0].ID)
	assert.Equal(t, "e1", got.Experience[1].ID)
	assert.True(t, got.Experience[0].Current)
}

func TestProfileRepositoryList(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		user := &models.User{Name: email, Email: email, Password: "x"}
		require.NoError(t, users.Create(ctx, user))
		require.NoError(t, profiles.Create(ctx, &models.Profile{UserID: user.ID, Status: "Developer"}))
	}

	all, err := profiles.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, p := range all {
		assert.NotEmpty(t, p.User.Name)
	}
}

func TestProfileRepositoryDeleteByUserID(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Del", Email: "del@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, user))
	require.NoError(t, profiles.Create(ctx, &models.Profile{UserID: user.ID, Status: "Developer"}))

	require.NoError(t, profiles.DeleteByUserID(ctx, user.ID))

	got, err := profiles.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
