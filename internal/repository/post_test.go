package repository

import (
	"context"
	"errors"
	"testing"

	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepositoryRoundTripsEmbeddedLists(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{
		UserID: 1,
		Name:   "Ada Lovelace",
		Avatar: "//www.gravatar.com/avatar/abc",
		Text:   "First post",
	}
	require.NoError(t, repo.Create(ctx, post))
	require.NotZero(t, post.ID)

	post.Likes = []models.Like{{UserID: 2}, {UserID: 1}}
	post.Comments = []models.Comment{{ID: "c1", UserID: 2, Text: "Nice"}}
	require.NoError(t, repo.Save(ctx, post))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Like{{UserID: 2}, {UserID: 1}}, got.Likes)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Nice", got.Comments[0].Text)
}

func TestPostRepositoryGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 404)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, "Post not found", appErr.Message)
}

func TestPostRepositoryListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	first := &models.Post{UserID: 1, Text: "older"}
	require.NoError(t, repo.Create(ctx, first))
	second := &models.Post{UserID: 1, Text: "newer"}
	require.NoError(t, repo.Create(ctx, second))
	// sqlite timestamps can collide within a test; force distinct ordering
	require.NoError(t, db.Exec("UPDATE posts SET created_at = datetime('now', '-1 hour') WHERE id = ?", first.ID).Error)

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Text)
	assert.Equal(t, "older", posts[1].Text)
}

func TestPostRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{UserID: 1, Text: "bye"}
	require.NoError(t, repo.Create(ctx, post))
	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	assert.Error(t, err)
}

func TestPostRepositoryDeleteByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Post{UserID: 1, Text: "mine"}))
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: 1, Text: "also mine"}))
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: 2, Text: "theirs"}))

	require.NoError(t, repo.DeleteByUserID(ctx, 1))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint(2), posts[0].UserID)
}
