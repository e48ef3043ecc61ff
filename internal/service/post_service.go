package service

import (
	"context"
	"errors"
	"time"

	"devlink/internal/collection"
	"devlink/internal/models"
	"devlink/internal/repository"
	"devlink/internal/validation"

	"github.com/google/uuid"
)

// PostService handles posts and their embedded like and comment lists.
// Every list mutation is read-modify-write on the whole aggregate; the last
// concurrent writer wins.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID uint
	Text   string
}

type AddCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost creates a post, snapshotting the author's name and avatar at
// creation time.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	var v validation.Violations
	v.Require("text", in.Text, "Text is required")
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:   user.ID,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Text:     in.Text,
		Likes:    []models.Like{},
		Comments: []models.Comment{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts, most recent first.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns a single post by id.
func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// DeletePost removes a post. Existence is checked before ownership, so a
// missing post reports not-found even to a caller who would not own it.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("User not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost records the caller's like. A user can hold at most one like per
// post; the second attempt is rejected.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	ed := collection.Editor[models.Like]{
		Duplicate: func(l models.Like) bool { return l.UserID == userID },
	}
	likes, err := ed.Insert(post.Likes, models.Like{UserID: userID})
	if err != nil {
		if errors.Is(err, collection.ErrDuplicate) {
			return nil, models.NewDuplicateError("Post already liked")
		}
		return nil, models.NewInternalError(err)
	}

	post.Likes = likes
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// UnlikePost removes the caller's like. Unliking a post the caller never
// liked is an invalid state, not a silent no-op.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	ed := collection.Editor[models.Like]{}
	likes, _, err := ed.Remove(post.Likes, func(l models.Like) bool { return l.UserID == userID })
	if err != nil {
		if errors.Is(err, collection.ErrNoMatch) {
			return nil, models.NewInvalidStateError("Post has not yet been liked")
		}
		return nil, models.NewInternalError(err)
	}

	post.Likes = likes
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment prepends a comment carrying a snapshot of the commenter's name
// and avatar. Multiple comments by the same user are allowed.
func (s *PostService) AddComment(ctx context.Context, in AddCommentInput) ([]models.Comment, error) {
	var v validation.Violations
	v.Require("text", in.Text, "Text is required")
	if err := v.Err(); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Text:      in.Text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now(),
	}

	ed := collection.Editor[models.Comment]{}
	comments, err := ed.Insert(post.Comments, comment)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	post.Comments = comments
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// RemoveComment deletes a comment by id after verifying the caller wrote it.
// A missing comment reports not-found before ownership is considered.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID uint, commentID string) ([]models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	ed := collection.Editor[models.Comment]{
		Owned: func(c models.Comment) bool { return c.UserID == userID },
	}
	comments, _, err := ed.Remove(post.Comments, func(c models.Comment) bool { return c.ID == commentID })
	if err != nil {
		switch {
		case errors.Is(err, collection.ErrNoMatch):
			return nil, models.NewNotFoundError("Comment does not exist")
		case errors.Is(err, collection.ErrNotOwner):
			return nil, models.NewUnauthorizedError("User not authorized")
		}
		return nil, models.NewInternalError(err)
	}

	post.Comments = comments
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}
