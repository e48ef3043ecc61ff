package repository

import (
	"context"
	"errors"

	"devlink/internal/cache"
	"devlink/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
// Likes and comments live inside the post aggregate, so mutations to
// them go through Save on the whole record.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post not found")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	// non-nil so an empty table serializes as [], not null
	posts := make([]models.Post, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Save(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("user_id = ?", userID).Pluck("id", &ids).Error; err != nil {
		return models.NewInternalError(err)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, ids).Error; err != nil {
		return models.NewInternalError(err)
	}
	for _, id := range ids {
		cache.InvalidatePost(ctx, id)
	}
	return nil
}
