package repository

import (
	"context"
	"errors"

	"devlink/internal/cache"
	"devlink/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for developer profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Save(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetByUserID returns nil, nil when no profile exists for the user so
// callers can distinguish "absent" from a real failure.
func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, userID)
	return nil
}
