package seed

import (
	"fmt"
	"log"

	"devlink/internal/models"

	"gorm.io/gorm"
)

// Options controls the volume of generated data.
type Options struct {
	Users        int
	PostsPerUser int
}

// DefaultOptions are sized for a small demo database.
func DefaultOptions() Options {
	return Options{Users: 10, PostsPerUser: 3}
}

// Run populates the database with demo users, profiles and posts. It refuses
// to run against a non-empty users table.
func Run(db *gorm.DB, opts Options) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("refusing to seed: users table already has %d rows", count)
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := f.CreateProfile(user); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		users = append(users, user)
	}

	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(user)
			if err != nil {
				return fmt.Errorf("create post: %w", err)
			}
			if err := f.AddLikes(post, users); err != nil {
				return fmt.Errorf("add likes: %w", err)
			}
			if err := f.AddComments(post, users); err != nil {
				return fmt.Errorf("add comments: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users with profiles and %d posts each", opts.Users, opts.PostsPerUser)
	return nil
}
