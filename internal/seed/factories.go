// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devlink/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// pastDate returns a timestamp up to maxDays in the past.
func (f *Factory) pastDate(maxDays int) time.Time {
	return time.Now().Add(-time.Duration(f.r.Intn(maxDays*24)) * time.Hour)
}

// CreateUser constructs and persists a sample user. Every seeded user shares
// the password "password123" so demo logins are possible.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    fmt.Sprintf("%d.%s", gofakeit.Number(100, 999), gofakeit.Email()),
		Password: string(hashed),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/200?u=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile constructs and persists a profile for the given user with a
// plausible career history.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		Bio:            gofakeit.Sentence(12),
		Status:         gofakeit.JobTitle(),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Skills:         []string{"Go", "PostgreSQL", "Redis", gofakeit.ProgrammingLanguage()},
		Social: models.Social{
			Twitter:  fmt.Sprintf("https://twitter.com/%s", strings.ToLower(gofakeit.Username())),
			Linkedin: fmt.Sprintf("https://linkedin.com/in/%s", strings.ToLower(gofakeit.Username())),
		},
		Experience: f.buildExperience(),
		Education:  f.buildEducation(),
	}
	for _, override := range overrides {
		override(profile)
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (f *Factory) buildExperience() []models.Experience {
	count := 1 + f.r.Intn(3)
	entries := make([]models.Experience, 0, count)
	for i := 0; i < count; i++ {
		from := f.pastDate(365 * 5)
		entry := models.Experience{
			ID:          uuid.NewString(),
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        &from,
			Current:     i == 0,
			Description: gofakeit.Sentence(10),
		}
		if !entry.Current {
			to := from.Add(time.Duration(90+f.r.Intn(700)) * 24 * time.Hour)
			entry.To = &to
		}
		entries = append(entries, entry)
	}
	return entries
}

func (f *Factory) buildEducation() []models.Education {
	from := f.pastDate(365 * 10)
	to := from.Add(time.Duration(365*3) * 24 * time.Hour)
	return []models.Education{{
		ID:           uuid.NewString(),
		School:       fmt.Sprintf("%s University", gofakeit.City()),
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         &from,
		To:           &to,
		Description:  gofakeit.Sentence(8),
	}}
}

// CreatePost constructs and persists a post authored by the given user, with
// a spread of creation times so listings look organic.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:    user.ID,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Text:      gofakeit.Paragraph(1, 3, 8, " "),
		Likes:     []models.Like{},
		Comments:  []models.Comment{},
		CreatedAt: f.pastDate(90),
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// AddLikes records likes on the post from a random subset of users.
func (f *Factory) AddLikes(post *models.Post, users []*models.User) error {
	for _, u := range users {
		if f.r.Intn(2) == 0 {
			continue
		}
		post.Likes = append([]models.Like{{UserID: u.ID}}, post.Likes...)
	}
	return f.db.Save(post).Error
}

// AddComments records a few comments on the post from the given users.
func (f *Factory) AddComments(post *models.Post, users []*models.User) error {
	for _, u := range users {
		if f.r.Intn(3) != 0 {
			continue
		}
		comment := models.Comment{
			ID:        uuid.NewString(),
			UserID:    u.ID,
			Text:      gofakeit.Sentence(8),
			Name:      u.Name,
			Avatar:    u.Avatar,
			CreatedAt: f.pastDate(30),
		}
		post.Comments = append([]models.Comment{comment}, post.Comments...)
	}
	return f.db.Save(post).Error
}
