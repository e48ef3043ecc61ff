package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"devlink/internal/cache"
	"devlink/internal/collection"
	"devlink/internal/github"
	"devlink/internal/models"
	"devlink/internal/repository"
	"devlink/internal/validation"

	"github.com/google/uuid"
)

// ProfileService handles developer profiles, their embedded experience and
// education lists, account deletion and GitHub repository lookups.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	github      github.RepoFetcher
}

// ProfileInput is a partial update: nil pointer fields are left untouched,
// non-nil fields overwrite, including overwriting with an empty string.
type ProfileInput struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Status         *string `json:"status"`
	GithubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills"`
	Youtube        *string `json:"youtube"`
	Facebook       *string `json:"facebook"`
	Twitter        *string `json:"twitter"`
	Instagram      *string `json:"instagram"`
	Linkedin       *string `json:"linkedin"`
}

type ExperienceInput struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        *time.Time `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationInput struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         *time.Time `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	fetcher github.RepoFetcher,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
		github:      fetcher,
	}
}

// MyProfile returns the caller's profile with the owning user preloaded.
func (s *ProfileService) MyProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("There is no profile for this user")
	}
	return profile, nil
}

// ListProfiles returns every profile with owning users preloaded.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// GetProfileByUser returns another user's profile by their user id.
func (s *ProfileService) GetProfileByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile not found")
	}
	return profile, nil
}

// splitSkills turns a comma-separated list into trimmed entries, dropping
// blanks.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// UpsertProfile creates the caller's profile or merges the given fields into
// the existing one. Status and skills are required either way. Merge is
// field-wise: absent fields keep their stored values, present fields
// overwrite. The experience and education lists are never touched here.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uint, in ProfileInput) (*models.Profile, error) {
	var v validation.Violations
	if in.Status == nil || strings.TrimSpace(*in.Status) == "" {
		v.Add("status", "Status is required")
	}
	if in.Skills == nil || strings.TrimSpace(*in.Skills) == "" {
		v.Add("skills", "Skills is required")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	created := false
	if profile == nil {
		// embedded lists serialize as [], never null
		profile = &models.Profile{
			UserID:     userID,
			Experience: []models.Experience{},
			Education:  []models.Education{},
		}
		created = true
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&profile.Company, in.Company)
	applyString(&profile.Website, in.Website)
	applyString(&profile.Location, in.Location)
	applyString(&profile.Bio, in.Bio)
	applyString(&profile.Status, in.Status)
	applyString(&profile.GithubUsername, in.GithubUsername)
	if in.Skills != nil {
		profile.Skills = splitSkills(*in.Skills)
	}
	applyString(&profile.Social.Youtube, in.Youtube)
	applyString(&profile.Social.Facebook, in.Facebook)
	applyString(&profile.Social.Twitter, in.Twitter)
	applyString(&profile.Social.Instagram, in.Instagram)
	applyString(&profile.Social.Linkedin, in.Linkedin)

	if created {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			return nil, err
		}
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddExperience prepends a work-history entry. When the caller has no
// profile yet, a minimal one is created to hold the entry.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Profile, error) {
	var v validation.Violations
	v.Require("title", in.Title, "Title is required")
	v.Require("company", in.Company, "Company is required")
	if in.From == nil {
		v.Add("from", "From date is required")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	entry := models.Experience{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}

	return s.mutateProfile(ctx, userID, func(p *models.Profile) error {
		ed := collection.Editor[models.Experience]{}
		list, err := ed.Insert(p.Experience, entry)
		if err != nil {
			return models.NewInternalError(err)
		}
		p.Experience = list
		return nil
	})
}

// RemoveExperience deletes a work-history entry by id.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID uint, entryID string) (*models.Profile, error) {
	profile, err := s.MyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	ed := collection.Editor[models.Experience]{}
	list, _, err := ed.Remove(profile.Experience, func(e models.Experience) bool { return e.ID == entryID })
	if err != nil {
		if errors.Is(err, collection.ErrNoMatch) {
			return nil, models.NewNotFoundError("Experience entry not found")
		}
		return nil, models.NewInternalError(err)
	}

	profile.Experience = list
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddEducation prepends a schooling entry, creating a minimal profile when
// the caller has none.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Profile, error) {
	var v validation.Violations
	v.Require("school", in.School, "School is required")
	v.Require("degree", in.Degree, "Degree is required")
	v.Require("fieldofstudy", in.FieldOfStudy, "Field of study is required")
	if in.From == nil {
		v.Add("from", "From date is required")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	entry := models.Education{
		ID:           uuid.NewString(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}

	return s.mutateProfile(ctx, userID, func(p *models.Profile) error {
		ed := collection.Editor[models.Education]{}
		list, err := ed.Insert(p.Education, entry)
		if err != nil {
			return models.NewInternalError(err)
		}
		p.Education = list
		return nil
	})
}

// RemoveEducation deletes a schooling entry by id.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID uint, entryID string) (*models.Profile, error) {
	profile, err := s.MyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	ed := collection.Editor[models.Education]{}
	list, _, err := ed.Remove(profile.Education, func(e models.Education) bool { return e.ID == entryID })
	if err != nil {
		if errors.Is(err, collection.ErrNoMatch) {
			return nil, models.NewNotFoundError("Education entry not found")
		}
		return nil, models.NewInternalError(err)
	}

	profile.Education = list
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// mutateProfile loads the caller's profile, creating a bare one when absent,
// applies fn and persists the result.
func (s *ProfileService) mutateProfile(ctx context.Context, userID uint, fn func(*models.Profile) error) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	created := false
	if profile == nil {
		profile = &models.Profile{
			UserID:     userID,
			Skills:     []string{},
			Experience: []models.Experience{},
			Education:  []models.Education{},
		}
		created = true
	}

	if err := fn(profile); err != nil {
		return nil, err
	}

	if created {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// DeleteAccount removes the caller's posts, profile and user record, in that
// order.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.postRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// GithubRepos returns the user's five most recently created public GitHub
// repositories, cached briefly to stay inside the API rate limit. Upstream
// failures surface as 404 "No GitHub profile found".
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]github.Repository, error) {
	if strings.TrimSpace(username) == "" {
		return nil, models.NewValidationError("Username is required")
	}

	var repos []github.Repository
	err := cache.Aside(ctx, cache.GithubReposKey(username), &repos, cache.GithubReposTTL, func() error {
		fetched, err := s.github.FetchRepositories(ctx, username)
		if err != nil {
			return err
		}
		repos = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repos, nil
}
