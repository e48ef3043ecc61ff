package server

import (
	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile returns the caller's own profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.MyProfile(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetProfiles returns every profile with owning user info.
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListProfiles(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profiles)
}

// GetProfileByUser returns a profile by its owning user's id.
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	profile, err := s.profileService.GetProfileByUser(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// UpsertProfile creates the caller's profile or merges fields into the
// existing one.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var in service.ProfileInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpsertProfile(c.UserContext(), currentUserID(c), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// DeleteAccount removes the caller's posts, profile and user record.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.UserContext(), currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "User deleted"})
}

// AddExperience prepends a work-history entry to the caller's profile.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var in service.ExperienceInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddExperience(c.UserContext(), currentUserID(c), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// RemoveExperience deletes a work-history entry from the caller's profile.
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	profile, err := s.profileService.RemoveExperience(c.UserContext(), currentUserID(c), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// AddEducation prepends a schooling entry to the caller's profile.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var in service.EducationInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), currentUserID(c), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// RemoveEducation deletes a schooling entry from the caller's profile.
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	profile, err := s.profileService.RemoveEducation(c.UserContext(), currentUserID(c), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetGithubRepos proxies the user's five most recently created public GitHub
// repositories.
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	repos, err := s.profileService.GithubRepos(c.UserContext(), c.Params("username"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(repos)
}
