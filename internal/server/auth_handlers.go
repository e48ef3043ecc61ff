package server

import (
	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles new user registration and returns a signed token.
func (s *Server) Register(c *fiber.Ctx) error {
	var in service.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	token, err := s.authService.Register(c.UserContext(), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

// Login authenticates credentials and returns a signed token.
func (s *Server) Login(c *fiber.Ctx) error {
	var in service.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	token, err := s.authService.Login(c.UserContext(), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

// GetCurrentUser returns the authenticated user's record, password excluded.
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	user, err := s.authService.CurrentUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
