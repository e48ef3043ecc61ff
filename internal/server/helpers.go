package server

import (
	"devlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user's id placed in locals by
// AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// parseID extracts a route parameter by name as a positive uint. On failure
// it writes a 400 JSON response and reports ok=false; the handler must then
// return nil so the committed response is not overwritten.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid ID"))
		return 0, false
	}
	return uint(id), true
}
