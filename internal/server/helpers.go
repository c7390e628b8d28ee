package server

import (
	"strconv"

	"paulgram/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam parses a positive numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated user's id set by the auth middleware.
func currentUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return "", models.NewUnauthorizedError("Unauthorized")
	}
	return userID, nil
}

// fail renders err with the status mapped from its error code.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
