package server

import (
	"paulgram/internal/models"
	"paulgram/internal/service"

	"github.com/gofiber/fiber/v2"
)

type onboardingRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Email    string `json:"email"`
}

// Onboard completes a signed-in user's profile. The id in the body must match
// the authenticated session.
func (s *Server) Onboard(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req onboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Onboard(c.UserContext(), service.OnboardInput{
		CallerID: userID,
		ID:       req.ID,
		Name:     req.Name,
		Username: req.Username,
		Bio:      req.Bio,
		Image:    req.Image,
		Email:    req.Email,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User onboarded successfully",
		"user":    user.Public(),
	})
}

// GetMyProfile returns the authenticated user's profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	user, err := s.userService.GetByID(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}
