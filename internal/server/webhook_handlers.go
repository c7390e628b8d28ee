package server

import (
	"encoding/json"
	"strings"

	"paulgram/internal/middleware"
	"paulgram/internal/models"

	"github.com/gofiber/fiber/v2"
)

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		ImageURL       string `json:"image_url"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// ClerkWebhook receives identity-provider lifecycle events. The signature is
// verified against the raw body before the payload is trusted.
func (s *Server) ClerkWebhook(c *fiber.Ctx) error {
	if s.webhookVerifier == nil {
		middleware.Logger.ErrorContext(c.UserContext(), "webhook received but no signing secret configured")
		return fail(c, models.NewInternalError(nil))
	}

	payload := c.Body()
	err := s.webhookVerifier.Verify(
		c.Get("svix-id"),
		c.Get("svix-timestamp"),
		c.Get("svix-signature"),
		payload,
	)
	if err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "webhook signature verification failed",
			"error", err.Error())
		return fail(c, models.NewValidationError("Invalid webhook signature"))
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fail(c, models.NewValidationError("Invalid webhook payload"))
	}

	ctx := c.UserContext()
	switch event.Type {
	case "user.created":
		email := ""
		if len(event.Data.EmailAddresses) > 0 {
			email = event.Data.EmailAddresses[0].EmailAddress
		}
		name := strings.TrimSpace(event.Data.FirstName + " " + event.Data.LastName)
		if err := s.userService.HandleUserCreated(ctx, event.Data.ID, email, name, event.Data.ImageURL); err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "User created",
		})
	case "user.deleted":
		if err := s.userService.HandleUserDeleted(ctx, event.Data.ID); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "User deleted",
		})
	default:
		// Unhandled event types are acknowledged so the provider stops retrying.
		middleware.Logger.InfoContext(ctx, "ignoring webhook event", "type", event.Type)
		return c.JSON(fiber.Map{
			"message": "Webhook received",
		})
	}
}
