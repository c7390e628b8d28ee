package server

import (
	"paulgram/internal/models"
	"paulgram/internal/service"

	"github.com/gofiber/fiber/v2"
)

type agentChatRequest struct {
	Content string `json:"content"`
	AgentID uint   `json:"agentId"`
}

// AgentChat stores the user's chat message, generates one agent reply and
// returns the reply with the agent's public identity.
func (s *Server) AgentChat(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req agentChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	reply, agent, err := s.chatService.SendMessage(c.UserContext(), service.SendMessageInput{
		UserID:  userID,
		AgentID: req.AgentID,
		Content: req.Content,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": reply,
		"agent":   agent.Identity(),
	})
}

// GetChatHistory returns the authenticated user's conversation with an agent,
// oldest first.
func (s *Server) GetChatHistory(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	agentID := c.QueryInt("agentId")
	if agentID <= 0 {
		return fail(c, models.NewValidationError("Invalid or missing agentId"))
	}

	messages, agent, err := s.chatService.History(c.UserContext(), userID, uint(agentID))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"messages": messages,
		"agent":    agent.Identity(),
	})
}
