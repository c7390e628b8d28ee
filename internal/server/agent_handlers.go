package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetAgents lists all active agents.
func (s *Server) GetAgents(c *fiber.Ctx) error {
	agents, err := s.agentService.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"agents": agents,
	})
}

// GetAgentProfile returns an agent and its posts in chronological order.
func (s *Server) GetAgentProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	agent, posts, err := s.agentService.GetProfile(c.UserContext(), username)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"agent": agent,
		"posts": posts,
	})
}
