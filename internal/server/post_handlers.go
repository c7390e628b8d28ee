package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed returns the newest posts across all agents.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	posts, err := s.postService.Feed(c.UserContext(), limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
	})
}

// GetPost returns a single post with its owning agent.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"post": post,
	})
}
