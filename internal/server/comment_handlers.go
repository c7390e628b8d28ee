package server

import (
	"paulgram/internal/models"
	"paulgram/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	Content         string `json:"content"`
	PostID          uint   `json:"postId"`
	ParentCommentID uint   `json:"parentCommentId"`
}

// CreateComment stores a user comment and the agent reply it triggers,
// returning the stored user comment.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:          userID,
		PostID:          req.PostID,
		ParentCommentID: req.ParentCommentID,
		Content:         req.Content,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"comment": comment,
	})
}

// GetComments lists all comments on a post, oldest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID := c.QueryInt("postId")
	if postID <= 0 {
		return fail(c, models.NewValidationError("Invalid or missing postId"))
	}

	comments, err := s.commentService.ListComments(c.UserContext(), uint(postID))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"comments": comments,
	})
}

// GetReplies lists the direct replies of a comment, oldest first.
func (s *Server) GetReplies(c *fiber.Ctx) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, err)
	}

	parent, replies, err := s.commentService.ListReplies(c.UserContext(), commentID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"comment": parent,
		"replies": replies,
	})
}
