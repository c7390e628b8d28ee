// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"errors"
	"time"

	"paulgram/internal/llm"
	"paulgram/internal/middleware"
	"paulgram/internal/models"
	"paulgram/internal/observability"
	"paulgram/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLen = 10000

// CommentService handles comment threads and the synchronous agent replies
// they trigger.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	generator   llm.Generator
}

// CreateCommentInput carries a new comment. ParentCommentID 0 means a
// top-level comment on the post.
type CreateCommentInput struct {
	UserID          string
	PostID          uint
	ParentCommentID uint
	Content         string
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	generator llm.Generator,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		generator:   generator,
	}
}

// CreateComment persists the user's comment and then generates exactly one
// agent reply under it. The two writes are independent: if generation or the
// second insert fails, the user's comment stays and the error surfaces as a
// generic internal error.
//
// A reply's agent response is parented to the first-level parent id, not to
// the just-posted reply, so agent replies in a thread all attach directly
// under the root reply comment.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Comment cannot be empty")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}
	if in.PostID == 0 {
		return nil, models.NewValidationError("Post ID must be positive")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}
	agent := post.Agent

	userID := in.UserID
	comment := &models.Comment{
		Content:         in.Content,
		UserID:          &userID,
		PostID:          in.PostID,
		ParentCommentID: in.ParentCommentID,
		AuthorType:      models.AuthorTypeUser,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	// The user's comment is committed at this point; everything below is the
	// agent reply, with no compensating rollback on failure.
	var conversationHistory string
	if in.ParentCommentID > 0 {
		if _, err := s.commentRepo.GetByID(ctx, in.ParentCommentID); err == nil {
			// The thread query runs after the insert above, so it includes
			// the comment just posted.
			thread, err := s.commentRepo.ListByParent(ctx, in.ParentCommentID)
			if err != nil {
				return nil, err
			}
			conversationHistory = llm.BuildCommentThread(&agent, thread, in.Content)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	prompt := llm.BuildCommentPrompt(&agent, post, conversationHistory, in.Content)

	start := time.Now()
	replyText, err := s.generator.GenerateText(ctx, prompt)
	observability.ObserveGeneration("comment", start, err)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "agent comment reply generation failed",
			"post_id", in.PostID, "agent_id", agent.ID, "error", err.Error())
		return nil, models.NewInternalError(nil)
	}

	targetParentID := comment.ID
	if in.ParentCommentID > 0 {
		targetParentID = in.ParentCommentID
	}

	agentID := agent.ID
	reply := &models.Comment{
		Content:         replyText,
		PostID:          in.PostID,
		ParentCommentID: targetParentID,
		AuthorType:      models.AuthorTypeAgent,
		IsAgentReply:    true,
		AgentID:         &agentID,
	}
	if err := s.commentRepo.Create(ctx, reply); err != nil {
		middleware.Logger.ErrorContext(ctx, "agent comment reply insert failed",
			"post_id", in.PostID, "agent_id", agent.ID, "error", err.Error())
		return nil, models.NewInternalError(nil)
	}

	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	decorateComment(created, agent.Identity())
	return created, nil
}

// ListComments returns all comments on a post in creation order, with agent
// identity attached to agent-authored rows.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	identity := post.Agent.Identity()
	for _, c := range comments {
		decorateComment(c, identity)
	}
	return comments, nil
}

// ListReplies returns a comment and its direct replies in creation order.
func (s *CommentService) ListReplies(ctx context.Context, commentID uint) (*models.Comment, []*models.Comment, error) {
	parent, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, nil, err
	}

	post, err := s.postRepo.GetByID(ctx, parent.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.NewNotFoundError("Post", parent.PostID)
		}
		return nil, nil, err
	}

	replies, err := s.commentRepo.ListByParent(ctx, commentID)
	if err != nil {
		return nil, nil, err
	}

	identity := post.Agent.Identity()
	decorateComment(parent, identity)
	for _, r := range replies {
		decorateComment(r, identity)
	}
	return parent, replies, nil
}

// decorateComment attaches the author's public fields. Agent authorship is an
// explicit tag on the row, not inferred from a missing user id.
func decorateComment(c *models.Comment, identity models.AgentIdentity) {
	if c.AuthorType == models.AuthorTypeAgent {
		id := identity
		c.AuthorAgent = &id
		return
	}
	if c.User != nil {
		pub := c.User.Public()
		c.AuthorUser = &pub
	}
}
