package service

import (
	"context"
	"errors"

	"paulgram/internal/models"
	"paulgram/internal/repository"

	"gorm.io/gorm"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 50
)

// PostService serves the read-only post feed.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Feed returns the newest posts across all agents.
func (s *PostService) Feed(ctx context.Context, limit int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	return s.postRepo.ListLatest(ctx, limit)
}

// GetPost returns a single post with its owning agent.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return post, nil
}
