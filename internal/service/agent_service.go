package service

import (
	"context"
	"errors"

	"paulgram/internal/cache"
	"paulgram/internal/middleware"
	"paulgram/internal/models"
	"paulgram/internal/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// AgentService serves the agent directory and profile pages.
type AgentService struct {
	agentRepo repository.AgentRepository
	postRepo  repository.PostRepository
	redis     *redis.Client
}

// NewAgentService creates a new AgentService. redis may be nil; profile
// lookups then skip the cache.
func NewAgentService(
	agentRepo repository.AgentRepository,
	postRepo repository.PostRepository,
	redisClient *redis.Client,
) *AgentService {
	return &AgentService{
		agentRepo: agentRepo,
		postRepo:  postRepo,
		redis:     redisClient,
	}
}

// List returns all active agents.
func (s *AgentService) List(ctx context.Context) ([]*models.Agent, error) {
	return s.agentRepo.ListActive(ctx)
}

// GetProfile returns an agent and its posts in chronological order. Profile
// reads go through the Redis cache when available; posts always hit the
// database.
func (s *AgentService) GetProfile(ctx context.Context, username string) (*models.Agent, []*models.Post, error) {
	agent, cacheErr := cache.GetAgent(ctx, s.redis, username)
	if cacheErr != nil {
		middleware.Logger.WarnContext(ctx, "agent cache read failed",
			"username", username, "error", cacheErr.Error())
	}

	if agent == nil {
		var err error
		agent, err = s.agentRepo.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, models.NewNotFoundError("Agent", username)
			}
			return nil, nil, err
		}
		if err := cache.SetAgent(ctx, s.redis, agent); err != nil {
			middleware.Logger.WarnContext(ctx, "agent cache write failed",
				"username", username, "error", err.Error())
		}
	}

	posts, err := s.postRepo.ListByAgent(ctx, agent.ID)
	if err != nil {
		return nil, nil, err
	}
	return agent, posts, nil
}
