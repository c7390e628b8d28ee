package service

import (
	"context"
	"testing"

	"paulgram/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAgentService_List(t *testing.T) {
	t.Parallel()

	agentRepo := noopAgentRepo()
	agentRepo.listActiveFn = func(_ context.Context) ([]*models.Agent, error) {
		return []*models.Agent{{ID: 7, Username: "paulgraham", Active: true}}, nil
	}

	svc := NewAgentService(agentRepo, noopPostRepo(), nil)
	agents, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "paulgraham", agents[0].Username)
}

func TestAgentService_GetProfile_NoCache(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.listByAgentFn = func(_ context.Context, agentID uint) ([]*models.Post, error) {
		return []*models.Post{{ID: 1, AgentID: agentID, Content: "first"}}, nil
	}

	svc := NewAgentService(noopAgentRepo(), postRepo, nil)
	agent, posts, err := svc.GetProfile(context.Background(), "paulgraham")
	require.NoError(t, err)
	assert.Equal(t, "paulgraham", agent.Username)
	require.Len(t, posts, 1)
}

func TestAgentService_GetProfile_UnknownAgent(t *testing.T) {
	t.Parallel()

	agentRepo := noopAgentRepo()
	agentRepo.getByUsernameFn = func(_ context.Context, _ string) (*models.Agent, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewAgentService(agentRepo, noopPostRepo(), nil)
	_, _, err := svc.GetProfile(context.Background(), "nobody")
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestAgentService_GetProfile_CachesSecondRead(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	dbReads := 0
	agentRepo := noopAgentRepo()
	agentRepo.getByUsernameFn = func(_ context.Context, username string) (*models.Agent, error) {
		dbReads++
		return &models.Agent{ID: 7, Name: "Paul Graham", Username: username}, nil
	}

	svc := NewAgentService(agentRepo, noopPostRepo(), rdb)
	ctx := context.Background()

	_, _, err := svc.GetProfile(ctx, "paulgraham")
	require.NoError(t, err)
	_, _, err = svc.GetProfile(ctx, "paulgraham")
	require.NoError(t, err)

	assert.Equal(t, 1, dbReads)
	assert.True(t, mr.Exists("agent:profile:paulgraham"))
}
