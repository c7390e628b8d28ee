package cache

import (
	"context"
	"testing"

	"paulgram/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestAgentCache_RoundTrip(t *testing.T) {
	t.Parallel()

	mr, rdb := setupTestRedis(t)
	ctx := context.Background()

	agent := &models.Agent{
		ID:       7,
		Name:     "Paul Graham",
		Username: "paulgraham",
		Avatar:   "https://example.com/pg.jpg",
		Context:  "knowledge base text",
		Active:   true,
	}

	require.NoError(t, SetAgent(ctx, rdb, agent))
	assert.True(t, mr.Exists("agent:profile:paulgraham"))

	got, err := GetAgent(ctx, rdb, "paulgraham")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, agent.ID, got.ID)
	assert.Equal(t, agent.Name, got.Name)

	// The knowledge-base context never serializes, so the cached copy
	// comes back without it.
	assert.Empty(t, got.Context)
}

func TestAgentCache_Miss(t *testing.T) {
	t.Parallel()

	_, rdb := setupTestRedis(t)

	got, err := GetAgent(context.Background(), rdb, "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAgentCache_NilClient(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got, err := GetAgent(ctx, nil, "paulgraham")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, SetAgent(ctx, nil, &models.Agent{Username: "paulgraham"}))
}

func TestAgentCache_CorruptEntryTreatedAsMiss(t *testing.T) {
	t.Parallel()

	mr, rdb := setupTestRedis(t)
	require.NoError(t, mr.Set("agent:profile:paulgraham", "{not json"))

	got, err := GetAgent(context.Background(), rdb, "paulgraham")
	require.NoError(t, err)
	assert.Nil(t, got)

	// The bad entry was dropped.
	assert.False(t, mr.Exists("agent:profile:paulgraham"))
}

func TestAgentCache_EntryExpires(t *testing.T) {
	t.Parallel()

	mr, rdb := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetAgent(ctx, rdb, &models.Agent{Username: "paulgraham"}))
	mr.FastForward(AgentProfileTTL + 1)

	got, err := GetAgent(ctx, rdb, "paulgraham")
	require.NoError(t, err)
	assert.Nil(t, got)
}
