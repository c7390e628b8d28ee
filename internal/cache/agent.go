package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paulgram/internal/models"

	"github.com/redis/go-redis/v9"
)

// AgentProfileTTL bounds staleness of cached agent profiles. Agents are
// seeded and effectively immutable, so a generous TTL is fine.
const AgentProfileTTL = 10 * time.Minute

func agentKey(username string) string {
	return fmt.Sprintf("agent:profile:%s", username)
}

// GetAgent returns the cached agent for a username, or (nil, nil) on a miss
// or when no Redis client is configured.
func GetAgent(ctx context.Context, rdb *redis.Client, username string) (*models.Agent, error) {
	if rdb == nil {
		return nil, nil
	}
	raw, err := rdb.Get(ctx, agentKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var agent models.Agent
	if err := json.Unmarshal([]byte(raw), &agent); err != nil {
		// Corrupt entry: drop it and treat as a miss.
		rdb.Del(ctx, agentKey(username))
		return nil, nil
	}
	return &agent, nil
}

// SetAgent stores an agent profile under its username. Best effort; callers
// ignore cache write failures. The knowledge-base context never serializes
// (json:"-"), so cached profiles must not feed the generation path.
func SetAgent(ctx context.Context, rdb *redis.Client, agent *models.Agent) error {
	if rdb == nil || agent == nil {
		return nil
	}
	raw, err := json.Marshal(agent)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, agentKey(agent.Username), raw, AgentProfileTTL).Err()
}
