// Package bootstrap wires runtime dependencies from configuration.
package bootstrap

import (
	"fmt"

	"paulgram/internal/cache"
	"paulgram/internal/config"
	"paulgram/internal/database"
	"paulgram/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	Migrate    bool
	SeedAgents bool
}

// InitRuntime connects to the database and Redis, runs migrations and the
// built-in agent seeder when asked. The Redis client may be nil if the server
// is unreachable; callers degrade to uncached behavior.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if opts.Migrate {
		if err := database.Migrate(db); err != nil {
			return nil, nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedAgents {
		specs, err := seed.LoadAgentSpecs(cfg.AgentsSeedFile)
		if err != nil {
			return nil, nil, fmt.Errorf("agent seed load failed: %w", err)
		}
		if err := seed.Agents(db, specs); err != nil {
			return nil, nil, fmt.Errorf("agent seeding failed: %w", err)
		}
	}

	if cfg.SeedDemoUsers && cfg.Env == "development" {
		if _, err := seed.DemoUsers(db, 10); err != nil {
			return nil, nil, fmt.Errorf("demo user seeding failed: %w", err)
		}
	}

	return db, r, nil
}
