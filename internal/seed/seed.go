// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"errors"
	"fmt"
	"log"
	"os"

	"paulgram/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// AgentSpec is one agent definition in the seed file, with the posts that
// should exist on its profile.
type AgentSpec struct {
	Name     string   `yaml:"name"`
	Username string   `yaml:"username"`
	Avatar   string   `yaml:"avatar"`
	Bio      string   `yaml:"bio"`
	Context  string   `yaml:"context"`
	Active   bool     `yaml:"active"`
	Posts    []string `yaml:"posts"`
}

type seedFile struct {
	Agents []AgentSpec `yaml:"agents"`
}

// LoadAgentSpecs parses a YAML seed file of agent definitions.
func LoadAgentSpecs(path string) ([]AgentSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(file.Agents) == 0 {
		return nil, fmt.Errorf("seed file %s defines no agents", path)
	}
	return file.Agents, nil
}

// Agents upserts the given agent definitions, keyed by username. Posts are
// only created when the agent is new, so re-running the seeder leaves an
// existing profile untouched.
func Agents(db *gorm.DB, specs []AgentSpec) error {
	for _, spec := range specs {
		var existing models.Agent
		err := db.Where("username = ?", spec.Username).First(&existing).Error
		switch {
		case err == nil:
			log.Printf("agent %q already exists, skipping", spec.Username)
			continue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("look up agent %q: %w", spec.Username, err)
		}

		agent := models.Agent{
			Name:     spec.Name,
			Username: spec.Username,
			Avatar:   spec.Avatar,
			Bio:      spec.Bio,
			Context:  spec.Context,
			Active:   spec.Active,
		}
		if err := db.Create(&agent).Error; err != nil {
			return fmt.Errorf("create agent %q: %w", spec.Username, err)
		}

		for _, content := range spec.Posts {
			post := models.Post{
				Content: content,
				AgentID: agent.ID,
			}
			if err := db.Create(&post).Error; err != nil {
				return fmt.Errorf("create post for agent %q: %w", spec.Username, err)
			}
		}
		log.Printf("created agent %q with %d posts", spec.Username, len(spec.Posts))
	}
	return nil
}

// DemoUsers creates n fake onboarded users with provider-style ids. Meant for
// development databases only.
func DemoUsers(db *gorm.DB, n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			ID:        "user_" + uuid.NewString(),
			Name:      gofakeit.Name(),
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:     gofakeit.Email(),
			Image:     gofakeit.ImageURL(400, 400),
			Bio:       gofakeit.Sentence(8),
			Onboarded: true,
		}
		if err := db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("create demo user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}
