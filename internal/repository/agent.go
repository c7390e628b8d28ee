package repository

import (
	"context"

	"paulgram/internal/models"

	"gorm.io/gorm"
)

// AgentRepository defines interface for agent operations
type AgentRepository interface {
	Create(ctx context.Context, agent *models.Agent) error
	GetByID(ctx context.Context, id uint) (*models.Agent, error)
	GetByUsername(ctx context.Context, username string) (*models.Agent, error)
	ListActive(ctx context.Context) ([]*models.Agent, error)
}

type agentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new AgentRepository
func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{db: db}
}

func (r *agentRepository) Create(ctx context.Context, agent *models.Agent) error {
	return r.db.WithContext(ctx).Create(agent).Error
}

func (r *agentRepository) GetByID(ctx context.Context, id uint) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.WithContext(ctx).First(&agent, id).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepository) GetByUsername(ctx context.Context, username string) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&agent).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepository) ListActive(ctx context.Context) ([]*models.Agent, error) {
	var agents []*models.Agent
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("id asc").Find(&agents).Error
	return agents, err
}
