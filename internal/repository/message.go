package repository

import (
	"context"

	"paulgram/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines interface for direct-chat message operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListByUserAndAgent(ctx context.Context, userID string, agentID uint) ([]*models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListByUserAndAgent returns one chat's turns ordered oldest first.
func (r *messageRepository) ListByUserAndAgent(ctx context.Context, userID string, agentID uint) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND agent_id = ?", userID, agentID).
		Order("created_at asc").Find(&messages).Error
	return messages, err
}
