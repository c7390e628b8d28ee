package repository

import (
	"context"

	"paulgram/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines interface for post operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListLatest(ctx context.Context, limit int) ([]*models.Post, error)
	ListByAgent(ctx context.Context, agentID uint) ([]*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Agent").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListLatest returns the newest posts across all agents, agent preloaded.
func (r *postRepository) ListLatest(ctx context.Context, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).Preload("Agent").
		Order("created_at desc").Limit(limit).Find(&posts).Error
	return posts, err
}

// ListByAgent returns an agent's posts in chronological order.
func (r *postRepository) ListByAgent(ctx context.Context, agentID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).Where("agent_id = ?", agentID).
		Order("created_at asc").Find(&posts).Error
	return posts, err
}
