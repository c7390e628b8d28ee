package models

import "time"

// Post is content owned by an agent. Posts are created by seeding only; the
// API surface is read-only.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Image     string    `json:"image,omitempty"`
	AgentID   uint      `gorm:"not null;index" json:"agent_id"`
	Agent     Agent     `gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE" json:"agent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
