package models

import "time"

// Message is one turn in a private chat between a user and an agent. There is
// no thread or session id; ordering within a (user, agent) pair is purely by
// creation time.
type Message struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	UserID       string    `gorm:"not null;index" json:"user_id"`
	User         *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AgentID      uint      `gorm:"not null;index" json:"agent_id"`
	Agent        *Agent    `gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorType   string    `gorm:"not null;default:user" json:"author_type"`
	IsAgentReply bool      `gorm:"not null;default:false" json:"is_agent_reply"`
	CreatedAt    time.Time `json:"created_at"`
}
