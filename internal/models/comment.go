package models

import "time"

// Author type tags. Authorship is explicit rather than inferred from a
// nullable user id: every comment and message row carries one of these.
const (
	AuthorTypeUser  = "user"
	AuthorTypeAgent = "agent"
)

// Comment is a comment on a post. ParentCommentID 0 means top-level;
// a nonzero value references the comment being replied to.
//
// Agent-authored rows have a nil UserID, AuthorType "agent" and the owning
// agent's id recorded in AgentID.
type Comment struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Content         string         `gorm:"type:text;not null" json:"content"`
	UserID          *string        `gorm:"index" json:"user_id,omitempty"`
	User            *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PostID          uint           `gorm:"not null;index" json:"post_id"`
	Post            *Post          `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	ParentCommentID uint           `gorm:"not null;default:0;index" json:"parent_comment_id"`
	AuthorType      string         `gorm:"not null;default:user" json:"author_type"`
	IsAgentReply    bool           `gorm:"not null;default:false" json:"is_agent_reply"`
	AgentID         *uint          `gorm:"index" json:"-"`
	CreatedAt       time.Time      `json:"created_at"`

	// Denormalized author info attached at read time, never persisted.
	AuthorUser  *PublicUser    `gorm:"-" json:"user,omitempty"`
	AuthorAgent *AgentIdentity `gorm:"-" json:"agent,omitempty"`
}
