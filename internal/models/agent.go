package models

import "time"

// Agent is a seeded AI persona. Context is the freeform knowledge base fed
// into every generation prompt for this persona.
type Agent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	Context   string    `gorm:"type:text;not null" json:"-"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AgentIdentity is the abbreviated agent shape attached to agent-authored
// comments, replies and chat responses.
type AgentIdentity struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// Identity returns the agent's public identity fields.
func (a *Agent) Identity() AgentIdentity {
	return AgentIdentity{
		ID:       a.ID,
		Name:     a.Name,
		Username: a.Username,
		Avatar:   a.Avatar,
	}
}
