// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a human account. The primary key is the opaque ID issued by
// the identity provider, not a database-generated integer.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Image     string    `json:"image,omitempty"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	Onboarded bool      `gorm:"not null;default:false" json:"onboarded"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the subset of user fields attached to comments and replies.
type PublicUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
}

// Public returns the user's public fields.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Image:    u.Image,
	}
}
