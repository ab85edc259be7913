package model

import "time"

// Session is a user-owned container for an ordered sequence of chat turns.
// The title defaults to "New Chat" and is rewritten from the first user
// message unless the user renames it explicitly.
type Session struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Title      string    `gorm:"size:128;not null" json:"title"`
	IsFavorite bool      `gorm:"not null;default:false" json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
