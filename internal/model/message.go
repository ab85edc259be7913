package model

import "time"

// Message is immutable once written. Display order within a session is
// reconstructed from CreatedAt ascending, never from client sequencing.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;index" json:"session_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	IsUser    bool      `gorm:"not null" json:"is_user"`
	CreatedAt time.Time `json:"created_at"`
}
