package model

import "time"

// TurnEvent is an analytics record emitted after each completed chat turn and
// persisted off the request path by the queue worker.
type TurnEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;index" json:"session_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Intent    string    `gorm:"size:64;not null" json:"intent"`
	Offline   bool      `gorm:"not null" json:"offline"`
	LatencyMS int64     `gorm:"not null" json:"latency_ms"`
	CreatedAt time.Time `json:"created_at"`
}
