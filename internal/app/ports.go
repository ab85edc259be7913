package app

import (
	"context"

	"cyberlaw-chat/internal/backend"
	"cyberlaw-chat/internal/model"
)

// Storage and collaborator ports for the chat service. The gorm repositories
// satisfy the store interfaces; tests substitute in-memory fakes.

type SessionStore interface {
	Create(session *model.Session) error
	ListByUserID(userID uint) ([]model.Session, error)
	GetByIDAndUserID(sessionID, userID uint) (*model.Session, error)
	RenameByIDAndUserID(sessionID, userID uint, title string) error
	SetFavoriteByIDAndUserID(sessionID, userID uint, favorite bool) error
	TouchByIDAndUserID(sessionID, userID uint) error
	DeleteByIDAndUserID(sessionID, userID uint) error
}

type MessageStore interface {
	Create(message *model.Message) error
	ListBySessionID(sessionID uint, limit int) ([]model.Message, error)
	CountBySessionID(sessionID uint) (int64, error)
	DeleteBySessionID(sessionID uint) error
}

// ReplyBackend is the external chatbot service. Any error means "offline"
// and triggers the local fallback responder.
type ReplyBackend interface {
	Reply(ctx context.Context, message string, file *backend.FilePayload) (*backend.ReplyResult, error)
}

type TurnEventPublisher interface {
	Publish(ctx context.Context, event model.TurnEvent) error
}

type HistoryCache interface {
	GetHistory(ctx context.Context, sessionID uint) ([]model.Message, bool, error)
	SetHistory(ctx context.Context, sessionID uint, messages []model.Message) error
	DeleteHistory(ctx context.Context, sessionID uint) error
	MarkDirty(ctx context.Context, sessionID uint) error
	IsDirty(ctx context.Context, sessionID uint) (bool, error)
}
