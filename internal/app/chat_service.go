package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"cyberlaw-chat/internal/backend"
	"cyberlaw-chat/internal/model"
	"cyberlaw-chat/internal/repository"
	"cyberlaw-chat/internal/responder"
	"cyberlaw-chat/internal/textfmt"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMessageEmpty    = errors.New("message content is empty")
	ErrTitleEmpty      = errors.New("session title is empty")
)

const (
	defaultSessionTitle = "New Chat"
	titleMaxRunes       = 30

	offlineNotice = "\n\n*(Offline mode: this answer was generated from the built-in knowledge base because the assistant backend is unreachable.)*"
)

type ChatService struct {
	sessions SessionStore
	messages MessageStore
	backend  ReplyBackend
	events   TurnEventPublisher
	history  HistoryCache
	logger   *zap.Logger
}

func NewChatService(
	sessions SessionStore,
	messages MessageStore,
	replyBackend ReplyBackend,
	events TurnEventPublisher,
	history HistoryCache,
	logger *zap.Logger,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		sessions: sessions,
		messages: messages,
		backend:  replyBackend,
		events:   events,
		history:  history,
		logger:   logger,
	}
}

type CreateSessionInput struct {
	UserID uint
	Title  string
}

type Attachment struct {
	Name string
	Type string
	Size int64
	Data string // base64
}

// SendTurnInput drives one full chat turn. SessionID zero means "no session
// selected": one is created before any message is written.
type SendTurnInput struct {
	UserID     uint
	SessionID  uint
	Content    string
	Attachment *Attachment
}

type TurnResult struct {
	Session          *model.Session `json:"session"`
	UserMessage      model.Message  `json:"user_message"`
	AssistantMessage model.Message  `json:"assistant_message"`
	Intent           string         `json:"intent"`
	Offline          bool           `json:"offline"`
}

func (s *ChatService) CreateSession(input CreateSessionInput) (*model.Session, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = defaultSessionTitle
	}

	session := &model.Session{
		UserID: input.UserID,
		Title:  title,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *ChatService) ListSessions(userID uint) ([]model.Session, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.sessions.ListByUserID(userID)
}

func (s *ChatService) DeleteSession(userID, sessionID uint) error {
	if userID == 0 || sessionID == 0 {
		return ErrInvalidInput
	}
	session, err := s.sessions.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if err := s.messages.DeleteBySessionID(sessionID); err != nil {
		return err
	}
	if err := s.sessions.DeleteByIDAndUserID(sessionID, userID); err != nil {
		return err
	}
	if s.history != nil {
		_ = s.history.DeleteHistory(context.Background(), sessionID)
	}
	return nil
}

func (s *ChatService) RenameSession(userID, sessionID uint, title string) error {
	if userID == 0 || sessionID == 0 {
		return ErrInvalidInput
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleEmpty
	}
	err := s.sessions.RenameByIDAndUserID(sessionID, userID, title)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrSessionNotFound
	}
	return err
}

func (s *ChatService) SetFavorite(userID, sessionID uint, favorite bool) error {
	if userID == 0 || sessionID == 0 {
		return ErrInvalidInput
	}
	err := s.sessions.SetFavoriteByIDAndUserID(sessionID, userID, favorite)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return ErrSessionNotFound
	}
	return err
}

// SendTurn runs one user turn end to end: resolve or create the session,
// persist the user message, obtain a reply (backend, else local fallback),
// persist the assistant message, then derive the title on the session's
// first turn. The user-message write always happens before the assistant
// write; a failure between the two leaves the user message in place.
func (s *ChatService) SendTurn(ctx context.Context, input SendTurnInput) (*TurnResult, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrMessageEmpty
	}

	started := time.Now()

	session, firstTurn, err := s.resolveSession(input.UserID, input.SessionID)
	if err != nil {
		return nil, err
	}

	userContent := content
	if input.Attachment != nil && input.Attachment.Name != "" {
		userContent += "\n\n[Attached: " + input.Attachment.Name + "]"
	}

	if s.history != nil {
		_ = s.history.MarkDirty(ctx, session.ID)
		_ = s.history.DeleteHistory(ctx, session.ID)
	}

	userMessage := model.Message{
		SessionID: session.ID,
		UserID:    input.UserID,
		Content:   userContent,
		IsUser:    true,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(&userMessage); err != nil {
		s.logger.Error("persist user message failed",
			zap.Uint("session_id", session.ID), zap.Error(err))
		return nil, err
	}

	reply, intent, offline := s.obtainReply(ctx, content, input.Attachment)
	reply = textfmt.Format(reply)

	assistantMessage := model.Message{
		SessionID: session.ID,
		UserID:    input.UserID,
		Content:   reply,
		IsUser:    false,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(&assistantMessage); err != nil {
		// The user message is already committed; the turn is abandoned and
		// the caller sees their message with no reply.
		s.logger.Error("persist assistant message failed",
			zap.Uint("session_id", session.ID), zap.Error(err))
		return nil, err
	}

	if firstTurn {
		title := deriveTitle(content)
		if err := s.sessions.RenameByIDAndUserID(session.ID, input.UserID, title); err != nil {
			s.logger.Warn("derive session title failed",
				zap.Uint("session_id", session.ID), zap.Error(err))
		} else {
			session.Title = title
		}
	} else {
		if err := s.sessions.TouchByIDAndUserID(session.ID, input.UserID); err != nil {
			s.logger.Warn("touch session failed",
				zap.Uint("session_id", session.ID), zap.Error(err))
		}
	}

	s.publishTurnEvent(ctx, model.TurnEvent{
		SessionID: session.ID,
		UserID:    input.UserID,
		Intent:    string(intent),
		Offline:   offline,
		LatencyMS: time.Since(started).Milliseconds(),
		CreatedAt: time.Now(),
	})

	return &TurnResult{
		Session:          session,
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
		Intent:           string(intent),
		Offline:          offline,
	}, nil
}

// ComposeReply is the stateless reply path: backend first, local fallback
// with the offline notice on any failure. Nothing is persisted.
func (s *ChatService) ComposeReply(ctx context.Context, message string, attachment *Attachment) (reply string, intent string, offline bool, err error) {
	content := strings.TrimSpace(message)
	if content == "" {
		return "", "", false, ErrMessageEmpty
	}
	text, in, off := s.obtainReply(ctx, content, attachment)
	return textfmt.Format(text), string(in), off, nil
}

func (s *ChatService) GetHistory(userID, sessionID uint, limit int) ([]model.Message, error) {
	if userID == 0 || sessionID == 0 {
		return nil, ErrInvalidInput
	}

	session, err := s.sessions.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	ctx := context.Background()
	if s.history != nil {
		dirty, err := s.history.IsDirty(ctx, sessionID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.history.GetHistory(ctx, sessionID); cacheErr == nil && hit {
				return trimMessages(cached, limit), nil
			}
		}
	}

	messages, err := s.messages.ListBySessionID(sessionID, limit)
	if err != nil {
		return nil, err
	}
	if s.history != nil {
		if dirty, dirtyErr := s.history.IsDirty(ctx, sessionID); dirtyErr == nil && !dirty {
			_ = s.history.SetHistory(ctx, sessionID, messages)
		}
	}
	return messages, nil
}

func (s *ChatService) resolveSession(userID, sessionID uint) (*model.Session, bool, error) {
	if sessionID == 0 {
		session, err := s.CreateSession(CreateSessionInput{UserID: userID})
		if err != nil {
			return nil, false, err
		}
		return session, true, nil
	}

	session, err := s.sessions.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return nil, false, err
	}
	if session == nil {
		return nil, false, ErrSessionNotFound
	}

	count, err := s.messages.CountBySessionID(sessionID)
	if err != nil {
		return nil, false, err
	}
	return session, count == 0, nil
}

func (s *ChatService) obtainReply(ctx context.Context, content string, attachment *Attachment) (string, responder.Intent, bool) {
	if s.backend != nil {
		var file *backend.FilePayload
		if attachment != nil {
			file = &backend.FilePayload{
				Name: attachment.Name,
				Type: attachment.Type,
				Size: attachment.Size,
				Data: attachment.Data,
			}
		}
		result, err := s.backend.Reply(ctx, content, file)
		if err == nil {
			intent := responder.Intent(result.Intent)
			if intent == "" {
				intent = responder.Classify(content)
			}
			return result.Reply, intent, false
		}
		s.logger.Warn("chat backend unreachable, falling back to rule set", zap.Error(err))
	}

	intent, reply := responder.Compose(content)
	return reply + offlineNotice, intent, true
}

func (s *ChatService) publishTurnEvent(ctx context.Context, event model.TurnEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("publish turn event failed",
			zap.Uint("session_id", event.SessionID), zap.Error(err))
	}
}

func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) > titleMaxRunes {
		return string(runes[:titleMaxRunes]) + "..."
	}
	return content
}

func trimMessages(messages []model.Message, limit int) []model.Message {
	if limit <= 0 || limit >= len(messages) {
		return messages
	}
	return messages[len(messages)-limit:]
}
