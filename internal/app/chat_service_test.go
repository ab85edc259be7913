package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberlaw-chat/internal/backend"
	"cyberlaw-chat/internal/model"
	"cyberlaw-chat/internal/repository"
)

type fakeSessionStore struct {
	nextID   uint
	sessions map[uint]*model.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{nextID: 1, sessions: make(map[uint]*model.Session)}
}

func (f *fakeSessionStore) Create(session *model.Session) error {
	session.ID = f.nextID
	f.nextID++
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

func (f *fakeSessionStore) ListByUserID(userID uint) ([]model.Session, error) {
	var out []model.Session
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionStore) GetByIDAndUserID(sessionID, userID uint) (*model.Session, error) {
	s, ok := f.sessions[sessionID]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionStore) RenameByIDAndUserID(sessionID, userID uint, title string) error {
	s, ok := f.sessions[sessionID]
	if !ok || s.UserID != userID {
		return repository.ErrNoRowsAffected
	}
	s.Title = title
	s.UpdatedAt = time.Now()
	return nil
}

func (f *fakeSessionStore) SetFavoriteByIDAndUserID(sessionID, userID uint, favorite bool) error {
	s, ok := f.sessions[sessionID]
	if !ok || s.UserID != userID {
		return repository.ErrNoRowsAffected
	}
	s.IsFavorite = favorite
	s.UpdatedAt = time.Now()
	return nil
}

func (f *fakeSessionStore) TouchByIDAndUserID(sessionID, userID uint) error {
	s, ok := f.sessions[sessionID]
	if !ok || s.UserID != userID {
		return repository.ErrNoRowsAffected
	}
	s.UpdatedAt = time.Now()
	return nil
}

func (f *fakeSessionStore) DeleteByIDAndUserID(sessionID, userID uint) error {
	s, ok := f.sessions[sessionID]
	if ok && s.UserID == userID {
		delete(f.sessions, sessionID)
	}
	return nil
}

type fakeMessageStore struct {
	nextID   uint
	messages []model.Message
	failNext bool
}

func (f *fakeMessageStore) Create(message *model.Message) error {
	if f.failNext {
		f.failNext = false
		return errors.New("insert failed")
	}
	f.nextID++
	message.ID = f.nextID
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageStore) ListBySessionID(sessionID uint, limit int) ([]model.Message, error) {
	var out []model.Message
	for _, m := range f.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakeMessageStore) CountBySessionID(sessionID uint) (int64, error) {
	var n int64
	for _, m := range f.messages {
		if m.SessionID == sessionID {
			n++
		}
	}
	return n, nil
}

func (f *fakeMessageStore) DeleteBySessionID(sessionID uint) error {
	kept := f.messages[:0]
	for _, m := range f.messages {
		if m.SessionID != sessionID {
			kept = append(kept, m)
		}
	}
	f.messages = kept
	return nil
}

type fakeBackend struct {
	result *backend.ReplyResult
	err    error
}

func (f *fakeBackend) Reply(_ context.Context, _ string, _ *backend.FilePayload) (*backend.ReplyResult, error) {
	return f.result, f.err
}

type fakePublisher struct {
	events []model.TurnEvent
}

func (f *fakePublisher) Publish(_ context.Context, event model.TurnEvent) error {
	f.events = append(f.events, event)
	return nil
}

func newTestService(sessions *fakeSessionStore, messages MessageStore, b ReplyBackend, events TurnEventPublisher) *ChatService {
	return NewChatService(sessions, messages, b, events, nil, nil)
}

func TestSendTurnOnlineBackend(t *testing.T) {
	sessions := newFakeSessionStore()
	messages := &fakeMessageStore{}
	events := &fakePublisher{}
	svc := newTestService(sessions, messages, &fakeBackend{
		result: &backend.ReplyResult{Reply: "backend answer", Intent: "hacking"},
	}, events)

	result, err := svc.SendTurn(context.Background(), SendTurnInput{
		UserID:  7,
		Content: "someone is hacking my email account, what can I do",
	})
	require.NoError(t, err)

	assert.False(t, result.Offline)
	assert.Equal(t, "hacking", result.Intent)
	assert.Equal(t, "backend answer", result.AssistantMessage.Content)
	assert.NotContains(t, result.AssistantMessage.Content, "Offline mode")

	require.Len(t, events.events, 1)
	assert.False(t, events.events[0].Offline)
	assert.Equal(t, result.Session.ID, events.events[0].SessionID)
}

func TestSendTurnOfflineFallback(t *testing.T) {
	sessions := newFakeSessionStore()
	messages := &fakeMessageStore{}
	svc := newTestService(sessions, messages, &fakeBackend{err: errors.New("connection refused")}, &fakePublisher{})

	result, err := svc.SendTurn(context.Background(), SendTurnInput{
		UserID:  7,
		Content: "what does section 66 say about hacking?",
	})
	require.NoError(t, err)

	assert.True(t, result.Offline)
	assert.Equal(t, "hacking", result.Intent)
	assert.Contains(t, result.AssistantMessage.Content, "Section 66 of IT Act 2000")
	assert.Contains(t, result.AssistantMessage.Content, "Offline mode")
}

func TestSendTurnCreatesSessionAndDerivesTitle(t *testing.T) {
	sessions := newFakeSessionStore()
	messages := &fakeMessageStore{}
	svc := newTestService(sessions, messages, &fakeBackend{err: errors.New("down")}, &fakePublisher{})

	long := "What are the penalties for identity theft under the IT Act in India?"
	result, err := svc.SendTurn(context.Background(), SendTurnInput{UserID: 1, Content: long})
	require.NoError(t, err)

	require.NotNil(t, result.Session)
	wantTitle := string([]rune(long)[:30]) + "..."
	assert.Equal(t, wantTitle, result.Session.Title)
	assert.Equal(t, wantTitle, sessions.sessions[result.Session.ID].Title)
}

func TestSendTurnShortFirstMessageKeepsFullTitle(t *testing.T) {
	sessions := newFakeSessionStore()
	messages := &fakeMessageStore{}
	svc := newTestService(sessions, messages, &fakeBackend{err: errors.New("down")}, &fakePublisher{})

	result, err := svc.SendTurn(context.Background(), SendTurnInput{UserID: 1, Content: "Is hacking a crime?"})
	require.NoError(t, err)
	assert.Equal(t, "Is hacking a crime?", result.Session.Title)
}

func TestSendTurnSecondTurnDoesNotRetitle(t *testing.T) {
	sessions := newFakeSessionStore()
	messages := &fakeMessageStore{}
	svc := newTestService(sessions, messages, &fakeBackend{err: errors.New("down")}, &fakePublisher{})

	first, err := svc.SendTurn(context.Background(), SendTurnInput{UserID: 1, Content: "first question about hacking"})
	require.NoError(t, err)

	_, err = svc.SendTurn(context.Background(), SendTurnInput{
		UserID:    1,
		SessionID: first.Session.ID,
		Content:   "a completely different follow-up",
	})
	require.NoError(t, err)
	assert.Equal(t, "first question about hacking", sessions.sessions[first.Session.ID].Title)
}

func TestSendTurnMessageOrdering(t *testing.T) {
	sessions := newFakeSessionStore()
	messages := &fakeMessageStore{}
	svc := newTestService(sessions, messages, &fakeBackend{err: errors.New("down")}, &fakePublisher{})

	result, err := svc.SendTurn(context.Background(), SendTurnInput{UserID: 1, Content: "hello hacking"})
	require.NoError(t, err)

	stored, err := messages.ListBySessionID(result.Session.ID, 0)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.True(t, stored[0].IsUser)
	assert.False(t, stored[1].IsUser)
	assert.True(t, stored[0].ID < stored[1].ID)
}

func TestSendTurnAttachmentNoted(t *testing.T) {
	sessions := newFakeSessionStore()
	messages := &fakeMessageStore{}
	svc := newTestService(sessions, messages, &fakeBackend{err: errors.New("down")}, &fakePublisher{})

	result, err := svc.SendTurn(context.Background(), SendTurnInput{
		UserID:     1,
		Content:    "please review this notice",
		Attachment: &Attachment{Name: "notice.pdf", Type: "application/pdf"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.UserMessage.Content, "[Attached: notice.pdf]"))
}

func TestSendTurnAssistantPersistFailureKeepsUserMessage(t *testing.T) {
	sessions := newFakeSessionStore()
	messages := &fakeMessageStore{}
	svc := newTestService(sessions, messages, &fakeBackend{err: errors.New("down")}, &fakePublisher{})

	first, err := svc.SendTurn(context.Background(), SendTurnInput{UserID: 1, Content: "ok first turn"})
	require.NoError(t, err)

	// User write succeeds, assistant write fails.
	messagesBefore := len(messages.messages)
	svcFailing := newTestService(sessions, &failSecondWriteStore{inner: messages}, &fakeBackend{err: errors.New("down")}, &fakePublisher{})
	_, err = svcFailing.SendTurn(context.Background(), SendTurnInput{
		UserID:    1,
		SessionID: first.Session.ID,
		Content:   "second turn",
	})
	require.Error(t, err)
	assert.Equal(t, messagesBefore+1, len(messages.messages))
	assert.True(t, messages.messages[len(messages.messages)-1].IsUser)
}

// failSecondWriteStore lets the first Create through and fails the next one.
type failSecondWriteStore struct {
	inner  *fakeMessageStore
	writes int
}

func (f *failSecondWriteStore) Create(message *model.Message) error {
	f.writes++
	if f.writes > 1 {
		return errors.New("insert failed")
	}
	return f.inner.Create(message)
}

func (f *failSecondWriteStore) ListBySessionID(sessionID uint, limit int) ([]model.Message, error) {
	return f.inner.ListBySessionID(sessionID, limit)
}

func (f *failSecondWriteStore) CountBySessionID(sessionID uint) (int64, error) {
	return f.inner.CountBySessionID(sessionID)
}

func (f *failSecondWriteStore) DeleteBySessionID(sessionID uint) error {
	return f.inner.DeleteBySessionID(sessionID)
}

func TestSendTurnRejectsEmptyContent(t *testing.T) {
	svc := newTestService(newFakeSessionStore(), &fakeMessageStore{}, &fakeBackend{}, &fakePublisher{})
	_, err := svc.SendTurn(context.Background(), SendTurnInput{UserID: 1, Content: "   "})
	assert.ErrorIs(t, err, ErrMessageEmpty)
}

func TestSendTurnForeignSessionNotFound(t *testing.T) {
	sessions := newFakeSessionStore()
	messages := &fakeMessageStore{}
	svc := newTestService(sessions, messages, &fakeBackend{err: errors.New("down")}, &fakePublisher{})

	owned, err := svc.SendTurn(context.Background(), SendTurnInput{UserID: 1, Content: "mine"})
	require.NoError(t, err)

	_, err = svc.SendTurn(context.Background(), SendTurnInput{
		UserID:    2,
		SessionID: owned.Session.ID,
		Content:   "not mine",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// No message was written to the foreign session.
	stored, _ := messages.ListBySessionID(owned.Session.ID, 0)
	assert.Len(t, stored, 2)
}

func TestRenameSessionUnifiedNotFound(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := newTestService(sessions, &fakeMessageStore{}, &fakeBackend{}, &fakePublisher{})

	session, err := svc.CreateSession(CreateSessionInput{UserID: 1, Title: "mine"})
	require.NoError(t, err)

	// Missing session and someone else's session report the same error.
	assert.ErrorIs(t, svc.RenameSession(1, 999, "new title"), ErrSessionNotFound)
	assert.ErrorIs(t, svc.RenameSession(2, session.ID, "new title"), ErrSessionNotFound)
	assert.Equal(t, "mine", sessions.sessions[session.ID].Title)

	require.NoError(t, svc.RenameSession(1, session.ID, "renamed"))
	assert.Equal(t, "renamed", sessions.sessions[session.ID].Title)
}

func TestRenameSessionRejectsEmptyTitle(t *testing.T) {
	svc := newTestService(newFakeSessionStore(), &fakeMessageStore{}, &fakeBackend{}, &fakePublisher{})
	assert.ErrorIs(t, svc.RenameSession(1, 1, "  "), ErrTitleEmpty)
}

func TestSetFavoriteUnifiedNotFound(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := newTestService(sessions, &fakeMessageStore{}, &fakeBackend{}, &fakePublisher{})

	session, err := svc.CreateSession(CreateSessionInput{UserID: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetFavorite(2, session.ID, true), ErrSessionNotFound)
	assert.False(t, sessions.sessions[session.ID].IsFavorite)

	require.NoError(t, svc.SetFavorite(1, session.ID, true))
	assert.True(t, sessions.sessions[session.ID].IsFavorite)
}

func TestDeleteSessionRemovesMessages(t *testing.T) {
	sessions := newFakeSessionStore()
	messages := &fakeMessageStore{}
	svc := newTestService(sessions, messages, &fakeBackend{err: errors.New("down")}, &fakePublisher{})

	result, err := svc.SendTurn(context.Background(), SendTurnInput{UserID: 1, Content: "about hacking"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(1, result.Session.ID))
	assert.NotContains(t, sessions.sessions, result.Session.ID)
	stored, _ := messages.ListBySessionID(result.Session.ID, 0)
	assert.Empty(t, stored)
}

func TestCreateSessionDefaultTitle(t *testing.T) {
	svc := newTestService(newFakeSessionStore(), &fakeMessageStore{}, &fakeBackend{}, &fakePublisher{})
	session, err := svc.CreateSession(CreateSessionInput{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "New Chat", session.Title)
}

func TestComposeReplyStateless(t *testing.T) {
	messages := &fakeMessageStore{}
	svc := newTestService(newFakeSessionStore(), messages, &fakeBackend{err: errors.New("down")}, &fakePublisher{})

	reply, intent, offline, err := svc.ComposeReply(context.Background(), "how do I report cyber fraud", nil)
	require.NoError(t, err)
	assert.True(t, offline)
	assert.Equal(t, "cybercrime_report", intent)
	assert.Contains(t, reply, "cybercrime.gov.in")
	assert.Empty(t, messages.messages)
}
