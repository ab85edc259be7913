package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"cyberlaw-chat/internal/model"
)

// ErrNoRowsAffected signals that an owner-scoped update matched nothing:
// the session is either absent or owned by another user. The two cases are
// deliberately indistinguishable.
var ErrNoRowsAffected = errors.New("no rows affected")

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *model.Session) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("create session failed: %w", err)
	}
	return nil
}

func (r *SessionRepository) ListByUserID(userID uint) ([]model.Session, error) {
	var sessions []model.Session
	if err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list sessions failed: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) GetByIDAndUserID(sessionID, userID uint) (*model.Session, error) {
	var session model.Session
	if err := r.db.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session failed: %w", err)
	}
	return &session, nil
}

func (r *SessionRepository) RenameByIDAndUserID(sessionID, userID uint, title string) error {
	res := r.db.Model(&model.Session{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Updates(map[string]interface{}{"title": title, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("rename session failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *SessionRepository) SetFavoriteByIDAndUserID(sessionID, userID uint, favorite bool) error {
	res := r.db.Model(&model.Session{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Updates(map[string]interface{}{"is_favorite": favorite, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("set session favorite failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// TouchByIDAndUserID bumps updated_at so the session sorts to the top of the
// owner's list after a turn.
func (r *SessionRepository) TouchByIDAndUserID(sessionID, userID uint) error {
	res := r.db.Model(&model.Session{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Update("updated_at", time.Now())
	if res.Error != nil {
		return fmt.Errorf("touch session failed: %w", res.Error)
	}
	return nil
}

// DeleteByIDAndUserID is idempotent: deleting an absent session is not an
// error at this layer.
func (r *SessionRepository) DeleteByIDAndUserID(sessionID, userID uint) error {
	if err := r.db.Where("id = ? AND user_id = ?", sessionID, userID).Delete(&model.Session{}).Error; err != nil {
		return fmt.Errorf("delete session failed: %w", err)
	}
	return nil
}
