package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cyberlaw-chat/internal/app"
)

// SessionHandler serves the flat /sessions endpoints used by the web client
// for favorite toggling and renaming. Absent and not-owned sessions are
// indistinguishable: both come back as 404.
type SessionHandler struct {
	chatService *app.ChatService
}

type FavoriteRequest struct {
	SessionID  uint `json:"sessionId"`
	IsFavorite bool `json:"is_favorite"`
}

type RenameRequest struct {
	SessionID uint   `json:"sessionId"`
	Title     string `json:"title"`
}

func NewSessionHandler(chatService *app.ChatService) *SessionHandler {
	return &SessionHandler{chatService: chatService}
}

func (h *SessionHandler) SetFavorite(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID is required"})
		return
	}

	if err := h.chatService.SetFavorite(userID, req.SessionID, req.IsFavorite); err != nil {
		switch {
		case errors.Is(err, app.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session updated successfully"})
}

func (h *SessionHandler) Rename(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == 0 || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID and title are required"})
		return
	}

	if err := h.chatService.RenameSession(userID, req.SessionID, req.Title); err != nil {
		switch {
		case errors.Is(err, app.ErrTitleEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID and title are required"})
		case errors.Is(err, app.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session title updated successfully"})
}
