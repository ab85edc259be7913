package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cyberlaw-chat/internal/news"
)

type NewsHandler struct {
	client *news.Client
	logger *zap.Logger
}

func NewNewsHandler(client *news.Client, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{client: client, logger: logger}
}

func (h *NewsHandler) Feed(c *gin.Context) {
	// CORS headers go out on both success and failure so browser clients can
	// read the error body.
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")

	payload, err := h.client.Fetch(c.Request.Context())
	if err != nil {
		h.logger.Error("fetch news feed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}
