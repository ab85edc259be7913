package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cyberlaw-chat/internal/filescan"
)

type FileScanHandler struct {
	logger *zap.Logger
}

func NewFileScanHandler(logger *zap.Logger) *FileScanHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileScanHandler{logger: logger}
}

type FileScanRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
	Data string `json:"data" binding:"required"`
}

func (h *FileScanHandler) Analyze(c *gin.Context) {
	var req FileScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File name and data are required"})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File data must be base64 encoded"})
		return
	}

	result, err := filescan.Analyze(req.Name, req.Type, data)
	if err != nil {
		h.logger.Error("analyze file failed", zap.String("name", req.Name), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not extract text from file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}
