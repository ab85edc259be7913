package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cyberlaw-chat/internal/checklist"
)

type ChecklistHandler struct {
	engine *checklist.Engine
}

type ChecklistRequest struct {
	ComplaintType string `json:"complaintType"`
	Details       string `json:"details"`
}

func NewChecklistHandler(engine *checklist.Engine) *ChecklistHandler {
	return &ChecklistHandler{engine: engine}
}

// Generate always succeeds once the payload validates: upstream failures are
// absorbed by the engine's static fallback.
func (h *ChecklistHandler) Generate(c *gin.Context) {
	var req ChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ComplaintType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Complaint type is required"})
		return
	}

	result := h.engine.Generate(c.Request.Context(), req.ComplaintType, req.Details)
	c.JSON(http.StatusOK, gin.H{"checklist": result})
}
