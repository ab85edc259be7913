package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cyberlaw-chat/internal/quiz"
)

type QuizHandler struct {
	service *quiz.Service
}

func NewQuizHandler(service *quiz.Service) *QuizHandler {
	return &QuizHandler{service: service}
}

func (h *QuizHandler) Questions(c *gin.Context) {
	questions, total, err := h.service.Sample()
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrBankMissing):
			c.JSON(http.StatusNotFound, gin.H{"error": "MCQ questions file not found"})
		case errors.Is(err, quiz.ErrBankMalformed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid questions format"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load questions"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": questions,
		"total":     total,
	})
}
