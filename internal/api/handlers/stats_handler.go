package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faqbot-cli/internal/service"
)

// StatsHandler handles statistics-related API requests
type StatsHandler struct {
	chatService *service.ChatService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(chatService *service.ChatService) *StatsHandler {
	return &StatsHandler{chatService: chatService}
}

// GetStatistics handles GET /api/v1/stats
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.chatService.Statistics(),
	})
}
