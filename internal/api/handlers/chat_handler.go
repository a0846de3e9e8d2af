package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faqbot-cli/internal/service"
)

// ChatHandler handles chat-related API requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest is the body for POST /api/v1/chat
type ChatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
		return
	}

	reply, intent := h.chatService.Chat(req.Message)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"reply":  reply,
			"intent": intent,
		},
	})
}

// Reset handles POST /api/v1/reset
func (h *ChatHandler) Reset(c *gin.Context) {
	h.chatService.Reset()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session reset",
	})
}

// GetHistory handles GET /api/v1/history
func (h *ChatHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.chatService.History(),
	})
}

// ListIntents handles GET /api/v1/intents
func (h *ChatHandler) ListIntents(c *gin.Context) {
	intents := h.chatService.Intents()

	type intentInfo struct {
		Key      string   `json:"key"`
		Patterns []string `json:"patterns"`
	}
	out := make([]intentInfo, 0, len(intents))
	for _, intent := range intents {
		out = append(out, intentInfo{
			Key:      string(intent.Key),
			Patterns: intent.Patterns,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    out,
	})
}
