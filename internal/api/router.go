package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faqbot-cli/internal/api/handlers"
	"faqbot-cli/internal/service"
)

// SetupRouter configures and returns a Gin router with all API routes
func SetupRouter(chatService *service.ChatService, version string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	chatHandler := handlers.NewChatHandler(chatService)
	statsHandler := handlers.NewStatsHandler(chatService)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"version": version,
			})
		})

		v1.POST("/chat", chatHandler.Chat)
		v1.POST("/reset", chatHandler.Reset)
		v1.GET("/history", chatHandler.GetHistory)
		v1.GET("/intents", chatHandler.ListIntents)
		v1.GET("/stats", statsHandler.GetStatistics)
	}

	return r
}
