package main

import (
	"flag"
	"fmt"
	"log"

	"faqbot-cli/internal/api"
	"faqbot-cli/internal/audit"
	"faqbot-cli/internal/config"
	"faqbot-cli/internal/service"
)

var (
	configPath string
	port       string
	transcript string
)

func init() {
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&port, "port", "", "Port to listen on (overrides config)")
	flag.StringVar(&transcript, "transcript", "", "Append a JSON-lines transcript of all chats")
}

func main() {
	flag.Parse()

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}
	if transcript != "" {
		cfg.Transcript.Enabled = true
		cfg.Transcript.Path = transcript
	}

	transcriptLogger := audit.NewLogger(cfg.TranscriptPath())
	defer transcriptLogger.Close()

	chatService := service.NewChatService(transcriptLogger)
	router := api.SetupRouter(chatService, cfg.Version)

	if port == "" {
		port = "8080"
		if cfg.Server != nil {
			port = fmt.Sprintf("%d", cfg.Server.Port)
		}
	}

	addr := ":" + port
	fmt.Printf("FAQ assistant web server starting on http://localhost%s\n", addr)
	fmt.Printf("\nAPI Endpoints:\n")
	fmt.Printf("   GET  /api/v1/health    - Health check\n")
	fmt.Printf("   POST /api/v1/chat      - Send a message, get the reply\n")
	fmt.Printf("   GET  /api/v1/stats     - Conversation statistics\n")
	fmt.Printf("   GET  /api/v1/history   - Conversation history\n")
	fmt.Printf("   GET  /api/v1/intents   - Intent catalog\n")
	fmt.Printf("   POST /api/v1/reset     - Start a fresh session\n\n")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
