package main

import (
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"faqbot-cli/internal/audit"
	"faqbot-cli/internal/config"
	faqmcp "faqbot-cli/internal/mcp"
	"faqbot-cli/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to configuration file")
		transcript = flag.String("transcript", "", "Append a JSON-lines transcript of all chats")
	)
	flag.Parse()

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}
	if *transcript != "" {
		cfg.Transcript.Enabled = true
		cfg.Transcript.Path = *transcript
	}

	transcriptLogger := audit.NewLogger(cfg.TranscriptPath())
	defer transcriptLogger.Close()

	chatService := service.NewChatService(transcriptLogger)

	serverName := cfg.Name
	if cfg.MCPServer != nil && cfg.MCPServer.Name != "" {
		serverName = cfg.MCPServer.Name
	}

	mcpServer := server.NewMCPServer(
		serverName,
		cfg.Version,
		server.WithToolCapabilities(true),
	)

	toolManager := faqmcp.NewToolManager(chatService)
	if err := toolManager.RegisterTools(mcpServer); err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}

	log.Printf("Starting FAQ assistant MCP server (stdio)")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
