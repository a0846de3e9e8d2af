// Package mcp exposes the FAQ assistant over the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"faqbot-cli/internal/service"
)

// ToolManager manages MCP tools for the FAQ assistant
type ToolManager struct {
	chatService *service.ChatService
}

// NewToolManager creates a new tool manager
func NewToolManager(chatService *service.ChatService) *ToolManager {
	return &ToolManager{chatService: chatService}
}

// RegisterTools registers all available tools with the MCP server
func (tm *ToolManager) RegisterTools(s *server.MCPServer) error {
	chatTool := mcp.NewTool("faq_chat",
		mcp.WithDescription("Send a message to the course FAQ assistant and get its reply"),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The user message to answer"),
		),
	)
	s.AddTool(chatTool, tm.handleChatTool)

	statsTool := mcp.NewTool("faq_get_statistics",
		mcp.WithDescription("Get conversation statistics for the current session"),
	)
	s.AddTool(statsTool, tm.handleStatsTool)

	intentsTool := mcp.NewTool("faq_list_intents",
		mcp.WithDescription("List the intents the assistant can recognize, with their keywords"),
	)
	s.AddTool(intentsTool, tm.handleListIntentsTool)

	historyTool := mcp.NewTool("faq_get_history",
		mcp.WithDescription("Get the conversation history of the current session"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of turns to return (most recent first omitted)"),
		),
	)
	s.AddTool(historyTool, tm.handleHistoryTool)

	resetTool := mcp.NewTool("faq_reset_session",
		mcp.WithDescription("Discard the current session and start a fresh one"),
	)
	s.AddTool(resetTool, tm.handleResetTool)

	return nil
}

// Tool handlers

func (tm *ToolManager) handleChatTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reply, intent := tm.chatService.Chat(message)
	return mcp.NewToolResultText(fmt.Sprintf("Intent: %s\nReply: %s", intent, reply)), nil
}

func (tm *ToolManager) handleStatsTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := tm.chatService.Statistics()

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode statistics: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (tm *ToolManager) handleListIntentsTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, intent := range tm.chatService.Intents() {
		fmt.Fprintf(&sb, "%s: %s\n", intent.Key, strings.Join(intent.Patterns, ", "))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (tm *ToolManager) handleHistoryTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history := tm.chatService.History()

	limit := request.GetInt("limit", 0)
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	if len(history) == 0 {
		return mcp.NewToolResultText("No conversation yet."), nil
	}

	var sb strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&sb, "[%s] You: %s\n", turn.Timestamp.Format("15:04:05"), turn.UserText)
		fmt.Fprintf(&sb, "[%s] Bot (%s): %s\n", turn.Timestamp.Format("15:04:05"), turn.Intent, turn.BotReply)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (tm *ToolManager) handleResetTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tm.chatService.Reset()
	return mcp.NewToolResultText("Session reset."), nil
}
