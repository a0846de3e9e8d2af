// Package service wraps the responder for surfaces that serve multiple
// callers. The responder itself is single-caller by contract; the service
// owns the serialization.
package service

import (
	"sync"
	"time"

	"faqbot-cli/internal/audit"
	"faqbot-cli/internal/bot"
)

// ChatService provides thread-safe access to a single responder session.
type ChatService struct {
	mutex      sync.Mutex
	responder  *bot.Responder
	transcript *audit.Logger
}

// NewChatService creates a service around a fresh responder. transcript may
// be nil.
func NewChatService(transcript *audit.Logger) *ChatService {
	return &ChatService{
		responder:  bot.NewResponder(),
		transcript: transcript,
	}
}

// Chat processes one message and returns the reply with its matched intent.
func (s *ChatService) Chat(message string) (string, bot.IntentKey) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	start := time.Now()
	reply := s.responder.Chat(message)

	history := s.responder.History()
	last := history[len(history)-1]

	if s.transcript != nil {
		s.transcript.LogChat(last.UserText, last.Intent, last.BotReply, time.Since(start))
	}
	return reply, last.Intent
}

// Statistics returns the current session statistics.
func (s *ChatService) Statistics() bot.Stats {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.responder.Statistics()
}

// History returns a copy of the session log.
func (s *ChatService) History() []bot.Turn {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.responder.History()
}

// Intents returns the intent catalog.
func (s *ChatService) Intents() []bot.Intent {
	return bot.IntentTable
}

// Name returns the assistant's display name.
func (s *ChatService) Name() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.responder.Name()
}

// Reset discards the session and starts a fresh one.
func (s *ChatService) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.responder = bot.NewResponder()
}
