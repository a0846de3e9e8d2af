// Package audit records chat exchanges as JSON lines for later inspection.
package audit

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"faqbot-cli/internal/bot"
)

// ChatEvent is one recorded exchange.
type ChatEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	UserText  string        `json:"user_text"`
	Intent    bot.IntentKey `json:"intent"`
	BotReply  string        `json:"bot_reply"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// Logger appends chat events to an optional transcript file and keeps a
// bounded in-memory window. File errors are reported once at construction
// and never make a chat call fail.
type Logger struct {
	mutex   sync.RWMutex
	events  []ChatEvent
	maxSize int
	logFile *os.File
	encoder *json.Encoder
}

// NewLogger creates a transcript logger. path may be empty, in which case
// events are only kept in memory.
func NewLogger(path string) *Logger {
	l := &Logger{
		events:  make([]ChatEvent, 0),
		maxSize: 1000,
	}

	if path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			l.logFile = f
			l.encoder = json.NewEncoder(f)
		} else {
			log.Printf("Warning: Failed to open transcript file: %v", err)
		}
	}

	return l
}

// LogChat records one exchange.
func (l *Logger) LogChat(userText string, intent bot.IntentKey, reply string, duration time.Duration) {
	l.logEvent(ChatEvent{
		Timestamp: time.Now(),
		UserText:  userText,
		Intent:    intent,
		BotReply:  reply,
		Duration:  duration,
	})
}

func (l *Logger) logEvent(event ChatEvent) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.events = append(l.events, event)
	if len(l.events) > l.maxSize {
		l.events = l.events[len(l.events)-l.maxSize:]
	}

	if l.encoder != nil {
		if err := l.encoder.Encode(event); err != nil {
			log.Printf("Warning: Failed to write transcript event: %v", err)
		}
	}
}

// GetEvents returns a copy of the in-memory event window.
func (l *Logger) GetEvents() []ChatEvent {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	out := make([]ChatEvent, len(l.events))
	copy(out, l.events)
	return out
}

// GetRecentEvents returns the last n events.
func (l *Logger) GetRecentEvents(n int) []ChatEvent {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if n <= 0 || len(l.events) == 0 {
		return []ChatEvent{}
	}
	start := len(l.events) - n
	if start < 0 {
		start = 0
	}
	out := make([]ChatEvent, len(l.events[start:]))
	copy(out, l.events[start:])
	return out
}

// Close flushes and closes the transcript file, if any.
func (l *Logger) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		l.encoder = nil
		return err
	}
	return nil
}
