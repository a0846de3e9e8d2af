// Package bot implements the rule-based FAQ responder: input normalization,
// substring keyword matching against a fixed intent catalog, canned reply
// selection and an in-memory session log for usage statistics.
package bot

import (
	"fmt"
	"strings"
	"time"
)

// Turn is one user-message/bot-reply exchange in the session log.
type Turn struct {
	Timestamp time.Time `json:"timestamp"`
	UserText  string    `json:"user_text"`
	Intent    IntentKey `json:"intent"`
	BotReply  string    `json:"bot_reply"`
}

// Stats summarizes the session log.
type Stats struct {
	TotalMessages      int               `json:"total_messages"`
	IntentDistribution map[IntentKey]int `json:"intent_distribution"`
}

// Responder maps free-text queries to intents and canned replies, recording
// every exchange in an instance-owned session log. Not safe for concurrent
// use; callers that serve multiple goroutines must serialize access
// (see service.ChatService).
type Responder struct {
	name    string
	intents []Intent
	history []Turn
}

// NewResponder creates a responder with the built-in intent catalog and an
// empty session log.
func NewResponder() *Responder {
	return &Responder{
		name:    "AI Course Assistant",
		intents: IntentTable,
		history: make([]Turn, 0, 16),
	}
}

// Name returns the assistant's display name.
func (r *Responder) Name() string {
	return r.name
}

// Intents returns the intent catalog in match-priority order.
func (r *Responder) Intents() []Intent {
	return r.intents
}

// IdentifyIntent scans normalized input against the catalog in table order
// and returns the first intent any of whose patterns is a substring of the
// input. Substring containment is deliberate: "github" inside a longer word
// still matches. Returns IntentUnknown when nothing matches.
func (r *Responder) IdentifyIntent(normalized string) IntentKey {
	for _, intent := range r.intents {
		for _, pattern := range intent.Patterns {
			if strings.Contains(normalized, pattern) {
				return intent.Key
			}
		}
	}
	return IntentUnknown
}

// generateResponse returns the first canned reply for the intent, or the
// fallback for IntentUnknown. A key absent from the catalog means the
// catalog itself is broken, so it panics rather than returning an error.
func (r *Responder) generateResponse(intent IntentKey) string {
	if intent == IntentUnknown {
		return FallbackResponse
	}
	for _, candidate := range r.intents {
		if candidate.Key == intent {
			return candidate.Responses[0]
		}
	}
	panic(fmt.Sprintf("bot: intent %q missing from catalog", intent))
}

// Chat processes one user message and returns the reply. Exactly one Turn
// is appended to the session log per call, including for empty input, which
// classifies as unknown.
func (r *Responder) Chat(userInput string) string {
	r.history = append(r.history, Turn{
		Timestamp: time.Now().Truncate(time.Second),
		UserText:  userInput,
	})

	normalized := Normalize(userInput)
	intent := r.IdentifyIntent(normalized)
	reply := r.generateResponse(intent)

	turn := &r.history[len(r.history)-1]
	turn.Intent = intent
	turn.BotReply = reply

	return reply
}

// Statistics aggregates the session log. A Turn with an unset intent counts
// as unknown, though every completed Chat call sets one.
func (r *Responder) Statistics() Stats {
	distribution := make(map[IntentKey]int)
	for _, turn := range r.history {
		intent := turn.Intent
		if intent == "" {
			intent = IntentUnknown
		}
		distribution[intent]++
	}
	return Stats{
		TotalMessages:      len(r.history),
		IntentDistribution: distribution,
	}
}

// History returns a copy of the session log to prevent external mutation.
func (r *Responder) History() []Turn {
	out := make([]Turn, len(r.history))
	copy(out, r.history)
	return out
}
