package command

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"faqbot-cli/internal/audit"
	"faqbot-cli/internal/bot"
)

// exit keywords recognized by the terminal loop, checked before the input
// ever reaches the responder. The responder's own goodbye intent overlaps
// with these on purpose: "goodbye" inside a longer sentence still gets a
// farewell reply without ending the session.
var exitKeywords = map[string]bool{
	"quit":    true,
	"exit":    true,
	"bye":     true,
	"goodbye": true,
}

const helpText = `Available commands:
    commands    Show this help
    stats       Show conversation statistics
    history     Show the conversation so far
    intents     List the topics I can talk about
    clear       Start a fresh session
    exit/quit   End the conversation (also: bye, goodbye)

Anything else is treated as a question for the assistant.
Note: "help" is a question, not a command; it asks about project guidance.`

// Handler executes one REPL line at a time against the responder.
type Handler struct {
	Bot   *bot.Responder
	Audit *audit.Logger
	Out   io.Writer
}

// NewHandler creates a handler writing to stdout.
func NewHandler(responder *bot.Responder, transcript *audit.Logger) *Handler {
	return &Handler{Bot: responder, Audit: transcript, Out: os.Stdout}
}

// Execute processes one line of input. It returns false when the session
// should end.
func (h *Handler) Execute(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}

	if exitKeywords[strings.ToLower(input)] {
		fmt.Fprintf(h.Out, "\n%s: Goodbye! Good luck with your studies!\n", h.Bot.Name())
		h.printStatistics()
		return false
	}

	// "help" is deliberately not a command: the responder classifies it as
	// a project-guidance question, same as the original assistant.
	switch strings.ToLower(input) {
	case "commands":
		fmt.Fprintln(h.Out, helpText)
	case "stats":
		h.printStatistics()
	case "history":
		h.printHistory()
	case "intents":
		h.printIntents()
	case "clear":
		*h.Bot = *bot.NewResponder()
		fmt.Fprintln(h.Out, "Session cleared.")
	default:
		h.chat(input)
	}
	return true
}

func (h *Handler) chat(input string) {
	start := time.Now()
	reply := h.Bot.Chat(input)

	if h.Audit != nil {
		turns := h.Bot.History()
		last := turns[len(turns)-1]
		h.Audit.LogChat(last.UserText, last.Intent, last.BotReply, time.Since(start))
	}

	fmt.Fprintf(h.Out, "\n%s: %s\n\n", h.Bot.Name(), reply)
}

func (h *Handler) printStatistics() {
	stats := h.Bot.Statistics()

	fmt.Fprintln(h.Out, strings.Repeat("=", 60))
	fmt.Fprintln(h.Out, "CONVERSATION STATISTICS")
	fmt.Fprintln(h.Out, strings.Repeat("=", 60))
	fmt.Fprintf(h.Out, "Total messages: %d\n", stats.TotalMessages)
	if len(stats.IntentDistribution) > 0 {
		fmt.Fprintln(h.Out, "\nIntent distribution:")
		// Report in table order so the output is stable
		for _, intent := range h.Bot.Intents() {
			if count := stats.IntentDistribution[intent.Key]; count > 0 {
				fmt.Fprintf(h.Out, "  %s: %d\n", intent.Key, count)
			}
		}
		if count := stats.IntentDistribution[bot.IntentUnknown]; count > 0 {
			fmt.Fprintf(h.Out, "  %s: %d\n", bot.IntentUnknown, count)
		}
	}
	fmt.Fprintln(h.Out, strings.Repeat("=", 60))
}

func (h *Handler) printHistory() {
	history := h.Bot.History()
	if len(history) == 0 {
		fmt.Fprintln(h.Out, "No conversation yet.")
		return
	}
	for _, turn := range history {
		fmt.Fprintf(h.Out, "[%s] You: %s\n", turn.Timestamp.Format("15:04:05"), turn.UserText)
		fmt.Fprintf(h.Out, "[%s] Bot: %s\n", turn.Timestamp.Format("15:04:05"), turn.BotReply)
	}
}

// intentView is the YAML shape used by the intents command.
type intentView struct {
	Intent   string   `yaml:"intent"`
	Keywords []string `yaml:"keywords"`
}

func (h *Handler) printIntents() {
	views := make([]intentView, 0, len(h.Bot.Intents()))
	for _, intent := range h.Bot.Intents() {
		views = append(views, intentView{
			Intent:   string(intent.Key),
			Keywords: intent.Patterns,
		})
	}

	data, err := yaml.Marshal(views)
	if err != nil {
		fmt.Fprintf(h.Out, "Failed to render intents: %v\n", err)
		return
	}
	fmt.Fprint(h.Out, string(data))
}
