package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqbot-cli/internal/bot"
)

func TestLogger_InMemoryOnly(t *testing.T) {
	l := NewLogger("")
	defer l.Close()

	l.LogChat("hello", bot.IntentGreeting, "Hello!", 5*time.Millisecond)
	l.LogChat("zzz", bot.IntentUnknown, "I'm not sure I understand.", 0)

	events := l.GetEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "hello", events[0].UserText)
	assert.Equal(t, bot.IntentGreeting, events[0].Intent)
	assert.Equal(t, bot.IntentUnknown, events[1].Intent)
}

func TestLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.log")
	l := NewLogger(path)

	l.LogChat("thanks", bot.IntentThanks, "You're welcome!", 0)
	require.NoError(t, l.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())

	var event ChatEvent
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
	assert.Equal(t, "thanks", event.UserText)
	assert.Equal(t, bot.IntentThanks, event.Intent)
	assert.Equal(t, "You're welcome!", event.BotReply)

	assert.False(t, scanner.Scan(), "expected exactly one line")
}

func TestLogger_BoundedWindow(t *testing.T) {
	l := NewLogger("")
	defer l.Close()
	l.maxSize = 3

	for i := 0; i < 5; i++ {
		l.LogChat("msg", bot.IntentUnknown, "reply", 0)
	}

	assert.Len(t, l.GetEvents(), 3)
}

func TestLogger_GetRecentEvents(t *testing.T) {
	l := NewLogger("")
	defer l.Close()

	l.LogChat("one", bot.IntentGreeting, "r1", 0)
	l.LogChat("two", bot.IntentThanks, "r2", 0)
	l.LogChat("three", bot.IntentGoodbye, "r3", 0)

	recent := l.GetRecentEvents(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "two", recent[0].UserText)
	assert.Equal(t, "three", recent[1].UserText)

	assert.Empty(t, l.GetRecentEvents(0))
	assert.Len(t, l.GetRecentEvents(10), 3)
}

func TestLogger_BadPathDoesNotFail(t *testing.T) {
	l := NewLogger(filepath.Join(t.TempDir(), "no", "such", "dir", "t.log"))
	defer l.Close()

	l.LogChat("hello", bot.IntentGreeting, "Hello!", 0)
	assert.Len(t, l.GetEvents(), 1)
}
