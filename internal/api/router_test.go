package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqbot-cli/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(service.NewChatService(nil), "test")
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "test", resp["version"])
}

func TestChatEndpoint(t *testing.T) {
	router := newTestRouter()

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/chat", map[string]string{"message": "Hello there!"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]any)
	assert.Equal(t, "Hello! I'm your AI Course Assistant. How can I help you today?", data["reply"])
	assert.Equal(t, "greeting", data["intent"])
}

func TestChatEndpoint_UnknownIntent(t *testing.T) {
	router := newTestRouter()

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/chat", map[string]string{"message": "what's the weather"})
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	assert.Equal(t, "unknown", data["intent"])
}

func TestChatEndpoint_BadBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsAndResetEndpoints(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/api/v1/chat", map[string]string{"message": "hi"})
	doJSON(t, router, http.MethodPost, "/api/v1/chat", map[string]string{"message": "asdkjasd"})

	_, resp := doJSON(t, router, http.MethodGet, "/api/v1/stats", nil)
	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(2), data["total_messages"])

	distribution := data["intent_distribution"].(map[string]any)
	assert.Equal(t, float64(1), distribution["greeting"])
	assert.Equal(t, float64(1), distribution["unknown"])

	doJSON(t, router, http.MethodPost, "/api/v1/reset", nil)

	_, resp = doJSON(t, router, http.MethodGet, "/api/v1/stats", nil)
	data = resp["data"].(map[string]any)
	assert.Equal(t, float64(0), data["total_messages"])
}

func TestHistoryEndpoint(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/api/v1/chat", map[string]string{"message": "thanks"})

	_, resp := doJSON(t, router, http.MethodGet, "/api/v1/history", nil)
	turns := resp["data"].([]any)
	require.Len(t, turns, 1)

	turn := turns[0].(map[string]any)
	assert.Equal(t, "thanks", turn["user_text"])
	assert.Equal(t, "thanks", turn["intent"])
	assert.Equal(t, "You're welcome! Good luck with your project!", turn["bot_reply"])
}

func TestIntentsEndpoint(t *testing.T) {
	router := newTestRouter()

	_, resp := doJSON(t, router, http.MethodGet, "/api/v1/intents", nil)
	intents := resp["data"].([]any)
	require.Len(t, intents, 8)

	first := intents[0].(map[string]any)
	assert.Equal(t, "greeting", first["key"])
	assert.Contains(t, first["patterns"], "hello")
}
