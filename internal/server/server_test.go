package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movefunnel/internal/observability"
	"movefunnel/internal/server"
	"movefunnel/internal/services/assistant"
	"movefunnel/internal/services/engagement"
	"movefunnel/internal/services/insight"
	"movefunnel/internal/services/scan"
	"movefunnel/internal/services/session"
	"movefunnel/internal/store"
)

type harness struct {
	t       *testing.T
	handler http.Handler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	metrics := observability.NewMetrics()
	sessions, err := session.NewManager(store.NewMemoryStore(), nil, metrics, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sessions.Close() })

	srv := server.New(server.Config{Addr: ":0"}, server.Deps{
		Sessions:  sessions,
		Assistant: assistant.New(nil, nil, metrics, assistant.Options{}),
		Insight:   insight.New(nil, nil, metrics, insight.Options{}),
		Scanner:   scan.New(0, scan.WithPicker(func(int) int { return 0 })),
		Ticker:    engagement.NewTicker(func(n int) int { return n - 1 }),
		Metrics:   metrics,
		Now:       func() time.Time { return time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC) },
	})
	return &harness{t: t, handler: srv.Handler()}
}

func (h *harness) do(method, path, body string) (int, map[string]any) {
	h.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

func (h *harness) newSession() string {
	h.t.Helper()
	code, body := h.do(http.MethodPost, "/api/sessions", "")
	require.Equal(h.t, http.StatusCreated, code)
	return body["sessionId"].(string)
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func TestChat_Fallback_OK(t *testing.T) {
	h := newHarness(t)
	code, body := h.do(http.MethodPost, "/api/chat",
		`{"messages":[{"role":"user","content":"When is the cheapest day?"}],"context":{"homeSize":"2br"}}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.True(t, strings.HasPrefix(body["response"].(string), "Midweek moves"))
}

func TestChat_Errors(t *testing.T) {
	h := newHarness(t)
	code, body := h.do(http.MethodPost, "/api/chat", `{"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "INVALID_INPUT", errorCode(body))

	code, body = h.do(http.MethodPost, "/api/chat", `not json`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "SERVER_ERROR", errorCode(body))
	assert.Equal(t, "Chat failed", body["error"].(map[string]any)["message"])
}

func TestGenerateInsight_Fallback_OK(t *testing.T) {
	h := newHarness(t)
	code, body := h.do(http.MethodPost, "/api/generate-insight",
		`{"rooms":[{"name":"Studio","furnitureCount":8}],"specialItems":[],"services":[],"homeSize":"studio","type":"summary"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Your studio move with 8 items is manageable but still benefits from professional help. Most moves this size complete in 2-4 hours with an experienced crew.", body["insight"])
}

func TestScanDocument_OK(t *testing.T) {
	h := newHarness(t)
	code, body := h.do(http.MethodPost, "/api/scan-document", "")
	require.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]any)["extractedData"].(map[string]any)
	assert.Equal(t, "Chase Sapphire", data["creditor"])
	assert.Equal(t, 8450.0, data["balance"])
}

func TestCatalogAndTicker(t *testing.T) {
	h := newHarness(t)
	code, body := h.do(http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["specialItems"], 15)
	assert.Len(t, body["movers"], 4)

	code, body = h.do(http.MethodGet, "/api/ticker", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Ashley from Minneapolis found their perfect mover", body["message"])
	assert.Equal(t, "1,799", body["todayCount"])
	assert.Equal(t, "June 10, 2026", body["today"])
	assert.Contains(t, body["banner"].(map[string]any)["message"], "Peak moving season")
}

func TestSessions_Lifecycle_OK(t *testing.T) {
	h := newHarness(t)
	id := h.newSession()

	code, body := h.do(http.MethodGet, "/api/sessions/"+id, "")
	require.Equal(t, http.StatusOK, code)
	state := body["state"].(map[string]any)
	assert.Equal(t, "landing", state["currentStep"])

	code, body = h.do(http.MethodPost, "/api/sessions/"+id+"/actions", `{"type":"TOGGLE_MOVER","moverId":"allied"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["changed"])
	assert.Equal(t, []any{"allied"}, body["state"].(map[string]any)["selectedMovers"])

	code, body = h.do(http.MethodPost, "/api/sessions/"+id+"/actions", `{"type":"TOGGLE_MOVER","moverId":"allied"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["state"].(map[string]any)["selectedMovers"])

	code, body = h.do(http.MethodDelete, "/api/sessions/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "landing", body["state"].(map[string]any)["currentStep"])
}

func TestSessions_Errors(t *testing.T) {
	h := newHarness(t)
	code, body := h.do(http.MethodGet, "/api/sessions/00000000-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "SESSION_NOT_FOUND", errorCode(body))

	id := h.newSession()
	code, body = h.do(http.MethodPost, "/api/sessions/"+id+"/actions", `{"type":"FLY_AWAY"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "UNKNOWN_ACTION", errorCode(body))

	code, body = h.do(http.MethodPost, "/api/sessions/"+id+"/actions", `{"type":"HYDRATE"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", errorCode(body))

	code, body = h.do(http.MethodGet, "/api/sessions/"+id+"/estimate?phase=guess", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", errorCode(body))
}

func TestDispatch_RejectsOversizedBody(t *testing.T) {
	h := newHarness(t)
	id := h.newSession()

	huge := `{"type":"SET_AI_INSIGHT","insight":"` + strings.Repeat("x", 2<<20) + `"}`
	code, body := h.do(http.MethodPost, "/api/sessions/"+id+"/actions", huge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
	assert.Equal(t, "INVALID_INPUT", errorCode(body))

	code, body = h.do(http.MethodGet, "/api/sessions/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["state"].(map[string]any)["aiInsight"])
}

func TestFlow_EndToEnd_OK(t *testing.T) {
	h := newHarness(t)
	id := h.newSession()
	base := "/api/sessions/" + id

	code, body := h.do(http.MethodPost, base+"/flow/rooms", `{"counts":{"bedroom":2,"kitchen":1}}`)
	require.Equal(t, http.StatusOK, code, body)
	state := body["state"].(map[string]any)
	assert.Equal(t, "inventory", state["currentStep"])
	rooms := state["rooms"].([]any)
	require.Len(t, rooms, 3)
	first := rooms[0].(map[string]any)["id"].(string)
	second := rooms[1].(map[string]any)["id"].(string)

	code, _ = h.do(http.MethodPost, base+"/flow/furniture/adjust",
		`{"roomId":"`+first+`","itemId":"bed_queen","delta":1}`)
	require.Equal(t, http.StatusOK, code)

	code, body = h.do(http.MethodPost, base+"/flow/furniture/adjust",
		`{"roomId":"`+first+`","itemId":"jetpack","delta":1}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", errorCode(body))

	code, _ = h.do(http.MethodPost, base+"/flow/select-room",
		`{"fromRoomId":"`+first+`","toRoomId":"`+second+`"}`)
	require.Equal(t, http.StatusOK, code)

	code, body = h.do(http.MethodGet, base+"/engagement", "")
	require.Equal(t, http.StatusOK, code)
	events := body["events"].([]any)
	require.NotEmpty(t, events)
	assert.Equal(t, "room_complete", events[0].(map[string]any)["kind"])
	assert.Equal(t, "early", body["exitIntent"].(map[string]any)["variant"])

	code, body = h.do(http.MethodPost, base+"/flow/exit-intent", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["shown"])
	code, body = h.do(http.MethodPost, base+"/flow/exit-intent", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["shown"])

	code, _ = h.do(http.MethodPost, base+"/flow/finish-inventory", `{"currentRoomId":"`+second+`"}`)
	require.Equal(t, http.StatusOK, code)

	code, body = h.do(http.MethodPost, base+"/flow/special-items/adjust", `{"itemId":"hot_tub","delta":2}`)
	require.Equal(t, http.StatusOK, code)
	for _, raw := range body["state"].(map[string]any)["specialItems"].([]any) {
		if it := raw.(map[string]any); it["id"] == "hot_tub" {
			assert.Equal(t, 3.0, it["quantity"])
		}
	}

	code, body = h.do(http.MethodPost, base+"/flow/summary", "")
	require.Equal(t, http.StatusOK, code)
	est := body["estimate"].(map[string]any)
	assert.NotZero(t, est["costRange"].(map[string]any)["min"])

	code, body = h.do(http.MethodGet, base+"/estimate", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "granular", body["phase"])

	code, body = h.do(http.MethodPost, base+"/flow/contact",
		`{"info":{"firstName":"","lastName":"Doe","email":"nope","phone":"555-123-4567"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	fields := body["error"].(map[string]any)["fields"].(map[string]any)
	assert.Equal(t, "First name is required", fields["firstName"])
	assert.Equal(t, "Please enter a valid email", fields["email"])

	code, body = h.do(http.MethodPost, base+"/flow/contact",
		`{"info":{"firstName":"Jo","lastName":"Doe","email":"jo@example.com","phone":"(555) 123-4567"},"prefs":{"method":"text"}}`)
	require.Equal(t, http.StatusOK, code, body)
	state = body["state"].(map[string]any)
	assert.Equal(t, "quotes", state["currentStep"])
	assert.Equal(t, "text", state["contactPreferences"].(map[string]any)["method"])

	code, body = h.do(http.MethodGet, base+"/movers", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["movers"], 4)

	code, body = h.do(http.MethodPost, base+"/insight", `{"type":"tips"}`)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["insight"])
	assert.Equal(t, body["insight"], body["state"].(map[string]any)["aiInsight"])
}

func TestFlow_InputErrors(t *testing.T) {
	h := newHarness(t)
	base := "/api/sessions/" + h.newSession()

	code, body := h.do(http.MethodPost, base+"/flow/rooms", `{"counts":{}}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", errorCode(body))

	code, body = h.do(http.MethodPost, base+"/flow/rooms", `{"counts":{"ballroom":1}}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", errorCode(body))

	code, body = h.do(http.MethodPost, base+"/flow/advance", `{"step":"checkout"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", errorCode(body))

	code, body = h.do(http.MethodPost, base+"/flow/email", `{"email":"bad"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(body))
}

func TestHealthAndMetrics(t *testing.T) {
	h := newHarness(t)
	code, body := h.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `movefunnel_http_requests_total{code="200",method="GET",route="/healthz"} 1`)
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	sessions, err := session.NewManager(store.NewMemoryStore(), nil, nil, 0)
	require.NoError(t, err)
	srv := server.New(server.Config{Addr: "127.0.0.1:0"}, server.Deps{Sessions: sessions})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
