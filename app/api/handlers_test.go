package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katechon/engine/app/chat"
	"github.com/katechon/engine/app/event"
	"github.com/katechon/engine/app/feed"
)

type scriptedGenerator struct {
	response string
	err      error
}

func (g *scriptedGenerator) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return g.response, g.err
}

type testEnv struct {
	router *gin.Engine
	store  *event.Store
	health *event.HealthTracker
}

func newTestEnv(gen chat.Generator) *testEnv {
	store := event.NewStore()
	health := event.NewHealthTracker()
	catalog := feed.NewCatalog(feed.Defaults())
	registry := chat.NewRegistry()
	transcript := chat.NewTranscript()
	orchestrator := chat.NewOrchestrator(gen, registry, transcript, store, health, nil, nil)

	handler := NewHandler(store, health, catalog, registry, transcript, orchestrator, nil)
	return &testEnv{
		router: NewServer(handler),
		store:  store,
		health: health,
	}
}

func (e *testEnv) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func seedEvent(store *event.Store) event.Event {
	ev := event.Event{
		ID:     event.NewID("https://example.com/rss", "https://example.com/a"),
		Title:  "Seeded Event",
		Date:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Source: "Test Feed",
		Tier:   event.DefaultTier,
	}
	store.Insert(ev)
	return ev
}

func TestGetHealth(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{})

	w := env.request(t, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body["status"])
	}
	if body["feeds"].(float64) != 8 {
		t.Errorf("Expected 8 default feeds, got %v", body["feeds"])
	}
}

func TestListEvents(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{})
	ev := seedEvent(env.store)

	w := env.request(t, "GET", "/events", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body struct {
		Events []event.Event `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(body.Events) != 1 || body.Events[0].ID != ev.ID {
		t.Errorf("Expected the seeded event, got %+v", body.Events)
	}
}

func TestSelectEvent(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{})
	ev := seedEvent(env.store)

	w := env.request(t, "POST", "/events/"+ev.ID+"/select", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	if selected, ok := env.store.Selected(); !ok || selected.ID != ev.ID {
		t.Error("Event should be selected")
	}

	w = env.request(t, "DELETE", "/events/selection", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}
	if _, ok := env.store.Selected(); ok {
		t.Error("Selection should be cleared")
	}
}

func TestSelectEventNotFound(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{})

	w := env.request(t, "POST", "/events/unknown/select", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestAnalyzeEvent(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{response: "Strong analysis. Tier: 8."})
	ev := seedEvent(env.store)

	w := env.request(t, "POST", "/events/"+ev.ID+"/analyze", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body event.Event
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.Tier != 8 {
		t.Errorf("Expected tier 8 in response, got %d", body.Tier)
	}
	if env.health.Get(event.PillarMedia) != 59 {
		t.Errorf("Expected media 59 after tier 8, got %d", env.health.Get(event.PillarMedia))
	}
}

func TestAnalyzeEventNotFound(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{})

	w := env.request(t, "POST", "/events/unknown/analyze", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestAddAndToggleFeed(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{})

	w := env.request(t, "POST", "/feeds",
		`{"url": "https://new.example/rss", "name": "New Feed"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Duplicate URL is rejected.
	w = env.request(t, "POST", "/feeds",
		`{"url": "https://new.example/rss", "name": "New Feed"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for a duplicate URL, got %d", w.Code)
	}

	w = env.request(t, "POST", "/feeds/toggle", `{"url": "https://new.example/rss"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["enabled"] != false {
		t.Errorf("Expected enabled false after toggle, got %v", body["enabled"])
	}
}

func TestToggleFeedUnknownURL(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{})

	w := env.request(t, "POST", "/feeds/toggle", `{"url": "https://missing.example/rss"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestTogglePersona(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{})

	w := env.request(t, "POST", "/personas/economist/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["active"] != true {
		t.Errorf("Expected active true, got %v", body["active"])
	}

	w = env.request(t, "POST", "/personas/ghost/toggle", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an unknown persona, got %d", w.Code)
	}
}

func TestGetPillars(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{})

	w := env.request(t, "GET", "/pillars", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body struct {
		Pillars map[string]int `json:"pillars"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(body.Pillars) != 6 {
		t.Fatalf("Expected 6 pillars, got %d", len(body.Pillars))
	}
	for pillar, score := range body.Pillars {
		if score != 50 {
			t.Errorf("Pillar %s should start at 50, got %d", pillar, score)
		}
	}
}

func TestChatMessages(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{response: "A measured reply."})

	w := env.request(t, "POST", "/chat/messages", `{"content": "What is happening?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Messages []chat.ChatMessage `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(body.Messages) != 2 {
		t.Fatalf("Expected user message plus one reply, got %d", len(body.Messages))
	}
	if body.Messages[1].Persona != chat.DefaultResponderName {
		t.Errorf("Expected the default responder, got %s", body.Messages[1].Persona)
	}

	w = env.request(t, "DELETE", "/chat/messages", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}

	w = env.request(t, "GET", "/chat/messages", "")
	var after struct {
		Messages []chat.ChatMessage `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &after); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(after.Messages) != 0 {
		t.Errorf("Expected an empty transcript, got %d messages", len(after.Messages))
	}
}

func TestSendMessageRejectsEmptyBody(t *testing.T) {
	env := newTestEnv(&scriptedGenerator{})

	w := env.request(t, "POST", "/chat/messages", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a missing content field, got %d", w.Code)
	}
}
