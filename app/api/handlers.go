package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katechon/engine/app/chat"
	"github.com/katechon/engine/app/event"
	"github.com/katechon/engine/app/feed"
)

func NewHandler(store *event.Store, health *event.HealthTracker, catalog *feed.Catalog,
	registry *chat.Registry, transcript *chat.Transcript,
	orchestrator *chat.Orchestrator, archive ArchiveStats) *Handler {
	return &Handler{
		store:        store,
		health:       health,
		catalog:      catalog,
		registry:     registry,
		transcript:   transcript,
		orchestrator: orchestrator,
		archive:      archive,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"feeds":     h.catalog.Len(),
		"events":    h.store.Len(),
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	analyzed := 0
	for _, ev := range h.store.List() {
		if ev.Classified() {
			analyzed++
		}
	}

	stats := gin.H{
		"events":          h.store.Len(),
		"events_analyzed": analyzed,
		"feeds":           h.catalog.Len(),
		"feeds_enabled":   len(h.catalog.Enabled()),
		"personas_active": len(h.registry.ActiveIDs()),
		"chat_messages":   h.transcript.Len(),
	}

	if h.archive != nil {
		if count, err := h.archive.GetEventCount(); err == nil {
			stats["archived_events"] = count
		}
		if count, err := h.archive.GetAnalyzedCount(); err == nil {
			stats["archived_analyzed"] = count
		}
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListEvents(c *gin.Context) {
	events := h.store.List()

	response := gin.H{"events": events}
	if selected, ok := h.store.Selected(); ok {
		response["selected_id"] = selected.ID
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) SelectEvent(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Select(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	ev, _ := h.store.Get(id)
	c.JSON(http.StatusOK, ev)
}

func (h *Handler) ClearSelection(c *gin.Context) {
	h.store.ClearSelection()
	c.Status(http.StatusNoContent)
}

func (h *Handler) AnalyzeEvent(c *gin.Context) {
	id := c.Param("id")

	ev, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	var req analyzeEventRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := h.orchestrator.AnalyzeEvent(c.Request.Context(), ev, req.Debate); err != nil {
		if errors.Is(err, chat.ErrBusy) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		slog.Error("Event analysis failed", "event_id", id, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	updated, _ := h.store.Get(id)
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListFeeds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"feeds": h.catalog.List()})
}

func (h *Handler) AddFeed(c *gin.Context) {
	var req addFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := feed.Config{
		URL:      req.URL,
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
		Enabled:  true,
	}

	if err := h.catalog.Add(cfg); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cfg)
}

func (h *Handler) ToggleFeed(c *gin.Context) {
	var req toggleFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enabled, err := h.catalog.Toggle(req.URL)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": req.URL, "enabled": enabled})
}

func (h *Handler) ListPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"personas": h.registry.List()})
}

func (h *Handler) TogglePersona(c *gin.Context) {
	id := c.Param("id")

	active, err := h.registry.Toggle(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "active": active})
}

func (h *Handler) GetPillars(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pillars": h.health.Snapshot()})
}

func (h *Handler) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.transcript.Messages()})
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orchestrator.Send(c.Request.Context(), req.Content, req.Debate); err != nil {
		if errors.Is(err, chat.ErrBusy) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		slog.Error("Chat invocation failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": h.transcript.Messages()})
}

func (h *Handler) ClearMessages(c *gin.Context) {
	h.transcript.Clear()
	c.Status(http.StatusNoContent)
}
