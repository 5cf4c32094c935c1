package api

import (
	"github.com/katechon/engine/app/chat"
	"github.com/katechon/engine/app/database"
	"github.com/katechon/engine/app/event"
	"github.com/katechon/engine/app/feed"
)

// ArchiveStats is the optional sqlite-backed counter source for /stats.
type ArchiveStats interface {
	GetEventCount() (int, error)
	GetAnalyzedCount() (int, error)
}

var _ ArchiveStats = (*database.EventRepository)(nil)

type Handler struct {
	store        *event.Store
	health       *event.HealthTracker
	catalog      *feed.Catalog
	registry     *chat.Registry
	transcript   *chat.Transcript
	orchestrator *chat.Orchestrator
	archive      ArchiveStats
}

type addFeedRequest struct {
	URL      string `json:"url" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

type toggleFeedRequest struct {
	URL string `json:"url" binding:"required"`
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
	Debate  bool   `json:"debate"`
}

type analyzeEventRequest struct {
	Debate bool `json:"debate"`
}
