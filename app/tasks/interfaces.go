package tasks

import (
	"context"

	"github.com/katechon/engine/app/database"
	"github.com/katechon/engine/app/event"
	"github.com/katechon/engine/app/feed"
	"github.com/katechon/engine/app/geo"
)

// FeedFetcher retrieves and normalizes the items of one feed.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]feed.Item, error)
}

var _ FeedFetcher = (*feed.Fetcher)(nil)

// LocationResolver infers coordinates from item text.
type LocationResolver interface {
	Resolve(text string) (float64, float64, error)
}

var _ LocationResolver = (*geo.KeywordResolver)(nil)

// EventArchive persists ingested events. Archive writes are
// best-effort; the in-memory store stays authoritative.
type EventArchive interface {
	UpsertEvent(ev event.Event) error
}

var _ EventArchive = (*database.EventRepository)(nil)

// TaskSchedulerInterface defines the interface for the background poll loop.
// Example usage:
//
//	scheduler := NewScheduler(task, interval)
//	scheduler.Start()
//	defer scheduler.Stop()
type TaskSchedulerInterface interface {
	Start()
	Stop()
}
