package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katechon/engine/app/event"
	"github.com/katechon/engine/app/feed"
	"github.com/katechon/engine/app/geo"
	"github.com/katechon/engine/app/metrics"
)

// PollFeedsTask runs one ingestion cycle: every enabled feed is
// fetched, its items normalized into events, located, and inserted
// into the store. A feed's failure never aborts the cycle.
type PollFeedsTask struct {
	catalog  *feed.Catalog
	fetcher  FeedFetcher
	resolver LocationResolver
	store    *event.Store
	archive  EventArchive
}

func NewPollFeedsTask(catalog *feed.Catalog, fetcher FeedFetcher,
	resolver LocationResolver, store *event.Store, archive EventArchive) *PollFeedsTask {
	return &PollFeedsTask{
		catalog:  catalog,
		fetcher:  fetcher,
		resolver: resolver,
		store:    store,
		archive:  archive,
	}
}

func (t *PollFeedsTask) Execute(ctx context.Context) error {
	start := time.Now()
	ingested := 0
	failed := 0

	for _, cfg := range t.catalog.Enabled() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		items, err := t.fetcher.Fetch(ctx, cfg.URL)
		if err != nil {
			metrics.FeedFetchErrorsTotal.WithLabelValues(cfg.Name).Inc()
			slog.Error("Feed fetch failed", "feed", cfg.Name, "url", cfg.URL, "error", err)
			failed++
			continue
		}

		for _, item := range items {
			ev := t.buildEvent(cfg, item)
			if !t.store.Insert(ev) {
				continue
			}

			metrics.EventsIngestedTotal.WithLabelValues(cfg.Name).Inc()
			ingested++

			if t.archive != nil {
				if err := t.archive.UpsertEvent(ev); err != nil {
					slog.Warn("Event archive write failed", "event_id", ev.ID, "error", err)
				}
			}
		}
	}

	metrics.PollCyclesTotal.Inc()
	slog.Info("Poll cycle completed",
		"ingested", ingested,
		"failed_feeds", failed,
		"total_events", t.store.Len(),
		"duration", time.Since(start).String())

	return nil
}

// buildEvent normalizes one feed item into an unclassified event.
// Coordinates come from the item itself when the feed carries them,
// otherwise from keyword resolution over the title and description,
// otherwise the fixed mid-Atlantic sentinel.
func (t *PollFeedsTask) buildEvent(cfg feed.Config, item feed.Item) event.Event {
	lat, lng := t.locate(item)

	return event.Event{
		ID:          event.NewID(cfg.URL, item.Link),
		Title:       item.Title,
		Description: event.TruncateDescription(item.Description),
		Lat:         lat,
		Lng:         lng,
		Date:        item.Published,
		Source:      cfg.Name,
		Tier:        event.DefaultTier,
		FeedURL:     cfg.URL,
		Link:        item.Link,
	}
}

func (t *PollFeedsTask) locate(item feed.Item) (float64, float64) {
	if item.Lat != nil && item.Lng != nil {
		return *item.Lat, *item.Lng
	}

	lat, lng, err := t.resolver.Resolve(fmt.Sprintf("%s %s", item.Title, item.Description))
	if err == nil {
		return lat, lng
	}

	return geo.FallbackLat, geo.FallbackLng
}
