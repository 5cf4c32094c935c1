package database

import (
	"fmt"

	"github.com/katechon/engine/app/event"
)

// EventRepository handles database operations for archived events
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// UpsertEvent inserts an event or, when the ID already exists, updates
// the fields an analysis can change.
func (r *EventRepository) UpsertEvent(ev event.Event) error {
	_, err := r.db.Exec(`
		INSERT INTO events (id, title, description, lat, lng, date, source, tier, analysis, feed_url, link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tier = excluded.tier,
			analysis = excluded.analysis
	`, ev.ID, ev.Title, ev.Description, ev.Lat, ev.Lng, ev.Date, ev.Source,
		ev.Tier, ev.Analysis, ev.FeedURL, ev.Link)
	if err != nil {
		return fmt.Errorf("failed to upsert event: %w", err)
	}

	return nil
}

// GetEventCount returns the number of archived events
func (r *EventRepository) GetEventCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}

	return count, nil
}

// GetAnalyzedCount returns the number of archived events carrying an analysis
func (r *EventRepository) GetAnalyzedCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM events WHERE analysis != ''`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analyzed events: %w", err)
	}

	return count, nil
}
