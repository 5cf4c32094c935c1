package tasks

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/katechon/engine/app/event"
	"github.com/katechon/engine/app/feed"
	"github.com/katechon/engine/app/geo"
)

// MockFetcher maps feed URLs to scripted items or errors.
type MockFetcher struct {
	items map[string][]feed.Item
	errs  map[string]error
	calls []string
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]feed.Item, error) {
	m.calls = append(m.calls, url)
	if err, ok := m.errs[url]; ok {
		return nil, err
	}
	return m.items[url], nil
}

// MockResolver resolves any text containing "moscow" and nothing else.
type MockResolver struct{}

func (m *MockResolver) Resolve(text string) (float64, float64, error) {
	if strings.Contains(strings.ToLower(text), "moscow") {
		return 55.7558, 37.6173, nil
	}
	return 0, 0, geo.ErrNoLocation
}

// MockArchive records upserted event IDs.
type MockArchive struct {
	mu  sync.Mutex
	ids []string
	err error
}

func (m *MockArchive) UpsertEvent(ev event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.ids = append(m.ids, ev.ID)
	return nil
}

func testCatalog() *feed.Catalog {
	return feed.NewCatalog([]feed.Config{
		{URL: "https://a.example/rss", Name: "Feed A", Enabled: true},
		{URL: "https://b.example/rss", Name: "Feed B", Enabled: true},
		{URL: "https://c.example/rss", Name: "Feed C", Enabled: false},
	})
}

func item(title, desc, link string) feed.Item {
	return feed.Item{
		Title:       title,
		Description: desc,
		Link:        link,
		Published:   time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestPollFeedsTask_IngestsEnabledFeeds(t *testing.T) {
	fetcher := &MockFetcher{
		items: map[string][]feed.Item{
			"https://a.example/rss": {item("First", "desc", "https://a.example/1")},
			"https://b.example/rss": {item("Second", "desc", "https://b.example/1")},
			"https://c.example/rss": {item("Hidden", "desc", "https://c.example/1")},
		},
	}
	store := event.NewStore()
	archive := &MockArchive{}
	task := NewPollFeedsTask(testCatalog(), fetcher, &MockResolver{}, store, archive)

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if store.Len() != 2 {
		t.Errorf("Expected 2 events from enabled feeds, got %d", store.Len())
	}
	for _, url := range fetcher.calls {
		if url == "https://c.example/rss" {
			t.Error("Disabled feed must not be fetched")
		}
	}
	if len(archive.ids) != 2 {
		t.Errorf("Expected 2 archive writes, got %d", len(archive.ids))
	}
}

func TestPollFeedsTask_FeedFailureIsIsolated(t *testing.T) {
	fetcher := &MockFetcher{
		items: map[string][]feed.Item{
			"https://b.example/rss": {item("Survivor", "desc", "https://b.example/1")},
		},
		errs: map[string]error{
			"https://a.example/rss": errors.New("connection refused"),
		},
	}
	store := event.NewStore()
	task := NewPollFeedsTask(testCatalog(), fetcher, &MockResolver{}, store, nil)

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("A failing feed must not abort the cycle: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 event from the healthy feed, got %d", store.Len())
	}
}

func TestPollFeedsTask_EventDefaults(t *testing.T) {
	long := strings.Repeat("x", 600)
	fetcher := &MockFetcher{
		items: map[string][]feed.Item{
			"https://a.example/rss": {item("Quiet news", long, "https://a.example/1")},
		},
	}
	store := event.NewStore()
	task := NewPollFeedsTask(testCatalog(), fetcher, &MockResolver{}, store, nil)

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	events := store.List()
	ev := events[0]
	if ev.Tier != event.DefaultTier {
		t.Errorf("Fresh events should get tier %d, got %d", event.DefaultTier, ev.Tier)
	}
	if !ev.PillarImpacts.IsZero() {
		t.Error("Fresh events should carry zero pillar impacts")
	}
	if ev.Lat != geo.FallbackLat || ev.Lng != geo.FallbackLng {
		t.Errorf("Unresolvable location should use the sentinel, got (%f, %f)", ev.Lat, ev.Lng)
	}
	if len(ev.Description) != event.MaxDescriptionLen {
		t.Errorf("Description should be truncated to %d, got %d",
			event.MaxDescriptionLen, len(ev.Description))
	}
	if ev.ID != event.NewID("https://a.example/rss", "https://a.example/1") {
		t.Error("Event ID must derive from feed URL and link")
	}
}

func TestPollFeedsTask_CoordinatePrecedence(t *testing.T) {
	lat, lng := 48.8566, 2.3522
	fetcher := &MockFetcher{
		items: map[string][]feed.Item{
			"https://a.example/rss": {
				{Title: "Moscow talks", Link: "https://a.example/1",
					Published: time.Now(), Lat: &lat, Lng: &lng},
				{Title: "Moscow talks continue", Link: "https://a.example/2",
					Published: time.Now()},
			},
		},
	}
	store := event.NewStore()
	task := NewPollFeedsTask(testCatalog(), fetcher, &MockResolver{}, store, nil)

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	events := store.List()
	if events[0].Lat != lat || events[0].Lng != lng {
		t.Error("Feed-supplied coordinates must win over keyword resolution")
	}
	if events[1].Lat != 55.7558 || events[1].Lng != 37.6173 {
		t.Error("Keyword resolution should locate the second item")
	}
}

func TestPollFeedsTask_DedupAcrossCycles(t *testing.T) {
	fetcher := &MockFetcher{
		items: map[string][]feed.Item{
			"https://a.example/rss": {item("Repeat", "desc", "https://a.example/1")},
		},
	}
	store := event.NewStore()
	archive := &MockArchive{}
	task := NewPollFeedsTask(testCatalog(), fetcher, &MockResolver{}, store, archive)

	for i := 0; i < 3; i++ {
		if err := task.Execute(context.Background()); err != nil {
			t.Fatalf("Cycle %d failed: %v", i, err)
		}
	}

	if store.Len() != 1 {
		t.Errorf("Repeated items must be deduplicated, got %d events", store.Len())
	}
	if len(archive.ids) != 1 {
		t.Errorf("Duplicates must not be re-archived, got %d writes", len(archive.ids))
	}
}

func TestPollFeedsTask_ArchiveFailureIsNonFatal(t *testing.T) {
	fetcher := &MockFetcher{
		items: map[string][]feed.Item{
			"https://a.example/rss": {item("News", "desc", "https://a.example/1")},
		},
	}
	store := event.NewStore()
	archive := &MockArchive{err: errors.New("disk full")}
	task := NewPollFeedsTask(testCatalog(), fetcher, &MockResolver{}, store, archive)

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Archive failure must not abort the cycle: %v", err)
	}
	if store.Len() != 1 {
		t.Error("Event must be stored even when archival fails")
	}
}
