package feed

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// Newest items kept per fetch.
const maxItemsPerFetch = 10

const fetchTimeout = 30 * time.Second

// Fetcher retrieves and parses a feed over HTTP.
type Fetcher struct {
	httpClient   *http.Client
	gofeedParser *gofeed.Parser
	userAgent    string
}

func NewFetcher(httpClient *http.Client, userAgent string) *Fetcher {
	return &Fetcher{
		httpClient:   httpClient,
		gofeedParser: gofeed.NewParser(),
		userAgent:    userAgent,
	}
}

// Fetch retrieves the feed at url and returns its newest items in feed
// order. Transport and parse errors are returned to the caller.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]Item, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	parsed, err := f.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, min(len(parsed.Items), maxItemsPerFetch))
	for _, raw := range parsed.Items {
		if len(items) >= maxItemsPerFetch {
			break
		}
		items = append(items, f.normalizeItem(raw))
	}

	return items, nil
}

func (f *Fetcher) normalizeItem(raw *gofeed.Item) Item {
	item := Item{
		Title:       cmp.Or(raw.Title, "Untitled"),
		Description: cmp.Or(raw.Description, "No description"),
		Link:        raw.Link,
	}

	if raw.PublishedParsed != nil {
		item.Published = *raw.PublishedParsed
	} else {
		item.Published = time.Now().UTC()
	}

	item.Lat, item.Lng = extractCoordinates(raw)

	return item
}

// extractCoordinates reads geo metadata an item may carry, checking the
// W3C geo namespace (geo:lat / geo:long) and georss:point.
func extractCoordinates(raw *gofeed.Item) (*float64, *float64) {
	if geo, ok := raw.Extensions["geo"]; ok {
		lat := firstExtensionValue(geo["lat"])
		lng := firstExtensionValue(geo["long"])
		if lat != "" && lng != "" {
			if latF, lngF, err := parseCoordinatePair(lat, lng); err == nil {
				return &latF, &lngF
			}
		}
	}

	if georss, ok := raw.Extensions["georss"]; ok {
		if point := firstExtensionValue(georss["point"]); point != "" {
			fields := strings.Fields(point)
			if len(fields) == 2 {
				if latF, lngF, err := parseCoordinatePair(fields[0], fields[1]); err == nil {
					return &latF, &lngF
				}
			}
		}
	}

	return nil, nil
}

func firstExtensionValue(exts []ext.Extension) string {
	if len(exts) == 0 {
		return ""
	}
	return strings.TrimSpace(exts[0].Value)
}

func parseCoordinatePair(lat, lng string) (float64, float64, error) {
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return 0, 0, err
	}
	lngF, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return 0, 0, err
	}
	return latF, lngF, nil
}
