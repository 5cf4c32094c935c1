package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	readability "codeberg.org/readeck/go-readability"
)

// Extracted article text is bounded before it enters an analysis prompt.
const maxExtractedLen = 4000

const extractTimeout = 20 * time.Second

// ContentExtractor fetches an article page and extracts its readable
// text, used to enrich analysis prompts beyond the feed description.
type ContentExtractor struct {
	httpClient *http.Client
	userAgent  string
}

func NewContentExtractor(httpClient *http.Client, userAgent string) *ContentExtractor {
	return &ContentExtractor{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// Run fetches the page at link and returns its extracted text content.
func (e *ContentExtractor) Run(ctx context.Context, link string) (string, error) {
	if link == "" {
		return "", fmt.Errorf("link is empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", link, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(string(data)), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", fmt.Errorf("no content extracted from page")
	}

	if runes := []rune(text); len(runes) > maxExtractedLen {
		text = string(runes[:maxExtractedLen])
	}

	slog.Debug("Content extracted successfully",
		"link", link,
		"title", article.Title,
		"content_length", len(text))

	return text, nil
}
