package event

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

type Pillar string

const (
	PillarEconomy      Pillar = "economy"
	PillarSpirituality Pillar = "spirituality"
	PillarFamily       Pillar = "family"
	PillarEducation    Pillar = "education"
	PillarMedia        Pillar = "media"
	PillarLegal        Pillar = "legal"
)

// Pillars returns all pillars in their canonical order.
func Pillars() []Pillar {
	return []Pillar{
		PillarEconomy,
		PillarSpirituality,
		PillarFamily,
		PillarEducation,
		PillarMedia,
		PillarLegal,
	}
}

// PillarImpacts describes how one event's classification moves each
// pillar's health score. Values are signed percentage points.
type PillarImpacts struct {
	Economy      int `json:"economy"`
	Spirituality int `json:"spirituality"`
	Family       int `json:"family"`
	Education    int `json:"education"`
	Media        int `json:"media"`
	Legal        int `json:"legal"`
}

// ForEach visits each pillar's impact in canonical order.
func (p PillarImpacts) ForEach(fn func(pillar Pillar, delta int)) {
	fn(PillarEconomy, p.Economy)
	fn(PillarSpirituality, p.Spirituality)
	fn(PillarFamily, p.Family)
	fn(PillarEducation, p.Education)
	fn(PillarMedia, p.Media)
	fn(PillarLegal, p.Legal)
}

func (p PillarImpacts) IsZero() bool {
	return p == PillarImpacts{}
}

const (
	// DefaultTier is assigned to freshly ingested items until an
	// analysis response classifies them.
	DefaultTier = 3

	// MaxDescriptionLen bounds the stored description length.
	MaxDescriptionLen = 500
)

type Event struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Lat           float64       `json:"lat"`
	Lng           float64       `json:"lng"`
	Date          time.Time     `json:"date"`
	Source        string        `json:"source"`
	Tier          int           `json:"tier"`
	PillarImpacts PillarImpacts `json:"pillar_impacts"`
	Analysis      string        `json:"analysis,omitempty"`
	FeedURL       string        `json:"feed_url,omitempty"`
	Link          string        `json:"link,omitempty"`

	// classified records that this event's pillar impacts have already
	// been folded into the health scores, so a re-analysis does not
	// apply them twice.
	classified bool
}

// Classified reports whether the event's impacts have been applied to
// the pillar health scores.
func (e Event) Classified() bool {
	return e.classified
}

// NewID derives the deduplication key for an item. Repeated polls of
// the same item produce the same ID.
func NewID(feedURL, link string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%s", feedURL, link)))
	return hex.EncodeToString(hash[:])
}

// TruncateDescription bounds a description to MaxDescriptionLen runes.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxDescriptionLen {
		return s
	}
	return string(runes[:MaxDescriptionLen])
}
