package geo

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNoLocation is returned when no confident inference exists for the
// given text.
var ErrNoLocation = errors.New("no location inferred from text")

// Fallback sentinel coordinates used by the poller when resolution
// fails. Mid-Atlantic, signals "unresolved" rather than a real place.
const (
	FallbackLat = 30.0
	FallbackLng = -30.0
)

// Resolver resolves free text to coordinates, or fails.
type Resolver interface {
	Resolve(text string) (lat, lng float64, err error)
}

type place struct {
	keywords []string
	lat      float64
	lng      float64
}

// Match order matters: more specific entries first.
var places = []place{
	{[]string{"washington", "dc", "white house"}, 38.8951, -77.0364},
	{[]string{"new york", "nyc"}, 40.7128, -74.0060},
	{[]string{"london"}, 51.5074, -0.1278},
	{[]string{"paris"}, 48.8566, 2.3522},
	{[]string{"moscow"}, 55.7558, 37.6173},
	{[]string{"beijing", "china"}, 39.9042, 116.4074},
	{[]string{"ukraine", "kyiv", "kiev"}, 50.4501, 30.5234},
	{[]string{"israel", "jerusalem"}, 31.7683, 35.2137},
	{[]string{"gaza"}, 31.5, 34.4667},
	{[]string{"iran", "tehran"}, 35.6892, 51.3890},
}

// KeywordResolver infers coordinates by matching known place keywords
// in the text. Matching is case-insensitive and folds diacritics, so
// "Tehrān" still matches "tehran".
type KeywordResolver struct{}

func NewKeywordResolver() *KeywordResolver {
	return &KeywordResolver{}
}

func (r *KeywordResolver) Resolve(text string) (float64, float64, error) {
	normalized := normalize(text)

	for _, p := range places {
		for _, keyword := range p.keywords {
			if strings.Contains(normalized, keyword) {
				return p.lat, p.lng, nil
			}
		}
	}

	return 0, 0, ErrNoLocation
}

func normalize(text string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}
