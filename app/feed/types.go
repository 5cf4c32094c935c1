package feed

import (
	"time"
)

// Config describes one feed in the catalog. Enabled is the only field
// the pipeline mutates; the poller skips disabled feeds.
type Config struct {
	URL      string `yaml:"url" json:"url"`
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Color    string `yaml:"color" json:"color"`
}

// Item is one raw entry returned by a feed fetch. Lat/Lng are set only
// when the feed itself carries geo metadata.
type Item struct {
	Title       string
	Description string
	Link        string
	Published   time.Time
	Lat         *float64
	Lng         *float64
}
