package feed

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog holds the feed configurations in a stable order. The poller
// visits feeds in catalog order.
type Catalog struct {
	mu      sync.RWMutex
	configs []Config
}

func NewCatalog(configs []Config) *Catalog {
	return &Catalog{
		configs: append([]Config(nil), configs...),
	}
}

// LoadFile replaces the catalog with the feed list from a YAML file.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read feeds file: %w", err)
	}

	var configs []Config
	if err := yaml.Unmarshal(data, &configs); err != nil {
		return fmt.Errorf("failed to parse feeds file: %w", err)
	}

	for i, cfg := range configs {
		if cfg.URL == "" {
			return fmt.Errorf("feed at index %d: URL is required", i)
		}
		if cfg.Name == "" {
			return fmt.Errorf("feed at index %d: name is required", i)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.configs = configs

	slog.Debug("Feed catalog loaded", "path", path, "count", len(configs))
	return nil
}

// Add appends a feed to the catalog. The URL must be unique.
func (c *Catalog) Add(cfg Config) error {
	if cfg.URL == "" {
		return fmt.Errorf("feed URL is required")
	}
	if cfg.Name == "" {
		return fmt.Errorf("feed name is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.configs {
		if existing.URL == cfg.URL {
			return fmt.Errorf("feed with URL %q already exists", cfg.URL)
		}
	}
	c.configs = append(c.configs, cfg)
	return nil
}

// Toggle flips the enabled flag of the feed with the given URL and
// returns the new state.
func (c *Catalog) Toggle(url string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.configs {
		if c.configs[i].URL == url {
			c.configs[i].Enabled = !c.configs[i].Enabled
			return c.configs[i].Enabled, nil
		}
	}
	return false, fmt.Errorf("feed with URL %q not found", url)
}

// List returns a snapshot of all feeds in catalog order.
func (c *Catalog) List() []Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Config, len(c.configs))
	copy(out, c.configs)
	return out
}

// Enabled returns a snapshot of the enabled feeds in catalog order.
func (c *Catalog) Enabled() []Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Config
	for _, cfg := range c.configs {
		if cfg.Enabled {
			out = append(out, cfg)
		}
	}
	return out
}

// Len returns the number of configured feeds.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.configs)
}
