package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Storage configuration
	DBPath string `long:"db-path" env:"DB_PATH" default:"./katechon.db" description:"Path to the SQLite event archive"`

	// Application configuration
	FeedsFile    string `long:"feeds-file" env:"FEEDS_FILE" description:"Optional YAML file overriding the built-in feed catalog"`
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	PollInterval int    `long:"poll-interval" env:"POLL_INTERVAL" default:"300" description:"Feed poll interval in seconds"`

	// Language model configuration
	OllamaURL   string `long:"ollama-url" env:"OLLAMA_URL" default:"http://127.0.0.1:11434" description:"Base URL of the Ollama server"`
	OllamaModel string `long:"ollama-model" env:"OLLAMA_MODEL" default:"llama2" description:"Model name used for analysis"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Katechon Engine/1.0" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.OllamaURL == "" {
		return nil, fmt.Errorf("ollama URL must not be empty")
	}
	if raw.OllamaModel == "" {
		return nil, fmt.Errorf("ollama model must not be empty")
	}
	if raw.PollInterval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive")
	}

	cfg := &Cfg{
		DBPath:       raw.DBPath,
		FeedsFile:    raw.FeedsFile,
		Port:         raw.Port,
		PollInterval: raw.PollInterval,
		OllamaURL:    raw.OllamaURL,
		OllamaModel:  raw.OllamaModel,
		UserAgent:    raw.UserAgent,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
