package cfg

type Cfg struct {
	// Storage configuration
	DBPath string

	// Application configuration
	FeedsFile    string
	Port         string
	PollInterval int

	// Language model configuration
	OllamaURL   string
	OllamaModel string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
