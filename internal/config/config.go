package config

import "os"

// Slack Web API endpoints the outbound message is addressed to. These are
// stable platform URLs, not deployment configuration: the event shape posts
// a new message, the payload shape updates the message that carried the
// interaction (unless the payload supplies its own response_url).
const (
	PostMessageURL   = "https://slack.com/api/chat.postMessage"
	UpdateMessageURL = "https://slack.com/api/chat.update"
)

// Config holds configuration for the invocation surfaces. The transform
// itself reads no environment; only the HTTP wrappers do.
type Config struct {
	// Port the local server listens on
	Port string

	// Log level
	LogLevel string
}

var (
	// instance holds the singleton config instance
	instance *Config
)

// Get returns the singleton config instance
func Get() *Config {
	if instance == nil {
		panic("config not initialized")
	}
	return instance
}

// Load creates a new Config instance from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:     "8080",
		LogLevel: "info",
	}

	optionalVars := map[string]*string{
		"PORT":      &cfg.Port,
		"LOG_LEVEL": &cfg.LogLevel,
	}

	for env, ptr := range optionalVars {
		if v := os.Getenv(env); v != "" {
			*ptr = v
		}
	}

	// Store the instance
	instance = cfg

	return cfg, nil
}
