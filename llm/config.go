package llm

import (
	"fmt"
	"time"
)

// Config selects and configures the generation provider. Populated from
// viper in api.ReadConfig.
type Config struct {
	// Provider is one of "openai", "anthropic", "gemini", "mock".
	Provider string

	APIKey string
	Model  string

	Retry RetryConfig
}

// RetryConfig tunes the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
}

// DefaultRetry is used when the config leaves retry settings empty.
func DefaultRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
	}
}

// defaultModels picks a model per provider when none is configured.
var defaultModels = map[string]string{
	"openai":    "gpt-4o-mini",
	"anthropic": "claude-haiku-4-5-20251001",
	"gemini":    "gemini-2.0-flash",
}

// Validate checks the provider selection and key presence.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai", "anthropic", "gemini":
		if c.APIKey == "" {
			return fmt.Errorf("llm: API key is required for provider %q", c.Provider)
		}
	case "mock":
		// Test provider, no key.
	default:
		return fmt.Errorf("llm: unknown provider %q", c.Provider)
	}
	return nil
}

func (c Config) model() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}
