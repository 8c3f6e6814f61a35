package llm

import (
	"context"

	"github.com/pkozlov/newsbrief/internal/model"
)

// Provider is the injected text-generation capability every workflow stage
// shares: one synchronous prompt in, one block of text out. Provider errors
// are never retried by callers - a failed generation aborts the run.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate sends one prompt and returns the generated text
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// GenerateRequest is the input for one generation call.
type GenerateRequest struct {
	// Prompt is the user message
	Prompt string

	// SystemMessage sets the role instruction; empty means none
	SystemMessage string

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature overrides the configured sampling temperature
	Temperature float32
}

// GenerateResponse carries the generated text and usage accounting.
type GenerateResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama, API-compatible proxies)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Temperature for sampling
	Temperature float32

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// ConfigFromModel converts the workflow configuration into provider config.
func ConfigFromModel(cfg model.LLMConfig, httpCfg model.HTTPConfig) Config {
	return Config{
		Provider:    cfg.Provider,
		Model:       cfg.Model,
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		HTTPProxy:   httpCfg.HTTPProxy,
		HTTPSProxy:  httpCfg.HTTPSProxy,
		NoProxy:     httpCfg.NoProxy,
	}
}
