package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates a generation provider from configuration. Unlike an
// optional summarizer, the workflow cannot run without one, so an empty
// provider name is an error.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, fmt.Errorf("no LLM provider configured")

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}
