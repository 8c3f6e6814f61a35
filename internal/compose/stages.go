package compose

import (
	"context"
	"fmt"

	"github.com/pkozlov/newsbrief/internal/llm"
)

// Stages are single-shot: one generation call each, no retry, no validation
// of the output shape. Whatever text comes back flows downstream as-is and
// is penalized later by verification if it contains nothing verifiable.

// Curator selects the most newsworthy subset of collected items.
type Curator struct {
	provider llm.Provider
}

// NewCurator creates a curation stage over the given provider.
func NewCurator(provider llm.Provider) *Curator {
	return &Curator{provider: provider}
}

// Curate runs one selection call over the formatted item list.
func (c *Curator) Curate(ctx context.Context, itemsText string) (string, error) {
	resp, err := c.provider.Generate(ctx, llm.GenerateRequest{
		Prompt:        CuratorPrompt(itemsText),
		SystemMessage: curatorSystem,
	})
	if err != nil {
		return "", fmt.Errorf("curate: %w", err)
	}
	return resp.Text, nil
}

// Writer drafts the candidate post from curated material.
type Writer struct {
	provider llm.Provider
}

// NewWriter creates a draft-composition stage over the given provider.
func NewWriter(provider llm.Provider) *Writer {
	return &Writer{provider: provider}
}

// Write runs one drafting call over the enriched source material.
func (w *Writer) Write(ctx context.Context, material string) (string, error) {
	resp, err := w.provider.Generate(ctx, llm.GenerateRequest{
		Prompt:        WriterPrompt(material),
		SystemMessage: writerSystem,
	})
	if err != nil {
		return "", fmt.Errorf("write draft: %w", err)
	}
	return resp.Text, nil
}
