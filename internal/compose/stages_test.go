package compose

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pkozlov/newsbrief/internal/llm"
)

type capturingProvider struct {
	lastReq llm.GenerateRequest
	text    string
	err     error
}

func (p *capturingProvider) Name() string                       { return "fake" }
func (p *capturingProvider) IsAvailable(_ context.Context) bool { return true }

func (p *capturingProvider) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	p.lastReq = req
	if p.err != nil {
		return nil, p.err
	}
	return &llm.GenerateResponse{Text: p.text}, nil
}

func TestCurate_EmbedsItemsInPrompt(t *testing.T) {
	provider := &capturingProvider{text: "1. picked story"}
	curator := NewCurator(provider)

	out, err := curator.Curate(context.Background(), "--- Article 1 ---\nTitle: Launch")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out != "1. picked story" {
		t.Errorf("Expected provider text passed through, got %q", out)
	}
	if !strings.Contains(provider.lastReq.Prompt, "Title: Launch") {
		t.Error("Expected item text embedded in the curation prompt")
	}
	if provider.lastReq.SystemMessage != curatorSystem {
		t.Error("Expected curator system message")
	}
}

func TestCurate_WrapsProviderError(t *testing.T) {
	provider := &capturingProvider{err: errors.New("rate limited")}
	_, err := NewCurator(provider).Curate(context.Background(), "items")
	if err == nil || !strings.Contains(err.Error(), "curate: rate limited") {
		t.Errorf("Expected wrapped curate error, got %v", err)
	}
}

func TestWrite_EmbedsMaterialInPrompt(t *testing.T) {
	provider := &capturingProvider{text: "so this happened..."}
	writer := NewWriter(provider)

	out, err := writer.Write(context.Background(), "ARTICLE 1: full text")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out != "so this happened..." {
		t.Errorf("Expected provider text passed through, got %q", out)
	}
	if !strings.Contains(provider.lastReq.Prompt, "ARTICLE 1: full text") {
		t.Error("Expected material embedded in the writer prompt")
	}
	if provider.lastReq.SystemMessage != writerSystem {
		t.Error("Expected writer system message")
	}
}

func TestWrite_WrapsProviderError(t *testing.T) {
	provider := &capturingProvider{err: errors.New("timeout")}
	_, err := NewWriter(provider).Write(context.Background(), "material")
	if err == nil || !strings.Contains(err.Error(), "write draft: timeout") {
		t.Errorf("Expected wrapped draft error, got %v", err)
	}
}

func TestVerifierPrompt_ContainsDraftAndSources(t *testing.T) {
	prompt := VerifierPrompt("my draft", "my sources")
	if !strings.Contains(prompt, "my draft") || !strings.Contains(prompt, "my sources") {
		t.Error("Expected draft and sources in the verifier prompt")
	}
	if !strings.Contains(prompt, "Overall Status: PASSED / FAILED") {
		t.Error("Expected report format instructions")
	}
}

func TestRewritePrompt_ContainsAllInputs(t *testing.T) {
	prompt := RewritePrompt("my draft", "my report", "my sources")
	for _, part := range []string{"my draft", "my report", "my sources"} {
		if !strings.Contains(prompt, part) {
			t.Errorf("Expected %q in the rewrite prompt", part)
		}
	}
}
