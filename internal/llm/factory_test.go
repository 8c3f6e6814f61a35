package llm

import (
	"strings"
	"testing"
)

func TestNewProvider_OpenAI(t *testing.T) {
	p, err := NewProvider(Config{Provider: "openai", APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Expected openai provider, got %s", p.Name())
	}
}

func TestNewProvider_Ollama(t *testing.T) {
	p, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Expected ollama provider, got %s", p.Name())
	}
}

func TestNewProvider_CaseInsensitive(t *testing.T) {
	p, err := NewProvider(Config{Provider: "OpenAI", APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Expected openai provider, got %s", p.Name())
	}
}

func TestNewProvider_Empty(t *testing.T) {
	_, err := NewProvider(Config{})
	if err == nil || !strings.Contains(err.Error(), "no LLM provider configured") {
		t.Errorf("Expected missing provider error, got %v", err)
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "gemini"})
	if err == nil || !strings.Contains(err.Error(), "unknown LLM provider") {
		t.Errorf("Expected unknown provider error, got %v", err)
	}
}
