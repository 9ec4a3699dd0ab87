package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"casetender/internal/model"
)

func ollamaStub(t *testing.T, response string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Bad request body: %v", err)
		}
		if req.Stream {
			t.Error("Expected non-streaming request")
		}
		if !strings.Contains(req.Prompt, "Summary:") {
			t.Errorf("Expected default prompt, got %q", req.Prompt)
		}

		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:    req.Model,
			Response: response,
			Done:     true,
		})
	}))
}

func newTestPolisher(t *testing.T, baseURL string) *Polisher {
	t.Helper()
	p, err := NewPolisher(Config{
		Provider: "ollama",
		Model:    "test-model",
		BaseURL:  baseURL,
		Timeout:  5,
	})
	if err != nil {
		t.Fatalf("NewPolisher failed: %v", err)
	}
	return p
}

func TestPolisher_RewritesSummary(t *testing.T) {
	server := ollamaStub(t, ` "Петицию одобрили за 90 дней." `)
	defer server.Close()

	p := newTestPolisher(t, server.URL)
	rec := &model.Case{ID: "c1", Visa: "EB-1A"}

	got, err := p.Polish(context.Background(), "Одобрили петицию за 90 дней.", rec)
	if err != nil {
		t.Fatalf("Polish failed: %v", err)
	}
	if got != "Петицию одобрили за 90 дней." {
		t.Errorf("Expected trimmed rewrite, got %q", got)
	}
}

func TestPolisher_RejectsOverlongRewrite(t *testing.T) {
	server := ollamaStub(t, strings.Repeat("очень длинный текст ", 20))
	defer server.Close()

	p := newTestPolisher(t, server.URL)
	if _, err := p.Polish(context.Background(), "Одобрили петицию.", &model.Case{}); err == nil {
		t.Error("Expected overlong rewrite rejected")
	}
}

func TestPolisher_RejectsEmptyRewrite(t *testing.T) {
	server := ollamaStub(t, "  ")
	defer server.Close()

	p := newTestPolisher(t, server.URL)
	if _, err := p.Polish(context.Background(), "Одобрили петицию.", &model.Case{}); err == nil {
		t.Error("Expected empty rewrite rejected")
	}
}

func TestPolisher_RejectsInventedApproval(t *testing.T) {
	server := ollamaStub(t, "Кейс одобрили без проблем.")
	defer server.Close()

	p := newTestPolisher(t, server.URL)
	if _, err := p.Polish(context.Background(), "Ждем решения по петиции уже три месяца.", &model.Case{}); err == nil {
		t.Error("Expected invented approval verdict rejected")
	}
}

func TestPolisher_EmptySummaryPassthrough(t *testing.T) {
	// No server: an empty summary must never reach the provider
	p := newTestPolisher(t, "http://127.0.0.1:0")
	got, err := p.Polish(context.Background(), "   ", &model.Case{})
	if err != nil {
		t.Fatalf("Polish failed: %v", err)
	}
	if got != "   " {
		t.Errorf("Expected input returned unchanged, got %q", got)
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "mystery"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNewProvider_DisabledIsNil(t *testing.T) {
	p, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p != nil {
		t.Error("Expected nil provider when disabled")
	}
}

func TestNewPolisher_RequiresProvider(t *testing.T) {
	if _, err := NewPolisher(Config{}); err == nil {
		t.Error("Expected error when no provider configured")
	}
}

func TestBuildPrompt_IncludesCaseContext(t *testing.T) {
	prompt := BuildPrompt("Одобрили петицию.", &model.Case{Visa: "O-1A", Field: "IT"})

	if !strings.Contains(prompt, "Visa type: O-1A") {
		t.Errorf("Expected visa in prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "Одобрили петицию.") {
		t.Errorf("Expected summary in prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "150 characters") {
		t.Errorf("Expected length rule in prompt, got %q", prompt)
	}
}
