package llm

import (
	"context"
	"fmt"
	"strings"

	"casetender/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Rewrite rephrases a synthesized summary for fluency
	Rewrite(ctx context.Context, req RewriteRequest) (*RewriteResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// RewriteRequest contains the input for a summary rewrite
type RewriteRequest struct {
	// Summary is the deterministic summary to polish
	Summary string

	// Case is the record the summary belongs to (context for the prompt)
	Case *model.Case

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// RewriteResponse contains the LLM's rewrite output
type RewriteResponse struct {
	// Summary is the rewritten summary text
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 300,
	}
}

const systemPrompt = "You edit short Russian summaries of immigration case stories. " +
	"You only rephrase for fluency. You never add facts, numbers, or outcomes " +
	"that are not already in the text."

// BuildPrompt constructs the default rewrite prompt. The instructions pin the
// output to the facts already present so the model cannot invent outcomes.
func BuildPrompt(summary string, rec *model.Case) string {
	var b strings.Builder

	b.WriteString("Rewrite the summary below in natural Russian.\n\n")
	b.WriteString("RULES:\n")
	b.WriteString("1. Keep every fact exactly as stated. Do not add outcomes, dates, or amounts.\n")
	b.WriteString("2. One or two sentences, at most 150 characters total.\n")
	b.WriteString("3. Reply with the rewritten summary only, no preamble and no quotes.\n\n")

	if rec != nil {
		if rec.Visa != "" {
			fmt.Fprintf(&b, "Visa type: %s\n", rec.Visa)
		}
		if rec.Field != "" {
			fmt.Fprintf(&b, "Field: %s\n", rec.Field)
		}
	}

	fmt.Fprintf(&b, "\nSummary:\n%s\n", summary)

	return b.String()
}
