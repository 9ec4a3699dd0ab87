package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"casetender/internal/model"
)

// maxSummaryRunes mirrors the summary length cap enforced by the synthesizer.
// A polished summary that breaks it is rejected, not trimmed.
const maxSummaryRunes = 150

// Polisher wraps a provider and guards the rewrite output. The deterministic
// summary always survives: any rejection surfaces as an error and the caller
// keeps what it had.
type Polisher struct {
	provider Provider
}

// NewPolisher creates a polisher from config. An empty provider name is an
// error here; callers should not construct a polisher when polish is off.
func NewPolisher(config Config) (*Polisher, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}
	return &Polisher{provider: provider}, nil
}

// Provider exposes the underlying provider (for availability checks).
func (p *Polisher) Provider() Provider {
	return p.provider
}

// Polish rewrites a summary for fluency. The output is validated: it must be
// non-empty, fit the summary length cap, and not introduce an approval verdict
// the deterministic summary did not carry.
func (p *Polisher) Polish(ctx context.Context, summary string, rec *model.Case) (string, error) {
	if strings.TrimSpace(summary) == "" {
		return summary, nil
	}

	resp, err := p.provider.Rewrite(ctx, RewriteRequest{
		Summary: summary,
		Case:    rec,
	})
	if err != nil {
		return "", err
	}

	polished := strings.TrimSpace(resp.Summary)
	polished = strings.Trim(polished, `"«»`)

	if polished == "" {
		return "", fmt.Errorf("%s returned an empty rewrite", p.provider.Name())
	}
	if utf8.RuneCountInString(polished) > maxSummaryRunes {
		return "", fmt.Errorf("%s rewrite exceeds %d characters", p.provider.Name(), maxSummaryRunes)
	}
	if introducesApproval(summary, polished) {
		return "", fmt.Errorf("%s rewrite invented an approval verdict", p.provider.Name())
	}

	return polished, nil
}

// introducesApproval reports whether the rewrite claims an approval the
// original summary never stated.
func introducesApproval(original, polished string) bool {
	return containsApproval(polished) && !containsApproval(original)
}

var approvalMarkers = []string{"одобр", "апрув", "approv"}

func containsApproval(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range approvalMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
