// Package pipeline runs the case quality gate: garbage filter, text cleaning,
// and title/summary synthesis over a full store snapshot.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"casetender/internal/classify"
	"casetender/internal/llm"
	"casetender/internal/model"
	"casetender/internal/textclean"
)

// hideContextRunes is the cleaned-context length below which the context is
// hidden regardless of duplication.
const hideContextRunes = 30

// Pipeline orchestrates the batch clean.
type Pipeline struct {
	polisher *llm.Polisher // optional, nil when disabled
}

// NewPipeline creates a pipeline. An LLM polisher is attached only when the
// config names a provider; a provider that fails to initialize is reported
// and skipped, never fatal.
func NewPipeline(cfg *model.Config) *Pipeline {
	var polisher *llm.Polisher
	if cfg.LLM.Provider != "" {
		p, err := llm.NewPolisher(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM polish disabled: %v\n", err)
		} else {
			polisher = p
		}
	}
	return &Pipeline{polisher: polisher}
}

// Result summarizes one batch run.
type Result struct {
	Original   int
	Kept       []model.Case
	RemovedIDs []string
}

// Run filters and rewrites every case in the store, preserving order. The
// store itself is not mutated; the caller decides whether to persist.
func (p *Pipeline) Run(ctx context.Context, st *model.Store) *Result {
	res := &Result{Original: len(st.Cases)}

	for i := range st.Cases {
		cleaned, ok := p.Process(ctx, &st.Cases[i])
		if !ok {
			id := st.Cases[i].ID
			if id == "" {
				id = "unknown"
			}
			res.RemovedIDs = append(res.RemovedIDs, id)
			continue
		}
		res.Kept = append(res.Kept, *cleaned)
	}

	return res
}

// Process cleans a single case. The second return is false when the record is
// garbage and should be dropped.
func (p *Pipeline) Process(ctx context.Context, rec *model.Case) (*model.Case, bool) {
	if classify.CaseGarbage(rec) {
		return nil, false
	}

	cleaned := *rec
	cleaned.Title = textclean.CleanTitle(rec.Title)
	cleaned.Context = textclean.Clean(rec.Context)

	if classify.TitleGarbage(cleaned.Title) {
		cleaned.Title = classify.GenerateTitle(rec)
	}

	cleaned.Summary = classify.ExtractSummary(cleaned.Context, rec)
	cleaned.Summary = p.polish(ctx, cleaned.Summary, rec)

	cleaned.HideContext = classify.ContextDuplicate(cleaned.Summary, cleaned.Context) ||
		utf8.RuneCountInString(cleaned.Context) < hideContextRunes

	return &cleaned, true
}

// polish optionally rewrites the synthesized summary for fluency. A polish
// failure keeps the deterministic summary and warns.
func (p *Pipeline) polish(ctx context.Context, summary string, rec *model.Case) string {
	if p.polisher == nil {
		return summary
	}
	polished, err := p.polisher.Polish(ctx, summary, rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: summary polish failed for %s: %v\n", rec.ID, err)
		return summary
	}
	return polished
}
