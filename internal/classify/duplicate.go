package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// context shorter than this (after normalization) is always a duplicate
	minDistinctRunes = 30
	// context must be at least this much longer than the summary to count
	// as adding information
	duplicateLengthRatio = 1.5
	// budget for recovered context, in runes
	expandBudgetRunes = 200
)

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normalizeForCompare lowercases and strips every non-word rune so that
// punctuation and spacing differences do not mask duplication.
func normalizeForCompare(s string) string {
	return nonWordRe.ReplaceAllString(strings.ToLower(s), "")
}

// ContextDuplicate reports whether the context adds no information beyond the
// summary: one normalized string contains the other and the context carries no
// meaningful extra length, or the context is too short to stand on its own.
func ContextDuplicate(summary, context string) bool {
	sum := normalizeForCompare(summary)
	ctx := normalizeForCompare(context)

	if sum == "" || ctx == "" {
		return true
	}

	ctxLen := utf8.RuneCountInString(ctx)
	if ctxLen < minDistinctRunes {
		return true
	}

	if strings.Contains(ctx, sum) || strings.Contains(sum, ctx) {
		sumLen := utf8.RuneCountInString(sum)
		if float64(ctxLen) <= float64(sumLen)*duplicateLengthRatio {
			return true
		}
	}

	return false
}

// ExpandContext recovers sentences from the raw (uncleaned) context that are
// not subsumed by the summary, concatenating them until the length budget is
// reached. When nothing new is found the original context comes back
// unchanged.
func ExpandContext(rawContext, summary string) string {
	normSummary := normalizeForCompare(summary)

	var picked []string
	total := 0
	for _, sent := range SplitSentences(rawContext) {
		norm := normalizeForCompare(sent)
		if norm == "" || strings.Contains(normSummary, norm) {
			continue
		}
		picked = append(picked, sent)
		total += utf8.RuneCountInString(sent)
		if total >= expandBudgetRunes {
			break
		}
	}

	if len(picked) == 0 {
		return rawContext
	}
	return strings.Join(picked, ". ") + "."
}
