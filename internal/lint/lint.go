// Package lint is the QA gate over a cleaned case store. Findings come in two
// severities: errors (structural violations, fail the run) and warnings (soft
// heuristics, reported only).
package lint

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"casetender/internal/model"
	"casetender/internal/textclean"
)

// failPatterns are banned in any text field.
var failPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[name\]`),     // redaction placeholder leaked
	regexp.MustCompile(`\*\*`),             // markdown bold leaked
	regexp.MustCompile(`^#[\p{L}\p{N}_]+`), // hashtag at start
}

// warnPatterns are soft heuristics in title/context.
var warnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(привет|ура|здравствуй)`),
	regexp.MustCompile(`\[имя\]`),
	regexp.MustCompile(`\[ссылка\]`),
}

const (
	minTitleRunes      = 5
	minContextRunes    = 20
	nearDupeMinOverlap = 10
)

// Findings is the result of linting a store.
type Findings struct {
	Errors   []string
	Warnings []string
}

// Failed reports whether the lint run must exit non-zero.
func (f *Findings) Failed() bool {
	return len(f.Errors) > 0
}

// Run lints every case in the batch.
func Run(cases []model.Case) *Findings {
	f := &Findings{}
	for i := range cases {
		lintCase(&cases[i], f)
	}
	return f
}

func lintCase(rec *model.Case, f *Findings) {
	id := rec.ID
	if id == "" {
		id = "unknown"
	}

	fields := []struct {
		name  string
		value string
	}{
		{"title", rec.Title},
		{"context", rec.Context},
		{"summary", rec.Summary},
	}

	for _, field := range fields {
		for _, re := range failPatterns {
			if re.MatchString(field.value) {
				f.Errors = append(f.Errors, fmt.Sprintf("%s: %s contains banned pattern %q", id, field.name, re.String()))
			}
		}
	}

	titleLower := strings.ToLower(strings.TrimSpace(rec.Title))
	if isStopTitle(titleLower) {
		f.Errors = append(f.Errors, fmt.Sprintf("%s: title is generic stop-phrase %q", id, rec.Title))
	}
	if utf8.RuneCountInString(strings.TrimSpace(rec.Title)) < minTitleRunes {
		f.Errors = append(f.Errors, fmt.Sprintf("%s: title too short (%d chars)", id, utf8.RuneCountInString(rec.Title)))
	}

	for _, field := range fields[:2] { // title, context
		for _, re := range warnPatterns {
			if re.MatchString(field.value) {
				f.Warnings = append(f.Warnings, fmt.Sprintf("%s: %s matches warning pattern %q", id, field.name, re.String()))
			}
		}
	}

	if nearDuplicate(rec.Summary, rec.Context) {
		f.Warnings = append(f.Warnings, fmt.Sprintf("%s: summary equals context", id))
	}

	if utf8.RuneCountInString(strings.TrimSpace(rec.Context)) < minContextRunes {
		f.Warnings = append(f.Warnings, fmt.Sprintf("%s: context too short (%d chars)", id, utf8.RuneCountInString(rec.Context)))
	}
}

// isStopTitle reports degenerate titles: known stop-phrases and bare visa
// tokens.
func isStopTitle(titleLower string) bool {
	for _, phrase := range textclean.TitleStopPhrases {
		if titleLower == phrase {
			return true
		}
	}
	for _, visa := range textclean.BareVisaTokens {
		if titleLower == visa {
			return true
		}
	}
	return false
}

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// nearDuplicate reports a summary that restates its context: normalized
// equality, or containment once the overlap is long enough to mean something.
func nearDuplicate(summary, context string) bool {
	if summary == "" || context == "" {
		return false
	}
	s := nonWordRe.ReplaceAllString(strings.ToLower(summary), "")
	c := nonWordRe.ReplaceAllString(strings.ToLower(context), "")
	if s == c {
		return true
	}
	return utf8.RuneCountInString(s) > nearDupeMinOverlap && strings.Contains(c, s)
}
