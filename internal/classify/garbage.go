// Package classify decides which case records carry enough signal to keep and
// synthesizes titles and summaries for the ones that survive.
package classify

import (
	"strings"
	"unicode/utf8"

	"casetender/internal/model"
	"casetender/internal/textclean"
)

const (
	minTitleRunes   = 5
	minContextRunes = 50
)

// TitleGarbage reports whether a title is too generic to keep: too short,
// a known stop-phrase, a bare visa token, or opening with a greeting word.
func TitleGarbage(title string) bool {
	lower := strings.ToLower(strings.TrimSpace(title))

	if utf8.RuneCountInString(lower) < minTitleRunes {
		return true
	}

	for _, phrase := range textclean.TitleStopPhrases {
		if lower == phrase || strings.HasPrefix(lower, phrase) {
			return true
		}
	}

	for _, visa := range textclean.BareVisaTokens {
		if lower == visa {
			return true
		}
	}

	for _, word := range textclean.GreetingWords {
		if strings.HasPrefix(lower, word) {
			return true
		}
	}

	return false
}

// CaseGarbage reports whether an entire record carries no useful content.
// It is a conjunction of weak signals: a generic title AND a short context
// AND no structured metadata. Any one strong signal rescues the record.
func CaseGarbage(rec *model.Case) bool {
	title := textclean.CleanTitle(rec.Title)
	context := textclean.Clean(rec.Context)

	if !TitleGarbage(title) {
		return false
	}
	if utf8.RuneCountInString(context) >= minContextRunes {
		return false
	}
	return !rec.HasStructuredSignal()
}
