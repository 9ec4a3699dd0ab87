// Package textclean scrubs formatting artifacts, placeholders, brand names,
// and greeting boilerplate from free-text case fields.
//
// Two cleaning strengths exist: Clean preserves narrative tone for body text
// (single line breaks survive), CleanTitle is aggressive and used for titles
// and summaries (greetings, emoji, and all line breaks removed). Both are
// deterministic, pure, and idempotent.
package textclean

import "strings"

// Clean applies the light cleaning pass used for body/context text.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = stripArtifacts(text)
	return collapseLight(text)
}

// CleanTitle applies the aggressive cleaning pass used for titles and
// summaries: everything Clean does, plus emoji removal, leading greeting
// stripping, and full line-break collapse.
func CleanTitle(text string) string {
	if text == "" {
		return ""
	}
	text = stripArtifacts(text)
	text = emojiRe.ReplaceAllString(text, "")
	text = stripGreetings(text)
	return strings.TrimSpace(allSpaceRunRe.ReplaceAllString(text, " "))
}

// stripArtifacts removes markdown emphasis, hashtags, redaction placeholders,
// and brand names. Shared by both cleaning strengths.
func stripArtifacts(text string) string {
	text = emphasisRe.ReplaceAllString(text, "")
	text = hashtagRe.ReplaceAllString(text, "")
	text = placeholderRe.ReplaceAllString(text, "")
	return replaceBrands(text)
}

// replaceBrands substitutes every brand occurrence with BrandToken. A single
// ReplaceAll pass misses adjacent occurrences because the trailing boundary
// character is consumed by the match, so it loops to a fixpoint.
func replaceBrands(text string) string {
	for _, bp := range brandRes {
		for {
			next := bp.re.ReplaceAllString(text, "${1}"+BrandToken+"${3}")
			if next == text {
				break
			}
			text = next
		}
	}
	return text
}

// stripGreetings removes greeting/filler phrases anchored to the start of the
// string. Patterns are reapplied until none match, so stacked greetings
// ("Ура! Привет! ...") come off in one call and the pass stays idempotent.
func stripGreetings(text string) string {
	for {
		trimmed := strings.TrimLeft(text, " \t\n")
		matched := false
		for _, re := range greetingPatterns {
			if loc := re.FindStringIndex(trimmed); loc != nil && loc[0] == 0 && loc[1] > 0 {
				trimmed = trimmed[loc[1]:]
				matched = true
			}
		}
		if !matched {
			return trimmed
		}
		text = trimmed
	}
}

// collapseLight normalizes whitespace while keeping single line breaks:
// blank-line runs become one newline, space runs become one space, and line
// edges are trimmed.
func collapseLight(text string) string {
	text = blankLineRe.ReplaceAllString(text, "\n")
	text = lineEdgeRe.ReplaceAllString(text, "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
