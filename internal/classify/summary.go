package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"casetender/internal/model"
	"casetender/internal/textclean"
)

const (
	maxSummaryRunes  = 150
	minSentenceRunes = 20
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// fillerPhrases open sentences that carry no case information. Matched as
// lowercase prefixes after trimming.
var fillerPhrases = []string{
	"привет", "всем привет", "ура", "здравствуйте", "ребята",
	"спасибо", "благодарю", "удачи", "hello", "thanks",
}

var (
	approvalTokens = []string{"одобр", "апрув", "аппрув", "approved", "approval", "issued", "выдали", "выдан"}
	rfeTokens      = []string{"rfe", "рфе"}
	timelineTokens = []string{"дней", "дня", "недел", "месяц", "nebraska", "texas", "небраска", "техас"}
	receiptTokens  = []string{"получ", "пришл", "ждал", "жду", "ожидан", "занял"}
	mechanicTokens = []string{"подал", "подач", "критери", "петици", "интервью", "консульств", "filed", "petition", "criteria", "interview", "consulate"}
)

// summaryRule is one pass of the first-match-wins cascade. Rules are kept as
// an ordered table so the selection policy stays auditable rule by rule.
type summaryRule struct {
	name  string
	match func(lower string) bool
}

var summaryRules = []summaryRule{
	{"approval", func(s string) bool {
		return containsAny(s, approvalTokens)
	}},
	{"rfe-approval", func(s string) bool {
		return containsAny(s, rfeTokens) && containsAny(s, approvalTokens)
	}},
	{"timeline", func(s string) bool {
		return containsAny(s, timelineTokens) && containsAny(s, receiptTokens)
	}},
	{"mechanics", func(s string) bool {
		return containsAny(s, mechanicTokens)
	}},
	{"any", func(s string) bool {
		return true
	}},
}

// ExtractSummary selects the most informative sentence from the cleaned
// context, falling back to a synthesis from structured fields when no
// sentence qualifies. The result never exceeds 150 runes.
func ExtractSummary(context string, rec *model.Case) string {
	sentences := usableSentences(context)
	if len(sentences) == 0 {
		return structuredFallback(rec)
	}

	for _, rule := range summaryRules {
		for _, sent := range sentences {
			if rule.match(strings.ToLower(sent)) {
				return truncateSummary(sent)
			}
		}
	}

	return structuredFallback(rec)
}

// SplitSentences splits text on sentence-terminal punctuation and trims the
// pieces. Empty pieces are dropped.
func SplitSentences(text string) []string {
	var out []string
	for _, part := range sentenceSplitRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// usableSentences returns the non-garbage sentences of the context in order.
func usableSentences(context string) []string {
	var out []string
	for _, sent := range SplitSentences(context) {
		if sentenceGarbage(sent) {
			continue
		}
		out = append(out, sent)
	}
	return out
}

// sentenceGarbage reports filler openings and sub-threshold lengths.
func sentenceGarbage(sent string) bool {
	if utf8.RuneCountInString(sent) < minSentenceRunes {
		return true
	}
	lower := strings.ToLower(sent)
	for _, phrase := range fillerPhrases {
		if strings.HasPrefix(lower, phrase) {
			return true
		}
	}
	return false
}

// structuredFallback synthesizes a summary from structured fields when the
// context yields nothing.
func structuredFallback(rec *model.Case) string {
	var parts []string
	if rec.Premium {
		parts = append(parts, "Premium")
	}
	if rec.RFE {
		parts = append(parts, "после RFE")
	}
	if rec.NOID {
		parts = append(parts, "NOID")
	}
	switch {
	case rec.ServiceCenter != "" && !rec.ServiceCenterUncertain:
		parts = append(parts, rec.ServiceCenter)
	case rec.ConsulateCity != "":
		parts = append(parts, rec.ConsulateCity)
	}

	if len(parts) > 0 {
		return "Одобрение. " + strings.Join(parts, ", ") + "."
	}
	return "Одобрение (по словам автора)."
}

func truncateSummary(sent string) string {
	sent = textclean.CleanTitle(sent)
	if utf8.RuneCountInString(sent) <= maxSummaryRunes {
		return sent
	}

	runes := []rune(sent)
	cut := runes[:maxSummaryRunes-3]
	if idx := lastSpaceIndex(cut); idx >= maxSummaryRunes/2 {
		cut = cut[:idx]
	}
	return strings.TrimRight(string(cut), " ,:;") + "..."
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
