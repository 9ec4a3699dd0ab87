package textclean

import "regexp"

// The lookup tables below are tuned to one community's idiom. They are
// literal data, carried over verbatim; do not extrapolate grammar from them.

// TitleStopPhrases are titles (or title prefixes) considered too generic to
// keep. Matched lowercase.
var TitleStopPhrases = []string{
	"eb-1a кейс", "eb-2 niw кейс", "niw кейс", "o-1 кейс", "o-1a кейс", "o-1b кейс",
	"привет", "всем привет", "ура", "здравствуйте", "ребята", "хочу поделиться",
	"добрый день", "доброе утро", "моя очередь", "делюсь", "approval", "approved",
	"апрув", "одобрили", "аппрув",
}

// BareVisaTokens are titles that are merely a visa type.
var BareVisaTokens = []string{
	"eb-1a", "eb-2 niw", "eb-2", "o-1", "o-1a", "o-1b", "niw",
}

// GreetingWords open the greeting phrases; a title starting with one is
// treated as garbage even when the full phrase differs.
var GreetingWords = []string{
	"привет", "ура", "здравствуйте", "ребята", "делюсь",
}

// brandNames are third-party service names replaced with a generic token to
// avoid implicit endorsement.
var brandNames = []string{
	"passright", "wegreened", "idreem", "prideimmigration", "pride immigration",
	"immigrationhelp", "usvisahelp", "talentpetition", "шамаев", "greencard.pro",
	"lawfirm", "visalaw",
}

// BrandToken replaces brand names in cleaned text.
const BrandToken = "[сервис]"

// greetingPatterns are stripped from the start of the string only, never
// mid-text. Applied until no pattern matches.
var greetingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(всем\s+)?привет[!.\s]*`),
	regexp.MustCompile(`(?i)^ура[!,.\s]+`),
	regexp.MustCompile(`(?i)^здравствуйте[!.\s]*`),
	regexp.MustCompile(`(?i)^ребята[!,.\s]*`),
	regexp.MustCompile(`(?i)^(хочу\s+)?поделиться[!.\s]*`),
	regexp.MustCompile(`(?i)^добр(ый|ое)\s+(день|утро)[!.\s]*`),
	regexp.MustCompile(`(?i)^моя\s+очередь[!.\s]*`),
	regexp.MustCompile(`(?i)^делюсь[!.\s]*`),
	regexp.MustCompile(`^\*+\s*`),
}

var (
	emphasisRe    = regexp.MustCompile(`\*+|__+`)
	hashtagRe     = regexp.MustCompile(`#[\p{L}\p{N}_]+\s*`)
	placeholderRe = regexp.MustCompile(`(?i)\[name\]|\[имя\]|\[ссылка\]|\[аккаунт\]`)
	emojiRe       = regexp.MustCompile(`[☺💫📖🃏📍😁🙂🥳🙏🎉✨💪🔥❤` + "️" + `]+`)

	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
	allSpaceRunRe = regexp.MustCompile(`\s+`)
	blankLineRe   = regexp.MustCompile(`[ \t]*\n[\s]*\n[\s]*`)
	lineEdgeRe    = regexp.MustCompile(`[ \t]*\n[ \t]*`)
)

// brandRes pairs each brand with a Unicode-aware word-boundary pattern.
// RE2's \b is ASCII-only and never fires next to Cyrillic, so boundaries are
// spelled out as non-letter/non-digit context.
var brandRes = buildBrandPatterns(brandNames)

type brandPattern struct {
	re *regexp.Regexp
}

func buildBrandPatterns(brands []string) []brandPattern {
	out := make([]brandPattern, 0, len(brands))
	for _, b := range brands {
		p := `(?i)(^|[^\p{L}\p{N}])(` + regexp.QuoteMeta(b) + `)($|[^\p{L}\p{N}])`
		out = append(out, brandPattern{re: regexp.MustCompile(p)})
	}
	return out
}
