package classify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"casetender/internal/model"
	"casetender/internal/textclean"
)

const (
	maxTitleRunes = 60
	// minimum rune index a word-boundary cut may fall at; below that the
	// title is cut hard
	titleCutFloor = 40
)

// professionEntry maps context keywords to a profession label.
type professionEntry struct {
	label    string
	keywords []string
}

// professionTable is scanned in order; the first entry with a keyword hit in
// the cleaned context wins.
var professionTable = []professionEntry{
	{"IT", []string{"разработ", "программист", "devops", "developer", "software", "инженер по", "data scientist", "айти"}},
	{"Наука", []string{"научн", "исследова", "research", "phd", "аспирант", "статьи", "публикаци", "цитирован"}},
	{"Искусство", []string{"художник", "дизайн", "артист", "актер", "актрис", "режиссер"}},
	{"Музыка", []string{"музык", "композитор", "вокалист"}},
	{"Бизнес", []string{"бизнес", "предпринимат", "founder", "стартап", "сооснователь"}},
	{"Маркетинг", []string{"маркет", "smm", "бренд-"}},
	{"Спорт", []string{"спортсмен", "тренер", "чемпион"}},
	{"Архитектура", []string{"архитект"}},
	{"Медицина", []string{"врач", "медицин", "хирург"}},
	{"Мода", []string{"модель", "стилист", "fashion"}},
}

// GenerateTitle composes a title from structured fields only, never from
// free text directly. Layout: "VISA: Profession (mod, mod, mod)".
func GenerateTitle(rec *model.Case) string {
	visa := rec.Visa
	if visa == "" {
		visa = "EB-1A"
	}

	title := visa
	if prof := inferProfession(rec); prof != "" {
		title += ": " + prof
	}

	if mods := titleModifiers(rec); len(mods) > 0 {
		title += " (" + strings.Join(mods, ", ") + ")"
	}

	return truncateAtWord(title, maxTitleRunes, titleCutFloor)
}

// inferProfession scans the cleaned context against the profession table and
// falls back to the record's field tag.
func inferProfession(rec *model.Case) string {
	context := strings.ToLower(textclean.Clean(rec.Context))
	if context != "" {
		for _, entry := range professionTable {
			for _, kw := range entry.keywords {
				if strings.Contains(context, kw) {
					return entry.label
				}
			}
		}
	}
	return rec.Field
}

// titleModifiers returns up to three modifiers in fixed priority order:
// premium, RFE, NOID, then exactly one location/timeline detail.
func titleModifiers(rec *model.Case) []string {
	var mods []string
	if rec.Premium {
		mods = append(mods, "premium")
	}
	if rec.RFE {
		mods = append(mods, "RFE")
	}
	if rec.NOID {
		mods = append(mods, "NOID")
	}

	switch {
	case rec.ConsulateCity != "":
		mods = append(mods, rec.ConsulateCity)
	case rec.ServiceCenter != "" && !rec.ServiceCenterUncertain:
		mods = append(mods, rec.ServiceCenter)
	case rec.TimelineDays > 0:
		mods = append(mods, fmt.Sprintf("~%d дней", rec.TimelineDays))
	}

	if len(mods) > 3 {
		mods = mods[:3]
	}
	return mods
}

// truncateAtWord cuts s to at most max runes, preferring the last word
// boundary at or past floor runes.
func truncateAtWord(s string, max, floor int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	cut := runes[:max]

	if idx := lastSpaceIndex(cut); idx >= floor {
		cut = cut[:idx]
	}

	return strings.TrimRight(string(cut), " ,:;(")
}

func lastSpaceIndex(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
