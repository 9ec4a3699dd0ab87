// Package render turns cleaned case records into MDX page fragments for the
// static docs build: a frontmatter block plus AccordionGroup bodies.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"casetender/internal/classify"
	"casetender/internal/model"
	"casetender/internal/textclean"
)

const (
	maxAccordionTitleChars = 55
	maxAccordionSummary    = 200
	maxContextChars        = 400
	// a sentence-boundary cut below this length falls back to a hard cut
	contextCutFloor = 200
)

// criteriaLabels maps criterion keys to their display labels.
var criteriaLabels = map[string]string{
	"awards":        "Награды",
	"membership":    "Членство",
	"press":         "СМИ",
	"judging":       "Судейство",
	"contributions": "Вклад",
	"critical_role": "Критическая роль",
	"salary":        "Высокая ЗП",
	"authorship":    "Авторство",
	"exhibitions":   "Выставки",
}

// fieldIcons maps profession fields to frontmatter icons.
var fieldIcons = map[string]string{
	"IT":          "laptop-code",
	"Наука":       "flask",
	"Искусство":   "palette",
	"Бизнес":      "briefcase",
	"Музыка":      "music",
	"Спорт":       "person-running",
	"Мода":        "shirt",
	"Медицина":    "heart-pulse",
	"Маркетинг":   "chart-line",
	"Архитектура": "building",
}

// caseIcon picks an icon by field, falling back to the visa class.
func caseIcon(field, visa string) string {
	if icon, ok := fieldIcons[field]; ok {
		return icon
	}
	if strings.Contains(visa, "O-1") {
		return "bolt"
	}
	if visa == "EB-2 NIW" {
		return "lightbulb"
	}
	return "star"
}

// Accordion renders one case as an MDX accordion.
func Accordion(rec *model.Case) string {
	title := rec.Title
	if title == "" || classify.TitleGarbage(title) {
		title = classify.GenerateTitle(rec)
	}
	title = truncateChars(textclean.CleanTitle(title), maxAccordionTitleChars)

	rawContext := rec.Context
	context := textclean.Clean(rawContext)

	summary := rec.Summary
	if summary == "" {
		summary = classify.ExtractSummary(textclean.Clean(rawContext), rec)
	}
	summary = truncateChars(textclean.CleanTitle(summary), maxAccordionSummary)

	var b strings.Builder
	fmt.Fprintf(&b, "  <Accordion title=%q icon=%q>\n", title, caseIcon(rec.Field, rec.Visa))
	fmt.Fprintf(&b, "    **Итог:** %s\n\n", summary)

	if tags := caseTags(rec); len(tags) > 0 {
		b.WriteString("    <div style={{display: 'flex', flexWrap: 'wrap', gap: '8px', marginBottom: '16px'}}>\n")
		fmt.Fprintf(&b, "      %s\n", strings.Join(tags, " "))
		b.WriteString("    </div>\n\n")
	}

	if shown, display := contextSection(rec, summary, context, rawContext); shown {
		b.WriteString("    ### Контекст\n")
		fmt.Fprintf(&b, "    %s\n\n", display)
	}

	writePackageSection(&b, rec)
	writeChronologySection(&b, rec)

	b.WriteString("  </Accordion>")
	return b.String()
}

// caseTags builds the <code> tag row.
func caseTags(rec *model.Case) []string {
	var tags []string
	add := func(t string) {
		tags = append(tags, "<code>"+t+"</code>")
	}

	if rec.Visa != "" {
		add(rec.Visa)
	}
	if rec.Field != "" {
		add(rec.Field)
	}
	if rec.Premium {
		add("premium")
	}
	if rec.ServiceCenter != "" && !rec.ServiceCenterUncertain {
		add(rec.ServiceCenter)
	}
	switch rec.Prep {
	case model.PrepSelf:
		add("самоподача")
	case model.PrepAttorney:
		add("с адвокатом")
	}
	if rec.RFE {
		add("RFE")
	}
	if rec.NOID {
		add("NOID")
	}
	if rec.ConsulateCity != "" {
		add(rec.ConsulateCity)
	}
	return tags
}

// contextSection decides whether the context paragraph is shown and how it is
// displayed. A context that merely repeats the summary is expanded from the
// raw text when possible, otherwise hidden.
func contextSection(rec *model.Case, summary, context, rawContext string) (bool, string) {
	if context == "" || utf8.RuneCountInString(context) < 50 {
		return false, ""
	}

	sumLen := utf8.RuneCountInString(summary)
	if classify.ContextDuplicate(summary, context) &&
		utf8.RuneCountInString(context) < sumLen*3/2 {
		expanded := classify.ExpandContext(rawContext, summary)
		if expanded != rawContext && utf8.RuneCountInString(expanded)*10 > sumLen*13 {
			context = textclean.Clean(expanded)
		} else {
			return false, ""
		}
	}

	return true, truncateContext(context)
}

// truncateContext cuts the display context to the budget, preferring the last
// sentence boundary when it leaves enough text.
func truncateContext(context string) string {
	if utf8.RuneCountInString(context) <= maxContextChars {
		return context
	}

	runes := []rune(context)
	cut := string(runes[:maxContextChars-3])
	if idx := strings.LastIndex(cut, "."); idx >= 0 && utf8.RuneCountInString(cut[:idx]) > contextCutFloor {
		return cut[:idx+1]
	}
	return cut + "..."
}

func writePackageSection(b *strings.Builder, rec *model.Case) {
	criteria := labelCriteria(rec.EffectiveCriteria())
	if criteria == "" && rec.Attorney == "" && rec.RecLetters == 0 {
		return
	}

	b.WriteString("    ### Что заявляли / использовали в пакете\n")
	if criteria != "" {
		fmt.Fprintf(b, "    В истории упоминаются: %s\n", criteria)
	}
	if rec.Attorney != "" {
		fmt.Fprintf(b, "    - Адвокат: %s\n", rec.Attorney)
	}
	if rec.RecLetters > 0 {
		fmt.Fprintf(b, "    - Рекомендательных писем: %d\n", rec.RecLetters)
	}
	b.WriteString("\n")
}

func writeChronologySection(b *strings.Builder, rec *model.Case) {
	var details []string
	if rec.TimelineDays > 0 {
		details = append(details, fmt.Sprintf("- Срок рассмотрения: ~%d дней", rec.TimelineDays))
	}
	if rec.ConsulateCity != "" {
		details = append(details, "- Консульство: "+rec.ConsulateCity)
	}
	if rec.ServiceCenter != "" && !rec.ServiceCenterUncertain {
		details = append(details, "- Service Center: "+rec.ServiceCenter)
	} else if rec.ServiceCenterNote != "" {
		details = append(details, "- Service Center: "+rec.ServiceCenterNote)
	}
	if rec.CostUSD > 0 {
		details = append(details, "- Расходы: $"+formatThousands(rec.CostUSD))
	}

	if len(details) == 0 {
		return
	}
	b.WriteString("    ### Хронология\n")
	for _, d := range details {
		fmt.Fprintf(b, "    %s\n", d)
	}
	b.WriteString("\n")
}

// labelCriteria joins criterion labels, passing unknown keys through as-is.
func labelCriteria(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if label, ok := criteriaLabels[k]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, k)
		}
	}
	return strings.Join(labels, ", ")
}

// formatThousands renders n with comma thousands separators.
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}

func truncateChars(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
