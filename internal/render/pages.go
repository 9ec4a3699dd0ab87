package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"casetender/internal/model"
)

// visaOrder fixes the section order on the preview page; unknown visa groups
// follow in first-seen order.
var visaOrder = []string{"EB-1A", "EB-1", "EB-2 NIW", "O-1"}

// frontmatter is the key/value block opening every MDX fragment.
type frontmatter struct {
	Title        string
	SidebarTitle string
	Description  string
	Icon         string
}

func (f frontmatter) render() string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", f.Title)
	fmt.Fprintf(&b, "sidebarTitle: %q\n", f.SidebarTitle)
	fmt.Fprintf(&b, "description: %q\n", f.Description)
	fmt.Fprintf(&b, "icon: %q\n", f.Icon)
	b.WriteString("---\n")
	return b.String()
}

// Page is one generated MDX fragment.
type Page struct {
	Path    string // relative to the stories dir
	Content string
}

// GenerateAll builds the complete page set from a cleaned case batch.
func GenerateAll(cases []model.Case) []Page {
	return []Page{
		{"cases-preview.mdx", PreviewPage(cases)},
		{"with-rfe.mdx", FilteredPage(cases,
			func(c *model.Case) bool { return c.RFE },
			frontmatter{
				Title:       "Кейсы с RFE (Request for Evidence)",
				Description: "Истории успеха, где USCIS запросил дополнительные доказательства.",
				Icon:        "file-circle-question",
			},
			"Одобрение через RFE", "Кейсы с RFE",
			"**RFE** - запрос дополнительных доказательств. Не отказ, а возможность усилить кейс.")},
		{"premium.mdx", FilteredPage(cases,
			func(c *model.Case) bool { return c.Premium },
			frontmatter{
				Title:       "Кейсы с Premium Processing",
				Description: "Истории успеха с ускоренным рассмотрением.",
				Icon:        "bolt",
			},
			"Premium", "Кейсы с Premium",
			"**Premium Processing** - ускоренное рассмотрение за $2,805 (I-140). USCIS дает ответ в течение 15 рабочих дней.")},
		{"self-prepared.mdx", FilteredPage(cases,
			func(c *model.Case) bool { return c.Prep == model.PrepSelf },
			frontmatter{
				Title:       "Самоподача без адвоката",
				Description: "Кейсы самостоятельной подготовки петиции.",
				Icon:        "user",
			},
			"Самоподача", "Кейсы самоподачи",
			"**Самоподача** - подготовка петиции без адвоката. Экономия $5,000-15,000.")},
		{"by-visa/eb-1a.mdx", VisaPage(cases, "EB-1A", "star", "")},
		{"by-visa/eb-2-niw.mdx", VisaPage(cases, "EB-2 NIW", "lightbulb", "")},
		{"by-visa/o-1.mdx", VisaPage(cases, "O-1", "bolt",
			"**O-1** имеет две подкатегории:\n- **O-1A** — для бизнеса, науки, образования, спорта\n- **O-1B** — для искусства, кино, ТВ")},
		{"by-center/nebraska.mdx", CenterPage(cases, "NSC",
			frontmatter{
				Title:       "Кейсы Nebraska Service Center (NSC)",
				Description: "Подборка историй с рассмотрением в Nebraska Service Center.",
				Icon:        "building-columns",
			},
			"Nebraska (NSC)", "Подтвержденные кейсы NSC",
			"**Nebraska Service Center (NSC)** обрабатывает петиции EB-1A, EB-2 NIW и O-1.")},
		{"by-center/vermont.mdx", CenterPage(cases, "VSC",
			frontmatter{
				Title:       "Кейсы Vermont Service Center (VSC)",
				Description: "Истории успеха с рассмотрением в Vermont Service Center.",
				Icon:        "building-columns",
			},
			"Vermont (VSC)", "Подтвержденные кейсы VSC",
			"**Vermont Service Center (VSC)** обрабатывает петиции O-1.")},
	}
}

// WriteAll writes the page set under dir, creating subdirectories as needed.
func WriteAll(dir string, pages []Page) error {
	for _, p := range pages {
		path := filepath.Join(dir, p.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("create page directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(p.Content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", p.Path, err)
		}
	}
	return nil
}

// PreviewPage renders the full showcase grouped by visa class.
func PreviewPage(cases []model.Case) string {
	total := len(cases)
	eb1a := filterCases(cases, func(c *model.Case) bool { return c.Visa == "EB-1A" })
	eb2 := filterCases(cases, func(c *model.Case) bool { return c.Visa == "EB-2 NIW" })
	o1 := filterCases(cases, func(c *model.Case) bool { return strings.HasPrefix(c.Visa, "O-1") })

	var b strings.Builder
	b.WriteString(frontmatter{
		Title:        "Все истории успеха",
		SidebarTitle: fmt.Sprintf("Все истории (%d)", total),
		Description:  fmt.Sprintf("Все %d реальных кейсов из сообщества.", total),
		Icon:         "grid-2",
	}.render())
	b.WriteString("\n<Note>\n")
	fmt.Fprintf(&b, "**%d кейсов** из Telegram-сообщества. Данные из оригинальных сообщений.\n", total)
	b.WriteString("</Note>\n\n")

	b.WriteString("<CardGroup cols={4}>\n")
	fmt.Fprintf(&b, "  <Card title=\"EB-1A (%d)\" icon=\"star\" href=\"/success-stories/by-visa/eb-1a\">\n    Полный список\n  </Card>\n", len(eb1a))
	fmt.Fprintf(&b, "  <Card title=\"EB-2 NIW (%d)\" icon=\"lightbulb\" href=\"/success-stories/by-visa/eb-2-niw\">\n    Полный список\n  </Card>\n", len(eb2))
	fmt.Fprintf(&b, "  <Card title=\"O-1 (%d)\" icon=\"bolt\" href=\"/success-stories/by-visa/o-1\">\n    Полный список\n  </Card>\n", len(o1))
	b.WriteString("</CardGroup>\n\n---\n\n")

	for _, group := range groupByVisa(cases) {
		fmt.Fprintf(&b, "## %s (%d кейсов)\n\n", group.visa, len(group.cases))
		writeAccordionGroup(&b, group.cases)
	}

	b.WriteString("---\n\n<CardGroup cols={2}>\n")
	b.WriteString("  <Card title=\"Premium Processing\" icon=\"bolt\" href=\"/success-stories/premium\">\n    Кейсы с ускоренным рассмотрением.\n  </Card>\n")
	b.WriteString("  <Card title=\"С RFE\" icon=\"file-circle-question\" href=\"/success-stories/with-rfe\">\n    Кейсы с запросом доказательств.\n  </Card>\n")
	b.WriteString("</CardGroup>\n")

	return b.String()
}

// FilteredPage renders a page for one case subset (RFE, premium, self).
func FilteredPage(cases []model.Case, keep func(*model.Case) bool, fm frontmatter, sidebar, heading, note string) string {
	filtered := filterCases(cases, keep)
	fm.SidebarTitle = fmt.Sprintf("%s (%d)", sidebar, len(filtered))

	var b strings.Builder
	b.WriteString(fm.render())
	if note != "" {
		fmt.Fprintf(&b, "\n<Note>\n%s\n</Note>\n", note)
	}
	fmt.Fprintf(&b, "\n## %s (%d)\n\n", heading, len(filtered))
	writeAccordionGroup(&b, filtered)
	return b.String()
}

// VisaPage renders a by-visa page. An "O-1" filter matches every O-1
// subclass by prefix.
func VisaPage(cases []model.Case, visa, icon, note string) string {
	keep := func(c *model.Case) bool { return c.Visa == visa }
	if strings.HasPrefix(visa, "O-1") {
		keep = func(c *model.Case) bool { return strings.HasPrefix(c.Visa, "O-1") }
	}
	filtered := filterCases(cases, keep)

	var b strings.Builder
	b.WriteString(frontmatter{
		Title:        "Истории успеха: " + visa,
		SidebarTitle: fmt.Sprintf("%s (%d)", visa, len(filtered)),
		Description:  fmt.Sprintf("Реальные кейсы %s.", visa),
		Icon:         icon,
	}.render())
	if note != "" {
		fmt.Fprintf(&b, "\n<Note>\n%s\n</Note>\n", note)
	}
	fmt.Fprintf(&b, "\n## Кейсы %s (%d)\n\n", visa, len(filtered))
	writeAccordionGroup(&b, filtered)
	return b.String()
}

// CenterPage renders a by-center page for one service center.
func CenterPage(cases []model.Case, center string, fm frontmatter, sidebar, heading, note string) string {
	filtered := filterCases(cases, func(c *model.Case) bool {
		return c.ServiceCenter == center && !c.ServiceCenterUncertain
	})
	fm.SidebarTitle = fmt.Sprintf("%s (%d)", sidebar, len(filtered))

	var b strings.Builder
	b.WriteString(fm.render())
	fmt.Fprintf(&b, "\n<Note>\n%s\n</Note>\n", note)
	fmt.Fprintf(&b, "\n## %s (%d)\n\n", heading, len(filtered))
	writeAccordionGroup(&b, filtered)
	return b.String()
}

type visaGroup struct {
	visa  string
	cases []model.Case
}

// groupByVisa buckets cases by visa class, known classes first in fixed
// order.
func groupByVisa(cases []model.Case) []visaGroup {
	buckets := make(map[string][]model.Case)
	var seen []string
	for _, c := range cases {
		visa := c.Visa
		if visa == "" {
			visa = "Other"
		}
		if _, ok := buckets[visa]; !ok {
			seen = append(seen, visa)
		}
		buckets[visa] = append(buckets[visa], c)
	}

	var out []visaGroup
	for _, visa := range visaOrder {
		if cs, ok := buckets[visa]; ok {
			out = append(out, visaGroup{visa, cs})
			delete(buckets, visa)
		}
	}
	for _, visa := range seen {
		if cs, ok := buckets[visa]; ok {
			out = append(out, visaGroup{visa, cs})
		}
	}
	return out
}

func writeAccordionGroup(b *strings.Builder, cases []model.Case) {
	b.WriteString("<AccordionGroup>\n")
	for i := range cases {
		b.WriteString(Accordion(&cases[i]))
		b.WriteString("\n")
	}
	b.WriteString("</AccordionGroup>\n\n")
}

func filterCases(cases []model.Case, keep func(*model.Case) bool) []model.Case {
	var out []model.Case
	for i := range cases {
		if keep(&cases[i]) {
			out = append(out, cases[i])
		}
	}
	return out
}
