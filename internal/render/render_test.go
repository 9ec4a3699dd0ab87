package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"casetender/internal/model"
)

func sampleCase() model.Case {
	return model.Case{
		ID:              "c1",
		Title:           "EB-1A: IT (premium, RFE)",
		Context:         "Подавал сам, без адвоката, собирал документы восемь месяцев, потратил около трех тысяч долларов на переводы и пошлины.",
		Summary:         "Одобрили петицию за 90 дней.",
		Visa:            "EB-1A",
		Field:           "IT",
		Premium:         true,
		RFE:             true,
		Prep:            model.PrepSelf,
		ServiceCenter:   "NSC",
		TimelineDays:    90,
		CostUSD:         12500,
		RecLetters:      7,
		ClaimedCriteria: []string{"awards", "press", "judging"},
	}
}

func TestAccordion_FullRecord(t *testing.T) {
	rec := sampleCase()
	got := Accordion(&rec)

	if !strings.Contains(got, `<Accordion title="EB-1A: IT (premium, RFE)" icon="laptop-code">`) {
		t.Errorf("Expected accordion opening with field icon, got:\n%s", got)
	}
	if !strings.Contains(got, "**Итог:** Одобрили петицию за 90 дней.") {
		t.Errorf("Expected summary line, got:\n%s", got)
	}
	for _, tag := range []string{"<code>EB-1A</code>", "<code>premium</code>", "<code>самоподача</code>", "<code>RFE</code>", "<code>NSC</code>"} {
		if !strings.Contains(got, tag) {
			t.Errorf("Expected tag %s, got:\n%s", tag, got)
		}
	}
	if !strings.Contains(got, "### Контекст") {
		t.Errorf("Expected context section, got:\n%s", got)
	}
	if !strings.Contains(got, "Награды, СМИ, Судейство") {
		t.Errorf("Expected labeled criteria, got:\n%s", got)
	}
	if !strings.Contains(got, "Рекомендательных писем: 7") {
		t.Errorf("Expected letter count, got:\n%s", got)
	}
	if !strings.Contains(got, "Срок рассмотрения: ~90 дней") {
		t.Errorf("Expected timeline line, got:\n%s", got)
	}
	if !strings.Contains(got, "Расходы: $12,500") {
		t.Errorf("Expected thousands separator in cost, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "</Accordion>") {
		t.Errorf("Expected closing tag, got:\n%s", got)
	}
}

func TestAccordion_RegeneratesGarbageTitle(t *testing.T) {
	rec := sampleCase()
	rec.Title = "Всем привет"
	got := Accordion(&rec)

	if strings.Contains(got, `title="Всем привет"`) {
		t.Errorf("Expected garbage title replaced, got:\n%s", got)
	}
	if !strings.Contains(got, `title="EB-1A: IT`) {
		t.Errorf("Expected synthesized title, got:\n%s", got)
	}
}

func TestAccordion_DuplicateContextHidden(t *testing.T) {
	rec := model.Case{
		ID:      "c2",
		Title:   "O-1A за 47 дней без адвоката",
		Summary: "Одобрили петицию быстро и без дополнительных запросов",
		Context: "Одобрили петицию быстро и без дополнительных запросов!",
		Visa:    "O-1A",
	}
	got := Accordion(&rec)
	if strings.Contains(got, "### Контекст") {
		t.Errorf("Expected duplicate context hidden, got:\n%s", got)
	}
}

func TestAccordion_UncertainCenterTagSkipped(t *testing.T) {
	rec := sampleCase()
	rec.ServiceCenterUncertain = true
	got := Accordion(&rec)
	if strings.Contains(got, "<code>NSC</code>") {
		t.Errorf("Uncertain service center must not be tagged, got:\n%s", got)
	}
}

func TestCaseIcon_VisaFallback(t *testing.T) {
	cases := map[[2]string]string{
		{"IT", "EB-1A"}:       "laptop-code",
		{"", "O-1B"}:          "bolt",
		{"", "EB-2 NIW"}:      "lightbulb",
		{"", "EB-1A"}:         "star",
		{"Неизвестно", "EB-1"}: "star",
	}
	for in, want := range cases {
		if got := caseIcon(in[0], in[1]); got != want {
			t.Errorf("caseIcon(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}

func TestTruncateContext_SentenceBoundary(t *testing.T) {
	first := strings.Repeat("а", 250) + "."
	context := first + " " + strings.Repeat("б", 300)
	got := truncateContext(context)

	if utf8.RuneCountInString(got) > 400 {
		t.Errorf("Expected context under budget, got %d runes", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("Expected cut at sentence boundary, got suffix %q", got[len(got)-9:])
	}
}

func TestGenerateAll_PageSet(t *testing.T) {
	pages := GenerateAll([]model.Case{sampleCase()})

	wantPaths := map[string]bool{
		"cases-preview.mdx":     false,
		"with-rfe.mdx":          false,
		"premium.mdx":           false,
		"self-prepared.mdx":     false,
		"by-visa/eb-1a.mdx":     false,
		"by-visa/eb-2-niw.mdx":  false,
		"by-visa/o-1.mdx":       false,
		"by-center/nebraska.mdx": false,
		"by-center/vermont.mdx": false,
	}
	for _, p := range pages {
		if _, ok := wantPaths[p.Path]; !ok {
			t.Errorf("Unexpected page %s", p.Path)
			continue
		}
		wantPaths[p.Path] = true
	}
	for path, seen := range wantPaths {
		if !seen {
			t.Errorf("Missing page %s", path)
		}
	}
}

func TestPreviewPage_CountsAndGrouping(t *testing.T) {
	cases := []model.Case{
		sampleCase(),
		{ID: "c2", Title: "O-1A за 47 дней без адвоката", Visa: "O-1A", Summary: "Одобрение."},
		{ID: "c3", Title: "EB-2 NIW для врача из Техаса", Visa: "EB-2 NIW", Summary: "Одобрение."},
	}
	got := PreviewPage(cases)

	if !strings.Contains(got, `sidebarTitle: "Все истории (3)"`) {
		t.Errorf("Expected total in sidebar title, got frontmatter:\n%s", got[:250])
	}
	if !strings.Contains(got, `title="EB-1A (1)"`) || !strings.Contains(got, `title="O-1 (1)"`) {
		t.Errorf("Expected per-visa card counts, got:\n%s", got)
	}
	if !strings.Contains(got, "## EB-1A (1 кейсов)") {
		t.Errorf("Expected EB-1A group heading, got:\n%s", got)
	}

	eb1a := strings.Index(got, "## EB-1A")
	niw := strings.Index(got, "## EB-2 NIW")
	o1 := strings.Index(got, "## O-1A")
	if !(eb1a < niw && niw < o1) {
		t.Errorf("Expected fixed visa order, got positions %d %d %d", eb1a, niw, o1)
	}
}

func TestFilteredAndCenterPages(t *testing.T) {
	cases := []model.Case{
		sampleCase(),
		{ID: "c2", Title: "O-1 через Vermont", Visa: "O-1", ServiceCenter: "VSC", Summary: "Одобрение."},
	}
	pages := GenerateAll(cases)
	byPath := make(map[string]string, len(pages))
	for _, p := range pages {
		byPath[p.Path] = p.Content
	}

	if !strings.Contains(byPath["with-rfe.mdx"], `sidebarTitle: "Одобрение через RFE (1)"`) {
		t.Error("Expected RFE page count of 1")
	}
	if !strings.Contains(byPath["by-center/vermont.mdx"], `sidebarTitle: "Vermont (VSC) (1)"`) {
		t.Error("Expected Vermont page count of 1")
	}
	if !strings.Contains(byPath["by-center/nebraska.mdx"], `sidebarTitle: "Nebraska (NSC) (1)"`) {
		t.Error("Expected Nebraska page count of 1")
	}
	if !strings.Contains(byPath["by-visa/o-1.mdx"], "O-1 через Vermont") {
		t.Error("Expected O-1 page to include O-1 case by prefix")
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	pages := []Page{
		{"cases-preview.mdx", "контент"},
		{"by-visa/eb-1a.mdx", "контент"},
	}
	if err := WriteAll(dir, pages); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	for _, p := range pages {
		data, err := os.ReadFile(filepath.Join(dir, p.Path))
		if err != nil {
			t.Fatalf("Expected %s written: %v", p.Path, err)
		}
		if string(data) != "контент" {
			t.Errorf("Unexpected content in %s: %q", p.Path, data)
		}
	}
}
