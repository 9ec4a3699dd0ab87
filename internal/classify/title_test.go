package classify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"casetender/internal/model"
)

func TestGenerateTitle_FullLayout(t *testing.T) {
	rec := &model.Case{
		Visa:         "O-1A",
		Context:      "Я разработчик, подавал петицию сам",
		Premium:      true,
		RFE:          true,
		TimelineDays: 90,
	}

	got := GenerateTitle(rec)
	want := "O-1A: IT (premium, RFE, ~90 дней)"
	if got != want {
		t.Errorf("GenerateTitle = %q, want %q", got, want)
	}
}

func TestGenerateTitle_DefaultVisa(t *testing.T) {
	got := GenerateTitle(&model.Case{Field: "Наука"})
	if !strings.HasPrefix(got, "EB-1A") {
		t.Errorf("Expected EB-1A default visa, got %q", got)
	}
}

func TestGenerateTitle_ProfessionFromContext(t *testing.T) {
	cases := map[string]string{
		"Научный сотрудник, 30 публикаций и цитирования": "Наука",
		"Работаю devops инженером в стартапе":            "IT",
		"Я предприниматель, founder двух компаний":       "Бизнес",
	}
	for context, label := range cases {
		got := GenerateTitle(&model.Case{Visa: "EB-1A", Context: context})
		if !strings.Contains(got, label) {
			t.Errorf("Context %q: expected profession %q in %q", context, label, got)
		}
	}
}

func TestGenerateTitle_FieldFallback(t *testing.T) {
	rec := &model.Case{Visa: "EB-2 NIW", Field: "Медицина", Context: "короткий текст без ключевых слов"}
	got := GenerateTitle(rec)
	if !strings.Contains(got, "Медицина") {
		t.Errorf("Expected field tag fallback, got %q", got)
	}
}

func TestGenerateTitle_ModifierPriorityAndCap(t *testing.T) {
	rec := &model.Case{
		Visa:          "EB-1A",
		Premium:       true,
		RFE:           true,
		NOID:          true,
		ConsulateCity: "Варшава",
	}
	got := GenerateTitle(rec)

	if !strings.Contains(got, "premium, RFE, NOID") {
		t.Errorf("Expected fixed modifier order, got %q", got)
	}
	if strings.Contains(got, "Варшава") {
		t.Errorf("Expected at most three modifiers, got %q", got)
	}
}

func TestGenerateTitle_UncertainCenterSkipped(t *testing.T) {
	rec := &model.Case{
		Visa:                   "O-1",
		ServiceCenter:          "VSC",
		ServiceCenterUncertain: true,
		TimelineDays:           45,
	}
	got := GenerateTitle(rec)
	if strings.Contains(got, "VSC") {
		t.Errorf("Uncertain service center must not appear, got %q", got)
	}
	if !strings.Contains(got, "~45 дней") {
		t.Errorf("Expected timeline fallback, got %q", got)
	}
}

func TestGenerateTitle_LengthCap(t *testing.T) {
	rec := &model.Case{
		Visa:          "EB-2 NIW",
		Field:         "Архитектура и градостроительное проектирование мегаполисов",
		Premium:       true,
		RFE:           true,
		ConsulateCity: "Алматы",
	}
	got := GenerateTitle(rec)
	if n := utf8.RuneCountInString(got); n > 60 {
		t.Errorf("Expected title capped at 60 runes, got %d: %q", n, got)
	}
}

func TestTruncateAtWord_PrefersBoundary(t *testing.T) {
	s := strings.Repeat("слово ", 20)
	got := truncateAtWord(s, 60, 40)
	if n := utf8.RuneCountInString(got); n > 60 {
		t.Errorf("Expected at most 60 runes, got %d", n)
	}
	if strings.HasSuffix(got, "сло") {
		t.Errorf("Expected cut at word boundary, got %q", got)
	}
}
