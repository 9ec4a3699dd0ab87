package textclean

import (
	"strings"
	"testing"
)

func TestClean_StripsEmphasisAndHashtags(t *testing.T) {
	in := "#eb1a Одобрили **петицию** за __90__ дней"
	got := Clean(in)

	if strings.Contains(got, "*") || strings.Contains(got, "__") {
		t.Errorf("Expected emphasis markers removed, got %q", got)
	}
	if strings.Contains(got, "#eb1a") {
		t.Errorf("Expected hashtag removed, got %q", got)
	}
	if !strings.Contains(got, "Одобрили петицию") {
		t.Errorf("Expected narrative text preserved, got %q", got)
	}
}

func TestClean_StripsCyrillicHashtags(t *testing.T) {
	got := Clean("#одобрение Кейс прошел быстро")
	want := "Кейс прошел быстро"

	if got != want {
		t.Errorf("Clean = %q, want %q", got, want)
	}
}

func TestClean_RemovesPlaceholders(t *testing.T) {
	got := Clean("Помог [name], спасибо [имя] и [ссылка]")
	for _, banned := range []string{"[name]", "[имя]", "[ссылка]"} {
		if strings.Contains(got, banned) {
			t.Errorf("Expected %q removed, got %q", banned, got)
		}
	}
}

func TestClean_KeepsGreetingsAndSingleNewlines(t *testing.T) {
	in := "Привет! Подали в марте.\n\n\nОдобрили в июне."
	got := Clean(in)

	if !strings.HasPrefix(got, "Привет!") {
		t.Errorf("Light clean must not strip greetings, got %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("Expected blank-line run collapsed to one newline, got %q", got)
	}
}

func TestCleanTitle_StripsLeadingGreeting(t *testing.T) {
	cases := map[string]string{
		"Всем привет! Одобрили EB-1A":     "Одобрили EB-1A",
		"Здравствуйте! Кейс без адвоката": "Кейс без адвоката",
		"Моя очередь делиться: апрув":     "делиться: апрув",
	}
	for in, want := range cases {
		if got := CleanTitle(in); got != want {
			t.Errorf("CleanTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCleanTitle_StackedGreetings(t *testing.T) {
	got := CleanTitle("Ура! Привет! Одобрили кейс")
	if got != "Одобрили кейс" {
		t.Errorf("Expected stacked greetings removed in one call, got %q", got)
	}
}

func TestCleanTitle_GreetingOnlyMidText(t *testing.T) {
	got := CleanTitle("Кейс одобрен, всем привет из Небраски")
	if !strings.Contains(got, "всем привет") {
		t.Errorf("Greetings mid-text must survive, got %q", got)
	}
}

func TestCleanTitle_RemovesEmoji(t *testing.T) {
	got := CleanTitle("Одобрили 🎉🔥 петицию 💪")
	if got != "Одобрили петицию" {
		t.Errorf("Expected emoji removed, got %q", got)
	}
}

func TestReplaceBrands_CyrillicBoundaries(t *testing.T) {
	got := Clean("Подавал через PassRight, юрист Шамаев помог")
	if strings.Contains(strings.ToLower(got), "passright") {
		t.Errorf("Expected latin brand replaced, got %q", got)
	}
	if strings.Contains(got, "Шамаев") {
		t.Errorf("Expected cyrillic brand replaced, got %q", got)
	}
	if strings.Count(got, BrandToken) != 2 {
		t.Errorf("Expected two %s tokens, got %q", BrandToken, got)
	}
}

func TestReplaceBrands_AdjacentOccurrences(t *testing.T) {
	got := Clean("wegreened wegreened wegreened")
	if strings.Contains(strings.ToLower(got), "wegreened") {
		t.Errorf("Expected every adjacent occurrence replaced, got %q", got)
	}
}

func TestReplaceBrands_NoPartialWordMatch(t *testing.T) {
	// "niwegreened" must not lose its middle
	got := Clean("характеристика niwegreenedx осталась")
	if strings.Contains(got, BrandToken) {
		t.Errorf("Brand inside a longer word must not match, got %q", got)
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"#tag **Привет!** Подавал через wegreened.\n\nОдобрили [имя].",
		"Ура! Ура! Одобрили 🎉",
		"",
		"   \n\n  ",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestCleanTitle_Idempotent(t *testing.T) {
	inputs := []string{
		"Всем привет! Одобрили EB-1A 🎉",
		"Ура! Привет! Хочу поделиться: кейс",
		"*** Добрый день! Апрув",
	}
	for _, in := range inputs {
		once := CleanTitle(in)
		if twice := CleanTitle(once); twice != once {
			t.Errorf("CleanTitle not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
