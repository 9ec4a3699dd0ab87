package classify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"casetender/internal/model"
)

func TestExtractSummary_PrefersApprovalSentence(t *testing.T) {
	context := "Подавал петицию в марте без адвоката и юристов. Через 90 дней одобрили петицию без RFE."
	got := ExtractSummary(context, &model.Case{})

	if !strings.Contains(got, "одобрили") {
		t.Errorf("Expected approval sentence selected, got %q", got)
	}
}

func TestExtractSummary_ApprovalBeatsEarlierMechanics(t *testing.T) {
	context := "Подали петицию с шестью критериями в Nebraska. Спустя долгое ожидание пришел положительный ответ, кейс одобрили."
	got := ExtractSummary(context, &model.Case{})

	if !strings.Contains(got, "одобрили") {
		t.Errorf("Approval pass must win over mechanics, got %q", got)
	}
}

func TestExtractSummary_RFEWithApprovalSentence(t *testing.T) {
	context := "Собирал документы почти полгода перед подачей. После RFE петицию все же одобрили."
	got := ExtractSummary(context, &model.Case{})

	if !strings.Contains(got, "RFE") || !strings.Contains(got, "одобрили") {
		t.Errorf("Expected RFE approval sentence selected, got %q", got)
	}
}

func TestExtractSummary_RFEAloneDoesNotOutrankTimeline(t *testing.T) {
	context := "Ожидание ответа заняло почти четыре месяца. Потом нам выслали RFE на доказательства."
	got := ExtractSummary(context, &model.Case{})
	want := "Ожидание ответа заняло почти четыре месяца"

	if got != want {
		t.Errorf("ExtractSummary = %q, want timeline sentence %q", got, want)
	}
}

func TestExtractSummary_SkipsFillerAndShortSentences(t *testing.T) {
	context := "Всем привет, дорогие подписчики этого канала. Ура. Рассмотрение в Небраске заняло четыре месяца ожидания."
	got := ExtractSummary(context, &model.Case{})

	if strings.Contains(strings.ToLower(got), "привет") {
		t.Errorf("Filler sentence must be skipped, got %q", got)
	}
	if !strings.Contains(got, "Небраске") {
		t.Errorf("Expected timeline sentence, got %q", got)
	}
}

func TestExtractSummary_StructuredFallback(t *testing.T) {
	got := ExtractSummary("", &model.Case{Premium: true, RFE: true, ServiceCenter: "NSC"})
	want := "Одобрение. Premium, после RFE, NSC."
	if got != want {
		t.Errorf("ExtractSummary fallback = %q, want %q", got, want)
	}
}

func TestExtractSummary_BareFallback(t *testing.T) {
	got := ExtractSummary("", &model.Case{})
	if got != "Одобрение (по словам автора)." {
		t.Errorf("Expected attribution fallback, got %q", got)
	}
}

func TestExtractSummary_LengthCap(t *testing.T) {
	long := "Одобрили петицию " + strings.Repeat("после долгого и очень подробного описания всех обстоятельств ", 10)
	got := ExtractSummary(long, &model.Case{})

	if n := utf8.RuneCountInString(got); n > 150 {
		t.Errorf("Expected summary capped at 150 runes, got %d", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis on truncation, got %q", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Первое предложение. Второе!  Третье?И четвертое")
	if len(got) != 4 {
		t.Fatalf("Expected 4 sentences, got %d: %v", len(got), got)
	}
	if got[3] != "И четвертое" {
		t.Errorf("Expected trailing fragment kept, got %q", got[3])
	}
}
