package nav

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"casetender/internal/model"
)

func testDocs() map[string]any {
	raw := `{
		"name": "docs",
		"navigation": {
			"tabs": [
				{
					"tab": "Истории успеха",
					"groups": [
						{
							"group": "Кейсы",
							"pages": [
								"success-stories/cases-preview",
								"success-stories/premium",
								{"page": "success-stories/with-rfe", "title": "С RFE (7)"},
								{
									"group": "По центрам",
									"pages": [
										"success-stories/by-center/nebraska",
										"success-stories/by-center/vermont"
									]
								}
							]
						}
					]
				}
			]
		}
	}`
	var docs map[string]any
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		panic(err)
	}
	return docs
}

func pageTitle(t *testing.T, docs map[string]any, page string) string {
	t.Helper()
	var find func(pages []any) string
	find = func(pages []any) string {
		for _, item := range pages {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if p, _ := m["page"].(string); p == page {
				title, _ := m["title"].(string)
				return title
			}
			if nested, ok := m["pages"].([]any); ok {
				if title := find(nested); title != "" {
					return title
				}
			}
		}
		return ""
	}

	nav := docs["navigation"].(map[string]any)
	for _, tb := range nav["tabs"].([]any) {
		for _, g := range tb.(map[string]any)["groups"].([]any) {
			if pages, ok := g.(map[string]any)["pages"].([]any); ok {
				if title := find(pages); title != "" {
					return title
				}
			}
		}
	}
	return ""
}

func TestUpdate_LabelsCounts(t *testing.T) {
	docs := testDocs()
	counts := model.Counts{Premium: 12, RFE: 9, NSC: 4, VSC: 2}

	Update(docs, counts)

	cases := map[string]string{
		"success-stories/premium":            "Premium (12)",
		"success-stories/with-rfe":           "С RFE (9)",
		"success-stories/by-center/nebraska": "Nebraska (NSC) (4)",
		"success-stories/by-center/vermont":  "Vermont (VSC) (2)",
	}
	for page, want := range cases {
		if got := pageTitle(t, docs, page); got != want {
			t.Errorf("Page %s: title %q, want %q", page, got, want)
		}
	}
}

func TestUpdate_UnlabeledPagesUntouched(t *testing.T) {
	docs := testDocs()
	Update(docs, model.Counts{})

	nav := docs["navigation"].(map[string]any)
	tabs := nav["tabs"].([]any)
	pages := tabs[0].(map[string]any)["groups"].([]any)[0].(map[string]any)["pages"].([]any)

	if s, ok := pages[0].(string); !ok || s != "success-stories/cases-preview" {
		t.Errorf("Expected unlabeled page left as string ref, got %#v", pages[0])
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	docs := testDocs()
	counts := model.Counts{Premium: 3, RFE: 5}

	Update(docs, counts)
	Update(docs, counts)

	if got := pageTitle(t, docs, "success-stories/with-rfe"); got != "С RFE (5)" {
		t.Errorf("Expected count replaced, not stacked, got %q", got)
	}
}

func TestStripCountSuffix(t *testing.T) {
	cases := map[string]string{
		"С RFE (12)":    "С RFE",
		"Premium (0)":   "Premium",
		"Nebraska (NSC) (4)": "Nebraska (NSC)",
		"Без счетчика":  "Без счетчика",
	}
	for in, want := range cases {
		if got := StripCountSuffix(in); got != want {
			t.Errorf("StripCountSuffix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUpdateFile_RewritesDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.json")

	data, err := json.Marshal(testDocs())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if err := UpdateFile(path, model.Counts{Premium: 8}); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var docs map[string]any
	if err := json.Unmarshal(out, &docs); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if got := pageTitle(t, docs, "success-stories/premium"); got != "Premium (8)" {
		t.Errorf("Expected rewritten label, got %q", got)
	}
}
