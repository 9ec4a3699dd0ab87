// Package nav syncs navigation labels in docs.json with live case counts.
// Re-running is idempotent: an existing "(N)" suffix is replaced, not stacked.
package nav

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"casetender/internal/model"
	"casetender/internal/store"
)

// labelSpec binds a navigation page path to its display label and counter.
type labelSpec struct {
	base  string
	count func(model.Counts) int
}

// pageLabels maps navigation page paths to their labeled counts.
var pageLabels = map[string]labelSpec{
	"success-stories/premium":            {"Premium", func(c model.Counts) int { return c.Premium }},
	"success-stories/self-prepared":      {"Самоподача", func(c model.Counts) int { return c.Self }},
	"success-stories/with-rfe":           {"С RFE", func(c model.Counts) int { return c.RFE }},
	"success-stories/by-center/vermont":  {"Vermont (VSC)", func(c model.Counts) int { return c.VSC }},
	"success-stories/by-center/nebraska": {"Nebraska (NSC)", func(c model.Counts) int { return c.NSC }},
}

var countSuffixRe = regexp.MustCompile(`\s*\(\d+\)\s*$`)

// StripCountSuffix removes a trailing " (N)" from a label.
func StripCountSuffix(label string) string {
	return countSuffixRe.ReplaceAllString(label, "")
}

// UpdateFile loads docs.json, rewrites the navigation labels with the given
// counts, and writes the document back pretty-printed with non-ASCII
// preserved.
func UpdateFile(path string, counts model.Counts) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read navigation config: %w", err)
	}

	var docs map[string]any
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("parse navigation config %s: %w", path, err)
	}

	Update(docs, counts)

	out, err := store.MarshalPretty(docs)
	if err != nil {
		return fmt.Errorf("encode navigation config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("write navigation config: %w", err)
	}
	return nil
}

// Update rewrites labels in a decoded docs.json document in place.
func Update(docs map[string]any, counts model.Counts) {
	nav, ok := docs["navigation"].(map[string]any)
	if !ok {
		return
	}
	tabs, ok := nav["tabs"].([]any)
	if !ok {
		return
	}
	for _, t := range tabs {
		tab, ok := t.(map[string]any)
		if !ok {
			continue
		}
		groups, ok := tab["groups"].([]any)
		if !ok {
			continue
		}
		for _, g := range groups {
			group, ok := g.(map[string]any)
			if !ok {
				continue
			}
			if pages, ok := group["pages"].([]any); ok {
				group["pages"] = updatePages(pages, counts)
			}
		}
	}
}

// updatePages walks a pages list, labeling known entries and recursing into
// nested groups. String refs for labeled pages become {page, title} objects.
func updatePages(pages []any, counts model.Counts) []any {
	out := make([]any, 0, len(pages))
	for _, item := range pages {
		switch v := item.(type) {
		case string:
			if spec, ok := pageLabels[v]; ok {
				out = append(out, map[string]any{
					"page":  v,
					"title": labelFor(spec, counts),
				})
			} else {
				out = append(out, v)
			}
		case map[string]any:
			if page, ok := v["page"].(string); ok {
				if spec, ok := pageLabels[page]; ok {
					v["title"] = labelFor(spec, counts)
				}
				out = append(out, v)
				continue
			}
			if _, ok := v["group"]; ok {
				if nested, ok := v["pages"].([]any); ok {
					v["pages"] = updatePages(nested, counts)
				}
			}
			out = append(out, v)
		default:
			out = append(out, v)
		}
	}
	return out
}

func labelFor(spec labelSpec, counts model.Counts) string {
	return fmt.Sprintf("%s (%d)", spec.base, spec.count(counts))
}
