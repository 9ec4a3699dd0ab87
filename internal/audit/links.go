package audit

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ExtractLinks returns every <a href> value in document order.
func ExtractLinks(htmlContent string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && strings.TrimSpace(attr.Val) != "" {
					links = append(links, strings.TrimSpace(attr.Val))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

// Normalizer resolves raw hrefs to absolute URLs and decides which are
// internal documentation links.
type Normalizer struct {
	baseURL    string
	docsPrefix string
}

// NewNormalizer creates a Normalizer. baseURL must not end with a slash.
func NewNormalizer(baseURL, docsPrefix string) *Normalizer {
	return &Normalizer{
		baseURL:    strings.TrimRight(baseURL, "/"),
		docsPrefix: docsPrefix,
	}
}

// Normalize resolves link against the source page URL. An empty result means
// the link is not a candidate: external, mailto:, tel:, javascript:, or
// anchor-only.
func (n *Normalizer) Normalize(link, sourcePage string) string {
	switch {
	case strings.HasPrefix(link, "http://"), strings.HasPrefix(link, "https://"):
		if strings.HasPrefix(link, n.baseURL) {
			return link
		}
		return "" // external
	case strings.HasPrefix(link, "mailto:"),
		strings.HasPrefix(link, "tel:"),
		strings.HasPrefix(link, "javascript:"):
		return ""
	case strings.HasPrefix(link, "#"):
		return "" // anchor only
	case strings.HasPrefix(link, "/"):
		return n.baseURL + link
	}

	// Relative path: resolve against the source page's directory.
	sourcePath := strings.SplitN(sourcePage, "#", 2)[0]
	base, err := url.Parse(sourcePath)
	if err != nil {
		return ""
	}
	if !strings.HasSuffix(base.Path, "/") {
		if idx := strings.LastIndex(base.Path, "/"); idx >= 0 {
			base.Path = base.Path[:idx+1]
		}
	}
	ref, err := url.Parse(link)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref).String()
	if !strings.HasPrefix(resolved, "http") {
		resolved = n.baseURL + resolved
	}
	return resolved
}

// IsInternal reports whether a normalized URL points inside the documentation
// tree.
func (n *Normalizer) IsInternal(normalized string) bool {
	if normalized == "" {
		return false
	}
	return strings.HasPrefix(normalized, n.baseURL+n.docsPrefix)
}

// doubledPathPatterns flag URLs where a path segment is duplicated, the
// signature of a recurring link-generation bug.
var doubledPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/administrative-check/administrative-check/`),
	regexp.MustCompile(`/success-stories/success-stories/`),
	regexp.MustCompile(`/by-center/by-center/`),
}

// HasDoubledPath reports whether the URL matches a known doubled-segment
// pattern, independent of its HTTP status.
func HasDoubledPath(rawURL string) bool {
	for _, re := range doubledPathPatterns {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}
