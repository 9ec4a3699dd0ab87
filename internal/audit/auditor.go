// Package audit crawls a fixed page list, extracts and normalizes internal
// links, and reports broken or malformed ones. One sequential pass, no
// retries: a page that cannot be fetched is logged and skipped.
package audit

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"casetender/internal/cache"
	"casetender/internal/model"
	"casetender/internal/util"
)

// linkRef tracks every source page referencing a normalized URL, plus the
// original href for the doubled-path report.
type linkRef struct {
	sources   map[string]bool
	originals map[string]string // source page -> href as written
}

// Auditor runs the production link audit.
type Auditor struct {
	cfg        *model.Config
	fetcher    *Fetcher
	checker    *Checker
	normalizer *Normalizer
	limiter    *Limiter
	robots     *util.RobotsChecker // nil unless respect_robots is on
	verbose    bool
	logOut     io.Writer
}

// NewAuditor wires an auditor from config.
func NewAuditor(cfg *model.Config) *Auditor {
	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			c = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
		}
	}

	var robots *util.RobotsChecker
	if cfg.Audit.RespectRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	return &Auditor{
		cfg:        cfg,
		fetcher:    NewFetcher(cfg.HTTP),
		checker:    NewChecker(cfg.HTTP, cfg.Cache, c),
		normalizer: NewNormalizer(cfg.Audit.BaseURL, cfg.Audit.DocsPrefix),
		limiter:    NewLimiter(cfg.Audit.RatePerSecond, cfg.Audit.RateBurst),
		robots:     robots,
		verbose:    cfg.Output.Verbose,
		logOut:     os.Stderr,
	}
}

// Run executes the full audit: scan pages, check unique internal links,
// assemble the report.
func (a *Auditor) Run(ctx context.Context) *model.AuditReport {
	report := &model.AuditReport{
		StartedAt:    time.Now().UTC(),
		PagesAudited: len(a.cfg.Audit.Pages),
	}

	links := a.scanPages(ctx, report)
	report.UniqueLinks = len(links)

	a.checkLinks(ctx, links, report)
	report.Offenders = topOffenders(report.Broken, a.cfg.Audit.TopOffenders)

	return report
}

// scanPages fetches every configured page and collects normalized internal
// links with their source pages. Fetch failures skip the page.
func (a *Auditor) scanPages(ctx context.Context, report *model.AuditReport) map[string]*linkRef {
	links := make(map[string]*linkRef)

	for _, pagePath := range a.cfg.Audit.Pages {
		pageURL := a.cfg.Audit.BaseURL + pagePath

		if !a.allowed(ctx, pageURL) {
			fmt.Fprintf(a.logOut, "Skipping %s: disallowed by robots.txt\n", pagePath)
			report.PagesSkipped = append(report.PagesSkipped, pagePath)
			continue
		}

		if err := a.limiter.Wait(ctx, pageURL); err != nil {
			report.PagesSkipped = append(report.PagesSkipped, pagePath)
			continue
		}

		if a.verbose {
			fmt.Fprintf(a.logOut, "Scanning: %s\n", pagePath)
		}

		html, err := a.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			fmt.Fprintf(a.logOut, "Error fetching %s: %v\n", pageURL, err)
			report.PagesSkipped = append(report.PagesSkipped, pagePath)
			continue
		}

		hrefs, err := ExtractLinks(html)
		if err != nil {
			fmt.Fprintf(a.logOut, "Error parsing %s: %v\n", pageURL, err)
			report.PagesSkipped = append(report.PagesSkipped, pagePath)
			continue
		}

		for _, href := range hrefs {
			normalized := a.normalizer.Normalize(href, pageURL)
			if !a.normalizer.IsInternal(normalized) {
				continue
			}

			ref, ok := links[normalized]
			if !ok {
				ref = &linkRef{
					sources:   make(map[string]bool),
					originals: make(map[string]string),
				}
				links[normalized] = ref
			}
			ref.sources[pagePath] = true
			if _, ok := ref.originals[pagePath]; !ok {
				ref.originals[pagePath] = href
			}

			if HasDoubledPath(normalized) {
				report.DoubledPaths = append(report.DoubledPaths, model.DoubledPathLink{
					Source:   pagePath,
					Link:     normalized,
					Original: href,
				})
			}
		}
	}

	return links
}

// checkLinks HEAD-checks every unique internal URL in sorted order and
// records a broken entry per source page.
func (a *Auditor) checkLinks(ctx context.Context, links map[string]*linkRef, report *model.AuditReport) {
	urls := make([]string, 0, len(links))
	for u := range links {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	for _, u := range urls {
		if err := a.limiter.Wait(ctx, u); err != nil {
			break // context cancelled; remaining links go unchecked
		}

		status := a.checker.Check(ctx, u)
		if a.verbose || !Healthy(status) {
			fmt.Fprintf(a.logOut, "  [%s] %s\n", StatusString(status), u)
		}
		if Healthy(status) {
			continue
		}

		sources := make([]string, 0, len(links[u].sources))
		for s := range links[u].sources {
			sources = append(sources, s)
		}
		sort.Strings(sources)
		for _, s := range sources {
			report.Broken = append(report.Broken, model.BrokenLink{
				Source: s,
				Link:   u,
				Status: status,
			})
		}
	}
}

func (a *Auditor) allowed(ctx context.Context, pageURL string) bool {
	if a.robots == nil {
		return true
	}
	return a.robots.IsAllowed(ctx, pageURL)
}

// topOffenders ranks source pages by broken-link count, descending, capped
// at n.
func topOffenders(broken []model.BrokenLink, n int) []model.Offender {
	counts := make(map[string]int)
	for _, b := range broken {
		counts[b.Source]++
	}

	offenders := make([]model.Offender, 0, len(counts))
	for source, count := range counts {
		offenders = append(offenders, model.Offender{Source: source, Count: count})
	}
	sort.Slice(offenders, func(i, j int) bool {
		if offenders[i].Count != offenders[j].Count {
			return offenders[i].Count > offenders[j].Count
		}
		return offenders[i].Source < offenders[j].Source
	})

	if n > 0 && len(offenders) > n {
		offenders = offenders[:n]
	}
	return offenders
}
