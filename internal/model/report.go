package model

import "time"

// StatusFetchFailed is the sentinel status recorded when a check could not
// complete (timeout, DNS failure, refused connection).
const StatusFetchFailed = -1

// BrokenLink is one broken internal link occurrence: the same URL is reported
// once per source page that references it.
type BrokenLink struct {
	Source string `json:"source"` // page the link was found on
	Link   string `json:"link"`   // normalized URL
	Status int    `json:"status"` // HTTP status, or StatusFetchFailed
}

// DoubledPathLink is a URL whose path repeats a segment, a regression signal
// for the link-generation bug, flagged independent of HTTP status.
type DoubledPathLink struct {
	Source   string `json:"source"`
	Link     string `json:"link"`     // normalized URL
	Original string `json:"original"` // href as found in the page
}

// Offender ranks a source page by its broken-link count.
type Offender struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// AuditReport is the complete result of one link audit run.
type AuditReport struct {
	StartedAt    time.Time         `json:"started_at"`
	PagesAudited int               `json:"pages_audited"`
	PagesSkipped []string          `json:"pages_skipped,omitempty"` // pages that could not be fetched
	UniqueLinks  int               `json:"unique_links"`
	Broken       []BrokenLink      `json:"broken,omitempty"`
	DoubledPaths []DoubledPathLink `json:"doubled_paths,omitempty"`
	Offenders    []Offender        `json:"offenders,omitempty"`
}

// Issues is the total issue count that drives the exit code.
func (r *AuditReport) Issues() int {
	return len(r.Broken) + len(r.DoubledPaths)
}
