package audit

import (
	"fmt"
	"io"

	"casetender/internal/model"
)

const rule = "------------------------------------------------------------"

// RenderReport writes the console audit report.
func RenderReport(w io.Writer, report *model.AuditReport) {
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w, "PRODUCTION LINK AUDIT")
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Pages audited: %d\n", report.PagesAudited)
	if len(report.PagesSkipped) > 0 {
		fmt.Fprintf(w, "Pages skipped: %d\n", len(report.PagesSkipped))
	}
	fmt.Fprintf(w, "Unique internal links found: %d\n", report.UniqueLinks)
	fmt.Fprintf(w, "Broken links (4xx/5xx): %d\n", len(report.Broken))
	fmt.Fprintf(w, "Double-path links: %d\n", len(report.DoubledPaths))
	fmt.Fprintln(w)

	if len(report.Broken) > 0 {
		fmt.Fprintln(w, "BROKEN LINKS")
		fmt.Fprintln(w, rule)
		for _, b := range report.Broken {
			fmt.Fprintf(w, "Source: %s\n", b.Source)
			fmt.Fprintf(w, "  Link: %s\n", b.Link)
			fmt.Fprintf(w, "  Status: %d\n", b.Status)
			fmt.Fprintln(w)
		}
	} else {
		fmt.Fprintln(w, "No broken internal links found!")
		fmt.Fprintln(w)
	}

	if len(report.DoubledPaths) > 0 {
		fmt.Fprintln(w, "DOUBLE-PATH LINKS (need source fix)")
		fmt.Fprintln(w, rule)
		for _, d := range report.DoubledPaths {
			fmt.Fprintf(w, "Source: %s\n", d.Source)
			fmt.Fprintf(w, "  Original href: %s\n", d.Original)
			fmt.Fprintf(w, "  Resolved to: %s\n", d.Link)
			fmt.Fprintln(w)
		}
	} else {
		fmt.Fprintln(w, "No double-path links found!")
		fmt.Fprintln(w)
	}

	if len(report.Offenders) > 0 {
		fmt.Fprintln(w, "TOP OFFENDERS (pages with most broken links)")
		fmt.Fprintln(w, rule)
		for _, o := range report.Offenders {
			fmt.Fprintf(w, "  %d broken: %s\n", o.Count, o.Source)
		}
		fmt.Fprintln(w)
	}

	if report.Issues() > 0 {
		fmt.Fprintf(w, "AUDIT FAILED: %d issues found\n", report.Issues())
	} else {
		fmt.Fprintln(w, "AUDIT PASSED: No issues found")
	}
}
