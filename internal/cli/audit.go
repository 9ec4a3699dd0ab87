package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"casetender/internal/audit"
)

var (
	auditBaseURL  string
	auditTimeout  time.Duration
	auditNoCache  bool
	auditCacheDir string
	respectRobots bool
	httpProxy     string
	httpsProxy    string
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit the production site for broken internal links",
	Long: `Audit crawls the configured documentation pages on the live site,
extracts every internal link, and HEAD-checks each one exactly once:
- 4xx/5xx responses and fetch failures are reported as broken
- hrefs that resolve to doubled paths (/docs/docs/...) are flagged
- pages with the most broken links are listed as top offenders

Pages are fetched sequentially with per-domain rate limiting so the
audit never hammers production.

Exits non-zero when any broken or doubled-path link is found.

Example:
  casetender audit
  casetender audit --base-url https://staging.example.com --timeout 5m
  casetender audit --cache-dir ~/.casetender/cache`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVar(&auditBaseURL, "base-url", "", "site origin to audit (default from config)")
	auditCmd.Flags().DurationVar(&auditTimeout, "timeout", 10*time.Minute, "total audit timeout")
	auditCmd.Flags().BoolVar(&auditNoCache, "no-cache", false, "disable check caching (force fresh checks)")
	auditCmd.Flags().StringVar(&auditCacheDir, "cache-dir", "", "persist check results to this directory")
	auditCmd.Flags().BoolVar(&respectRobots, "respect-robots", false, "honor robots.txt before fetching pages")
	auditCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	auditCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if auditBaseURL != "" {
		cfg.Audit.BaseURL = auditBaseURL
	}
	if auditNoCache {
		cfg.Cache.Enabled = false
	}
	if auditCacheDir != "" {
		cfg.Cache.Dir = auditCacheDir
	}
	if respectRobots {
		cfg.Audit.RespectRobots = true
	}
	if httpProxy != "" {
		cfg.HTTP.HTTPProxy = httpProxy
	}
	if httpsProxy != "" {
		cfg.HTTP.HTTPSProxy = httpsProxy
	}

	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Auditing: %s\n", cfg.Audit.BaseURL)
		fmt.Fprintf(os.Stderr, "Pages: %d\n", len(cfg.Audit.Pages))
		fmt.Fprintf(os.Stderr, "Cache: %v\n\n", cfg.Cache.Enabled)
	}

	auditor := audit.NewAuditor(cfg)
	report := auditor.Run(ctx)

	audit.RenderReport(os.Stdout, report)

	if report.Issues() > 0 {
		return fmt.Errorf("audit found %d issues", report.Issues())
	}
	return nil
}
