package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"casetender/internal/model"
	"casetender/internal/nav"
	"casetender/internal/store"
)

var (
	navCasesFile string
	docsFile     string
)

// navCmd represents the nav command
var navCmd = &cobra.Command{
	Use:   "nav [cases.json]",
	Short: "Sync navigation labels with live case counts",
	Long: `Nav recounts the filterable case subsets (premium, self-prepared,
with RFE, per service center) and rewrites the matching sidebar labels
in the navigation config, e.g. "С RFE (12)".

Example:
  casetender nav
  casetender nav data/cases.json --docs docs.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNav,
}

func init() {
	rootCmd.AddCommand(navCmd)

	navCmd.Flags().StringVar(&navCasesFile, "cases", "", "case store JSON path (default from config)")
	navCmd.Flags().StringVar(&docsFile, "docs", "", "navigation config JSON path (default from config)")
}

func runNav(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resolveCasesPath(cfg, navCasesFile, args)
	if docsFile != "" {
		cfg.Paths.DocsFile = docsFile
	}

	st, err := store.Load(cfg.Paths.CasesFile)
	if err != nil {
		return fmt.Errorf("load cases: %w", err)
	}

	counts := model.CountCases(st.Cases)
	if err := nav.UpdateFile(cfg.Paths.DocsFile, counts); err != nil {
		return fmt.Errorf("update navigation: %w", err)
	}

	fmt.Printf("Updated %s\n", cfg.Paths.DocsFile)
	fmt.Printf("  premium: %d, self: %d, rfe: %d, VSC: %d, NSC: %d\n",
		counts.Premium, counts.Self, counts.RFE, counts.VSC, counts.NSC)
	return nil
}
