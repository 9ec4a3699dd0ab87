package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"casetender/internal/lint"
	"casetender/internal/store"
)

var lintCasesFile string

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint [cases.json]",
	Short: "Check the case store for leftover artifacts",
	Long: `Lint scans every case for problems the cleaner should have removed:
- FAIL: anonymization placeholders like [name], markdown bold, leading hashtags
- WARN: greetings at the start of text, [имя]/[ссылка] placeholders,
  too-short titles or contexts, summaries duplicating the context

Exits non-zero when any FAIL-level finding exists, so it can gate CI.

Example:
  casetender lint
  casetender lint data/cases.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVar(&lintCasesFile, "cases", "", "case store JSON path (default from config)")
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resolveCasesPath(cfg, lintCasesFile, args)

	st, err := store.Load(cfg.Paths.CasesFile)
	if err != nil {
		return fmt.Errorf("load cases: %w", err)
	}

	findings := lint.Run(st.Cases)

	for _, w := range findings.Warnings {
		fmt.Printf("WARN  %s\n", w)
	}
	for _, e := range findings.Errors {
		fmt.Printf("FAIL  %s\n", e)
	}

	fmt.Printf("\n%d cases checked: %d errors, %d warnings\n",
		len(st.Cases), len(findings.Errors), len(findings.Warnings))

	if findings.Failed() {
		return fmt.Errorf("lint failed with %d errors", len(findings.Errors))
	}
	return nil
}
