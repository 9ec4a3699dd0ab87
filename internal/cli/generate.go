package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"casetender/internal/render"
	"casetender/internal/store"
)

var (
	genCasesFile string
	storiesDir   string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [cases.json]",
	Short: "Regenerate the MDX story pages from the case store",
	Long: `Generate rebuilds every derived MDX page:
- cases-preview plus the with-rfe, premium, and self-prepared filters
- per-visa pages (EB-1A, EB-2 NIW, O-1)
- per-service-center pages (Nebraska, Vermont)

Pages are written under the stories directory, overwriting what is there.

Example:
  casetender generate
  casetender generate data/cases.json --out success-stories`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genCasesFile, "cases", "", "case store JSON path (default from config)")
	generateCmd.Flags().StringVar(&storiesDir, "out", "", "output directory for MDX pages (default from config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resolveCasesPath(cfg, genCasesFile, args)
	if storiesDir != "" {
		cfg.Paths.StoriesDir = storiesDir
	}

	st, err := store.Load(cfg.Paths.CasesFile)
	if err != nil {
		return fmt.Errorf("load cases: %w", err)
	}

	pages := render.GenerateAll(st.Cases)
	if err := render.WriteAll(cfg.Paths.StoriesDir, pages); err != nil {
		return fmt.Errorf("write pages: %w", err)
	}

	fmt.Printf("Generated %d pages from %d cases into %s\n", len(pages), len(st.Cases), cfg.Paths.StoriesDir)
	return nil
}
