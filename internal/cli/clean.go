package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"casetender/internal/pipeline"
	"casetender/internal/store"
)

var (
	casesFile    string
	dryRun       bool
	cleanTimeout time.Duration
	llmProvider  string
	llmModel     string
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean [cases.json]",
	Short: "Filter garbage cases and rewrite titles, context, and summaries",
	Long: `Clean runs the full quality gate over the case store:
- Drop records that carry no usable content
- Strip greetings, brand mentions, and markup artifacts from text
- Regenerate titles that are too short or boilerplate
- Synthesize a one-or-two sentence summary per case
- Hide contexts that merely duplicate the summary

The store is rewritten in place unless --dry-run is set.

Example:
  casetender clean
  casetender clean data/cases.json --dry-run
  casetender clean --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVar(&casesFile, "cases", "", "case store JSON path (default from config)")
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing the store")
	cleanCmd.Flags().DurationVar(&cleanTimeout, "timeout", 10*time.Minute, "overall clean timeout (matters only with LLM polish)")

	// LLM flags
	cleanCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider for summary polish (openai, ollama; empty = off)")
	cleanCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resolveCasesPath(cfg, casesFile, args)
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	ctx, cancel := context.WithTimeout(context.Background(), cleanTimeout)
	defer cancel()

	st, err := store.Load(cfg.Paths.CasesFile)
	if err != nil {
		return fmt.Errorf("load cases: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	res := p.Run(ctx, st)

	fmt.Printf("Cases before: %d\n", res.Original)
	fmt.Printf("Cases after:  %d\n", len(res.Kept))
	fmt.Printf("Removed:      %d\n", len(res.RemovedIDs))
	if verbose {
		for _, id := range res.RemovedIDs {
			fmt.Fprintf(os.Stderr, "  removed: %s\n", id)
		}
	}

	if dryRun {
		fmt.Println("\nDry run: store not written")
		return nil
	}

	st.Cases = res.Kept
	if err := store.Save(cfg.Paths.CasesFile, st); err != nil {
		return fmt.Errorf("save cases: %w", err)
	}

	fmt.Printf("\nWrote %s\n", cfg.Paths.CasesFile)
	return nil
}
