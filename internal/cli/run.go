package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkozlov/newsbrief/internal/model"
	"github.com/pkozlov/newsbrief/internal/pipeline"
)

var (
	livePost    bool
	hoursBack   int
	skipVerify  bool
	threshold   int
	runTimeout  time.Duration
	userAgent   string
	noCache     bool
	maxArticles int
	llmProvider string
	llmModel    string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full fetch-curate-write-verify-post workflow",
	Long: `Run executes one complete workflow:
- Collect recent items from the configured RSS feeds and the GNews API
- Curate the 3-5 most newsworthy items with the LLM
- Fetch full article text for the curated URLs
- Draft a LinkedIn post grounded in that material
- Fact-check every claim and rewrite until 100% verified (bounded retries)
- Publish to LinkedIn, or print the post in dry-run mode (the default)

Example:
  newsbrief run
  newsbrief run --hours 24 --verbose
  newsbrief run --post --threshold 90`,
	RunE: runWorkflow,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Workflow flags
	runCmd.Flags().BoolVar(&livePost, "post", false, "actually post to LinkedIn (default is dry run)")
	runCmd.Flags().IntVar(&hoursBack, "hours", 48, "hours back to look for news")
	runCmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "skip the fact-verification step")
	runCmd.Flags().IntVar(&threshold, "threshold", 85, "minimum confidence to publish")
	runCmd.Flags().IntVar(&maxArticles, "max-articles", 5, "max full articles to fetch for context")

	// HTTP flags
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 10*time.Minute, "overall run timeout")
	runCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	runCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the feed/article cache")

	// LLM flags
	runCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	runCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if verbose {
		mode := "dry run"
		if livePost {
			mode = "live"
		}
		fmt.Fprintf(os.Stderr, "Starting workflow (%s, window %dh)\n\n", mode, hoursBack)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	summary, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("workflow failed: %w", err)
	}

	printSummary(summary)

	if summary.Status == model.RunFailed {
		return fmt.Errorf("run finished with status %s: %s", summary.Status, summary.Reason)
	}
	return nil
}

// buildConfig assembles the run configuration from defaults, environment
// and flags, and validates the credentials the selected mode needs.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	cfg.Feeds.Hours = hoursBack
	cfg.Workflow.DryRun = !livePost
	cfg.Workflow.SkipVerification = skipVerify
	cfg.Workflow.ConfidenceThreshold = threshold
	cfg.Workflow.MaxArticles = maxArticles
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.GNews.APIKey = os.Getenv("GNEWS_API_KEY")
	cfg.LinkedIn.AccessToken = os.Getenv("LINKEDIN_ACCESS_TOKEN")

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	// Live mode needs a LinkedIn credential before any work starts
	if livePost && cfg.LinkedIn.AccessToken == "" {
		return nil, fmt.Errorf("LINKEDIN_ACCESS_TOKEN not set (required for --post)")
	}

	return cfg, nil
}

func printSummary(summary *model.RunSummary) {
	fmt.Printf("\nRun %s finished: %s\n", summary.ID, summary.Status)

	switch summary.Status {
	case model.RunSkipped:
		fmt.Printf("  %s\n", summary.Reason)
	case model.RunDraftSaved:
		fmt.Printf("  Final confidence: %d%%\n", summary.FinalConfidence)
		fmt.Printf("  Draft saved for review: %s\n", summary.DraftFile)
	case model.RunSuccess:
		if summary.PostID != "" {
			fmt.Printf("  Post ID: %s\n", summary.PostID)
		}
	case model.RunFailed:
		fmt.Printf("  %s\n", summary.Reason)
	}
}
