package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pkozlov/newsbrief/internal/cache"
	"github.com/pkozlov/newsbrief/internal/compose"
	"github.com/pkozlov/newsbrief/internal/linkedin"
	"github.com/pkozlov/newsbrief/internal/llm"
	"github.com/pkozlov/newsbrief/internal/model"
	"github.com/pkozlov/newsbrief/internal/scrape"
	"github.com/pkozlov/newsbrief/internal/sources"
	"github.com/pkozlov/newsbrief/internal/verify"
)

// Publisher is the outbound posting endpoint. Satisfied by
// linkedin.Client; faked in tests.
type Publisher interface {
	ValidateToken(ctx context.Context) linkedin.TokenStatus
	Post(ctx context.Context, content string) linkedin.PostResult
}

// Collector provides candidate news items for one run.
type Collector interface {
	Collect(ctx context.Context, windowHours int) []model.NewsItem
}

// Enricher retrieves full article text for curated URLs.
type Enricher interface {
	FetchAll(ctx context.Context, urls []string) string
}

// Pipeline runs the complete workflow: collect, curate, enrich, draft,
// converge, publish. Strictly sequential; each invocation owns its state.
type Pipeline struct {
	collector Collector
	enricher  Enricher
	curator   *compose.Curator
	writer    *compose.Writer
	loop      *verify.Loop
	publisher Publisher
	config    *model.Config
}

// New wires a pipeline from configuration.
func New(cfg *model.Config) (*Pipeline, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
	if err != nil {
		return nil, fmt.Errorf("init LLM provider: %w", err)
	}

	store := cache.NewLayered(cfg.Cache)
	sink := verify.NewFileDraftSink(cfg.Workflow.DraftsDir)

	return &Pipeline{
		collector: sources.NewCollector(cfg, store),
		enricher:  scrape.NewFetcher(cfg, store),
		curator:   compose.NewCurator(provider),
		writer:    compose.NewWriter(provider),
		loop:      verify.NewLoop(provider, sink, cfg.Workflow.MaxRetries, cfg.Output.Verbose),
		publisher: linkedin.NewClient(cfg.LinkedIn),
		config:    cfg,
	}, nil
}

// Run executes one workflow run. Generative failures propagate as errors
// and abort the run; every other outcome terminates in one of the four
// statuses (success, failed, skipped, draft_saved) with a persisted
// run-summary record.
func (p *Pipeline) Run(ctx context.Context) (*model.RunSummary, error) {
	cfg := p.config
	verbose := cfg.Output.Verbose

	summary := &model.RunSummary{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		DryRun:    cfg.Workflow.DryRun,
		Steps:     make(map[string]model.StepResult),
	}

	// Step 1: collect
	if verbose {
		fmt.Fprintln(os.Stderr, "Step 1: collecting news...")
	}
	items := p.collector.Collect(ctx, cfg.Feeds.Hours)
	summary.ItemsCollected = len(items)
	summary.Steps["fetch"] = model.StepResult{Completed: true, Detail: fmt.Sprintf("%d items", len(items))}

	if len(items) == 0 {
		summary.Status = model.RunSkipped
		summary.Reason = "no articles found"
		p.finish(summary)
		return summary, nil
	}

	// Step 2: curate
	if verbose {
		fmt.Fprintln(os.Stderr, "Step 2: curating with LLM...")
	}
	curated, err := p.curator.Curate(ctx, sources.FormatItems(items))
	if err != nil {
		return nil, err
	}
	summary.Steps["curate"] = model.StepResult{Completed: true}

	// Step 2b: enrich curated URLs with full text
	urls := compose.ExtractURLs(curated, items, cfg.Workflow.MaxArticles)
	material := curated
	if len(urls) > 0 {
		if verbose {
			fmt.Fprintf(os.Stderr, "Step 2b: fetching %d full articles...\n", len(urls))
		}
		material = "CURATED ARTICLE SUMMARIES:\n" + curated +
			"\n\nFULL ARTICLE CONTENT:\n" + p.enricher.FetchAll(ctx, urls)
	}
	summary.Steps["fetch_full"] = model.StepResult{Completed: true, Detail: fmt.Sprintf("%d urls", len(urls))}

	// Step 3: draft
	if verbose {
		fmt.Fprintln(os.Stderr, "Step 3: writing draft post...")
	}
	draft, err := p.writer.Write(ctx, material)
	if err != nil {
		return nil, err
	}
	summary.Steps["write"] = model.StepResult{Completed: true}

	// Step 4: verify and converge
	finalText := draft
	if cfg.Workflow.SkipVerification {
		summary.Steps["verify"] = model.StepResult{Skipped: true}
	} else {
		if verbose {
			fmt.Fprintln(os.Stderr, "Step 4: verifying claims...")
		}
		outcome, err := p.loop.Converge(ctx, draft, material)
		if err != nil {
			return nil, err
		}

		summary.FinalConfidence = outcome.Verdict.ConfidencePercent
		summary.Steps["verify"] = model.StepResult{
			Completed:  true,
			Confidence: outcome.Verdict.ConfidencePercent,
			Detail: fmt.Sprintf("%d verified, %d unverified, %d rewrites",
				outcome.Verdict.VerifiedClaims, outcome.Verdict.UnverifiedClaims, outcome.AttemptsUsed),
		}

		if !outcome.Accepted || outcome.Verdict.ConfidencePercent < cfg.Workflow.ConfidenceThreshold {
			summary.Status = model.RunDraftSaved
			summary.Reason = fmt.Sprintf("verification stopped at %d%% confidence", outcome.Verdict.ConfidencePercent)
			summary.DraftFile = outcome.DraftFile
			p.finish(summary)
			return summary, nil
		}

		finalText = outcome.FinalText
	}

	// Step 5: publish (or dry run)
	if cfg.Workflow.DryRun {
		fmt.Println("\n[DRY RUN - not posting]")
		fmt.Println("\n--- POST CONTENT ---")
		fmt.Println(finalText)
		fmt.Println("--- END POST ---")
		summary.Steps["post"] = model.StepResult{Completed: true, Detail: "dry run"}
		summary.Status = model.RunSuccess
		p.finish(summary)
		return summary, nil
	}

	status := p.publisher.ValidateToken(ctx)
	if !status.Valid {
		summary.Status = model.RunFailed
		summary.Reason = fmt.Sprintf("credential check failed: %s", status.Error)
		p.finish(summary)
		return summary, nil
	}

	result := p.publisher.Post(ctx, finalText)
	summary.Steps["post"] = model.StepResult{Completed: result.Success, Detail: result.Error}
	if result.Success {
		summary.Status = model.RunSuccess
		summary.PostID = result.PostID
	} else {
		summary.Status = model.RunFailed
		summary.Reason = result.Error
	}

	p.finish(summary)
	return summary, nil
}

// finish stamps the summary and persists it under the logs directory.
func (p *Pipeline) finish(summary *model.RunSummary) {
	summary.FinishedAt = time.Now().UTC()

	if err := SaveSummary(p.config.Workflow.LogsDir, summary); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save run summary: %v\n", err)
	}
}
