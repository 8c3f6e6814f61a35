package verify

import (
	"context"
	"fmt"
	"os"

	"github.com/pkozlov/newsbrief/internal/compose"
	"github.com/pkozlov/newsbrief/internal/llm"
	"github.com/pkozlov/newsbrief/internal/model"
)

// Loop drives the bounded verify-and-rewrite cycle until the draft's
// verdict is fully accepted or the retry budget runs out.
//
// The loop itself never edits content. Each rewrite is delegated to the
// generation provider under a deletion-only policy, and the result is
// treated as the new draft, opaque to loop logic. Provider failures are
// never retried here - they abort the run; the budget only bounds
// verification-driven rewrites.
type Loop struct {
	provider   llm.Provider
	sink       DraftSink
	maxRetries int
	verbose    bool
}

// NewLoop creates a convergence loop. sink receives the best-effort draft
// when the budget is exhausted.
func NewLoop(provider llm.Provider, sink DraftSink, maxRetries int, verbose bool) *Loop {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Loop{
		provider:   provider,
		sink:       sink,
		maxRetries: maxRetries,
		verbose:    verbose,
	}
}

// Outcome is the terminal result of one convergence run.
type Outcome struct {
	// FinalText is the last draft, accepted or best-effort
	FinalText string

	// Verdict is the final verification verdict
	Verdict model.Verdict

	// Accepted reports whether the loop terminated fully verified
	Accepted bool

	// AttemptsUsed counts rewrite calls actually issued
	AttemptsUsed int

	// DraftFile is the review file path when the loop exhausted its budget
	DraftFile string
}

// Converge verifies draft against material, rewriting and re-verifying
// until the verdict is accepted at 100% confidence or maxRetries rewrites
// have been spent. It performs at most maxRetries rewrite calls and
// maxRetries+1 verification calls.
func (l *Loop) Converge(ctx context.Context, draft, material string) (*Outcome, error) {
	verdict, err := l.verifyOnce(ctx, draft, material)
	if err != nil {
		return nil, err
	}

	attempt := 0
	for !verdict.Passed() && attempt < l.maxRetries {
		attempt++
		if l.verbose {
			fmt.Fprintf(os.Stderr, "  Verification at %d%%, rewriting (attempt %d/%d)\n",
				verdict.ConfidencePercent, attempt, l.maxRetries)
		}

		draft, err = l.rewriteOnce(ctx, draft, verdict.ReportText, material)
		if err != nil {
			return nil, err
		}

		verdict, err = l.verifyOnce(ctx, draft, material)
		if err != nil {
			return nil, err
		}
	}

	outcome := &Outcome{
		FinalText:    draft,
		Verdict:      verdict,
		Accepted:     verdict.Passed(),
		AttemptsUsed: attempt,
	}

	if !outcome.Accepted {
		path, err := l.sink.Save(draft, verdict.ReportText)
		if err != nil {
			return nil, fmt.Errorf("save review draft: %w", err)
		}
		outcome.DraftFile = path
		if l.verbose {
			fmt.Fprintf(os.Stderr, "  Could not reach 100%% after %d attempts; saved %s\n",
				l.maxRetries, path)
		}
	}

	return outcome, nil
}

// verifyOnce issues one verification call and parses its report.
func (l *Loop) verifyOnce(ctx context.Context, draft, material string) (model.Verdict, error) {
	resp, err := l.provider.Generate(ctx, llm.GenerateRequest{
		Prompt:        compose.VerifierPrompt(draft, material),
		SystemMessage: compose.VerifierSystem,
	})
	if err != nil {
		return model.Verdict{}, fmt.Errorf("verify: %w", err)
	}

	verdict := ParseReport(resp.Text)
	if l.verbose {
		fmt.Fprintf(os.Stderr, "  Claims: %d verified, %d unverified (confidence %d%%)\n",
			verdict.VerifiedClaims, verdict.UnverifiedClaims, verdict.ConfidencePercent)
	}
	return verdict, nil
}

// rewriteOnce issues one deletion-only rewrite call.
func (l *Loop) rewriteOnce(ctx context.Context, draft, report, material string) (string, error) {
	resp, err := l.provider.Generate(ctx, llm.GenerateRequest{
		Prompt:        compose.RewritePrompt(draft, report, material),
		SystemMessage: compose.RewriterSystem,
	})
	if err != nil {
		return "", fmt.Errorf("rewrite: %w", err)
	}
	return resp.Text, nil
}
