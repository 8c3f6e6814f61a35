package model

import "time"

// RunStatus is the terminal status of one workflow run.
type RunStatus string

const (
	RunSuccess    RunStatus = "success"     // Post published (or dry-run completed)
	RunFailed     RunStatus = "failed"      // Publish attempt failed
	RunSkipped    RunStatus = "skipped"     // No articles in the window; nothing to do
	RunDraftSaved RunStatus = "draft_saved" // Verification never converged; draft kept for review
)

// StepResult records the outcome of one workflow step for the run summary.
type StepResult struct {
	Completed  bool   `json:"completed"`
	Skipped    bool   `json:"skipped,omitempty"`
	Detail     string `json:"detail,omitempty"`
	Confidence int    `json:"confidence,omitempty"`
}

// RunSummary is the structured record persisted for every run under the
// logs directory. It carries enough detail to diagnose a run without
// re-executing it.
type RunSummary struct {
	ID              string                `json:"id"`
	StartedAt       time.Time             `json:"started_at"`
	FinishedAt      time.Time             `json:"finished_at"`
	DryRun          bool                  `json:"dry_run"`
	Status          RunStatus             `json:"status"`
	Reason          string                `json:"reason,omitempty"`
	Steps           map[string]StepResult `json:"steps"`
	ItemsCollected  int                   `json:"items_collected"`
	FinalConfidence int                   `json:"final_confidence,omitempty"`
	DraftFile       string                `json:"draft_file,omitempty"`
	PostID          string                `json:"post_id,omitempty"`
}
