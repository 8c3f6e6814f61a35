package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkozlov/newsbrief/internal/model"
)

// SaveSummary writes the run-summary record as a timestamped JSON file
// under dir and returns the first error encountered.
func SaveSummary(dir string, summary *model.RunSummary) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}

	raw, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("run_%s.json", summary.StartedAt.Format("20060102_150405")))
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}
