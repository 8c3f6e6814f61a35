package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DraftSink persists a non-convergent draft and its last verification
// report for manual review.
type DraftSink interface {
	Save(draft, report string) (string, error)
}

// FileDraftSink writes review drafts as timestamped text files.
type FileDraftSink struct {
	dir string
	now func() time.Time
}

// NewFileDraftSink creates a sink rooted at dir.
func NewFileDraftSink(dir string) *FileDraftSink {
	return &FileDraftSink{dir: dir, now: time.Now}
}

// Save writes the draft and report to a run-timestamped file and returns
// its path.
func (s *FileDraftSink) Save(draft, report string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create drafts dir: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("draft_%s.txt", s.now().Format("20060102_150405")))

	content := "=== DRAFT POST (BEST EFFORT) ===\n\n" +
		draft +
		"\n\n=== VERIFICATION REPORT ===\n\n" +
		report

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write draft file: %w", err)
	}

	return path, nil
}
