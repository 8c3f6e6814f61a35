package verify

import (
	"math"
	"strings"

	"github.com/pkozlov/newsbrief/internal/model"
)

// Marker phrases the verifier is prompted to emit. Detection is heuristic:
// the report is natural language, not a protocol, so parsing must never
// fail - a report that says nothing recognizable is fully unverified.
const (
	markerVerified   = "status: verified"
	markerUnverified = "status: unverified"
)

var passMarkers = []string{
	"overall status: passed",
	"recommendation: publish",
	"recommendation:\npublish", // recommendation on the line after the label
}

// ParseReport converts a verifier's free-text report into a structured
// verdict. Pure function of the text: same input, same verdict.
//
// The claim-marker counts are authoritative. The PASSED/PUBLISH phrasing is
// advisory only and is overridden whenever every counted claim verified:
// zero unverified plus at least one verified forces Accepted at 100%,
// regardless of what the report's own summary says. The reverse asymmetry
// is deliberate: a report with no claim markers but an affirmative PASSED
// phrase is accepted at 0% confidence, since the high-confidence override
// requires at least one verified claim.
func ParseReport(report string) model.Verdict {
	// Lower-case and strip emphasis markup so marker detection survives
	// whatever bolding the model wraps around its labels.
	normalized := strings.ToLower(report)
	normalized = strings.ReplaceAll(normalized, "*", "")

	verified := strings.Count(normalized, markerVerified)
	unverified := strings.Count(normalized, markerUnverified)

	passed := false
	for _, marker := range passMarkers {
		if strings.Contains(normalized, marker) {
			passed = true
			break
		}
	}

	confidence := 0
	if total := verified + unverified; total > 0 {
		confidence = int(math.Round(100 * float64(verified) / float64(total)))
	}

	// Authoritative override: every counted claim verified.
	if unverified == 0 && verified > 0 {
		passed = true
		confidence = 100
	}

	status := model.VerdictRejected
	if passed {
		status = model.VerdictAccepted
	}

	return model.Verdict{
		Status:            status,
		VerifiedClaims:    verified,
		UnverifiedClaims:  unverified,
		ConfidencePercent: confidence,
		ReportText:        report,
	}
}
