package model

// VerdictStatus is the parsed outcome of one verification report.
type VerdictStatus string

const (
	VerdictAccepted VerdictStatus = "accepted"
	VerdictRejected VerdictStatus = "rejected"
)

// Verdict is the structured result of parsing a verifier's free-text report.
// Created fresh on each verification call; never mutated, only superseded.
//
// Invariants: ConfidencePercent is round(100 * verified / total) when total
// is positive, else 0 - except that a report with zero unverified claims and
// at least one verified claim is forced to Accepted at 100, overriding
// whatever the report's own PASSED/FAILED phrasing says.
type Verdict struct {
	Status            VerdictStatus `json:"status"`
	VerifiedClaims    int           `json:"verified_claims"`
	UnverifiedClaims  int           `json:"unverified_claims"`
	ConfidencePercent int           `json:"confidence_percent"`
	ReportText        string        `json:"-"`
}

// TotalClaims returns the number of claim markers the parser recognized.
func (v Verdict) TotalClaims() int {
	return v.VerifiedClaims + v.UnverifiedClaims
}

// Passed reports whether the verdict meets the convergence target:
// accepted with every claim verified.
func (v Verdict) Passed() bool {
	return v.Status == VerdictAccepted && v.ConfidencePercent == 100
}
