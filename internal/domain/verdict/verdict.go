// Package verdict turns a raw rule score into the decision returned to
// callers: blocked or approved, with a severity band and the list of
// reasons that contributed.
package verdict

// Severity bands a clamped score into a coarse risk label.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

const (
	// MaxScore caps the reported score. Blocking uses the unclamped sum.
	MaxScore = 100

	highSeverityScore = 75
)

// NoSuspicionReason is reported when no rule triggered.
const NoSuspicionReason = "no suspicious patterns"

// Verdict is the outcome of one scoring run. Confidence expresses the
// clamped score on the 0 to 100 scale.
type Verdict struct {
	IsFraud    bool
	Score      int
	Confidence float64
	Severity   Severity
	Reasons    []string
}

// New builds a verdict from the unclamped rule sum. The fraud decision
// compares the raw sum against the threshold; the reported score is then
// clamped to MaxScore.
func New(sum int, reasons []string, fraudThreshold int) *Verdict {
	isFraud := sum >= fraudThreshold

	score := sum
	if score > MaxScore {
		score = MaxScore
	}

	if len(reasons) == 0 {
		reasons = []string{NoSuspicionReason}
	}

	return &Verdict{
		IsFraud:    isFraud,
		Score:      score,
		Confidence: float64(score),
		Severity:   severityFor(sum, fraudThreshold),
		Reasons:    reasons,
	}
}

func severityFor(sum, fraudThreshold int) Severity {
	switch {
	case sum >= highSeverityScore:
		return SeverityHigh
	case sum >= fraudThreshold:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
