package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskLevel – immutable value object
// ---------------------------------------------------------------------------

// RiskLevel is the coarse risk bucket derived from a numeric credit score.
type RiskLevel struct {
	value string
}

const (
	riskLevelLow    = "LOW"
	riskLevelMedium = "MEDIUM"
	riskLevelHigh   = "HIGH"
)

var (
	RiskLevelLow    = RiskLevel{value: riskLevelLow}
	RiskLevelMedium = RiskLevel{value: riskLevelMedium}
	RiskLevelHigh   = RiskLevel{value: riskLevelHigh}
)

var validRiskLevels = map[string]RiskLevel{
	riskLevelLow:    RiskLevelLow,
	riskLevelMedium: RiskLevelMedium,
	riskLevelHigh:   RiskLevelHigh,
}

// Credit scores live in [MinRiskScore, MaxRiskScore]; higher is safer.
const (
	MinRiskScore = 300
	MaxRiskScore = 950

	highRiskThreshold   = 500
	mediumRiskThreshold = 700
)

// NewRiskLevel creates a RiskLevel from a raw string.
func NewRiskLevel(s string) (RiskLevel, error) {
	v, ok := validRiskLevels[s]
	if !ok {
		return RiskLevel{}, fmt.Errorf("invalid risk level: %q", s)
	}
	return v, nil
}

// RiskLevelFromScore buckets a numeric score. The mapping is monotonic:
// scores at or below 500 are HIGH, at or below 700 are MEDIUM, above are LOW.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score <= highRiskThreshold:
		return RiskLevelHigh
	case score <= mediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// String returns the string representation of the risk level.
func (l RiskLevel) String() string { return l.value }

// IsZero returns true when not initialised.
func (l RiskLevel) IsZero() bool { return l.value == "" }

// Equal returns true when both levels match.
func (l RiskLevel) Equal(other RiskLevel) bool { return l.value == other.value }
