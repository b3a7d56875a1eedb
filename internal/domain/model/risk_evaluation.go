package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

// RiskEvaluation is an immutable value object holding the outcome of a risk
// scoring round for one credit application. At most one evaluation ever
// attaches to an application.
type RiskEvaluation struct {
	requestID           string
	score               int
	riskLevel           valueobject.RiskLevel
	debtToIncomeRatio   decimal.Decimal
	recommendedApproval bool
	rationale           string
	evaluatedAt         time.Time
}

// NewRiskEvaluation validates the score range and builds the value object.
// requestID is the caller-supplied idempotency key of the scoring round; it
// may be empty when the caller did not supply one.
func NewRiskEvaluation(
	requestID string,
	score int,
	debtToIncomeRatio decimal.Decimal,
	recommendedApproval bool,
	rationale string,
	evaluatedAt time.Time,
) (RiskEvaluation, error) {
	if score < valueobject.MinRiskScore || score > valueobject.MaxRiskScore {
		return RiskEvaluation{}, fmt.Errorf("risk score %d outside valid range [%d, %d]",
			score, valueobject.MinRiskScore, valueobject.MaxRiskScore)
	}

	return RiskEvaluation{
		requestID:           requestID,
		score:               score,
		riskLevel:           valueobject.RiskLevelFromScore(score),
		debtToIncomeRatio:   debtToIncomeRatio,
		recommendedApproval: recommendedApproval,
		rationale:           rationale,
		evaluatedAt:         evaluatedAt,
	}, nil
}

// ReconstructRiskEvaluation rebuilds the value object from persistence without
// re-running validation.
func ReconstructRiskEvaluation(
	requestID string,
	score int,
	riskLevel valueobject.RiskLevel,
	debtToIncomeRatio decimal.Decimal,
	recommendedApproval bool,
	rationale string,
	evaluatedAt time.Time,
) RiskEvaluation {
	return RiskEvaluation{
		requestID:           requestID,
		score:               score,
		riskLevel:           riskLevel,
		debtToIncomeRatio:   debtToIncomeRatio,
		recommendedApproval: recommendedApproval,
		rationale:           rationale,
		evaluatedAt:         evaluatedAt,
	}
}

func (r RiskEvaluation) RequestID() string                   { return r.requestID }
func (r RiskEvaluation) Score() int                          { return r.score }
func (r RiskEvaluation) RiskLevel() valueobject.RiskLevel    { return r.riskLevel }
func (r RiskEvaluation) DebtToIncomeRatio() decimal.Decimal  { return r.debtToIncomeRatio }
func (r RiskEvaluation) RecommendedApproval() bool           { return r.recommendedApproval }
func (r RiskEvaluation) Rationale() string                   { return r.rationale }
func (r RiskEvaluation) EvaluatedAt() time.Time              { return r.evaluatedAt }

// IsZero reports whether the evaluation is the zero value, meaning no scoring
// round has completed.
func (r RiskEvaluation) IsZero() bool {
	return r.score == 0 && r.evaluatedAt.IsZero()
}
