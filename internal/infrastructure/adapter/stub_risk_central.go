package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/port"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

// StubRiskCentralClient is a development/test adapter that returns a
// deterministic risk verdict derived from the applicant's document number.
// It implements port.RiskCentralClient.
type StubRiskCentralClient struct{}

// NewStubRiskCentralClient creates a new stub adapter.
func NewStubRiskCentralClient() *StubRiskCentralClient {
	return &StubRiskCentralClient{}
}

var maxRecommendableDTI = decimal.NewFromInt(40)

// Evaluate returns a deterministic score in [300, 950] based on a hash of the
// document number, so test scenarios are repeatable. The recommendation mirrors
// what a real provider would say: no HIGH-risk applicant and nobody whose
// installment eats more than 40% of their income.
func (c *StubRiskCentralClient) Evaluate(_ context.Context, req port.RiskScoreRequest) (port.RiskScoreResult, error) {
	if req.DocumentNumber == "" {
		return port.RiskScoreResult{}, fmt.Errorf("document number is required")
	}

	h := sha256.Sum256([]byte(req.DocumentNumber))
	num := binary.BigEndian.Uint32(h[:4])
	score := valueobject.MinRiskScore + int(num%uint32(valueobject.MaxRiskScore-valueobject.MinRiskScore+1))

	riskLevel := valueobject.RiskLevelFromScore(score)
	recommended := !riskLevel.Equal(valueobject.RiskLevelHigh) &&
		req.DebtToIncomeRatio.LessThanOrEqual(maxRecommendableDTI)

	rationale := fmt.Sprintf("score %d (%s), debt-to-income %s%%, %d months enrolled",
		score, riskLevel.String(), req.DebtToIncomeRatio.StringFixed(2), req.MonthsEnrolled)

	return port.RiskScoreResult{
		Score:               score,
		RiskLevel:           riskLevel,
		RecommendedApproval: recommended,
		Rationale:           rationale,
	}, nil
}
