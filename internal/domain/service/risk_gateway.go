package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/model"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
)

// ---------------------------------------------------------------------------
// RiskScoringGateway – translates between domain state and the external
// risk scoring provider
// ---------------------------------------------------------------------------

// RiskScoringGateway assembles the applicant profile, calls the provider, and
// folds the verdict together with the cooperative's own eligibility rules into
// a RiskEvaluation. An ineligible member still gets scored, but the gateway
// never recommends approval for one.
type RiskScoringGateway struct {
	client      port.RiskCentralClient
	eligibility *EligibilityEvaluator
}

// NewRiskScoringGateway returns a gateway backed by the given provider client.
func NewRiskScoringGateway(client port.RiskCentralClient, eligibility *EligibilityEvaluator) *RiskScoringGateway {
	return &RiskScoringGateway{client: client, eligibility: eligibility}
}

// DebtToIncomeRatio returns the fixed monthly installment as a percentage of
// the monthly salary. A non-positive salary maps to 100, the worst ratio.
func DebtToIncomeRatio(installment, monthlySalary decimal.Decimal) decimal.Decimal {
	if monthlySalary.LessThanOrEqual(decimal.Zero) {
		return decimal.NewFromInt(100)
	}
	return installment.Div(monthlySalary).Mul(decimal.NewFromInt(100)).Round(2)
}

// Score runs one scoring round for the application. requestID is the
// caller-supplied idempotency key; it travels into the resulting evaluation
// so retries of the same round can be recognized.
func (g *RiskScoringGateway) Score(
	ctx context.Context,
	requestID string,
	member model.Member,
	app model.CreditApplication,
	now time.Time,
) (model.RiskEvaluation, error) {
	installment := app.MonthlyInstallment()
	dti := DebtToIncomeRatio(installment, member.MonthlySalary())

	result, err := g.client.Evaluate(ctx, port.RiskScoreRequest{
		DocumentNumber:    member.DocumentNumber(),
		RequestedAmount:   app.RequestedAmount(),
		TermMonths:        app.TermMonths(),
		DebtToIncomeRatio: dti,
		MonthsEnrolled:    member.MonthsEnrolled(now),
	})
	if err != nil {
		return model.RiskEvaluation{}, fmt.Errorf("risk central evaluation: %w", err)
	}

	recommended := result.RecommendedApproval
	rationale := result.Rationale

	eligibility := g.eligibility.Evaluate(
		member, app.RequestedAmount(), app.TermMonths(), app.MonthlyRatePercent(), now,
	)
	if !eligibility.Eligible() {
		recommended = false
		rationale = rationale + "; ineligible: " + strings.Join(eligibility.Violations, "; ")
	}

	return model.NewRiskEvaluation(requestID, result.Score, dti, recommended, rationale, now)
}
