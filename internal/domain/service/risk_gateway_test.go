package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopcredit/credit-application-service/internal/domain/model"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

type stubRiskClient struct {
	result  port.RiskScoreResult
	err     error
	lastReq port.RiskScoreRequest
}

func (s *stubRiskClient) Evaluate(_ context.Context, req port.RiskScoreRequest) (port.RiskScoreResult, error) {
	s.lastReq = req
	return s.result, s.err
}

func pendingApplication(t *testing.T, amount int64, termMonths int) model.CreditApplication {
	t.Helper()
	app, err := model.NewCreditApplication(
		"1020304050", decimal.NewFromInt(amount), termMonths, decimal.NewFromFloat(1.5), evalNow,
	)
	require.NoError(t, err)
	return app.ClearEvents()
}

func TestDebtToIncomeRatio(t *testing.T) {
	dti := DebtToIncomeRatio(decimal.NewFromFloat(499_241.80), decimal.NewFromInt(3_000_000))

	expected := decimal.NewFromFloat(16.64)
	assert.True(t, dti.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.02)),
		"dti %s should be about %s", dti, expected)
}

func TestDebtToIncomeRatioZeroSalary(t *testing.T) {
	dti := DebtToIncomeRatio(decimal.NewFromInt(500_000), decimal.Zero)
	assert.True(t, dti.Equal(decimal.NewFromInt(100)))

	dti = DebtToIncomeRatio(decimal.NewFromInt(500_000), decimal.NewFromInt(-1))
	assert.True(t, dti.Equal(decimal.NewFromInt(100)))
}

func TestScoreEligibleMember(t *testing.T) {
	client := &stubRiskClient{result: port.RiskScoreResult{
		Score:               720,
		RiskLevel:           valueobject.RiskLevelLow,
		RecommendedApproval: true,
		Rationale:           "low risk profile",
	}}
	gateway := NewRiskScoringGateway(client, NewEligibilityEvaluator())

	member := activeMember(t, 3_000_000, 24)
	app := pendingApplication(t, 10_000_000, 24)

	eval, err := gateway.Score(context.Background(), "req-1", member, app, evalNow)
	require.NoError(t, err)

	assert.Equal(t, "req-1", eval.RequestID())
	assert.Equal(t, 720, eval.Score())
	assert.True(t, eval.RiskLevel().Equal(valueobject.RiskLevelLow))
	assert.True(t, eval.RecommendedApproval())
	assert.Equal(t, "low risk profile", eval.Rationale())

	// The provider received the computed profile.
	assert.Equal(t, "1020304050", client.lastReq.DocumentNumber)
	assert.Equal(t, 24, client.lastReq.MonthsEnrolled)
	assert.True(t, client.lastReq.DebtToIncomeRatio.GreaterThan(decimal.NewFromInt(16)))
	assert.True(t, client.lastReq.DebtToIncomeRatio.LessThan(decimal.NewFromInt(17)))
}

func TestScoreIneligibleMemberNeverRecommended(t *testing.T) {
	// Provider says yes, but the member fails the tenure rule.
	client := &stubRiskClient{result: port.RiskScoreResult{
		Score:               800,
		RiskLevel:           valueobject.RiskLevelLow,
		RecommendedApproval: true,
		Rationale:           "low risk profile",
	}}
	gateway := NewRiskScoringGateway(client, NewEligibilityEvaluator())

	member := activeMember(t, 3_000_000, 3)
	app := pendingApplication(t, 10_000_000, 24)

	eval, err := gateway.Score(context.Background(), "req-1", member, app, evalNow)
	require.NoError(t, err)

	assert.Equal(t, 800, eval.Score())
	assert.False(t, eval.RecommendedApproval())
	assert.Contains(t, eval.Rationale(), "ineligible")
	assert.Contains(t, eval.Rationale(), "tenure")
}

func TestScoreProviderError(t *testing.T) {
	client := &stubRiskClient{err: errors.New("connection refused")}
	gateway := NewRiskScoringGateway(client, NewEligibilityEvaluator())

	member := activeMember(t, 3_000_000, 24)
	app := pendingApplication(t, 10_000_000, 24)

	_, err := gateway.Score(context.Background(), "req-1", member, app, evalNow)
	assert.Error(t, err)
}

func TestScoreRejectsOutOfRangeProviderScore(t *testing.T) {
	client := &stubRiskClient{result: port.RiskScoreResult{
		Score:     9999,
		RiskLevel: valueobject.RiskLevelLow,
	}}
	gateway := NewRiskScoringGateway(client, NewEligibilityEvaluator())

	member := activeMember(t, 3_000_000, 24)
	app := pendingApplication(t, 10_000_000, 24)

	_, err := gateway.Score(context.Background(), "req-1", member, app, evalNow)
	assert.Error(t, err)
}
