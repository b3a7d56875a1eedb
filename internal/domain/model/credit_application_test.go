package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

func newTestApplication(t *testing.T) CreditApplication {
	t.Helper()
	app, err := NewCreditApplication(
		"1020304050",
		decimal.NewFromInt(10_000_000),
		24,
		decimal.NewFromFloat(1.5),
		testNow,
	)
	require.NoError(t, err)
	return app
}

func newTestEvaluation(t *testing.T, recommended bool) RiskEvaluation {
	t.Helper()
	eval, err := NewRiskEvaluation(
		"req-1", 720, decimal.NewFromFloat(16.64), recommended, "LOW risk", testNow,
	)
	require.NoError(t, err)
	return eval
}

func TestNewCreditApplication(t *testing.T) {
	app := newTestApplication(t)

	assert.NotEmpty(t, app.ID())
	assert.True(t, app.Status().Equal(valueobject.ApplicationStatusPending))
	assert.False(t, app.HasEvaluation())
	assert.Equal(t, StagePending, app.Stage())
	assert.Equal(t, 1, app.Version())
	require.Len(t, app.DomainEvents(), 1)
	assert.Equal(t, "credit.application.submitted", app.DomainEvents()[0].EventType())
}

func TestNewCreditApplicationValidation(t *testing.T) {
	cases := []struct {
		name     string
		document string
		amount   decimal.Decimal
		term     int
		rate     decimal.Decimal
	}{
		{"empty document", "", decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.5)},
		{"zero amount", "1020304050", decimal.Zero, 24, decimal.NewFromFloat(1.5)},
		{"zero term", "1020304050", decimal.NewFromInt(10_000_000), 0, decimal.NewFromFloat(1.5)},
		{"zero rate", "1020304050", decimal.NewFromInt(10_000_000), 24, decimal.Zero},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCreditApplication(tc.document, tc.amount, tc.term, tc.rate, testNow)
			assert.Error(t, err)
		})
	}
}

func TestAttachRiskEvaluation(t *testing.T) {
	app := newTestApplication(t).ClearEvents()
	eval := newTestEvaluation(t, true)

	evaluated, err := app.AttachRiskEvaluation(eval, testNow)
	require.NoError(t, err)
	assert.True(t, evaluated.HasEvaluation())
	assert.Equal(t, StageAwaitingDecision, evaluated.Stage())
	assert.Equal(t, 720, evaluated.Evaluation().Score())
	require.Len(t, evaluated.DomainEvents(), 1)
	assert.Equal(t, "credit.application.risk_evaluated", evaluated.DomainEvents()[0].EventType())

	// Original copy is untouched.
	assert.False(t, app.HasEvaluation())
}

func TestAttachRiskEvaluationTwice(t *testing.T) {
	app := newTestApplication(t).ClearEvents()
	eval := newTestEvaluation(t, true)

	evaluated, err := app.AttachRiskEvaluation(eval, testNow)
	require.NoError(t, err)

	_, err = evaluated.AttachRiskEvaluation(eval, testNow)
	assert.ErrorIs(t, err, domainerr.ErrAlreadyEvaluated)
}

func TestAttachRiskEvaluationAfterDecision(t *testing.T) {
	app := newTestApplication(t).ClearEvents()
	eval := newTestEvaluation(t, true)

	evaluated, err := app.AttachRiskEvaluation(eval, testNow)
	require.NoError(t, err)
	approved, err := evaluated.Decide(true, "analyst1", "strong profile", testNow)
	require.NoError(t, err)

	_, err = approved.AttachRiskEvaluation(eval, testNow)
	assert.ErrorIs(t, err, domainerr.ErrAlreadyFinalized)
}

func TestDecideWithoutEvaluation(t *testing.T) {
	app := newTestApplication(t).ClearEvents()

	_, err := app.Decide(true, "analyst1", "looks fine", testNow)
	assert.ErrorIs(t, err, domainerr.ErrEvaluationRequired)
	assert.True(t, app.Status().Equal(valueobject.ApplicationStatusPending))
}

func TestDecideApprove(t *testing.T) {
	app := newTestApplication(t).ClearEvents()
	evaluated, err := app.AttachRiskEvaluation(newTestEvaluation(t, true), testNow)
	require.NoError(t, err)
	evaluated = evaluated.ClearEvents()

	approved, err := evaluated.Decide(true, "analyst1", "strong profile", testNow)
	require.NoError(t, err)
	assert.True(t, approved.Status().Equal(valueobject.ApplicationStatusApproved))
	assert.Equal(t, StageApproved, approved.Stage())
	assert.Equal(t, "analyst1", approved.DecidedBy())
	assert.Equal(t, "strong profile", approved.DecisionReason())
	require.Len(t, approved.DomainEvents(), 1)
	assert.Equal(t, "credit.application.approved", approved.DomainEvents()[0].EventType())
}

func TestDecideReject(t *testing.T) {
	app := newTestApplication(t).ClearEvents()
	evaluated, err := app.AttachRiskEvaluation(newTestEvaluation(t, false), testNow)
	require.NoError(t, err)

	rejected, err := evaluated.Decide(false, "analyst2", "debt burden too high", testNow)
	require.NoError(t, err)
	assert.True(t, rejected.Status().Equal(valueobject.ApplicationStatusRejected))
	assert.Equal(t, StageRejected, rejected.Stage())
}

func TestDecideTwiceLeavesFieldsUnchanged(t *testing.T) {
	app := newTestApplication(t).ClearEvents()
	evaluated, err := app.AttachRiskEvaluation(newTestEvaluation(t, true), testNow)
	require.NoError(t, err)

	approved, err := evaluated.Decide(true, "analyst1", "strong profile", testNow)
	require.NoError(t, err)

	later := testNow.Add(time.Hour)
	after, err := approved.Decide(false, "analyst2", "changed my mind", later)
	assert.ErrorIs(t, err, domainerr.ErrAlreadyFinalized)

	// Returned copy carries the original decision untouched.
	assert.True(t, after.Status().Equal(valueobject.ApplicationStatusApproved))
	assert.Equal(t, "analyst1", after.DecidedBy())
	assert.Equal(t, "strong profile", after.DecisionReason())
	assert.Equal(t, testNow, after.DecidedAt())
}

func TestDecideRequiresDecider(t *testing.T) {
	app := newTestApplication(t).ClearEvents()
	evaluated, err := app.AttachRiskEvaluation(newTestEvaluation(t, true), testNow)
	require.NoError(t, err)

	_, err = evaluated.Decide(true, "", "strong profile", testNow)
	assert.Error(t, err)
}

func TestApplicationMonthlyInstallment(t *testing.T) {
	app := newTestApplication(t)

	expected := MonthlyInstallment(decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.5))
	assert.True(t, app.MonthlyInstallment().Equal(expected))
}

func TestNewRiskEvaluationScoreRange(t *testing.T) {
	_, err := NewRiskEvaluation("req-1", 299, decimal.Zero, false, "", testNow)
	assert.Error(t, err)

	_, err = NewRiskEvaluation("req-1", 951, decimal.Zero, false, "", testNow)
	assert.Error(t, err)

	eval, err := NewRiskEvaluation("req-1", 300, decimal.Zero, false, "HIGH risk", testNow)
	require.NoError(t, err)
	assert.True(t, eval.RiskLevel().Equal(valueobject.RiskLevelHigh))

	eval, err = NewRiskEvaluation("req-1", 950, decimal.Zero, true, "LOW risk", testNow)
	require.NoError(t, err)
	assert.True(t, eval.RiskLevel().Equal(valueobject.RiskLevelLow))
}
