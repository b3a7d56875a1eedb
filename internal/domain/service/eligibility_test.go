package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopcredit/credit-application-service/internal/domain/model"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

var evalNow = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

func activeMember(t *testing.T, salary int64, tenureMonths int) model.Member {
	t.Helper()
	enrolled := evalNow.AddDate(0, -tenureMonths, 0)
	m, err := model.NewMember("1020304050", "Laura Pineda", decimal.NewFromInt(salary), enrolled, evalNow)
	require.NoError(t, err)
	return m.ClearEvents()
}

func TestEvaluateEligibleMember(t *testing.T) {
	evaluator := NewEligibilityEvaluator()
	member := activeMember(t, 3_000_000, 24)

	result := evaluator.Evaluate(
		member, decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.5), evalNow,
	)

	assert.True(t, result.Eligible())
	assert.Empty(t, result.Violations)
}

func TestEvaluateInactiveMember(t *testing.T) {
	evaluator := NewEligibilityEvaluator()
	member := activeMember(t, 3_000_000, 24).Deactivate(evalNow)

	result := evaluator.Evaluate(
		member, decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.5), evalNow,
	)

	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "not active")
}

func TestEvaluateInsufficientTenure(t *testing.T) {
	evaluator := NewEligibilityEvaluator()
	member := activeMember(t, 3_000_000, 3)

	result := evaluator.Evaluate(
		member, decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.5), evalNow,
	)

	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "tenure")
}

func TestEvaluateCollectsAllViolations(t *testing.T) {
	evaluator := NewEligibilityEvaluator()

	// Three months of tenure and an amount thirteen times the salary.
	member := activeMember(t, 3_000_000, 3).Deactivate(evalNow)
	amount := decimal.NewFromInt(39_000_000)

	result := evaluator.Evaluate(member, amount, 24, decimal.NewFromFloat(1.5), evalNow)

	require.Len(t, result.Violations, 4)
	assert.Contains(t, result.Violations[0], "not active")
	assert.Contains(t, result.Violations[1], "tenure")
	assert.Contains(t, result.Violations[2], "monthly salary")
	assert.Contains(t, result.Violations[3], "installment")
}

func TestEvaluateInstallmentCap(t *testing.T) {
	evaluator := NewEligibilityEvaluator()
	member := activeMember(t, 3_000_000, 24)

	// Installment for 30M over 24 months at 1.5% is roughly 1.5M, above the
	// 1.2M cap, while the amount stays within 12x salary.
	result := evaluator.Evaluate(
		member, decimal.NewFromInt(30_000_000), 24, decimal.NewFromFloat(1.5), evalNow,
	)

	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "installment")
}

func TestValidateRequestBounds(t *testing.T) {
	evaluator := NewEligibilityEvaluator()

	cases := []struct {
		name       string
		amount     decimal.Decimal
		termMonths int
		rate       decimal.Decimal
		wantCount  int
	}{
		{"all within bounds", decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.5), 0},
		{"amount at minimum", decimal.NewFromInt(100_000), 6, decimal.NewFromFloat(0.1), 0},
		{"amount at maximum", decimal.NewFromInt(500_000_000), 120, decimal.NewFromInt(50), 0},
		{"amount below minimum", decimal.NewFromInt(99_999), 24, decimal.NewFromFloat(1.5), 1},
		{"amount above maximum", decimal.NewFromInt(500_000_001), 24, decimal.NewFromFloat(1.5), 1},
		{"term too short", decimal.NewFromInt(10_000_000), 5, decimal.NewFromFloat(1.5), 1},
		{"term too long", decimal.NewFromInt(10_000_000), 121, decimal.NewFromFloat(1.5), 1},
		{"rate too low", decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(0.05), 1},
		{"rate too high", decimal.NewFromInt(10_000_000), 24, decimal.NewFromInt(51), 1},
		{"everything out of bounds", decimal.NewFromInt(1), 0, decimal.Zero, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			violations := evaluator.ValidateRequestBounds(tc.amount, tc.termMonths, tc.rate)
			assert.Len(t, violations, tc.wantCount)
		})
	}
}

func TestMemberStatusAffectsEligibilityOnly(t *testing.T) {
	// A deactivated member still exists with valid data; only the status rule
	// should fire.
	member := model.ReconstructMember(
		"1020304050", "Laura Pineda", decimal.NewFromInt(3_000_000),
		evalNow.AddDate(-2, 0, 0), valueobject.MemberStatusInactive, 3, evalNow, evalNow,
	)

	result := NewEligibilityEvaluator().Evaluate(
		member, decimal.NewFromInt(10_000_000), 24, decimal.NewFromFloat(1.5), evalNow,
	)

	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "not active")
}
