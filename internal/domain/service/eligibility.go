package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// EligibilityEvaluator: cooperative lending policy rules
// ---------------------------------------------------------------------------

// Request bounds enforced on every new application.
const (
	MinimumTenureMonths = 6
	MinTermMonths       = 6
	MaxTermMonths       = 120
)

var (
	MinRequestedAmount = decimal.NewFromInt(100_000)
	MaxRequestedAmount = decimal.NewFromInt(500_000_000)
	MinMonthlyRate     = decimal.NewFromFloat(0.1)
	MaxMonthlyRate     = decimal.NewFromInt(50)

	// installmentToSalaryCap limits the fixed monthly payment to 40% of the
	// member's monthly salary.
	installmentToSalaryCap = decimal.NewFromFloat(0.40)
)

// EligibilityResult holds the outcome of the policy evaluation. Violations are
// reported in rule order; an empty list means the member passes every rule.
type EligibilityResult struct {
	Violations []string
}

// Eligible reports whether no rule was violated.
func (r EligibilityResult) Eligible() bool {
	return len(r.Violations) == 0
}

// EligibilityEvaluator encapsulates the cooperative's automated lending rules.
// It is stateless and safe for concurrent use.
type EligibilityEvaluator struct{}

// NewEligibilityEvaluator returns a new evaluator instance.
func NewEligibilityEvaluator() *EligibilityEvaluator {
	return &EligibilityEvaluator{}
}

// ValidateRequestBounds checks the raw request parameters against the
// cooperative's hard limits. It runs before any member lookup and reports
// every violated bound.
func (e *EligibilityEvaluator) ValidateRequestBounds(
	requestedAmount decimal.Decimal,
	termMonths int,
	monthlyRatePercent decimal.Decimal,
) []string {
	var violations []string

	if requestedAmount.LessThan(MinRequestedAmount) || requestedAmount.GreaterThan(MaxRequestedAmount) {
		violations = append(violations, fmt.Sprintf(
			"requested amount must be between %s and %s",
			MinRequestedAmount.StringFixed(0), MaxRequestedAmount.StringFixed(0)))
	}
	if termMonths < MinTermMonths || termMonths > MaxTermMonths {
		violations = append(violations, fmt.Sprintf(
			"term must be between %d and %d months", MinTermMonths, MaxTermMonths))
	}
	if monthlyRatePercent.LessThan(MinMonthlyRate) || monthlyRatePercent.GreaterThan(MaxMonthlyRate) {
		violations = append(violations, fmt.Sprintf(
			"monthly rate must be between %s%% and %s%%",
			MinMonthlyRate.String(), MaxMonthlyRate.String()))
	}

	return violations
}

// Evaluate runs every policy rule against the member and requested terms and
// collects all violations. Rules run in a fixed order:
//
//  1. member status must be ACTIVE
//  2. tenure of at least MinimumTenureMonths whole months
//  3. requested amount within SalaryMultiplierCap times the monthly salary
//  4. fixed monthly installment within 40% of the monthly salary
func (e *EligibilityEvaluator) Evaluate(
	member model.Member,
	requestedAmount decimal.Decimal,
	termMonths int,
	monthlyRatePercent decimal.Decimal,
	now time.Time,
) EligibilityResult {
	var violations []string

	if !member.CanApplyForCredit() {
		violations = append(violations, "member is not active")
	}

	if tenure := member.MonthsEnrolled(now); tenure < MinimumTenureMonths {
		violations = append(violations, fmt.Sprintf(
			"member tenure of %d months is below the %d month minimum",
			tenure, MinimumTenureMonths))
	}

	if maxAmount := member.MaximumCreditAmount(); requestedAmount.GreaterThan(maxAmount) {
		violations = append(violations, fmt.Sprintf(
			"requested amount exceeds %dx monthly salary (%s)",
			model.SalaryMultiplierCap, maxAmount.StringFixed(2)))
	}

	installment := model.MonthlyInstallment(requestedAmount, termMonths, monthlyRatePercent)
	maxInstallment := member.MonthlySalary().Mul(installmentToSalaryCap)
	if installment.GreaterThan(maxInstallment) {
		violations = append(violations, fmt.Sprintf(
			"monthly installment %s exceeds 40%% of monthly salary (%s)",
			installment.StringFixed(2), maxInstallment.StringFixed(2)))
	}

	return EligibilityResult{Violations: violations}
}
