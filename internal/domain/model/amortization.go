package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyInstallment computes the fixed monthly payment for a credit using
// the standard annuity (French amortization) formula:
//
//	r = monthlyRatePercent / 100
//	installment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// Any non-positive input, and any non-finite intermediate result, yields
// decimal.Zero. Callers treat zero as "not yet computable", never as a valid
// installment; business ranges (min/max amount, term, rate) are not checked
// here but by the eligibility evaluator.
func MonthlyInstallment(principal decimal.Decimal, termMonths int, monthlyRatePercent decimal.Decimal) decimal.Decimal {
	if termMonths <= 0 ||
		principal.LessThanOrEqual(decimal.Zero) ||
		monthlyRatePercent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	// The power calculation runs in float64, monetary arithmetic in decimal.
	r := monthlyRatePercent.InexactFloat64() / 100.0
	factor := math.Pow(1+r, float64(termMonths))

	denominator := factor - 1
	if denominator == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return decimal.Zero
	}

	payment := principal.InexactFloat64() * r * factor / denominator
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(payment).Round(2)
}

// AmortizationEntry is an immutable value object representing one period in an
// amortization schedule.
type AmortizationEntry struct {
	DueDate          time.Time
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// GenerateAmortizationSchedule expands MonthlyInstallment into a full
// fixed-payment schedule. The first payment is due one month after startDate.
// Degenerate inputs return nil, mirroring MonthlyInstallment's zero policy.
func GenerateAmortizationSchedule(
	principal decimal.Decimal,
	termMonths int,
	monthlyRatePercent decimal.Decimal,
	startDate time.Time,
) []AmortizationEntry {
	monthlyPayment := MonthlyInstallment(principal, termMonths, monthlyRatePercent)
	if monthlyPayment.IsZero() {
		return nil
	}

	monthlyRate := monthlyRatePercent.Div(decimal.NewFromInt(100))

	schedule := make([]AmortizationEntry, 0, termMonths)
	remaining := principal

	for period := 1; period <= termMonths; period++ {
		dueDate := startDate.AddDate(0, period, 0)

		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := monthlyPayment.Sub(interest)

		// Last period: adjust for rounding so balance reaches exactly zero.
		if period == termMonths {
			principalPart = remaining
			monthlyPayment = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		schedule = append(schedule, AmortizationEntry{
			Period:           period,
			DueDate:          dueDate,
			Principal:        principalPart,
			Interest:         interest,
			Total:            principalPart.Add(interest),
			RemainingBalance: remaining,
		})
	}

	return schedule
}
