package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/domain/authz"
	"github.com/coopcredit/credit-application-service/internal/domain/model"
)

// PreviewAmortizationUseCase computes an installment and payment schedule
// without touching any state. Degenerate inputs yield a zero installment and
// an empty schedule rather than an error, so live previews can show partial
// results while the caller is still typing.
type PreviewAmortizationUseCase struct{}

// NewPreviewAmortizationUseCase returns the stateless preview use case.
func NewPreviewAmortizationUseCase() *PreviewAmortizationUseCase {
	return &PreviewAmortizationUseCase{}
}

// Execute computes the preview.
func (uc *PreviewAmortizationUseCase) Execute(
	_ context.Context,
	req dto.PreviewAmortizationRequest,
) (dto.AmortizationPreviewResponse, error) {
	if err := authz.Authorize(req.Actor, authz.ActionPreviewAmortization); err != nil {
		return dto.AmortizationPreviewResponse{}, err
	}

	installment := model.MonthlyInstallment(req.Principal, req.TermMonths, req.MonthlyRatePercent)

	resp := dto.AmortizationPreviewResponse{
		Principal:          req.Principal,
		TermMonths:         req.TermMonths,
		MonthlyRatePercent: req.MonthlyRatePercent,
		MonthlyInstallment: installment,
		TotalPayment:       decimal.Zero,
	}
	if installment.IsZero() {
		return resp, nil
	}

	start := req.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}

	schedule := model.GenerateAmortizationSchedule(req.Principal, req.TermMonths, req.MonthlyRatePercent, start)
	entries := make([]dto.AmortizationEntryResponse, 0, len(schedule))
	total := decimal.Zero
	for _, entry := range schedule {
		entries = append(entries, dto.AmortizationEntryResponse{
			Period:           entry.Period,
			DueDate:          entry.DueDate,
			Principal:        entry.Principal,
			Interest:         entry.Interest,
			Total:            entry.Total,
			RemainingBalance: entry.RemainingBalance,
		})
		total = total.Add(entry.Total)
	}
	resp.Schedule = entries
	resp.TotalPayment = total
	return resp, nil
}
