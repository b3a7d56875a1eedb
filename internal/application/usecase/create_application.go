package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/domain/authz"
	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
	"github.com/coopcredit/credit-application-service/internal/domain/model"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
	"github.com/coopcredit/credit-application-service/internal/domain/service"
)

// CreateApplicationUseCase opens a new PENDING credit application for a
// cooperative member.
type CreateApplicationUseCase struct {
	appRepo     port.CreditApplicationRepository
	memberRepo  port.MemberRepository
	publisher   port.EventPublisher
	eligibility *service.EligibilityEvaluator
	metrics     port.MetricsRecorder
}

// NewCreateApplicationUseCase wires dependencies.
func NewCreateApplicationUseCase(
	appRepo port.CreditApplicationRepository,
	memberRepo port.MemberRepository,
	publisher port.EventPublisher,
	eligibility *service.EligibilityEvaluator,
	metrics port.MetricsRecorder,
) *CreateApplicationUseCase {
	return &CreateApplicationUseCase{
		appRepo:     appRepo,
		memberRepo:  memberRepo,
		publisher:   publisher,
		eligibility: eligibility,
		metrics:     metrics,
	}
}

// Execute validates the request bounds, checks the member can apply, and
// persists the new application. Eligibility business rules beyond request
// bounds and member status run later, at evaluation time.
func (uc *CreateApplicationUseCase) Execute(
	ctx context.Context,
	req dto.CreateApplicationRequest,
) (dto.CreditApplicationResponse, error) {
	if err := authz.AuthorizeOwn(
		req.Actor, authz.ActionCreateApplication, authz.ActionCreateApplicationAny, req.MemberDocumentNumber,
	); err != nil {
		return dto.CreditApplicationResponse{}, err
	}

	if violations := uc.eligibility.ValidateRequestBounds(
		req.RequestedAmount, req.TermMonths, req.MonthlyRatePercent,
	); len(violations) > 0 {
		fields := make([]domainerr.FieldViolation, 0, len(violations))
		for _, v := range violations {
			fields = append(fields, domainerr.FieldViolation{Field: "request", Message: v})
		}
		return dto.CreditApplicationResponse{}, domainerr.NewValidationError(fields...)
	}

	member, err := uc.memberRepo.FindByDocumentNumber(ctx, req.MemberDocumentNumber)
	if err != nil {
		return dto.CreditApplicationResponse{}, fmt.Errorf("load member: %w", err)
	}
	if !member.CanApplyForCredit() {
		return dto.CreditApplicationResponse{}, domainerr.NewValidationError(domainerr.FieldViolation{
			Field:   "member_document_number",
			Message: "member is not active",
		})
	}

	now := time.Now().UTC()
	app, err := model.NewCreditApplication(
		req.MemberDocumentNumber, req.RequestedAmount, req.TermMonths, req.MonthlyRatePercent, now,
	)
	if err != nil {
		return dto.CreditApplicationResponse{}, fmt.Errorf("create application: %w", err)
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.CreditApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		slog.WarnContext(ctx, "failed to publish application events",
			"application_id", app.ID(), "error", err)
	}
	uc.metrics.ApplicationCreated(ctx)

	slog.InfoContext(ctx, "credit application created",
		"application_id", app.ID(),
		"member_document_number", app.MemberDocumentNumber(),
		"requested_amount", app.RequestedAmount().String(),
	)

	return toApplicationResponse(app), nil
}
