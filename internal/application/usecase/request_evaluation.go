package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/domain/authz"
	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
	"github.com/coopcredit/credit-application-service/internal/domain/service"
)

// RequestEvaluationUseCase runs the single risk scoring round for an
// application and attaches the outcome.
type RequestEvaluationUseCase struct {
	appRepo    port.CreditApplicationRepository
	memberRepo port.MemberRepository
	gateway    *service.RiskScoringGateway
	publisher  port.EventPublisher
	metrics    port.MetricsRecorder
}

// NewRequestEvaluationUseCase wires dependencies.
func NewRequestEvaluationUseCase(
	appRepo port.CreditApplicationRepository,
	memberRepo port.MemberRepository,
	gateway *service.RiskScoringGateway,
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
) *RequestEvaluationUseCase {
	return &RequestEvaluationUseCase{
		appRepo:    appRepo,
		memberRepo: memberRepo,
		gateway:    gateway,
		publisher:  publisher,
		metrics:    metrics,
	}
}

// Execute scores the application and persists the evaluation. The operation
// is safe to retry: when the application already carries an evaluation from
// the same RequestID, the existing evaluation is returned instead of an
// error. A genuine second attempt (different or absent RequestID) fails with
// ErrAlreadyEvaluated.
func (uc *RequestEvaluationUseCase) Execute(
	ctx context.Context,
	req dto.RequestEvaluationRequest,
) (dto.CreditApplicationResponse, error) {
	if err := authz.Authorize(req.Actor, authz.ActionRequestEvaluation); err != nil {
		return dto.CreditApplicationResponse{}, err
	}

	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.CreditApplicationResponse{}, err
	}

	if app.HasEvaluation() {
		if req.RequestID != "" && app.Evaluation().RequestID() == req.RequestID {
			// Retry of the round that already succeeded.
			return toApplicationResponse(app), nil
		}
		return dto.CreditApplicationResponse{}, domainerr.ErrAlreadyEvaluated
	}
	if app.Status().Terminal() {
		return dto.CreditApplicationResponse{}, domainerr.ErrAlreadyFinalized
	}

	member, err := uc.memberRepo.FindByDocumentNumber(ctx, app.MemberDocumentNumber())
	if err != nil {
		return dto.CreditApplicationResponse{}, fmt.Errorf("load member: %w", err)
	}

	now := time.Now().UTC()
	eval, err := uc.gateway.Score(ctx, req.RequestID, member, app, now)
	if err != nil {
		return dto.CreditApplicationResponse{}, err
	}

	app, err = app.AttachRiskEvaluation(eval, now)
	if err != nil {
		return dto.CreditApplicationResponse{}, err
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		// A concurrent round won the version race; re-read and apply the
		// retry rule against the winner.
		if errors.Is(err, domainerr.ErrConflict) {
			current, readErr := uc.appRepo.FindByID(ctx, req.ApplicationID)
			if readErr == nil && current.HasEvaluation() &&
				req.RequestID != "" && current.Evaluation().RequestID() == req.RequestID {
				return toApplicationResponse(current), nil
			}
			return dto.CreditApplicationResponse{}, domainerr.ErrAlreadyEvaluated
		}
		return dto.CreditApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		slog.WarnContext(ctx, "failed to publish evaluation events",
			"application_id", app.ID(), "error", err)
	}
	uc.metrics.ApplicationEvaluated(ctx)

	slog.InfoContext(ctx, "risk evaluation attached",
		"application_id", app.ID(),
		"score", eval.Score(),
		"risk_level", eval.RiskLevel().String(),
		"recommended_approval", eval.RecommendedApproval(),
	)

	return toApplicationResponse(app), nil
}
