package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/domain/authz"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
)

// RecordDecisionUseCase finalizes an evaluated application with the human
// decision.
type RecordDecisionUseCase struct {
	appRepo   port.CreditApplicationRepository
	publisher port.EventPublisher
	metrics   port.MetricsRecorder
}

// NewRecordDecisionUseCase wires dependencies.
func NewRecordDecisionUseCase(
	appRepo port.CreditApplicationRepository,
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
) *RecordDecisionUseCase {
	return &RecordDecisionUseCase{appRepo: appRepo, publisher: publisher, metrics: metrics}
}

// Execute applies the decision and persists the finalized application. The
// state-machine guards surface verbatim: deciding without an evaluation fails
// ErrEvaluationRequired, deciding twice fails ErrAlreadyFinalized.
func (uc *RecordDecisionUseCase) Execute(
	ctx context.Context,
	req dto.RecordDecisionRequest,
) (dto.CreditApplicationResponse, error) {
	if err := authz.Authorize(req.Actor, authz.ActionRecordDecision); err != nil {
		return dto.CreditApplicationResponse{}, err
	}

	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.CreditApplicationResponse{}, err
	}

	now := time.Now().UTC()
	app, err = app.Decide(req.Approved, req.Actor.Username, req.Comments, now)
	if err != nil {
		return dto.CreditApplicationResponse{}, err
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.CreditApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		slog.WarnContext(ctx, "failed to publish decision events",
			"application_id", app.ID(), "error", err)
	}
	uc.metrics.ApplicationDecided(ctx, req.Approved)

	slog.InfoContext(ctx, "decision recorded",
		"application_id", app.ID(),
		"approved", req.Approved,
		"decided_by", req.Actor.Username,
	)

	return toApplicationResponse(app), nil
}
