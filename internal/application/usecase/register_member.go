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
)

// RegisterMemberUseCase enrolls a new cooperative member.
type RegisterMemberUseCase struct {
	memberRepo port.MemberRepository
	publisher  port.EventPublisher
	metrics    port.MetricsRecorder
}

// NewRegisterMemberUseCase wires dependencies.
func NewRegisterMemberUseCase(
	memberRepo port.MemberRepository,
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
) *RegisterMemberUseCase {
	return &RegisterMemberUseCase{memberRepo: memberRepo, publisher: publisher, metrics: metrics}
}

// Execute registers the member. Document numbers are unique across the
// cooperative; a duplicate fails with ErrDuplicateDocument.
func (uc *RegisterMemberUseCase) Execute(
	ctx context.Context,
	req dto.RegisterMemberRequest,
) (dto.MemberResponse, error) {
	if err := authz.Authorize(req.Actor, authz.ActionManageMembers); err != nil {
		return dto.MemberResponse{}, err
	}

	exists, err := uc.memberRepo.ExistsByDocumentNumber(ctx, req.DocumentNumber)
	if err != nil {
		return dto.MemberResponse{}, fmt.Errorf("check document number: %w", err)
	}
	if exists {
		return dto.MemberResponse{}, domainerr.ErrDuplicateDocument
	}

	now := time.Now().UTC()
	member, err := model.NewMember(req.DocumentNumber, req.Name, req.MonthlySalary, req.EnrollmentDate, now)
	if err != nil {
		return dto.MemberResponse{}, domainerr.NewValidationError(domainerr.FieldViolation{
			Field:   "member",
			Message: err.Error(),
		})
	}

	if err := uc.memberRepo.Save(ctx, member); err != nil {
		return dto.MemberResponse{}, fmt.Errorf("save member: %w", err)
	}

	if err := uc.publisher.Publish(ctx, member.DomainEvents()...); err != nil {
		slog.WarnContext(ctx, "failed to publish member events",
			"document_number", member.DocumentNumber(), "error", err)
	}
	uc.metrics.MemberRegistered(ctx)

	slog.InfoContext(ctx, "member registered", "document_number", member.DocumentNumber())

	return toMemberResponse(member, member.MonthsEnrolled(now)), nil
}
