package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/domain/authz"
	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
)

// ManageMemberUseCase covers profile updates and status toggles. Status
// changes affect future eligibility evaluations only; past decisions are
// never revisited.
type ManageMemberUseCase struct {
	memberRepo port.MemberRepository
	publisher  port.EventPublisher
}

// NewManageMemberUseCase wires dependencies.
func NewManageMemberUseCase(memberRepo port.MemberRepository, publisher port.EventPublisher) *ManageMemberUseCase {
	return &ManageMemberUseCase{memberRepo: memberRepo, publisher: publisher}
}

// UpdateProfile replaces the member's name and salary.
func (uc *ManageMemberUseCase) UpdateProfile(
	ctx context.Context,
	req dto.UpdateMemberRequest,
) (dto.MemberResponse, error) {
	if err := authz.Authorize(req.Actor, authz.ActionManageMembers); err != nil {
		return dto.MemberResponse{}, err
	}

	member, err := uc.memberRepo.FindByDocumentNumber(ctx, req.DocumentNumber)
	if err != nil {
		return dto.MemberResponse{}, err
	}

	now := time.Now().UTC()
	member, err = member.UpdateProfile(req.Name, req.MonthlySalary, now)
	if err != nil {
		return dto.MemberResponse{}, domainerr.NewValidationError(domainerr.FieldViolation{
			Field:   "member",
			Message: err.Error(),
		})
	}

	if err := uc.memberRepo.Save(ctx, member); err != nil {
		return dto.MemberResponse{}, fmt.Errorf("save member: %w", err)
	}
	return toMemberResponse(member, member.MonthsEnrolled(now)), nil
}

// SetStatus activates or deactivates the member.
func (uc *ManageMemberUseCase) SetStatus(
	ctx context.Context,
	req dto.SetMemberStatusRequest,
) (dto.MemberResponse, error) {
	if err := authz.Authorize(req.Actor, authz.ActionManageMembers); err != nil {
		return dto.MemberResponse{}, err
	}

	member, err := uc.memberRepo.FindByDocumentNumber(ctx, req.DocumentNumber)
	if err != nil {
		return dto.MemberResponse{}, err
	}

	now := time.Now().UTC()
	if req.Active {
		member = member.Activate(now)
	} else {
		member = member.Deactivate(now)
	}

	if err := uc.memberRepo.Save(ctx, member); err != nil {
		return dto.MemberResponse{}, fmt.Errorf("save member: %w", err)
	}

	if err := uc.publisher.Publish(ctx, member.DomainEvents()...); err != nil {
		slog.WarnContext(ctx, "failed to publish member events",
			"document_number", member.DocumentNumber(), "error", err)
	}

	slog.InfoContext(ctx, "member status changed",
		"document_number", member.DocumentNumber(),
		"status", member.Status().String(),
	)

	return toMemberResponse(member, member.MonthsEnrolled(now)), nil
}
