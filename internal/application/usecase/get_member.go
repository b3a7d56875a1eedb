package usecase

import (
	"context"
	"time"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/domain/authz"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
)

// GetMemberUseCase serves member directory reads.
type GetMemberUseCase struct {
	memberRepo port.MemberRepository
}

// NewGetMemberUseCase wires dependencies.
func NewGetMemberUseCase(memberRepo port.MemberRepository) *GetMemberUseCase {
	return &GetMemberUseCase{memberRepo: memberRepo}
}

// Execute retrieves one member. Analysts and admins may look up anyone; an
// affiliate may look up only themself.
func (uc *GetMemberUseCase) Execute(
	ctx context.Context,
	req dto.GetMemberRequest,
) (dto.MemberResponse, error) {
	if !authz.Can(req.Actor, authz.ActionViewMembers) {
		if err := authz.AuthorizeOwn(
			req.Actor, authz.ActionViewOwnApplications, authz.ActionViewMembers, req.DocumentNumber,
		); err != nil {
			return dto.MemberResponse{}, err
		}
	}

	member, err := uc.memberRepo.FindByDocumentNumber(ctx, req.DocumentNumber)
	if err != nil {
		return dto.MemberResponse{}, err
	}
	now := time.Now().UTC()
	return toMemberResponse(member, member.MonthsEnrolled(now)), nil
}

// List returns the full member directory for analysts and admins.
func (uc *GetMemberUseCase) List(
	ctx context.Context,
	req dto.ListMembersRequest,
) ([]dto.MemberResponse, error) {
	if err := authz.Authorize(req.Actor, authz.ActionViewMembers); err != nil {
		return nil, err
	}

	members, err := uc.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	responses := make([]dto.MemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, toMemberResponse(member, member.MonthsEnrolled(now)))
	}
	return responses, nil
}
