package usecase

import (
	"context"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/domain/authz"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

// ListApplicationsUseCase serves the three listing surfaces: all applications
// (admin), the pending queue (analyst/admin), and a member's own applications
// (the member themself or admin).
type ListApplicationsUseCase struct {
	appRepo port.CreditApplicationRepository
}

// NewListApplicationsUseCase wires dependencies.
func NewListApplicationsUseCase(appRepo port.CreditApplicationRepository) *ListApplicationsUseCase {
	return &ListApplicationsUseCase{appRepo: appRepo}
}

// Execute picks the surface from the request shape and authorizes it.
func (uc *ListApplicationsUseCase) Execute(
	ctx context.Context,
	req dto.ListApplicationsRequest,
) ([]dto.CreditApplicationResponse, error) {
	switch {
	case req.MemberDocumentNumber != "":
		if err := authz.AuthorizeOwn(
			req.Actor, authz.ActionViewOwnApplications, authz.ActionViewAnyApplication,
			req.MemberDocumentNumber,
		); err != nil {
			return nil, err
		}
		apps, err := uc.appRepo.FindByMemberDocument(ctx, req.MemberDocumentNumber)
		if err != nil {
			return nil, err
		}
		return toApplicationResponses(apps), nil

	case req.PendingOnly:
		if err := authz.Authorize(req.Actor, authz.ActionViewPendingQueue); err != nil {
			return nil, err
		}
		apps, err := uc.appRepo.FindByStatus(ctx, valueobject.ApplicationStatusPending)
		if err != nil {
			return nil, err
		}
		return toApplicationResponses(apps), nil

	default:
		if err := authz.Authorize(req.Actor, authz.ActionViewAnyApplication); err != nil {
			return nil, err
		}
		apps, err := uc.appRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return toApplicationResponses(apps), nil
	}
}
