package usecase

import (
	"context"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/domain/authz"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
	"github.com/coopcredit/credit-application-service/internal/domain/valueobject"
)

// GetApplicationUseCase retrieves a single application, subject to the
// caller's visibility: admins see everything, analysts see the pending queue,
// affiliates see their own.
type GetApplicationUseCase struct {
	appRepo port.CreditApplicationRepository
}

// NewGetApplicationUseCase wires dependencies.
func NewGetApplicationUseCase(appRepo port.CreditApplicationRepository) *GetApplicationUseCase {
	return &GetApplicationUseCase{appRepo: appRepo}
}

// Execute loads and returns the application snapshot.
func (uc *GetApplicationUseCase) Execute(
	ctx context.Context,
	req dto.GetApplicationRequest,
) (dto.CreditApplicationResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.CreditApplicationResponse{}, err
	}

	if authz.Can(req.Actor, authz.ActionViewAnyApplication) {
		return toApplicationResponse(app), nil
	}
	if authz.Can(req.Actor, authz.ActionViewPendingQueue) &&
		app.Status().Equal(valueobject.ApplicationStatusPending) {
		return toApplicationResponse(app), nil
	}
	if err := authz.AuthorizeOwn(
		req.Actor, authz.ActionViewOwnApplications, authz.ActionViewAnyApplication,
		app.MemberDocumentNumber(),
	); err != nil {
		return dto.CreditApplicationResponse{}, err
	}
	return toApplicationResponse(app), nil
}
