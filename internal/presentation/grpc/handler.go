package grpc

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
	"github.com/coopcredit/credit-application-service/internal/application/usecase"
	"github.com/coopcredit/credit-application-service/internal/domain/authz"
	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
	"github.com/coopcredit/credit-application-service/pkg/auth"
)

// Handler exposes the application use cases over gRPC. It translates wire
// messages into use case DTOs and domain errors into gRPC status codes.
type Handler struct {
	UnimplementedCreditServiceServer
	UnimplementedMemberServiceServer

	createApplication   *usecase.CreateApplicationUseCase
	getApplication      *usecase.GetApplicationUseCase
	listApplications    *usecase.ListApplicationsUseCase
	requestEvaluation   *usecase.RequestEvaluationUseCase
	recordDecision      *usecase.RecordDecisionUseCase
	previewAmortization *usecase.PreviewAmortizationUseCase
	registerMember      *usecase.RegisterMemberUseCase
	manageMember        *usecase.ManageMemberUseCase
	getMember           *usecase.GetMemberUseCase
}

// NewHandler creates a new Handler wired to the given use cases.
func NewHandler(
	createApplication *usecase.CreateApplicationUseCase,
	getApplication *usecase.GetApplicationUseCase,
	listApplications *usecase.ListApplicationsUseCase,
	requestEvaluation *usecase.RequestEvaluationUseCase,
	recordDecision *usecase.RecordDecisionUseCase,
	previewAmortization *usecase.PreviewAmortizationUseCase,
	registerMember *usecase.RegisterMemberUseCase,
	manageMember *usecase.ManageMemberUseCase,
	getMember *usecase.GetMemberUseCase,
) *Handler {
	return &Handler{
		createApplication:   createApplication,
		getApplication:      getApplication,
		listApplications:    listApplications,
		requestEvaluation:   requestEvaluation,
		recordDecision:      recordDecision,
		previewAmortization: previewAmortization,
		registerMember:      registerMember,
		manageMember:        manageMember,
		getMember:           getMember,
	}
}

// actorFromContext builds the authorization actor from the JWT claims
// attached by the auth interceptor.
func actorFromContext(ctx context.Context) (authz.Actor, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok || claims == nil {
		return authz.Actor{}, status.Error(codes.Unauthenticated, "missing credentials")
	}
	return authz.Actor{
		Username:       claims.Subject,
		DocumentNumber: claims.DocumentNumber,
		Roles:          claims.Roles,
	}, nil
}

// parseDecimal parses a wire decimal string, rejecting empty or malformed input.
func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %q", field, value)
	}
	return d, nil
}

// statusFromError maps domain errors onto gRPC status codes.
func statusFromError(err error) error {
	var validationErr *domainerr.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.Is(err, domainerr.ErrApplicationNotFound),
		errors.Is(err, domainerr.ErrMemberNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domainerr.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domainerr.ErrDuplicateDocument):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domainerr.ErrAlreadyEvaluated),
		errors.Is(err, domainerr.ErrAlreadyFinalized),
		errors.Is(err, domainerr.ErrEvaluationRequired):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domainerr.ErrConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// ---------------------------------------------------------------------------
// CreditService
// ---------------------------------------------------------------------------

func (h *Handler) CreateApplication(ctx context.Context, req *CreateApplicationRequest) (*ApplicationResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := parseDecimal("requested_amount", req.RequestedAmount)
	if err != nil {
		return nil, err
	}
	rate, err := parseDecimal("monthly_rate_percent", req.MonthlyRatePercent)
	if err != nil {
		return nil, err
	}

	resp, err := h.createApplication.Execute(ctx, dto.CreateApplicationRequest{
		Actor:                actor,
		MemberDocumentNumber: req.MemberDocumentNumber,
		RequestedAmount:      amount,
		TermMonths:           req.TermMonths,
		MonthlyRatePercent:   rate,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &ApplicationResponse{Application: resp}, nil
}

func (h *Handler) GetApplication(ctx context.Context, req *GetApplicationRequest) (*ApplicationResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.ApplicationID == "" {
		return nil, status.Error(codes.InvalidArgument, "application_id is required")
	}

	resp, err := h.getApplication.Execute(ctx, dto.GetApplicationRequest{
		Actor:         actor,
		ApplicationID: req.ApplicationID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &ApplicationResponse{Application: resp}, nil
}

func (h *Handler) ListApplications(ctx context.Context, req *ListApplicationsRequest) (*ApplicationListResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := h.listApplications.Execute(ctx, dto.ListApplicationsRequest{
		Actor:                actor,
		PendingOnly:          req.PendingOnly,
		MemberDocumentNumber: req.MemberDocumentNumber,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &ApplicationListResponse{Applications: resp}, nil
}

func (h *Handler) RequestEvaluation(ctx context.Context, req *RequestEvaluationRequest) (*ApplicationResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.ApplicationID == "" {
		return nil, status.Error(codes.InvalidArgument, "application_id is required")
	}

	resp, err := h.requestEvaluation.Execute(ctx, dto.RequestEvaluationRequest{
		Actor:         actor,
		ApplicationID: req.ApplicationID,
		RequestID:     req.RequestID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &ApplicationResponse{Application: resp}, nil
}

func (h *Handler) RecordDecision(ctx context.Context, req *RecordDecisionRequest) (*ApplicationResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.ApplicationID == "" {
		return nil, status.Error(codes.InvalidArgument, "application_id is required")
	}

	resp, err := h.recordDecision.Execute(ctx, dto.RecordDecisionRequest{
		Actor:         actor,
		ApplicationID: req.ApplicationID,
		Approved:      req.Approved,
		Comments:      req.Comments,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &ApplicationResponse{Application: resp}, nil
}

func (h *Handler) PreviewAmortization(ctx context.Context, req *PreviewAmortizationRequest) (*AmortizationPreviewResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	principal, err := parseDecimal("principal", req.Principal)
	if err != nil {
		return nil, err
	}
	rate, err := parseDecimal("monthly_rate_percent", req.MonthlyRatePercent)
	if err != nil {
		return nil, err
	}

	resp, err := h.previewAmortization.Execute(ctx, dto.PreviewAmortizationRequest{
		Actor:              actor,
		Principal:          principal,
		TermMonths:         req.TermMonths,
		MonthlyRatePercent: rate,
		StartDate:          req.StartDate,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &AmortizationPreviewResponse{Preview: resp}, nil
}

// ---------------------------------------------------------------------------
// MemberService
// ---------------------------------------------------------------------------

func (h *Handler) RegisterMember(ctx context.Context, req *RegisterMemberRequest) (*MemberResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	salary, err := parseDecimal("monthly_salary", req.MonthlySalary)
	if err != nil {
		return nil, err
	}

	resp, err := h.registerMember.Execute(ctx, dto.RegisterMemberRequest{
		Actor:          actor,
		DocumentNumber: req.DocumentNumber,
		Name:           req.Name,
		MonthlySalary:  salary,
		EnrollmentDate: req.EnrollmentDate,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &MemberResponse{Member: resp}, nil
}

func (h *Handler) GetMember(ctx context.Context, req *GetMemberRequest) (*MemberResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.DocumentNumber == "" {
		return nil, status.Error(codes.InvalidArgument, "document_number is required")
	}

	resp, err := h.getMember.Execute(ctx, dto.GetMemberRequest{
		Actor:          actor,
		DocumentNumber: req.DocumentNumber,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &MemberResponse{Member: resp}, nil
}

func (h *Handler) ListMembers(ctx context.Context, req *ListMembersRequest) (*MemberListResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := h.getMember.List(ctx, dto.ListMembersRequest{Actor: actor})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &MemberListResponse{Members: resp}, nil
}

func (h *Handler) UpdateMember(ctx context.Context, req *UpdateMemberRequest) (*MemberResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	salary, err := parseDecimal("monthly_salary", req.MonthlySalary)
	if err != nil {
		return nil, err
	}

	resp, err := h.manageMember.UpdateProfile(ctx, dto.UpdateMemberRequest{
		Actor:          actor,
		DocumentNumber: req.DocumentNumber,
		Name:           req.Name,
		MonthlySalary:  salary,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &MemberResponse{Member: resp}, nil
}

func (h *Handler) SetMemberStatus(ctx context.Context, req *SetMemberStatusRequest) (*MemberResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.DocumentNumber == "" {
		return nil, status.Error(codes.InvalidArgument, "document_number is required")
	}

	resp, err := h.manageMember.SetStatus(ctx, dto.SetMemberStatusRequest{
		Actor:          actor,
		DocumentNumber: req.DocumentNumber,
		Active:         req.Active,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &MemberResponse{Member: resp}, nil
}
