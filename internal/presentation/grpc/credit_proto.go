package grpc

// credit_proto.go defines the CreditService gRPC surface. It serves as a
// stand-in for buf-generated code; messages travel over the registered JSON
// codec.

import (
	"context"
	"time"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/coopcredit/credit-application-service/internal/application/dto"
)

// ---------------------------------------------------------------------------
// Wire messages
// ---------------------------------------------------------------------------

// CreateApplicationRequest opens a new credit application. Decimal values
// travel as strings to avoid floating-point drift on the wire.
type CreateApplicationRequest struct {
	MemberDocumentNumber string `json:"member_document_number"`
	RequestedAmount      string `json:"requested_amount"`
	TermMonths           int    `json:"term_months"`
	MonthlyRatePercent   string `json:"monthly_rate_percent"`
}

// GetApplicationRequest identifies one application.
type GetApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

// ListApplicationsRequest selects a listing surface.
type ListApplicationsRequest struct {
	PendingOnly          bool   `json:"pending_only,omitempty"`
	MemberDocumentNumber string `json:"member_document_number,omitempty"`
}

// RequestEvaluationRequest triggers the risk scoring round.
type RequestEvaluationRequest struct {
	ApplicationID string `json:"application_id"`
	RequestID     string `json:"request_id,omitempty"`
}

// RecordDecisionRequest finalizes an evaluated application.
type RecordDecisionRequest struct {
	ApplicationID string `json:"application_id"`
	Approved      bool   `json:"approved"`
	Comments      string `json:"comments,omitempty"`
}

// PreviewAmortizationRequest computes an installment without side effects.
type PreviewAmortizationRequest struct {
	Principal          string    `json:"principal"`
	TermMonths         int       `json:"term_months"`
	MonthlyRatePercent string    `json:"monthly_rate_percent"`
	StartDate          time.Time `json:"start_date,omitempty"`
}

// ApplicationResponse wraps one application snapshot.
type ApplicationResponse struct {
	Application dto.CreditApplicationResponse `json:"application"`
}

// ApplicationListResponse wraps a listing.
type ApplicationListResponse struct {
	Applications []dto.CreditApplicationResponse `json:"applications"`
}

// AmortizationPreviewResponse wraps the computed schedule.
type AmortizationPreviewResponse struct {
	Preview dto.AmortizationPreviewResponse `json:"preview"`
}

// ---------------------------------------------------------------------------
// Service definition
// ---------------------------------------------------------------------------

// CreditServiceServer is the server API for CreditService.
type CreditServiceServer interface {
	CreateApplication(context.Context, *CreateApplicationRequest) (*ApplicationResponse, error)
	GetApplication(context.Context, *GetApplicationRequest) (*ApplicationResponse, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ApplicationListResponse, error)
	RequestEvaluation(context.Context, *RequestEvaluationRequest) (*ApplicationResponse, error)
	RecordDecision(context.Context, *RecordDecisionRequest) (*ApplicationResponse, error)
	PreviewAmortization(context.Context, *PreviewAmortizationRequest) (*AmortizationPreviewResponse, error)
	mustEmbedUnimplementedCreditServiceServer()
}

// UnimplementedCreditServiceServer provides forward-compatible default implementations.
type UnimplementedCreditServiceServer struct{}

func (UnimplementedCreditServiceServer) CreateApplication(context.Context, *CreateApplicationRequest) (*ApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateApplication not implemented")
}
func (UnimplementedCreditServiceServer) GetApplication(context.Context, *GetApplicationRequest) (*ApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedCreditServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ApplicationListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedCreditServiceServer) RequestEvaluation(context.Context, *RequestEvaluationRequest) (*ApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestEvaluation not implemented")
}
func (UnimplementedCreditServiceServer) RecordDecision(context.Context, *RecordDecisionRequest) (*ApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordDecision not implemented")
}
func (UnimplementedCreditServiceServer) PreviewAmortization(context.Context, *PreviewAmortizationRequest) (*AmortizationPreviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewAmortization not implemented")
}
func (UnimplementedCreditServiceServer) mustEmbedUnimplementedCreditServiceServer() {}

// RegisterCreditServiceServer registers the CreditServiceServer with the gRPC server.
func RegisterCreditServiceServer(s *grpclib.Server, srv CreditServiceServer) {
	s.RegisterService(&_CreditService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CreditService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "coopcredit.credit.v1.CreditService",
	HandlerType: (*CreditServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateApplication", Handler: _CreditService_CreateApplication_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetApplication", Handler: _CreditService_GetApplication_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ListApplications", Handler: _CreditService_ListApplications_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "RequestEvaluation", Handler: _CreditService_RequestEvaluation_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "RecordDecision", Handler: _CreditService_RecordDecision_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "PreviewAmortization", Handler: _CreditService_PreviewAmortization_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_CreateApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).CreateApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.CreditService/CreateApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).CreateApplication(ctx, req.(*CreateApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.CreditService/GetApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetApplication(ctx, req.(*GetApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_ListApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).ListApplications(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.CreditService/ListApplications",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).ListApplications(ctx, req.(*ListApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_RequestEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequestEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).RequestEvaluation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.CreditService/RequestEvaluation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).RequestEvaluation(ctx, req.(*RequestEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_RecordDecision_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordDecisionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).RecordDecision(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.CreditService/RecordDecision",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).RecordDecision(ctx, req.(*RecordDecisionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_PreviewAmortization_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviewAmortizationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).PreviewAmortization(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.CreditService/PreviewAmortization",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).PreviewAmortization(ctx, req.(*PreviewAmortizationRequest))
	}
	return interceptor(ctx, in, info, handler)
}
