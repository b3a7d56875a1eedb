package grpc

// member_proto.go defines the MemberService gRPC surface, the directory side
// of the cooperative.

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

// RegisterMemberRequest enrolls a new cooperative member.
type RegisterMemberRequest struct {
	DocumentNumber string    `json:"document_number"`
	Name           string    `json:"name"`
	MonthlySalary  string    `json:"monthly_salary"`
	EnrollmentDate time.Time `json:"enrollment_date"`
}

// GetMemberRequest identifies one member.
type GetMemberRequest struct {
	DocumentNumber string `json:"document_number"`
}

// ListMembersRequest lists the member directory.
type ListMembersRequest struct{}

// UpdateMemberRequest replaces a member's profile data.
type UpdateMemberRequest struct {
	DocumentNumber string `json:"document_number"`
	Name           string `json:"name"`
	MonthlySalary  string `json:"monthly_salary"`
}

// SetMemberStatusRequest activates or deactivates a member.
type SetMemberStatusRequest struct {
	DocumentNumber string `json:"document_number"`
	Active         bool   `json:"active"`
}

// MemberResponse wraps one member snapshot.
type MemberResponse struct {
	Member dto.MemberResponse `json:"member"`
}

// MemberListResponse wraps a directory listing.
type MemberListResponse struct {
	Members []dto.MemberResponse `json:"members"`
}

// ---------------------------------------------------------------------------
// Service definition
// ---------------------------------------------------------------------------

// MemberServiceServer is the server API for MemberService.
type MemberServiceServer interface {
	RegisterMember(context.Context, *RegisterMemberRequest) (*MemberResponse, error)
	GetMember(context.Context, *GetMemberRequest) (*MemberResponse, error)
	ListMembers(context.Context, *ListMembersRequest) (*MemberListResponse, error)
	UpdateMember(context.Context, *UpdateMemberRequest) (*MemberResponse, error)
	SetMemberStatus(context.Context, *SetMemberStatusRequest) (*MemberResponse, error)
	mustEmbedUnimplementedMemberServiceServer()
}

// UnimplementedMemberServiceServer provides forward-compatible default implementations.
type UnimplementedMemberServiceServer struct{}

func (UnimplementedMemberServiceServer) RegisterMember(context.Context, *RegisterMemberRequest) (*MemberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterMember not implemented")
}
func (UnimplementedMemberServiceServer) GetMember(context.Context, *GetMemberRequest) (*MemberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMember not implemented")
}
func (UnimplementedMemberServiceServer) ListMembers(context.Context, *ListMembersRequest) (*MemberListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMembers not implemented")
}
func (UnimplementedMemberServiceServer) UpdateMember(context.Context, *UpdateMemberRequest) (*MemberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateMember not implemented")
}
func (UnimplementedMemberServiceServer) SetMemberStatus(context.Context, *SetMemberStatusRequest) (*MemberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetMemberStatus not implemented")
}
func (UnimplementedMemberServiceServer) mustEmbedUnimplementedMemberServiceServer() {}

// RegisterMemberServiceServer registers the MemberServiceServer with the gRPC server.
func RegisterMemberServiceServer(s *grpclib.Server, srv MemberServiceServer) {
	s.RegisterService(&_MemberService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _MemberService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "coopcredit.credit.v1.MemberService",
	HandlerType: (*MemberServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "RegisterMember", Handler: _MemberService_RegisterMember_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "GetMember", Handler: _MemberService_GetMember_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "ListMembers", Handler: _MemberService_ListMembers_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "UpdateMember", Handler: _MemberService_UpdateMember_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "SetMemberStatus", Handler: _MemberService_SetMemberStatus_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _MemberService_RegisterMember_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterMemberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemberServiceServer).RegisterMember(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.MemberService/RegisterMember",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MemberServiceServer).RegisterMember(ctx, req.(*RegisterMemberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MemberService_GetMember_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMemberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemberServiceServer).GetMember(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.MemberService/GetMember",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MemberServiceServer).GetMember(ctx, req.(*GetMemberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MemberService_ListMembers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMembersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemberServiceServer).ListMembers(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.MemberService/ListMembers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MemberServiceServer).ListMembers(ctx, req.(*ListMembersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MemberService_UpdateMember_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateMemberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemberServiceServer).UpdateMember(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.MemberService/UpdateMember",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MemberServiceServer).UpdateMember(ctx, req.(*UpdateMemberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MemberService_SetMemberStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetMemberStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MemberServiceServer).SetMemberStatus(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coopcredit.credit.v1.MemberService/SetMemberStatus",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MemberServiceServer).SetMemberStatus(ctx, req.(*SetMemberStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}
