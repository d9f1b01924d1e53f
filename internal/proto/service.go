package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// AuthServiceServer is the server API for the auth service.
type AuthServiceServer interface {
	Authenticate(context.Context, *AuthRequest) (*AuthResponse, error)
	Deauthenticate(context.Context, *TokenRequest) (*emptypb.Empty, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	GetUserRole(context.Context, *TokenRequest) (*RoleResponse, error)
	SetUserRole(context.Context, *SetUserRoleRequest) (*emptypb.Empty, error)
	SetUserBanned(context.Context, *SetUserBannedRequest) (*emptypb.Empty, error)
	SetUserVerified(context.Context, *SetUserVerifiedRequest) (*emptypb.Empty, error)
	SetEmailToken(context.Context, *SetEmailTokenRequest) (*emptypb.Empty, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	mustEmbedUnimplementedAuthServiceServer()
}

// UnimplementedAuthServiceServer must be embedded by implementations.
type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) Authenticate(context.Context, *AuthRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Authenticate not implemented")
}
func (UnimplementedAuthServiceServer) Deauthenticate(context.Context, *TokenRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Deauthenticate not implemented")
}
func (UnimplementedAuthServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAuthServiceServer) GetUserRole(context.Context, *TokenRequest) (*RoleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserRole not implemented")
}
func (UnimplementedAuthServiceServer) SetUserRole(context.Context, *SetUserRoleRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SetUserRole not implemented")
}
func (UnimplementedAuthServiceServer) SetUserBanned(context.Context, *SetUserBannedRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SetUserBanned not implemented")
}
func (UnimplementedAuthServiceServer) SetUserVerified(context.Context, *SetUserVerifiedRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SetUserVerified not implemented")
}
func (UnimplementedAuthServiceServer) SetEmailToken(context.Context, *SetEmailTokenRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SetEmailToken not implemented")
}
func (UnimplementedAuthServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedAuthServiceServer) mustEmbedUnimplementedAuthServiceServer() {}

// RegisterAuthServiceServer attaches srv to s.
func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodDesc handler.
func unary[Req, Resp any](fullMethod string, call func(AuthServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AuthServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AuthServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for the auth service.
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Authenticate", Handler: unary(AuthService_Authenticate_FullMethodName, AuthServiceServer.Authenticate)},
		{MethodName: "Deauthenticate", Handler: unary(AuthService_Deauthenticate_FullMethodName, AuthServiceServer.Deauthenticate)},
		{MethodName: "Register", Handler: unary(AuthService_Register_FullMethodName, AuthServiceServer.Register)},
		{MethodName: "GetUserRole", Handler: unary(AuthService_GetUserRole_FullMethodName, AuthServiceServer.GetUserRole)},
		{MethodName: "SetUserRole", Handler: unary(AuthService_SetUserRole_FullMethodName, AuthServiceServer.SetUserRole)},
		{MethodName: "SetUserBanned", Handler: unary(AuthService_SetUserBanned_FullMethodName, AuthServiceServer.SetUserBanned)},
		{MethodName: "SetUserVerified", Handler: unary(AuthService_SetUserVerified_FullMethodName, AuthServiceServer.SetUserVerified)},
		{MethodName: "SetEmailToken", Handler: unary(AuthService_SetEmailToken_FullMethodName, AuthServiceServer.SetEmailToken)},
		{MethodName: "Ping", Handler: unary(AuthService_Ping_FullMethodName, AuthServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gophauth/v1/auth.proto",
}
