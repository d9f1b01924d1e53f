package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/validation"
	"google.golang.org/protobuf/types/known/emptypb"
)

// fail logs err and converts it to a status. Caller mistakes are logged at
// debug level; server faults at error level with their context.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	attrs := append([]any{"op", op, "request_id", RequestIDFromContext(ctx)}, logging.ErrorAttrs(err)...)
	if toWire(common.KindOf(err)) == internalError {
		s.logger.Error(ctx, "request failed", attrs...)
	} else {
		s.logger.Debug(ctx, "request rejected", attrs...)
	}
	return toStatus(err)
}

// callerToken reads the caller's session token from the request metadata.
func callerToken(ctx context.Context) (models.Token, error) {
	tok := metadataValue(ctx, common.AccessTokenHeaderName)
	if tok == "" {
		return "", common.KindInvalidToken.Wrap(common.ErrInvalidToken)
	}
	return models.Token(tok), nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthRequest) (*pb.AuthResponse, error) {
	if err := s.rules.Credentials(req.Username, req.Password); err != nil {
		return nil, s.fail(ctx, "authenticate", err)
	}

	token, err := s.auth.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "authenticate", err)
	}

	return &pb.AuthResponse{Token: string(token)}, nil
}

func (s *GRPCServer) Deauthenticate(ctx context.Context, req *pb.TokenRequest) (*emptypb.Empty, error) {
	if err := validation.Token(req.Token); err != nil {
		return nil, s.fail(ctx, "deauthenticate", err)
	}

	if err := s.auth.Deauthenticate(ctx, models.Token(req.Token)); err != nil {
		return nil, s.fail(ctx, "deauthenticate", err)
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	s.logger.Info(ctx, "Registration request", "username", req.Username)

	if err := s.rules.Registration(req.Username, req.Password, req.Email); err != nil {
		return nil, s.fail(ctx, "register", err)
	}

	user, err := s.auth.Register(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		return nil, s.fail(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName, "user_id", user.ID)
	return &pb.RegisterResponse{Id: user.ID, Username: user.UserName}, nil
}

func (s *GRPCServer) GetUserRole(ctx context.Context, req *pb.TokenRequest) (*pb.RoleResponse, error) {
	if err := validation.Token(req.Token); err != nil {
		return nil, s.fail(ctx, "get_user_role", err)
	}

	role, err := s.auth.GetUserRole(ctx, models.Token(req.Token))
	if err != nil {
		return nil, s.fail(ctx, "get_user_role", err)
	}

	return &pb.RoleResponse{Role: role.String()}, nil
}

func (s *GRPCServer) SetUserRole(ctx context.Context, req *pb.SetUserRoleRequest) (*emptypb.Empty, error) {
	caller, err := callerToken(ctx)
	if err != nil {
		return nil, s.fail(ctx, "set_user_role", err)
	}
	if err := validation.UserID(req.UserId); err != nil {
		return nil, s.fail(ctx, "set_user_role", err)
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, s.fail(ctx, "set_user_role", common.KindInvalidPayload.Builder().With("field", "role").Wrap(err))
	}

	if err := s.auth.SetUserRole(ctx, caller, req.UserId, role); err != nil {
		return nil, s.fail(ctx, "set_user_role", err)
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) SetUserBanned(ctx context.Context, req *pb.SetUserBannedRequest) (*emptypb.Empty, error) {
	return s.adminCall(ctx, "set_user_banned", req.UserId, func(caller models.Token) error {
		return s.auth.SetUserBanned(ctx, caller, req.UserId, req.Banned)
	})
}

func (s *GRPCServer) SetUserVerified(ctx context.Context, req *pb.SetUserVerifiedRequest) (*emptypb.Empty, error) {
	return s.adminCall(ctx, "set_user_verified", req.UserId, func(caller models.Token) error {
		return s.auth.SetUserVerified(ctx, caller, req.UserId, req.Verified)
	})
}

func (s *GRPCServer) SetEmailToken(ctx context.Context, req *pb.SetEmailTokenRequest) (*emptypb.Empty, error) {
	if req.EmailToken != nil && len(*req.EmailToken) > validation.MaxEmailLen {
		return nil, s.fail(ctx, "set_email_token",
			common.KindInvalidPayload.Builder().With("field", "email_token").Errorf("email token too long"))
	}
	return s.adminCall(ctx, "set_email_token", req.UserId, func(caller models.Token) error {
		return s.auth.SetEmailToken(ctx, caller, req.UserId, req.EmailToken)
	})
}

func (s *GRPCServer) Ping(_ context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) adminCall(ctx context.Context, op string, userID int64, call func(caller models.Token) error) (*emptypb.Empty, error) {
	caller, err := callerToken(ctx)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	if err := validation.UserID(userID); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	if err := call(caller); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	return &emptypb.Empty{}, nil
}
