package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient
	token       string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current session token, if any, to every
// outgoing call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.token != "" {
		ctx = withAccessToken(ctx, s.token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewAuthClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Token returns the session token of the last successful Authenticate.
func (s *GRPCClient) Token() string {
	return s.token
}

func (s *GRPCClient) Register(ctx context.Context, userName, password, email string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Username: userName, Password: password, Email: email})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Id, nil
}

// Authenticate logs in and keeps the issued token for later calls.
func (s *GRPCClient) Authenticate(ctx context.Context, userName, password string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Authenticate(ctx, &pb.AuthRequest{Username: userName, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.token = resp.Token
	return resp.Token, nil
}

// Deauthenticate revokes the current session and forgets the token.
func (s *GRPCClient) Deauthenticate(ctx context.Context) error {
	if s.token == "" {
		return ErrNotAuthenticated
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.Deauthenticate(ctx, &pb.TokenRequest{Token: s.token}); err != nil {
		return s.mapError(err)
	}
	s.token = ""
	return nil
}

// Role returns the role behind the current session.
func (s *GRPCClient) Role(ctx context.Context) (string, error) {
	if s.token == "" {
		return "", ErrNotAuthenticated
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetUserRole(ctx, &pb.TokenRequest{Token: s.token})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Role, nil
}

func (s *GRPCClient) SetUserRole(ctx context.Context, userID int64, role string) error {
	return s.adminCall(ctx, func(ctx context.Context) error {
		_, err := s.client.SetUserRole(ctx, &pb.SetUserRoleRequest{UserId: userID, Role: role})
		return err
	})
}

func (s *GRPCClient) SetUserBanned(ctx context.Context, userID int64, banned bool) error {
	return s.adminCall(ctx, func(ctx context.Context) error {
		_, err := s.client.SetUserBanned(ctx, &pb.SetUserBannedRequest{UserId: userID, Banned: banned})
		return err
	})
}

func (s *GRPCClient) SetUserVerified(ctx context.Context, userID int64, verified bool) error {
	return s.adminCall(ctx, func(ctx context.Context) error {
		_, err := s.client.SetUserVerified(ctx, &pb.SetUserVerifiedRequest{UserId: userID, Verified: verified})
		return err
	})
}

func (s *GRPCClient) SetEmailToken(ctx context.Context, userID int64, token *string) error {
	return s.adminCall(ctx, func(ctx context.Context) error {
		_, err := s.client.SetEmailToken(ctx, &pb.SetEmailTokenRequest{UserId: userID, EmailToken: token})
		return err
	})
}

func (s *GRPCClient) adminCall(ctx context.Context, call func(ctx context.Context) error) error {
	if s.token == "" {
		return ErrNotAuthenticated
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.mapError(call(ctx))
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if v := pb.VariantOf(err); v != "" {
		return &ServiceError{Variant: v, Err: err}
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
