// Package grpc exposes the auth service over gRPC. Handlers validate the
// payload, call one service operation and translate its error into the wire
// taxonomy.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/validation"
	"google.golang.org/grpc"
)

// AuthService is the part of services.AuthService the facade calls.
type AuthService interface {
	Authenticate(ctx context.Context, userName, password string) (models.Token, error)
	Register(ctx context.Context, userName, password, email string) (*models.User, error)
	GetUserRole(ctx context.Context, token models.Token) (models.Role, error)
	Deauthenticate(ctx context.Context, token models.Token) error
	SetUserRole(ctx context.Context, caller models.Token, userID int64, role models.Role) error
	SetUserBanned(ctx context.Context, caller models.Token, userID int64, banned bool) error
	SetUserVerified(ctx context.Context, caller models.Token, userID int64, verified bool) error
	SetEmailToken(ctx context.Context, caller models.Token, userID int64, emailToken *string) error
}

// RPCObserver receives one observation per finished call.
type RPCObserver interface {
	ObserveRPC(method, code string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveRPC(string, string, time.Duration) {}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address  string
	auth     AuthService
	rules    validation.Rules
	logger   logging.Logger
	observer RPCObserver
}

// Option customises a GRPCServer.
type Option func(*GRPCServer)

// WithRules sets the payload validation rules.
func WithRules(r validation.Rules) Option {
	return func(s *GRPCServer) { s.rules = r }
}

// WithObserver reports each call to o.
func WithObserver(o RPCObserver) Option {
	return func(s *GRPCServer) { s.observer = o }
}

func NewGRPCServer(address string, l logging.Logger, auth AuthService, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		auth:     auth,
		observer: nopObserver{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// newServer builds the grpc.Server with the interceptor chain and the service
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestIDInterceptor,
		s.loggingInterceptor,
		s.recoveryInterceptor,
	))
	pb.RegisterAuthServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	<-stopped
	return nil
}
