package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/google/uuid"
	"github.com/samber/oops"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDFromContext returns the id assigned to the current call.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// metadataValue returns the first value of key in the incoming metadata.
func metadataValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// requestIDInterceptor propagates the caller's x-request-id or assigns a new
// one, and echoes it in the response header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	id := metadataValue(ctx, common.RequestIDHeaderName)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	ctx = context.WithValue(ctx, requestIDKey, id)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))
	return handler(ctx, req)
}

// loggingInterceptor logs every finished call and reports it to the observer.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	code := status.Code(err)
	s.observer.ObserveRPC(info.FullMethod, code.String(), elapsed)
	s.logger.Debug(ctx, "rpc finished",
		"method", info.FullMethod,
		"code", code.String(),
		"elapsed", elapsed,
		"request_id", RequestIDFromContext(ctx))
	return resp, err
}

// recoveryInterceptor turns a panic in a handler into InternalServerError.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if p := recover(); p != nil {
			perr := oops.Code(string(common.KindServerError)).
				With("method", info.FullMethod).
				Errorf("panic: %v", p)
			s.logger.Error(ctx, "handler panicked",
				append(logging.ErrorAttrs(perr), "stack", string(debug.Stack()), "request_id", RequestIDFromContext(ctx))...)
			resp, err = nil, toStatus(perr)
		}
	}()
	return handler(ctx, req)
}
