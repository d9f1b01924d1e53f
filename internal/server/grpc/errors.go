package grpc

import (
	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type wireError struct {
	variant pb.ErrorVariant
	code    codes.Code
}

var wireErrors = map[common.Kind]wireError{
	common.KindInvalidUsername: {pb.ErrInvalidUsername, codes.NotFound},
	common.KindInvalidPassword: {pb.ErrInvalidPassword, codes.Unauthenticated},
	common.KindInvalidToken:    {pb.ErrInvalidToken, codes.Unauthenticated},
	common.KindExistingUser:    {pb.ErrExistingUser, codes.AlreadyExists},
	common.KindInvalidPayload:  {pb.ErrInvalidPayload, codes.InvalidArgument},
	common.KindForbidden:       {pb.ErrForbidden, codes.PermissionDenied},
	common.KindBanned:          {pb.ErrBanned, codes.PermissionDenied},
}

var internalError = wireError{pb.ErrInternalServerError, codes.Internal}

// toWire picks the wire error for a kind. Connection, query and server
// errors, as well as untagged ones, all become InternalServerError.
func toWire(kind common.Kind) wireError {
	if w, ok := wireErrors[kind]; ok {
		return w
	}
	return internalError
}

// toStatus converts a service error into the status sent to the caller. Only
// the variant name crosses the boundary.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	w := toWire(common.KindOf(err))
	st := status.New(w.code, string(w.variant))
	if detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: string(w.variant),
		Domain: pb.ErrorDomain,
	}); derr == nil {
		st = detailed
	}
	return st.Err()
}
