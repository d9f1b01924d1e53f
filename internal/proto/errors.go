package proto

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// ErrorDomain is the ErrorInfo domain attached to every service error.
const ErrorDomain = "gophauth.v1"

// ErrorVariant is the wire-level error taxonomy. It travels as the Reason of a
// google.rpc.ErrorInfo detail and as the status message.
type ErrorVariant string

const (
	ErrInvalidUsername     ErrorVariant = "InvalidUsername"
	ErrInvalidPassword     ErrorVariant = "InvalidPassword"
	ErrInvalidToken        ErrorVariant = "InvalidToken"
	ErrExistingUser        ErrorVariant = "ExistingUser"
	ErrInternalServerError ErrorVariant = "InternalServerError"
	ErrInvalidPayload      ErrorVariant = "InvalidPayload"
	ErrForbidden           ErrorVariant = "Forbidden"
	ErrBanned              ErrorVariant = "Banned"
)

// VariantOf extracts the error variant from a status error returned by the
// service. It returns "" for nil and for errors without a service detail.
func VariantOf(err error) ErrorVariant {
	if err == nil {
		return ""
	}
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return ErrorVariant(info.GetReason())
		}
	}
	return ""
}
