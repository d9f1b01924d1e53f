package client

import (
	"errors"
	"fmt"

	pb "github.com/dmitrijs2005/gophauth/internal/proto"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrNotAuthenticated = errors.New("no session, run auth first")
)

// ServiceError is an error reported by the auth server.
type ServiceError struct {
	Variant pb.ErrorVariant
	Err     error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("server error: %s", e.Variant)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsVariant reports whether err is a ServiceError with the given variant.
func IsVariant(err error, v pb.ErrorVariant) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Variant == v
}
