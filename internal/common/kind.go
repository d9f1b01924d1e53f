package common

import (
	"fmt"

	"github.com/samber/oops"
)

// Kind classifies a failure at the point it is detected. Kinds travel with the
// error as an oops code and are translated into the wire taxonomy exactly once,
// at the service boundary.
type Kind string

const (
	KindUnknown         Kind = ""
	KindConnectionError Kind = "CONNECTION_ERROR"
	KindQueryError      Kind = "QUERY_ERROR"
	KindServerError     Kind = "SERVER_ERROR"
	KindInvalidUsername Kind = "INVALID_USERNAME"
	KindInvalidPassword Kind = "INVALID_PASSWORD"
	KindInvalidToken    Kind = "INVALID_TOKEN"
	KindExistingUser    Kind = "EXISTING_USER"
	KindInvalidPayload  Kind = "INVALID_PAYLOAD"
	KindForbidden       Kind = "FORBIDDEN"
	KindBanned          Kind = "BANNED"
)

var knownKinds = map[Kind]struct{}{
	KindConnectionError: {},
	KindQueryError:      {},
	KindServerError:     {},
	KindInvalidUsername: {},
	KindInvalidPassword: {},
	KindInvalidToken:    {},
	KindExistingUser:    {},
	KindInvalidPayload:  {},
	KindForbidden:       {},
	KindBanned:          {},
}

// Builder starts an oops builder tagged with the kind so callers can add
// context with With before calling Wrap or Errorf.
func (k Kind) Builder() oops.OopsErrorBuilder {
	return oops.Code(string(k))
}

// Wrap tags err with the kind. A nil err stays nil.
func (k Kind) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return oops.Code(string(k)).Wrap(err)
}

// KindOf returns the kind attached to err, or KindUnknown when err carries no
// recognised kind.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return KindUnknown
	}
	k := Kind(fmt.Sprint(oopsErr.Code()))
	if _, ok := knownKinds[k]; !ok {
		return KindUnknown
	}
	return k
}
