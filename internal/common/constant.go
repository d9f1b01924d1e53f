// Package common contains constants, sentinel errors, error kinds and random
// helpers shared by the gophauth server and the inspector client.
package common

// AccessTokenHeaderName is the gRPC metadata key carrying the caller's session
// token on administrative requests.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName is the gRPC metadata key used to correlate a request
// across client and server logs.
const RequestIDHeaderName = "x-request-id"

// TokenBytes is the amount of randomness behind every session token.
const TokenBytes = 60
