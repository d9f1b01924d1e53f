// Package client contains the inspector's connection to the auth server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     every auth server operation: Register, Authenticate, Deauthenticate,
//     Role, the admin account operations and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, remembers the session token issued by Authenticate, injects
//     it via an interceptor and maps status errors to Go errors.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrNotAuthenticated. Errors reported by the
// service itself come back as *ServiceError carrying the wire variant.
//
// GRPCClient is meant for a single interactive user and is not safe for
// concurrent use.
package client
