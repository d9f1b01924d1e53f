package client

import "context"

type Client interface {
	Close() error
	Token() string
	Register(ctx context.Context, userName, password, email string) (int64, error)
	Authenticate(ctx context.Context, userName, password string) (string, error)
	Deauthenticate(ctx context.Context) error
	Role(ctx context.Context) (string, error)
	SetUserRole(ctx context.Context, userID int64, role string) error
	SetUserBanned(ctx context.Context, userID int64, banned bool) error
	SetUserVerified(ctx context.Context, userID int64, verified bool) error
	SetEmailToken(ctx context.Context, userID int64, token *string) error
	Ping(ctx context.Context) error
}
