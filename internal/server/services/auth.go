// Package services contains server-side business logic. This file implements
// AuthService: credential verification, session issue and revocation, role
// resolution, registration and the admin-only account operations.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// UserStore is the persistent side of the service. Implementations tag their
// errors with a common.Kind.
type UserStore interface {
	FetchUser(ctx context.Context, userName string) (*models.User, error)
	FetchRole(ctx context.Context, userID int64) (models.Role, error)
	CreateUserWithRole(ctx context.Context, user *models.User, role models.Role) (*models.User, error)
	UpdateRole(ctx context.Context, userID int64, role models.Role) error
	UpdateBan(ctx context.Context, userID int64, banned bool) error
	UpdateVerify(ctx context.Context, userID int64, verified bool) error
	UpdateEmailToken(ctx context.Context, userID int64, token *string) error
}

// SessionStore holds live sessions keyed by token.
type SessionStore interface {
	Insert(token models.Token, session models.Session)
	Lookup(token models.Token) (models.Session, error)
	Remove(token models.Token) error
}

// PasswordHasher produces and checks peppered password hashes. Verify returns
// common.ErrHashMismatch for a wrong password and another error for a hash it
// cannot read.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) error
}

// AuthService is the core of the authentication server.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	hasher   PasswordHasher
	logger   logging.Logger
	audit    logging.Logger
	newToken func() (models.Token, error)
	now      func() time.Time
}

// Option customises an AuthService.
type Option func(*AuthService)

// WithAuditLogger records every authentication and registration attempt on l.
func WithAuditLogger(l logging.Logger) Option {
	return func(s *AuthService) { s.audit = l }
}

// WithTokenGenerator replaces the random token source.
func WithTokenGenerator(fn func() (models.Token, error)) Option {
	return func(s *AuthService) { s.newToken = fn }
}

// WithClock replaces the time source used for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *AuthService) { s.now = now }
}

// NewAuthService wires the service to its stores and hasher.
func NewAuthService(users UserStore, sessions SessionStore, hasher PasswordHasher, logger logging.Logger, opts ...Option) *AuthService {
	s := &AuthService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		logger:   logger.With("module", "services.auth"),
		audit:    logging.Discard(),
		newToken: GenerateToken,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GenerateToken returns a fresh opaque token carrying common.TokenBytes of
// entropy.
func GenerateToken() (models.Token, error) {
	s, err := common.MakeRandURLString(common.TokenBytes)
	if err != nil {
		return "", err
	}
	return models.Token(s), nil
}

// Authenticate checks the credentials and, on success, records a new session
// and returns its token. The token resolves as soon as it is returned. No
// failure path touches the session store.
func (s *AuthService) Authenticate(ctx context.Context, userName, password string) (token models.Token, err error) {
	defer func() { s.recordAttempt(ctx, "authenticate", userName, err) }()

	user, err := s.users.FetchUser(ctx, userName)
	if err != nil {
		return "", internal(err)
	}

	if err := s.hasher.Verify(password, user.PasswordHash); err != nil {
		if errors.Is(err, common.ErrHashMismatch) {
			return "", common.KindInvalidPassword.Builder().
				With("username", userName).
				Wrap(common.ErrInvalidPassword)
		}
		return "", common.KindServerError.Builder().
			With("user_id", user.ID).
			Wrap(err)
	}

	if user.Banned {
		return "", common.KindBanned.Builder().
			With("user_id", user.ID).
			Wrap(common.ErrUserBanned)
	}

	role, err := s.users.FetchRole(ctx, user.ID)
	if err != nil {
		return "", internal(err)
	}

	token, err = s.newToken()
	if err != nil {
		return "", common.KindServerError.Wrap(err)
	}

	s.sessions.Insert(token, models.Session{UserID: user.ID, Role: role, IssuedAt: s.now()})
	s.logger.Debug(ctx, "session issued", "user_id", user.ID, "role", role.String(), "token", token.Fingerprint())
	return token, nil
}

// Register creates a user with the default role. An existing username fails
// with KindExistingUser; user and role rows are created together or not at
// all.
func (s *AuthService) Register(ctx context.Context, userName, password, email string) (user *models.User, err error) {
	defer func() { s.recordAttempt(ctx, "register", userName, err) }()

	_, err = s.users.FetchUser(ctx, userName)
	switch {
	case err == nil:
		return nil, common.KindExistingUser.Builder().
			With("username", userName).
			Wrap(common.ErrorAlreadyExists)
	case errors.Is(err, common.ErrorNotFound):
	default:
		return nil, internal(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.KindServerError.Wrap(err)
	}

	user, err = s.users.CreateUserWithRole(ctx, &models.User{
		Email:        email,
		UserName:     userName,
		PasswordHash: hash,
	}, models.DefaultRole)
	if err != nil {
		return nil, internal(err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "username", user.UserName)
	return user, nil
}

// GetUserRole returns the role captured in the session when it was issued.
// Role changes made later are seen only after re-authentication.
func (s *AuthService) GetUserRole(ctx context.Context, token models.Token) (models.Role, error) {
	session, err := s.sessions.Lookup(token)
	if err != nil {
		return 0, err
	}
	return session.Role, nil
}

// Deauthenticate ends the session. A second call with the same token fails
// with KindInvalidToken.
func (s *AuthService) Deauthenticate(ctx context.Context, token models.Token) error {
	if err := s.sessions.Remove(token); err != nil {
		return err
	}
	s.logger.Debug(ctx, "session revoked", "token", token.Fingerprint())
	return nil
}

// SetUserRole replaces the stored role of userID. The caller must hold an
// admin session. Live sessions of the target keep their old role.
func (s *AuthService) SetUserRole(ctx context.Context, caller models.Token, userID int64, role models.Role) error {
	if !role.Valid() {
		return common.KindInvalidPayload.Builder().With("field", "role").Wrap(common.ErrUnknownRole)
	}
	return s.adminUpdate(ctx, caller, "set_user_role", userID, func() error {
		return s.users.UpdateRole(ctx, userID, role)
	}, "role", role.String())
}

// SetUserBanned sets or clears the banned flag. Admin only.
func (s *AuthService) SetUserBanned(ctx context.Context, caller models.Token, userID int64, banned bool) error {
	return s.adminUpdate(ctx, caller, "set_user_banned", userID, func() error {
		return s.users.UpdateBan(ctx, userID, banned)
	}, "banned", banned)
}

// SetUserVerified sets or clears the verified flag. Admin only.
func (s *AuthService) SetUserVerified(ctx context.Context, caller models.Token, userID int64, verified bool) error {
	return s.adminUpdate(ctx, caller, "set_user_verified", userID, func() error {
		return s.users.UpdateVerify(ctx, userID, verified)
	}, "verified", verified)
}

// SetEmailToken stores or clears (nil) the pending email verification token.
// Admin only.
func (s *AuthService) SetEmailToken(ctx context.Context, caller models.Token, userID int64, emailToken *string) error {
	return s.adminUpdate(ctx, caller, "set_email_token", userID, func() error {
		return s.users.UpdateEmailToken(ctx, userID, emailToken)
	}, "cleared", emailToken == nil)
}

func (s *AuthService) adminUpdate(ctx context.Context, caller models.Token, op string, userID int64, update func() error, attrs ...any) error {
	adminID, err := s.requireAdmin(caller)
	if err != nil {
		return err
	}
	if err := update(); err != nil {
		return internal(err)
	}

	args := append([]any{"op", op, "admin_id", adminID, "user_id", userID}, attrs...)
	s.logger.Info(ctx, "account updated", args...)
	s.audit.Info(ctx, "admin action", args...)
	return nil
}

// requireAdmin resolves the caller token and checks that it belongs to an
// admin session.
func (s *AuthService) requireAdmin(caller models.Token) (int64, error) {
	session, err := s.sessions.Lookup(caller)
	if err != nil {
		return 0, err
	}
	if session.Role != models.RoleAdmin {
		return 0, common.KindForbidden.Builder().
			With("user_id", session.UserID).
			Wrap(common.ErrorForbidden)
	}
	return session.UserID, nil
}

func (s *AuthService) recordAttempt(ctx context.Context, action, userName string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(common.KindOf(err))
	}
	s.audit.Info(ctx, "attempt", "action", action, "username", userName, "outcome", outcome)
}

// internal makes sure an error leaving the service carries a kind. Errors the
// store forgot to tag are treated as server faults.
func internal(err error) error {
	if common.KindOf(err) == common.KindUnknown {
		return common.KindServerError.Wrap(err)
	}
	return err
}
