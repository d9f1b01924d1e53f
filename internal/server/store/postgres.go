package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

// Postgres is the database-backed user store. Each call runs under its own
// timeout so an exhausted pool fails the request instead of queueing it.
type Postgres struct {
	db      *sql.DB
	repos   repomanager.RepositoryManager
	timeout time.Duration
}

func NewPostgres(db *sql.DB, repos repomanager.RepositoryManager, timeout time.Duration) *Postgres {
	return &Postgres{db: db, repos: repos, timeout: timeout}
}

func (s *Postgres) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// FetchUser looks a user up by name. A missing user fails with
// KindInvalidUsername wrapping common.ErrorNotFound.
func (s *Postgres) FetchUser(ctx context.Context, userName string) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.repos.Users(s.db).GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.KindInvalidUsername.Builder().With("username", userName).Wrap(err)
		}
		return nil, classify(err, "fetch_user")
	}
	return user, nil
}

// FetchRole returns the role of a user. A missing or unrecognised role row is a
// server-side inconsistency and fails with KindServerError.
func (s *Postgres) FetchRole(ctx context.Context, userID int64) (models.Role, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	role, err := s.repos.Roles(s.db).GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrUnknownRole) {
			return 0, common.KindServerError.Builder().With("user_id", userID).Wrap(err)
		}
		return 0, classify(err, "fetch_role")
	}
	return role, nil
}

// CreateUserWithRole inserts the user row and its role row in one transaction.
// A unique violation on username or email fails with KindExistingUser.
func (s *Postgres) CreateUserWithRole(ctx context.Context, user *models.User, role models.Role) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var created *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.repos.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		if err := s.repos.Roles(tx).Create(ctx, u.ID, role); err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.KindExistingUser.Builder().
				With("username", user.UserName).
				Wrap(fmt.Errorf("%w: %w", common.ErrorAlreadyExists, err))
		}
		return nil, classify(err, "create_user")
	}
	return created, nil
}

// UpdateRole replaces the stored role of a user. Unknown users fail with
// KindInvalidUsername.
func (s *Postgres) UpdateRole(ctx context.Context, userID int64, role models.Role) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.mapUpdate(s.repos.Roles(s.db).Update(ctx, userID, role), userID, "update_role")
}

func (s *Postgres) UpdateBan(ctx context.Context, userID int64, banned bool) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.mapUpdate(s.repos.Users(s.db).SetBanned(ctx, userID, banned), userID, "update_ban")
}

func (s *Postgres) UpdateVerify(ctx context.Context, userID int64, verified bool) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.mapUpdate(s.repos.Users(s.db).SetVerified(ctx, userID, verified), userID, "update_verify")
}

func (s *Postgres) UpdateEmailToken(ctx context.Context, userID int64, token *string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.mapUpdate(s.repos.Users(s.db).SetEmailToken(ctx, userID, token), userID, "update_email_token")
}

// Ping checks that a connection can be obtained.
func (s *Postgres) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return common.KindConnectionError.Wrap(err)
	}
	return nil
}

func (s *Postgres) mapUpdate(err error, userID int64, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrorNotFound) {
		return common.KindInvalidUsername.Builder().With("user_id", userID).Wrap(err)
	}
	return classify(err, op)
}
