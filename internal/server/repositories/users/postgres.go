// Package users persists user accounts in PostgreSQL.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (email, username, password_hash)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.UserName, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT id, email, username, password_hash, banned, verified, email_token, created_at FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	var emailToken sql.NullString
	err := r.db.QueryRowContext(ctx, query, userName).Scan(
		&user.ID, &user.Email, &user.UserName, &user.PasswordHash,
		&user.Banned, &user.Verified, &emailToken, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if emailToken.Valid {
		user.EmailToken = &emailToken.String
	}

	return user, nil
}

func (r *PostgresRepository) SetBanned(ctx context.Context, userID int64, banned bool) error {
	return r.update(ctx, `UPDATE users SET banned = $2 WHERE id = $1`, userID, banned)
}

func (r *PostgresRepository) SetVerified(ctx context.Context, userID int64, verified bool) error {
	return r.update(ctx, `UPDATE users SET verified = $2 WHERE id = $1`, userID, verified)
}

func (r *PostgresRepository) SetEmailToken(ctx context.Context, userID int64, token *string) error {
	var v sql.NullString
	if token != nil {
		v = sql.NullString{String: *token, Valid: true}
	}
	return r.update(ctx, `UPDATE users SET email_token = $2 WHERE id = $1`, userID, v)
}

// update runs a single-row UPDATE keyed by id and reports common.ErrorNotFound
// when no row matched.
func (r *PostgresRepository) update(ctx context.Context, query string, userID int64, value any) error {
	res, err := r.db.ExecContext(ctx, query, userID, value)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
