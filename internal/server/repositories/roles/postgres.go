// Package roles persists the single role row attached to each user.
package roles

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

func (r *PostgresRepository) Create(ctx context.Context, userID int64, role models.Role) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (id, name) VALUES ($1, $2)`, userID, role.String())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByUserID returns the stored role. A stored name outside the known set
// fails with common.ErrUnknownRole.
func (r *PostgresRepository) GetByUserID(ctx context.Context, userID int64) (models.Role, error) {
	var name string
	err := r.db.QueryRowContext(ctx,
		`SELECT name FROM roles WHERE id = $1`, userID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return models.ParseRole(name)
}

func (r *PostgresRepository) Update(ctx context.Context, userID int64, role models.Role) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE roles SET name = $2 WHERE id = $1`, userID, role.String())
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
