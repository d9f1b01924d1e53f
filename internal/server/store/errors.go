// Package store is the user store consumed by the auth service. It turns
// repository results into kind-tagged errors so the service layer never sees
// driver details.
package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// isConnectionError reports failures to obtain or keep a connection, as
// opposed to a statement that reached the server and failed there.
func isConnectionError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// classify tags a repository failure with ConnectionError or QueryError.
func classify(err error, op string) error {
	kind := common.KindQueryError
	if isConnectionError(err) {
		kind = common.KindConnectionError
	}
	return kind.Builder().With("op", op).Wrap(err)
}
