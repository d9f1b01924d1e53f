package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func withSQLOpen(t *testing.T, fn func(driver, dsn string) (*sql.DB, error)) {
	t.Helper()
	orig := sqlOpen
	sqlOpen = fn
	t.Cleanup(func() { sqlOpen = orig })
}

func TestOpenPostgres_AppliesPoolAndPings(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()

	var gotDriver, gotDSN string
	withSQLOpen(t, func(driver, dsn string) (*sql.DB, error) {
		gotDriver, gotDSN = driver, dsn
		return db, nil
	})

	out, err := OpenPostgres(context.Background(), "postgres://x", PoolConfig{MaxOpenConns: 3}, time.Second)
	require.NoError(t, err)
	defer out.Close()

	require.Equal(t, "pgx", gotDriver)
	require.Equal(t, "postgres://x", gotDSN)
	require.Equal(t, 3, out.Stats().MaxOpenConnections)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_PingFailureClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	withSQLOpen(t, func(string, string) (*sql.DB, error) { return db, nil })

	_, err = OpenPostgres(context.Background(), "postgres://x", PoolConfig{}, time.Second)
	require.ErrorContains(t, err, "db ping error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_OpenFailure(t *testing.T) {
	withSQLOpen(t, func(string, string) (*sql.DB, error) { return nil, errors.New("bad dsn") })

	_, err := OpenPostgres(context.Background(), "::", PoolConfig{}, time.Second)
	require.ErrorContains(t, err, "db open error")
}
