//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *Postgres {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("gophauth_test"),
		postgres.WithUsername("gophauth"),
		postgres.WithPassword("gophauth"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := dbx.OpenPostgres(ctx, dsn, dbx.PoolConfig{MaxOpenConns: 4}, 10*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repos := repomanager.NewPostgresRepositoryManager()
	require.NoError(t, repos.RunMigrations(ctx, db))

	return NewPostgres(db, repos, 5*time.Second)
}

func TestPostgresIntegration_UserLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u, err := s.CreateUserWithRole(ctx, &models.User{UserName: "alice", Email: "alice@x.io", PasswordHash: "h"}, models.RoleUser)
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	_, err = s.CreateUserWithRole(ctx, &models.User{UserName: "alice", Email: "alice2@x.io", PasswordHash: "h"}, models.RoleUser)
	assert.Equal(t, common.KindExistingUser, common.KindOf(err))

	got, err := s.FetchUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	role, err := s.FetchRole(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)

	require.NoError(t, s.UpdateRole(ctx, u.ID, models.RoleAdmin))
	role, err = s.FetchRole(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	require.NoError(t, s.UpdateBan(ctx, u.ID, true))
	got, err = s.FetchUser(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.Banned)

	err = s.UpdateRole(ctx, u.ID+1000, models.RoleAdmin)
	assert.Equal(t, common.KindInvalidUsername, common.KindOf(err))

	require.NoError(t, s.Ping(ctx))
}
