package roles

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const (
	insertQ = `^INSERT INTO roles \(id, name\) VALUES \(\$1, \$2\)$`
	selectQ = `^SELECT name FROM roles WHERE id = \$1$`
	updateQ = `^UPDATE roles SET name = \$2 WHERE id = \$1$`
)

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(insertQ).WithArgs(int64(3), "user").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), 3, models.RoleUser))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(insertQ).WithArgs(int64(3), "user").WillReturnError(errors.New("fk violation"))

	err := repo.Create(context.Background(), 3, models.RoleUser)
	require.ErrorContains(t, err, "db error: fk violation")
}

func TestGetByUserID(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		want    models.Role
		wantErr error
	}{
		{name: "admin", stored: "admin", want: models.RoleAdmin},
		{name: "moderator", stored: "moderator", want: models.RoleModerator},
		{name: "user", stored: "user", want: models.RoleUser},
		{name: "unknown", stored: "superuser", wantErr: common.ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			mock.ExpectQuery(selectQ).WithArgs(int64(1)).
				WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow(tt.stored))

			got, err := repo.GetByUserID(context.Background(), 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetByUserID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(selectQ).WithArgs(int64(8)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserID(context.Background(), 8)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByUserID_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(selectQ).WithArgs(int64(8)).WillReturnError(errors.New("conn reset"))

	_, err := repo.GetByUserID(context.Background(), 8)
	require.ErrorContains(t, err, "db error: conn reset")
	require.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(updateQ).WithArgs(int64(2), "moderator").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), 2, models.RoleModerator))
}

func TestUpdate_NoRow(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(updateQ).WithArgs(int64(404), "admin").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 404, models.RoleAdmin)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
