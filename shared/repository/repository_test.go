package repository_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"libraryhub/infras/otel/mocks"
	"libraryhub/infras/postgres"
	"libraryhub/shared/constant"
	"libraryhub/shared/dto"
	"libraryhub/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func byID(id string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: id, Operator: dto.FilterOperatorEq, Table: "items"},
		},
	}
}

func newRepository(t *testing.T) (repository.Repository[item], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.NewRepository[item]("item", "items", "id", conn, mocks.NewOtel()), mock
}

func TestRepository_Insert(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(mock sqlmock.Sqlmock)
		wantErr    bool
		wantUnique bool
	}{
		{
			name: "inserted",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO items (id, name) VALUES ($1, $2)")).
					WithArgs("i-1", "Alpha").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unique violation",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO items").
					WillReturnError(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErr:    true,
			wantUnique: true,
		},
		{
			name: "driver error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO items").WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setupMock(mock)

			err := repo.Insert(context.Background(), item{ID: "i-1", Name: "Alpha"})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantUnique, repository.IsUniqueViolation(err))
			} else {
				require.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      item
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(regexp.QuoteMeta("SELECT items.id, items.name FROM items")).
					ExpectQuery().
					WithArgs("i-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("i-1", "Alpha"))
			},
			want: item{ID: "i-1", Name: "Alpha"},
		},
		{
			name: "no rows gives zero value",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare("SELECT (.+) FROM items").
					ExpectQuery().
					WithArgs("i-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
			},
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare("SELECT (.+) FROM items").
					ExpectQuery().
					WillReturnError(errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setupMock(mock)

			got, err := repo.Get(context.Background(), byID("i-1"))

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetAllPaginated(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY name ASC LIMIT $1 OFFSET $2")).
		ExpectQuery().
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("i-11", "Kappa"))

	got, err := repo.GetAll(context.Background(), dto.QueryParams{Page: 2, Limit: 10, SortBy: "name", SortDir: dto.SortDirAsc}, dto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "i-11", Name: "Kappa"}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(items.id) FROM items")).
		ExpectQuery().
		WithArgs("i-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	got, err := repo.Count(context.Background(), byID("i-1"))

	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RequiresFilter(t *testing.T) {
	repo, mock := newRepository(t)

	_, err := repo.Exist(context.Background(), dto.FilterGroup{})
	require.Error(t, err)

	err = repo.Delete(context.Background(), dto.FilterGroup{})
	require.Error(t, err)

	err = repo.Update(context.Background(), map[string]any{"name": "Beta"}, dto.FilterGroup{})
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateTx(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "committed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET name = $1")).
					WithArgs("Beta", "i-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rolled back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE items").WillReturnError(errors.New("deadlock detected"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setupMock(mock)

			err := repo.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
				return repo.UpdateTx(context.Background(), tx, map[string]any{"name": "Beta"}, byID("i-1"))
			})

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, repository.IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation})))
	assert.False(t, repository.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, repository.IsUniqueViolation(errors.New("boom")))
}
