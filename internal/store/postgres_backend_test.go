package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockBackend(t *testing.T) (*PostgresBackend, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresBackend(sqlx.NewDb(db, "postgres")), mock
}

func TestPostgresBackendRead(t *testing.T) {
	backend, mock := newMockBackend(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM collections WHERE name = $1")).
		WithArgs("products").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(`[]`))

	v, found, err := backend.Read(context.Background(), "products")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", string(v))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackendReadMissing(t *testing.T) {
	backend, mock := newMockBackend(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM collections")).
		WithArgs("scenarios").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	_, found, err := backend.Read(context.Background(), "scenarios")
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBackendWriteUpserts(t *testing.T) {
	backend, mock := newMockBackend(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO collections (name, payload, updated_at)")).
		WithArgs("products", `[{"id":"PROD-001"}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := backend.Write(context.Background(), "products", []byte(`[{"id":"PROD-001"}]`))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
