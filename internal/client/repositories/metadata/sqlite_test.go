package metadata

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/userdash/internal/client/storage"
	"github.com/dmitrijs2005/userdash/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "meta.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("abc")))

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}

func TestGet_MissingKeyReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("old")))
	require.NoError(t, r.Set(ctx, "token", []byte("new")))

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestDelete_RemovesKeyAndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("abc")))
	require.NoError(t, r.Delete(ctx, "token"))

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "token"))
}

func TestListAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("abc")))
	require.NoError(t, r.Set(ctx, "identity", []byte("a@b.com")))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"token": []byte("abc"), "identity": []byte("a@b.com")}, m)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestRepository_InsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Set(ctx, "token", []byte("tx"))
	})
	require.NoError(t, err)

	v, err := NewSQLiteRepository(db).Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tx"), v)
}

func TestRepository_ErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")

	require.ErrorContains(t, r.Set(ctx, "k", []byte("v")), "failed to set metadata[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete metadata[k]")
	require.ErrorContains(t, r.Clear(ctx), "failed to clear metadata")

	_, err = r.List(ctx)
	require.ErrorContains(t, err, "failed to list metadata")
}
