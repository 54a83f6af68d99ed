package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurkevych/parafii/storage"
)

func newTestStore(t *testing.T) storage.FondStore {
	t.Helper()
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreCreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	revision, err := store.Put(ctx, "data/fond.json", []byte(`{"1":[]}`), "", "initial import")
	require.NoError(t, err)
	assert.NotEmpty(t, revision)

	content, got, err := store.Get(ctx, "data/fond.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"1":[]}`), content)
	assert.Equal(t, revision, got)
}

func TestStoreGetMissing(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Get(context.Background(), "data/absent.json")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStoreCreateExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Put(ctx, "data/fond.json", []byte("a"), "", "create")
	require.NoError(t, err)

	_, err = store.Put(ctx, "data/fond.json", []byte("b"), "", "create again")
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestStoreUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Put(ctx, "data/fond.json", []byte("a"), "", "create")
	require.NoError(t, err)

	second, err := store.Put(ctx, "data/fond.json", []byte("b"), first, "update")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	content, revision, err := store.Get(ctx, "data/fond.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), content)
	assert.Equal(t, second, revision)
}

func TestStoreUpdateStaleRevision(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Put(ctx, "data/fond.json", []byte("a"), "", "create")
	require.NoError(t, err)

	_, err = store.Put(ctx, "data/fond.json", []byte("b"), first, "update")
	require.NoError(t, err)

	_, err = store.Put(ctx, "data/fond.json", []byte("c"), first, "stale update")
	assert.ErrorIs(t, err, storage.ErrRevisionConflict)
}

func TestStoreUpdateMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Put(context.Background(), "data/absent.json", []byte("a"), "deadbeef", "update")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStoreEmptyPath(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyPath)

	_, err = store.Put(ctx, "", []byte("a"), "", "create")
	assert.ErrorIs(t, err, storage.ErrEmptyPath)
}

func TestStoreRevisionIsContentDerived(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	r1, err := store.Put(ctx, "data/one.json", []byte("same"), "", "create")
	require.NoError(t, err)
	r2, err := store.Put(ctx, "data/two.json", []byte("same"), "", "create")
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "identical content must yield identical revisions")
}

func TestStoreClosed(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, _, err = store.Get(context.Background(), "data/fond.json")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.Put(context.Background(), "data/fond.json", []byte("a"), "", "create")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
