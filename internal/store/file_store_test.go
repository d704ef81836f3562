package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movefunnel/internal/domain"
	"movefunnel/internal/store"
)

func TestFileStore_SaveLoad_OK(t *testing.T) {
	ctx := context.Background()
	fs, err := store.NewFileStore(filepath.Join(t.TempDir(), "snapshots"))
	require.NoError(t, err)
	var snaps domain.SnapshotStore = fs

	_, ok, err := snaps.LoadSnapshot(ctx, "moving-funnel-state:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, snaps.SaveSnapshot(ctx, "moving-funnel-state:abc", []byte(`{"v":1}`)))
	require.NoError(t, snaps.SaveSnapshot(ctx, "moving-funnel-state:abc", []byte(`{"v":2}`)))
	got, ok, err := snaps.LoadSnapshot(ctx, "moving-funnel-state:abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"v":2}`, string(got))

	entries, err := os.ReadDir(fs.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.NotContains(t, entries[0].Name(), ":")

	require.NoError(t, snaps.DeleteSnapshot(ctx, "moving-funnel-state:abc"))
	require.NoError(t, snaps.DeleteSnapshot(ctx, "moving-funnel-state:abc"))
	_, ok, err = snaps.LoadSnapshot(ctx, "moving-funnel-state:abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_RejectsEmptyKeyAndCancelledContext(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.ErrorIs(t, fs.SaveSnapshot(context.Background(), "", nil), store.ErrEmptyKey)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, fs.SaveSnapshot(ctx, "k", []byte("x")), context.Canceled)
}

func TestSealedStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := store.NewMemoryStore()
	sealed, err := store.NewSealedStore(inner, "correct horse", store.WithScryptCost(1<<10, 8, 1))
	require.NoError(t, err)

	require.NoError(t, sealed.SaveSnapshot(ctx, "k", []byte(`{"contactInfo":{"email":"a@b.co"}}`)))

	raw, ok, err := inner.LoadSnapshot(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, string(raw), "a@b.co")

	got, ok, err := sealed.LoadSnapshot(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"contactInfo":{"email":"a@b.co"}}`, string(got))
}

func TestSealedStore_WrongPassphrase_Fails(t *testing.T) {
	ctx := context.Background()
	inner := store.NewMemoryStore()
	a, err := store.NewSealedStore(inner, "correct", store.WithScryptCost(1<<10, 8, 1))
	require.NoError(t, err)
	b, err := store.NewSealedStore(inner, "wrong", store.WithScryptCost(1<<10, 8, 1))
	require.NoError(t, err)

	require.NoError(t, a.SaveSnapshot(ctx, "k", []byte("secret")))
	_, _, err = b.LoadSnapshot(ctx, "k")
	assert.True(t, errors.Is(err, store.ErrWrongPassphrase))

	_, err = store.NewSealedStore(inner, "")
	assert.Error(t, err)
}

func TestMemoryStore_CopiesData(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemoryStore()
	data := []byte("abc")
	require.NoError(t, m.SaveSnapshot(ctx, "k", data))
	data[0] = 'x'

	got, ok, err := m.LoadSnapshot(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 1, m.Len())
}
