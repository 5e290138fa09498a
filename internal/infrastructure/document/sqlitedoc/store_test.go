package sqlitedoc

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
)

func TestStoreRoundTripsStylesInOrder(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "styles.db")
	store, err := Open(path)
	require.NoError(t, err)

	ctx := context.Background()
	for i, rgb := range []color.RGB{{R: 1}, {G: 1}, {B: 1}} {
		handle, err := store.CreateSolidStyle(ctx, "Demo/"+string(rune('1'+i)), rgb)
		require.NoError(t, err)
		assert.NotEmpty(t, handle.ID)
	}
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	records, err := reopened.ListStyles(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Demo/1", records[0].Name)
	assert.Equal(t, color.RGB{R: 1}, records[0].Color)
	assert.Equal(t, "Demo/3", records[2].Name)
	assert.Equal(t, color.RGB{B: 1}, records[2].Color)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestStoreInMemory(t *testing.T) {
	t.Parallel()

	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.CreateSolidStyle(context.Background(), "Solo/1", color.RGB{G: 1})
	require.NoError(t, err)

	records, err := store.ListStyles(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestStoreRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Open("  ")
	require.Error(t, err)

	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.CreateSolidStyle(context.Background(), "   ", color.RGB{})
	require.Error(t, err)
}

func TestNilStoreIsSafe(t *testing.T) {
	t.Parallel()

	var store *Store
	require.NoError(t, store.Close())
	_, err := store.ListStyles(context.Background())
	require.Error(t, err)
}

func TestStoreKeepsStyleNamesVerbatim(t *testing.T) {
	t.Parallel()

	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	handle, err := store.CreateSolidStyle(context.Background(), " Demo /1", color.RGB{R: 1})
	require.NoError(t, err)
	assert.Equal(t, " Demo /1", handle.Name)

	records, err := store.ListStyles(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, " Demo /1", records[0].Name)
}

func TestStoreSchemaIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "styles.db")
	for i := 0; i < 2; i++ {
		store, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, store.Close())
	}
}
