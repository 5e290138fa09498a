package yamldoc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
)

func TestDocumentCreatesAndPersistsStyles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "styles.yaml")
	doc, err := Open(path)
	require.NoError(t, err)

	ctx := context.Background()
	first, err := doc.CreateSolidStyle(ctx, "Demo/1", color.RGB{R: 1})
	require.NoError(t, err)
	_, err = doc.CreateSolidStyle(ctx, "Demo/2", color.RGB{G: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Demo/1", first.Name)

	reopened, err := Open(path)
	require.NoError(t, err)
	records, err := reopened.ListStyles(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Demo/1", records[0].Name)
	assert.Equal(t, color.RGB{R: 1}, records[0].Color)
	assert.Equal(t, "Demo/2", records[1].Name)
	assert.Equal(t, first.ID, records[0].ID)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hex: FF0000")
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, reopened.Close())
}

func TestDocumentRejectsEmptyName(t *testing.T) {
	t.Parallel()

	doc, err := Open(filepath.Join(t.TempDir(), "styles.yaml"))
	require.NoError(t, err)
	_, err = doc.CreateSolidStyle(context.Background(), "", color.RGB{})
	require.Error(t, err)
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles: [unterminated"), 0o644))
	_, err := Open(path)
	require.Error(t, err)
}

func TestCreateHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	doc, err := Open(filepath.Join(t.TempDir(), "styles.yaml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = doc.CreateSolidStyle(ctx, "Demo/1", color.RGB{})
	require.ErrorIs(t, err, context.Canceled)
}
