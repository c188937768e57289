package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/domain/entity"
)

func TestLocalFileStorage_Save(t *testing.T) {
	tempDir := t.TempDir()
	logger, _ := zap.NewDevelopment()
	fs := NewLocalFileStorage(tempDir, "/files", logger)

	t.Run("saves under the owner directory with a generated name", func(t *testing.T) {
		content := []byte("PDF content here")

		stored, err := fs.Save(context.Background(), "user-1", "invoice.PDF", content)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stored.URL, "/files/user-1/"))
		assert.True(t, strings.HasSuffix(stored.URL, ".pdf"))
		assert.NotContains(t, stored.Path, "invoice")

		saved, err := os.ReadFile(filepath.Join(tempDir, stored.Path))
		require.NoError(t, err)
		assert.Equal(t, content, saved)
	})

	t.Run("two saves of the same filename do not collide", func(t *testing.T) {
		first, err := fs.Save(context.Background(), "user-1", "receipt.png", []byte("a"))
		require.NoError(t, err)
		second, err := fs.Save(context.Background(), "user-1", "receipt.png", []byte("b"))
		require.NoError(t, err)

		assert.NotEqual(t, first.Path, second.Path)
	})

	t.Run("requires an owner", func(t *testing.T) {
		_, err := fs.Save(context.Background(), "", "invoice.pdf", []byte("x"))
		assert.Error(t, err)
	})

	t.Run("rejects owner escaping the base directory", func(t *testing.T) {
		_, err := fs.Save(context.Background(), "../../etc", "passwd", []byte("x"))
		assert.Error(t, err)
	})
}

func TestLocalFileStorage_ReadDelete(t *testing.T) {
	tempDir := t.TempDir()
	logger, _ := zap.NewDevelopment()
	fs := NewLocalFileStorage(tempDir, "/files", logger)

	stored, err := fs.Save(context.Background(), "user-1", "invoice.pdf", []byte("bytes"))
	require.NoError(t, err)

	t.Run("read returns stored bytes", func(t *testing.T) {
		content, err := fs.Read(context.Background(), stored.Path)
		require.NoError(t, err)
		assert.Equal(t, []byte("bytes"), content)
	})

	t.Run("read reports a missing file as not found", func(t *testing.T) {
		_, err := fs.Read(context.Background(), filepath.Join("user-1", "gone.pdf"))
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("read rejects path traversal", func(t *testing.T) {
		_, err := fs.Read(context.Background(), filepath.Join("..", "outside.txt"))
		assert.Error(t, err)
	})

	t.Run("delete removes the file and is idempotent", func(t *testing.T) {
		require.NoError(t, fs.Delete(context.Background(), stored.Path))
		assert.NoFileExists(t, filepath.Join(tempDir, stored.Path))

		assert.NoError(t, fs.Delete(context.Background(), stored.Path))
	})
}
