package media

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)
	return s
}

func TestLocalStorageStoreAndDelete(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	locator, err := s.Store(ctx, Upload{Filename: "lanche.PNG", Content: strings.NewReader("fake-bytes")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(locator, "/uploads/img-"))
	assert.True(t, strings.HasSuffix(locator, ".png"))
	assert.True(t, s.Owns(locator))

	onDisk := filepath.Join(s.dir, path.Base(locator))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "fake-bytes", string(data))

	require.NoError(t, s.Delete(ctx, locator))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageDeleteMissingFile(t *testing.T) {
	s := newTestLocalStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "/uploads/img-123-deadbeef.jpg"))
}

func TestLocalStorageRejectsForeignLocator(t *testing.T) {
	s := newTestLocalStorage(t)
	assert.False(t, s.Owns("https://res.cloudinary.com/demo/image/upload/folder/img.jpg"))
	assert.Error(t, s.Delete(context.Background(), "https://res.cloudinary.com/demo/image/upload/folder/img.jpg"))
}

func TestLocalStorageUniqueNames(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	first, err := s.Store(ctx, Upload{Filename: "a.jpg", Content: strings.NewReader("one")})
	require.NoError(t, err)
	second, err := s.Store(ctx, Upload{Filename: "a.jpg", Content: strings.NewReader("two")})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
