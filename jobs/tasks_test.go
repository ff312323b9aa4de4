package jobs

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahora-delivery/nahora/internal/media"
)

type fakeStorage struct {
	deleted []string
	err     error
}

func (f *fakeStorage) Store(ctx context.Context, up media.Upload) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeStorage) Delete(ctx context.Context, locator string) error {
	f.deleted = append(f.deleted, locator)
	return f.err
}

func (f *fakeStorage) Owns(locator string) bool { return true }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func TestMediaCleanupHandlerDeletesAsset(t *testing.T) {
	storage := &fakeStorage{}
	handler := NewMediaCleanupHandler(storage, testLogger())

	task, err := NewMediaCleanupTask("/uploads/img-1-abc.jpg")
	require.NoError(t, err)
	require.NoError(t, handler(context.Background(), task))
	assert.Equal(t, []string{"/uploads/img-1-abc.jpg"}, storage.deleted)
}

func TestMediaCleanupHandlerSwallowsDeleteFailure(t *testing.T) {
	storage := &fakeStorage{err: errors.New("unreachable")}
	handler := NewMediaCleanupHandler(storage, testLogger())

	task, err := NewMediaCleanupTask("/uploads/img-1-abc.jpg")
	require.NoError(t, err)
	assert.NoError(t, handler(context.Background(), task), "cleanup is best effort and never retried")
}

func TestMediaCleanupHandlerSkipsMalformedPayload(t *testing.T) {
	storage := &fakeStorage{}
	handler := NewMediaCleanupHandler(storage, testLogger())

	err := handler(context.Background(), asynq.NewTask(TaskTypeMediaCleanup, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, storage.deleted)
}
