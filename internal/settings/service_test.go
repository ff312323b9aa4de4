package settings

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	values   map[string]string
	getCalls int
	setError error
}

func newMockStore() *mockStore {
	return &mockStore{values: map[string]string{
		KeyStoreOpen:     "false",
		KeyWhatsappPhone: "",
	}}
}

func (m *mockStore) GetAll(ctx context.Context) (map[string]string, error) {
	m.getCalls++
	out := map[string]string{}
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *mockStore) SetKnown(ctx context.Context, storeOpen, whatsappPhone string) error {
	if m.setError != nil {
		return m.setError
	}
	m.values[KeyStoreOpen] = storeOpen
	m.values[KeyWhatsappPhone] = whatsappPhone
	return nil
}

func newTestService(t *testing.T, store Store) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(store, NewCache(client, time.Minute), slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestUpdateThenGetAllReflectsKnownKeys(t *testing.T) {
	store := newMockStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, "true", "+1555000111"))

	values, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "true", values[KeyStoreOpen])
	assert.Equal(t, "+1555000111", values[KeyWhatsappPhone])
}

func TestGetAllServesSecondReadFromCache(t *testing.T) {
	store := newMockStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	_, err := svc.GetAll(ctx)
	require.NoError(t, err)
	_, err = svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.getCalls)
}

func TestUpdateDropsCachedMap(t *testing.T) {
	store := newMockStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	_, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Update(ctx, "true", "+1555"))

	values, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "true", values[KeyStoreOpen])
	assert.Equal(t, 2, store.getCalls, "update must invalidate the cache")
}

func TestUpdatePropagatesStoreFailure(t *testing.T) {
	store := newMockStore()
	store.setError = errors.New("connection refused")
	svc := newTestService(t, store)

	assert.Error(t, svc.Update(context.Background(), "true", "+1555"))
}

func TestGetAllWorksWithoutRedis(t *testing.T) {
	store := newMockStore()
	svc := NewService(store, NewCache(nil, time.Minute), slog.New(slog.NewTextHandler(os.Stderr, nil)))

	values, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "false", values[KeyStoreOpen])
}
