package health

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probe(t *testing.T, h *Handler) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Probe(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func newTestHandler(db, cache Pinger) *Handler {
	return NewHandler(slog.New(slog.NewTextHandler(os.Stderr, nil)), db, cache)
}

func okPinger() Pinger {
	return pingFunc(func(ctx context.Context) error { return nil })
}

func failPinger(msg string) Pinger {
	return pingFunc(func(ctx context.Context) error { return errors.New(msg) })
}

func TestProbeHealthy(t *testing.T) {
	rec, payload := probe(t, newTestHandler(okPinger(), okPinger()))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", payload["status"])
	assert.NotEmpty(t, payload["message"])
}

func TestProbeDatabaseDown(t *testing.T) {
	rec, payload := probe(t, newTestHandler(failPinger("refused"), okPinger()))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, payload["error"])
}

func TestProbeCacheDownOnlyDegradesMessage(t *testing.T) {
	rec, payload := probe(t, newTestHandler(okPinger(), failPinger("refused")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", payload["status"])
	assert.Contains(t, payload["message"], "cache")
}

func TestProbeWithoutCache(t *testing.T) {
	rec, payload := probe(t, newTestHandler(okPinger(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", payload["status"])
}
