package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	username string
	password string
	err      error
}

func (s *stubRepository) Exists(ctx context.Context, username, password string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return username == s.username && password == s.password, nil
}

func newTestRouter(repo Repository) http.Handler {
	h := NewHandler(slog.New(slog.NewTextHandler(os.Stderr, nil)), NewService(repo))
	r := chi.NewRouter()
	h.MountRoutes(r)
	return r
}

func postLogin(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	router := newTestRouter(&stubRepository{username: "admin", password: "segredo"})

	rec := postLogin(t, router, `{"usuario":"admin","senha":"segredo"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["success"])
}

func TestLoginWrongPasswordAnswers200WithSuccessFalse(t *testing.T) {
	router := newTestRouter(&stubRepository{username: "admin", password: "segredo"})

	rec := postLogin(t, router, `{"usuario":"admin","senha":"wrongpass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Credenciais inválidas", payload["error"])
}

func TestLoginConnectivityFailureAnswers500(t *testing.T) {
	router := newTestRouter(&stubRepository{err: errors.New("connection refused")})

	rec := postLogin(t, router, `{"usuario":"admin","senha":"segredo"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestLoginRejectsMissingFields(t *testing.T) {
	router := newTestRouter(&stubRepository{username: "admin", password: "segredo"})

	rec := postLogin(t, router, `{"usuario":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(&stubRepository{})

	rec := postLogin(t, router, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
