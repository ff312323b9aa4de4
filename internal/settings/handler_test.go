package settings

import (
	"context"
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

type stubService struct {
	values  map[string]string
	updates [][2]string
}

func (s *stubService) GetAll(ctx context.Context) (map[string]string, error) {
	return s.values, nil
}

func (s *stubService) Update(ctx context.Context, storeOpen, whatsappPhone string) error {
	s.updates = append(s.updates, [2]string{storeOpen, whatsappPhone})
	return nil
}

func newHandlerRouter(service SettingsService) http.Handler {
	h := NewHandler(slog.New(slog.NewTextHandler(os.Stderr, nil)), service)
	r := chi.NewRouter()
	h.MountRoutes(r)
	return r
}

func TestGetConfigRendersMap(t *testing.T) {
	router := newHandlerRouter(&stubService{values: map[string]string{
		KeyStoreOpen:     "true",
		KeyWhatsappPhone: "+1555",
	}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"loja_aberta":"true","telefone_whatsapp":"+1555"}`, rec.Body.String())
}

func TestPutConfigUpdatesKnownKeys(t *testing.T) {
	service := &stubService{}
	router := newHandlerRouter(service)

	body := `{"loja_aberta":"false","telefone_whatsapp":"+1555000111"}`
	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, [][2]string{{"false", "+1555000111"}}, service.updates)
}

func TestPutConfigRejectsMalformedBody(t *testing.T) {
	service := &stubService{}
	router := newHandlerRouter(service)

	req := httptest.NewRequest(http.MethodPut, "/config", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.updates)
}
