package settings

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nahora-delivery/nahora/internal/shared"
)

// SettingsService defines the contract used by the handler.
type SettingsService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, storeOpen, whatsappPhone string) error
}

// Handler wires HTTP endpoints for storefront settings.
type Handler struct {
	logger  *slog.Logger
	service SettingsService
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service SettingsService) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers settings routes under /api.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/config", h.getAll)
	r.Put("/config", h.update)
}

func (h *Handler) getAll(w http.ResponseWriter, r *http.Request) {
	values, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("read settings", slog.Any("error", err))
		shared.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	shared.JSON(w, http.StatusOK, values)
}

type updateRequest struct {
	StoreOpen     string `json:"loja_aberta"`
	WhatsappPhone string `json:"telefone_whatsapp"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if err := h.service.Update(r.Context(), req.StoreOpen, req.WhatsappPhone); err != nil {
		h.logger.Error("update settings", slog.Any("error", err))
		shared.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	shared.Success(w)
}
