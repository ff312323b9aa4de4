package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/nahora-delivery/nahora/internal/shared"
)

// OrderService defines the intake contract used by the handler.
type OrderService interface {
	Submit(ctx context.Context, req SubmitOrderRequest) (int64, error)
	ListForAdmin(ctx context.Context) ([]AdminOrderView, error)
}

// Handler wires HTTP endpoints for order intake.
type Handler struct {
	logger    *slog.Logger
	service   OrderService
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service OrderService) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers order routes under /api.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/pedidos", h.submit)
	r.Get("/admin/pedidos", h.listForAdmin)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	orderID, err := h.service.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, shared.ErrValidation) {
			shared.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("submit order", slog.Any("error", err))
		shared.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	shared.JSON(w, http.StatusOK, map[string]any{"success": true, "pedidoId": orderID})
}

func (h *Handler) listForAdmin(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListForAdmin(r.Context())
	if err != nil {
		h.logger.Error("list orders", slog.Any("error", err))
		shared.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	shared.JSON(w, http.StatusOK, views)
}
