package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/nahora-delivery/nahora/internal/shared"
)

// LoginService defines the credential check used by the handler.
type LoginService interface {
	Login(ctx context.Context, username, password string) (bool, error)
}

// Handler wires the admin login endpoint.
type Handler struct {
	logger    *slog.Logger
	service   LoginService
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service LoginService) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

type loginRequest struct {
	Username string `json:"usuario" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// MountRoutes registers the login route under /api, rate limited by IP.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(10, time.Minute))
		r.Post("/admin/login", h.login)
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("admin login", slog.Any("error", err))
		shared.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		// Bad credentials still answer 200; callers inspect `success`.
		shared.JSON(w, http.StatusOK, map[string]any{"success": false, "error": "Credenciais inválidas"})
		return
	}
	shared.JSON(w, http.StatusOK, map[string]any{"success": true})
}
