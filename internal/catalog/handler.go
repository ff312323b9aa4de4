package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nahora-delivery/nahora/internal/media"
	"github.com/nahora-delivery/nahora/internal/shared"
)

// CatalogService defines the catalog contract used by the handler.
type CatalogService interface {
	List(ctx context.Context, onlyAvailable bool) ([]Product, error)
	Save(ctx context.Context, in SaveProductInput, upload *media.Upload) error
	Delete(ctx context.Context, id int64) error
}

// Handler wires HTTP endpoints for the product catalog.
type Handler struct {
	logger    *slog.Logger
	service   CatalogService
	maxUpload int64
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service CatalogService, maxUpload int64) *Handler {
	return &Handler{logger: logger, service: service, maxUpload: maxUpload}
}

// MountRoutes registers catalog routes under /api.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/produtos", h.listAvailable)
	r.Get("/admin/produtos", h.listAll)
	r.Post("/admin/produtos", h.save)
	r.Delete("/admin/produtos/{id}", h.remove)
}

func (h *Handler) listAvailable(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, onlyAvailable bool) {
	products, err := h.service.List(r.Context(), onlyAvailable)
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		shared.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	shared.JSON(w, http.StatusOK, products)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		shared.Error(w, http.StatusBadRequest, "envio inválido ou acima do limite de tamanho")
		return
	}

	in := SaveProductInput{
		Name:        r.FormValue("nome"),
		Description: r.FormValue("descricao"),
		PriceText:   r.FormValue("preco"),
		Category:    r.FormValue("categoria"),
		ImageURL:    r.FormValue("imagem_url"),
		Available:   r.FormValue("disponivel") == "true",
	}
	if raw := r.FormValue("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			shared.Error(w, http.StatusBadRequest, "id inválido")
			return
		}
		in.ID = &id
	}

	var upload *media.Upload
	file, header, err := r.FormFile("imagem")
	switch {
	case err == nil:
		defer file.Close()
		if ct := header.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
			shared.Error(w, http.StatusBadRequest, "apenas arquivos de imagem são aceitos")
			return
		}
		upload = &media.Upload{Filename: header.Filename, Content: file}
	case errors.Is(err, http.ErrMissingFile):
		// optional field
	default:
		shared.Error(w, http.StatusBadRequest, "campo imagem inválido")
		return
	}

	if err := h.service.Save(r.Context(), in, upload); err != nil {
		if errors.Is(err, shared.ErrValidation) {
			shared.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("save product", slog.Any("error", err))
		shared.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	shared.Success(w)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.Error(w, http.StatusBadRequest, "id inválido")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete product", slog.Any("error", err))
		shared.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	shared.Success(w)
}
