package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nahora-delivery/nahora/internal/auth"
	"github.com/nahora-delivery/nahora/internal/catalog"
	"github.com/nahora-delivery/nahora/internal/health"
	"github.com/nahora-delivery/nahora/internal/orders"
	"github.com/nahora-delivery/nahora/internal/settings"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	CatalogHandler  *catalog.Handler
	OrdersHandler   *orders.Handler
	SettingsHandler *settings.Handler
	AuthHandler     *auth.Handler
	HealthHandler   *health.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/health", params.HealthHandler.Probe)

	r.Route("/api", func(api chi.Router) {
		params.CatalogHandler.MountRoutes(api)
		params.OrdersHandler.MountRoutes(api)
		params.SettingsHandler.MountRoutes(api)
		params.AuthHandler.MountRoutes(api)
	})

	// Locally stored product images, then the storefront itself.
	if params.Config.UploadsDir != "" {
		uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(params.Config.UploadsDir)))
		r.Handle("/uploads/*", uploads)
	}
	if params.Config.PublicDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(params.Config.PublicDir)))
	}

	return r
}
