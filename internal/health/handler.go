package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/nahora-delivery/nahora/internal/shared"
)

const probeTimeout = 2 * time.Second

// Pinger is a connectivity probe against one backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RedisPinger adapts a go-redis client to the Pinger contract.
func RedisPinger(client *redis.Client) Pinger {
	return pingFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Handler answers the /health probe. The database is load bearing; the
// cache only degrades the reported message when unreachable.
type Handler struct {
	logger *slog.Logger
	db     Pinger
	cache  Pinger
}

// NewHandler constructs a Handler instance. cache may be nil.
func NewHandler(logger *slog.Logger, db Pinger, cache Pinger) *Handler {
	return &Handler{logger: logger, db: db, cache: cache}
}

// Probe pings the backing stores concurrently and reports status.
func (h *Handler) Probe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	var cacheErr error
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.db.Ping(ctx)
	})
	if h.cache != nil {
		g.Go(func() error {
			cacheErr = h.cache.Ping(ctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.logger.Error("database ping", slog.Any("error", err))
		shared.Error(w, http.StatusInternalServerError, "banco de dados indisponível")
		return
	}

	message := "Nahora Delivery API está funcionando!"
	if cacheErr != nil {
		h.logger.Warn("cache ping", slog.Any("error", cacheErr))
		message = "Nahora Delivery API está funcionando (cache indisponível)"
	}
	shared.JSON(w, http.StatusOK, map[string]string{"status": "OK", "message": message})
}
