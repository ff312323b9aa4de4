package settings

import (
	"context"
	"log/slog"
)

// Store defines persistence operations for the config table.
type Store interface {
	GetAll(ctx context.Context) (map[string]string, error)
	SetKnown(ctx context.Context, storeOpen, whatsappPhone string) error
}

// Service reads and writes storefront settings through the cache.
type Service struct {
	store  Store
	cache  *Cache
	logger *slog.Logger
}

// NewService constructs a settings service. cache may be nil.
func NewService(store Store, cache *Cache, logger *slog.Logger) *Service {
	return &Service{store: store, cache: cache, logger: logger}
}

// GetAll returns the full settings map. Cache failures only cost the
// round trip to Postgres, never the request.
func (s *Service) GetAll(ctx context.Context) (map[string]string, error) {
	values, hit, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("settings cache read", slog.Any("error", err))
	}
	if hit {
		return values, nil
	}

	values, err = s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, values); err != nil {
		s.logger.Warn("settings cache write", slog.Any("error", err))
	}
	return values, nil
}

// Update writes the two recognised keys and drops the cached map.
func (s *Service) Update(ctx context.Context, storeOpen, whatsappPhone string) error {
	if err := s.store.SetKnown(ctx, storeOpen, whatsappPhone); err != nil {
		return err
	}
	if err := s.cache.Drop(ctx); err != nil {
		s.logger.Warn("settings cache drop", slog.Any("error", err))
	}
	return nil
}
