package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nahora-delivery/nahora/internal/media"
	"github.com/nahora-delivery/nahora/internal/shared"
)

// Repository defines persistence operations for the catalog.
type Repository interface {
	List(ctx context.Context, onlyAvailable bool) ([]Product, error)
	Insert(ctx context.Context, p Product) error
	Update(ctx context.Context, p Product) error
	GetImageURL(ctx context.Context, id int64) (*string, error)
	Delete(ctx context.Context, id int64) error
}

// CleanupQueue hands asset removal off to the background worker.
type CleanupQueue interface {
	Enqueue(ctx context.Context, locator string) error
}

// Service wraps catalog business rules.
type Service struct {
	repo    Repository
	storage media.Storage
	queue   CleanupQueue
	logger  *slog.Logger
}

// NewService constructs a catalog service. queue may be nil, in which
// case asset deletion is attempted inline.
func NewService(repo Repository, storage media.Storage, queue CleanupQueue, logger *slog.Logger) *Service {
	return &Service{repo: repo, storage: storage, queue: queue, logger: logger}
}

// List returns the catalog, restricted to available products when asked.
func (s *Service) List(ctx context.Context, onlyAvailable bool) ([]Product, error) {
	return s.repo.List(ctx, onlyAvailable)
}

// Save upserts a product. When an upload is present it is stored first
// and its locator replaces the submitted image URL; a storage success
// followed by a database failure therefore orphans the asset.
func (s *Service) Save(ctx context.Context, in SaveProductInput, upload *media.Upload) error {
	price, err := decimal.NewFromString(strings.TrimSpace(in.PriceText))
	if err != nil {
		return fmt.Errorf("%w: preco %q", shared.ErrValidation, in.PriceText)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: preco must not be negative", shared.ErrValidation)
	}

	imageURL := in.ImageURL
	if upload != nil {
		locator, err := s.storage.Store(ctx, *upload)
		if err != nil {
			return fmt.Errorf("store image: %w", err)
		}
		imageURL = locator
	}

	p := Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Category:    in.Category,
		Available:   in.Available,
	}
	if imageURL != "" {
		p.ImageURL = &imageURL
	}

	if in.ID != nil {
		p.ID = *in.ID
		return s.repo.Update(ctx, p)
	}
	return s.repo.Insert(ctx, p)
}

// Delete removes a product row. When its image locator belongs to the
// active backend the asset removal is queued (or attempted inline);
// failures there are logged and never block the row delete. Deleting an
// absent id succeeds silently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	locator, err := s.repo.GetImageURL(ctx, id)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if err == nil && locator != nil && *locator != "" && s.storage.Owns(*locator) {
		s.removeAsset(ctx, *locator)
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) removeAsset(ctx context.Context, locator string) {
	if s.queue != nil {
		err := s.queue.Enqueue(ctx, locator)
		if err == nil {
			return
		}
		s.logger.Warn("enqueue image cleanup", slog.String("locator", locator), slog.Any("error", err))
	}
	if err := s.storage.Delete(ctx, locator); err != nil {
		s.logger.Warn("delete image asset", slog.String("locator", locator), slog.Any("error", err))
	}
}
