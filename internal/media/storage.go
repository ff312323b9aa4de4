package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Upload carries the bytes and original filename of a submitted image.
type Upload struct {
	Filename string
	Content  io.Reader
}

// Storage persists product images and resolves their public locators.
// A locator is an opaque URL or path; each backend only deletes locators
// it produced itself.
type Storage interface {
	Store(ctx context.Context, up Upload) (string, error)
	Delete(ctx context.Context, locator string) error
	Owns(locator string) bool
}

// Options collects the settings the concrete backends need.
type Options struct {
	UploadsDir string

	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// NewStorage selects the configured backend. The selector values match
// the MEDIA_BACKEND configuration input.
func NewStorage(backend string, opts Options, logger *slog.Logger) (Storage, error) {
	switch backend {
	case "local":
		return NewLocalStorage(opts.UploadsDir, logger)
	case "cloudinary":
		return NewCloudinaryStorage(opts.CloudName, opts.APIKey, opts.APISecret, opts.Folder)
	default:
		return nil, fmt.Errorf("unknown media backend %q", backend)
	}
}
