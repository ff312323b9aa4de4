package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// publicPrefix is where the router serves locally stored uploads from.
const publicPrefix = "/uploads/"

// LocalStorage writes uploads to a directory served as static files.
type LocalStorage struct {
	dir    string
	logger *slog.Logger
}

// NewLocalStorage ensures the upload directory exists.
func NewLocalStorage(dir string, logger *slog.Logger) (*LocalStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("local storage: upload directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir, logger: logger}, nil
}

// Store writes the upload under a generated unique name, keeping the
// original extension, and returns the public path.
func (s *LocalStorage) Store(ctx context.Context, up Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	name := fmt.Sprintf("img-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, up.Content); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return publicPrefix + name, nil
}

// Delete removes a previously stored file. Missing files are not an error.
func (s *LocalStorage) Delete(ctx context.Context, locator string) error {
	if !s.Owns(locator) {
		return fmt.Errorf("local storage: foreign locator %q", locator)
	}
	name := path.Base(locator)
	if name == "." || name == "/" {
		return fmt.Errorf("local storage: malformed locator %q", locator)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("upload already absent", slog.String("locator", locator))
			return nil
		}
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// Owns reports whether the locator points into the local uploads path.
func (s *LocalStorage) Owns(locator string) bool {
	return strings.HasPrefix(locator, publicPrefix)
}
