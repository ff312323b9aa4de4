package media

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage stores images on Cloudinary under a fixed folder,
// normalised to JPEG. Deletion has to recover the folder/public-id pair
// from the delivery URL; that parse is brittle and only works for
// locators this backend produced.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage builds a client from account credentials.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}
	return &CloudinaryStorage{cld: cld, folder: folder}, nil
}

// Store uploads the image and returns its delivery URL.
func (s *CloudinaryStorage) Store(ctx context.Context, up Upload) (string, error) {
	stem := strings.TrimSuffix(path.Base(up.Filename), path.Ext(up.Filename))
	publicID := fmt.Sprintf("img-%d-%s", time.Now().UnixMilli(), Slug(stem))

	resp, err := s.cld.Upload.Upload(ctx, up.Content, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: publicID,
		Format:   "jpg",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// Delete destroys the asset behind a delivery URL.
func (s *CloudinaryStorage) Delete(ctx context.Context, locator string) error {
	publicID, err := parsePublicID(locator)
	if err != nil {
		return err
	}
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", resp.Result)
	}
	return nil
}

// Owns reports whether the locator looks like a Cloudinary delivery URL.
func (s *CloudinaryStorage) Owns(locator string) bool {
	return strings.Contains(locator, "cloudinary.com")
}

// parsePublicID recovers "<folder>/<public-id>" from a delivery URL of
// the form .../<folder>/<public-id>.<ext>.
func parsePublicID(locator string) (string, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return "", fmt.Errorf("parse locator %q: %w", locator, err)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 {
		return "", fmt.Errorf("locator %q has no folder segment", locator)
	}
	last := segments[len(segments)-1]
	folder := segments[len(segments)-2]
	publicID := strings.TrimSuffix(last, path.Ext(last))
	if publicID == "" {
		return "", fmt.Errorf("locator %q has no public id", locator)
	}
	return folder + "/" + publicID, nil
}
