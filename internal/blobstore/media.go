package blobstore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/edukite/face-auth/internal/config"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/models"
)

// MediaStore stores face image payloads in an HTTP media service. The
// service exposes a plain object API:
//
//	POST   {base}/objects/{ref}  - store raw body, returns {"url": ...}
//	GET    {base}/objects/{ref}  - raw payload bytes
//	DELETE {base}/objects/{ref}  - remove; 404 is treated as success
//
// Requests authenticate with an X-Api-Key header.
type MediaStore struct {
	client *resty.Client
	logger *logger.Logger
}

type mediaUploadResponse struct {
	URL string `json:"url"`
}

// NewMediaStore builds a media-service-backed [BlobStore] from the blob
// configuration.
func NewMediaStore(cfg config.Media, log *logger.Logger) *MediaStore {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("X-Api-Key", cfg.APIKey)

	log.Debug().Str("base_url", cfg.BaseURL).Msg("creating media blob store")
	return &MediaStore{
		client: client,
		logger: log,
	}
}

// Upload stores data under "faces/<identity id>" and returns the locator
// reported by the media service.
func (m *MediaStore) Upload(ctx context.Context, identityID string, data []byte) (models.BlobRef, error) {
	ref := "faces/" + identityID

	var result mediaUploadResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		SetResult(&result).
		Post("/objects/" + ref)
	if err != nil {
		m.logger.Err(err).Str("func", "*MediaStore.Upload").Str("ref", ref).Msg("error uploading object")
		return models.BlobRef{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if resp.IsError() {
		return models.BlobRef{}, fmt.Errorf("%w: media service returned %s", ErrUploadFailed, resp.Status())
	}

	return models.BlobRef{
		ObjectRef: ref,
		URL:       result.URL,
	}, nil
}

// Download retrieves the payload stored under objectRef.
func (m *MediaStore) Download(ctx context.Context, objectRef string) ([]byte, error) {
	resp, err := m.client.R().
		SetContext(ctx).
		Get("/objects/" + objectRef)
	if err != nil {
		m.logger.Err(err).Str("func", "*MediaStore.Download").Str("ref", objectRef).Msg("error downloading object")
		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrBlobNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: media service returned %s", ErrDownloadFailed, resp.Status())
	}

	return resp.Body(), nil
}

// Delete removes the object stored under objectRef. A 404 from the media
// service means the object is already gone and is not an error.
func (m *MediaStore) Delete(ctx context.Context, objectRef string) error {
	resp, err := m.client.R().
		SetContext(ctx).
		Delete("/objects/" + objectRef)
	if err != nil {
		m.logger.Err(err).Str("func", "*MediaStore.Delete").Str("ref", objectRef).Msg("error deleting object")
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	if resp.IsError() && resp.StatusCode() != http.StatusNotFound {
		return fmt.Errorf("%w: media service returned %s", ErrDeleteFailed, resp.Status())
	}
	return nil
}
