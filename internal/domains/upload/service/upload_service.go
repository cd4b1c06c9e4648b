package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"gallery-backend/internal/domains/upload/model"
	"gallery-backend/pkg/logger"
)

var keySanitizer = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// allowedKeyPrefixes limits delete targets to keys this service writes.
var allowedKeyPrefixes = []string{"uploads/", "artists/"}

// uploadService implements upload.ServiceInterface
type uploadService struct {
	store         ObjectStore
	thumbs        Thumbnailer
	artists       ArtworkAppender
	maxSizeBytes  int64
	presignExpiry time.Duration
}

// NewUploadService creates a new upload service instance
func NewUploadService(store ObjectStore, thumbs Thumbnailer, artists ArtworkAppender, maxSizeBytes int64, presignExpiry time.Duration) ServiceInterface {
	return &uploadService{
		store:         store,
		thumbs:        thumbs,
		artists:       artists,
		maxSizeBytes:  maxSizeBytes,
		presignExpiry: presignExpiry,
	}
}

// validate runs before any storage call so rejected files never leave
// partial objects behind.
func (s *uploadService) validate(req *model.UploadRequest) (string, error) {
	ext, ok := model.AllowedContentTypes[req.ContentType]
	if !ok {
		return "", fmt.Errorf("%w: got %q", model.ErrUnsupportedContentType, req.ContentType)
	}

	if int64(len(req.Data)) > s.maxSizeBytes {
		return "", fmt.Errorf("%w: %d bytes, limit %d", model.ErrFileTooLarge, len(req.Data), s.maxSizeBytes)
	}
	if len(req.Data) == 0 {
		return "", fmt.Errorf("%w: empty file", model.ErrInvalidInput)
	}

	return ext, nil
}

// UploadImage stores a standalone image under uploads/.
func (s *uploadService) UploadImage(ctx context.Context, req *model.UploadRequest) (*model.UploadResult, error) {
	ext, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	key := "uploads/" + uuid.New().String() + ext
	url, err := s.store.Upload(ctx, key, req.Data, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return &model.UploadResult{
		URL:         url,
		Key:         key,
		Size:        int64(len(req.Data)),
		ContentType: req.ContentType,
	}, nil
}

// UploadArtistArtwork stores an image under the artist's prefix, renders a
// thumbnail next to it and appends the URL to the artist's artwork list.
// A failed thumbnail never fails the upload.
func (s *uploadService) UploadArtistArtwork(ctx context.Context, slug string, req *model.UploadRequest) (*model.ArtworkUploadResult, error) {
	ext, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	key := "artists/" + slug + "/" + id + ext

	url, err := s.store.Upload(ctx, key, req.Data, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store artwork: %w", err)
	}

	result := &model.ArtworkUploadResult{
		UploadResult: model.UploadResult{
			URL:         url,
			Key:         key,
			Size:        int64(len(req.Data)),
			ContentType: req.ContentType,
		},
		ArtistSlug: slug,
	}

	if thumb, err := s.thumbs.Thumbnail(req.Data); err == nil {
		thumbKey := "artists/" + slug + "/thumbs/" + id + ".jpg"
		if thumbURL, err := s.store.Upload(ctx, thumbKey, thumb, "image/jpeg"); err == nil {
			result.ThumbnailURL = thumbURL
		} else {
			logger.Warn("failed to store thumbnail", map[string]interface{}{
				"key":   thumbKey,
				"error": err.Error(),
			})
		}
	} else {
		logger.Warn("failed to render thumbnail", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	artist, err := s.artists.AppendArtwork(ctx, slug, url)
	if err != nil {
		// Roll the object back so storage does not accumulate orphans
		// for artists that do not exist.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.Warn("failed to roll back orphaned artwork object", map[string]interface{}{
				"key":   key,
				"error": delErr.Error(),
			})
		}
		return nil, err
	}

	result.Artworks = artist.Artworks

	return result, nil
}

// DeleteObject removes a stored object by key.
func (s *uploadService) DeleteObject(ctx context.Context, key string) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", model.ErrInvalidKey, key)
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

func validKey(key string) bool {
	if key == "" || strings.Contains(key, "..") {
		return false
	}
	for _, prefix := range allowedKeyPrefixes {
		if strings.HasPrefix(key, prefix) && len(key) > len(prefix) {
			return true
		}
	}
	return false
}

// Presign issues a time-limited PUT URL for direct browser uploads.
func (s *uploadService) Presign(ctx context.Context, req *model.PresignRequest) (*model.PresignResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidInput, err)
	}

	if req.FileType != "" {
		if _, ok := model.AllowedContentTypes[req.FileType]; !ok {
			return nil, fmt.Errorf("%w: got %q", model.ErrUnsupportedContentType, req.FileType)
		}
	}

	safeName := keySanitizer.ReplaceAllString(req.FileName, "-")
	key := fmt.Sprintf("uploads/direct/%d-%s", time.Now().Unix(), safeName)

	uploadURL, err := s.store.PresignedPutURL(ctx, key, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &model.PresignResult{
		UploadURL: uploadURL,
		FileURL:   s.store.PublicURL(key),
		Key:       key,
		ExpiresAt: time.Now().Add(s.presignExpiry),
	}, nil
}
