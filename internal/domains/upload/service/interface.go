package service

import (
	"context"
	"time"

	artistmodel "gallery-backend/internal/domains/artist/model"
	"gallery-backend/internal/domains/upload/model"
)

// ObjectStore is the slice of the storage client the upload service needs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	PresignedPutURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	PublicURL(key string) string
}

// Thumbnailer produces a small preview rendition of an image.
type Thumbnailer interface {
	Thumbnail(data []byte) ([]byte, error)
}

// ArtworkAppender adds an uploaded image URL to an artist's artwork list.
type ArtworkAppender interface {
	AppendArtwork(ctx context.Context, slug string, url string) (*artistmodel.Artist, error)
}

// ServiceInterface defines upload business operations
type ServiceInterface interface {
	UploadImage(ctx context.Context, req *model.UploadRequest) (*model.UploadResult, error)
	UploadArtistArtwork(ctx context.Context, slug string, req *model.UploadRequest) (*model.ArtworkUploadResult, error)
	DeleteObject(ctx context.Context, key string) error
	Presign(ctx context.Context, req *model.PresignRequest) (*model.PresignResult, error)
}
