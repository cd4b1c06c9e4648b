package service

import (
	"context"

	"gallery-backend/internal/domains/artist/model"
)

// ObjectStore is the slice of the storage client the artist service needs
// for best-effort cleanup of removed artwork objects.
type ObjectStore interface {
	KeyFromURL(url string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ServiceInterface defines artist business operations
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateArtistRequest) (*model.Artist, error)
	GetBySlug(ctx context.Context, slug string) (*model.Artist, error)
	GetAll(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, int64, error)
	Update(ctx context.Context, slug string, req *model.UpdateArtistRequest) (*model.Artist, error)
	Delete(ctx context.Context, slug string) error
	RemoveArtwork(ctx context.Context, slug string, index int) (*model.RemoveArtworkResult, error)
	AppendArtwork(ctx context.Context, slug string, url string) (*model.Artist, error)
}
