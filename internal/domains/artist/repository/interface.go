package repository

import (
	"context"

	"gallery-backend/internal/domains/artist/model"
)

// RepositoryInterface defines artist persistence operations
type RepositoryInterface interface {
	Create(ctx context.Context, a *model.Artist) (*model.Artist, error)
	GetBySlug(ctx context.Context, slug string) (*model.Artist, error)
	GetAll(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, int64, error)
	UpdateBySlug(ctx context.Context, slug string, a *model.Artist) (*model.Artist, error)
	UpdateArtworks(ctx context.Context, slug string, artworks []string) (*model.Artist, error)
	DeleteBySlug(ctx context.Context, slug string) error
	Count(ctx context.Context) (int64, error)
	TotalArtworks(ctx context.Context) (int64, error)
}
