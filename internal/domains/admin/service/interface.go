package service

import (
	"context"

	"gallery-backend/internal/domains/admin/model"
)

// ArtistStats is the slice of the artist repository the dashboard needs.
type ArtistStats interface {
	Count(ctx context.Context) (int64, error)
	TotalArtworks(ctx context.Context) (int64, error)
}

// CollectionStats is the slice of the collection repository the dashboard needs.
type CollectionStats interface {
	Count(ctx context.Context) (int64, error)
}

// StorageUsage reports total bytes stored in the object bucket.
type StorageUsage interface {
	TotalUsage(ctx context.Context) (int64, error)
}

// AuthServiceInterface defines admin authentication operations
type AuthServiceInterface interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error)
}

// DashboardServiceInterface defines dashboard aggregation operations
type DashboardServiceInterface interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
}
