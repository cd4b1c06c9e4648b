package repository

import (
	"context"

	"github.com/google/uuid"

	"gallery-backend/internal/domains/collection/model"
)

// RepositoryInterface defines collection persistence operations
type RepositoryInterface interface {
	Create(ctx context.Context, c *model.Collection) (*model.Collection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Collection, error)
	GetAll(ctx context.Context, filter model.CollectionFilter) ([]model.Collection, int64, error)
	Update(ctx context.Context, id uuid.UUID, c *model.Collection) (*model.Collection, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
