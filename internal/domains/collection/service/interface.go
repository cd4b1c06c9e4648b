package service

import (
	"context"

	"github.com/google/uuid"

	"gallery-backend/internal/domains/collection/model"
)

// ServiceInterface defines collection business operations
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateCollectionRequest) (*model.Collection, error)
	BulkCreate(ctx context.Context, req *model.BulkCreateRequest) (*model.BulkCreateResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Collection, error)
	GetAll(ctx context.Context, filter model.CollectionFilter) ([]model.Collection, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateCollectionRequest) (*model.Collection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
