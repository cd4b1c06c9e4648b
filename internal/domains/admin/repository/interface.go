package repository

import (
	"context"

	"gallery-backend/internal/domains/admin/model"
)

// RepositoryInterface defines admin account persistence operations
type RepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	Upsert(ctx context.Context, a *model.Admin) (*model.Admin, error)
}
