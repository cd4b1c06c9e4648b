package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gallery-backend/internal/domains/admin/model"
)

// postgresRepository implements admin.RepositoryInterface.
// Admin lookups happen once per login, so no cache layer here.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new admin repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

// GetByEmail retrieves an admin account by email (case-insensitive)
func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	query := `
        SELECT id, email, name, password, created_at, updated_at
        FROM admins
        WHERE LOWER(email) = LOWER($1)
    `

	var a model.Admin
	err := r.pool.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(
		&a.ID,
		&a.Email,
		&a.Name,
		&a.Password,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return &a, nil
}

// Upsert inserts or updates the account identified by email.
// Used by the seed command.
func (r *postgresRepository) Upsert(ctx context.Context, a *model.Admin) (*model.Admin, error) {
	query := `
        INSERT INTO admins (email, name, password)
        VALUES ($1, $2, $3)
        ON CONFLICT (email) DO UPDATE
        SET name = EXCLUDED.name, password = EXCLUDED.password, updated_at = NOW()
        RETURNING id, email, name, password, created_at, updated_at
    `

	var saved model.Admin
	err := r.pool.QueryRow(ctx, query, a.Email, a.Name, a.Password).Scan(
		&saved.ID,
		&saved.Email,
		&saved.Name,
		&saved.Password,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert admin: %w", err)
	}

	return &saved, nil
}
