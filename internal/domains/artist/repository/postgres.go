package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gallery-backend/internal/domains/artist/model"
	"gallery-backend/pkg/cache"
)

// postgresRepository implements artist.RepositoryInterface
// Uses pgxpool for PostgreSQL and Redis for caching
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a new artist repository instance
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Cache key constants
const (
	artistSlugKeyPrefix = "artist:slug:"
	artistListKeyPrefix = "artists:list:"
	cacheTTL            = 15 * time.Minute
)

// Create inserts a new artist with generated ID and timestamps
func (r *postgresRepository) Create(ctx context.Context, a *model.Artist) (*model.Artist, error) {
	query := `
        INSERT INTO artists (name, slug, biography, artworks)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, slug, biography, artworks, created_at, updated_at
    `

	artworks := a.Artworks
	if artworks == nil {
		artworks = []string{}
	}

	var created model.Artist
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Slug,
		a.Biography,
		artworks,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Slug,
		&created.Biography,
		&created.Artworks,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return nil, model.ErrDuplicateSlug
			}
		}
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	r.invalidateListCache(ctx)

	return &created, nil
}

// GetBySlug retrieves an artist by URL slug with caching
func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Artist, error) {
	cacheKey := artistSlugKeyPrefix + slug

	var a model.Artist
	cached, err := r.cache.Get(ctx, cacheKey, &a)
	if err == nil && cached {
		return &a, nil
	}

	query := `
        SELECT id, name, slug, biography, artworks, created_at, updated_at
        FROM artists
        WHERE slug = $1
    `

	err = r.pool.QueryRow(ctx, query, slug).Scan(
		&a.ID,
		&a.Name,
		&a.Slug,
		&a.Biography,
		&a.Artworks,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist by slug: %w", err)
	}

	r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

// GetAll retrieves a paginated list with filtering and sorting
func (r *postgresRepository) GetAll(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, name, slug, biography, artworks, created_at, updated_at
        FROM artists
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	sortColumn := "name"
	if filter.OrderBy == "createdAt" {
		sortColumn = "created_at"
	}

	sortOrder := "ASC"
	if filter.OrderDirection == "desc" {
		sortOrder = "DESC"
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortColumn, sortOrder))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var artists []model.Artist
	for rows.Next() {
		var a model.Artist
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Slug,
			&a.Biography,
			&a.Artworks,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating artists: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM artists WHERE 1=1`
	countArgs := []interface{}{}

	if filter.Search != "" {
		countQuery += " AND name ILIKE $1"
		countArgs = append(countArgs, "%"+filter.Search+"%")
	}

	var total int64
	err = r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}

	return artists, total, nil
}

// UpdateBySlug writes all mutable fields of the artist addressed by slug.
// The slug column itself may change when a.Slug differs from the argument.
func (r *postgresRepository) UpdateBySlug(ctx context.Context, slug string, a *model.Artist) (*model.Artist, error) {
	query := `
        UPDATE artists
        SET
            name = $1,
            slug = $2,
            biography = $3,
            artworks = $4,
            updated_at = NOW()
        WHERE slug = $5
        RETURNING id, name, slug, biography, artworks, created_at, updated_at
    `

	artworks := a.Artworks
	if artworks == nil {
		artworks = []string{}
	}

	var updated model.Artist
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Slug,
		a.Biography,
		artworks,
		slug,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Slug,
		&updated.Biography,
		&updated.Artworks,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return nil, model.ErrDuplicateSlug
			}
		}

		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	// Invalidate both old and new slug entries
	r.invalidateArtistCache(ctx, slug)
	r.invalidateArtistCache(ctx, updated.Slug)
	r.invalidateListCache(ctx)

	return &updated, nil
}

// UpdateArtworks replaces the artwork list only
func (r *postgresRepository) UpdateArtworks(ctx context.Context, slug string, artworks []string) (*model.Artist, error) {
	query := `
        UPDATE artists
        SET artworks = $1, updated_at = NOW()
        WHERE slug = $2
        RETURNING id, name, slug, biography, artworks, created_at, updated_at
    `

	if artworks == nil {
		artworks = []string{}
	}

	var updated model.Artist
	err := r.pool.QueryRow(ctx, query, artworks, slug).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Slug,
		&updated.Biography,
		&updated.Artworks,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to update artist artworks: %w", err)
	}

	r.invalidateArtistCache(ctx, slug)
	r.invalidateListCache(ctx)

	return &updated, nil
}

// DeleteBySlug removes an artist row
func (r *postgresRepository) DeleteBySlug(ctx context.Context, slug string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM artists WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrArtistNotFound
	}

	r.invalidateArtistCache(ctx, slug)
	r.invalidateListCache(ctx)

	return nil
}

// Count returns the number of artists
func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM artists`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count artists: %w", err)
	}
	return count, nil
}

// TotalArtworks sums artwork array lengths across all artists
func (r *postgresRepository) TotalArtworks(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(COALESCE(array_length(artworks, 1), 0)), 0) FROM artists`

	var total int64
	err := r.pool.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count artworks: %w", err)
	}
	return total, nil
}

// Cache helper methods

func (r *postgresRepository) invalidateArtistCache(ctx context.Context, slug string) {
	r.cache.Delete(ctx, artistSlugKeyPrefix+slug)
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	r.cache.DeletePattern(ctx, artistListKeyPrefix+"*")
}
