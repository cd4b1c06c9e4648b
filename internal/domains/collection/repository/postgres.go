package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gallery-backend/internal/domains/collection/model"
	"gallery-backend/pkg/cache"
)

// postgresRepository implements collection.RepositoryInterface
// Uses pgxpool for PostgreSQL and Redis for caching
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a new collection repository instance
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Cache key constants
const (
	collectionCacheKeyPrefix = "collection:"
	collectionListKeyPrefix  = "collections:list:"
	cacheTTL                 = 15 * time.Minute
)

// Create inserts a new collection entry
func (r *postgresRepository) Create(ctx context.Context, c *model.Collection) (*model.Collection, error) {
	query := `
        INSERT INTO collections (title, artist_name, image_url)
        VALUES ($1, $2, $3)
        RETURNING id, title, artist_name, image_url, created_at, updated_at
    `

	var created model.Collection
	err := r.pool.QueryRow(
		ctx,
		query,
		c.Title,
		c.ArtistName,
		c.ImageURL,
	).Scan(
		&created.ID,
		&created.Title,
		&created.ArtistName,
		&created.ImageURL,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	r.invalidateListCache(ctx)

	return &created, nil
}

// GetByID retrieves a collection by UUID with caching
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Collection, error) {
	cacheKey := collectionCacheKeyPrefix + id.String()

	var c model.Collection
	cached, err := r.cache.Get(ctx, cacheKey, &c)
	if err == nil && cached {
		return &c, nil
	}

	query := `
        SELECT id, title, artist_name, image_url, created_at, updated_at
        FROM collections
        WHERE id = $1
    `

	err = r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&c.ArtistName,
		&c.ImageURL,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get collection by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, c, cacheTTL)

	return &c, nil
}

// GetAll retrieves a paginated list with search, filtering and sorting.
// Query matches title OR artist name; ArtistName additionally narrows the
// result to one artist (both conditions combine with AND).
func (r *postgresRepository) GetAll(ctx context.Context, filter model.CollectionFilter) ([]model.Collection, int64, error) {
	whereClause, args := buildWhere(filter)

	sortColumn := "created_at"
	switch filter.OrderBy {
	case "title":
		sortColumn = "title"
	case "artistName", "artist_name":
		sortColumn = "artist_name"
	}

	sortOrder := "DESC"
	if filter.OrderDirection == "asc" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
        SELECT id, title, artist_name, image_url, created_at, updated_at
        FROM collections
        %s
        ORDER BY %s %s
        LIMIT $%d OFFSET $%d
    `, whereClause, sortColumn, sortOrder, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	var collections []model.Collection
	for rows.Next() {
		var c model.Collection
		err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.ArtistName,
			&c.ImageURL,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating collections: %w", err)
	}

	countQuery := "SELECT COUNT(*) FROM collections " + whereClause

	var total int64
	err = r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count collections: %w", err)
	}

	return collections, total, nil
}

func buildWhere(filter model.CollectionFilter) (string, []interface{}) {
	var conditions []string
	args := []interface{}{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR artist_name ILIKE $%d)", len(args), len(args)))
	}

	if filter.ArtistName != "" {
		args = append(args, "%"+filter.ArtistName+"%")
		conditions = append(conditions, fmt.Sprintf("artist_name ILIKE $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// Update writes all mutable fields of the collection
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, c *model.Collection) (*model.Collection, error) {
	query := `
        UPDATE collections
        SET
            title = $1,
            artist_name = $2,
            image_url = $3,
            updated_at = NOW()
        WHERE id = $4
        RETURNING id, title, artist_name, image_url, created_at, updated_at
    `

	var updated model.Collection
	err := r.pool.QueryRow(
		ctx,
		query,
		c.Title,
		c.ArtistName,
		c.ImageURL,
		id,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.ArtistName,
		&updated.ImageURL,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	r.cache.Delete(ctx, collectionCacheKeyPrefix+id.String())
	r.invalidateListCache(ctx)

	return &updated, nil
}

// Delete removes a collection row
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrCollectionNotFound
	}

	r.cache.Delete(ctx, collectionCacheKeyPrefix+id.String())
	r.invalidateListCache(ctx)

	return nil
}

// Count returns the number of collection entries
func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM collections`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count collections: %w", err)
	}
	return count, nil
}

// Cache helper methods

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	r.cache.DeletePattern(ctx, collectionListKeyPrefix+"*")
}
