package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gallery-backend/internal/domains/collection/model"
	"gallery-backend/internal/domains/collection/repository"
	"gallery-backend/internal/shared/utils"
	"gallery-backend/pkg/logger"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// collectionService implements collection.ServiceInterface
type collectionService struct {
	repo repository.RepositoryInterface
}

// NewCollectionService creates a new collection service instance
func NewCollectionService(repo repository.RepositoryInterface) ServiceInterface {
	return &collectionService{
		repo: repo,
	}
}

func (s *collectionService) Create(ctx context.Context, req *model.CreateCollectionRequest) (*model.Collection, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidInput, err)
	}

	entry := &model.Collection{
		Title:      strings.TrimSpace(req.Title),
		ArtistName: strings.TrimSpace(req.ArtistName),
		ImageURL:   req.ImageURL,
	}

	return s.repo.Create(ctx, entry)
}

// BulkCreate imports a batch of entries. Title and artist name fall back to
// values inferred from the filename. Failed items do not abort the batch.
func (s *collectionService) BulkCreate(ctx context.Context, req *model.BulkCreateRequest) (*model.BulkCreateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidInput, err)
	}

	result := &model.BulkCreateResult{
		Created: []model.Collection{},
		Errors:  []model.BulkCreateError{},
	}

	for i, item := range req.Items {
		title := strings.TrimSpace(item.Title)
		artistName := strings.TrimSpace(item.ArtistName)

		if title == "" || artistName == "" {
			meta := utils.ParseArtworkFilename(item.FileName)
			if title == "" {
				title = meta.Title
			}
			if artistName == "" {
				artistName = meta.ArtistName
			}
		}

		if item.ImageURL == "" {
			result.Errors = append(result.Errors, model.BulkCreateError{
				Index:   i,
				Message: "imageUrl is required",
			})
			continue
		}
		if title == "" {
			result.Errors = append(result.Errors, model.BulkCreateError{
				Index:   i,
				Message: "title could not be determined from fileName",
			})
			continue
		}

		created, err := s.repo.Create(ctx, &model.Collection{
			Title:      title,
			ArtistName: artistName,
			ImageURL:   item.ImageURL,
		})
		if err != nil {
			logger.Warn("bulk import item failed", map[string]interface{}{
				"index": i,
				"error": err.Error(),
			})
			result.Errors = append(result.Errors, model.BulkCreateError{
				Index:   i,
				Message: err.Error(),
			})
			continue
		}

		result.Created = append(result.Created, *created)
	}

	return result, nil
}

func (s *collectionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Collection, error) {
	if id == uuid.Nil {
		return nil, model.ErrCollectionNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func (s *collectionService) GetAll(ctx context.Context, filter model.CollectionFilter) ([]model.Collection, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	return s.repo.GetAll(ctx, filter)
}

func (s *collectionService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCollectionRequest) (*model.Collection, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidInput, err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)

	return s.repo.Update(ctx, id, existing)
}

// Delete removes the entry row only. Stored objects stay; there is no
// storage cascade on entity deletes.
func (s *collectionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
