package service

import (
	"context"
	"fmt"
	"strings"

	"gallery-backend/internal/domains/artist/model"
	"gallery-backend/internal/domains/artist/repository"
	"gallery-backend/pkg/logger"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// artistService implements artist.ServiceInterface
type artistService struct {
	repo  repository.RepositoryInterface
	store ObjectStore
}

// NewArtistService creates a new artist service instance.
// The object store is used for best-effort cleanup only; row updates
// never roll back because a storage delete failed.
func NewArtistService(repo repository.RepositoryInterface, store ObjectStore) ServiceInterface {
	return &artistService{
		repo:  repo,
		store: store,
	}
}

func (s *artistService) Create(ctx context.Context, req *model.CreateArtistRequest) (*model.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidInput, err)
	}

	newArtist := &model.Artist{
		Name:      strings.TrimSpace(req.Name),
		Slug:      req.Slug,
		Biography: req.Biography,
		Artworks:  req.Artworks,
	}

	return s.repo.Create(ctx, newArtist)
}

func (s *artistService) GetBySlug(ctx context.Context, slug string) (*model.Artist, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, model.ErrArtistNotFound
	}

	return s.repo.GetBySlug(ctx, slug)
}

func (s *artistService) GetAll(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, int64, error) {
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

func (s *artistService) Update(ctx context.Context, slug string, req *model.UpdateArtistRequest) (*model.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidInput, err)
	}

	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)
	existing.Name = strings.TrimSpace(existing.Name)
	if existing.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", model.ErrInvalidInput)
	}

	return s.repo.UpdateBySlug(ctx, slug, existing)
}

// Delete removes the artist row only. Stored objects stay; there is no
// storage cascade on entity deletes.
func (s *artistService) Delete(ctx context.Context, slug string) error {
	return s.repo.DeleteBySlug(ctx, slug)
}

// RemoveArtwork splices the artwork at index out of the list.
func (s *artistService) RemoveArtwork(ctx context.Context, slug string, index int) (*model.RemoveArtworkResult, error) {
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(existing.Artworks) {
		return nil, fmt.Errorf("%w: index %d, artist has %d artworks",
			model.ErrArtworkIndexOutOfRange, index, len(existing.Artworks))
	}

	removedURL := existing.Artworks[index]
	artworks := make([]string, 0, len(existing.Artworks)-1)
	artworks = append(artworks, existing.Artworks[:index]...)
	artworks = append(artworks, existing.Artworks[index+1:]...)

	updated, err := s.repo.UpdateArtworks(ctx, slug, artworks)
	if err != nil {
		return nil, err
	}

	result := &model.RemoveArtworkResult{
		Artist:     updated.ToResponse(),
		RemovedURL: removedURL,
	}

	if key, err := s.store.KeyFromURL(removedURL); err == nil {
		if err := s.store.Delete(ctx, key); err != nil {
			logger.Warn("failed to delete removed artwork object", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
			result.StorageWarning = fmt.Sprintf("artwork removed but stored object %s could not be deleted", key)
		}
	}

	return result, nil
}

// AppendArtwork adds an uploaded image URL to the end of the artwork list.
func (s *artistService) AppendArtwork(ctx context.Context, slug string, url string) (*model.Artist, error) {
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateArtworks(ctx, slug, append(existing.Artworks, url))
}
