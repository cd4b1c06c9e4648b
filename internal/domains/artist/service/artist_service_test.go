package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-backend/internal/domains/artist/model"
)

type fakeRepo struct {
	artists map[string]*model.Artist
}

func newFakeRepo(artists ...*model.Artist) *fakeRepo {
	r := &fakeRepo{artists: make(map[string]*model.Artist)}
	for _, a := range artists {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.artists[a.Slug] = a
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, a *model.Artist) (*model.Artist, error) {
	if _, ok := r.artists[a.Slug]; ok {
		return nil, model.ErrDuplicateSlug
	}
	a.ID = uuid.New()
	r.artists[a.Slug] = a
	return a, nil
}

func (r *fakeRepo) GetBySlug(_ context.Context, slug string) (*model.Artist, error) {
	a, ok := r.artists[slug]
	if !ok {
		return nil, model.ErrArtistNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) GetAll(_ context.Context, filter model.ArtistFilter) ([]model.Artist, int64, error) {
	var out []model.Artist
	for _, a := range r.artists {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) UpdateBySlug(_ context.Context, slug string, a *model.Artist) (*model.Artist, error) {
	if _, ok := r.artists[slug]; !ok {
		return nil, model.ErrArtistNotFound
	}
	if a.Slug != slug {
		if _, taken := r.artists[a.Slug]; taken {
			return nil, model.ErrDuplicateSlug
		}
		delete(r.artists, slug)
	}
	r.artists[a.Slug] = a
	return a, nil
}

func (r *fakeRepo) UpdateArtworks(_ context.Context, slug string, artworks []string) (*model.Artist, error) {
	a, ok := r.artists[slug]
	if !ok {
		return nil, model.ErrArtistNotFound
	}
	a.Artworks = artworks
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) DeleteBySlug(_ context.Context, slug string) error {
	if _, ok := r.artists[slug]; !ok {
		return model.ErrArtistNotFound
	}
	delete(r.artists, slug)
	return nil
}

func (r *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.artists)), nil
}

func (r *fakeRepo) TotalArtworks(_ context.Context) (int64, error) {
	var total int64
	for _, a := range r.artists {
		total += int64(len(a.Artworks))
	}
	return total, nil
}

type fakeStore struct {
	deleted    []string
	failDelete bool
}

func (s *fakeStore) KeyFromURL(url string) (string, error) {
	return "uploads/" + url, nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	if s.failDelete {
		return errors.New("connection refused")
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func TestCreateValidatesSlug(t *testing.T) {
	svc := NewArtistService(newFakeRepo(), &fakeStore{})

	_, err := svc.Create(context.Background(), &model.CreateArtistRequest{
		Name: "Pablo Picasso",
		Slug: "Pablo Picasso",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	created, err := svc.Create(context.Background(), &model.CreateArtistRequest{
		Name: "Pablo Picasso",
		Slug: "pablo-picasso",
	})
	require.NoError(t, err)
	assert.Equal(t, "pablo-picasso", created.Slug)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	repo := newFakeRepo(&model.Artist{Name: "Pablo Picasso", Slug: "pablo-picasso"})
	svc := NewArtistService(repo, &fakeStore{})

	_, err := svc.Create(context.Background(), &model.CreateArtistRequest{
		Name: "Someone Else",
		Slug: "pablo-picasso",
	})
	assert.ErrorIs(t, err, model.ErrDuplicateSlug)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	repo := newFakeRepo(&model.Artist{
		Name:      "Pablo Picasso",
		Slug:      "pablo-picasso",
		Biography: "Spanish painter",
		Artworks:  []string{"a.jpg", "b.jpg"},
	})
	svc := NewArtistService(repo, &fakeStore{})

	bio := "Cubist"
	updated, err := svc.Update(context.Background(), "pablo-picasso", &model.UpdateArtistRequest{
		Biography: &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cubist", updated.Biography)
	assert.Equal(t, "Pablo Picasso", updated.Name)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, updated.Artworks)
}

func TestUpdateUnknownSlugReturnsNotFound(t *testing.T) {
	svc := NewArtistService(newFakeRepo(), &fakeStore{})

	name := "Anyone"
	_, err := svc.Update(context.Background(), "missing", &model.UpdateArtistRequest{Name: &name})
	assert.ErrorIs(t, err, model.ErrArtistNotFound)
}

func TestRemoveArtworkSplicesByIndex(t *testing.T) {
	repo := newFakeRepo(&model.Artist{
		Name:     "Mark Rothko",
		Slug:     "mark-rothko",
		Artworks: []string{"a.jpg", "b.jpg", "c.jpg"},
	})
	store := &fakeStore{}
	svc := NewArtistService(repo, store)

	result, err := svc.RemoveArtwork(context.Background(), "mark-rothko", 1)
	require.NoError(t, err)
	assert.Equal(t, "b.jpg", result.RemovedURL)
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, result.Artist.Artworks)
	assert.Empty(t, result.StorageWarning)
	assert.Equal(t, []string{"uploads/b.jpg"}, store.deleted)
}

func TestRemoveArtworkRejectsOutOfRangeIndex(t *testing.T) {
	repo := newFakeRepo(&model.Artist{
		Name:     "Mark Rothko",
		Slug:     "mark-rothko",
		Artworks: []string{"a.jpg"},
	})
	svc := NewArtistService(repo, &fakeStore{})

	for _, index := range []int{-1, 1, 5} {
		_, err := svc.RemoveArtwork(context.Background(), "mark-rothko", index)
		assert.ErrorIs(t, err, model.ErrArtworkIndexOutOfRange, "index %d", index)
	}

	// The list is untouched after rejected attempts.
	a, err := repo.GetBySlug(context.Background(), "mark-rothko")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg"}, a.Artworks)
}

func TestRemoveArtworkSurfacesStorageWarning(t *testing.T) {
	repo := newFakeRepo(&model.Artist{
		Name:     "Mark Rothko",
		Slug:     "mark-rothko",
		Artworks: []string{"a.jpg", "b.jpg"},
	})
	store := &fakeStore{failDelete: true}
	svc := NewArtistService(repo, store)

	result, err := svc.RemoveArtwork(context.Background(), "mark-rothko", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.jpg"}, result.Artist.Artworks)
	assert.NotEmpty(t, result.StorageWarning)
}

func TestDeleteRemovesRowButNotObjects(t *testing.T) {
	repo := newFakeRepo(&model.Artist{
		Name:     "Mark Rothko",
		Slug:     "mark-rothko",
		Artworks: []string{"a.jpg"},
	})
	store := &fakeStore{}
	svc := NewArtistService(repo, store)

	require.NoError(t, svc.Delete(context.Background(), "mark-rothko"))

	_, err := repo.GetBySlug(context.Background(), "mark-rothko")
	assert.ErrorIs(t, err, model.ErrArtistNotFound)
	assert.Empty(t, store.deleted, "entity deletes never cascade into storage")
}

func TestDeleteUnknownSlugReturnsNotFound(t *testing.T) {
	svc := NewArtistService(newFakeRepo(), &fakeStore{})

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrArtistNotFound)
}

func TestAppendArtwork(t *testing.T) {
	repo := newFakeRepo(&model.Artist{
		Name:     "Mark Rothko",
		Slug:     "mark-rothko",
		Artworks: []string{"a.jpg"},
	})
	svc := NewArtistService(repo, &fakeStore{})

	updated, err := svc.AppendArtwork(context.Background(), "mark-rothko", "b.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, updated.Artworks)
}

func TestGetAllClampsPagination(t *testing.T) {
	repo := newFakeRepo(&model.Artist{Name: "A", Slug: "a"})
	svc := NewArtistService(repo, &fakeStore{})

	_, total, err := svc.GetAll(context.Background(), model.ArtistFilter{Page: -3, Limit: 10000})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
