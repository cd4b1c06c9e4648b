package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-backend/internal/domains/artist/model"
)

type stubService struct {
	artists []model.Artist
	total   int64
	err     error
}

func (s *stubService) Create(_ context.Context, req *model.CreateArtistRequest) (*model.Artist, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Artist{Name: req.Name, Slug: req.Slug}, nil
}

func (s *stubService) GetBySlug(_ context.Context, slug string) (*model.Artist, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.artists {
		if s.artists[i].Slug == slug {
			return &s.artists[i], nil
		}
	}
	return nil, model.ErrArtistNotFound
}

func (s *stubService) GetAll(_ context.Context, _ model.ArtistFilter) ([]model.Artist, int64, error) {
	return s.artists, s.total, s.err
}

func (s *stubService) Update(_ context.Context, slug string, _ *model.UpdateArtistRequest) (*model.Artist, error) {
	return nil, s.err
}

func (s *stubService) Delete(_ context.Context, _ string) error {
	return s.err
}

func (s *stubService) RemoveArtwork(_ context.Context, slug string, index int) (*model.RemoveArtworkResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	a := model.Artist{Slug: slug}
	return &model.RemoveArtworkResult{Artist: a.ToResponse(), RemovedURL: "x.jpg"}, nil
}

func (s *stubService) AppendArtwork(_ context.Context, _ string, _ string) (*model.Artist, error) {
	return nil, s.err
}

func setupRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArtistHandler(svc)

	r := gin.New()
	r.GET("/v1/artists", h.GetAll)
	r.GET("/v1/artists/:slug", h.GetBySlug)
	r.POST("/v1/artists", h.Create)
	r.DELETE("/v1/artists/:slug/artworks/:index", h.RemoveArtwork)
	return r
}

func TestGetAllReturnsPaginationMeta(t *testing.T) {
	svc := &stubService{
		artists: []model.Artist{
			{Name: "A", Slug: "a", Artworks: []string{"cover.jpg", "second.jpg"}},
			{Name: "B", Slug: "b"},
		},
		total: 45,
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/artists?page=2&limit=20", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			Slug       string `json:"slug"`
			FirstImage string `json:"firstImage"`
		} `json:"data"`
		Meta struct {
			Total     int64 `json:"total"`
			Page      int   `json:"page"`
			PageSize  int   `json:"pageSize"`
			PageCount int   `json:"pageCount"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "cover.jpg", body.Data[0].FirstImage)
	assert.Equal(t, "", body.Data[1].FirstImage)
	assert.Equal(t, int64(45), body.Meta.Total)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 20, body.Meta.PageSize)
	assert.Equal(t, 3, body.Meta.PageCount)
}

func TestGetBySlugNotFound(t *testing.T) {
	router := setupRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/artists/missing", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"NOT_FOUND"`)
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	router := setupRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/artists", strings.NewReader(`{"artworks": "not-a-list"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"VALIDATION_ERROR"`)
}

func TestRemoveArtworkRejectsNonNumericIndex(t *testing.T) {
	router := setupRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/artists/a/artworks/first", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveArtworkOutOfRangeMapsTo400(t *testing.T) {
	router := setupRouter(&stubService{err: model.ErrArtworkIndexOutOfRange})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/artists/a/artworks/9", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"VALIDATION_ERROR"`)
}
