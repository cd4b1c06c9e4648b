package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gallery-backend/internal/domains/artist/model"
	"gallery-backend/internal/domains/artist/service"
	"gallery-backend/internal/shared/response"
)

type ArtistHandler struct {
	service service.ServiceInterface
}

func NewArtistHandler(svc service.ServiceInterface) *ArtistHandler {
	return &ArtistHandler{
		service: svc,
	}
}

// GetAll - GET /v1/artists?page=1&limit=20&orderBy=name&orderDirection=asc&search=
func (h *ArtistHandler) GetAll(c *gin.Context) {
	filter := model.ArtistFilter{
		Search:         c.Query("search"),
		OrderBy:        c.DefaultQuery("orderBy", "name"),
		OrderDirection: c.DefaultQuery("orderDirection", "asc"),
		Page:           parseIntQuery(c, "page", 1),
		Limit:          parseIntQuery(c, "limit", 20),
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	artists, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	items := make([]model.ArtistResponse, len(artists))
	for i, a := range artists {
		items[i] = *a.ToResponse()
	}

	response.SuccessWithMeta(c, http.StatusOK, items, response.NewMeta(total, filter.Page, filter.Limit))
}

// GetBySlug - GET /v1/artists/:slug
func (h *ArtistHandler) GetBySlug(c *gin.Context) {
	artist, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, artist.ToResponse())
}

// Create - POST /v1/artists
func (h *ArtistHandler) Create(c *gin.Context) {
	var req model.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	artist, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, artist.ToResponse())
}

// Update - PUT /v1/artists/:slug
func (h *ArtistHandler) Update(c *gin.Context) {
	var req model.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	artist, err := h.service.Update(c.Request.Context(), c.Param("slug"), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, artist.ToResponse())
}

// Delete - DELETE /v1/artists/:slug
func (h *ArtistHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// RemoveArtwork - DELETE /v1/artists/:slug/artworks/:index
func (h *ArtistHandler) RemoveArtwork(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "artwork index must be an integer")
		return
	}

	result, err := h.service.RemoveArtwork(c.Request.Context(), c.Param("slug"), index)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
