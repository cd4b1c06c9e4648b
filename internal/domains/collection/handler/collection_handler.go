package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gallery-backend/internal/domains/collection/model"
	"gallery-backend/internal/domains/collection/service"
	"gallery-backend/internal/shared/response"
)

type CollectionHandler struct {
	service service.ServiceInterface
}

func NewCollectionHandler(svc service.ServiceInterface) *CollectionHandler {
	return &CollectionHandler{
		service: svc,
	}
}

// GetAll - GET /v1/collections?page=1&limit=20&query=&artist=&orderBy=createdAt&orderDirection=desc
func (h *CollectionHandler) GetAll(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		query = c.Query("search")
	}

	filter := model.CollectionFilter{
		Query:          query,
		ArtistName:     c.Query("artist"),
		OrderBy:        c.DefaultQuery("orderBy", "createdAt"),
		OrderDirection: c.DefaultQuery("orderDirection", "desc"),
		Page:           parseIntQuery(c, "page", 1),
		Limit:          parseIntQuery(c, "limit", 20),
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	collections, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	if collections == nil {
		collections = []model.Collection{}
	}

	response.SuccessWithMeta(c, http.StatusOK, collections, response.NewMeta(total, filter.Page, filter.Limit))
}

// GetByID - GET /v1/collections/:id
func (h *CollectionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid collection id")
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entry)
}

// Create - POST /v1/collections
func (h *CollectionHandler) Create(c *gin.Context) {
	var req model.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	entry, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, entry)
}

// BulkCreate - POST /v1/collections/bulk
func (h *CollectionHandler) BulkCreate(c *gin.Context) {
	var req model.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.BulkCreate(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	status := http.StatusCreated
	if len(result.Created) == 0 {
		status = http.StatusBadRequest
	}

	response.Success(c, status, result)
}

// Update - PUT /v1/collections/:id
func (h *CollectionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid collection id")
		return
	}

	var req model.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	entry, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, entry)
}

// Delete - DELETE /v1/collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid collection id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
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
