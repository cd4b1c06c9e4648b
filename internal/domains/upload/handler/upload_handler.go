package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	artistmodel "gallery-backend/internal/domains/artist/model"
	"gallery-backend/internal/domains/upload/model"
	"gallery-backend/internal/domains/upload/service"
	"gallery-backend/internal/shared/response"
)

type UploadHandler struct {
	service service.ServiceInterface
}

func NewUploadHandler(svc service.ServiceInterface) *UploadHandler {
	return &UploadHandler{
		service: svc,
	}
}

func readFormFile(c *gin.Context) (*model.UploadRequest, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &model.UploadRequest{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// Upload - POST /v1/uploads (multipart, field "file")
func (h *UploadHandler) Upload(c *gin.Context) {
	req, err := readFormFile(c)
	if err != nil {
		response.BadRequest(c, "multipart field 'file' is required: "+err.Error())
		return
	}

	result, err := h.service.UploadImage(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// UploadArtwork - POST /v1/uploads/artwork (multipart, fields "file" and "artistSlug")
func (h *UploadHandler) UploadArtwork(c *gin.Context) {
	slug := c.PostForm("artistSlug")
	if slug == "" {
		response.BadRequest(c, "multipart field 'artistSlug' is required")
		return
	}

	req, err := readFormFile(c)
	if err != nil {
		response.BadRequest(c, "multipart field 'file' is required: "+err.Error())
		return
	}

	result, err := h.service.UploadArtistArtwork(c.Request.Context(), slug, req)
	if err != nil {
		// An unknown slug surfaces the artist error so it maps to 404.
		if errors.Is(err, artistmodel.ErrArtistNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Delete - DELETE /v1/uploads (JSON body {"key": ...} or ?key=)
func (h *UploadHandler) Delete(c *gin.Context) {
	var req model.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" {
		req.Key = c.Query("key")
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "object key is required")
		return
	}

	if err := h.service.DeleteObject(c.Request.Context(), req.Key); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true, "key": req.Key})
}

// Presign - POST /v1/uploads/presign
func (h *UploadHandler) Presign(c *gin.Context) {
	var req model.PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Presign(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}
