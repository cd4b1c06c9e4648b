package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AllowedContentTypes maps accepted image MIME types to object key extensions.
var AllowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadRequest is a fully read multipart file ready for validation.
type UploadRequest struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UploadResult describes a stored object.
type UploadResult struct {
	URL          string `json:"url"`
	Key          string `json:"key"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Size         int64  `json:"size"`
	ContentType  string `json:"contentType"`
}

// ArtworkUploadResult is an upload that was also appended to an artist.
type ArtworkUploadResult struct {
	UploadResult
	ArtistSlug string   `json:"artistSlug"`
	Artworks   []string `json:"artworks"`
}

// DeleteRequest - DELETE /v1/uploads
type DeleteRequest struct {
	Key string `json:"key"`
}

func (r DeleteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Key, validation.Required),
	)
}

// PresignRequest - POST /v1/uploads/presign
type PresignRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

func (r PresignRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileName, validation.Required),
	)
}

// PresignResult carries the URL the client PUTs the object to, plus the
// public URL the object will be served from afterwards.
type PresignResult struct {
	UploadURL string    `json:"uploadUrl"`
	FileURL   string    `json:"fileUrl"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}
