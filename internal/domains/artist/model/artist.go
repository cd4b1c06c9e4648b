package model

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Artist is a gallery artist. Artworks holds image URLs in display order;
// the first element is used as the cover image on listing pages.
type Artist struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Biography string    `json:"biography"`
	Artworks  []string  `json:"artworks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CreateArtistRequest - POST /v1/artists
type CreateArtistRequest struct {
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	Biography string   `json:"biography,omitempty"`
	Artworks  []string `json:"artworks,omitempty"`
}

func (r CreateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Slug, validation.Required, validation.Match(slugPattern).
			Error("slug may only contain lowercase letters, digits and hyphens")),
	)
}

// UpdateArtistRequest - PUT /v1/artists/:slug
// All fields optional for partial updates.
type UpdateArtistRequest struct {
	Name      *string   `json:"name,omitempty"`
	Slug      *string   `json:"slug,omitempty"`
	Biography *string   `json:"biography,omitempty"`
	Artworks  *[]string `json:"artworks,omitempty"`
}

func (r UpdateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty),
		validation.Field(&r.Slug, validation.NilOrNotEmpty, validation.Match(slugPattern).
			Error("slug may only contain lowercase letters, digits and hyphens")),
	)
}

// ApplyToEntity merges the patch into an existing artist.
func (r *UpdateArtistRequest) ApplyToEntity(a *Artist) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Slug != nil {
		a.Slug = *r.Slug
	}
	if r.Biography != nil {
		a.Biography = *r.Biography
	}
	if r.Artworks != nil {
		a.Artworks = *r.Artworks
	}
}

// ArtistResponse mirrors the entity plus the derived cover image.
type ArtistResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Biography  string    `json:"biography"`
	Artworks   []string  `json:"artworks"`
	FirstImage string    `json:"firstImage"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (a *Artist) ToResponse() *ArtistResponse {
	firstImage := ""
	if len(a.Artworks) > 0 {
		firstImage = a.Artworks[0]
	}
	artworks := a.Artworks
	if artworks == nil {
		artworks = []string{}
	}
	return &ArtistResponse{
		ID:         a.ID,
		Name:       a.Name,
		Slug:       a.Slug,
		Biography:  a.Biography,
		Artworks:   artworks,
		FirstImage: firstImage,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ArtistFilter - query parameters for listing.
type ArtistFilter struct {
	Search         string
	OrderBy        string // name, createdAt
	OrderDirection string // asc, desc
	Page           int
	Limit          int
}

// Offset converts page/limit to a row offset.
func (f ArtistFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// RemoveArtworkResult reports a splice outcome. StorageWarning is non-empty
// when the backing object could not be deleted; the row update still stands.
type RemoveArtworkResult struct {
	Artist         *ArtistResponse `json:"artist"`
	RemovedURL     string          `json:"removed_url"`
	StorageWarning string          `json:"storage_warning,omitempty"`
}
