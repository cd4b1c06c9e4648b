package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Collection is a single artwork entry in the gallery catalogue.
// ArtistName is stored denormalized so entries survive artist renames
// and can reference artists that have no profile yet.
type Collection struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	ArtistName string    `json:"artist_name"`
	ImageURL   string    `json:"imageUrl"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCollectionRequest - POST /v1/collections
type CreateCollectionRequest struct {
	Title      string `json:"title"`
	ArtistName string `json:"artist_name"`
	ImageURL   string `json:"imageUrl"`
}

func (r CreateCollectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.ArtistName, validation.Required),
		validation.Field(&r.ImageURL, validation.Required),
	)
}

// UpdateCollectionRequest - PUT /v1/collections/:id
// All fields optional for partial updates; provided fields must be non-empty.
type UpdateCollectionRequest struct {
	Title      *string `json:"title,omitempty"`
	ArtistName *string `json:"artist_name,omitempty"`
	ImageURL   *string `json:"imageUrl,omitempty"`
}

func (r UpdateCollectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.ArtistName, validation.NilOrNotEmpty),
		validation.Field(&r.ImageURL, validation.NilOrNotEmpty),
	)
}

// ApplyToEntity merges the patch into an existing collection.
func (r *UpdateCollectionRequest) ApplyToEntity(c *Collection) {
	if r.Title != nil {
		c.Title = *r.Title
	}
	if r.ArtistName != nil {
		c.ArtistName = *r.ArtistName
	}
	if r.ImageURL != nil {
		c.ImageURL = *r.ImageURL
	}
}

// CollectionFilter - query parameters for listing.
// Query matches title OR artist name; ArtistName narrows to one artist.
type CollectionFilter struct {
	Query          string
	ArtistName     string
	OrderBy        string // title, createdAt, artistName
	OrderDirection string // asc, desc
	Page           int
	Limit          int
}

// Offset converts page/limit to a row offset.
func (f CollectionFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// BulkCreateItem is one entry of a bulk import. Title and artist name are
// inferred from FileName when not given explicitly.
type BulkCreateItem struct {
	FileName   string `json:"fileName"`
	ImageURL   string `json:"imageUrl"`
	Title      string `json:"title,omitempty"`
	ArtistName string `json:"artist_name,omitempty"`
}

// BulkCreateRequest - POST /v1/collections/bulk
type BulkCreateRequest struct {
	Items []BulkCreateItem `json:"items"`
}

func (r BulkCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Items, validation.Required, validation.Length(1, 200)),
	)
}

// BulkCreateError reports a single failed item by position.
type BulkCreateError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// BulkCreateResult - partial success is allowed; failed items are listed
// with their input index while the rest are created.
type BulkCreateResult struct {
	Created []Collection      `json:"created"`
	Errors  []BulkCreateError `json:"errors"`
}
