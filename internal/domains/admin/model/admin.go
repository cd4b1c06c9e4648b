package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Admin is a backoffice account. Password holds the bcrypt hash and is
// never serialized.
type Admin struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest - POST /v1/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// AdminInfo is the public projection of an admin account.
type AdminInfo struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

func (a *Admin) ToInfo() *AdminInfo {
	return &AdminInfo{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
	}
}

// LoginResult carries the signed token alongside the account projection.
type LoginResult struct {
	Token string     `json:"token"`
	Admin *AdminInfo `json:"admin"`
}

// StorageStats reports object store usage against the configured quota.
type StorageStats struct {
	Used       string `json:"used"`
	Total      string `json:"total"`
	Percentage int    `json:"percentage"`
}

// DashboardStats - GET /v1/admin/dashboard/stats
type DashboardStats struct {
	ArtistCount     int64        `json:"artistCount"`
	CollectionCount int64        `json:"collectionCount"`
	TotalArtworks   int64        `json:"totalArtworks"`
	Storage         StorageStats `json:"storage"`
}
