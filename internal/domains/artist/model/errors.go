package model

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid artist payload")
	ErrArtistNotFound         = errors.New("artist not found")
	ErrDuplicateSlug          = errors.New("artist with this slug already exists")
	ErrInvalidSlug            = errors.New("artist slug is invalid")
	ErrArtworkIndexOutOfRange = errors.New("artwork index is out of range")
)

// ToErrorCode converts an error to the API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrArtistNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrDuplicateSlug):
		return "CONFLICT"
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidSlug), errors.Is(err, ErrArtworkIndexOutOfRange):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to the HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrArtistNotFound):
		return 404
	case errors.Is(err, ErrDuplicateSlug):
		return 409
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidSlug), errors.Is(err, ErrArtworkIndexOutOfRange):
		return 400
	default:
		return 500
	}
}
