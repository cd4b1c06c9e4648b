package model

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid collection payload")
	ErrCollectionNotFound = errors.New("collection not found")
)

// ToErrorCode converts an error to the API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrCollectionNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidInput):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to the HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCollectionNotFound):
		return 404
	case errors.Is(err, ErrInvalidInput):
		return 400
	default:
		return 500
	}
}
