package model

import "errors"

var (
	ErrInvalidInput    = errors.New("email and password are required")
	ErrAdminNotFound   = errors.New("no account exists for this email")
	ErrInvalidPassword = errors.New("invalid credentials")
)

// ToErrorCode converts an error to the API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAdminNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidPassword):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrInvalidInput):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to the HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAdminNotFound):
		return 404
	case errors.Is(err, ErrInvalidPassword):
		return 401
	case errors.Is(err, ErrInvalidInput):
		return 400
	default:
		return 500
	}
}
