package model

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid upload payload")
	ErrUnsupportedContentType = errors.New("only jpeg, png, webp and gif images are accepted")
	ErrFileTooLarge           = errors.New("file exceeds the upload size limit")
	ErrInvalidKey             = errors.New("object key is invalid")
)

// ToErrorCode converts an error to the API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrUnsupportedContentType),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrInvalidKey):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to the HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrUnsupportedContentType),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrInvalidKey):
		return 400
	default:
		return 500
	}
}
