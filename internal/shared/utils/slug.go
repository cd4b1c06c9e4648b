package utils

import (
	"regexp"
	"strings"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9-]+`)
	repeatedHyphen = regexp.MustCompile(`-+`)
)

// IsValidSlug reports whether s is lowercase alphanumeric groups joined by
// single hyphens.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// GenerateSlug derives a URL slug from free text.
func GenerateSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")
	normalized := repeatedHyphen.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}
