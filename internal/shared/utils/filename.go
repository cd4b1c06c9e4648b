package utils

import (
	"regexp"
	"strings"
)

// ArtworkMeta is the title/artist pair inferred from an uploaded filename.
// Both fields stay editable by the caller; this is a best-effort heuristic.
type ArtworkMeta struct {
	Title      string `json:"title"`
	ArtistName string `json:"artist_name"`
}

var leadingIndexPrefix = regexp.MustCompile(`^\d+-`)

// ParseArtworkFilename infers title and artist name from a filename.
//
// Precedence: after stripping the extension, a comma means everything before
// the first comma is the artist and the full remainder stays as title.
// Otherwise " - ", "_" and "-" are tried in that order and split the name
// into (artist, title) on the first occurrence. A leading "<digits>-" prefix
// is stripped from the artist (scanner batch numbers). When nothing matches,
// the whole stripped name becomes the title and the artist stays empty.
func ParseArtworkFilename(fileName string) ArtworkMeta {
	name := fileName
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}

	meta := ArtworkMeta{Title: name}

	switch {
	case strings.Contains(name, ","):
		meta.ArtistName = strings.TrimSpace(name[:strings.Index(name, ",")])
	case strings.Contains(name, " - "):
		artist, title, _ := strings.Cut(name, " - ")
		meta.ArtistName = strings.TrimSpace(artist)
		meta.Title = strings.TrimSpace(title)
	case strings.Contains(name, "_"):
		artist, title, _ := strings.Cut(name, "_")
		meta.ArtistName = strings.TrimSpace(artist)
		meta.Title = strings.TrimSpace(title)
	case strings.Contains(name, "-"):
		artist, title, _ := strings.Cut(name, "-")
		meta.ArtistName = strings.TrimSpace(artist)
		meta.Title = strings.TrimSpace(title)
	}

	if meta.ArtistName != "" {
		meta.ArtistName = leadingIndexPrefix.ReplaceAllString(meta.ArtistName, "")
	}

	if meta.Title == "" {
		meta.Title = name
	}

	return meta
}
