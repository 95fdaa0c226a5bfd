package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s-]+`)

	filenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// GenerateSlug derives a URL-safe identifier from a human-readable title.
// Lower-cases the title, strips characters outside [a-z0-9\s-] and collapses
// whitespace/hyphen runs into single hyphens.
func GenerateSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	return slug
}

// SanitizeFilename replaces characters that are unsafe in a
// Content-Disposition filename with underscores
func SanitizeFilename(name string) string {
	return filenameUnsafe.ReplaceAllString(name, "_")
}
