// Package helpers provides text normalization shared by the extractors.
package helpers

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRegex = regexp.MustCompile(`\s+`)
	newlineRegex    = regexp.MustCompile(`[\r\n]+`)
)

// CollapseWhitespace replaces newlines with spaces, collapses runs of
// whitespace to a single space and trims both ends.
func CollapseWhitespace(s string) string {
	if s == "" {
		return ""
	}
	s = newlineRegex.ReplaceAllString(s, " ")
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeDOI lowercases and trims a DOI. DOIs are case-insensitive,
// so the lowercase form is used for matching downstream.
func NormalizeDOI(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
