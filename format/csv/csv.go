// Package csv provides a format plugin writing one CSV row per author.
package csv

import (
	"github.com/lehigh-university-libraries/grobidmeta/format"
)

// Format implements the CSV format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Comma-separated values, one row per author"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv"}
}

// DefaultColumns returns the columns written when none are requested.
func DefaultColumns() []string {
	return []string{"source", "first_name", "last_name", "email", "orcid", "affiliations"}
}

func init() {
	format.Register(&Format{})
}
