// Package format defines the interface for metadata output format plugins.
package format

import (
	"io"

	"github.com/lehigh-university-libraries/grobidmeta/record"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "json", "yaml", "csv")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string
}

// Serializer is a format that can write extracted documents to output.
type Serializer interface {
	Format

	// Serialize writes the documents to the output.
	Serialize(w io.Writer, docs []Document, opts *SerializeOptions) error
}

// Document pairs an extracted record with the input it came from.
type Document struct {
	// Source is the input path, or "stdin"
	Source string `json:"source" yaml:"source"`

	// Metadata is the extracted record; empty when the input was rejected
	Metadata *record.Record `json:"metadata" yaml:"metadata"`
}

// Map returns the document as a JSON-compatible map.
func (d Document) Map() map[string]any {
	return map[string]any{
		"source":   d.Source,
		"metadata": d.Metadata.Map(),
	}
}

// Payload returns the value single-document encoders write: the bare
// record when there is exactly one document, or the documents otherwise.
func Payload(docs []Document) any {
	if len(docs) == 1 {
		return recordOrEmpty(docs[0].Metadata)
	}
	if docs == nil {
		return []Document{}
	}
	return docs
}

func recordOrEmpty(r *record.Record) *record.Record {
	if r == nil {
		return &record.Record{}
	}
	return r
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// Pretty enables pretty-printing (for JSON/YAML formats)
	Pretty bool

	// Columns specifies which columns to include (for tabular formats)
	Columns []string

	// MultiValueSeparator is the delimiter for multi-value fields
	MultiValueSeparator string

	// IncludeHeader includes a header row (for tabular formats)
	IncludeHeader bool
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		MultiValueSeparator: "|",
		IncludeHeader:       true,
	}
}
