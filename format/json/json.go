// Package json provides JSON and JSON Lines format plugins.
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lehigh-university-libraries/grobidmeta/format"
	"github.com/lehigh-university-libraries/grobidmeta/record"
)

// Format writes a single JSON value: the bare record for one document,
// or an array of {source, metadata} objects for several.
type Format struct{}

// LinesFormat writes one {source, metadata} object per line.
type LinesFormat struct{}

// Ensure the formats implement the interfaces
var (
	_ format.Serializer = (*Format)(nil)
	_ format.Serializer = (*LinesFormat)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "json"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "JSON record (an array of documents when several inputs are given)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json"}
}

// Serialize writes the documents as one JSON value.
func (f *Format) Serialize(w io.Writer, docs []format.Document, opts *format.SerializeOptions) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts != nil && opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(format.Payload(docs)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// Name returns the format identifier.
func (f *LinesFormat) Name() string {
	return "jsonl"
}

// Description returns a human-readable format description.
func (f *LinesFormat) Description() string {
	return "JSON Lines, one {source, metadata} object per document"
}

// Extensions returns file extensions associated with this format.
func (f *LinesFormat) Extensions() []string {
	return []string{"jsonl", "ndjson"}
}

// Serialize writes one JSON object per line. Pretty is ignored.
func (f *LinesFormat) Serialize(w io.Writer, docs []format.Document, _ *format.SerializeOptions) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, doc := range docs {
		if doc.Metadata == nil {
			doc.Metadata = &record.Record{}
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding %s: %w", doc.Source, err)
		}
	}
	return nil
}

func init() {
	format.Register(&Format{})
	format.Register(&LinesFormat{})
}
