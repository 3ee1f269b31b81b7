// Package yaml provides a YAML format plugin.
package yaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/grobidmeta/format"
)

// Format implements the YAML format.
type Format struct{}

var _ format.Serializer = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "yaml"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "YAML record (a list of documents when several inputs are given)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"yaml", "yml"}
}

// Serialize writes the documents as one YAML document.
func (f *Format) Serialize(w io.Writer, docs []format.Document, _ *format.SerializeOptions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(format.Payload(docs)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func init() {
	format.Register(&Format{})
}
