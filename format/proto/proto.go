// Package proto provides protobuf format plugins. Records are carried as
// google.protobuf.Struct messages, so consumers need no generated code.
package proto

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/grobidmeta/format"
	"github.com/lehigh-university-libraries/grobidmeta/record"
)

// Format writes size-delimited binary Struct messages, one per document,
// each holding {source, metadata}.
type Format struct{}

// JSONFormat writes the protobuf JSON mapping of the record Struct.
type JSONFormat struct{}

// Ensure the formats implement the interfaces
var (
	_ format.Serializer = (*Format)(nil)
	_ format.Serializer = (*JSONFormat)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "protobuf"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Size-delimited google.protobuf.Struct messages, one per document"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"pb", "binpb"}
}

// Serialize writes one delimited message per document.
func (f *Format) Serialize(w io.Writer, docs []format.Document, _ *format.SerializeOptions) error {
	for _, doc := range docs {
		msg, err := ToStruct(doc)
		if err != nil {
			return err
		}
		if _, err := protodelim.MarshalTo(w, msg); err != nil {
			return fmt.Errorf("writing %s: %w", doc.Source, err)
		}
	}
	return nil
}

// Name returns the format identifier.
func (f *JSONFormat) Name() string {
	return "protojson"
}

// Description returns a human-readable format description.
func (f *JSONFormat) Description() string {
	return "Protobuf JSON mapping of google.protobuf.Struct records"
}

// Extensions returns file extensions associated with this format.
func (f *JSONFormat) Extensions() []string {
	return nil
}

// Serialize writes a Struct for one document, or a ListValue of
// {source, metadata} Structs for several.
func (f *JSONFormat) Serialize(w io.Writer, docs []format.Document, opts *format.SerializeOptions) error {
	mo := protojson.MarshalOptions{}
	if opts != nil && opts.Pretty {
		mo.Multiline = true
		mo.Indent = "  "
	}

	var (
		out []byte
		err error
	)
	if len(docs) == 1 {
		msg, serr := RecordStruct(docs[0].Metadata)
		if serr != nil {
			return serr
		}
		out, err = mo.Marshal(msg)
	} else {
		items := make([]any, len(docs))
		for i, doc := range docs {
			items[i] = doc.Map()
		}
		list, lerr := structpb.NewList(items)
		if lerr != nil {
			return fmt.Errorf("converting documents: %w", lerr)
		}
		out, err = mo.Marshal(list)
	}
	if err != nil {
		return fmt.Errorf("encoding protojson: %w", err)
	}

	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// RecordStruct converts a record to a google.protobuf.Struct.
func RecordStruct(rec *record.Record) (*structpb.Struct, error) {
	msg, err := structpb.NewStruct(rec.Map())
	if err != nil {
		return nil, fmt.Errorf("converting record: %w", err)
	}
	return msg, nil
}

// ToStruct converts a document to a google.protobuf.Struct.
func ToStruct(doc format.Document) (*structpb.Struct, error) {
	msg, err := structpb.NewStruct(doc.Map())
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", doc.Source, err)
	}
	return msg, nil
}

func init() {
	format.Register(&Format{})
	format.Register(&JSONFormat{})
}
