package proto

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/grobidmeta/format"
	"github.com/lehigh-university-libraries/grobidmeta/record"
)

func extracted() *record.Record {
	rec := &record.Record{
		Authors: []record.Author{{
			LastName:     "Doe",
			Affiliations: []record.Affiliation{{Name: "Acme", Orgs: []record.Org{{Name: "Acme"}}}},
		}},
		References: []record.Reference{{DOI: "10.1000/abc"}},
	}
	rec.SetAvailabilityStatement(false)
	return rec
}

func TestSerializeDelimited(t *testing.T) {
	docs := []format.Document{
		{Source: "a.xml", Metadata: extracted()},
		{Source: "b.xml", Metadata: &record.Record{}},
	}

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, docs, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	r := bufio.NewReader(&buf)
	var got []map[string]any
	for {
		msg := &structpb.Struct{}
		err := protodelim.UnmarshalFrom(r, msg)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("reading message: %v", err)
		}
		got = append(got, msg.AsMap())
	}

	want := []map[string]any{docs[0].Map(), docs[1].Map()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeProtoJSONSingle(t *testing.T) {
	var buf bytes.Buffer
	docs := []format.Document{{Source: "a.xml", Metadata: extracted()}}
	if err := (&JSONFormat{}).Serialize(&buf, docs, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	msg := &structpb.Struct{}
	if err := protojson.Unmarshal(buf.Bytes(), msg); err != nil {
		t.Fatalf("output is not a protojson Struct: %v", err)
	}
	if diff := cmp.Diff(extracted().Map(), msg.AsMap()); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeProtoJSONSeveral(t *testing.T) {
	var buf bytes.Buffer
	docs := []format.Document{
		{Source: "a.xml", Metadata: extracted()},
		{Source: "b.xml", Metadata: &record.Record{}},
	}
	if err := (&JSONFormat{}).Serialize(&buf, docs, &format.SerializeOptions{Pretty: true}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	list := &structpb.ListValue{}
	if err := protojson.Unmarshal(buf.Bytes(), list); err != nil {
		t.Fatalf("output is not a protojson ListValue: %v", err)
	}
	if n := len(list.GetValues()); n != 2 {
		t.Fatalf("expected 2 documents, got %d", n)
	}
	second := list.GetValues()[1].GetStructValue().AsMap()
	if diff := cmp.Diff(map[string]any{"source": "b.xml", "metadata": map[string]any{}}, second); diff != "" {
		t.Errorf("second document mismatch (-want +got):\n%s", diff)
	}
}
