package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/grobidmeta/format"
	"github.com/lehigh-university-libraries/grobidmeta/record"
)

func testDocuments() []format.Document {
	return []format.Document{
		{
			Source: "a.tei.xml",
			Metadata: &record.Record{
				Authors: []record.Author{
					{
						FirstName: "Jane",
						LastName:  "Doe",
						ORCID:     "0000-0002-1825-0097",
						Affiliations: []record.Affiliation{
							{Name: "Acme, Paris", Orgs: []record.Org{{Name: "Acme"}}, Country: "France"},
							{Name: "Beta"},
						},
					},
					{LastName: "Roe", Email: "roe@example.org"},
				},
				Keywords: []record.Keyword{{Keyword: "tei"}, {Keyword: "xml"}},
			},
		},
		{Source: "empty.tei.xml", Metadata: &record.Record{}},
	}
}

func TestSerializeDefaultColumns(t *testing.T) {
	var buf bytes.Buffer
	f := &Format{}
	if err := f.Serialize(&buf, testDocuments(), nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	want := strings.Join([]string{
		"source,first_name,last_name,email,orcid,affiliations",
		`a.tei.xml,Jane,Doe,,0000-0002-1825-0097,"Acme, Paris|Beta"`,
		"a.tei.xml,,Roe,roe@example.org,,",
		"empty.tei.xml,,,,,",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("CSV mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSerializeCustomColumns(t *testing.T) {
	var buf bytes.Buffer
	opts := &format.SerializeOptions{
		Columns:             []string{"last_name", "orgs", "countries", "keywords"},
		MultiValueSeparator: ";",
	}
	if err := (&Format{}).Serialize(&buf, testDocuments()[:1], opts); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	want := "Doe,Acme,France,tei;xml\nRoe,,,tei;xml\n"
	if got := buf.String(); got != want {
		t.Errorf("CSV mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSerializeUnknownColumn(t *testing.T) {
	opts := &format.SerializeOptions{Columns: []string{"title"}}
	if err := (&Format{}).Serialize(&bytes.Buffer{}, testDocuments(), opts); err == nil {
		t.Error("expected error for unknown column")
	}
}
