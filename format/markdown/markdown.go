// Package markdown provides a human-readable Markdown report of extracted
// metadata, for reviewing extraction results by eye.
package markdown

import (
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/lehigh-university-libraries/grobidmeta/format"
	"github.com/lehigh-university-libraries/grobidmeta/record"
)

// Format implements the Markdown report format.
type Format struct{}

var _ format.Serializer = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "markdown"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Markdown report for reviewing extraction results"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"md"}
}

// Serialize writes one section per document.
func (f *Format) Serialize(w io.Writer, docs []format.Document, _ *format.SerializeOptions) error {
	doc := md.NewMarkdown(w)
	doc.H1("GROBID metadata")
	doc.PlainText("")

	for _, d := range docs {
		writeDocument(doc, d)
	}

	if err := doc.Build(); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

func writeDocument(doc *md.Markdown, d format.Document) {
	doc.H2(d.Source)
	doc.PlainText("")

	rec := d.Metadata
	if rec.IsEmpty() {
		doc.PlainText("No metadata: the document was rejected or unreadable.")
		doc.PlainText("")
		return
	}

	if len(rec.Authors) > 0 {
		writeAuthors(doc, rec.Authors)
	}

	if len(rec.Affiliations) > 0 {
		doc.H3("Affiliations")
		doc.PlainText("")
		names := make([]string, len(rec.Affiliations))
		for i, aff := range rec.Affiliations {
			names[i] = aff.Name
		}
		doc.BulletList(names...)
		doc.PlainText("")
	}

	if len(rec.Keywords) > 0 {
		doc.H3("Keywords")
		doc.PlainText("")
		terms := make([]string, len(rec.Keywords))
		for i, k := range rec.Keywords {
			terms[i] = k.Keyword
		}
		doc.PlainText(strings.Join(terms, ", "))
		doc.PlainText("")
	}

	for _, a := range rec.Abstract {
		doc.H3("Abstract")
		doc.PlainText("")
		doc.PlainText(a.Abstract)
		doc.PlainText("")
	}

	for _, a := range rec.Acknowledgments {
		doc.H3("Acknowledgments")
		doc.PlainText("")
		doc.PlainText(a.Acknowledgments)
		doc.PlainText("")
	}

	if len(rec.References) > 0 {
		doc.H3(fmt.Sprintf("References with DOI (%d)", len(rec.References)))
		doc.PlainText("")
		dois := make([]string, len(rec.References))
		for i, ref := range rec.References {
			dois[i] = ref.DOI
		}
		doc.BulletList(dois...)
		doc.PlainText("")
	}

	if rec.HasAvailabilityStatement != nil {
		doc.PlainText(fmt.Sprintf("Availability statement: %t", *rec.HasAvailabilityStatement))
		doc.PlainText("")
	}
}

func writeAuthors(doc *md.Markdown, authors []record.Author) {
	doc.H3("Authors")
	doc.PlainText("")

	rows := make([][]string, len(authors))
	for i, a := range authors {
		affs := make([]string, len(a.Affiliations))
		for j, aff := range a.Affiliations {
			affs[j] = aff.Name
		}
		rows[i] = []string{
			strings.TrimSpace(a.FirstName + " " + a.LastName),
			a.Email,
			a.ORCID,
			strings.Join(affs, "; "),
		}
	}

	doc.Table(md.TableSet{
		Header: []string{"Name", "Email", "ORCID", "Affiliations"},
		Rows:   rows,
	})
	doc.PlainText("")
}

func init() {
	format.Register(&Format{})
}
