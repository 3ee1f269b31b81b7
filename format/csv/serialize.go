package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/lehigh-university-libraries/grobidmeta/format"
	"github.com/lehigh-university-libraries/grobidmeta/record"
)

// Serialize writes one row per author. A document without authors still
// gets a row so every input is accounted for.
func (f *Format) Serialize(w io.Writer, docs []format.Document, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	sep := opts.MultiValueSeparator
	if sep == "" {
		sep = "|"
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = DefaultColumns()
	}
	for _, col := range columns {
		if !knownColumn(col) {
			return fmt.Errorf("unknown csv column: %s", col)
		}
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if opts.IncludeHeader {
		if err := writer.Write(columns); err != nil {
			return err
		}
	}

	for _, doc := range docs {
		authors := []record.Author{{}}
		if doc.Metadata != nil && len(doc.Metadata.Authors) > 0 {
			authors = doc.Metadata.Authors
		}
		for _, author := range authors {
			if err := writer.Write(authorToRow(doc, author, columns, sep)); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func knownColumn(column string) bool {
	switch column {
	case "source", "first_name", "last_name", "email", "orcid",
		"affiliations", "orgs", "countries", "keywords", "references":
		return true
	}
	return false
}

func authorToRow(doc format.Document, author record.Author, columns []string, sep string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = getColumnValue(doc, author, col, sep)
	}
	return row
}

func getColumnValue(doc format.Document, author record.Author, column string, sep string) string {
	switch column {
	case "source":
		return doc.Source

	case "first_name":
		return author.FirstName

	case "last_name":
		return author.LastName

	case "email":
		return author.Email

	case "orcid":
		return author.ORCID

	case "affiliations":
		names := make([]string, 0, len(author.Affiliations))
		for _, aff := range author.Affiliations {
			names = append(names, aff.Name)
		}
		return strings.Join(names, sep)

	case "orgs":
		var orgs []string
		for _, aff := range author.Affiliations {
			for _, org := range aff.Orgs {
				orgs = append(orgs, org.Name)
			}
		}
		return strings.Join(orgs, sep)

	case "countries":
		var countries []string
		for _, aff := range author.Affiliations {
			if aff.Country != "" {
				countries = append(countries, aff.Country)
			}
		}
		return strings.Join(countries, sep)

	case "keywords":
		if doc.Metadata == nil {
			return ""
		}
		keywords := make([]string, 0, len(doc.Metadata.Keywords))
		for _, k := range doc.Metadata.Keywords {
			keywords = append(keywords, k.Keyword)
		}
		return strings.Join(keywords, sep)

	case "references":
		if doc.Metadata == nil {
			return ""
		}
		dois := make([]string, 0, len(doc.Metadata.References))
		for _, ref := range doc.Metadata.References {
			dois = append(dois, ref.DOI)
		}
		return strings.Join(dois, sep)
	}

	return ""
}
