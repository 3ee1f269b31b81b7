package grobid

import (
	"strings"

	"github.com/lehigh-university-libraries/grobidmeta/helpers"
	"github.com/lehigh-university-libraries/grobidmeta/record"
	"github.com/lehigh-university-libraries/grobidmeta/tree"
)

// TEI element and attribute values read by the extractor.
const (
	typeAcknowledgement = "acknowledgement"
	typeReferences      = "references"
	typeDOI             = "DOI"
	typeORCID           = "ORCID"
)

// ExtractRecord builds the metadata record for a parsed document. Every
// section is optional; a missing section, or one present with no text,
// leaves its keys out without affecting the others. The tree is only read.
func ExtractRecord(root tree.Node) *record.Record {
	rec := &record.Record{}

	rec.Authors, rec.Affiliations = extractAuthors(root)
	rec.Keywords, rec.Abstract = extractProfile(root)
	rec.Acknowledgments = extractAcknowledgments(root)
	rec.References = extractReferences(root)

	rec.SetAvailabilityStatement(false)

	return rec
}

// extractAuthors reads the authors of the source description and the
// document-level list of distinct affiliations.
func extractAuthors(root tree.Node) ([]record.Author, []record.Affiliation) {
	source, ok := root.Find("sourceDesc")
	if !ok {
		return nil, nil
	}

	var (
		authors      []record.Author
		affiliations []record.Affiliation
	)
	for _, n := range source.FindAll("author") {
		author := ExtractAuthor(n)
		if author.IsEmpty() {
			continue
		}
		authors = append(authors, author)
		affiliations = record.AppendUnique(affiliations, author.Affiliations...)
	}

	return authors, affiliations
}

// extractProfile reads keywords and the abstract from the profile description.
func extractProfile(root tree.Node) ([]record.Keyword, []record.Abstract) {
	profile, ok := root.Find("profileDesc")
	if !ok {
		return nil, nil
	}

	var keywords []record.Keyword
	if kw, ok := profile.Find("keywords"); ok {
		for _, term := range kw.FindAll("term") {
			if k := strings.TrimSpace(term.OwnText()); k != "" {
				keywords = append(keywords, record.Keyword{Keyword: k})
			}
		}
	}

	var abstract []record.Abstract
	if a := firstText(profile, "abstract"); a != "" {
		abstract = []record.Abstract{{Abstract: a}}
	}

	return keywords, abstract
}

func extractAcknowledgments(root tree.Node) []record.Acknowledgment {
	ack := firstText(root, "div", tree.Attr{Name: "type", Value: typeAcknowledgement})
	if ack == "" {
		return nil
	}
	return []record.Acknowledgment{{Acknowledgments: ack}}
}

// extractReferences keeps the DOI of every cited work that has one;
// citations without a DOI, or with a blank one, are dropped.
func extractReferences(root tree.Node) []record.Reference {
	div, ok := root.Find("div", tree.Attr{Name: "type", Value: typeReferences})
	if !ok {
		return nil
	}

	var refs []record.Reference
	for _, bibl := range div.FindAll("biblStruct") {
		doi := helpers.NormalizeDOI(firstText(bibl, "idno", tree.Attr{Name: "type", Value: typeDOI}))
		if doi == "" {
			continue
		}
		refs = append(refs, record.Reference{DOI: doi})
	}

	return refs
}

// text returns the node's descendant text joined by single spaces, trimmed.
func text(n tree.Node) string {
	return strings.TrimSpace(n.Text(" "))
}

// firstText returns text of the first matching descendant, or "".
func firstText(n tree.Node, tag string, attrs ...tree.Attr) string {
	found, ok := n.Find(tag, attrs...)
	if !ok {
		return ""
	}
	return text(found)
}
