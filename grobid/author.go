package grobid

import (
	"github.com/lehigh-university-libraries/grobidmeta/helpers"
	"github.com/lehigh-university-libraries/grobidmeta/record"
	"github.com/lehigh-university-libraries/grobidmeta/tree"
)

// ExtractAuthor reads one author element. Elements present with no text
// count as absent, including affiliations. The result may be empty, in
// which case callers skip it.
func ExtractAuthor(n tree.Node) record.Author {
	author := record.Author{
		FirstName: firstText(n, "forename"),
		LastName:  firstText(n, "surname"),
		Email:     firstText(n, "email"),
		ORCID:     firstText(n, "idno", tree.Attr{Name: "type", Value: typeORCID}),
	}

	for _, el := range n.FindAll("affiliation") {
		if aff := ExtractAffiliation(el); aff.Name != "" {
			author.Affiliations = append(author.Affiliations, aff)
		}
	}

	return author
}

// ExtractAffiliation reads one affiliation element. Its name is the full
// text of the element with whitespace collapsed.
func ExtractAffiliation(n tree.Node) record.Affiliation {
	aff := record.Affiliation{
		Name: helpers.CollapseWhitespace(n.Text(" ")),
	}

	for _, org := range n.FindAll("orgName") {
		if name := text(org); name != "" {
			aff.Orgs = append(aff.Orgs, record.Org{Name: name})
		}
	}

	aff.Address = firstText(n, "addrLine")
	aff.City = firstText(n, "settlement")
	aff.Zipcode = firstText(n, "postCode")
	aff.Country = firstText(n, "country")

	return aff
}
