// Package record defines the normalized metadata record produced for a
// single GROBID document.
//
// A field is present only when the corresponding data was found in the
// document. Empty sections are left nil so that JSON and YAML output omit
// the key entirely.
package record

import (
	"slices"
)

// Record is the metadata extracted from one document.
type Record struct {
	Authors         []Author         `json:"authors,omitempty" yaml:"authors,omitempty"`
	Affiliations    []Affiliation    `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
	Keywords        []Keyword        `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Abstract        []Abstract       `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Acknowledgments []Acknowledgment `json:"acknowledgments,omitempty" yaml:"acknowledgments,omitempty"`
	References      []Reference      `json:"references,omitempty" yaml:"references,omitempty"`

	// HasAvailabilityStatement is nil on a record that never reached
	// extraction, and always set once it has. Detection is not implemented
	// yet, so the value is currently always false.
	HasAvailabilityStatement *bool `json:"has_availability_statement,omitempty" yaml:"has_availability_statement,omitempty"`
}

// Author is a person from the document's source description.
type Author struct {
	FirstName    string        `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName     string        `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Email        string        `json:"email,omitempty" yaml:"email,omitempty"`
	ORCID        string        `json:"orcid,omitempty" yaml:"orcid,omitempty"`
	Affiliations []Affiliation `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// Affiliation is an institutional affiliation. Compare with Equal.
type Affiliation struct {
	Name    string `json:"name" yaml:"name"`
	Orgs    []Org  `json:"orgs,omitempty" yaml:"orgs,omitempty"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
	Zipcode string `json:"zipcode,omitempty" yaml:"zipcode,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// Org is one organisation name inside an affiliation.
type Org struct {
	Name string `json:"name" yaml:"name"`
}

// Keyword is a single keyword term.
type Keyword struct {
	Keyword string `json:"keyword" yaml:"keyword"`
}

// Abstract holds the document abstract.
type Abstract struct {
	Abstract string `json:"abstract" yaml:"abstract"`
}

// Acknowledgment holds the acknowledgement section text.
type Acknowledgment struct {
	Acknowledgments string `json:"acknowledgments" yaml:"acknowledgments"`
}

// Reference is a cited work. Only references carrying a DOI are kept.
type Reference struct {
	DOI string `json:"doi" yaml:"doi"`
}

// IsEmpty reports whether nothing at all was recorded, which is the
// result of a document that failed the loader gate.
func (r *Record) IsEmpty() bool {
	return r == nil || (len(r.Authors) == 0 &&
		len(r.Affiliations) == 0 &&
		len(r.Keywords) == 0 &&
		len(r.Abstract) == 0 &&
		len(r.Acknowledgments) == 0 &&
		len(r.References) == 0 &&
		r.HasAvailabilityStatement == nil)
}

// SetAvailabilityStatement sets the has_availability_statement flag.
func (r *Record) SetAvailabilityStatement(v bool) {
	r.HasAvailabilityStatement = &v
}

// IsEmpty reports whether the author carries no field and no affiliation.
func (a Author) IsEmpty() bool {
	return a.FirstName == "" &&
		a.LastName == "" &&
		a.Email == "" &&
		a.ORCID == "" &&
		len(a.Affiliations) == 0
}

// Equal reports structural equality of two affiliations, including the
// order of their organisation names.
func (a Affiliation) Equal(b Affiliation) bool {
	return a.Name == b.Name &&
		a.Address == b.Address &&
		a.City == b.City &&
		a.Zipcode == b.Zipcode &&
		a.Country == b.Country &&
		slices.Equal(a.Orgs, b.Orgs)
}

// AppendUnique appends each affiliation not already structurally present
// in list, preserving first-seen order.
func AppendUnique(list []Affiliation, affs ...Affiliation) []Affiliation {
	for _, aff := range affs {
		if !slices.ContainsFunc(list, aff.Equal) {
			list = append(list, aff)
		}
	}
	return list
}
