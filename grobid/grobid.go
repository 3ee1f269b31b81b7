// Package grobid extracts bibliographic metadata from GROBID TEI documents.
//
// Load and LoadReader gate a document on its generator version and return
// a typed *LoadError on failure. Extract, ExtractWith and ExtractReader
// collapse every failure into an empty record, so callers that only want
// "metadata or nothing" never see an error.
package grobid

import (
	"log/slog"
	"slices"

	"github.com/lehigh-university-libraries/grobidmeta/tree"
	"github.com/lehigh-university-libraries/grobidmeta/tree/xmltree"
)

// GeneratorIdent is the ident of the TEI application element written by GROBID.
const GeneratorIdent = "GROBID"

// Options configures a load.
type Options struct {
	// Versions lists the accepted GROBID versions, compared verbatim.
	Versions []string

	// Parser builds the document tree. Defaults to the strict XML parser.
	Parser tree.Parser

	// Logger receives debug diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) parser() tree.Parser {
	if o.Parser != nil {
		return o.Parser
	}
	return xmltree.Parser{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) accepts(version string) bool {
	return slices.Contains(o.Versions, version)
}
