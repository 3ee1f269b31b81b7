// Package tree defines the read-only document tree that metadata
// extractors walk, and the parser plugins that produce it.
package tree

import (
	"io"
)

// Attr is an attribute name/value pair used to narrow a Find.
type Attr struct {
	Name  string
	Value string
}

// Node is a single element of a parsed document.
//
// Tag names are matched by local name; namespace prefixes are ignored.
// Implementations must be safe for concurrent reads.
type Node interface {
	// Find returns the first descendant, in document order, with the given
	// tag whose attributes match every attr.
	Find(tag string, attrs ...Attr) (Node, bool)

	// FindAll returns every descendant with the given tag in document order.
	FindAll(tag string) []Node

	// Text returns all descendant text strings joined with sep.
	// Whitespace-only strings are included, so callers trim.
	Text(sep string) string

	// OwnText returns the concatenation of the node's direct text children.
	OwnText() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
}

// Parser is a plugin that turns raw markup into a Node tree.
type Parser interface {
	// Name returns the parser identifier (e.g., "xml", "html")
	Name() string

	// Description returns a human-readable parser description
	Description() string

	// Parse reads the whole input and returns the document node.
	Parse(r io.Reader) (Node, error)
}
