// Package xmltree provides a strict XML tree parser backed by etree.
//
// Elements are matched by local name, so documents using the TEI default
// namespace (or a prefixed one) are queried with plain tag names such as
// "sourceDesc" or "biblStruct". Matching is case-sensitive.
package xmltree

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/lehigh-university-libraries/grobidmeta/tree"
)

// ErrNoRoot is returned when the input holds no root element.
var ErrNoRoot = errors.New("document has no root element")

// Parser implements the strict XML tree parser.
type Parser struct{}

var _ tree.Parser = Parser{}

// Name returns the parser identifier.
func (Parser) Name() string {
	return "xml"
}

// Description returns a human-readable parser description.
func (Parser) Description() string {
	return "Strict XML (etree); malformed markup is rejected"
}

// Parse reads an XML document. Encodings other than UTF-8 are decoded
// according to the XML declaration.
func (Parser) Parse(r io.Reader) (tree.Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel

	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading xml: %w", err)
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}

	return &node{el: &doc.Element}, nil
}

// New wraps an already parsed etree element.
func New(el *etree.Element) tree.Node {
	return &node{el: el}
}

type node struct {
	el *etree.Element
}

func (n *node) Find(tag string, attrs ...tree.Attr) (tree.Node, bool) {
	var found *etree.Element
	walk(n.el, func(e *etree.Element) bool {
		if e.Tag == tag && hasAttrs(e, attrs) {
			found = e
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return &node{el: found}, true
}

func (n *node) FindAll(tag string) []tree.Node {
	var nodes []tree.Node
	walk(n.el, func(e *etree.Element) bool {
		if e.Tag == tag {
			nodes = append(nodes, &node{el: e})
		}
		return true
	})
	return nodes
}

func (n *node) Text(sep string) string {
	var parts []string
	collectText(n.el, &parts)
	return strings.Join(parts, sep)
}

func (n *node) OwnText() string {
	var sb strings.Builder
	for _, tok := range n.el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return sb.String()
}

func (n *node) Attr(name string) (string, bool) {
	for _, a := range n.el.Attr {
		if a.Key == name {
			return a.Value, true
		}
	}
	return "", false
}

// walk visits the descendants of e in document order until visit
// returns false. It reports whether the walk ran to completion.
func walk(e *etree.Element, visit func(*etree.Element) bool) bool {
	for _, child := range e.ChildElements() {
		if !visit(child) {
			return false
		}
		if !walk(child, visit) {
			return false
		}
	}
	return true
}

func hasAttrs(e *etree.Element, attrs []tree.Attr) bool {
	for _, want := range attrs {
		v, ok := (&node{el: e}).Attr(want.Name)
		if !ok || v != want.Value {
			return false
		}
	}
	return true
}

func collectText(e *etree.Element, parts *[]string) {
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			*parts = append(*parts, t.Data)
		case *etree.Element:
			collectText(t, parts)
		}
	}
}

func init() {
	tree.Register(Parser{})
}
