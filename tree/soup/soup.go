// Package soup provides a lenient tree parser queried through goquery.
//
// Markup is tokenized, not run through the HTML5 tree construction rules:
// every tag nests where it appears, "/>" closes non-void tags, and no tag
// switches the tokenizer into raw text (so a TEI <title/> cannot swallow
// the rest of the document). Recovery follows a forgiving markup scraper:
// an end tag closes the nearest open element with that name and any left
// open inside it, unmatched end tags are dropped and elements still open at
// the end of input are closed. Tag and attribute names are case-folded, so
// "biblStruct" and "biblstruct" are the same element.
package soup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/lehigh-university-libraries/grobidmeta/tree"
)

// Parser implements the lenient HTML-style tree parser.
type Parser struct{}

var _ tree.Parser = Parser{}

// Name returns the parser identifier.
func (Parser) Name() string {
	return "html"
}

// Description returns a human-readable parser description.
func (Parser) Description() string {
	return "Lenient markup parsing (goquery); tags are case-insensitive, malformed nesting is recovered"
}

// Parse reads the whole input. Non UTF-8 input is sniffed and decoded.
func (Parser) Parse(r io.Reader) (tree.Node, error) {
	utf8, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}

	root, err := build(html.NewTokenizer(utf8))
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	return &node{sel: goquery.NewDocumentFromNode(root).Selection}, nil
}

// build assembles the token stream into a document node.
func build(z *html.Tokenizer) (*html.Node, error) {
	root := &html.Node{Type: html.DocumentNode}
	open := []*html.Node{root}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return root, nil
			}
			return nil, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			z.NextIsNotRawText()
			tok := z.Token()
			el := &html.Node{
				Type:     html.ElementNode,
				Data:     tok.Data,
				DataAtom: tok.DataAtom,
				Attr:     tok.Attr,
			}
			open[len(open)-1].AppendChild(el)
			if tt == html.StartTagToken {
				open = append(open, el)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			for i := len(open) - 1; i > 0; i-- {
				if open[i].Data == string(name) {
					open = open[:i]
					break
				}
			}

		case html.TextToken:
			open[len(open)-1].AppendChild(&html.Node{
				Type: html.TextNode,
				Data: string(z.Text()),
			})
		}
	}
}

// New wraps an existing goquery selection; only its first node is used.
func New(sel *goquery.Selection) tree.Node {
	return &node{sel: sel.First()}
}

type node struct {
	sel *goquery.Selection
}

func (n *node) Find(tag string, attrs ...tree.Attr) (tree.Node, bool) {
	matches := n.sel.Find(strings.ToLower(tag)).FilterFunction(func(_ int, s *goquery.Selection) bool {
		for _, want := range attrs {
			v, ok := s.Attr(strings.ToLower(want.Name))
			if !ok || v != want.Value {
				return false
			}
		}
		return true
	})
	if matches.Length() == 0 {
		return nil, false
	}
	return &node{sel: matches.First()}, true
}

func (n *node) FindAll(tag string) []tree.Node {
	var nodes []tree.Node
	n.sel.Find(strings.ToLower(tag)).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &node{sel: s})
	})
	return nodes
}

func (n *node) Text(sep string) string {
	if n.sel.Length() == 0 {
		return ""
	}
	var parts []string
	collectText(n.sel.Get(0), &parts)
	return strings.Join(parts, sep)
}

func (n *node) OwnText() string {
	if n.sel.Length() == 0 {
		return ""
	}
	var sb strings.Builder
	for c := n.sel.Get(0).FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func (n *node) Attr(name string) (string, bool) {
	return n.sel.Attr(strings.ToLower(name))
}

func collectText(n *html.Node, parts *[]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			*parts = append(*parts, c.Data)
		case html.ElementNode:
			collectText(c, parts)
		}
	}
}

func init() {
	tree.Register(Parser{})
}
