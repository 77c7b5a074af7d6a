// Package svg parses SVG documents into mapcolors element trees.
package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/mapcolors"
	"golang.org/x/net/html/charset"
)

// Compile-time interface verification.
var _ mapcolors.DocumentParser = (*Parser)(nil)

// Parse errors.
var (
	ErrNoRoot        = errors.New("svg: document has no root element")
	ErrMultipleRoots = errors.New("svg: document has more than one root element")
)

// XLinkNamespace is the namespace Inkscape uses for gradient hrefs.
const XLinkNamespace = "http://www.w3.org/1999/xlink"

// Parser parses SVG documents using encoding/xml in strict mode.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a complete XML document from r. Namespaced attributes are
// keyed by the first prefix declared for their namespace. The XLink
// namespace is always keyed "xlink", whatever prefix the document uses.
func (p *Parser) Parse(r io.Reader) (*mapcolors.Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	prefixes := map[string]string{XLinkNamespace: "xlink"}
	var root *mapcolors.Element
	var stack []*mapcolors.Element

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &mapcolors.Element{
				Name:  t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				if _, known := prefixes[a.Value]; a.Name.Space == "xmlns" && !known {
					prefixes[a.Value] = a.Name.Local
				}
			}
			for _, a := range t.Attr {
				el.Attrs[attrKey(a.Name, prefixes)] = a.Value
			}

			switch {
			case len(stack) == 0 && root != nil:
				return nil, ErrMultipleRoots
			case len(stack) == 0:
				root = el
			default:
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	return &mapcolors.Document{Root: root}, nil
}

// attrKey returns "prefix:local" for namespaced attributes and "local"
// otherwise. Undeclared prefixes are kept as written.
func attrKey(name xml.Name, prefixes map[string]string) string {
	if name.Space == "" {
		return name.Local
	}
	if prefix, ok := prefixes[name.Space]; ok {
		return prefix + ":" + name.Local
	}
	return name.Space + ":" + name.Local
}
