// Package document parses service XML into a small element tree.
//
// Record types only ever look at element names and their inner text, so the
// tree keeps nothing else: attributes, comments and processing instructions
// are dropped while the document is decoded.
package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tvdbx/tvdbx/filesystem"
	"github.com/tvdbx/tvdbx/util"
	"golang.org/x/net/html/charset"
)

// ErrEmpty is returned when a document has no root element.
var ErrEmpty = errors.New("document has no root element")

// Node is one XML element.
type Node struct {
	// Name is the local element name as written in the document.
	Name string
	// Text is the concatenated character data of the element and all of its
	// descendants. Whitespace-only runs are dropped.
	Text string
	// Children are the immediate child elements in document order.
	Children []*Node
}

// Is reports whether the element is named name, ignoring case.
func (n *Node) Is(name string) bool {
	return n != nil && strings.EqualFold(n.Name, name)
}

// ChildrenNamed returns the immediate children called name, ignoring case.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}

	var named []*Node
	for _, child := range n.Children {
		if child.Is(name) {
			named = append(named, child)
		}
	}
	return named
}

// Document is a parsed XML document.
type Document struct {
	// Nodes are the top-level elements. A well-formed document has exactly one.
	Nodes []*Node
}

// Container returns the last top-level element, the one holding the records.
func (d *Document) Container() *Node {
	if d == nil || len(d.Nodes) == 0 {
		return nil
	}
	return d.Nodes[len(d.Nodes)-1]
}

// Parse decodes an XML document from r. Documents normally arrive as UTF-8;
// other declared encodings are transcoded.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		doc   Document
		stack []*Node
		texts []*strings.Builder
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name.Local}
			if len(stack) == 0 {
				doc.Nodes = append(doc.Nodes, node)
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
			texts = append(texts, &strings.Builder{})
		case xml.CharData:
			if len(stack) == 0 || len(bytes.TrimSpace(t)) == 0 {
				continue
			}
			for _, b := range texts {
				b.Write(t)
			}
		case xml.EndElement:
			last := len(stack) - 1
			stack[last].Text = texts[last].String()
			stack, texts = stack[:last], texts[:last]
		}
	}

	if len(doc.Nodes) == 0 {
		return nil, ErrEmpty
	}

	return &doc, nil
}

// ParseBytes decodes an in-memory document, such as a downloaded response.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// Open reads and parses the document at path on the active filesystem.
// The file is closed before Open returns, whatever the outcome.
func Open(path string) (*Document, error) {
	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(file.Close)

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
