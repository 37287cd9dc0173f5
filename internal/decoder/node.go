package decoder

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// attrPrefix marks attribute keys in decoded nodes, the same convention
// attribute-prefixing XML object mappers use.
const attrPrefix = "@_"

// node is one XML element decoded into generic form: attributes under
// prefixed keys, child elements in document order and accumulated text.
type node struct {
	attrs    map[string]string
	children []child
	text     string
	cdata    bool
}

type child struct {
	name string
	node *node
}

// docDecoder decodes a whole XML document into a node tree. It keeps the
// raw document around because the stock decoder reports CDATA sections
// and plain character data identically, so CDATA has to be detected by
// looking at the raw bytes of each text token.
type docDecoder struct {
	raw string
	dec *xml.Decoder
}

func newDocDecoder(raw string) *docDecoder {
	dec := xml.NewDecoder(strings.NewReader(raw))
	dec.Strict = true

	return &docDecoder{
		raw: raw,
		dec: dec,
	}
}

// decode decodes the document and returns the root element name with its node.
func (d *docDecoder) decode() (string, *node, error) {
	for {
		token, err := d.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", nil, ErrEmptyDocument
			}
			return "", nil, err
		}

		if start, ok := token.(xml.StartElement); ok {
			root, err := d.decodeElement(&start)
			if err != nil {
				return "", nil, err
			}
			return start.Name.Local, root, nil
		}
	}
}

func (d *docDecoder) decodeElement(start *xml.StartElement) (*node, error) {
	result := &node{
		attrs: make(map[string]string, len(start.Attr)),
	}
	for _, attr := range start.Attr {
		result.attrs[attrPrefix+attr.Name.Local] = attr.Value
	}

	var text strings.Builder

	for {
		before := d.dec.InputOffset()
		token, err := d.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		switch element := token.(type) {
		case xml.StartElement:
			childNode, err := d.decodeElement(&element)
			if err != nil {
				return nil, err
			}
			result.children = append(result.children, child{name: element.Name.Local, node: childNode})
		case xml.CharData:
			chunk := strings.TrimSpace(string(element))
			if chunk == "" {
				continue
			}
			text.WriteString(chunk)
			if strings.Contains(d.raw[before:d.dec.InputOffset()], "<![CDATA[") {
				result.cdata = true
			}
		case xml.EndElement:
			result.text = text.String()
			return result, nil
		}
	}

	result.text = text.String()
	return result, nil
}

// childByName returns the first child element with provided name or nil.
func (n *node) childByName(name string) *node {
	for ix := range n.children {
		if n.children[ix].name == name {
			return n.children[ix].node
		}
	}
	return nil
}

// childList returns all child elements with provided name. A group with
// cardinality one comes back the same way as a repeated group, as a list.
func (n *node) childList(name string) []*node {
	var result []*node
	for ix := range n.children {
		if n.children[ix].name == name {
			result = append(result, n.children[ix].node)
		}
	}
	return result
}

// attr returns attribute value by its unprefixed name.
func (n *node) attr(name string) string {
	return n.attrs[attrPrefix+name]
}

// fieldText resolves a field value: child element text first, then a
// same-named attribute, then the fallback. The chain applies uniformly
// to every shop-level field.
func (n *node) fieldText(name, fallback string) string {
	if field := n.childByName(name); field != nil && field.text != "" {
		return field.text
	}
	if value := n.attr(name); value != "" {
		return value
	}
	return fallback
}
