package msbuild

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"
	"github.com/indaco/scafsln/internal/core"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a parsed MSBuild file. Only attribute edits are supported;
// Bytes writes them back into the original source, so everything outside
// an edited start tag keeps its bytes.
type Document struct {
	// Path is where the document was read from and will be saved to.
	Path string

	doc *etree.Document
	bom bool
	raw []byte

	// elements holds every element in document order, root first.
	// tags[i] is the source span of elements[i]'s start tag and
	// attrs[i] its attributes as parsed.
	elements []*etree.Element
	tags     []span
	attrs    []map[string]string
}

// Parse parses data as an XML document. Malformed input and documents
// without a root element fail with *core.ParseError.
func Parse(path string, data []byte) (*Document, error) {
	d := &Document{Path: path, doc: etree.NewDocument()}
	if rest, ok := bytes.CutPrefix(data, utf8BOM); ok {
		d.bom = true
		data = rest
	}
	if err := d.doc.ReadFromBytes(data); err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	if d.doc.Root() == nil {
		return nil, &core.ParseError{Path: path, Err: errNoRoot}
	}

	tags, err := startTagSpans(data)
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	var walk func(*etree.Element)
	walk = func(el *etree.Element) {
		d.elements = append(d.elements, el)
		d.attrs = append(d.attrs, attrMap(el))
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(d.doc.Root())
	if len(tags) != len(d.elements) {
		return nil, &core.ParseError{Path: path, Err: fmt.Errorf("found %d start tags for %d elements", len(tags), len(d.elements))}
	}

	d.raw = data
	d.tags = tags
	return d, nil
}

// Bytes returns the source with every attribute edit applied to its start
// tag, restoring a byte order mark if the source had one.
func (d *Document) Bytes() ([]byte, error) {
	var out bytes.Buffer
	if d.bom {
		out.Write(utf8BOM)
	}

	last := 0
	for i, el := range d.elements {
		if sameAttrs(d.attrs[i], el) {
			continue
		}
		tag := d.tags[i]
		edited, err := spliceStartTag(d.raw[tag.start:tag.end], d.attrs[i], el.Attr)
		if err != nil {
			return nil, fmt.Errorf("element <%s>: %w", el.FullTag(), err)
		}
		out.Write(d.raw[last:tag.start])
		out.Write(edited)
		last = tag.end
	}
	out.Write(d.raw[last:])
	return out.Bytes(), nil
}

// Root returns the document element.
func (d *Document) Root() *Element {
	return &Element{el: d.doc.Root()}
}

// FindElements returns every element below the root, at any depth and in
// document order, for which pred returns true. A nil pred matches all.
func (d *Document) FindElements(pred func(*Element) bool) []*Element {
	var found []*Element
	var walk func(*etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			e := &Element{el: child}
			if pred == nil || pred(e) {
				found = append(found, e)
			}
			walk(child)
		}
	}
	walk(d.doc.Root())
	return found
}

// ElementsNamed returns every element whose local name is name.
func (d *Document) ElementsNamed(name string) []*Element {
	return d.FindElements(func(e *Element) bool {
		return e.Name() == name
	})
}
