package msbuild

import (
	"errors"

	"github.com/beevik/etree"
)

var errNoRoot = errors.New("document has no root element")

// Element is a single node of a Document. Edits are applied in place.
type Element struct {
	el *etree.Element
}

// Name returns the local name, without any namespace prefix.
func (e *Element) Name() string {
	return e.el.Tag
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	a := e.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// SetAttr sets an attribute. An existing attribute keeps its position; a new
// one is appended after the others.
func (e *Element) SetAttr(name, value string) {
	e.el.CreateAttr(name, value)
}

// RemoveAttr deletes an attribute and reports whether it was present.
func (e *Element) RemoveAttr(name string) bool {
	return e.el.RemoveAttr(name) != nil
}

// AttrNames lists attribute keys in document order.
func (e *Element) AttrNames() []string {
	names := make([]string, 0, len(e.el.Attr))
	for _, a := range e.el.Attr {
		names = append(names, a.FullKey())
	}
	return names
}
