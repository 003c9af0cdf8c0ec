package msbuild

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// span is a half-open byte range of the source.
type span struct {
	start, end int
}

// startTagSpans returns the source range of every start tag in document
// order. Self-closing tags include the closing "/>".
func startTagSpans(data []byte) ([]span, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var spans []span
	for {
		start := dec.InputOffset()
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			return spans, nil
		}
		if err != nil {
			return nil, err
		}
		if _, ok := tok.(xml.StartElement); ok {
			spans = append(spans, span{start: int(start), end: int(dec.InputOffset())})
		}
	}
}

func attrMap(el *etree.Element) map[string]string {
	m := make(map[string]string, len(el.Attr))
	for _, a := range el.Attr {
		m[a.FullKey()] = a.Value
	}
	return m
}

func sameAttrs(orig map[string]string, el *etree.Element) bool {
	if len(orig) != len(el.Attr) {
		return false
	}
	for _, a := range el.Attr {
		if v, ok := orig[a.FullKey()]; !ok || v != a.Value {
			return false
		}
	}
	return true
}

// rawAttr locates one attribute inside a start tag. lead is where the
// whitespace before the name begins; value is the range between the quotes.
type rawAttr struct {
	name  string
	lead  int
	value span
	quote byte
}

// scanStartTag splits a start tag into its attributes. tail is the offset
// right after the last attribute (or the element name), where new
// attributes are inserted.
func scanStartTag(tag []byte) (attrs []rawAttr, tail int, err error) {
	i := 1
	for i < len(tag) && !isSpace(tag[i]) && tag[i] != '/' && tag[i] != '>' {
		i++
	}
	for {
		tail = i
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i >= len(tag) {
			return nil, 0, errors.New("unterminated start tag")
		}
		if tag[i] == '/' || tag[i] == '>' {
			return attrs, tail, nil
		}

		nameStart := i
		for i < len(tag) && tag[i] != '=' && !isSpace(tag[i]) {
			i++
		}
		name := string(tag[nameStart:i])
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i >= len(tag) || tag[i] != '=' {
			return nil, 0, fmt.Errorf("attribute %q has no value", name)
		}
		i++
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i >= len(tag) || (tag[i] != '"' && tag[i] != '\'') {
			return nil, 0, fmt.Errorf("attribute %q is not quoted", name)
		}
		quote := tag[i]
		end := bytes.IndexByte(tag[i+1:], quote)
		if end < 0 {
			return nil, 0, fmt.Errorf("attribute %q is not terminated", name)
		}
		attrs = append(attrs, rawAttr{
			name:  name,
			lead:  tail,
			value: span{start: i + 1, end: i + 1 + end},
			quote: quote,
		})
		i += end + 2
	}
}

// spliceStartTag rewrites tag so its attributes match current. Untouched
// attributes keep their source text, removed ones are cut together with
// their leading whitespace, changed values are replaced inside the original
// quotes, and new attributes are appended after the last one.
func spliceStartTag(tag []byte, orig map[string]string, current []etree.Attr) ([]byte, error) {
	attrs, tail, err := scanStartTag(tag)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(current))
	for _, a := range current {
		values[a.FullKey()] = a.Value
	}

	var b bytes.Buffer
	pos := 0
	for _, a := range attrs {
		v, keep := values[a.name]
		switch {
		case !keep:
			b.Write(tag[pos:a.lead])
			pos = a.value.end + 1
		case v != orig[a.name]:
			b.Write(tag[pos:a.value.start])
			b.WriteString(escapeAttr(v, a.quote))
			pos = a.value.end
		}
	}
	b.Write(tag[pos:tail])
	for _, a := range current {
		if _, existed := orig[a.FullKey()]; !existed {
			fmt.Fprintf(&b, ` %s="%s"`, a.FullKey(), escapeAttr(a.Value, '"'))
		}
	}
	b.Write(tag[tail:])
	return b.Bytes(), nil
}

var (
	doubleQuoteEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;", "\n", "&#xA;", "\r", "&#xD;", "\t", "&#x9;")
	singleQuoteEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", "'", "&apos;", "\n", "&#xA;", "\r", "&#xD;", "\t", "&#x9;")
)

func escapeAttr(v string, quote byte) string {
	if quote == '\'' {
		return singleQuoteEscaper.Replace(v)
	}
	return doubleQuoteEscaper.Replace(v)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
