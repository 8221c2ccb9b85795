package element

import (
	"encoding/xml"
	"io"
	"sort"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// WriteXML writes the element tree rooted at el, preceded by the XML
// declaration. Attributes are emitted sorted by key so output is
// deterministic; attribute values and text content are escaped, which
// turns the newlines separating path commands into &#xA;.
func WriteXML(w io.Writer, el Element) error {
	ew := &errWriter{w: w}
	ew.writeString(xmlHeader)
	writeNode(ew, el)

	return ew.err
}

// ToXML renders the element tree to a string.
func ToXML(el Element) string {
	var sb strings.Builder
	_ = WriteXML(&sb, el)

	return sb.String()
}

func writeNode(ew *errWriter, el Element) {
	ew.writeString("<" + el.Name())

	attrs := el.Attributes()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		ew.writeString(" " + k + `="`)
		ew.escape(attrs[k])
		ew.writeString(`"`)
	}

	children := el.Children()
	value := el.Value()
	if len(children) == 0 && value == "" {
		ew.writeString(" />")
		return
	}

	ew.writeString(">")
	if value != "" {
		ew.escape(value)
	}

	for _, child := range children {
		writeNode(ew, child)
	}

	ew.writeString("</" + el.Name() + ">")
}

// errWriter keeps the first write error and turns later writes into
// no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil {
		return
	}

	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) escape(s string) {
	if ew.err != nil {
		return
	}

	ew.err = xml.EscapeText(ew.w, []byte(s))
}
