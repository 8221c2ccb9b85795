// Package svgen builds SVG documents from typed elements and renders
// them to XML.
package svgen

import (
	"io"
	"strconv"

	"github.com/gucio321/svgen/pkg/element"
)

const xmlns = "http://www.w3.org/2000/svg"

// Document is a whole SVG document: the <svg> root carrying a viewBox
// and the child elements appended to it, in order.
type Document struct {
	width, height float32
	children      []element.Element
}

func NewDocument(width, height float32) *Document {
	return &Document{width: width, height: height}
}

func (d *Document) Add(children ...element.Element) *Document {
	d.children = append(d.children, children...)
	return d
}

// Root builds the <svg> root element with the document's children
// attached.
func (d *Document) Root() *element.Generic {
	root := element.New("svg").
		SetAttr(element.Pair{K: "viewBox", V: "0 0 " + fmtF32(d.width) + " " + fmtF32(d.height)}).
		SetAttr(element.Pair{K: "xmlns", V: xmlns})

	return root.AppendChild(d.children...)
}

func (d *Document) Write(w io.Writer) error {
	return element.WriteXML(w, d.Root())
}

func (d *Document) String() string {
	return element.ToXML(d.Root())
}

func fmtF32(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
