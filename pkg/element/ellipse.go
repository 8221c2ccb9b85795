package element

import (
	"maps"
	"strconv"

	"github.com/gucio321/svgen/pkg/path"
)

// Ellipse is the <ellipse> element: a center point and a radius pair.
type Ellipse struct {
	center, radius path.Point
	attrs          map[string]string
	value          string
}

func NewEllipse(center, radius path.Point) *Ellipse {
	return &Ellipse{center: center, radius: radius, attrs: make(map[string]string)}
}

func (e *Ellipse) Center() path.Point {
	return e.center
}

func (e *Ellipse) Radius() path.Point {
	return e.radius
}

func (e *Ellipse) SetAttr(a Attr) *Ellipse {
	e.attrs[a.Key()] = a.Value()
	return e
}

func (e *Ellipse) SetValue(value string) *Ellipse {
	e.value = value
	return e
}

func (e *Ellipse) Name() string {
	return "ellipse"
}

func (e *Ellipse) Attributes() map[string]string {
	m := maps.Clone(e.attrs)
	m["cx"] = fmtCoord(e.center.X)
	m["cy"] = fmtCoord(e.center.Y)
	m["rx"] = fmtCoord(e.radius.X)
	m["ry"] = fmtCoord(e.radius.Y)

	return m
}

func (e *Ellipse) Children() []Element {
	return nil
}

func (e *Ellipse) Value() string {
	return e.value
}

func fmtCoord(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
