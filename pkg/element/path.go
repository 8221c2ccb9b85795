package element

import (
	"maps"

	"github.com/gucio321/svgen/pkg/path"
)

// Path is the <path> element. Its shape renders into the "d" attribute;
// any other attributes live in an open key/value map.
type Path struct {
	shape *path.Shape
	attrs map[string]string
	value string
}

func NewPath(shape *path.Shape) *Path {
	return &Path{shape: shape, attrs: make(map[string]string)}
}

func (p *Path) Shape() *path.Shape {
	return p.shape
}

func (p *Path) SetAttr(a Attr) *Path {
	p.attrs[a.Key()] = a.Value()
	return p
}

func (p *Path) SetValue(value string) *Path {
	p.value = value
	return p
}

func (p *Path) Name() string {
	return "path"
}

// Attributes returns the open attribute map with the formatted shape
// stored under "d".
func (p *Path) Attributes() map[string]string {
	m := maps.Clone(p.attrs)
	m[p.shape.Key()] = p.shape.Value()

	return m
}

func (p *Path) Children() []Element {
	return nil
}

func (p *Path) Value() string {
	return p.value
}
