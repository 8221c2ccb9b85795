// Package element models SVG document nodes and renders them to XML.
package element

import "maps"

// Element is one node of an SVG document tree.
type Element interface {
	// Name is the XML tag name.
	Name() string
	// Attributes returns the node's flat attribute map. Implementations
	// return a copy; mutating the result does not affect the element.
	Attributes() map[string]string
	Children() []Element
	// Value is the node's text content, empty if none.
	Value() string
}

// Attr is a typed attribute that renders itself to a key/value pair.
type Attr interface {
	Key() string
	Value() string
}

// Pair is a free-form string attribute.
type Pair struct {
	K, V string
}

func (p Pair) Key() string {
	return p.K
}

func (p Pair) Value() string {
	return p.V
}

// Generic is an element with an arbitrary name, used for containers and
// elements that have no dedicated type.
type Generic struct {
	name     string
	attrs    map[string]string
	children []Element
	value    string
}

func New(name string) *Generic {
	return &Generic{name: name, attrs: make(map[string]string)}
}

func (g *Generic) SetAttr(a Attr) *Generic {
	g.attrs[a.Key()] = a.Value()
	return g
}

func (g *Generic) AppendChild(children ...Element) *Generic {
	g.children = append(g.children, children...)
	return g
}

func (g *Generic) SetValue(value string) *Generic {
	g.value = value
	return g
}

func (g *Generic) Name() string {
	return g.name
}

func (g *Generic) Attributes() map[string]string {
	return maps.Clone(g.attrs)
}

func (g *Generic) Children() []Element {
	return g.children
}

func (g *Generic) Value() string {
	return g.value
}
