package element

import (
	"fmt"

	"github.com/gucio321/svgen/pkg/value"
)

// Fill is the "fill" presentation attribute: a plain color, a paint
// server reference or a custom expression.
type Fill struct {
	color  value.Color
	custom string
}

func FillColor(c value.Color) Fill {
	return Fill{color: c}
}

// FillURL references a paint server such as a gradient by element id.
func FillURL(id string) Fill {
	return Fill{custom: fmt.Sprintf("url(#%s)", id)}
}

// FillCustom passes the value through untouched.
func FillCustom(s string) Fill {
	return Fill{custom: s}
}

func (f Fill) Key() string {
	return "fill"
}

func (f Fill) Value() string {
	if f.custom != "" {
		return f.custom
	}

	return f.color.String()
}

// Stroke is the "stroke" presentation attribute.
type Stroke struct {
	Color value.Color
}

func (s Stroke) Key() string {
	return "stroke"
}

func (s Stroke) Value() string {
	return s.Color.String()
}

// StrokeWidth is the "stroke-width" presentation attribute.
type StrokeWidth struct {
	Width value.Length
}

func (s StrokeWidth) Key() string {
	return "stroke-width"
}

func (s StrokeWidth) Value() string {
	return s.Width.String()
}

// Display is the "display" attribute; it accepts any of the display
// keyword types from pkg/value.
type Display struct {
	Keyword fmt.Stringer
}

func (d Display) Key() string {
	return "display"
}

func (d Display) Value() string {
	return d.Keyword.String()
}
