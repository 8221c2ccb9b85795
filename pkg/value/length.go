// Package value provides the CSS/SVG attribute value types: lengths,
// colors, display and position keywords, clock values. Every type
// renders itself to the string form SVG attributes expect.
package value

import "strconv"

// Unit is a CSS length unit.
type Unit int

const (
	// UnitNone renders no suffix; the number is a user-space length.
	UnitNone Unit = iota
	Pixels
	Points
	Picas
	Inches
	QuarterMillimeters
	Millimeters
	Centimeters
	FontSize
	FontXSize
	CharacterAdvance
	RootFontSize
	ViewportWidth
	ViewportHeight
	ViewportMin
	ViewportMax
)

func (u Unit) String() string {
	switch u {
	case Pixels:
		return "px"
	case Points:
		return "pt"
	case Picas:
		return "pc"
	case Inches:
		return "in"
	case QuarterMillimeters:
		return "Q"
	case Millimeters:
		return "mm"
	case Centimeters:
		return "cm"
	case FontSize:
		return "em"
	case FontXSize:
		return "ex"
	case CharacterAdvance:
		return "ch"
	case RootFontSize:
		return "rem"
	case ViewportWidth:
		return "vw"
	case ViewportHeight:
		return "vh"
	case ViewportMin:
		return "vmin"
	case ViewportMax:
		return "vmax"
	}

	return ""
}

// Length is a number with an optional unit, e.g. "10px" or "3.5".
type Length struct {
	Value float64
	Unit  Unit
}

func NewLength(v float64, u Unit) Length {
	return Length{Value: v, Unit: u}
}

func (l Length) String() string {
	return formatNumber(l.Value) + l.Unit.String()
}

// LengthPercentage is either a Length or a bare percentage.
type LengthPercentage struct {
	length    Length
	percent   float64
	isPercent bool
}

func FromLength(l Length) LengthPercentage {
	return LengthPercentage{length: l}
}

func FromPercent(v float64) LengthPercentage {
	return LengthPercentage{percent: v, isPercent: true}
}

func (lp LengthPercentage) String() string {
	if lp.isPercent {
		return formatNumber(lp.percent) + "%"
	}

	return lp.length.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
