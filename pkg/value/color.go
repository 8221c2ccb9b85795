package value

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// Color is an RGB color with float32 channels in [0,1].
type Color struct {
	R, G, B float32
}

var (
	Red    = Color{1, 0, 0}
	Green  = Color{0, 1, 0}
	Blue   = Color{0, 0, 1}
	Black  = Color{0, 0, 0}
	White  = Color{1, 1, 1}
	Yellow = Color{1, 1, 0}
	Purple = Color{1, 0, 1}
	Cyan   = Color{0, 1, 1}
)

var ErrNotAColor = errors.New("not a color")

func NewColor(r, g, b float32) Color {
	return Color{r, g, b}
}

// FromRGB builds a color from 0-255 channel bytes.
func FromRGB(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// ParseColor reads a 6-digit hex color, with or without a leading '#'.
func ParseColor(s string) (Color, error) {
	if len(s) < 6 || len(s) > 7 {
		return Color{}, fmt.Errorf("%q: %w", s, ErrNotAColor)
	}

	if len(s) == 7 {
		if s[0] != '#' {
			return Color{}, fmt.Errorf("%q: %w", s, ErrNotAColor)
		}

		s = s[1:]
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("%q: %w", s, err)
	}

	return FromRGB(raw[0], raw[1], raw[2]), nil
}

// Keyword resolves an SVG 1.1 color keyword such as "tomato" or
// "steelblue".
func Keyword(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}

	return FromRGB(c.R, c.G, c.B), true
}

// Add sums two colors channel-wise, clamping each channel at 1.
func (c Color) Add(other Color) Color {
	return Color{
		math32.Min(c.R+other.R, 1),
		math32.Min(c.G+other.G, 1),
		math32.Min(c.B+other.B, 1),
	}
}

// Average mixes two colors in equal parts.
func (c Color) Average(other Color) Color {
	return Color{
		(c.R + other.R) / 2,
		(c.G + other.G) / 2,
		(c.B + other.B) / 2,
	}
}

// RGB returns the color as 0-255 channel bytes.
func (c Color) RGB() (r, g, b uint8) {
	return hexByte(c.R), hexByte(c.G), hexByte(c.B)
}

// HexCode renders the color as "#RRGGBB".
func (c Color) HexCode() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func (c Color) String() string {
	return c.HexCode()
}

// hexByte maps a [0,1] channel onto a byte, clamping out-of-range
// values first.
func hexByte(v float32) uint8 {
	v = math32.Max(0, math32.Min(1, v))
	return uint8(math32.Floor(255 * v))
}
