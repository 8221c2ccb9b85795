package path

import "strconv"

// Point is a 2D coordinate pair. Whether it means absolute coordinates
// or deltas from the current point depends on the owning command's
// Relative flag.
type Point struct {
	X, Y float32
}

func Pt(x, y float32) Point {
	return Point{x, y}
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Mul(scalar float32) Point {
	return Point{p.X * scalar, p.Y * scalar}
}

// String renders the point as a comma-joined tuple with no spaces - the
// form path data uses for coordinate pairs.
func (p Point) String() string {
	return formatScalar(p.X) + "," + formatScalar(p.Y)
}

// formatScalar renders a float32 in its shortest decimal form, never
// with an exponent.
func formatScalar(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
