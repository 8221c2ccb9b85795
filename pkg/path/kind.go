package path

// Kind selects one of the ten SVG path command types.
type Kind int

const (
	// M - set a new current point
	MoveTo Kind = iota
	// L - straight line to a point
	LineTo
	// H - straight horizontal line
	HorizontalLineTo
	// V - straight vertical line
	VerticalLineTo
	// C - cubic Bezier curve with two control points
	CubicBezierCurve
	// S - cubic Bezier curve continuing the previous one (first control point mirrored)
	CubicBezierCurveSmooth
	// Q - quadratic Bezier curve with one control point
	QuadraticBezierCurve
	// T - quadratic Bezier curve with the control point mirrored from the previous one
	QuadraticBezierCurveSmooth
	// A - elliptical arc
	EllipticalArcCurve
	// Z - close the current subpath
	ClosePath
)

var kindNames = [...]string{
	MoveTo:                     "MoveTo",
	LineTo:                     "LineTo",
	HorizontalLineTo:           "HorizontalLineTo",
	VerticalLineTo:             "VerticalLineTo",
	CubicBezierCurve:           "CubicBezierCurve",
	CubicBezierCurveSmooth:     "CubicBezierCurveSmooth",
	QuadraticBezierCurve:       "QuadraticBezierCurve",
	QuadraticBezierCurveSmooth: "QuadraticBezierCurveSmooth",
	EllipticalArcCurve:         "EllipticalArcCurve",
	ClosePath:                  "ClosePath",
}

func (k Kind) String() string {
	if k < MoveTo || k > ClosePath {
		return "Unknown"
	}

	return kindNames[k]
}

// Letter returns the canonical (absolute-mode) command letter.
func (k Kind) Letter() byte {
	switch k {
	case MoveTo:
		return 'M'
	case LineTo:
		return 'L'
	case HorizontalLineTo:
		return 'H'
	case VerticalLineTo:
		return 'V'
	case CubicBezierCurve:
		return 'C'
	case CubicBezierCurveSmooth:
		return 'S'
	case QuadraticBezierCurve:
		return 'Q'
	case QuadraticBezierCurveSmooth:
		return 'T'
	case EllipticalArcCurve:
		return 'A'
	case ClosePath:
		return 'Z'
	}

	return 0
}

var kindByLetter = func() map[byte]Kind {
	m := make(map[byte]Kind)
	for k := MoveTo; k <= ClosePath; k++ {
		m[k.Letter()] = k
	}

	return m
}()
