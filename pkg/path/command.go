// Package path models SVG path data ("d" attribute) as a structured
// command sequence and converts between it and its textual form.
package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a single path command: a kind, a relative/absolute mode
// and the numeric arguments the kind carries.
//
// Movement is the command's endpoint (or delta when Relative). For
// HorizontalLineTo and VerticalLineTo only one axis is meaningful; the
// other is kept as 0 and never emitted.
type Command struct {
	Kind     Kind
	Relative bool
	Movement Point

	// Control1 and Control2 are Bezier control points. CubicBezierCurve
	// uses both (start and end control), CubicBezierCurveSmooth and
	// QuadraticBezierCurve use Control1 only.
	Control1, Control2 Point

	// Elliptical arc parameters.
	Rx, Ry, Angle   float32
	LargeArc, Sweep bool
}

func NewMoveTo(movement Point) Command {
	return Command{Kind: MoveTo, Movement: movement}
}

func NewLineTo(movement Point) Command {
	return Command{Kind: LineTo, Movement: movement}
}

func NewHorizontalLineTo(to float32) Command {
	return Command{Kind: HorizontalLineTo, Movement: Point{X: to}}
}

func NewVerticalLineTo(to float32) Command {
	return Command{Kind: VerticalLineTo, Movement: Point{Y: to}}
}

func NewCubicBezierCurve(movement, controlStart, controlEnd Point) Command {
	return Command{Kind: CubicBezierCurve, Movement: movement, Control1: controlStart, Control2: controlEnd}
}

func NewCubicBezierCurveSmooth(movement, control Point) Command {
	return Command{Kind: CubicBezierCurveSmooth, Movement: movement, Control1: control}
}

func NewQuadraticBezierCurve(movement, control Point) Command {
	return Command{Kind: QuadraticBezierCurve, Movement: movement, Control1: control}
}

func NewQuadraticBezierCurveSmooth(movement Point) Command {
	return Command{Kind: QuadraticBezierCurveSmooth, Movement: movement}
}

func NewEllipticalArcCurve(movement Point, rx, ry, angle float32, largeArc, sweep bool) Command {
	return Command{
		Kind:     EllipticalArcCurve,
		Movement: movement,
		Rx:       rx,
		Ry:       ry,
		Angle:    angle,
		LargeArc: largeArc,
		Sweep:    sweep,
	}
}

func NewClose() Command {
	return Command{Kind: ClosePath}
}

// Rel returns a copy of the command marked relative, so its arguments
// are read as offsets from the current point.
func (c Command) Rel() Command {
	c.Relative = true
	return c
}

// ParseCommand parses a single command token group: the command letter
// followed by its whitespace-separated arguments, e.g. "C 1,1 2,2 3,3".
// A lowercase letter marks the command relative.
func ParseCommand(s string) (Command, error) {
	splits := strings.Fields(s)
	if len(splits) == 0 || len(splits[0]) > 1 {
		return Command{}, fmt.Errorf("%q: %w", s, ErrNotACommand)
	}

	letter := splits[0][0]
	kind, ok := kindByLetter[upper(letter)]
	if !ok {
		return Command{}, fmt.Errorf("%q: %w", s, ErrNotACommand)
	}

	cmd, err := parseArgs(kind, splits[1:])
	if err != nil {
		return Command{}, fmt.Errorf("command %c: %w", letter, err)
	}

	if letter >= 'a' && letter <= 'z' {
		cmd = cmd.Rel()
	}

	return cmd, nil
}

// parseArgs consumes the fixed argument list of the given kind. Note
// that curve arguments are written control points first, endpoint last,
// while the Command struct stores the endpoint as Movement.
func parseArgs(kind Kind, args []string) (Command, error) {
	switch kind {
	case MoveTo, LineTo:
		movement, err := tupleArg(args, 0)
		if err != nil {
			return Command{}, err
		}

		if kind == MoveTo {
			return NewMoveTo(movement), nil
		}

		return NewLineTo(movement), nil
	case HorizontalLineTo, VerticalLineTo:
		to, err := scalarArg(args, 0)
		if err != nil {
			return Command{}, err
		}

		if kind == HorizontalLineTo {
			return NewHorizontalLineTo(to), nil
		}

		return NewVerticalLineTo(to), nil
	case CubicBezierCurve:
		controlStart, err := tupleArg(args, 0)
		if err != nil {
			return Command{}, err
		}

		controlEnd, err := tupleArg(args, 1)
		if err != nil {
			return Command{}, err
		}

		movement, err := tupleArg(args, 2)
		if err != nil {
			return Command{}, err
		}

		return NewCubicBezierCurve(movement, controlStart, controlEnd), nil
	case CubicBezierCurveSmooth, QuadraticBezierCurve:
		control, err := tupleArg(args, 0)
		if err != nil {
			return Command{}, err
		}

		movement, err := tupleArg(args, 1)
		if err != nil {
			return Command{}, err
		}

		if kind == CubicBezierCurveSmooth {
			return NewCubicBezierCurveSmooth(movement, control), nil
		}

		return NewQuadraticBezierCurve(movement, control), nil
	case QuadraticBezierCurveSmooth:
		movement, err := tupleArg(args, 0)
		if err != nil {
			return Command{}, err
		}

		return NewQuadraticBezierCurveSmooth(movement), nil
	case EllipticalArcCurve:
		rx, err := scalarArg(args, 0)
		if err != nil {
			return Command{}, err
		}

		ry, err := scalarArg(args, 1)
		if err != nil {
			return Command{}, err
		}

		angle, err := scalarArg(args, 2)
		if err != nil {
			return Command{}, err
		}

		largeArc, err := flagArg(args, 3)
		if err != nil {
			return Command{}, err
		}

		sweep, err := flagArg(args, 4)
		if err != nil {
			return Command{}, err
		}

		movement, err := tupleArg(args, 5)
		if err != nil {
			return Command{}, err
		}

		return NewEllipticalArcCurve(movement, rx, ry, angle, largeArc, sweep), nil
	case ClosePath:
		return NewClose(), nil
	}

	return Command{}, ErrNotACommand
}

// String formats the command back to its canonical textual form:
// the (lowercased when relative) letter, then the arguments in source
// order, tuples comma-joined, arc flags as 0/1.
func (c Command) String() string {
	letter := c.Kind.Letter()
	if c.Relative {
		letter += 'a' - 'A'
	}

	switch c.Kind {
	case MoveTo, LineTo, QuadraticBezierCurveSmooth:
		return fmt.Sprintf("%c %s", letter, c.Movement)
	case HorizontalLineTo:
		return fmt.Sprintf("%c %s", letter, formatScalar(c.Movement.X))
	case VerticalLineTo:
		return fmt.Sprintf("%c %s", letter, formatScalar(c.Movement.Y))
	case CubicBezierCurve:
		return fmt.Sprintf("%c %s %s %s", letter, c.Control1, c.Control2, c.Movement)
	case CubicBezierCurveSmooth, QuadraticBezierCurve:
		return fmt.Sprintf("%c %s %s", letter, c.Control1, c.Movement)
	case EllipticalArcCurve:
		return fmt.Sprintf("%c %s %s %s %d %d %s",
			letter,
			formatScalar(c.Rx), formatScalar(c.Ry), formatScalar(c.Angle),
			flagInt(c.LargeArc), flagInt(c.Sweep),
			c.Movement,
		)
	case ClosePath:
		return string(letter)
	}

	return ""
}

func arg(args []string, n int) (string, error) {
	if n >= len(args) {
		return "", ErrNotEnoughArguments
	}

	return args[n], nil
}

func scalarArg(args []string, n int) (float32, error) {
	s, err := arg(args, n)
	if err != nil {
		return 0, err
	}

	return parseScalar(s)
}

func tupleArg(args []string, n int) (Point, error) {
	s, err := arg(args, n)
	if err != nil {
		return Point{}, err
	}

	return parseTuple(s)
}

// flagArg reads an arc flag. Any integer fitting in 8 bits is accepted;
// everything other than 0 counts as set.
func flagArg(args []string, n int) (bool, error) {
	s, err := arg(args, n)
	if err != nil {
		return false, err
	}

	v, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return false, fmt.Errorf("flag %q: %w", s, err)
	}

	return v != 0, nil
}

func parseScalar(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", s, err)
	}

	return float32(f), nil
}

// parseTuple splits an "x,y" token on its comma. Anything past the
// second component is ignored.
func parseTuple(s string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) < 2 {
		return Point{}, fmt.Errorf("%q: %w", s, ErrNotATuple)
	}

	x, err := parseScalar(parts[0])
	if err != nil {
		return Point{}, err
	}

	y, err := parseScalar(parts[1])
	if err != nil {
		return Point{}, err
	}

	return Point{x, y}, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}

	return b
}

func flagInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
