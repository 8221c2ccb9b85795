package path

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shape is an ordered sequence of path commands - the value of one "d"
// attribute. Order is draw order. No geometric validation is performed:
// a shape built from an arbitrary command list is taken as-is.
type Shape struct {
	Commands []Command
}

func NewShape() *Shape {
	return &Shape{}
}

// WithCommands replaces the whole command sequence.
func (s *Shape) WithCommands(commands ...Command) *Shape {
	s.Commands = commands
	return s
}

// ParseShape splits raw path data at command letters and parses each
// letter together with the argument run that follows it. Content before
// the first letter is discarded. The first malformed command fails the
// whole parse.
func ParseShape(data string) (*Shape, error) {
	type mark struct {
		index  int
		letter rune
	}

	var marks []mark
	for i, r := range data {
		if unicode.IsLetter(r) {
			marks = append(marks, mark{i, r})
		}
	}

	if len(marks) == 0 {
		return nil, fmt.Errorf("%q: %w", data, ErrNotACommand)
	}

	result := NewShape()
	for n, m := range marks {
		end := len(data)
		if n+1 < len(marks) {
			end = marks[n+1].index
		}

		args := strings.TrimSpace(data[m.index+utf8.RuneLen(m.letter) : end])

		cmd, err := ParseCommand(strings.TrimSpace(string(m.letter) + " " + args))
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", n+1, err)
		}

		result.Commands = append(result.Commands, cmd)
	}

	return result, nil
}

// ParseShapeAttr parses a shape out of a "d" key/value attribute pair.
func ParseShapeAttr(key, value string) (*Shape, error) {
	if !strings.EqualFold(key, "d") {
		return nil, fmt.Errorf("%q: %w", key, ErrNotPathData)
	}

	return ParseShape(value)
}

// String formats every command and joins them with a newline. The
// newline separator is intentional; XML serializers escape it to &#xA;
// inside attribute values and SVG consumers treat it as whitespace.
func (s *Shape) String() string {
	formatted := make([]string, 0, len(s.Commands))
	for _, cmd := range s.Commands {
		formatted = append(formatted, cmd.String())
	}

	return strings.Join(formatted, "\n")
}

// Key returns the attribute key path data is stored under.
func (s *Shape) Key() string {
	return "d"
}

// Value renders the shape as an attribute value.
func (s *Shape) Value() string {
	return s.String()
}
