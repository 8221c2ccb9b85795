package path_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/svgen/pkg/path"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want path.Command
	}{
		{"move", "M 10,10", path.NewMoveTo(path.Pt(10, 10))},
		{"line", "L 10,10", path.NewLineTo(path.Pt(10, 10))},
		{"horizontal", "H 10", path.NewHorizontalLineTo(10)},
		{"vertical", "V 10", path.NewVerticalLineTo(10)},
		{"cubic", "C 10,10 10,10 3.5,10", path.NewCubicBezierCurve(path.Pt(3.5, 10), path.Pt(10, 10), path.Pt(10, 10))},
		{"cubic smooth", "S 10,10 3.5,10", path.NewCubicBezierCurveSmooth(path.Pt(3.5, 10), path.Pt(10, 10))},
		{"quadratic", "Q 10,10 3.5,10", path.NewQuadraticBezierCurve(path.Pt(3.5, 10), path.Pt(10, 10))},
		{"quadratic smooth", "T 3.5,10", path.NewQuadraticBezierCurveSmooth(path.Pt(3.5, 10))},
		{"arc", "A 1 1 1 0 1 3.5,10", path.NewEllipticalArcCurve(path.Pt(3.5, 10), 1, 1, 1, false, true)},
		{"close", "Z", path.NewClose()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := path.ParseCommand(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})

		t.Run(tc.name+" relative", func(t *testing.T) {
			got, err := path.ParseCommand(strings.ToLower(tc.in[:1]) + tc.in[1:])
			require.NoError(t, err)
			assert.Equal(t, tc.want.Rel(), got)
		})
	}
}

// Curve arguments are written control points first, endpoint last; the
// struct stores the endpoint as Movement.
func TestParseCommandReordersCurveArguments(t *testing.T) {
	got, err := path.ParseCommand("C 1,1 2,2 3,3")
	require.NoError(t, err)

	assert.Equal(t, path.Pt(1, 1), got.Control1)
	assert.Equal(t, path.Pt(2, 2), got.Control2)
	assert.Equal(t, path.Pt(3, 3), got.Movement)
	assert.Equal(t, "C 1,1 2,2 3,3", got.String())
}

func TestParseCommandArcFlags(t *testing.T) {
	// any non-zero integer sets the flag, but it always re-emits as 1
	got, err := path.ParseCommand("A 1 1 0 -1 2 3,3")
	require.NoError(t, err)
	assert.True(t, got.LargeArc)
	assert.True(t, got.Sweep)
	assert.Equal(t, "A 1 1 0 1 1 3,3", got.String())

	got, err = path.ParseCommand("A 1 1 0 0 0 3,3")
	require.NoError(t, err)
	assert.False(t, got.LargeArc)
	assert.False(t, got.Sweep)
	assert.Equal(t, "A 1 1 0 0 0 3,3", got.String())
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", path.ErrNotACommand},
		{"unknown letter", "X 1,1", path.ErrNotACommand},
		{"long first token", "MM 10,10", path.ErrNotACommand},
		{"scalar instead of tuple", "L 10", path.ErrNotATuple},
		{"missing tuple", "L", path.ErrNotEnoughArguments},
		{"missing cubic endpoint", "c 1,1 2,2", path.ErrNotEnoughArguments},
		{"missing arc endpoint", "A 1 1 1 0 1", path.ErrNotEnoughArguments},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := path.ParseCommand(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("malformed number", func(t *testing.T) {
		_, err := path.ParseCommand("H ten")
		require.Error(t, err)
	})

	t.Run("malformed flag", func(t *testing.T) {
		_, err := path.ParseCommand("A 1 1 1 yes 1 3,3")
		require.Error(t, err)
	})

	t.Run("flag out of 8-bit range", func(t *testing.T) {
		_, err := path.ParseCommand("A 1 1 1 999 1 3,3")
		require.Error(t, err)
	})
}

func TestCommandRoundTrip(t *testing.T) {
	canonical := []string{
		"M 10,10",
		"m 10,10",
		"L 1.5,2",
		"l 1.5,2",
		"H 3.5",
		"v 3.5",
		"C 1,1 2,2 3,3",
		"c 1,1 2,2 3,3",
		"S 5,5 10,10",
		"Q 5,5 10,10",
		"T 10,10",
		"A 4 1 0.3 0 1 10,10",
		"a 4 1 0.3 1 0 10,10",
		"Z",
		"z",
	}

	for _, in := range canonical {
		t.Run(in, func(t *testing.T) {
			cmd, err := path.ParseCommand(in)
			require.NoError(t, err)
			assert.Equal(t, in, cmd.String())

			again, err := path.ParseCommand(cmd.String())
			require.NoError(t, err)
			assert.Equal(t, cmd, again)
		})
	}
}

func TestKindLetter(t *testing.T) {
	letters := map[path.Kind]byte{
		path.MoveTo:                     'M',
		path.LineTo:                     'L',
		path.HorizontalLineTo:           'H',
		path.VerticalLineTo:             'V',
		path.CubicBezierCurve:           'C',
		path.CubicBezierCurveSmooth:     'S',
		path.QuadraticBezierCurve:       'Q',
		path.QuadraticBezierCurveSmooth: 'T',
		path.EllipticalArcCurve:         'A',
		path.ClosePath:                  'Z',
	}

	for kind, letter := range letters {
		assert.Equal(t, letter, kind.Letter(), kind.String())
	}
}
