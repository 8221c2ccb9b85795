package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/svgen/pkg/value"
)

func TestColorHexCode(t *testing.T) {
	assert.Equal(t, "#FF0000", value.Red.String())
	assert.Equal(t, "#00FF00", value.Green.HexCode())
	assert.Equal(t, "#0000FF", value.Blue.HexCode())
	assert.Equal(t, "#000000", value.Black.HexCode())
	assert.Equal(t, "#FFFFFF", value.White.HexCode())
	assert.Equal(t, "#FFFF00", value.Yellow.HexCode())
	assert.Equal(t, "#FF00FF", value.Purple.HexCode())
	assert.Equal(t, "#00FFFF", value.Cyan.HexCode())
}

func TestParseColor(t *testing.T) {
	c, err := value.ParseColor("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, value.Red, c)

	c, err = value.ParseColor("00FFFF")
	require.NoError(t, err)
	assert.Equal(t, value.Cyan, c)

	for _, in := range []string{"", "#F00", "FF00000", "#GGGGGG", "red"} {
		_, err := value.ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestColorKeyword(t *testing.T) {
	c, ok := value.Keyword("red")
	require.True(t, ok)
	assert.Equal(t, "#FF0000", c.HexCode())

	c, ok = value.Keyword("White")
	require.True(t, ok)
	assert.Equal(t, "#FFFFFF", c.HexCode())

	_, ok = value.Keyword("not-a-color")
	assert.False(t, ok)
}

func TestColorMath(t *testing.T) {
	assert.Equal(t, value.Yellow, value.Red.Add(value.Green))
	// channels clamp at 1
	assert.Equal(t, value.White, value.White.Add(value.White))

	mixed := value.Black.Average(value.White)
	r, g, b := mixed.RGB()
	assert.Equal(t, uint8(127), r)
	assert.Equal(t, uint8(127), g)
	assert.Equal(t, uint8(127), b)
}
