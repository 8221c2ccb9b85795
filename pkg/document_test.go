package svgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svgen "github.com/gucio321/svgen/pkg"
	"github.com/gucio321/svgen/pkg/element"
	"github.com/gucio321/svgen/pkg/path"
)

func TestDocumentString(t *testing.T) {
	shape, err := path.ParseShape("M 10,10 S 1,1 10,10 z")
	require.NoError(t, err)

	doc := svgen.NewDocument(100, 100).Add(element.NewPath(shape))

	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?>`+
			`<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">`+
			`<path d="M 10,10&#xA;S 1,1 10,10&#xA;z" />`+
			`</svg>`,
		doc.String(),
	)
}

func TestDocumentWrite(t *testing.T) {
	doc := svgen.NewDocument(24.5, 16)

	var sb strings.Builder
	require.NoError(t, doc.Write(&sb))
	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?><svg viewBox="0 0 24.5 16" xmlns="http://www.w3.org/2000/svg" />`,
		sb.String(),
	)
}

func TestImporter(t *testing.T) {
	const sample = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
	<path d="M 10 10 L 20 20 Z"/>
</svg>`

	importer, err := svgen.Parse([]byte(sample))
	require.NoError(t, err)

	shape, err := importer.Shape()
	require.NoError(t, err)
	require.NotEmpty(t, shape.Commands)
	assert.Equal(t, path.MoveTo, shape.Commands[0].Kind)

	for _, cmd := range shape.Commands {
		assert.False(t, cmd.Relative)
	}
}
