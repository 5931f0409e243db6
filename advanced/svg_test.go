package advanced

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSVG(t *testing.T) {
	groups, points := ArcCommands(LoadFixture("ring"))

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, groups, points, DefaultSVGOptions))

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Name)
	// 20×20 ring plus padding on both sides
	assertAttr(t, 52, root, "width")
	assertAttr(t, 52, root, "height")

	paths := root.FindAll("path")
	require.Len(t, paths, len(groups))
	for i, path := range paths {
		assert.Equal(t, groups[i].String(), path.Attributes["d"])
		assert.Equal(t, "evenodd", path.Attributes["fill-rule"])
		assert.Equal(t, "none", path.Attributes["fill"])
	}
	assert.Len(t, root.FindAll("circle"), len(points))

	g := root.FindAll("g")
	require.Len(t, g, 1)
	var dx, dy float64
	_, err = fmt.Sscanf(g[0].Attributes["transform"], "translate(%g %g) scale(1 -1)", &dx, &dy)
	require.NoError(t, err)
	assert.InDelta(t, 26, dx, 1e-9)
	assert.InDelta(t, 26, dy, 1e-9)
}

func TestWriteSVGOptions(t *testing.T) {
	groups, points := ArcCommands(LoadFixture("letter_d"))
	opts := SVGOptions{Fill: "black", Stroke: "none"}

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, groups, points, opts))
	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)

	assert.Empty(t, root.FindAll("circle"))
	paths := root.FindAll("path")
	require.Len(t, paths, 1)
	assert.Equal(t, "black", paths[0].Attributes["fill"])
}

func assertAttr(t *testing.T, want float64, e *svgparser.Element, name string) {
	t.Helper()
	v, err := strconv.ParseFloat(e.Attributes[name], 64)
	require.NoError(t, err, name)
	assert.InDelta(t, want, v, 1e-9, name)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteSVGError(t *testing.T) {
	groups, points := ArcCommands(LoadFixture("letter_d"))
	err := WriteSVG(failingWriter{}, groups, points, DefaultSVGOptions)
	assert.EqualError(t, err, "writing svg: disk full")
}
