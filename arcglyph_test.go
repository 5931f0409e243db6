package arcglyph

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/arcglyph/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestArcCommands(t *testing.T) {
	endpoints := EndpointList{
		advanced.NewEndpoint(0, 0, Infinity),
		advanced.NewEndpoint(1, 0, 0),
		advanced.NewEndpoint(1, 1, 0.5),
	}

	groups, points, err := ArcCommands(endpoints)
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Len(t, points, 3)
}

func TestArcCommandsMalformed(t *testing.T) {
	endpoints := EndpointList{
		advanced.NewEndpoint(1, 0, 0),
	}

	groups, points, err := ArcCommands(endpoints)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no current point")
	assert.Nil(t, groups)
	assert.Nil(t, points)
}

func TestWriteSVG(t *testing.T) {
	endpoints := EndpointList{
		advanced.NewEndpoint(0, 0, Infinity),
		advanced.NewEndpoint(2, 0, 0.5),
		advanced.NewEndpoint(0, 0, 0),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, endpoints, advanced.DefaultSVGOptions))
	assert.True(t, strings.HasPrefix(buf.String(), "<svg"))
	assert.Equal(t, 1, strings.Count(buf.String(), "<path"))

	buf.Reset()
	assert.Error(t, WriteSVG(&buf, EndpointList{advanced.NewEndpoint(1, 1, 0.3)}, advanced.DefaultSVGOptions))
}
