// Geometry for glyph outlines made of circular arcs.
//
// An outline arrives as a sequence of endpoints, each carrying the curvature
// of the arc that reaches it from the previous endpoint. This package turns
// such a sequence back into drawable SVG-style path commands. The advanced
// package exposes the underlying arc kernel: distances, signed distances,
// wedge containment, bounding boxes and Bézier approximation.
package arcglyph

import (
	"io"

	"github.com/osuushi/arcglyph/advanced"
)

type Point = advanced.Point
type Vec2 = advanced.Vec2
type Arc = advanced.Arc
type Endpoint = advanced.Endpoint
type EndpointSource = advanced.EndpointSource
type EndpointList = advanced.EndpointList
type CommandGroup = advanced.CommandGroup
type PathCommand = advanced.PathCommand

// Infinity is the curvature that marks the start of a new sub-path.
var Infinity = advanced.Infinity

// Rebuild path commands from an endpoint sequence. See advanced.ArcCommands.
//
// A sequence whose first drawing endpoint is not preceded by a sub-path start
// is malformed, and is reported as an error.
func ArcCommands(src EndpointSource, opts ...advanced.CommandOption) (groups []CommandGroup, points []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleArcPanicRecover(recover())
		if recoveredErr != nil {
			groups, points = nil, nil
			err = recoveredErr
		}
	}()
	groups, points = advanced.ArcCommands(src, opts...)
	return groups, points, nil
}

// Render the endpoint sequence as a standalone SVG document.
func WriteSVG(w io.Writer, src EndpointSource, opts advanced.SVGOptions) error {
	groups, points, err := ArcCommands(src)
	if err != nil {
		return err
	}
	return advanced.WriteSVG(w, groups, points, opts)
}
