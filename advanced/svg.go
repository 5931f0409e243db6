package advanced

import (
	"fmt"
	"html"
	"io"
	"math"

	"github.com/pkg/errors"
)

type SVGOptions struct {
	// Fill and Stroke are SVG paints. An empty Fill leaves the outline unfilled.
	Fill   string
	Stroke string
	// Endpoint markers are drawn when PointRadius is positive.
	PointRadius float64
	PointFill   string
	Padding     float64
}

var DefaultSVGOptions = SVGOptions{
	Fill:        "none",
	Stroke:      "green",
	PointRadius: 4,
	PointFill:   "blue",
	Padding:     16,
}

// WriteSVG writes a standalone SVG document with one path per command group.
// The glyph is drawn y-up, so the document flips it.
func WriteSVG(w io.Writer, groups []CommandGroup, points []Point, opts SVGOptions) error {
	bounds := commandBounds(groups, points)

	pad := opts.Padding
	width := bounds.Width() + 2*pad
	height := bounds.Height() + 2*pad

	ew := &errWriter{w: w}
	ew.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		formatFloat(width), formatFloat(height), formatFloat(width), formatFloat(height))
	// Map (MinX, MaxY) to the top left corner.
	ew.printf(`<g transform="translate(%s %s) scale(1 -1)">`+"\n",
		formatFloat(pad-bounds.MinX), formatFloat(pad+bounds.MaxY))
	for _, g := range groups {
		ew.printf(`<path d="%s" fill="%s" fill-rule="evenodd" stroke="%s"/>`+"\n",
			html.EscapeString(g.String()), html.EscapeString(opts.Fill), html.EscapeString(opts.Stroke))
	}
	if opts.PointRadius > 0 {
		for _, p := range points {
			ew.printf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
				formatFloat(p.X), formatFloat(p.Y), formatFloat(opts.PointRadius), html.EscapeString(opts.PointFill))
		}
	}
	ew.printf("</g>\n</svg>\n")
	return errors.Wrap(ew.err, "writing svg")
}

// arcExtentsFromCommand recovers an arc with the same sweep as an emitted
// command, for bounding purposes.
func arcExtentsFromCommand(c PathCommand) Arc {
	return ArcFromCenterRadiusAngle(c.Center, c.Radius, c.StartAngle, sweptEndAngle(c), true)
}

// sweptEndAngle returns the end angle adjusted so that going from StartAngle
// to it follows the command's sweep direction the short way round.
func sweptEndAngle(c PathCommand) float64 {
	end := c.EndAngle
	if c.Sweep {
		for end < c.StartAngle {
			end += 2 * math.Pi
		}
	} else {
		for end > c.StartAngle {
			end -= 2 * math.Pi
		}
	}
	return end
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
