package advanced

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

type DrawOptions struct {
	Scale       float64
	Padding     int
	Fill        bool
	LineWidth   float64
	PointRadius float64 // in pixels; 0 hides the endpoint markers
}

var DefaultDrawOptions = DrawOptions{
	Scale:       1,
	Padding:     32,
	Fill:        true,
	LineWidth:   2,
	PointRadius: 4,
}

// DrawCommands renders the command groups into a new image, y-up, filled with
// the even-odd rule like a glyph. Endpoint markers are drawn on top.
func DrawCommands(groups []CommandGroup, points []Point, opts DrawOptions) *gg.Context {
	bounds := commandBounds(groups, points)
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	width := int(math.Round(scale*bounds.Width())) + opts.Padding*2
	height := int(math.Round(scale*bounds.Height())) + opts.Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(float64(opts.Padding), float64(opts.Padding))
	c.Scale(scale, scale)
	c.Translate(-bounds.MinX, -bounds.MinY)

	for _, g := range groups {
		traceGroup(c, g)
		c.ClosePath()
	}
	if opts.Fill {
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
	}
	c.SetRGB(0, 0.4, 0)
	c.SetLineWidth(opts.LineWidth)
	c.Stroke()

	if opts.PointRadius > 0 {
		c.SetRGB(0, 0, 1)
		for _, p := range points {
			c.DrawCircle(p.X, p.Y, opts.PointRadius/scale)
			c.Fill()
		}
	}
	return c
}

func traceGroup(c *gg.Context, g CommandGroup) {
	for _, cmd := range g {
		switch cmd.Kind {
		case MoveTo:
			c.MoveTo(cmd.To.X, cmd.To.Y)
		case LineTo:
			c.LineTo(cmd.To.X, cmd.To.Y)
		case ArcTo:
			c.DrawArc(cmd.Center.X, cmd.Center.Y, cmd.Radius, cmd.StartAngle, sweptEndAngle(cmd))
		}
	}
}

// commandBounds covers every point and the full sweep of every arc.
func commandBounds(groups []CommandGroup, points []Point) Extents {
	bounds := NewExtents()
	for _, p := range points {
		bounds.Add(p)
	}
	var e Extents
	for _, g := range groups {
		for _, c := range g {
			if c.Kind == ArcTo {
				arcExtentsFromCommand(c).Extents(&e)
				bounds.Extend(e)
			} else {
				bounds.Add(c.To)
			}
		}
	}
	if bounds.IsEmpty() {
		bounds.Add(Point{})
	}
	return bounds
}

// This is for debugging purposes only. It prints the rendering to the
// terminal (iTerm only).
func DbgDraw(groups []CommandGroup, points []Point, scale float64) {
	dbgDrawTo(filepath.Join(os.TempDir(), "arc_commands.png"), groups, points, scale)
}

func dbgDrawTo(path string, groups []CommandGroup, points []Point, scale float64) {
	opts := DefaultDrawOptions
	opts.Scale = scale
	c := DrawCommands(groups, points, opts)
	if err := c.SavePNG(path); err != nil {
		Logger().Error("saving debug rendering", "path", path, "error", err)
		return
	}
	imgcat.CatFile(path, os.Stdout)
}
