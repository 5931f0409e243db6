package advanced

import (
	"math"
	"strconv"
	"strings"
)

type CommandKind int

const (
	MoveTo CommandKind = iota
	LineTo
	ArcTo
)

func (k CommandKind) String() string {
	switch k {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case ArcTo:
		return "A"
	}
	return "?"
}

// PathCommand is one move, line or elliptical-arc command in SVG path syntax.
// The arc fields are only meaningful for ArcTo. Center and the angles are
// kept so that renderers without an SVG arc primitive can draw the arc.
type PathCommand struct {
	Kind CommandKind
	To   Point

	Center               Point
	Radius               float64
	StartAngle, EndAngle float64
	LargeArc, Sweep      bool
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// String renders "M x,y", "L x,y" or "A rx ry 0 large-arc sweep x,y".
func (c PathCommand) String() string {
	to := formatFloat(c.To.X) + "," + formatFloat(c.To.Y)
	switch c.Kind {
	case MoveTo, LineTo:
		return c.Kind.String() + " " + to
	case ArcTo:
		r := formatFloat(c.Radius)
		return strings.Join([]string{"A", r, r, "0", formatFlag(c.LargeArc), formatFlag(c.Sweep), to}, " ")
	}
	fatalf("unknown command kind %d", int(c.Kind))
	return ""
}

// CommandGroup is the commands of one connected sub-path. It always begins
// with a MoveTo.
type CommandGroup []PathCommand

func (g CommandGroup) String() string {
	parts := make([]string, len(g))
	for i, c := range g {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

type commandConfig struct {
	origin Vec2
}

type CommandOption func(*commandConfig)

// WithOrigin translates every emitted coordinate by origin. Only the output
// moves; the geometry is unaffected.
func WithOrigin(origin Vec2) CommandOption {
	return func(c *commandConfig) {
		c.origin = origin
	}
}

// ArcCommands rebuilds drawable path commands from an endpoint sequence. It
// returns one group per disconnected sub-path, and the position of every
// endpoint in input order.
//
// Repeated (Epsilon-equal) points emit nothing, and consecutive sub-path starts
// collapse into a single move to the last of them. A line or arc endpoint that
// arrives before any sub-path was started means the sequence is malformed,
// and ArcCommands panics with an ArcError.
//
// The large-arc flag of emitted arcs is always 0. Arcs spanning more than π
// are drawn as their short counterpart.
func ArcCommands(src EndpointSource, opts ...CommandOption) ([]CommandGroup, []Point) {
	var cfg commandConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := src.Len()
	points := make([]Point, 0, n)
	var groups []CommandGroup
	var group CommandGroup

	var current Point
	hasCurrent := false

	for i := 0; i < n; i++ {
		ep := src.Endpoint(i)
		p := ep.P.Add(cfg.origin)
		points = append(points, p)

		if hasCurrent && p.Equals(current) {
			Logger().Debug("skipping zero-length step", "index", i, "point", p)
			continue
		}

		switch {
		case ep.IsMove():
			if len(group) == 1 {
				// A run of moves draws nothing; only its last point matters.
				group[0].To = p
				break
			}
			if len(group) > 0 {
				groups = append(groups, group)
				group = nil
			}
			Logger().Debug("starting sub-path", "index", i, "point", p)
			group = append(group, PathCommand{Kind: MoveTo, To: p})
		case ep.IsLine():
			must(hasCurrent, "line to %s at index %d has no current point", p, i)
			group = append(group, PathCommand{Kind: LineTo, To: p})
		default:
			must(hasCurrent, "arc to %s at index %d has no current point", p, i)
			group = append(group, arcCommand(current, p, ep.D))
		}
		current = p
		hasCurrent = true
	}

	if len(group) > 0 {
		groups = append(groups, group)
	}
	return groups, points
}

func arcCommand(from, to Point, d float64) PathCommand {
	arc := NewArc(from, to, d)
	center := arc.Center()
	radius := arc.Radius()

	startVec := from.Sub(center)
	endVec := to.Sub(center)
	startAngle := startVec.Angle()
	endAngle := endVec.Angle()

	// Negative cross product: the short way from start to end is clockwise.
	clockwise := startVec.Cross(endVec) < 0

	return PathCommand{
		Kind:       ArcTo,
		To:         center.Add(Vec(math.Cos(endAngle), math.Sin(endAngle)).Mul(radius)),
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		LargeArc:   false,
		Sweep:      !clockwise,
	}
}
