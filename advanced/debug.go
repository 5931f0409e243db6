package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/arcglyph/dbg"
)

// DbgString prints the group under a readable name, with moves in cyan, lines
// in yellow and arcs in green.
func (g *CommandGroup) DbgString() string {
	parts := []string{aurora.Bold(dbg.Name(g)).String() + ":"}
	for _, c := range *g {
		s := c.String()
		switch c.Kind {
		case MoveTo:
			s = aurora.Cyan(s).String()
		case LineTo:
			s = aurora.Yellow(s).String()
		case ArcTo:
			s = aurora.Green(s).String()
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// DbgDump prints every group, one per line.
func DbgDump(groups []CommandGroup) {
	for i := range groups {
		fmt.Println(groups[i].DbgString())
	}
}
