package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/arcglyph/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Rebuild path commands from an arc endpoint sequence and print one line per
// sub-path. Input is either a YAML list of {x, y, d} mappings (--input with a
// .yaml or .yml extension) or text with one "x y d" endpoint per line, with
// "inf" marking the start of a sub-path.
var (
	input   = kingpin.Flag("input", "Endpoint file (YAML or text). Defaults to stdin text.").Short('i').ExistingFile()
	originX = kingpin.Flag("origin-x", "Horizontal offset added to every output coordinate.").Default("0").Float64()
	originY = kingpin.Flag("origin-y", "Vertical offset added to every output coordinate.").Default("0").Float64()
	svgOut  = kingpin.Flag("svg", "Write an SVG document to this file.").String()
	pngOut  = kingpin.Flag("png", "Write a debug rendering to this PNG file.").String()
	scale   = kingpin.Flag("scale", "Scale of the PNG rendering.").Default("1").Float64()
	fill    = kingpin.Flag("fill", "Fill the outline instead of only stroking it.").Default("true").Bool()
	show    = kingpin.Flag("imgcat", "Print the PNG rendering to the terminal (iTerm only).").Bool()
	verbose = kingpin.Flag("verbose", "Log skipped and started sub-paths to stderr.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	if *verbose {
		advanced.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	endpoints, err := readInput()
	kingpin.FatalIfError(err, "reading endpoints")

	groups, points, err := commands(endpoints)
	kingpin.FatalIfError(err, "building commands")

	for _, g := range groups {
		fmt.Println(g.String())
	}

	if *svgOut != "" {
		kingpin.FatalIfError(writeSVG(*svgOut, groups, points), "writing svg")
	}
	if *pngOut != "" || *show {
		kingpin.FatalIfError(writePNG(groups, points), "writing png")
	}
}

func readInput() (advanced.EndpointList, error) {
	if *input == "" {
		return advanced.ReadEndpoints(os.Stdin)
	}
	f, err := os.Open(*input)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", *input)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(*input)) {
	case ".yaml", ".yml":
		return advanced.DecodeEndpointsYAML(f)
	}
	return advanced.ReadEndpoints(f)
}

func commands(endpoints advanced.EndpointList) (groups []advanced.CommandGroup, points []advanced.Point, err error) {
	defer func() {
		if recoveredErr := advanced.HandleArcPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	groups, points = advanced.ArcCommands(endpoints, advanced.WithOrigin(advanced.Vec(*originX, *originY)))
	return groups, points, nil
}

func writeSVG(path string, groups []advanced.CommandGroup, points []advanced.Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	opts := advanced.DefaultSVGOptions
	if *fill {
		opts.Fill = "green"
	}
	return advanced.WriteSVG(f, groups, points, opts)
}

func writePNG(groups []advanced.CommandGroup, points []advanced.Point) error {
	opts := advanced.DefaultDrawOptions
	opts.Scale = *scale
	opts.Fill = *fill
	c := advanced.DrawCommands(groups, points, opts)

	path := *pngOut
	if path == "" {
		path = filepath.Join(os.TempDir(), "arcglyph.png")
	}
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if *show {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
