// Command triangulate-cli is a thin demo adapter around the triangulate
// engine: it reads a polygonal area from stdin, triangulates it, and prints
// the result. All of the algorithmic difficulty lives in the triangulate
// package; this just wires stdin/stdout to it.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	engine "github.com/geometric-algorithms/q10-programming/triangulate"
)

var (
	seed      int64
	seedIsSet bool
	format    = kingpin.Flag("format", "output format: text or svg").Default("text").Enum("text", "svg")
	color     = kingpin.Flag("color", "populate each triangle's cosmetic color").Bool()
	draw      = kingpin.Flag("draw", "rasterize the triangulation and cat it to the terminal instead of printing it").Bool()
	drawScale = kingpin.Flag("draw-scale", "pixels per input unit for --draw").Default("20").Float64()
)

func init() {
	kingpin.Flag("seed", "RNG seed for edge insertion order; omit for a time-seeded run").
		IsSetByUser(&seedIsSet).Int64Var(&seed)
}

// Input on stdin is newline-separated points in the form "x y", with each
// polygon separated by a blank line. Polygons should be simple; their
// winding does not matter, since the engine classifies holes by odd
// crossing depth.
func main() {
	kingpin.Parse()

	polygons := readPolygons(os.Stdin)
	if len(polygons) == 0 {
		fmt.Fprintln(os.Stderr, "no polygons on stdin")
		os.Exit(1)
	}

	opts := []engine.TriangulateOption{}
	if seedIsSet {
		opts = append(opts, engine.WithRNG(rand.New(rand.NewSource(seed))))
	} else {
		opts = append(opts, engine.WithRNG(rand.New(rand.NewSource(time.Now().UnixNano()))))
	}
	if *color {
		opts = append(opts, engine.WithColor())
	}

	triangles, err := engine.Triangulate(polygons, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "triangulate: %v\n", err)
		os.Exit(1)
	}

	if *draw {
		if err := engine.DebugDraw(polygons, triangles, *drawScale); err != nil {
			fmt.Fprintf(os.Stderr, "draw: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch *format {
	case "svg":
		writeSVG(os.Stdout, polygons, triangles)
	default:
		writeText(os.Stdout, triangles)
	}
}

func readPolygons(in *os.File) engine.PolygonList {
	var polygons engine.PolygonList
	scanner := bufio.NewScanner(in)
	points := []*engine.Point{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, engine.Polygon{Points: points})
				points = []*engine.Point{}
			}
			continue
		}
		point := parsePoint(line)
		points = append(points, &point)
	}
	if len(points) > 0 {
		polygons = append(polygons, engine.Polygon{Points: points})
	}
	return polygons
}

func parsePoint(line string) engine.Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return engine.Point{X: x, Y: y}
}

func writeText(w *os.File, triangles engine.TriangleList) {
	fmt.Fprintf(w, "%d triangles\n", len(triangles))
	for _, t := range triangles {
		fmt.Fprintf(w, "(%g,%g) (%g,%g) (%g,%g)", t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y)
		if t.ColorHex != "" {
			fmt.Fprintf(w, " %s", t.ColorHex)
		}
		fmt.Fprintln(w)
	}
}

func writeSVG(w *os.File, polygons engine.PolygonList, triangles engine.TriangleList) {
	fmt.Fprintln(w, `<svg xmlns="http://www.w3.org/2000/svg">`)
	for _, t := range triangles {
		fillColor := t.ColorHex
		if fillColor == "" {
			fillColor = "#4c82f7"
		}
		fmt.Fprintf(w, `  <polygon points="%g,%g %g,%g %g,%g" fill="%s" stroke="white" />`+"\n",
			t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y, fillColor)
	}
	fmt.Fprintln(w, `</svg>`)
}
