package triangulate

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// LoadFixture parses one of the embedded SVG test fixtures and returns its
// first <polygon> element as a CCW Polygon. This is not a general-purpose
// SVG reader: it only understands a flat "points" attribute on a single
// top-level polygon, which is all the fixtures below ever need.
//
//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("fixture %q must contain exactly one polygon, found %d", name, len(polygons))
	}

	points := parsePointsAttr(polygons[0].Attributes["points"])
	result := Polygon{Points: points}
	if IsCW(&result) {
		result = result.Reverse()
	}
	return &result
}

func parsePointsAttr(attr string) []*Point {
	fields := strings.Fields(attr)
	points := make([]*Point, 0, len(fields))
	for _, field := range fields {
		coords := strings.Split(field, ",")
		if len(coords) != 2 {
			log.Fatalf("invalid point %q in fixture", field)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &Point{X: x, Y: y})
	}
	return points
}
