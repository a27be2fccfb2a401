// An asymptotically fast triangulation package for Go.
//
// This package converts a set of simple polygons, which may be non-convex,
// may be disjoint, and may contain holes, into a set of triangles covering
// the same area using only the original points.
package triangulate

import engine "github.com/geometric-algorithms/q10-programming/triangulate"

type Point = engine.Point
type Triangle = engine.Triangle
type Polygon = engine.Polygon
type TriangulateOption = engine.TriangulateOption

var (
	WithRNG     = engine.WithRNG
	WithTracer  = engine.WithTracer
	WithContext = engine.WithContext
	WithColor   = engine.WithColor
)

// Triangulate converts a set of point lists into triangles.
//
// Each polygon must be simple and non-self-intersecting. Winding direction
// is irrelevant: holes are found by odd crossing depth. The order of the
// polygons is irrelevant too.
func Triangulate(polygonPoints [][]*Point, opts ...TriangulateOption) ([]*Triangle, error) {
	polygons := make(engine.PolygonList, len(polygonPoints))
	for i, points := range polygonPoints {
		polygons[i] = engine.Polygon{Points: points}
	}
	triangles, err := engine.Triangulate(polygons, opts...)
	return []*Triangle(triangles), err
}
