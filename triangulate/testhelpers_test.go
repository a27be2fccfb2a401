package triangulate

// This contains no actual tests. It's shared validation logic for
// confirming a triangulation result is correct.

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertValidTriangulation checks a triangulation against the properties
// that must hold for any valid result:
//  1. The set of points used by the triangles equals the set of points in
//     the source polygons.
//  2. Every polygon edge appears as an edge of some triangle.
//  3. Every triangle winds counter-clockwise and has nonzero area.
//  4. The total triangle area equals the polygons' own unsigned area.
func AssertValidTriangulation(t *testing.T, area PolygonList, triangles TriangleList) {
	t.Helper()

	areaPoints := make(PointSet)
	for _, poly := range area {
		for _, p := range poly.Points {
			areaPoints.Add(p)
		}
	}

	trianglePoints := make(PointSet)
	triangleSegments := make(normalizedSegmentSet)
	var triangleArea float64
	for _, tri := range triangles {
		require.True(t, IsCCW(tri), "clockwise or degenerate triangle: %+v", tri)
		triangleArea += Area(tri)

		trianglePoints.Add(tri.A)
		trianglePoints.Add(tri.B)
		trianglePoints.Add(tri.C)

		triangleSegments.add(tri.A, tri.B)
		triangleSegments.add(tri.B, tri.C)
		triangleSegments.add(tri.C, tri.A)
	}

	require.True(t, areaPoints.Equals(trianglePoints),
		"triangle vertex set must match the source polygons' vertex set")

	for _, poly := range area {
		n := len(poly.Points)
		for i := 0; i < n; i++ {
			a, b := poly.Points[i], poly.Points[CircularIndex(i+1, n)]
			require.True(t, triangleSegments.contains(a, b),
				"polygon edge %v-%v missing from triangulation", a, b)
		}
	}

	require.InDelta(t, Area(area), triangleArea, Epsilon,
		"sum of triangle areas must equal the polygonal area's own area")
}

// normalizedSegment is an unordered point pair keyed so (a, b) and (b, a)
// hash identically.
type normalizedSegment struct {
	lower, upper *Point
}

func newNormalizedSegment(a, b *Point) normalizedSegment {
	if a.Below(b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b *Point) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b *Point) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}

// assertPointClassification cross-checks the engine's odd-depth inside
// classification against the even-odd crossing rule for a single simple
// polygon with no holes, where the two rules must agree regardless of
// winding direction.
func assertPointClassification(t *testing.T, poly Polygon, inside, outside []*Point) {
	t.Helper()
	area, err := NewPolygonalArea(PolygonList{poly})
	require.NoError(t, err)
	traps, err := trapezoidize(newEngineContext(nil, rand.New(rand.NewSource(1)), nopTracer{}), area)
	require.NoError(t, err)
	engineInside := func(p *Point) bool {
		for _, trap := range traps {
			if trap.IsInside() && trap.Bottom.Y < p.Y && p.Y < trap.Top.Y &&
				trap.LeftEdge.RightOf(p) && !trap.RightEdge().RightOf(p) {
				return true
			}
		}
		return false
	}
	for _, p := range inside {
		assert.True(t, poly.ContainsPointByEvenOdd(p), "expected %v inside polygon", p)
		assert.True(t, engineInside(p), "engine classified %v as outside", p)
	}
	for _, p := range outside {
		assert.False(t, poly.ContainsPointByEvenOdd(p), "expected %v outside polygon", p)
		assert.False(t, engineInside(p), "engine classified %v as inside", p)
	}
}
