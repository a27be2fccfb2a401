package triangulate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulate_RightTriangle(t *testing.T) {
	poly := Polygon{Points: []*Point{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 0, Y: 3},
	}}
	triangles, err := Triangulate(PolygonList{poly})
	require.NoError(t, err)
	assert.Len(t, triangles, 1)
	AssertValidTriangulation(t, PolygonList{poly}, triangles)
}

func TestTriangulate_UnitSquare(t *testing.T) {
	poly := Polygon{Points: []*Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}}
	triangles, err := Triangulate(PolygonList{poly})
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	AssertValidTriangulation(t, PolygonList{poly}, triangles)
}

func TestTriangulate_ConvexPentagon(t *testing.T) {
	poly := *LoadFixture("pentagon")
	triangles, err := Triangulate(PolygonList{poly})
	require.NoError(t, err)
	assert.Len(t, triangles, 3)
	AssertValidTriangulation(t, PolygonList{poly}, triangles)
}

func TestTriangulate_NonConvexL(t *testing.T) {
	poly := *LoadFixture("l_shape")
	triangles, err := Triangulate(PolygonList{poly})
	require.NoError(t, err)
	assert.Len(t, triangles, 4)
	AssertValidTriangulation(t, PolygonList{poly}, triangles)
}

func TestTriangulate_SquareWithHole(t *testing.T) {
	outer := Polygon{Points: []*Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}}
	hole := Polygon{Points: []*Point{
		{X: 3, Y: 3},
		{X: 3, Y: 7},
		{X: 7, Y: 7},
		{X: 7, Y: 3},
	}}
	require.True(t, IsCW(&hole), "hole fixture must be clockwise")

	area := PolygonList{outer, hole}
	triangles, err := Triangulate(area)
	require.NoError(t, err)
	AssertValidTriangulation(t, area, triangles)
}

// The even-odd crossing rule is a reference classifier independent of the
// engine's own odd-depth rule; on a single simple polygon with no holes the
// two must agree regardless of winding direction.
func TestPointClassification_NonConvexL_MatchesEvenOddRule(t *testing.T) {
	poly := *LoadFixture("l_shape")

	inside := []*Point{
		{X: 1, Y: 1}, // bottom arm
		{X: 7, Y: 1}, // bottom arm, right of the notch
		{X: 1, Y: 7}, // left arm
	}
	outside := []*Point{
		{X: 7, Y: 7},   // the notch cut out of the L
		{X: 15, Y: 15}, // far outside
		{X: -1, Y: -1},
	}
	assertPointClassification(t, poly, inside, outside)
}

func TestTriangulate_TwoDisjointTriangles(t *testing.T) {
	left := Polygon{Points: []*Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
	}}
	right := Polygon{Points: []*Point{
		{X: 10, Y: 0},
		{X: 11, Y: 0},
		{X: 10, Y: 1},
	}}
	area := PolygonList{left, right}
	triangles, err := Triangulate(area)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	AssertValidTriangulation(t, area, triangles)
}

// Any fixed seed must always produce the same triangulation, since edge
// insertion order depends only on the RNG stream.
func TestTriangulate_DeterministicUnderFixedSeed(t *testing.T) {
	poly := *LoadFixture("star")
	area := PolygonList{poly}

	first, err := Triangulate(area, WithRNG(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	second, err := Triangulate(area, WithRNG(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Same(t, first[i].A, second[i].A)
		assert.Same(t, first[i].B, second[i].B)
		assert.Same(t, first[i].C, second[i].C)
	}
}

// Different insertion orders must still cover the same area with a valid
// triangulation; the specific diagonals chosen are allowed to vary.
func TestTriangulate_ValidAcrossManySeeds(t *testing.T) {
	poly := *LoadFixture("star")
	area := PolygonList{poly}

	for seed := int64(0); seed < 8; seed++ {
		triangles, err := Triangulate(area, WithRNG(rand.New(rand.NewSource(seed))))
		require.NoError(t, err)
		AssertValidTriangulation(t, area, triangles)
	}
}

func TestTriangulate_WithColorPopulatesHex(t *testing.T) {
	poly := Polygon{Points: []*Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}}
	triangles, err := Triangulate(PolygonList{poly}, WithColor())
	require.NoError(t, err)
	for _, tri := range triangles {
		assert.Len(t, tri.ColorHex, 7)
		assert.Equal(t, byte('#'), tri.ColorHex[0])
	}
}

func TestTriangulate_RejectsTooFewVertices(t *testing.T) {
	poly := Polygon{Points: []*Point{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	_, err := Triangulate(PolygonList{poly})
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidInput))
}
