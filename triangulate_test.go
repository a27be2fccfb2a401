package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are exercised in depth under triangulate/.
func TestTriangulate(t *testing.T) {
	square := []*Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	triangles, err := Triangulate([][]*Point{square})
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)
}

func TestTriangulateRejectsDegeneratePolygon(t *testing.T) {
	line := []*Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
	}

	_, err := Triangulate([][]*Point{line})
	assert.Error(t, err)
}
