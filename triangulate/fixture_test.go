package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFixture(t *testing.T) {
	for _, name := range []string{"square", "pentagon", "l_shape", "star"} {
		t.Run(name, func(t *testing.T) {
			poly := LoadFixture(name)
			assert.GreaterOrEqual(t, len(poly.Points), 3)
			assert.True(t, IsCCW(poly), "LoadFixture must always return a CCW polygon")
		})
	}
}
