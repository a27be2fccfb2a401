package triangulate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleTracer_Tracef(t *testing.T) {
	var lines []string
	tracer := NewConsoleTracer(func(line string) { lines = append(lines, line) })

	tracer.Tracef("inserting %s", "edge-1")

	require.Len(t, lines, 1)
	assert.Equal(t, "inserting edge-1", lines[0])
}

func TestConsoleTracer_Tracef_NilOutIsSilent(t *testing.T) {
	tracer := NewConsoleTracer(nil)
	assert.NotPanics(t, func() { tracer.Tracef("no output wired") })
}

func TestConsoleTracer_NameEdge(t *testing.T) {
	tracer := NewConsoleTracer(func(string) {})

	slanted := NewSegment(&Point{X: 0, Y: 0}, &Point{X: 1, Y: 1})
	horizontal := NewSegment(&Point{X: 0, Y: 0}, &Point{X: 1, Y: 0})

	name := tracer.NameEdge(slanted)
	assert.NotEmpty(t, name)
	assert.Equal(t, name, tracer.NameEdge(slanted), "repeated lookups of the same edge must return the same name")
	assert.NotEqual(t, name, tracer.NameEdge(horizontal), "distinct edges must be named distinctly")
}

func TestConsoleTracer_NameTrapezoid(t *testing.T) {
	tracer := NewConsoleTracer(func(string) {})
	ctx := newEngineContext(nil, rand.New(rand.NewSource(1)), tracer)

	unbounded := newTrapezoid(ctx)

	top, bottom := &Point{X: 0, Y: 1}, &Point{X: 0, Y: 0}
	left := NewSegment(&Point{X: -1, Y: 0}, &Point{X: -1, Y: 1})
	right := NewSegment(&Point{X: 1, Y: 0}, &Point{X: 1, Y: 1})
	bounded := newTrapezoid(ctx)
	bounded.Top, bounded.Bottom, bounded.LeftEdge = top, bottom, left
	bounded.SetRightEdge(right)

	degenerate := newTrapezoid(ctx)
	degenerate.Top, degenerate.Bottom, degenerate.LeftEdge = top, top, left
	degenerate.SetRightEdge(right)

	for _, tr := range []*Trapezoid{unbounded, bounded, degenerate} {
		name := tracer.NameTrapezoid(tr)
		assert.NotEmpty(t, name)
	}
}

// Running a real triangulation with a ConsoleTracer installed exercises the
// aurora/petname-backed trace path end to end, not just the tracer in
// isolation.
func TestTriangulate_WithConsoleTracer(t *testing.T) {
	var lines []string
	tracer := NewConsoleTracer(func(line string) { lines = append(lines, line) })

	poly := Polygon{Points: []*Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}}

	triangles, err := Triangulate(PolygonList{poly}, WithTracer(tracer))
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	assert.NotEmpty(t, lines, "installing a ConsoleTracer must produce at least one trace line")
}
