package triangulate

import (
	"context"
	"math/rand"
	"time"
)

// engineOptions collects everything a single Triangulate call can be
// configured with. The zero-value fallbacks (a time-seeded RNG, a silent
// tracer, no deadline, no coloring) mean an options struct is never
// required.
type engineOptions struct {
	rng       *rand.Rand
	tracer    Tracer
	ctx       context.Context
	withColor bool
}

// TriangulateOption configures a single Triangulate call via the functional
// options pattern.
type TriangulateOption func(*engineOptions)

// WithRNG makes trapezoid-decomposition's edge insertion order reproducible:
// the same polygons plus the same *rand.Rand state produce the same
// triangulation.
func WithRNG(rng *rand.Rand) TriangulateOption {
	return func(o *engineOptions) { o.rng = rng }
}

// WithTracer attaches a Tracer that receives a line for every edge
// inserted during decomposition. Purely a debugging aid.
func WithTracer(tracer Tracer) TriangulateOption {
	return func(o *engineOptions) { o.tracer = tracer }
}

// WithContext makes Triangulate cooperatively cancellable: cancellation is
// checked between edge insertions and between monotone mountains.
func WithContext(ctx context.Context) TriangulateOption {
	return func(o *engineOptions) { o.ctx = ctx }
}

// WithColor requests the cosmetic per-triangle ColorHex field be populated,
// assigning each vertex a random color the first time it's seen and
// blending the three vertex colors of each emitted triangle. Carried over
// from the original demo tool; it has no effect on the geometry.
func WithColor() TriangulateOption {
	return func(o *engineOptions) { o.withColor = true }
}

// Triangulate decomposes a polygonal area into triangles using Seidel's
// randomized incremental algorithm: trapezoidal decomposition, monotone
// mountain extraction, then ear clipping.
//
// Polygons may wind in either direction. Regions are resolved by odd/even
// crossing depth, so overlapping solids or nested holes-within-holes behave
// as XOR, not union.
func Triangulate(polygons PolygonList, opts ...TriangulateOption) (result TriangleList, err error) {
	options := &engineOptions{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		tracer: nopTracer{},
	}
	for _, opt := range opts {
		opt(options)
	}

	defer func() {
		if recovered := recoverTriangulatePanic(recover()); recovered != nil {
			result, err = nil, recovered
		}
	}()

	area, err := NewPolygonalArea(polygons)
	if err != nil {
		return nil, err
	}

	ctx := newEngineContext(options.ctx, options.rng, options.tracer)

	trapezoids, err := trapezoidize(ctx, area)
	if err != nil {
		return nil, err
	}

	if _, isNop := options.tracer.(nopTracer); !isNop {
		assertConsistentInsideClassification(ctx)
	}

	var insideTraps []*Trapezoid
	for _, t := range trapezoids {
		if t.IsInside() {
			insideTraps = append(insideTraps, t)
		}
	}

	mountains := makeMonotoneMountains(insideTraps)

	var triangles TriangleList
	for _, mountain := range mountains {
		if err := ctx.checkCancelled(); err != nil {
			return nil, err
		}
		triangulateMonotoneMountain(mountain, &triangles, options.withColor, options.rng)
	}

	return triangles, nil
}
