package triangulate

import "math/rand"

// Point is a 2-D coordinate. Points carry identity: two points at the same
// coordinates are distinct entities, since triangulation output must
// reference the caller's original points, not copies. Never compare points
// with ==; compare the pointers.
type Point struct {
	X, Y float64

	// Color is the cosmetic per-point RGB triple from the original tool. It
	// is only populated when a triangulation runs with WithColor(), and is
	// left at its zero value otherwise.
	Color [3]uint8
}

// randomizeColor fills p.Color with a random triple in [100,255].
func (p *Point) randomizeColor(r *rand.Rand) {
	for i := range p.Color {
		p.Color[i] = uint8(100 + r.Intn(156))
	}
}

// Segment is an unordered pair of distinct points, stored with Bottom below
// Top under the point order (see Point.Below).
type Segment struct {
	Bottom, Top *Point
}

// NewSegment orders the two endpoints by the point order.
func NewSegment(a, b *Point) *Segment {
	if a.Above(b) {
		return &Segment{Bottom: b, Top: a}
	}
	return &Segment{Bottom: a, Top: b}
}

// IsHorizontal reports whether both endpoints share a Y value.
func (s *Segment) IsHorizontal() bool {
	return s.Bottom.Y == s.Top.Y
}

// Midpoint returns the segment's geometric midpoint. This is a fresh
// synthetic point and must never be treated as a polygon vertex.
func (s *Segment) Midpoint() *Point {
	return &Point{X: (s.Bottom.X + s.Top.X) / 2, Y: (s.Bottom.Y + s.Top.Y) / 2}
}

// XAtY returns the x-coordinate of the segment at the given height. A
// horizontal segment has no single answer, so the mean of its endpoints' x
// values is returned instead.
func (s *Segment) XAtY(y float64) float64 {
	if s.IsHorizontal() {
		return (s.Bottom.X + s.Top.X) / 2
	}
	t := (y - s.Bottom.Y) / (s.Top.Y - s.Bottom.Y)
	return s.Bottom.X + t*(s.Top.X-s.Bottom.X)
}

// RightOf reports whether p lies to the right of the segment at p's height.
func (s *Segment) RightOf(p *Point) bool {
	return p.X > s.XAtY(p.Y)
}

// EndpointAt returns the top or bottom endpoint of the segment.
func (s *Segment) EndpointAt(top bool) *Point {
	if top {
		return s.Top
	}
	return s.Bottom
}

// segmentEndpoint returns the top or bottom endpoint of a possibly-nil
// segment.
func segmentEndpoint(s *Segment, top bool) *Point {
	if s == nil {
		return nil
	}
	return s.EndpointAt(top)
}

// Triangle is an ordered triple of points, in a winding fixed by the
// mountain that produced it.
type Triangle struct {
	A, B, C *Point

	// ColorHex is the cosmetic "#rrggbb" blend of the three vertex colors.
	// Only populated when the triangulation ran with WithColor().
	ColorHex string
}

// TriangleList is the ordered output of a triangulation call.
type TriangleList []*Triangle

// PointSet is a set of points keyed by identity.
type PointSet map[*Point]struct{}

func (s PointSet) Add(p *Point) {
	s[p] = struct{}{}
}

func (s PointSet) Equals(other PointSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if _, ok := other[p]; !ok {
			return false
		}
	}
	return true
}
