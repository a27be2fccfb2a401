package triangulate

import "math"

const Epsilon = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, we'll end up shaving off absurdly thin triangles on
// nearly horizontal segments.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Below orders points top-to-bottom: if two points have the same Y value,
// the one with the smaller X value is "lower". This simulates a slightly
// rotated coordinate system, so no two distinct points ever compare equal.
func (p *Point) Below(other *Point) bool {
	if Equal(p.Y, other.Y) {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p *Point) Above(other *Point) bool {
	return !p.Below(other) && p != other
}

// Gt reports whether p is strictly above other in the point order.
func (p *Point) Gt(other *Point) bool {
	return p != other && p.Above(other)
}

// CircularIndex gives the modular index into a length-n circular buffer, but
// unlike the raw modulo operator, it only gives non-negative values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// CCW is the strict counter-clockwise predicate. Colinear triples return
// false.
func CCW(a, b, c *Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// SegmentsIntersect is the strict segment-intersection predicate. Collinear
// overlaps return false. Used only by input validators outside the
// triangulation core, e.g. an interactive front-end rejecting a
// self-intersecting stroke before it ever reaches Triangulate.
func SegmentsIntersect(a, b, c, d *Point) bool {
	return CCW(a, b, c) != CCW(a, b, d) && CCW(c, d, a) != CCW(c, d, b)
}

// Angle returns the interior angle in degrees at b, between rays b->a and
// b->c. A geometry utility carried over from the original tool; it plays no
// role in the triangulation algorithm itself.
func Angle(a, b, c *Point) float64 {
	v1x, v1y := a.X-b.X, a.Y-b.Y
	v2x, v2y := c.X-b.X, c.Y-b.Y
	dot := v1x*v2x + v1y*v2y
	norm1 := math.Sqrt(v1x*v1x + v1y*v1y)
	norm2 := math.Sqrt(v2x*v2x + v2y*v2y)
	return math.Acos(dot/(norm1*norm2)) * 180 / math.Pi
}

func (t *Triangle) SignedArea() float64 {
	return ((t.A.X*t.B.Y - t.B.X*t.A.Y) +
		(t.B.X*t.C.Y - t.C.X*t.B.Y) +
		(t.C.X*t.A.Y - t.A.X*t.C.Y)) / 2
}

func (l TriangleList) SignedArea() float64 {
	var area float64
	for _, t := range l {
		area += t.SignedArea()
	}
	return area
}

// TotalArea sums the unsigned area of every triangle in the list. Useful for
// checking the "area law" testable property against a polygonal area's own
// unsigned area.
func (l TriangleList) TotalArea() float64 {
	var area float64
	for _, t := range l {
		area += Area(t)
	}
	return area
}

// Several properties can be derived from any structure that can compute its
// signed area.
type HasSignedArea interface {
	// SignedArea is positive if the structure is counterclockwise, negative
	// if clockwise.
	SignedArea() float64
}

func Area(s HasSignedArea) float64 {
	return math.Abs(s.SignedArea())
}

func IsCCW(s HasSignedArea) bool {
	return s.SignedArea() > 0
}

func IsCW(s HasSignedArea) bool {
	return s.SignedArea() < 0
}

// colorHex blends three point colors into the "#rrggbb" cosmetic string used
// for triangle coloring.
func colorHex(a, b, c *Point) string {
	const hexDigits = "0123456789abcdef"
	var out [7]byte
	out[0] = '#'
	channels := [3]uint8{
		meanByte(a.Color[0], b.Color[0], c.Color[0]),
		meanByte(a.Color[1], b.Color[1], c.Color[1]),
		meanByte(a.Color[2], b.Color[2], c.Color[2]),
	}
	for i, ch := range channels {
		out[1+i*2] = hexDigits[ch>>4]
		out[2+i*2] = hexDigits[ch&0xf]
	}
	return string(out[:])
}

func meanByte(a, b, c uint8) uint8 {
	return uint8((int(a) + int(b) + int(c)) / 3)
}
