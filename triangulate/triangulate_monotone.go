package triangulate

import "math/rand"

// triangulateMonotoneMountain ear-clips a single monotone mountain,
// appending its triangles to out. The mountain's convexity sense is fixed
// once, from its first interior vertex, and every subsequent vertex is
// tested against that same sense before being clipped.
func triangulateMonotoneMountain(mountain *MonotoneMountain, out *TriangleList, withColor bool, rng *rand.Rand) {
	if mountain.IsDegenerate() {
		return
	}

	firstInterior := mountain.BottomVertex.Above
	convexOrder := CCW(mountain.Base.Top, mountain.Base.Bottom, firstInterior.Vertex)

	current := firstInterior
	for !current.IsBaseVertex() {
		below := current.Below
		above := current.Above

		if CCW(below.Vertex, current.Vertex, above.Vertex) != convexOrder {
			current = above
			continue
		}

		var triangle *Triangle
		if convexOrder {
			triangle = newTriangle(below.Vertex, current.Vertex, above.Vertex, withColor, rng)
		} else {
			triangle = newTriangle(below.Vertex, above.Vertex, current.Vertex, withColor, rng)
		}
		*out = append(*out, triangle)

		below.Above = above
		above.Below = below

		if below.IsBaseVertex() {
			current = above
		} else {
			current = below
		}
	}
}

func newTriangle(a, b, c *Point, withColor bool, rng *rand.Rand) *Triangle {
	t := &Triangle{A: a, B: b, C: c}
	if withColor {
		for _, p := range [3]*Point{a, b, c} {
			if p.Color == ([3]uint8{}) {
				p.randomizeColor(rng)
			}
		}
		t.ColorHex = colorHex(a, b, c)
	}
	return t
}
