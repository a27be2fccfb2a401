package triangulate

// Polygon is a single simple, non-self-intersecting cyclic list of points.
type Polygon struct {
	Points []*Point
}

// PolygonList is a set of polygons which must be pairwise non-intersecting
// and non-coincident. Winding direction does not matter to Triangulate,
// which classifies regions by odd crossing depth; see PolygonalArea.
type PolygonList []Polygon

// Winding-rule point-in-polygon, provided for testing the trapezoidal
// decomposition's interior classification against a reference
// implementation. If you're checking many points against the same large
// polygon, locating them in the QueryGraph directly is cheaper.
//
// Like the engine's odd-depth rule (Trapezoid.IsInside), this ignores
// winding direction.
func (poly Polygon) ContainsPointByEvenOdd(p *Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

func (poly Polygon) CrossingCount(p *Point) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, n)]
		segment := NewSegment(vertex, nextVertex)
		if !segment.RightOf(p) && vertex.Below(p) != nextVertex.Below(p) {
			crossingCount++
		}
	}
	return crossingCount
}

func (l PolygonList) ContainsPointByEvenOdd(p *Point) bool {
	return l.CrossingCount(p)%2 == 1
}

func (l PolygonList) CrossingCount(p *Point) int {
	crossingCount := 0
	for _, poly := range l {
		crossingCount += poly.CrossingCount(p)
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]*Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (poly *Polygon) SignedArea() float64 {
	area := 0.0
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		nextI := (i + 1) % n
		area += poly.Points[i].X*poly.Points[nextI].Y - poly.Points[nextI].X*poly.Points[i].Y
	}
	return area / 2
}

func (l PolygonList) SignedArea() float64 {
	var area float64
	for i := range l {
		area += l[i].SignedArea()
	}
	return area
}

// PolygonalArea is the caller-facing region: an arrangement of simple
// polygons interpreted under an odd-crossing-depth rule, with no
// containment/nesting semantics tracked explicitly. It owns edge
// extraction rather than leaving callers to assemble segments themselves.
type PolygonalArea struct {
	Polygons PolygonList
}

// NewPolygonalArea validates and wraps a set of polygons. It fails with
// InvalidInput when any polygon has fewer than 3 vertices or contains
// coincident adjacent points (including the closing edge).
func NewPolygonalArea(polygons PolygonList) (*PolygonalArea, error) {
	for i, poly := range polygons {
		if len(poly.Points) < 3 {
			return nil, invalidInputf("polygon %d has %d vertices, need at least 3", i, len(poly.Points))
		}
		n := len(poly.Points)
		for j, p := range poly.Points {
			next := poly.Points[CircularIndex(j+1, n)]
			if p == next || (p.X == next.X && p.Y == next.Y) {
				return nil, invalidInputf("polygon %d has coincident adjacent points at index %d", i, j)
			}
		}
	}
	return &PolygonalArea{Polygons: polygons}, nil
}

// Edges extracts every bounding segment of every polygon in the area.
func (area *PolygonalArea) Edges() []*Segment {
	var edges []*Segment
	for _, poly := range area.Polygons {
		n := len(poly.Points)
		for i := 0; i < n; i++ {
			edges = append(edges, NewSegment(poly.Points[i], poly.Points[CircularIndex(i+1, n)]))
		}
	}
	return edges
}
