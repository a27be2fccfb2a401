package triangulate

// MonotoneVertex is one link in a monotone mountain's bottom-to-top chain.
// The chain is doubly linked so ear-clipping can splice a vertex out in
// O(1) once it's consumed.
type MonotoneVertex struct {
	Vertex       *Point
	Above, Below *MonotoneVertex

	baseVertexCached bool
	baseVertexValue  bool
}

// IsBaseVertex reports whether this vertex sits at either end of the chain,
// i.e. it's one of the mountain's two base vertices rather than one of the
// vertices strictly above the base edge. Memoized since ear-clipping
// queries it repeatedly as neighbors splice out from under a vertex.
func (v *MonotoneVertex) IsBaseVertex() bool {
	if v.baseVertexCached {
		return v.baseVertexValue
	}
	v.baseVertexCached = true
	v.baseVertexValue = v.Above == nil || v.Below == nil
	return v.baseVertexValue
}

// MonotoneMountain is a monotone polygon presented as a chain anchored at
// its lowest vertex, with Base naming the edge the chain was built against.
type MonotoneMountain struct {
	Base         *Segment
	BottomVertex *MonotoneVertex
}

// IsDegenerate reports whether the mountain has no interior vertices at all
// (base.Bottom immediately followed by base.Top, or nothing above that),
// meaning it contributes no triangles.
func (m *MonotoneMountain) IsDegenerate() bool {
	above := m.BottomVertex.Above
	if above == nil {
		return true
	}
	return above.Above == nil
}

// makeMonotoneMountains partitions the inside trapezoids of a finished
// decomposition into monotone mountains, one per distinct base edge, by
// first accumulating each base edge's above-vertex mapping and then
// materializing each mapping into a linked chain.
func makeMonotoneMountains(insideTraps []*Trapezoid) []*MonotoneMountain {
	baseOrder, aboveVertexByBase := groupVerticesByMountain(insideTraps)

	var mountains []*MonotoneMountain
	for _, base := range baseOrder {
		aboveVertex := aboveVertexByBase[base]
		var below *MonotoneVertex
		current := base.Bottom
		bottomOfChain := (*MonotoneVertex)(nil)

		for current != nil {
			node := &MonotoneVertex{Vertex: current, Below: below}
			if below != nil {
				below.Above = node
			}
			if bottomOfChain == nil {
				bottomOfChain = node
			}

			current = aboveVertex[current]
			below = node
		}

		mountains = append(mountains, &MonotoneMountain{Base: base, BottomVertex: bottomOfChain})
	}
	return mountains
}

// groupVerticesByMountain walks every inside trapezoid and, for each of its
// two bounding edges that isn't itself the trapezoid's full height (i.e.
// isn't degenerate for this trapezoid), records that the trapezoid's top
// vertex sits directly above its bottom vertex along that edge's mountain.
// Accumulated across every inside trapezoid, each base edge ends up with a
// complete bottom-to-top chain of vertices belonging to its mountain.
//
// baseOrder records each base edge's first-seen order alongside the map, so
// callers can iterate deterministically instead of relying on Go's
// randomized map iteration order, which would otherwise make Triangulate's
// output order vary run to run even under a fixed RNG seed.
func groupVerticesByMountain(insideTraps []*Trapezoid) (baseOrder []*Segment, aboveVertexByBase map[*Segment]map[*Point]*Point) {
	aboveVertexByBase = make(map[*Segment]map[*Point]*Point)

	for _, trap := range insideTraps {
		for _, edge := range [2]*Segment{trap.LeftEdge, trap.RightEdge()} {
			if trap.Bottom == edge.Bottom && trap.Top == edge.Top {
				continue
			}
			mapping, ok := aboveVertexByBase[edge]
			if !ok {
				mapping = make(map[*Point]*Point)
				aboveVertexByBase[edge] = mapping
				baseOrder = append(baseOrder, edge)
			}
			mapping[trap.Bottom] = trap.Top
		}
	}
	return baseOrder, aboveVertexByBase
}
