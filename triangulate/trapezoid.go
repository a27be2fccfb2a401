package triangulate

// TrapezoidNeighborList names the trapezoids touching another trapezoid
// across one of its horizontal sides. In the stable decomposition this holds
// 0, 1, or 2 entries, ordered left to right; during edge insertion it is
// freely reassigned by the adjacency-repair step before the next merge pass
// restores the invariant.
type TrapezoidNeighborList []*Trapezoid

// Replace swaps one neighbor for another, leaving the list unchanged if
// orig isn't present. Mirrors the original's module-level `replace` helper.
func (nl TrapezoidNeighborList) Replace(orig, replacement *Trapezoid) {
	for i, t := range nl {
		if t == orig {
			nl[i] = replacement
		}
	}
}

// AnyNeighbor returns the first entry, or nil if the list is empty; for a
// two-entry list that is the left neighbor. Most callers in querygraph.go
// use it where the list holds exactly one entry (a single below/above
// neighbor during the up/down walk, or the single exterior neighbor at an
// edge endpoint). manageAdjacentOnBranch also calls it on a branching list
// of two entries, where it yields the left one.
func (nl TrapezoidNeighborList) AnyNeighbor() *Trapezoid {
	if len(nl) == 0 {
		return nil
	}
	return nl[0]
}

// Trapezoid is a maximal horizontal slab of the decomposition, bounded above
// and below by vertices and on the left/right by edges. Any side may be nil,
// meaning that side is unbounded.
type Trapezoid struct {
	ctx *engineContext

	Top, Bottom         *Point
	LeftEdge, rightEdge *Segment

	Above, Below TrapezoidNeighborList

	// Sink is the back-reference to the unique DAG leaf representing this
	// trapezoid.
	Sink *QueryNode

	insideCached bool
	insideValue  bool
}

func newTrapezoid(ctx *engineContext) *Trapezoid {
	return &Trapezoid{ctx: ctx}
}

// RightEdge returns the trapezoid's right-bounding edge, or nil if that side
// is unbounded.
func (t *Trapezoid) RightEdge() *Segment {
	return t.rightEdge
}

// SetRightEdge reassigns the right edge, maintaining the per-call right-edge
// registry: the trapezoid is deregistered from its old right edge's set (if
// any) before being registered under the new one.
func (t *Trapezoid) SetRightEdge(edge *Segment) {
	t.ctx.registry.remove(t)
	t.rightEdge = edge
	t.ctx.registry.add(t)
}

// IsInside applies the memoized odd-depth rule: a trapezoid is inside the
// polygonal area iff it has both a left and a right edge, and the
// (arbitrary) trapezoid registered as having that left edge as its *right*
// edge is itself outside. Trapezoids missing either side edge are the
// unbounded exterior strips and are always outside, which terminates the
// recursion.
//
// This must only be called after the decomposition is finished: the
// registry's per-edge trapezoid set is only guaranteed to agree on
// inside/outside once construction has stopped mutating it.
func (t *Trapezoid) IsInside() bool {
	if t.insideCached {
		return t.insideValue
	}
	t.insideCached = true

	if t.LeftEdge == nil || t.rightEdge == nil {
		t.insideValue = false
		return false
	}

	leftTraps := t.ctx.registry[t.LeftEdge]
	var representative *Trapezoid
	for candidate := range leftTraps {
		representative = candidate
		break
	}
	if representative == nil {
		fatalf("right-edge registry has no trapezoid registered for left edge of a trapezoid")
	}
	t.insideValue = !representative.IsInside()
	return t.insideValue
}

// SplitByVertex splits the trapezoid horizontally at p into (bottom, top).
// The receiver becomes top; a duplicate becomes bottom. Below-neighbors of
// the original trapezoid are re-pointed at bottom.
func (t *Trapezoid) SplitByVertex(p *Point) (bottom, top *Trapezoid) {
	top = t
	bottom = t.duplicate()

	top.Bottom = p
	bottom.Top = p

	bottom.Above = TrapezoidNeighborList{top}
	bottom.Below = t.Below
	for _, neighbor := range t.Below {
		neighbor.Above.Replace(t, bottom)
	}
	top.Below = TrapezoidNeighborList{bottom}

	return bottom, top
}

// SplitByEdge splits the trapezoid obliquely along edge into (left, right).
// The receiver becomes right; a duplicate becomes left. Adjacency repair
// across this split is the DAG's responsibility, not this method's.
func (t *Trapezoid) SplitByEdge(edge *Segment) (left, right *Trapezoid) {
	right = t
	left = t.duplicate()

	left.SetRightEdge(edge)
	right.LeftEdge = edge

	return left, right
}

// ExtremePoint computes one of the trapezoid's four corners: the point at
// the chosen vertical extreme, with the x-coordinate taken from the chosen
// side edge at that height.
func (t *Trapezoid) ExtremePoint(top, right bool) *Point {
	vertex := t.Bottom
	if top {
		vertex = t.Top
	}
	edge := t.LeftEdge
	if right {
		edge = t.rightEdge
	}
	return &Point{X: edge.XAtY(vertex.Y), Y: vertex.Y}
}

// adjacentTraps and setAdjacentTraps address the Above/Below neighbor lists
// by a boolean side, so the adjacency-repair code in querygraph.go can be
// written once per direction instead of duplicated for above and below.
func (t *Trapezoid) adjacentTraps(top bool) TrapezoidNeighborList {
	if top {
		return t.Above
	}
	return t.Below
}

func (t *Trapezoid) setAdjacentTraps(traps TrapezoidNeighborList, top bool) {
	if top {
		t.Above = traps
	} else {
		t.Below = traps
	}
}

func (t *Trapezoid) duplicate() *Trapezoid {
	dup := newTrapezoid(t.ctx)
	dup.Top = t.Top
	dup.Bottom = t.Bottom
	dup.LeftEdge = t.LeftEdge
	dup.SetRightEdge(t.rightEdge)
	return dup
}

// rightEdgeRegistry is the process-local (really: per-call) mapping from an
// edge that currently bounds >=1 trapezoid on its right to that set of
// trapezoids. Carried on engineContext rather than the Trapezoid type so
// concurrent triangulations never share it.
type rightEdgeRegistry map[*Segment]map[*Trapezoid]struct{}

func (r rightEdgeRegistry) add(t *Trapezoid) {
	if t.rightEdge == nil {
		return
	}
	set, ok := r[t.rightEdge]
	if !ok {
		set = make(map[*Trapezoid]struct{})
		r[t.rightEdge] = set
	}
	set[t] = struct{}{}
}

func (r rightEdgeRegistry) remove(t *Trapezoid) {
	if t.rightEdge == nil {
		return
	}
	if set, ok := r[t.rightEdge]; ok {
		delete(set, t)
		if len(set) == 0 {
			delete(r, t.rightEdge)
		}
	}
}

// assertConsistentInsideClassification checks, for every edge in the
// registry, that all trapezoids registered as having that edge on their
// right agree on IsInside(). IsInside's recursion picks an arbitrary
// representative of that set, so this invariant must hold once the
// decomposition is finished; it's only worth the walk over every registry
// entry when a caller has installed a real Tracer, so the hot path never
// pays for it.
func assertConsistentInsideClassification(ctx *engineContext) {
	for edge, traps := range ctx.registry {
		var want bool
		first := true
		for t := range traps {
			if first {
				want = t.IsInside()
				first = false
				continue
			}
			if t.IsInside() != want {
				fatalf("trapezoids sharing right edge %p disagree on IsInside", edge)
			}
		}
	}
}
