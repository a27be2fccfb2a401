package triangulate

import (
	"context"
	"math/rand"
)

// engineContext is the per-invocation state shared by every trapezoid and
// query node built during one Triangulate call. It is deliberately never a
// package-level variable: two concurrent triangulations must not share a
// right-edge registry, an RNG, or a cancellation signal.
type engineContext struct {
	registry rightEdgeRegistry
	rng      *rand.Rand
	tracer   Tracer
	ctx      context.Context
}

func newEngineContext(ctx context.Context, rng *rand.Rand, tracer Tracer) *engineContext {
	return &engineContext{
		registry: make(rightEdgeRegistry),
		rng:      rng,
		tracer:   tracer,
		ctx:      ctx,
	}
}

// checkCancelled reports a Cancelled error once the caller's context is
// done. It's polled between edge insertions and between mountains, not
// inside the tight inner loops, where the extra check would cost more than
// it saves.
func (c *engineContext) checkCancelled() error {
	if c.ctx == nil {
		return nil
	}
	select {
	case <-c.ctx.Done():
		return cancelledf("triangulation cancelled: %v", c.ctx.Err())
	default:
		return nil
	}
}

// QueryGraph owns the root of the point-location search DAG built up over
// one trapezoidation. It starts as a single sink over the unbounded plane
// and grows by repeated vertex and edge insertion.
type QueryGraph struct {
	root *QueryNode
	ctx  *engineContext
}

func newQueryGraph(ctx *engineContext) *QueryGraph {
	return &QueryGraph{root: newSink(newTrapezoid(ctx)), ctx: ctx}
}

// Locate returns the leaf node whose trapezoid contains point.
func (g *QueryGraph) Locate(point *Point) *QueryNode {
	return g.root.locate(point)
}

// insertVertex splits the trapezoid containing p into (below, above) at p.
// The leaf is turned into a vertex-decision node in place, so every
// existing parent pointer keeps working unchanged.
func (g *QueryGraph) insertVertex(p *Point) {
	leaf := g.Locate(p)
	sink, ok := leaf.Inner.(SinkNode)
	if !ok {
		fatalf("insertVertex located a non-leaf node")
	}
	below, above := sink.Trapezoid.SplitByVertex(p)
	leaf.becomeYNode(p, newSink(below), newSink(above))
}

// findNodesToSplit walks from startTrap towards edge's far endpoint in the
// given direction (up towards edge.Top, or down towards edge.Bottom),
// collecting the sink node of every trapezoid visited along the way,
// including the one that reaches the endpoint.
//
// At a branch (two neighbors in that direction), the correct branch is the
// one edge actually threads through: take the near corner of the left
// candidate and test it against edge.RightOf, mirroring the original
// Python's two-trapezoid disambiguation exactly.
func (g *QueryGraph) findNodesToSplit(startTrap *Trapezoid, edge *Segment, up bool) []*QueryNode {
	var nodes []*QueryNode
	current := startTrap

	reachedEnd := func(t *Trapezoid) bool {
		if up {
			return t.Top == edge.Top
		}
		return t.Bottom == edge.Bottom
	}

	for !reachedEnd(current) {
		neighbors := current.adjacentTraps(up)
		switch len(neighbors) {
		case 1:
			current = neighbors.AnyNeighbor()
		case 2:
			leftCandidate := neighbors[0]
			corner := leftCandidate.ExtremePoint(!up, true)
			if edge.RightOf(corner) {
				current = neighbors[0]
			} else {
				current = neighbors[1]
			}
		default:
			fatalf("trapezoid has %d neighbors while searching for an edge endpoint, expected 1 or 2", len(neighbors))
		}
		nodes = append(nodes, current.Sink)
	}
	return nodes
}

// insertEdge threads edge through the decomposition, splitting every
// trapezoid it crosses and repairing adjacency across the new boundary.
// topJustInserted and bottomJustInserted record whether this call's own
// insertVertex calls just created edge's endpoints, which changes how the
// adjacency repair at that end behaves.
func (g *QueryGraph) insertEdge(edge *Segment, topJustInserted, bottomJustInserted bool) {
	startNode := g.Locate(edge.Midpoint())
	startSink, ok := startNode.Inner.(SinkNode)
	if !ok {
		fatalf("insertEdge located a non-leaf node")
	}

	nodesUp := g.findNodesToSplit(startSink.Trapezoid, edge, true)
	nodesDown := g.findNodesToSplit(startSink.Trapezoid, edge, false)

	// coupled accumulates (left, right) trapezoid pairs in top-to-bottom
	// order: topmost-up first, down through the start trapezoid, to
	// bottommost-down last.
	var coupled [][2]*Trapezoid

	splitNode := func(node *QueryNode) {
		sink, ok := node.Inner.(SinkNode)
		if !ok {
			fatalf("attempted to split a non-leaf node by an edge")
		}
		left, right := sink.Trapezoid.SplitByEdge(edge)
		node.becomeXNode(edge, newSink(left), newSink(right))
		coupled = append(coupled, [2]*Trapezoid{left, right})
	}

	for i := len(nodesUp) - 1; i >= 0; i-- {
		splitNode(nodesUp[i])
	}
	splitNode(startNode)
	for _, node := range nodesDown {
		splitNode(node)
	}

	manageAdjacentAtEdgeEnds(edge, coupled, topJustInserted, bottomJustInserted)
	mergeRedundantStacks(coupled)
}

// manageAdjacentAtEdgeEnds repairs adjacency at the two ends of the newly
// split trapezoid stack, then walks the interior couples fixing direct and
// branching adjacency between consecutive splits.
func manageAdjacentAtEdgeEnds(edge *Segment, coupled [][2]*Trapezoid, topJustInserted, bottomJustInserted bool) {
	manageAdjacentAtEdgeEnd(edge, coupled[0][0], coupled[0][1], topJustInserted, true)
	manageAdjacentAtEdgeEnd(edge, coupled[len(coupled)-1][0], coupled[len(coupled)-1][1], bottomJustInserted, false)

	for i := 0; i < len(coupled)-1; i++ {
		topLeft, topRight := coupled[i][0], coupled[i][1]
		bottomLeft, bottomRight := coupled[i+1][0], coupled[i+1][1]

		switch {
		case len(topRight.Below) == 2:
			manageAdjacentOnBranch(edge, bottomLeft, bottomRight, topLeft, topRight, false)
		case len(bottomRight.Above) == 2:
			manageAdjacentOnBranch(edge, topLeft, topRight, bottomLeft, bottomRight, true)
		default:
			// The right trapezoid of each couple keeps its identity (and
			// therefore its original adjacency) across SplitByEdge, so only
			// the freshly duplicated left trapezoids need wiring here.
			topLeft.Below = TrapezoidNeighborList{bottomLeft}
			bottomLeft.Above = TrapezoidNeighborList{topLeft}
		}
	}
}

// manageAdjacentAtEdgeEnd repairs the adjacency at one end (top or bottom)
// of a freshly split trapezoid couple. endRight is the original trapezoid
// (identity preserved through SplitByEdge) and so already carries whatever
// exterior neighbor existed on that side before this edge was inserted.
func manageAdjacentAtEdgeEnd(edge *Segment, endLeft, endRight *Trapezoid, justInserted, topEnd bool) {
	exterior := endRight.adjacentTraps(topEnd)

	if justInserted {
		// This endpoint was created by this call's own insertVertex, so it
		// had exactly one exterior neighbor before the edge arrived. Both
		// new trapezoids inherit it, and that neighbor now points at both.
		copyOfExterior := append(TrapezoidNeighborList{}, exterior...)
		endLeft.setAdjacentTraps(copyOfExterior, topEnd)
		adjacent := exterior.AnyNeighbor()
		adjacent.setAdjacentTraps(TrapezoidNeighborList{endLeft, endRight}, !topEnd)
		return
	}

	edgeEnd := segmentEndpoint(edge, topEnd)

	switch {
	case segmentEndpoint(endLeft.LeftEdge, topEnd) == edgeEnd:
		// The left trapezoid's own left edge already terminates here:
		// whatever sits beyond this end was already reachable only through
		// the right trapezoid's identity, nothing to repair.
	case segmentEndpoint(endRight.RightEdge(), topEnd) == edgeEnd:
		endLeft.setAdjacentTraps(exterior, topEnd)
		endRight.setAdjacentTraps(TrapezoidNeighborList{}, topEnd)
		exterior.AnyNeighbor().adjacentTraps(!topEnd).Replace(endRight, endLeft)
	default:
		leftAdjacent, rightAdjacent := exterior[0], exterior[1]
		endLeft.setAdjacentTraps(TrapezoidNeighborList{leftAdjacent}, topEnd)
		endRight.setAdjacentTraps(TrapezoidNeighborList{rightAdjacent}, topEnd)
		leftAdjacent.adjacentTraps(!topEnd).Replace(endRight, endLeft)
	}
}

// manageAdjacentOnBranch repairs adjacency when one side of a couple
// boundary has two neighbors instead of one, i.e. the edge passes a vertex
// of an already-inserted edge partway along its length. B is the couple
// whose right trapezoid has the two neighbors in upwardBranch's direction;
// A is the couple across that boundary, one step from B in that direction.
func manageAdjacentOnBranch(edge *Segment, leftA, rightA, leftB, rightB *Trapezoid, upwardBranch bool) {
	leftA.setAdjacentTraps(TrapezoidNeighborList{leftB}, !upwardBranch)

	branchPoint := rightB.adjacentTraps(upwardBranch).AnyNeighbor().ExtremePoint(!upwardBranch, true)

	if edge.RightOf(branchPoint) {
		leftB.setAdjacentTraps(TrapezoidNeighborList{leftA}, upwardBranch)
		return
	}

	additionalLeftA := rightB.adjacentTraps(upwardBranch).AnyNeighbor()

	rightA.setAdjacentTraps(TrapezoidNeighborList{rightB}, !upwardBranch)
	rightB.setAdjacentTraps(TrapezoidNeighborList{rightA}, upwardBranch)

	leftB.setAdjacentTraps(TrapezoidNeighborList{additionalLeftA, leftA}, upwardBranch)
	additionalLeftA.setAdjacentTraps(TrapezoidNeighborList{leftB}, !upwardBranch)
}

// mergeRedundantStacks collapses runs of newly split trapezoids that share
// the same left and right bounding edges back into single trapezoids, once
// per side: the left-hand halves are scanned top to bottom, then the
// right-hand halves, and each side may break into several maximal runs
// wherever consecutive halves differ in either bounding edge.
func mergeRedundantStacks(coupled [][2]*Trapezoid) {
	for side := 0; side < 2; side++ {
		stack := []*Trapezoid{coupled[0][side]}
		for _, couple := range coupled[1:] {
			trap := couple[side]
			last := stack[len(stack)-1]
			if last.LeftEdge != trap.LeftEdge || last.RightEdge() != trap.RightEdge() {
				mergeTrapezoidStack(stack)
				stack = nil
			}
			stack = append(stack, trap)
		}
		mergeTrapezoidStack(stack)
	}
}

// mergeTrapezoidStack collapses a top-to-bottom run of trapezoids sharing
// both side edges into the first one, redirecting every other member's DAG
// node at the survivor and deregistering it from the right-edge registry.
func mergeTrapezoidStack(stack []*Trapezoid) {
	if len(stack) < 2 {
		return
	}
	top := stack[0]
	bottom := stack[len(stack)-1]

	top.Bottom = bottom.Bottom
	top.Below = bottom.Below
	for _, neighbor := range bottom.Below {
		neighbor.Above.Replace(bottom, top)
	}

	for _, trap := range stack[1:] {
		trap.Sink.replaceWith(top.Sink)
		trap.ctx.registry.remove(trap)
	}
}

// trapezoidize builds the full trapezoidal decomposition of area by
// inserting its edges one at a time in random order, returning every leaf
// trapezoid once the decomposition is complete. IsInside classification is
// left to the caller, which must wait until construction is finished before
// calling it: the right-edge registry only agrees on inside/outside once
// nothing is still mutating it.
func trapezoidize(ctx *engineContext, area *PolygonalArea) ([]*Trapezoid, error) {
	edges := area.Edges()
	ctx.rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	graph := newQueryGraph(ctx)
	inserted := make(PointSet)

	insertIfNew := func(p *Point) bool {
		if _, ok := inserted[p]; ok {
			return false
		}
		graph.insertVertex(p)
		inserted.Add(p)
		return true
	}

	for _, edge := range edges {
		if err := ctx.checkCancelled(); err != nil {
			return nil, err
		}
		if ctx.tracer != nil {
			ctx.tracer.Tracef("inserting edge %s", ctx.tracer.NameEdge(edge))
		}
		topNew := insertIfNew(edge.Top)
		bottomNew := insertIfNew(edge.Bottom)
		graph.insertEdge(edge, topNew, bottomNew)
	}

	return allTrapezoids(graph.root), nil
}

// allTrapezoids enumerates the unique set of trapezoid leaves currently
// reachable from root. Node-level deduplication is required, not optional:
// merging redundant stacks can leave one node reachable through more than
// one parent, and a naive recursive walk would double-count its trapezoid.
func allTrapezoids(root *QueryNode) []*Trapezoid {
	seen := make(map[*QueryNode]struct{})
	var result []*Trapezoid

	var walk func(n *QueryNode)
	walk = func(n *QueryNode) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		if sink, ok := n.Inner.(SinkNode); ok {
			result = append(result, sink.Trapezoid)
			return
		}
		for _, child := range n.children() {
			walk(child)
		}
	}
	walk(root)
	return result
}
