package triangulate

// QueryNode is a node in the point-location search DAG. Internal nodes are
// vertex or edge decisions; leaves are trapezoids. A node is polymorphic
// over its payload via QueryNodeInner, with Parents lifted onto the wrapper
// since a node's parent set is a structural property shared by every
// payload kind (important once a merge gives one node more than one
// parent).
type QueryNode struct {
	Inner QueryNodeInner

	// Parents holds every node that currently points at this one as a
	// child. It is a multiset, not a single back-pointer: merging
	// redundant trapezoid stacks can leave one node reachable through
	// several XNode/YNode parents.
	Parents []*QueryNode
}

// QueryNodeInner is the union of the three node payload kinds.
type QueryNodeInner interface {
	// locate walks toward the leaf trapezoid containing point.
	locate(point *Point) *QueryNode

	// children lists this node's child nodes, for DAG iteration. A
	// trapezoid leaf has none.
	children() []*QueryNode

	queryNodeInnerTypeHint()
}

func (SinkNode) queryNodeInnerTypeHint() {}
func (YNode) queryNodeInnerTypeHint()    {}
func (XNode) queryNodeInnerTypeHint()    {}

func newSink(trapezoid *Trapezoid) *QueryNode {
	node := &QueryNode{Inner: SinkNode{Trapezoid: trapezoid}}
	trapezoid.Sink = node
	return node
}

// becomeYNode turns a leaf (or any node) into a vertex decision in place,
// keeping its identity and therefore its existing Parents list intact. This
// is how insertVertex splits a trapezoid leaf: the node object that used to
// be the SinkNode is mutated into the YNode, so every parent that already
// pointed at it needs no update.
func (n *QueryNode) becomeYNode(key *Point, below, above *QueryNode) {
	below.Parents = append(below.Parents, n)
	above.Parents = append(above.Parents, n)
	n.Inner = YNode{Key: key, Below: below, Above: above}
}

// becomeXNode is becomeYNode's edge-decision counterpart, used by
// insertEdge.
func (n *QueryNode) becomeXNode(key *Segment, left, right *QueryNode) {
	left.Parents = append(left.Parents, n)
	right.Parents = append(right.Parents, n)
	n.Inner = XNode{Key: key, Left: left, Right: right}
}

func (n *QueryNode) locate(point *Point) *QueryNode {
	if _, ok := n.Inner.(SinkNode); ok {
		return n
	}
	return n.Inner.locate(point)
}

func (n *QueryNode) children() []*QueryNode {
	return n.Inner.children()
}

// replaceWith redirects every parent of n to point at replacement instead,
// and transfers n's parent list onto it. This is the DAG half of merging
// redundant trapezoid stacks: n itself is never mutated or freed, it simply
// becomes unreachable once every parent has been redirected.
func (n *QueryNode) replaceWith(replacement *QueryNode) {
	if replacement == n {
		return
	}
	for _, parent := range n.Parents {
		switch inner := parent.Inner.(type) {
		case YNode:
			if inner.Below == n {
				inner.Below = replacement
			}
			if inner.Above == n {
				inner.Above = replacement
			}
			parent.Inner = inner
		case XNode:
			if inner.Left == n {
				inner.Left = replacement
			}
			if inner.Right == n {
				inner.Right = replacement
			}
			parent.Inner = inner
		default:
			fatalf("cannot redirect a child pointer held by a trapezoid leaf")
		}
	}
	replacement.Parents = append(replacement.Parents, n.Parents...)
}

// SinkNode is a trapezoid leaf.
type SinkNode struct {
	Trapezoid *Trapezoid
}

func (SinkNode) locate(*Point) *QueryNode {
	fatalf("cannot locate past a trapezoid leaf")
	return nil
}

func (SinkNode) children() []*QueryNode { return nil }

// YNode is a vertex decision: left/Below child is the strictly-below
// subtree, right/Above child is the strictly-above subtree, under the point
// order.
type YNode struct {
	Key          *Point
	Below, Above *QueryNode
}

// locate implements the point order's "go right iff p > node.point, else
// left" rule directly via Point.Gt.
func (n YNode) locate(point *Point) *QueryNode {
	if point.Gt(n.Key) {
		return n.Above.locate(point)
	}
	return n.Below.locate(point)
}

func (n YNode) children() []*QueryNode {
	return []*QueryNode{n.Below, n.Above}
}

// XNode is an edge decision: left child is the left-of-edge subtree, right
// child is the right-of-edge subtree, per Segment.RightOf.
type XNode struct {
	Key         *Segment
	Left, Right *QueryNode
}

func (n XNode) locate(point *Point) *QueryNode {
	if n.Key.RightOf(point) {
		return n.Right.locate(point)
	}
	return n.Left.locate(point)
}

func (n XNode) children() []*QueryNode {
	return []*QueryNode{n.Left, n.Right}
}
