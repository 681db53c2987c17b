package gst

// edge is a labeled directed arc from a parent node to a child node.
// label is always non-empty; it may be shortened in place during a
// split, and dest may be replaced, but an edge is never removed once
// created.
type edge struct {
	label string
	dest  *node
}

// node is a vertex of the suffix tree. edges is keyed by the first byte
// of the outgoing label — at most one edge per first-byte per node, the
// invariant that makes the tree a trie of compacted edges. Edges carry no
// ordering promise, so a plain map is enough; there is no lexicographic
// walk to support.
type node struct {
	data       *payloadSet
	edges      map[byte]*edge
	suffixLink *node
}

func newNode() *node {
	return &node{
		data:  newPayloadSet(),
		edges: make(map[byte]*edge),
	}
}

// getEdge returns the outgoing edge keyed by c, or nil.
func (n *node) getEdge(c byte) *edge {
	return n.edges[c]
}

// putEdge installs or overwrites the outgoing edge keyed by its label's
// first byte.
func (n *node) putEdge(e *edge) {
	n.edges[e.label[0]] = e
}

// getData gathers every id held by n, then recurses into every child.
// acc is an unordered set, so duplicates across subtrees collapse
// automatically.
func (n *node) getData(acc IDSet) {
	for _, id := range n.data.ids() {
		acc.Add(id)
	}
	for _, e := range n.edges {
		e.dest.getData(acc)
	}
}

// addRef attaches id to n and propagates it along the suffix-link chain.
// If id is already present on n, it is a no-op: every farther ancestor
// already has it too, so there is nothing left to propagate. Otherwise id
// is appended to n and the chain is walked, stopping at the first
// ancestor that already has id.
func (n *node) addRef(id int) bool {
	if !n.data.add(id) {
		return false
	}
	for m := n.suffixLink; m != nil; m = m.suffixLink {
		if !m.data.add(id) {
			break
		}
	}
	return true
}
