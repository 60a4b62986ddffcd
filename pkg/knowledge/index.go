package knowledge

// Index is a read-only queryable view over a sanitized snapshot: by-id
// lookup plus stable snapshot-order iteration. Simulation state (positions,
// velocities) lives elsewhere; the index only answers structural questions.
type Index struct {
	byID  map[string]Node
	order []string // snapshot order for deterministic iteration
	edges []Edge
}

// NewIndex builds an index over the snapshot. Duplicate node ids keep the
// first occurrence and silently drop later ones.
func NewIndex(snap Snapshot) *Index {
	ix := &Index{byID: make(map[string]Node, len(snap.Nodes))}
	for _, n := range snap.Nodes {
		if _, ok := ix.byID[n.ID]; ok {
			continue
		}
		ix.byID[n.ID] = n
		ix.order = append(ix.order, n.ID)
	}
	ix.edges = append(ix.edges, snap.Edges...)
	return ix
}

// Node returns the node with the given id.
func (ix *Index) Node(id string) (Node, bool) {
	n, ok := ix.byID[id]
	return n, ok
}

// Has reports whether the id is in the index.
func (ix *Index) Has(id string) bool {
	_, ok := ix.byID[id]
	return ok
}

// Len returns the node count.
func (ix *Index) Len() int { return len(ix.order) }

// Nodes returns all nodes in snapshot order.
func (ix *Index) Nodes() []Node {
	result := make([]Node, 0, len(ix.order))
	for _, id := range ix.order {
		result = append(result, ix.byID[id])
	}
	return result
}

// Edges returns all edges.
func (ix *Index) Edges() []Edge { return ix.edges }

// Neighbors returns every edge touching the given id, outgoing edges first.
func (ix *Index) Neighbors(id string) []Edge {
	var out, in []Edge
	for _, e := range ix.edges {
		switch id {
		case e.Source:
			out = append(out, e)
		case e.Target:
			in = append(in, e)
		}
	}
	return append(out, in...)
}

// Degree returns the number of edges touching the given id. Self-loops
// count once.
func (ix *Index) Degree(id string) int {
	n := 0
	for _, e := range ix.edges {
		if e.Source == id || e.Target == id {
			n++
		}
	}
	return n
}
