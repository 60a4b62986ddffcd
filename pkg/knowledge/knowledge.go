package knowledge

// Node is one entity in a knowledge-graph snapshot. Type is a category tag
// used only for coloring and sizing; Mentions is a non-negative count that
// drives the rendered radius.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Mentions int    `json:"mention_count"`
}

// Edge is a directed relation between two nodes, referenced by id.
type Edge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation"`
}

// Snapshot is one complete graph as delivered by a data source. Order is
// meaningful: nodes render and iterate in snapshot order.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// IsEmpty reports whether the snapshot has no nodes.
func (s Snapshot) IsEmpty() bool { return len(s.Nodes) == 0 }

// NodeIDs returns the node ids in snapshot order.
func (s Snapshot) NodeIDs() []string {
	ids := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// ── Sanitize ──

// Reasons attached to edges removed by Sanitize.
const (
	DropMissingSource = "missing_source"
	DropMissingTarget = "missing_target"
	DropMissingBoth   = "missing_both"
)

// DroppedEdge records an edge removed by Sanitize and why.
type DroppedEdge struct {
	Edge   Edge
	Reason string
}

// Sanitize returns a snapshot whose edge list contains only edges with both
// endpoints present in the node set. Nodes pass through unchanged. Partial
// graphs from an incrementally ingesting backend are expected, so dangling
// edges are dropped, never rejected; the dropped list carries a reason per
// edge for callers that want to report them.
func Sanitize(snap Snapshot) (Snapshot, []DroppedEdge) {
	present := make(map[string]bool, len(snap.Nodes))
	for _, n := range snap.Nodes {
		present[n.ID] = true
	}

	kept := make([]Edge, 0, len(snap.Edges))
	var dropped []DroppedEdge
	for _, e := range snap.Edges {
		srcOK, tgtOK := present[e.Source], present[e.Target]
		switch {
		case srcOK && tgtOK:
			kept = append(kept, e)
		case !srcOK && !tgtOK:
			dropped = append(dropped, DroppedEdge{Edge: e, Reason: DropMissingBoth})
		case !srcOK:
			dropped = append(dropped, DroppedEdge{Edge: e, Reason: DropMissingSource})
		default:
			dropped = append(dropped, DroppedEdge{Edge: e, Reason: DropMissingTarget})
		}
	}
	return Snapshot{Nodes: snap.Nodes, Edges: kept}, dropped
}
