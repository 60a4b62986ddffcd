package knowledge

import "testing"

func n(id string) Node { return Node{ID: id, Name: id, Type: "concept"} }

func e(id, src, tgt string) Edge { return Edge{ID: id, Source: src, Target: tgt} }

// ── Sanitize ──

func TestSanitizeDanglingEdge(t *testing.T) {
	snap := Snapshot{
		Nodes: []Node{n("a"), n("b")},
		Edges: []Edge{e("e1", "a", "b"), e("e2", "a", "missing")},
	}
	clean, dropped := Sanitize(snap)
	if len(clean.Edges) != 1 {
		t.Fatalf("expected 1 surviving edge, got %d", len(clean.Edges))
	}
	if clean.Edges[0].ID != "e1" {
		t.Errorf("wrong edge survived: %q", clean.Edges[0].ID)
	}
	if len(dropped) != 1 || dropped[0].Reason != DropMissingTarget {
		t.Errorf("expected e2 dropped as %s, got %+v", DropMissingTarget, dropped)
	}
}

func TestSanitizeNodesPassThrough(t *testing.T) {
	snap := Snapshot{
		Nodes: []Node{{ID: "a", Name: "Alpha", Type: "paper", Mentions: 7}},
		Edges: []Edge{e("e1", "a", "gone")},
	}
	clean, _ := Sanitize(snap)
	if len(clean.Nodes) != 1 || clean.Nodes[0] != snap.Nodes[0] {
		t.Errorf("nodes must pass through unchanged, got %+v", clean.Nodes)
	}
}

func TestSanitizeReasons(t *testing.T) {
	tests := []struct {
		name   string
		edge   Edge
		reason string
	}{
		{"missing source", e("e1", "x", "a"), DropMissingSource},
		{"missing target", e("e2", "a", "x"), DropMissingTarget},
		{"missing both", e("e3", "x", "y"), DropMissingBoth},
	}
	for _, tt := range tests {
		snap := Snapshot{Nodes: []Node{n("a")}, Edges: []Edge{tt.edge}}
		clean, dropped := Sanitize(snap)
		if len(clean.Edges) != 0 {
			t.Errorf("%s: edge should be dropped", tt.name)
		}
		if len(dropped) != 1 || dropped[0].Reason != tt.reason {
			t.Errorf("%s: expected reason %s, got %+v", tt.name, tt.reason, dropped)
		}
	}
}

func TestSanitizeKeepsSelfLoop(t *testing.T) {
	snap := Snapshot{Nodes: []Node{n("a")}, Edges: []Edge{e("e1", "a", "a")}}
	clean, dropped := Sanitize(snap)
	if len(clean.Edges) != 1 || len(dropped) != 0 {
		t.Errorf("self-loop with an existing endpoint must survive")
	}
}

func TestSanitizeEmptySnapshot(t *testing.T) {
	clean, dropped := Sanitize(Snapshot{})
	if !clean.IsEmpty() || len(clean.Edges) != 0 || len(dropped) != 0 {
		t.Errorf("empty in, empty out: %+v %+v", clean, dropped)
	}
}

// ── Snapshot helpers ──

func TestIsEmpty(t *testing.T) {
	if !(Snapshot{}).IsEmpty() {
		t.Error("no nodes should mean empty")
	}
	if (Snapshot{Nodes: []Node{n("a")}}).IsEmpty() {
		t.Error("one node should mean not empty")
	}
}

func TestNodeIDsOrder(t *testing.T) {
	snap := Snapshot{Nodes: []Node{n("c"), n("a"), n("b")}}
	ids := snap.NodeIDs()
	if len(ids) != 3 || ids[0] != "c" || ids[1] != "a" || ids[2] != "b" {
		t.Errorf("NodeIDs not in snapshot order: %v", ids)
	}
}

// ── Index ──

func TestIndexLookup(t *testing.T) {
	ix := NewIndex(Snapshot{Nodes: []Node{{ID: "a", Name: "Alpha", Mentions: 3}}})
	got, ok := ix.Node("a")
	if !ok || got.Name != "Alpha" {
		t.Errorf("Node(a): got %+v ok=%v", got, ok)
	}
	if _, ok := ix.Node("zzz"); ok {
		t.Error("expected miss for unknown id")
	}
	if !ix.Has("a") || ix.Has("zzz") {
		t.Error("Has disagrees with Node")
	}
}

func TestIndexNodesSnapshotOrder(t *testing.T) {
	ix := NewIndex(Snapshot{Nodes: []Node{n("c"), n("a"), n("b")}})
	nodes := ix.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if nodes[0].ID != "c" || nodes[1].ID != "a" || nodes[2].ID != "b" {
		t.Error("Nodes() not in snapshot order")
	}
}

func TestIndexDuplicateIDFirstWins(t *testing.T) {
	ix := NewIndex(Snapshot{Nodes: []Node{
		{ID: "a", Name: "first"},
		{ID: "a", Name: "second"},
	}})
	if ix.Len() != 1 {
		t.Fatalf("expected 1 node, got %d", ix.Len())
	}
	got, _ := ix.Node("a")
	if got.Name != "first" {
		t.Errorf("first occurrence should win, got %q", got.Name)
	}
}

func TestNeighborsOutgoingFirst(t *testing.T) {
	ix := NewIndex(Snapshot{
		Nodes: []Node{n("a"), n("b"), n("c")},
		Edges: []Edge{e("in", "b", "a"), e("out", "a", "c")},
	})
	nb := ix.Neighbors("a")
	if len(nb) != 2 {
		t.Fatalf("expected 2 neighbor edges, got %d", len(nb))
	}
	if nb[0].ID != "out" || nb[1].ID != "in" {
		t.Errorf("expected outgoing first, got %v then %v", nb[0].ID, nb[1].ID)
	}
}

func TestDegree(t *testing.T) {
	ix := NewIndex(Snapshot{
		Nodes: []Node{n("a"), n("b"), n("c")},
		Edges: []Edge{e("e1", "a", "b"), e("e2", "c", "a"), e("e3", "b", "c")},
	})
	if d := ix.Degree("a"); d != 2 {
		t.Errorf("degree(a): expected 2, got %d", d)
	}
	if d := ix.Degree("missing"); d != 0 {
		t.Errorf("degree(missing): expected 0, got %d", d)
	}
}

func TestDegreeSelfLoopCountsOnce(t *testing.T) {
	ix := NewIndex(Snapshot{
		Nodes: []Node{n("a")},
		Edges: []Edge{e("loop", "a", "a")},
	})
	if d := ix.Degree("a"); d != 1 {
		t.Errorf("self-loop should count once, got %d", d)
	}
}
