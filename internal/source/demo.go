package source

import "github.com/tangleview/tangle/pkg/knowledge"

// Demo returns the built-in demo graph, a small personal knowledge base
// with every node type represented and mention counts spread out enough
// to show the size scale.
func Demo() knowledge.Snapshot {
	return knowledge.Snapshot{
		Nodes: []knowledge.Node{
			{ID: "maya", Name: "Maya Chen", Type: "person", Mentions: 12},
			{ID: "jonas", Name: "Jonas Weber", Type: "person", Mentions: 7},
			{ID: "priya", Name: "Priya Nair", Type: "person", Mentions: 4},
			{ID: "atlas", Name: "Atlas Migration", Type: "project", Mentions: 9},
			{ID: "garden", Name: "Garden Notes", Type: "project", Mentions: 3},
			{ID: "reading", Name: "Reading Group", Type: "project", Mentions: 5},
			{ID: "zettel", Name: "Zettelkasten", Type: "term", Mentions: 8},
			{ID: "layout", Name: "Force Layout", Type: "term", Mentions: 6},
			{ID: "spaced", Name: "Spaced Repetition", Type: "term", Mentions: 2},
			{ID: "kickoff", Name: "Kickoff Meeting", Type: "note", Mentions: 3},
			{ID: "recap", Name: "Conference Recap", Type: "note", Mentions: 2},
			{ID: "review", Name: "Weekly Review", Type: "note", Mentions: 1},
		},
		Edges: []knowledge.Edge{
			{ID: "d1", Source: "maya", Target: "atlas", Relation: "works_on"},
			{ID: "d2", Source: "jonas", Target: "atlas", Relation: "works_on"},
			{ID: "d3", Source: "priya", Target: "reading", Relation: "works_on"},
			{ID: "d4", Source: "maya", Target: "reading", Relation: "works_on"},
			{ID: "d5", Source: "kickoff", Target: "atlas", Relation: "mentions"},
			{ID: "d6", Source: "kickoff", Target: "maya", Relation: "mentions"},
			{ID: "d7", Source: "kickoff", Target: "jonas", Relation: "mentions"},
			{ID: "d8", Source: "recap", Target: "layout", Relation: "mentions"},
			{ID: "d9", Source: "recap", Target: "priya", Relation: "mentions"},
			{ID: "d10", Source: "review", Target: "garden", Relation: "mentions"},
			{ID: "d11", Source: "zettel", Target: "spaced", Relation: "related_to"},
			{ID: "d12", Source: "reading", Target: "zettel", Relation: "references"},
			{ID: "d13", Source: "atlas", Target: "layout", Relation: "references"},
			{ID: "d14", Source: "garden", Target: "zettel", Relation: "references"},
			{ID: "d15", Source: "jonas", Target: "garden", Relation: "works_on"},
		},
	}
}
